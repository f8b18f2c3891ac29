package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/RMahshie/roomcheck/internal/fingerprint"
	"github.com/RMahshie/roomcheck/internal/repository"
	"github.com/RMahshie/roomcheck/internal/verification"
	"github.com/RMahshie/roomcheck/pkg/models"
	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// VerificationHandler handles presence verification HTTP requests
type VerificationHandler struct {
	svc      verification.Service
	attempts repository.AttemptRepository
}

// NewVerificationHandler creates a new verification handler
func NewVerificationHandler(svc verification.Service, attempts repository.AttemptRepository) *VerificationHandler {
	return &VerificationHandler{
		svc:      svc,
		attempts: attempts,
	}
}

// CheckGeo verifies the reported position is inside the campus geofence
func (h *VerificationHandler) CheckGeo(ctx context.Context, req *models.GeoCheckRequest) (*models.GeoCheckResponse, error) {
	res, err := h.svc.VerifyGeo(ctx, verification.GeoRequest{
		Latitude:  req.Body.Lat,
		Longitude: req.Body.Lon,
		Accuracy:  req.Body.Accuracy,
	})
	if err != nil {
		return nil, toHTTPError(err, "Location missing")
	}

	attemptID := h.record(ctx, req.SessionID, verification.CheckGeo, res.Success, fmt.Sprintf("distance=%dm", res.DistanceMeters))

	status := http.StatusOK
	if !res.Success {
		status = http.StatusForbidden
	}
	return &models.GeoCheckResponse{
		Status: status,
		Body: models.GeoCheckResponseBody{
			Success:   res.Success,
			Distance:  res.DistanceMeters,
			Message:   res.Message,
			AttemptID: attemptID,
		},
	}, nil
}

// CheckSSID verifies the reported network name against the allow-list
func (h *VerificationHandler) CheckSSID(ctx context.Context, req *models.SSIDCheckRequest) (*models.SSIDCheckResponse, error) {
	res, err := h.svc.VerifySSID(ctx, verification.SSIDRequest{SSID: req.Body.SSID})
	if err != nil {
		return nil, toHTTPError(err, "SSID check failed")
	}

	attemptID := h.record(ctx, req.SessionID, verification.CheckSSID, res.Success, "verdict="+string(res.Verdict))

	status := http.StatusOK
	if !res.Success {
		status = http.StatusForbidden
	}
	return &models.SSIDCheckResponse{
		Status: status,
		Body: models.SSIDCheckResponseBody{
			Success:   res.Success,
			Verdict:   string(res.Verdict),
			Message:   res.Message,
			AttemptID: attemptID,
		},
	}, nil
}

// CheckWifi classifies the Wi-Fi scan and compares it with the scheduled classroom
func (h *VerificationHandler) CheckWifi(ctx context.Context, req *models.WifiCheckRequest) (*models.WifiCheckResponse, error) {
	var scan []fingerprint.Reading
	if req.Body.WifiScan != nil {
		scan = make([]fingerprint.Reading, 0, len(req.Body.WifiScan))
		for _, entry := range req.Body.WifiScan {
			scan = append(scan, fingerprint.Reading{BSSID: entry.BSSID, RSSI: entry.RSSI})
		}
	}

	res, err := h.svc.VerifyWifiFingerprint(ctx, verification.FingerprintRequest{
		Scan:               scan,
		ScheduledClassroom: req.Body.ScheduledClassroom,
	})
	if err != nil {
		return nil, toHTTPError(err, "WiFi scan or classroom missing")
	}

	attemptID := h.record(ctx, req.SessionID, verification.CheckFingerprint, res.Success,
		fmt.Sprintf("predicted=%s scheduled=%s", res.PredictedClassroom, req.Body.ScheduledClassroom))

	neighbors := make([]models.Neighbor, 0, len(res.Neighbors))
	for _, n := range res.Neighbors {
		neighbors = append(neighbors, models.Neighbor{Classroom: n.Label, Distance: n.Distance})
	}

	return &models.WifiCheckResponse{
		Body: models.WifiCheckResponseBody{
			Success:            res.Success,
			PredictedClassroom: res.PredictedClassroom,
			Message:            res.Message,
			Neighbors:          neighbors,
			AttemptID:          attemptID,
		},
	}, nil
}

// CheckHotspot verifies the caller's address belongs to an authorized hotspot
func (h *VerificationHandler) CheckHotspot(ctx context.Context, req *models.HotspotCheckRequest) (*models.HotspotCheckResponse, error) {
	res, err := h.svc.VerifyHotspot(ctx, ClientIP(ctx))
	if err != nil {
		return nil, toHTTPError(err, "Client address missing")
	}

	attemptID := h.record(ctx, req.SessionID, verification.CheckHotspot, res.Success, "ip="+res.IP)

	status := http.StatusOK
	if !res.Success {
		status = http.StatusForbidden
	}
	return &models.HotspotCheckResponse{
		Status: status,
		Body: models.HotspotCheckResponseBody{
			Success:   res.Success,
			IP:        res.IP,
			Message:   res.Message,
			AttemptID: attemptID,
		},
	}, nil
}

// record stores an attempt and returns its ID. Storage failures never change the verdict.
func (h *VerificationHandler) record(ctx context.Context, sessionID, check string, success bool, detail string) string {
	attempt := &models.Attempt{
		ID:        uuid.New().String(),
		SessionID: sessionID,
		Check:     check,
		Success:   success,
		Detail:    detail,
		CreatedAt: time.Now(),
	}
	if h.attempts == nil {
		return attempt.ID
	}
	if err := h.attempts.Create(ctx, attempt); err != nil {
		log.Error().Err(err).Str("attemptID", attempt.ID).Str("check", check).Msg("Failed to record verification attempt")
	}
	return attempt.ID
}

// toHTTPError maps the verification error taxonomy to HTTP errors
func toHTTPError(err error, invalidInputMsg string) error {
	switch {
	case errors.Is(err, verification.ErrInvalidInput):
		return huma.Error400BadRequest(invalidInputMsg)
	case errors.Is(err, verification.ErrEmptyDataset):
		return huma.Error503ServiceUnavailable("No reference fingerprints configured", err)
	case errors.Is(err, verification.ErrInvalidK):
		return huma.Error503ServiceUnavailable("Fingerprint classifier misconfigured", err)
	default:
		log.Error().Err(err).Msg("Verification failed")
		return huma.Error500InternalServerError("Verification failed")
	}
}
