package verification

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/RMahshie/roomcheck/internal/fingerprint"
	"github.com/RMahshie/roomcheck/internal/geo"
	"github.com/RMahshie/roomcheck/internal/observability"
	"github.com/RMahshie/roomcheck/internal/wifi"
	"github.com/rs/zerolog/log"
)

// Check names used for metrics and the attempt audit trail
const (
	CheckGeo         = "geo"
	CheckSSID        = "ssid"
	CheckFingerprint = "fingerprint"
	CheckHotspot     = "hotspot"
)

// GeoRequest carries a reported position. Latitude and longitude are required.
type GeoRequest struct {
	Latitude  *float64
	Longitude *float64
	Accuracy  *float64
}

type GeoResult struct {
	Success        bool
	DistanceMeters int
	Message        string
}

type SSIDRequest struct {
	SSID *string
}

type SSIDResult struct {
	Success bool
	Verdict wifi.Verdict
	Message string
}

// FingerprintRequest carries a Wi-Fi scan. A nil Scan means the scan was not sent;
// an empty one is a valid scan that saw nothing.
type FingerprintRequest struct {
	Scan               []fingerprint.Reading
	ScheduledClassroom string
}

type FingerprintResult struct {
	Success            bool
	PredictedClassroom string
	Message            string
	Vector             fingerprint.Vector
	Neighbors          []fingerprint.Neighbor
}

type HotspotResult struct {
	Success bool
	IP      string
	Message string
}

// Service exposes the independent presence checks
type Service interface {
	VerifyGeo(ctx context.Context, req GeoRequest) (*GeoResult, error)
	VerifySSID(ctx context.Context, req SSIDRequest) (*SSIDResult, error)
	VerifyWifiFingerprint(ctx context.Context, req FingerprintRequest) (*FingerprintResult, error)
	VerifyHotspot(ctx context.Context, clientIP string) (*HotspotResult, error)
	ReferenceSamples() int
}

// Dependencies are the immutable evaluators the service composes
type Dependencies struct {
	Geofence   *geo.Evaluator
	AllowList  *wifi.AllowList
	Hotspots   *wifi.HotspotPrefixes
	APOrder    *fingerprint.APOrder
	Classifier *fingerprint.Classifier
	Metrics    *observability.Collector
}

type service struct {
	geofence   *geo.Evaluator
	allowList  *wifi.AllowList
	hotspots   *wifi.HotspotPrefixes
	apOrder    *fingerprint.APOrder
	classifier *fingerprint.Classifier
	metrics    *observability.Collector
}

func NewService(deps Dependencies) Service {
	s := &service{
		geofence:   deps.Geofence,
		allowList:  deps.AllowList,
		hotspots:   deps.Hotspots,
		apOrder:    deps.APOrder,
		classifier: deps.Classifier,
		metrics:    deps.Metrics,
	}
	s.metrics.SetReferenceSamples(s.ReferenceSamples())
	return s
}

func (s *service) ReferenceSamples() int {
	if s.classifier == nil {
		return 0
	}
	return s.classifier.Dataset().SampleCount()
}

func (s *service) VerifyGeo(ctx context.Context, req GeoRequest) (*GeoResult, error) {
	if req.Latitude == nil || req.Longitude == nil {
		s.metrics.ObserveVerification(CheckGeo, observability.OutcomeInvalid)
		return nil, fmt.Errorf("location missing: %w", ErrInvalidInput)
	}
	if !finite(*req.Latitude) || !finite(*req.Longitude) {
		s.metrics.ObserveVerification(CheckGeo, observability.OutcomeInvalid)
		return nil, fmt.Errorf("location is not numeric: %w", ErrInvalidInput)
	}

	res := s.geofence.Evaluate(geo.Coordinate{Latitude: *req.Latitude, Longitude: *req.Longitude})

	event := log.Info().
		Float64("lat", *req.Latitude).
		Float64("lon", *req.Longitude).
		Int("distance", res.DistanceMeters).
		Bool("within_radius", res.WithinRadius)
	if req.Accuracy != nil {
		event = event.Float64("accuracy", *req.Accuracy)
	}
	event.Msg("Geo verification")

	if !res.WithinRadius {
		s.metrics.ObserveVerification(CheckGeo, observability.OutcomeDenied)
		return &GeoResult{Success: false, DistanceMeters: res.DistanceMeters, Message: "You are outside campus zone"}, nil
	}
	s.metrics.ObserveVerification(CheckGeo, observability.OutcomeSuccess)
	return &GeoResult{Success: true, DistanceMeters: res.DistanceMeters, Message: "Inside campus"}, nil
}

func (s *service) VerifySSID(ctx context.Context, req SSIDRequest) (*SSIDResult, error) {
	verdict := s.allowList.Evaluate(req.SSID)
	log.Info().Str("verdict", string(verdict)).Msg("SSID verification")

	switch verdict {
	case wifi.Denied:
		s.metrics.ObserveVerification(CheckSSID, observability.OutcomeDenied)
		return &SSIDResult{Success: false, Verdict: verdict, Message: "Not connected to an approved network"}, nil
	case wifi.FallbackAllowed:
		s.metrics.ObserveVerification(CheckSSID, observability.OutcomeSuccess)
		return &SSIDResult{Success: true, Verdict: verdict, Message: "Network name unavailable, allowed by fallback policy"}, nil
	default:
		s.metrics.ObserveVerification(CheckSSID, observability.OutcomeSuccess)
		return &SSIDResult{Success: true, Verdict: verdict, Message: "Connected to approved network"}, nil
	}
}

func (s *service) VerifyWifiFingerprint(ctx context.Context, req FingerprintRequest) (*FingerprintResult, error) {
	if req.Scan == nil || strings.TrimSpace(req.ScheduledClassroom) == "" {
		s.metrics.ObserveVerification(CheckFingerprint, observability.OutcomeInvalid)
		return nil, fmt.Errorf("WiFi scan or classroom missing: %w", ErrInvalidInput)
	}
	if s.classifier == nil {
		s.metrics.ObserveVerification(CheckFingerprint, observability.OutcomeError)
		return nil, ErrEmptyDataset
	}

	vector := s.apOrder.Vectorize(req.Scan)

	start := time.Now()
	classification, err := s.classifier.Classify(vector)
	s.metrics.ObserveClassification(time.Since(start))
	if err != nil {
		s.metrics.ObserveVerification(CheckFingerprint, observability.OutcomeError)
		if IsConfigurationError(err) {
			log.Error().Err(err).Msg("Fingerprint classifier misconfigured")
			return nil, err
		}
		log.Error().Err(err).Int("readings", len(req.Scan)).Msg("Fingerprint classification failed")
		return nil, fmt.Errorf("%w: %w", ErrComputation, err)
	}

	log.Info().
		Str("predicted", classification.Label).
		Str("scheduled", req.ScheduledClassroom).
		Int("k", classification.K).
		Msg("Fingerprint verification")

	result := &FingerprintResult{
		PredictedClassroom: classification.Label,
		Vector:             vector,
		Neighbors:          classification.Neighbors,
	}
	if classification.Label != req.ScheduledClassroom {
		s.metrics.ObserveVerification(CheckFingerprint, observability.OutcomeDenied)
		result.Message = "Not inside scheduled classroom"
		return result, nil
	}
	s.metrics.ObserveVerification(CheckFingerprint, observability.OutcomeSuccess)
	result.Success = true
	result.Message = "WiFi verified, classroom matched"
	return result, nil
}

func (s *service) VerifyHotspot(ctx context.Context, clientIP string) (*HotspotResult, error) {
	ip := wifi.CleanIP(clientIP)
	if ip == "" {
		s.metrics.ObserveVerification(CheckHotspot, observability.OutcomeInvalid)
		return nil, fmt.Errorf("client address missing: %w", ErrInvalidInput)
	}

	allowed := s.hotspots.Allows(ip)
	log.Info().Str("ip", ip).Bool("allowed", allowed).Msg("Hotspot verification")

	if !allowed {
		s.metrics.ObserveVerification(CheckHotspot, observability.OutcomeDenied)
		return &HotspotResult{Success: false, IP: ip, Message: "Not connected to authorized hotspot"}, nil
	}
	s.metrics.ObserveVerification(CheckHotspot, observability.OutcomeSuccess)
	return &HotspotResult{Success: true, IP: ip, Message: "Connected to authorized hotspot"}, nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
