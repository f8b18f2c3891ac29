package api

import (
	"context"
	"net/http"
	"time"

	"github.com/RMahshie/roomcheck/internal/api/handlers"
	"github.com/RMahshie/roomcheck/internal/repository"
	"github.com/RMahshie/roomcheck/internal/verification"
	"github.com/RMahshie/roomcheck/pkg/models"
	"github.com/danielgtaylor/huma/v2"
)

// Version is reported by the health endpoint and the OpenAPI document
const Version = "1.0.0"

// RegisterRoutes sets up all API routes
func RegisterRoutes(api huma.API, svc verification.Service, attemptRepo repository.AttemptRepository) {
	api.UseMiddleware(handlers.ClientIPMiddleware)

	// Initialize handlers
	verificationHandler := handlers.NewVerificationHandler(svc, attemptRepo)
	attemptHandler := handlers.NewAttemptHandler(attemptRepo)

	huma.Register(api, huma.Operation{
		OperationID: "health",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Health check",
		Description: "Returns the health status of the service",
	}, func(ctx context.Context, input *struct{}) (*models.HealthResponse, error) {
		resp := &models.HealthResponse{}
		resp.Body.Status = "healthy"
		resp.Body.Version = Version
		resp.Body.Time = time.Now()
		resp.Body.ReferenceSamples = svc.ReferenceSamples()
		return resp, nil
	})

	// Register verification routes
	huma.Register(api, huma.Operation{
		OperationID: "checkGeo",
		Method:      http.MethodPost,
		Path:        "/api/attendance/check-geo",
		Summary:     "Verify campus geofence",
		Description: "Checks that the reported position is within the campus radius",
		Tags:        []string{"Verification"},
	}, verificationHandler.CheckGeo)

	huma.Register(api, huma.Operation{
		OperationID: "checkSSID",
		Method:      http.MethodPost,
		Path:        "/api/attendance/check-ssid",
		Summary:     "Verify network name",
		Description: "Checks the reported Wi-Fi network name against the allow-list",
		Tags:        []string{"Verification"},
	}, verificationHandler.CheckSSID)

	huma.Register(api, huma.Operation{
		OperationID: "checkWifi",
		Method:      http.MethodPost,
		Path:        "/api/attendance/check-wifi",
		Summary:     "Verify Wi-Fi fingerprint",
		Description: "Predicts the classroom from a Wi-Fi scan and compares it with the scheduled classroom",
		Tags:        []string{"Verification"},
	}, verificationHandler.CheckWifi)

	huma.Register(api, huma.Operation{
		OperationID: "checkHotspot",
		Method:      http.MethodGet,
		Path:        "/api/attendance/check-hotspot",
		Summary:     "Verify hotspot subnet",
		Description: "Checks that the caller's address belongs to an authorized hotspot",
		Tags:        []string{"Verification"},
	}, verificationHandler.CheckHotspot)

	// Register audit routes
	huma.Register(api, huma.Operation{
		OperationID: "getAttempt",
		Method:      http.MethodGet,
		Path:        "/api/attempts/{id}",
		Summary:     "Get verification attempt",
		Description: "Returns one recorded verification attempt",
		Tags:        []string{"Attempts"},
	}, attemptHandler.GetAttempt)

	huma.Register(api, huma.Operation{
		OperationID: "listSessionAttempts",
		Method:      http.MethodGet,
		Path:        "/api/sessions/{sessionId}/attempts",
		Summary:     "List session attempts",
		Description: "Returns the verification attempts of a client session, newest first",
		Tags:        []string{"Attempts"},
	}, attemptHandler.ListSessionAttempts)
}
