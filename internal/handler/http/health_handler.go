package http

import (
	"net/http"

	"product-catalog/internal/logger"
	"product-catalog/internal/service"

	"github.com/goccy/go-json"
	"go.opentelemetry.io/otel"
)

type HealthHandler struct {
	service *service.HealthService
}

var HttpHealthHandlerTracer = otel.Tracer("HttpHealthHandler")

func NewHealthHandler(service *service.HealthService) *HealthHandler {
	return &HealthHandler{
		service: service,
	}
}

func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	ctx, span := HttpHealthHandlerTracer.Start(r.Context(), "HttpHealthHandler.Check")
	defer span.End()
	logger.Info(ctx, "HttpHealthHandler")

	status := h.service.Check(ctx)

	overall := "UP"
	w.Header().Set("Content-Type", "application/json")
	if status.Mongo == "DOWN" {
		overall = "DOWN"
		w.WriteHeader(http.StatusInternalServerError)
	}

	resp := map[string]interface{}{
		"status": overall,
		"data": map[string]string{
			"mongodb": status.Mongo,
		},
	}

	_ = json.NewEncoder(w).Encode(resp)
}
