package handlers

import (
	"aero-lite/internal/api/middlew"
	"aero-lite/internal/custom_err"
	"aero-lite/internal/models"
	"aero-lite/internal/service"
	"aero-lite/pkg/response"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
)

const maxSimulationBody = 64 << 10

type RoutingHandler struct {
	service service.Simulation
}

func NewRoutingHandler(service service.Simulation) *RoutingHandler {
	return &RoutingHandler{
		service: service,
	}
}

// Simulate godoc
// @Summary      Симуляция маршрутов перевода
// @Description  Запрашивает у AI варианты маршрутов, пересчитывает комиссии по тарифной таблице, добавляет маршруты Loadit и отмечает самый дешевый
// @Tags         routing
// @Accept       json
// @Produce      json
// @Param        request body models.RouteSimulationRequest true "Параметры перевода"
// @Success      200 {object} models.RouteSimulationResponse
// @Failure      400 {object} response.ErrorResponse
// @Failure      500 {object} response.ErrorResponse
// @Router       /routing/simulate [post]
func (h *RoutingHandler) Simulate(w http.ResponseWriter, r *http.Request) {
	const op = "handler.Simulate"
	log := middlew.GetLogger(r.Context())

	defer r.Body.Close()

	var req models.RouteSimulationRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxSimulationBody)).Decode(&req); err != nil {
		log.Warn("invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
		response.WriteJSONError(w, log, http.StatusBadRequest, "invalid_json", "Invalid JSON body")
		return
	}

	log.Info("запрос на симуляцию маршрутов",
		slog.String("op", op),
		slog.Float64("amount_usd", float64(req.AmountUsd)),
		slog.String("asset", req.AssetPreference))

	result, err := h.service.Simulate(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, custom_err.ErrInvalidAmount):
			log.Warn("invalid amount", slog.String("op", op))
			response.WriteJSONError(w, log, http.StatusBadRequest, "invalid_amount", "amountUsd must be a positive number")
		case errors.Is(err, custom_err.ErrInvalidInput):
			log.Warn("invalid input", slog.String("op", op))
			response.WriteJSONError(w, log, http.StatusBadRequest, "invalid_input", "sender and recipient are required")
		case errors.Is(err, custom_err.ErrInvalidFundingSource):
			log.Warn("invalid funding source", slog.String("op", op))
			response.WriteJSONError(w, log, http.StatusBadRequest, "invalid_funding_source", "fundingSource must be cash, card or digital")
		case errors.Is(err, custom_err.ErrInvalidRecipientType):
			log.Warn("invalid recipient type", slog.String("op", op))
			response.WriteJSONError(w, log, http.StatusBadRequest, "invalid_recipient_type", "recipientType must be personal, business or platform")
		default:
			log.Error("failed to simulate routes", slog.String("op", op), slog.String("error", err.Error()))
			response.WriteJSONError(w, log, http.StatusInternalServerError, "internal_error", "AERO routing simulation failed")
		}
		return
	}

	response.WriteJSONSuccess(w, log, http.StatusOK, result)
}
