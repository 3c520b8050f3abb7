package handlers

import (
	"aero-lite/internal/api/middlew"
	"aero-lite/internal/custom_err"
	"aero-lite/internal/models"
	"aero-lite/internal/routing"
	"aero-lite/internal/service"
	"aero-lite/pkg/response"
	"errors"
	"io"
	"log/slog"
	"net/http"
)

const maxReceiptUpload = 10 << 20

type ReceiptHandler struct {
	service service.Receipts
}

func NewReceiptHandler(service service.Receipts) *ReceiptHandler {
	return &ReceiptHandler{
		service: service,
	}
}

// Analyze godoc
// @Summary      Анализ комиссий по чеку
// @Description  Vision-модель читает видимые строки комиссий на скриншоте чека; ответ сравнивает их с тарифом Loadit
// @Tags         receipts
// @Accept       multipart/form-data
// @Produce      json
// @Param        image     formData file   true  "Изображение чека"
// @Param        amountUsd formData number false "Сумма перевода, если на чеке её нет"
// @Param        asset     formData string false "Актив, например USDC"
// @Success      200 {object} models.ReceiptAnalysisResponse
// @Failure      400 {object} response.ErrorResponse
// @Failure      502 {object} response.ErrorResponse
// @Failure      503 {object} response.ErrorResponse
// @Router       /receipts/analyze [post]
func (h *ReceiptHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	const op = "handler.Analyze"
	log := middlew.GetLogger(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, maxReceiptUpload+1<<20)
	if err := r.ParseMultipartForm(maxReceiptUpload); err != nil {
		log.Warn("invalid multipart form", slog.String("op", op), slog.String("error", err.Error()))
		response.WriteJSONError(w, log, http.StatusBadRequest, "invalid_form", "Expected multipart/form-data with an image field")
		return
	}
	defer func() {
		if r.MultipartForm != nil {
			_ = r.MultipartForm.RemoveAll()
		}
	}()

	file, header, err := r.FormFile("image")
	if err != nil {
		log.Warn("no image uploaded", slog.String("op", op))
		response.WriteJSONError(w, log, http.StatusBadRequest, "no_image", "No image uploaded.")
		return
	}
	defer file.Close()

	image, err := io.ReadAll(file)
	if err != nil {
		log.Error("failed to read upload", slog.String("op", op), slog.String("error", err.Error()))
		response.WriteJSONError(w, log, http.StatusBadRequest, "invalid_form", "Failed to read uploaded image")
		return
	}

	req := models.ReceiptAnalysisRequest{
		Image:     image,
		MimeType:  header.Header.Get("Content-Type"),
		AmountUsd: routing.CoerceNumber(r.FormValue("amountUsd")),
		Asset:     r.FormValue("asset"),
	}

	log.Info("запрос на анализ чека",
		slog.String("op", op),
		slog.String("file", header.Filename),
		slog.Int64("size", header.Size),
		slog.String("asset", req.Asset))

	result, err := h.service.Analyze(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, custom_err.ErrNoImage):
			log.Warn("empty image", slog.String("op", op))
			response.WriteJSONError(w, log, http.StatusBadRequest, "no_image", "No image uploaded.")
		case errors.Is(err, custom_err.ErrReceiptParseFailure):
			log.Warn("receipt parse failure", slog.String("op", op))
			response.WriteJSONError(w, log, http.StatusBadGateway, "receipt_parse_failure", "OpenAI Vision did not return valid JSON.")
		case errors.Is(err, custom_err.ErrExtractorUnavailable):
			log.Error("receipt extractor unavailable", slog.String("op", op), slog.String("error", err.Error()))
			response.WriteJSONError(w, log, http.StatusServiceUnavailable, "extractor_unavailable", "Failed to analyze receipt image with OpenAI Vision.")
		default:
			log.Error("failed to analyze receipt", slog.String("op", op), slog.String("error", err.Error()))
			response.WriteJSONError(w, log, http.StatusInternalServerError, "internal_error", "Failed to analyze receipt image.")
		}
		return
	}

	response.WriteJSONSuccess(w, log, http.StatusOK, result)
}
