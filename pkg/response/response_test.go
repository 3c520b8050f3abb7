package response

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteJSONError(t *testing.T) {
	rec := httptest.NewRecorder()

	WriteJSONError(rec, slog.Default(), http.StatusBadGateway, "receipt_parse_failure", "bad model output")

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	assert.JSONEq(t, `{"error":"receipt_parse_failure","message":"bad model output"}`, rec.Body.String())
}

func TestWriteJSONSuccess(t *testing.T) {
	rec := httptest.NewRecorder()

	WriteJSONSuccess(rec, slog.Default(), http.StatusOK, map[string]any{"ok": true})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())

	empty := httptest.NewRecorder()
	WriteJSONSuccess(empty, slog.Default(), http.StatusNoContent, nil)
	assert.Equal(t, http.StatusNoContent, empty.Code)
	assert.Empty(t, empty.Body.String())
}
