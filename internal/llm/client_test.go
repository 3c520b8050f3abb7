package llm

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aero-lite/internal/custom_err"
	"aero-lite/internal/routing"
)

type capturedRequest struct {
	Model    string `json:"model"`
	Messages []struct {
		Role    string          `json:"role"`
		Content json.RawMessage `json:"content"`
	} `json:"messages"`
	ResponseFormat struct {
		Type string `json:"type"`
	} `json:"response_format"`
}

func fakeOpenAI(t *testing.T, status int, content string, captured *capturedRequest) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		if captured != nil {
			assert.NoError(t, json.Unmarshal(body, captured))
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if status != http.StatusOK {
			_, _ = w.Write([]byte(`{"error":{"message":"upstream exploded","type":"server_error"}}`))
			return
		}
		resp := map[string]any{
			"id":      "chatcmpl-test",
			"object":  "chat.completion",
			"created": 1,
			"model":   "gpt-4.1-mini",
			"choices": []any{
				map[string]any{
					"index":         0,
					"finish_reason": "stop",
					"message":       map[string]any{"role": "assistant", "content": content},
				},
			},
		}
		assert.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
}

func newTestClient(t *testing.T, baseURL, key string) *Client {
	t.Helper()
	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	return NewClient(Options{
		APIKey:       key,
		BaseURL:      baseURL + "/v1",
		RoutingModel: "gpt-4.1-mini",
		VisionModel:  "gpt-4.1-mini",
		Temperature:  0.4,
	}, log)
}

func TestClient_ProposeRoutes_Success(t *testing.T) {
	var captured capturedRequest
	srv := fakeOpenAI(t, http.StatusOK,
		`{"routes":[{"name":"Bank wire","type":"bank","feeUsd":40},{"name":"Wise","type":"remittance","isBest":true}],"summary":"Two routes"}`,
		&captured)
	defer srv.Close()

	client := newTestClient(t, srv.URL, "test-key")

	proposals, err := client.ProposeRoutes(context.Background(), routing.TransferRequest{
		AmountUsd: 250, Sender: "US", Recipient: "PH", AssetPreference: "USDC",
	}.WithDefaults())

	require.NoError(t, err)
	assert.True(t, proposals.Usable)
	assert.Equal(t, "Two routes", proposals.Summary)
	require.Len(t, proposals.Routes, 2)
	assert.Equal(t, "Bank wire", proposals.Routes[0].Name)

	assert.Equal(t, "gpt-4.1-mini", captured.Model)
	assert.Equal(t, "json_object", captured.ResponseFormat.Type)
	require.Len(t, captured.Messages, 2)
	assert.Equal(t, "system", captured.Messages[0].Role)
	assert.Contains(t, string(captured.Messages[1].Content), "$250.00 from US to PH")
	assert.Contains(t, string(captured.Messages[1].Content), "USDC")
}

func TestClient_ProposeRoutes_ParseFailure(t *testing.T) {
	srv := fakeOpenAI(t, http.StatusOK, "Sure! Here are some routes: bank, remittance.", nil)
	defer srv.Close()

	client := newTestClient(t, srv.URL, "test-key")

	_, err := client.ProposeRoutes(context.Background(), routing.TransferRequest{AmountUsd: 10, Sender: "a", Recipient: "b"})

	assert.ErrorIs(t, err, custom_err.ErrProposalParseFailure)
}

func TestClient_ProposeRoutes_Upstream500(t *testing.T) {
	srv := fakeOpenAI(t, http.StatusInternalServerError, "", nil)
	defer srv.Close()

	client := newTestClient(t, srv.URL, "test-key")

	_, err := client.ProposeRoutes(context.Background(), routing.TransferRequest{AmountUsd: 10, Sender: "a", Recipient: "b"})

	assert.ErrorIs(t, err, custom_err.ErrProposalSourceUnavailable)
}

func TestClient_ProposeRoutes_Disabled(t *testing.T) {
	client := newTestClient(t, "http://127.0.0.1:1", "")

	assert.False(t, client.Enabled())
	_, err := client.ProposeRoutes(context.Background(), routing.TransferRequest{AmountUsd: 10})
	assert.ErrorIs(t, err, custom_err.ErrProposalSourceDisabled)
}

func TestClient_ExtractReceipt(t *testing.T) {
	var captured capturedRequest
	srv := fakeOpenAI(t, http.StatusOK,
		"```json\n{\"amount_paid_usd\": 100, \"explicit_fee_usd\": 7.5, \"fee_lines\": [{\"label\": \"ATM fee\", \"amount_usd\": 7.5}]}\n```",
		&captured)
	defer srv.Close()

	client := newTestClient(t, srv.URL, "test-key")

	parsed, err := client.ExtractReceipt(context.Background(), []byte("fake-png"), "image/jpeg")

	require.NoError(t, err)
	assert.Equal(t, 100.0, parsed["amount_paid_usd"])
	assert.Equal(t, 7.5, parsed["explicit_fee_usd"])

	require.Len(t, captured.Messages, 2)
	userContent := string(captured.Messages[1].Content)
	assert.True(t, strings.HasPrefix(userContent, "["))
	assert.Contains(t, userContent, "data:image/jpeg;base64,ZmFrZS1wbmc=")
}

func TestClient_ExtractReceipt_ParseFailure(t *testing.T) {
	srv := fakeOpenAI(t, http.StatusOK, "[1, 2, 3]", nil)
	defer srv.Close()

	client := newTestClient(t, srv.URL, "test-key")

	_, err := client.ExtractReceipt(context.Background(), []byte("x"), "")

	assert.ErrorIs(t, err, custom_err.ErrReceiptParseFailure)
}

func TestParseRouteProposals(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		wantErr   bool
		wantCount int
		summary   string
	}{
		{name: "plain object", content: `{"routes":[{"name":"a"}],"summary":"s"}`, wantCount: 1, summary: "s"},
		{name: "fenced", content: "```json\n{\"routes\":[{},{}]}\n```", wantCount: 2},
		{name: "fenced single line", content: "```{\"routes\":[{}]}```", wantCount: 1},
		{name: "empty content", content: "", wantCount: 0},
		{name: "routes not an array", content: `{"routes":{"name":"a"},"summary":7}`, wantCount: 0, summary: "7"},
		{name: "not json", content: "no routes today", wantErr: true},
		{name: "top-level array", content: `[{"name":"a"}]`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ParseRouteProposals(tt.content)
			if tt.wantErr {
				assert.ErrorIs(t, err, custom_err.ErrProposalParseFailure)
				return
			}
			require.NoError(t, err)
			assert.True(t, p.Usable)
			assert.Len(t, p.Routes, tt.wantCount)
			assert.Equal(t, tt.summary, p.Summary)
		})
	}
}
