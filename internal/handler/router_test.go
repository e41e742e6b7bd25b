package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"numinterp/internal/controller"
	"numinterp/internal/service"
	"numinterp/internal/service/ambiguity"
	"numinterp/internal/service/phone"
	"numinterp/pkg/mcp"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	logger := zap.NewNop()
	svc := service.NewInterpretService(
		ambiguity.NewGenerator(ambiguity.Limits{MaxTokens: 6}, logger),
		phone.NewPrefixValidator(nil, logger),
		"GR",
		2,
		logger,
	)
	return SetupRouter(
		controller.NewInterpretController(svc, 3, logger),
		mcp.NewInterpretServer(svc, "test", logger),
		"/mcp",
		logger,
	)
}

func post(t *testing.T, h http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter(t).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestInterpret(t *testing.T) {
	rec := post(t, newTestRouter(t), "/api/v1/interpret", controller.InterpretRequest{Input: "20 5"})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		RequestID       string `json:"request_id"`
		Validator       string `json:"validator"`
		Input           string `json:"input"`
		ValidCount      int    `json:"valid_count"`
		Interpretations []struct {
			Digits string `json:"digits"`
			Valid  bool   `json:"valid"`
		} `json:"interpretations"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.NotEmpty(t, resp.RequestID)
	assert.Equal(t, rec.Header().Get("X-Request-ID"), resp.RequestID)
	assert.Equal(t, "prefix", resp.Validator)
	assert.Equal(t, "20 5", resp.Input)
	require.Len(t, resp.Interpretations, 2)
	assert.Equal(t, "25", resp.Interpretations[0].Digits)
	assert.Equal(t, "205", resp.Interpretations[1].Digits)
}

func TestInterpret_ValidOnlyKeepsRequestID(t *testing.T) {
	h := newTestRouter(t)
	payload, _ := json.Marshal(controller.InterpretRequest{Input: "69 12 34 56 78", ValidOnly: true})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/interpret", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", "abc-123")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp service.InterpretResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Interpretations)
	for _, in := range resp.Interpretations {
		assert.True(t, in.Valid)
		assert.NotEmpty(t, in.E164)
	}
	assert.Equal(t, "abc-123", rec.Header().Get("X-Request-ID"))
}

func TestInterpret_Errors(t *testing.T) {
	h := newTestRouter(t)

	assert.Equal(t, http.StatusBadRequest, post(t, h, "/api/v1/interpret", map[string]string{}).Code)
	assert.Equal(t, http.StatusBadRequest, post(t, h, "/api/v1/interpret", controller.InterpretRequest{Input: "12x"}).Code)
	assert.Equal(t, http.StatusRequestEntityTooLarge, post(t, h, "/api/v1/interpret", controller.InterpretRequest{Input: "1 2 3 4 5 6 7"}).Code)
}

func TestInterpretBatch(t *testing.T) {
	h := newTestRouter(t)

	rec := post(t, h, "/api/v1/interpret/batch", controller.InterpretBatchRequest{Inputs: []string{"487", "x", "20"}})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp controller.InterpretBatchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Results, 3)
	assert.Len(t, resp.Results[0].Interpretations, 4)
	assert.NotEmpty(t, resp.Results[1].Error)
	assert.Equal(t, "20", resp.Results[2].Interpretations[0].Digits)

	rec = post(t, h, "/api/v1/interpret/batch", controller.InterpretBatchRequest{Inputs: []string{"1", "2", "3", "4"}})
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)

	rec = post(t, h, "/api/v1/interpret/batch", controller.InterpretBatchRequest{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
