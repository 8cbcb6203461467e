package http

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"interest-calc/core/engine"
)

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := DefaultConfig()
	cfg.Version = "test"
	return New(engine.New(nil), cfg, nil).Router()
}

func post(t *testing.T, r http.Handler, body string) (*httptest.ResponseRecorder, CalculateResponse) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/calculate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	var resp CalculateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), rec.Body.String())
	return rec, resp
}

func TestCalculateSuccess(t *testing.T) {
	rec, resp := post(t, newRouter(t), `{"principal":"1500","rate":"4.5","period":"3"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Interest = 202.50", resp.Result)
	assert.Equal(t, "202.5", resp.Interest)
	assert.Empty(t, resp.Error)
	assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))
}

func TestCalculateAcceptsJSONNumbers(t *testing.T) {
	rec, resp := post(t, newRouter(t), `{"principal":1000,"rate":5,"period":2}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Interest = 100.00", resp.Result)
}

func TestCalculateValidationErrors(t *testing.T) {
	tests := []struct {
		body string
		want string
		kind string
	}{
		{`{"rate":"5","period":"2"}`, "All fields are required.", "MISSING_FIELD"},
		{`{"principal":null,"rate":"5","period":"2"}`, "All fields are required.", "MISSING_FIELD"},
		{`{"principal":"abc","rate":"5","period":"2"}`, "Invalid Input, should be a number.", "NOT_A_NUMBER"},
		{`{"principal":-10,"rate":"5","period":"2"}`, "Input should be greater than 0.", "NON_POSITIVE_VALUE"},
		{`{"principal":"1000","rate":"150","period":"2"}`, "Rate should not be more than 100.", "RATE_OUT_OF_RANGE"},
	}

	r := newRouter(t)
	for _, tt := range tests {
		rec, resp := post(t, r, tt.body)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code, tt.body)
		assert.Equal(t, tt.want, resp.Error, tt.body)
		assert.Equal(t, tt.kind, resp.Kind, tt.body)
		assert.Empty(t, resp.Result, tt.body)
	}
}

func TestCalculateRejectsOutOfRangeMagnitudes(t *testing.T) {
	r := newRouter(t)
	for _, body := range []string{
		`{"principal":"1e50000000","rate":"5","period":"2"}`,
		`{"principal":"1e-2000000000","rate":"1e-2000000000","period":"1"}`,
		`{"principal":1e999,"rate":"5","period":"2"}`,
	} {
		start := time.Now()
		rec, resp := post(t, r, body)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code, body)
		assert.Equal(t, "Invalid Input, should be a number.", resp.Error, body)
		assert.Equal(t, "NOT_A_NUMBER", resp.Kind, body)
		assert.Less(t, time.Since(start), time.Second, body)
	}
}

func TestCalculateMalformedBody(t *testing.T) {
	r := newRouter(t)
	for _, body := range []string{`{`, `{"principal":true,"rate":"5","period":"2"}`} {
		rec, resp := post(t, r, body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
		assert.Equal(t, "INVALID_JSON", resp.Kind, body)
	}
}

func TestRequestIDIsEchoed(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	newRouter(t).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
}

func TestVersion(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	rec := httptest.NewRecorder()
	newRouter(t).ServeHTTP(rec, req)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "test", body["version"])
}

func TestCORSPreflight(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/api/calculate", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	newRouter(t).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRunStopsOnCancel(t *testing.T) {
	gin.SetMode(gin.TestMode)

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())

	cfg := DefaultConfig()
	cfg.Address = addr
	a := New(engine.New(nil), cfg, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/api/health")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
