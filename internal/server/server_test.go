package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postJSON(t *testing.T, server *Server, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	server.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	server := New()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	server.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())
}

func TestConvertEndpoint(t *testing.T) {
	server := New()

	w := postJSON(t, server, "/api/convert",
		`{"category":"Length","value":"3600","from_unit":"meter","to_unit":"kilometer"}`)

	require.Equal(t, http.StatusOK, w.Code)
	var payload map[string]float64
	require.NoError(t, json.NewDecoder(w.Body).Decode(&payload))
	assert.InDelta(t, 3.6, payload["result"], 1e-9)
}

func TestConvertEndpointAcceptsNumericValue(t *testing.T) {
	server := New()

	w := postJSON(t, server, "/api/convert",
		`{"category":"Length","value":3600,"from_unit":"meter","to_unit":"kilometer"}`)

	require.Equal(t, http.StatusOK, w.Code)
	var payload map[string]float64
	require.NoError(t, json.NewDecoder(w.Body).Decode(&payload))
	assert.InDelta(t, 3.6, payload["result"], 1e-9)
}

func TestConvertEndpointFailuresReportDetail(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantDetail string
	}{
		{
			name:       "unknown category",
			body:       `{"category":"Volume","value":"1","from_unit":"liter","to_unit":"gallon"}`,
			wantDetail: "unknown category: Volume",
		},
		{
			name:       "unknown unit",
			body:       `{"category":"Length","value":"1","from_unit":"furlong","to_unit":"meter"}`,
			wantDetail: "unknown unit: furlong",
		},
		{
			name:       "non-numeric value",
			body:       `{"category":"Length","value":"abc","from_unit":"meter","to_unit":"kilometer"}`,
			wantDetail: "invalid request body",
		},
		{
			name:       "malformed body",
			body:       `{`,
			wantDetail: "invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(t, New(), "/api/convert", tt.body)

			require.Equal(t, http.StatusBadRequest, w.Code)
			var payload map[string]string
			require.NoError(t, json.NewDecoder(w.Body).Decode(&payload))
			assert.Equal(t, tt.wantDetail, payload["detail"])
		})
	}
}

func TestCurrencyEndpoint(t *testing.T) {
	server := New()

	w := postJSON(t, server, "/api/currency",
		`{"amount":"100","from_currency":"USD","to_currency":"EUR"}`)

	require.Equal(t, http.StatusOK, w.Code)
	var payload map[string]float64
	require.NoError(t, json.NewDecoder(w.Body).Decode(&payload))
	assert.InDelta(t, 92, payload["result"], 1e-9)
}

func TestCurrencyEndpointUnknownCode(t *testing.T) {
	server := New()

	w := postJSON(t, server, "/api/currency",
		`{"amount":"1","from_currency":"USD","to_currency":"XYZ"}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	var payload map[string]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&payload))
	assert.Equal(t, "unknown unit: XYZ", payload["detail"])
}

func TestMetricsEndpointExposesCounters(t *testing.T) {
	server := New()
	postJSON(t, server, "/api/convert",
		`{"category":"Length","value":"1","from_unit":"meter","to_unit":"meter"}`)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	server.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "transmute_conversions_total")
}
