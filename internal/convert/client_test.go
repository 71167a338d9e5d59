package convert

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertSendsContractFields(t *testing.T) {
	var got map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/convert", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		_ = json.NewEncoder(w).Encode(map[string]float64{"result": 3.6})
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	result, err := client.Convert(context.Background(), ConversionRequest{
		Category: "Length",
		Value:    "3600",
		FromUnit: "meter",
		ToUnit:   "kilometer",
	})

	require.NoError(t, err)
	assert.InDelta(t, 3.6, result, 1e-9)
	assert.Equal(t, map[string]any{
		"category":  "Length",
		"value":     "3600",
		"from_unit": "meter",
		"to_unit":   "kilometer",
	}, got)
}

func TestConvertCurrencySendsContractFields(t *testing.T) {
	var got map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/currency", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		_ = json.NewEncoder(w).Encode(map[string]float64{"result": 92.5})
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	result, err := client.ConvertCurrency(context.Background(), CurrencyRequest{
		Amount:       "100",
		FromCurrency: "USD",
		ToCurrency:   "EUR",
	})

	require.NoError(t, err)
	assert.InDelta(t, 92.5, result, 1e-9)
	assert.Equal(t, map[string]any{
		"amount":        "100",
		"from_currency": "USD",
		"to_currency":   "EUR",
	}, got)
}

func TestConvertServiceErrorCarriesDetail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"detail": "bad unit"})
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	_, err := client.Convert(context.Background(), ConversionRequest{})

	var svcErr *ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, "bad unit", svcErr.Detail)
	assert.Equal(t, http.StatusBadRequest, svcErr.StatusCode)
}

func TestConvertServiceErrorWithoutDetail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	_, err := client.Convert(context.Background(), ConversionRequest{})

	var svcErr *ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Empty(t, svcErr.Detail)
	assert.Equal(t, http.StatusInternalServerError, svcErr.StatusCode)
}

func TestConvertTransportErrorIsNotServiceError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))
	server.Close() // unreachable on purpose

	client := NewClient(server.URL, time.Second)
	_, err := client.Convert(context.Background(), ConversionRequest{})

	require.Error(t, err)
	var svcErr *ServiceError
	assert.False(t, errors.As(err, &svcErr))
}

func TestConvertDecodesMalformedSuccessBodyAsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	_, err := client.Convert(context.Background(), ConversionRequest{})

	assert.Error(t, err)
}
