package translation

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yterada/cctrans/internal/language"
)

func TestGoogleBackendTranslate(t *testing.T) {
	var gotQuery atomic.Value
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery.Store(r.URL.Query())
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"sentences":[{"trans":"こんにちは","orig":"hello "},{"trans":"世界","orig":"world"}],"src":"en"}`))
	}))
	defer server.Close()

	b := NewGoogleBackendWithEndpoint(server.URL, language.NewTable())
	result, err := b.Translate(context.Background(), "hello world", "ja", "auto")
	require.NoError(t, err)
	assert.Equal(t, "こんにちは世界", result.TranslatedText)
	assert.Equal(t, "en", result.DetectedLang)

	query := gotQuery.Load().(url.Values)
	assert.Equal(t, "gtx", query.Get("client"))
	assert.Equal(t, "auto", query.Get("sl"))
	assert.Equal(t, "ja", query.Get("tl"))
	assert.Equal(t, "hello world", query.Get("q"))
}

func TestGoogleBackendHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	b := NewGoogleBackendWithEndpoint(server.URL, language.NewTable())
	_, err := b.Translate(context.Background(), "hello", "ja", "auto")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 429")
}

func TestGoogleBackendEmptyResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"sentences":[],"src":"en"}`))
	}))
	defer server.Close()

	b := NewGoogleBackendWithEndpoint(server.URL, language.NewTable())
	_, err := b.Translate(context.Background(), "hello", "ja", "auto")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty result")
}

func TestGoogleBackendRejectsInvalidLanguages(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer server.Close()

	b := NewGoogleBackendWithEndpoint(server.URL, language.NewTable())

	_, err := b.Translate(context.Background(), "hello", "auto", "auto")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported target language")

	_, err = b.Translate(context.Background(), "hello", "xx", "auto")
	require.Error(t, err)

	_, err = b.Translate(context.Background(), "hello", "ja", "xx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported source language")

	assert.Equal(t, int32(0), calls.Load())
}

func TestGoogleBackendDefaultsToAutoSource(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "auto", r.URL.Query().Get("sl"))
		w.Write([]byte(`{"sentences":[{"trans":"hola"}],"src":"en"}`))
	}))
	defer server.Close()

	b := NewGoogleBackendWithEndpoint(server.URL, language.NewTable())
	result, err := b.Translate(context.Background(), "hello", "es", "")
	require.NoError(t, err)
	assert.Equal(t, "hola", result.TranslatedText)
}
