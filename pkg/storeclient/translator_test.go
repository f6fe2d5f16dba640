package storeclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"shopfront/internal/i18n"
	"shopfront/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTranslationServer(t *testing.T, bundles map[string]i18n.Bundle) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/languages":
			json.NewEncoder(w).Encode([]model.Language{
				{Code: "en", Name: "English"},
				{Code: "ur", Name: "Urdu"},
			})
		default:
			language := r.URL.Path[len("/api/translations/"):]
			bundle, ok := bundles[language]
			if !ok {
				w.WriteHeader(http.StatusNotFound)
				w.Write([]byte(`{"error": {"code": "NOT_FOUND", "message": "unknown language"}}`))
				return
			}
			json.NewEncoder(w).Encode(bundle)
		}
	}))
}

func TestTranslator_ResolvesAfterUse(t *testing.T) {
	ctx := context.Background()
	server := newTranslationServer(t, map[string]i18n.Bundle{
		"en": {"nav": map[string]any{"home": "Home"}},
		"ur": {"nav": map[string]any{"home": "گھر"}},
	})
	defer server.Close()

	session := newTestSession(t)
	translator := NewTranslator(NewClient(server.URL, zerolog.Nop()), session, zerolog.Nop())

	// Before any bundle loads, everything falls back.
	assert.Equal(t, "Home?", translator.T("nav.home", "Home?"))

	require.NoError(t, translator.Use(ctx, "en"))
	assert.Equal(t, "Home", translator.T("nav.home", "fallback"))
	assert.Equal(t, "fallback", translator.T("nav.missing", "fallback"))
	assert.Equal(t, "en", session.Language())

	require.NoError(t, translator.Use(ctx, "ur"))
	assert.Equal(t, "گھر", translator.T("nav.home", "fallback"))
}

func TestTranslator_FailedUseKeepsPreviousLanguage(t *testing.T) {
	ctx := context.Background()
	server := newTranslationServer(t, map[string]i18n.Bundle{
		"en": {"nav": map[string]any{"home": "Home"}},
	})
	defer server.Close()

	session := newTestSession(t)
	translator := NewTranslator(NewClient(server.URL, zerolog.Nop()), session, zerolog.Nop())

	require.NoError(t, translator.Use(ctx, "en"))
	require.Error(t, translator.Use(ctx, "xx"))

	assert.Equal(t, "en", translator.Language())
	assert.Equal(t, "Home", translator.T("nav.home", "fallback"))
}

func TestTranslator_LanguagesFallBackToCache(t *testing.T) {
	ctx := context.Background()
	server := newTranslationServer(t, nil)

	session := newTestSession(t)
	translator := NewTranslator(NewClient(server.URL, zerolog.Nop()), session, zerolog.Nop())

	languages, err := translator.Languages(ctx)
	require.NoError(t, err)
	require.Len(t, languages, 2)

	// Server goes away; the cached list still serves.
	server.Close()

	cached, err := translator.Languages(ctx)
	require.NoError(t, err)
	assert.Equal(t, languages, cached)
}
