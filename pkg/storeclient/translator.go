package storeclient

import (
	"context"
	"sync"

	"shopfront/internal/i18n"
	"shopfront/internal/model"

	"github.com/rs/zerolog"
)

// Translator resolves dotted translation keys against the bundle of
// the active language. T never fails: a missing key, an unloaded
// bundle or an unknown language all yield the caller's fallback text.
type Translator struct {
	client  *Client
	session *Session
	logger  zerolog.Logger

	mu       sync.RWMutex
	language string
	bundle   i18n.Bundle
}

// NewTranslator creates a translator over the given client and session.
// The persisted language choice is restored but its bundle is not
// fetched until Use is called.
func NewTranslator(client *Client, session *Session, logger zerolog.Logger) *Translator {
	return &Translator{
		client:   client,
		session:  session,
		logger:   logger.With().Str("component", "translator").Logger(),
		language: session.Language(),
	}
}

// Language returns the active language code, or "".
func (t *Translator) Language() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.language
}

// Use switches to a language: its bundle is fetched and the choice
// persisted. On failure the previous language and bundle stay active.
func (t *Translator) Use(ctx context.Context, language string) error {
	bundle, err := t.client.TranslationBundle(ctx, language)
	if err != nil {
		t.logger.Warn().Err(err).Str("language", language).Msg("failed to fetch translation bundle")
		return err
	}

	t.mu.Lock()
	t.language = language
	t.bundle = bundle
	t.mu.Unlock()

	if err := t.session.SetLanguage(language); err != nil {
		t.logger.Warn().Err(err).Msg("failed to persist language choice")
	}
	return nil
}

// T resolves a dotted key, returning fallback when the key has no
// non-empty text in the active bundle.
func (t *Translator) T(key, fallback string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return i18n.Resolve(t.bundle, key, fallback)
}

// Languages returns the supported languages, refreshing the session
// cache on success and falling back to it when the server is
// unreachable.
func (t *Translator) Languages(ctx context.Context) ([]model.Language, error) {
	languages, err := t.client.Languages(ctx)
	if err != nil {
		if cached := t.session.CachedLanguages(); len(cached) > 0 {
			t.logger.Debug().Err(err).Msg("serving cached language list")
			return cached, nil
		}
		return nil, err
	}

	if err := t.session.SetCachedLanguages(languages); err != nil {
		t.logger.Warn().Err(err).Msg("failed to cache language list")
	}
	return languages, nil
}
