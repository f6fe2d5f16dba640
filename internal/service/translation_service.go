package service

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"shopfront/internal/i18n"
	"shopfront/internal/model"
	"shopfront/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// translationService implements TranslationService. Bundles come from
// two layers: a JSON file (or S3 object) shipped with the deployment,
// overlaid with entries edited through the admin panel and stored in
// the database. Database entries win.
type translationService struct {
	translationRepo repository.TranslationRepository
	loader          i18n.Loader
	bundleDir       string
	logger          zerolog.Logger

	mu    sync.RWMutex
	files map[string]i18n.Bundle
}

// NewTranslationService creates a new translation service.
func NewTranslationService(
	translationRepo repository.TranslationRepository,
	loader i18n.Loader,
	bundleDir string,
	logger zerolog.Logger,
) TranslationService {
	return &translationService{
		translationRepo: translationRepo,
		loader:          loader,
		bundleDir:       bundleDir,
		logger:          logger.With().Str("service", "translation").Logger(),
		files:           map[string]i18n.Bundle{},
	}
}

func (s *translationService) Languages(ctx context.Context) ([]model.Language, error) {
	languages, err := s.translationRepo.ListLanguages(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list languages")
		return nil, fmt.Errorf("failed to get languages: %w", err)
	}
	return languages, nil
}

// Bundle returns the nested translation mapping for a language. The
// file layer is loaded once per language and cached; an absent file is
// tolerated so languages maintained purely through the admin panel
// still resolve.
func (s *translationService) Bundle(ctx context.Context, language string) (i18n.Bundle, error) {
	language = strings.ToLower(strings.TrimSpace(language))
	if language == "" {
		return nil, model.NewDomainError(model.ErrCodeMissingField, "Language code is required")
	}

	base := s.fileBundle(ctx, language)

	entries, err := s.translationRepo.ListByLanguage(ctx, language)
	if err != nil {
		s.logger.Error().Err(err).Str("language", language).Msg("failed to load translations")
		return nil, fmt.Errorf("failed to get translations: %w", err)
	}

	flat := make(map[string]string, len(entries))
	for _, entry := range entries {
		flat[entry.Key] = entry.Value
	}

	return i18n.Merge(base, i18n.FromEntries(flat)), nil
}

func (s *translationService) List(ctx context.Context, limit, offset int) ([]model.Translation, error) {
	limit, offset = clampPage(limit, offset)
	entries, err := s.translationRepo.List(ctx, limit, offset)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list translations")
		return nil, fmt.Errorf("failed to get translations: %w", err)
	}
	if entries == nil {
		entries = []model.Translation{}
	}
	return entries, nil
}

func (s *translationService) Upsert(ctx context.Context, req *model.TranslationRequest) (*model.Translation, error) {
	if req == nil || req.Language == "" || req.Key == "" || req.Value == "" {
		return nil, model.NewDomainError(model.ErrCodeMissingField, "Language, key and value are required")
	}

	entry := &model.Translation{
		ID:        uuid.New(),
		Language:  strings.ToLower(strings.TrimSpace(req.Language)),
		Key:       strings.TrimSpace(req.Key),
		Value:     req.Value,
		UpdatedAt: time.Now(),
	}

	if err := s.translationRepo.Upsert(ctx, entry); err != nil {
		s.logger.Error().Err(err).
			Str("language", entry.Language).
			Str("key", entry.Key).
			Msg("failed to upsert translation")
		return nil, fmt.Errorf("failed to save translation: %w", err)
	}

	s.logger.Info().
		Str("language", entry.Language).
		Str("key", entry.Key).
		Msg("translation saved")

	return entry, nil
}

func (s *translationService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.translationRepo.Delete(ctx, id); err != nil {
		s.logger.Error().Err(err).Str("translation_id", id.String()).Msg("failed to delete translation")
		return err
	}
	return nil
}

// fileBundle returns the cached file layer for a language, loading it
// on first use. Load failures cache an empty bundle so a missing file
// is only reported once.
func (s *translationService) fileBundle(ctx context.Context, language string) i18n.Bundle {
	s.mu.RLock()
	bundle, ok := s.files[language]
	s.mu.RUnlock()
	if ok {
		return bundle
	}

	bundle, err := s.loader.Load(ctx, filepath.Join(s.bundleDir, language+".json"))
	if err != nil {
		s.logger.Warn().Err(err).Str("language", language).Msg("no file bundle for language")
		bundle = i18n.Bundle{}
	}

	s.mu.Lock()
	s.files[language] = bundle
	s.mu.Unlock()

	return bundle
}
