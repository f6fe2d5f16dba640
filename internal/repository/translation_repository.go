package repository

import (
	"context"
	"fmt"
	"time"

	"shopfront/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// translationRepository implements the TranslationRepository interface using PostgreSQL.
type translationRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewTranslationRepository creates a new PostgreSQL-backed translation repository.
func NewTranslationRepository(pool *pgxpool.Pool, logger zerolog.Logger) TranslationRepository {
	return &translationRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "translation").Logger(),
	}
}

// ListLanguages retrieves the supported language set.
func (r *translationRepository) ListLanguages(ctx context.Context) ([]model.Language, error) {
	rows, err := r.pool.Query(ctx, "SELECT code, name FROM languages ORDER BY code")
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query languages")
		return nil, fmt.Errorf("failed to query languages: %w", err)
	}
	defer rows.Close()

	var languages []model.Language
	for rows.Next() {
		var l model.Language
		if err := rows.Scan(&l.Code, &l.Name); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan language row")
			return nil, fmt.Errorf("failed to scan language: %w", err)
		}
		languages = append(languages, l)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating language rows")
		return nil, fmt.Errorf("error iterating languages: %w", err)
	}

	return languages, nil
}

// ListByLanguage retrieves all entries for one language.
func (r *translationRepository) ListByLanguage(ctx context.Context, language string) ([]model.Translation, error) {
	query := `SELECT id, language, key, value, updated_at FROM translations WHERE language = $1 ORDER BY key`

	rows, err := r.pool.Query(ctx, query, language)
	if err != nil {
		r.logger.Error().Err(err).Str("language", language).Msg("failed to query translations")
		return nil, fmt.Errorf("failed to query translations: %w", err)
	}
	defer rows.Close()

	return scanTranslations(rows)
}

// List retrieves entries across languages with pagination.
func (r *translationRepository) List(ctx context.Context, limit, offset int) ([]model.Translation, error) {
	query := `SELECT id, language, key, value, updated_at FROM translations ORDER BY language, key LIMIT $1 OFFSET $2`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query translations")
		return nil, fmt.Errorf("failed to query translations: %w", err)
	}
	defer rows.Close()

	return scanTranslations(rows)
}

func scanTranslations(rows pgx.Rows) ([]model.Translation, error) {
	var translations []model.Translation
	for rows.Next() {
		var t model.Translation
		if err := rows.Scan(&t.ID, &t.Language, &t.Key, &t.Value, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan translation: %w", err)
		}
		translations = append(translations, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating translations: %w", err)
	}

	return translations, nil
}

// Upsert inserts or replaces the entry for (language, key).
func (r *translationRepository) Upsert(ctx context.Context, t *model.Translation) error {
	query := `
		INSERT INTO translations (id, language, key, value, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (language, key)
		DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at
	`

	_, err := r.pool.Exec(ctx, query, t.ID, t.Language, t.Key, t.Value, time.Now())
	if err != nil {
		r.logger.Error().Err(err).
			Str("language", t.Language).
			Str("key", t.Key).
			Msg("failed to upsert translation")
		return fmt.Errorf("failed to upsert translation: %w", err)
	}

	return nil
}

// Delete removes an entry.
func (r *translationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, "DELETE FROM translations WHERE id = $1", id)
	if err != nil {
		r.logger.Error().Err(err).Str("translation_id", id.String()).Msg("failed to delete translation")
		return fmt.Errorf("failed to delete translation: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrTranslationNotFound
	}

	return nil
}
