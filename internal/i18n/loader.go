package i18n

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

// fileLoader implements Loader for reading JSON bundle files.
type fileLoader struct {
	logger zerolog.Logger
}

// NewFileLoader creates a new file-based bundle loader.
func NewFileLoader(logger zerolog.Logger) Loader {
	return &fileLoader{
		logger: logger.With().Str("component", "i18n-loader").Logger(),
	}
}

// Load reads a JSON translation bundle from the local file system.
func (l *fileLoader) Load(ctx context.Context, filePath string) (Bundle, error) {
	l.logger.Info().Str("file", filePath).Msg("loading translation bundle")

	data, err := os.ReadFile(filePath)
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("failed to read bundle file")
		return nil, fmt.Errorf("failed to read bundle file %s: %w", filePath, err)
	}

	var bundle Bundle
	if err := json.Unmarshal(data, &bundle); err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("failed to decode bundle file")
		return nil, fmt.Errorf("failed to decode bundle file %s: %w", filePath, err)
	}

	l.logger.Info().
		Str("file", filePath).
		Int("keys", len(Flatten(bundle))).
		Msg("translation bundle loaded")

	return bundle, nil
}
