package service

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"shopfront/internal/i18n"
	"shopfront/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTranslationService_Bundle(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	t.Run("Database entries overlay the file bundle", func(t *testing.T) {
		mockRepo := new(MockTranslationRepository)
		mockLoader := new(MockBundleLoader)
		service := NewTranslationService(mockRepo, mockLoader, "bundles", logger)

		mockLoader.On("Load", ctx, filepath.Join("bundles", "en.json")).Return(i18n.Bundle{
			"nav": map[string]any{
				"home": "Home",
				"cart": "Cart",
			},
		}, nil)
		mockRepo.On("ListByLanguage", ctx, "en").Return([]model.Translation{
			{Language: "en", Key: "nav.cart", Value: "Basket"},
			{Language: "en", Key: "footer.contact", Value: "Contact us"},
		}, nil)

		bundle, err := service.Bundle(ctx, "en")

		require.NoError(t, err)
		assert.Equal(t, "Home", i18n.Resolve(bundle, "nav.home", "fallback"))
		assert.Equal(t, "Basket", i18n.Resolve(bundle, "nav.cart", "fallback"))
		assert.Equal(t, "Contact us", i18n.Resolve(bundle, "footer.contact", "fallback"))
	})

	t.Run("Missing file bundle is tolerated", func(t *testing.T) {
		mockRepo := new(MockTranslationRepository)
		mockLoader := new(MockBundleLoader)
		service := NewTranslationService(mockRepo, mockLoader, "bundles", logger)

		mockLoader.On("Load", ctx, mock.Anything).Return(nil, errors.New("no such file"))
		mockRepo.On("ListByLanguage", ctx, "ur").Return([]model.Translation{
			{Language: "ur", Key: "nav.home", Value: "گھر"},
		}, nil)

		bundle, err := service.Bundle(ctx, "ur")

		require.NoError(t, err)
		assert.Equal(t, "گھر", i18n.Resolve(bundle, "nav.home", "fallback"))
	})

	t.Run("File bundle is loaded once per language", func(t *testing.T) {
		mockRepo := new(MockTranslationRepository)
		mockLoader := new(MockBundleLoader)
		service := NewTranslationService(mockRepo, mockLoader, "bundles", logger)

		mockLoader.On("Load", ctx, filepath.Join("bundles", "fr.json")).Return(i18n.Bundle{}, nil).Once()
		mockRepo.On("ListByLanguage", ctx, "fr").Return([]model.Translation{}, nil)

		_, err := service.Bundle(ctx, "fr")
		require.NoError(t, err)
		_, err = service.Bundle(ctx, "FR")
		require.NoError(t, err)

		mockLoader.AssertExpectations(t)
	})

	t.Run("Empty language rejected", func(t *testing.T) {
		service := NewTranslationService(new(MockTranslationRepository), new(MockBundleLoader), "bundles", logger)

		bundle, err := service.Bundle(ctx, "  ")

		require.Error(t, err)
		assert.Nil(t, bundle)
	})
}

func TestTranslationService_Upsert(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	t.Run("Success normalises language and key", func(t *testing.T) {
		mockRepo := new(MockTranslationRepository)
		service := NewTranslationService(mockRepo, new(MockBundleLoader), "bundles", logger)

		mockRepo.On("Upsert", ctx, mock.AnythingOfType("*model.Translation")).Return(nil)

		entry, err := service.Upsert(ctx, &model.TranslationRequest{
			Language: " EN ",
			Key:      " nav.home ",
			Value:    "Home",
		})

		require.NoError(t, err)
		assert.Equal(t, "en", entry.Language)
		assert.Equal(t, "nav.home", entry.Key)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Missing fields rejected", func(t *testing.T) {
		mockRepo := new(MockTranslationRepository)
		service := NewTranslationService(mockRepo, new(MockBundleLoader), "bundles", logger)

		_, err := service.Upsert(ctx, &model.TranslationRequest{Language: "en", Key: "nav.home"})

		require.Error(t, err)
		mockRepo.AssertNotCalled(t, "Upsert")
	})
}
