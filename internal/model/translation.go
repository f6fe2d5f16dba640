package model

import (
	"time"

	"github.com/google/uuid"
)

// Translation is a single (language, dotted key, text) entry. Keys are
// namespaced by a category prefix, e.g. "nav.home".
type Translation struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Language  string    `json:"language" db:"language"`
	Key       string    `json:"key" db:"key"`
	Value     string    `json:"value" db:"value"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// Language is a supported language. The languages table is the single
// source of truth for the supported set; clients fetch it rather than
// hardcoding codes.
type Language struct {
	Code string `json:"code" db:"code"`
	Name string `json:"name" db:"name"`
}

// TranslationRequest represents the payload for upserting an entry.
type TranslationRequest struct {
	Language string `json:"language"`
	Key      string `json:"key"`
	Value    string `json:"value"`
}
