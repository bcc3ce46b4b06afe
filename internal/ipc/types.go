package ipc

import (
	"syslang/internal/language"
	"syslang/internal/locale"
)

// ServiceName is the RPC receiver name clients prefix methods with.
const ServiceName = "Syslang"

// SystemLanguageRequest asks for the OS-detected language.
type SystemLanguageRequest struct {
	// Explain requests the per-source attempts alongside the tag.
	Explain bool `json:"explain,omitempty"`
}

// SystemLanguageResponse carries the detected tag.
type SystemLanguageResponse struct {
	Language language.Tag     `json:"language"`
	Source   string           `json:"source,omitempty"`
	Raw      string           `json:"raw,omitempty"`
	Attempts []locale.Attempt `json:"attempts,omitempty"`
}

// InitialLanguageRequest asks which language the host should start in.
type InitialLanguageRequest struct{}

// InitialLanguageResponse carries the resolved start-up language.
type InitialLanguageResponse struct {
	Language       language.Tag `json:"language"`
	FromPreference bool         `json:"from_preference"`
}

// LoadLanguageRequest reads the saved preference.
type LoadLanguageRequest struct{}

// LoadLanguageResponse reports the saved preference, if any.
type LoadLanguageResponse struct {
	Language language.Tag `json:"language,omitempty"`
	Saved    bool         `json:"saved"`
}

// SaveLanguageRequest stores a preference.
type SaveLanguageRequest struct {
	Language string `json:"language"`
}

// SaveLanguageResponse echoes the normalized stored tag.
type SaveLanguageResponse struct {
	Language language.Tag `json:"language"`
}

// ClearLanguageRequest removes the saved preference.
type ClearLanguageRequest struct{}

// ClearLanguageResponse acknowledges a clear.
type ClearLanguageResponse struct {
	Cleared bool `json:"cleared"`
}
