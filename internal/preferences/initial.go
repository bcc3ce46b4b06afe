package preferences

import (
	"syslang/internal/language"
	"syslang/internal/logging"
)

// Detector supplies the OS language when nothing is saved.
type Detector interface {
	Language() language.Tag
}

// Initial is the language an application should start in.
type Initial struct {
	Tag            language.Tag `json:"language"`
	FromPreference bool         `json:"from_preference"`
}

// InitialLanguage prefers the saved choice, then detection, then
// language.Default. A store that cannot be read counts as no preference.
func InitialLanguage(store *Store, detector Detector) Initial {
	if store != nil {
		tag, ok, err := store.Load()
		if err != nil {
			logging.WarnWithContext(store.logger, "failed to load language preference", "preference_load_failed",
				logging.Error(err),
				logging.String("path", store.path),
				logging.String(logging.FieldImpact, "falling back to the detected system language"),
				logging.String(logging.FieldErrorHint, "fix or delete the preferences file"))
		} else if ok {
			return Initial{Tag: tag, FromPreference: true}
		}
	}
	if detector != nil {
		if tag := detector.Language(); tag.IsSupported() {
			return Initial{Tag: tag}
		}
	}
	return Initial{Tag: language.Default}
}
