package locale

import (
	"errors"
	"fmt"
	"log/slog"

	"syslang/internal/language"
	"syslang/internal/logging"
)

// ErrNotDetected reports that a source had nothing to offer.
var ErrNotDetected = errors.New("language not detected")

// SourceDefault names the terminal fallback in a Detection.
const SourceDefault = "default"

// Source reads one platform-native raw locale identifier.
type Source interface {
	Name() string
	PreferredLanguage() (string, error)
}

// Attempt records what a single source returned.
type Attempt struct {
	Source string `json:"source"`
	Raw    string `json:"raw,omitempty"`
	Error  string `json:"error,omitempty"`
}

// Detection is the outcome of one detector run.
type Detection struct {
	Tag      language.Tag `json:"language"`
	Raw      string       `json:"raw"`
	Source   string       `json:"source"`
	Attempts []Attempt    `json:"attempts"`
}

// Detector walks platform sources in order, then the fallback source.
type Detector struct {
	sources  []Source
	fallback Source
	logger   *slog.Logger
}

// Option customizes a Detector.
type Option func(*Detector)

// WithSources replaces the platform sources.
func WithSources(sources ...Source) Option {
	return func(d *Detector) {
		d.sources = sources
	}
}

// WithFallback replaces the LANG fallback. A nil source skips straight to
// language.Default.
func WithFallback(src Source) Option {
	return func(d *Detector) {
		d.fallback = src
	}
}

// WithLogger attaches a logger for per-source diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Detector) {
		d.logger = logger
	}
}

// New builds a detector for the current platform.
func New(opts ...Option) *Detector {
	d := &Detector{
		sources:  platformSources(),
		fallback: EnvSource{},
	}
	for _, opt := range opts {
		opt(d)
	}
	d.logger = logging.NewComponentLogger(d.logger, "locale")
	return d
}

// Detect returns the normalized language and how it was reached.
func (d *Detector) Detect() Detection {
	var det Detection
	for _, src := range d.sources {
		if d.try(src, &det) {
			return det
		}
	}
	if d.fallback != nil && d.try(d.fallback, &det) {
		return det
	}
	det.Tag = language.Default
	det.Source = SourceDefault
	d.logger.Debug("no language source available, using default",
		logging.String("language", det.Tag.String()))
	return det
}

// Language is Detect without the diagnostics.
func (d *Detector) Language() language.Tag {
	return d.Detect().Tag
}

func (d *Detector) try(src Source, det *Detection) bool {
	raw, err := read(src)
	attempt := Attempt{Source: src.Name(), Raw: raw}
	if err != nil {
		attempt.Error = err.Error()
		det.Attempts = append(det.Attempts, attempt)
		d.logger.Debug("language source yielded nothing",
			logging.String("source", src.Name()),
			logging.Error(err))
		return false
	}
	det.Attempts = append(det.Attempts, attempt)
	det.Raw = raw
	det.Source = src.Name()
	det.Tag = language.Map(raw)
	d.logger.Debug("language detected",
		logging.String("source", src.Name()),
		logging.String("raw", raw),
		logging.String("language", det.Tag.String()))
	return true
}

// read shields the detector from sources that panic inside native calls.
func read(src Source) (raw string, err error) {
	defer func() {
		if r := recover(); r != nil {
			raw = ""
			err = fmt.Errorf("%s source panicked: %v", src.Name(), r)
		}
	}()
	return src.PreferredLanguage()
}

// DetectSystemLanguage returns the OS-preferred UI language, or
// language.Default when nothing usable is reported.
func DetectSystemLanguage() language.Tag {
	return New().Language()
}
