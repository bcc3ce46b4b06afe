// Package locale detects the user's preferred UI language from the host OS.
//
// Each platform contributes one or more Sources selected by build tags: the
// Windows registry (PreferredUILanguages under Control Panel\Desktop, then
// its MuiCached subkey), NSLocale on macOS (or `defaults read` when built
// without cgo), and nothing extra elsewhere. When every platform source comes
// up empty the Detector consults LANG, and when that is unset it settles on
// language.Default.
//
// Detection never fails. Source errors are recorded on the returned Detection
// and logged at debug level so callers that only want a tag can ignore them.
package locale
