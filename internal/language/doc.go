// Package language defines the UI language tags the application ships
// translations for and reduces arbitrary OS locale identifiers to them.
//
// Every raw identifier, whether it came from the Windows registry, NSLocale,
// LANG, or a saved preference, passes through Map or Parse here so the rest of
// the code only ever handles one of the supported tags.
package language
