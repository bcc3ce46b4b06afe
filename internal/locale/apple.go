package locale

import "strings"

// languageCode trims an AppleLocale value such as "zh-Hans_CN" or
// "en_US@rg=gbzzzz" down to its language subtag.
func languageCode(value string) string {
	value = strings.TrimSpace(value)
	if idx := strings.IndexAny(value, "_-@."); idx >= 0 {
		value = value[:idx]
	}
	return value
}
