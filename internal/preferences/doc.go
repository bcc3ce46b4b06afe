// Package preferences persists the user's explicit UI language choice.
//
// The choice lives in a small TOML document (language = "zh-CN") and always
// wins over OS detection when the application resolves its initial language.
// Writers serialize on an advisory lock beside the file and replace it
// atomically; readers never lock. Keys other than language are preserved so
// the file can grow additional settings.
package preferences
