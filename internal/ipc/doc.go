// Package ipc exposes language detection and the saved preference over
// JSON-RPC on a Unix domain socket, and ships the matching client.
//
// A host application treats Syslang.GetSystemLanguage as a zero-argument
// procedure returning a language tag. The server holds an advisory lock beside
// the socket so only one instance answers on a given path, and tags every
// request with a correlation ID in its logs.
package ipc
