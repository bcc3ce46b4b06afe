// Package config loads, normalizes, and validates syslang configuration.
//
// It supplies defaults, expands user paths (including tilde shortcuts), reads
// TOML files, and honours SYSLANG_* environment overrides. Always obtain
// settings through Load so the CLI and RPC server agree on where preferences,
// sockets, and logs live.
package config
