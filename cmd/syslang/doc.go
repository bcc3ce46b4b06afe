// Package main hosts the syslang CLI entrypoint and command graph.
//
// The Cobra command tree surfaces OS language detection, the saved language
// preference, the JSON-RPC server a host application talks to, and config
// scaffolding. Configuration and logger setup live in the shared command
// context so subcommands only deal with presentation.
package main
