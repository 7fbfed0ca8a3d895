// Package cmd provides the command-line interface for drill.
//
// This package implements all CLI commands using the Cobra framework.
//
// # Available Commands
//
//   - list: List the registered drills with their topics
//   - run: Run one or more drills and print their transcripts
//   - verify: Re-run drills and diff the output against the recorded transcripts
//   - notes: List study notes or print one
//   - serve: Serve drills and notes over HTTP with live reload
//   - version: Print version information
//
// # Command Examples
//
//	// List drills with JSON output
//	drill list --format json
//
//	// Run every drill
//	drill run --all
//
//	// Verify the whole catalog
//	drill verify
//
//	// Serve on a custom port
//	drill serve --port 3000
//
// Configuration is read from .drill.yml (override with --config or the
// DRILL_CONFIG_FILE environment variable) and DRILL_* environment
// variables.
package cmd
