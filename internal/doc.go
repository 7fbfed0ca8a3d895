// Package internal contains the core implementation packages for drill.
//
// This package follows Go's internal package convention, making these
// packages unavailable for import by external modules while providing
// all the core functionality for the drill CLI tool.
//
// # Package Organization
//
// The internal packages are organized by functional domain:
//
//   - registry: Drill catalog with event broadcasting for watchers
//   - runner: Drill execution and transcript verification
//   - drills: The built-in drill catalog and its recorded transcripts
//   - notes: Embedded study notes with filesystem overlays
//   - server: HTTP server with WebSocket live reload
//   - watcher: File system monitoring with debouncing
//   - config: Configuration management with validation
//   - di: Service container wiring the above together
//
// The remaining packages (ledger, scorecard, seq, textio, codec) are
// the subjects the drills exercise: small, self-contained packages
// each demonstrating one API design technique.
//
// # Inter-Package Communication
//
// Packages communicate through well-defined interfaces:
//
//   - Registry acts as the central catalog and event hub
//   - Runner consumes the registry and produces results and verifications
//   - Server coordinates between all components and handles web requests
//   - Watcher monitors note files and triggers browser reloads
//
// For detailed documentation, see the individual package documentation.
package internal
