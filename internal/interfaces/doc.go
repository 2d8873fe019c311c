// Package interfaces documents the core abstractions used throughout the application.
//
// # Interface Categories
//
// ## Client Side
//
//   - WordAPI, LectureAPI: remote operations the stores depend on (internal/stores/interfaces.go)
//   - TokenSource: bearer token lookup for outgoing requests (internal/api/client.go)
//
// ## Background Refresh
//
//   - DeckLoader: the word store as seen by the refresh task (internal/tasks/refresh_deck.go)
//   - Enqueuer: task queue used by the cron scheduler (internal/scheduler/deck_refresh.go)
//   - DeckWriter: deck export target (internal/exporters/generic.go)
//
// ## Demo Backend
//
//   - WordStore, LectureStore, UserStore: persistence behind the HTTP handlers (internal/http/stores.go)
//   - Generator: AI content source (internal/http/stores.go)
//   - Authenticator: password check and token issue (internal/http/stores.go)
//
// # Adding a New Deck Export Format
//
//  1. Implement DeckWriter in internal/exporters/
//
//     type CSVExporter struct {
//         path string
//     }
//
//     func (e *CSVExporter) Export(words []entities.Word) (ExportResult, error)
//
//  2. Pass it to tasks.NewRefreshDeckQueue in entrypoint.go
//
// # Compile-Time Interface Checks
//
// All implementations should include compile-time checks to ensure they satisfy
// their interfaces. This catches missing methods at compile time rather than runtime:
//
//	var _ SomeInterface = (*MyImplementation)(nil)
//
// See checks.go for the full list.
package interfaces
