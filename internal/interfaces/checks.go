package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/mrlokans/lexicard/internal/api"
	"github.com/mrlokans/lexicard/internal/database"
	"github.com/mrlokans/lexicard/internal/demo"
	"github.com/mrlokans/lexicard/internal/exporters"
	"github.com/mrlokans/lexicard/internal/http"
	"github.com/mrlokans/lexicard/internal/scheduler"
	"github.com/mrlokans/lexicard/internal/stores"
	"github.com/mrlokans/lexicard/internal/tasks"
	"github.com/mrlokans/lexicard/internal/tokenstore"
)

// =============================================================================
// Remote Access
// =============================================================================

var _ stores.WordAPI = (*api.Client)(nil)
var _ stores.LectureAPI = (*api.Client)(nil)

var _ api.TokenSource = (*tokenstore.TokenStore)(nil)

// =============================================================================
// Background Refresh
// =============================================================================

var _ scheduler.Enqueuer = (*tasks.Client)(nil)
var _ tasks.DeckLoader = (*stores.WordStore)(nil)
var _ exporters.DeckWriter = (*exporters.DeckExporter)(nil)

// =============================================================================
// Demo Backend
// =============================================================================

var _ http.WordStore = (*database.Database)(nil)
var _ http.LectureStore = (*database.Database)(nil)
var _ http.UserStore = (*database.Database)(nil)
var _ http.Generator = demo.Generator{}
