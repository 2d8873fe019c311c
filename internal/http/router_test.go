package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/lexicard/internal/database"
	"github.com/mrlokans/lexicard/internal/entities"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubGenerator struct{}

func (stubGenerator) Word(prompt, _ string) entities.Word {
	return entities.Word{Word: prompt, Definition: "generated", Examples: []string{"e1"}}
}
func (stubGenerator) Examples(string, []string) []string { return []string{"new example"} }
func (stubGenerator) CodeSwitching(string, string, []string) []string {
	return []string{"new switch"}
}
func (stubGenerator) Synonyms(string, []string) []string { return []string{"new synonym"} }
func (stubGenerator) WordTypes(string, []entities.WordType) []entities.WordType {
	return []entities.WordType{"verb"}
}
func (stubGenerator) Image(_, previous string) string { return previous + "-next" }

type stubAuth struct{}

func (stubAuth) CheckPassword(password, hash string) error {
	if password != hash {
		return errors.New("mismatch")
	}
	return nil
}
func (stubAuth) IssueToken(username string, _ time.Time) (string, error) {
	return "token-for-" + username, nil
}

func setupRouter(t *testing.T, guard gin.HandlerFunc) (*gin.Engine, *database.Database) {
	t.Helper()
	db, err := database.NewDatabase(database.MemoryDSN())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	var words []entities.Word
	for i, k := range []string{"alpha", "beta", "gamma", "delta", "epsilon", "zeta", "eta", "theta", "iota", "kappa", "lambda", "mu"} {
		words = append(words, entities.Word{Word: k, Examples: []string{"old"}, Image: "img", CreatedAt: base.Add(time.Duration(i) * time.Minute)})
	}
	var lectures []entities.Lecture
	for i := 0; i < 3; i++ {
		lectures = append(lectures, entities.Lecture{Level: "B1", MarkdownContent: "# L", CreatedAt: base.Add(time.Duration(i) * time.Hour)})
	}
	users := []entities.User{{Username: "demo", PasswordHash: "pw"}}
	require.NoError(t, db.Seed(words, lectures, users))

	router := NewRouter(RouterConfig{
		Words:          db,
		Lectures:       db,
		Users:          db,
		Generator:      stubGenerator{},
		Authenticator:  stubAuth{},
		AuthMiddleware: guard,
		HealthChecks:   map[string]HealthCheck{"database": db.Ping},
		Version:        "test",
	})
	return router, db
}

type response struct {
	Success    bool            `json:"success"`
	Data       json.RawMessage `json:"data"`
	Message    string          `json:"message"`
	Pagination *Pagination     `json:"pagination"`
}

func do(t *testing.T, router *gin.Engine, method, path string, body any) (int, response) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	return w.Code, resp
}

func TestListWords(t *testing.T) {
	router, _ := setupRouter(t, nil)

	code, resp := do(t, router, http.MethodGet, "/api/words?page=2", nil)
	require.Equal(t, http.StatusOK, code)
	assert.True(t, resp.Success)
	require.NotNil(t, resp.Pagination)
	assert.Equal(t, Pagination{Page: 2, Pages: 2, Total: 12}, *resp.Pagination)

	var words []entities.Word
	require.NoError(t, json.Unmarshal(resp.Data, &words))
	assert.Len(t, words, 2)

	code, resp = do(t, router, http.MethodGet, "/api/words?wordUser=ETA", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, int64(4), resp.Pagination.Total) // beta, zeta, eta, theta
}

func TestListWords_EmptyPageKeepsDataArray(t *testing.T) {
	router, _ := setupRouter(t, nil)

	_, resp := do(t, router, http.MethodGet, "/api/words?wordUser=nothing", nil)
	assert.JSONEq(t, `[]`, string(resp.Data))
}

func TestGetWordByKey(t *testing.T) {
	router, _ := setupRouter(t, nil)

	code, resp := do(t, router, http.MethodGet, "/api/words/word/alpha", nil)
	require.Equal(t, http.StatusOK, code)
	var word entities.Word
	require.NoError(t, json.Unmarshal(resp.Data, &word))
	assert.Equal(t, "alpha", word.Word)

	code, resp = do(t, router, http.MethodGet, "/api/words/word/missing", nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.False(t, resp.Success)
	assert.Equal(t, "Word not found", resp.Message)
}

func TestUpdateLevel(t *testing.T) {
	router, db := setupRouter(t, nil)
	word, err := db.GetWordByKey("alpha")
	require.NoError(t, err)

	code, resp := do(t, router, http.MethodPut, "/api/words/"+word.ID+"/level", LevelRequest{Level: "hard"})
	require.Equal(t, http.StatusOK, code)
	var fields map[string]any
	require.NoError(t, json.Unmarshal(resp.Data, &fields))
	assert.Equal(t, "hard", fields["level"])
	assert.Contains(t, fields, "updatedAt")
	assert.Len(t, fields, 2)

	code, _ = do(t, router, http.MethodPut, "/api/words/"+word.ID+"/level", LevelRequest{Level: "extreme"})
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = do(t, router, http.MethodPut, "/api/words/missing/level", LevelRequest{Level: "easy"})
	assert.Equal(t, http.StatusNotFound, code)
}

func TestIncrementSeen(t *testing.T) {
	router, db := setupRouter(t, nil)
	word, err := db.GetWordByKey("beta")
	require.NoError(t, err)

	code, resp := do(t, router, http.MethodPut, "/api/words/"+word.ID+"/increment-seen", nil)
	require.Equal(t, http.StatusOK, code)
	var patch entities.WordPatch
	require.NoError(t, json.Unmarshal(resp.Data, &patch))
	require.NotNil(t, patch.SeenCount)
	assert.Equal(t, 1, *patch.SeenCount)
}

func TestDeck(t *testing.T) {
	router, db := setupRouter(t, nil)
	word, err := db.GetWordByKey("gamma")
	require.NoError(t, err)
	word.Level = entities.LevelMedium
	require.NoError(t, db.SaveWord(word))

	code, resp := do(t, router, http.MethodGet, "/api/words/get-cards-anki", nil)
	require.Equal(t, http.StatusOK, code)
	var deck []entities.Word
	require.NoError(t, json.Unmarshal(resp.Data, &deck))
	require.Len(t, deck, 1)
	assert.Equal(t, "gamma", deck[0].Word)
}

func TestGenerateWord(t *testing.T) {
	router, _ := setupRouter(t, nil)

	code, resp := do(t, router, http.MethodPost, "/api/ai/generate-wordJson", GenerateWordRequest{Prompt: "nu", Language: "en"})
	require.Equal(t, http.StatusCreated, code)
	var word entities.Word
	require.NoError(t, json.Unmarshal(resp.Data, &word))
	assert.Equal(t, "nu", word.Word)
	assert.NotEmpty(t, word.ID)

	code, _ = do(t, router, http.MethodPost, "/api/ai/generate-wordJson", GenerateWordRequest{Prompt: "alpha"})
	assert.Equal(t, http.StatusOK, code)

	code, _ = do(t, router, http.MethodPost, "/api/ai/generate-wordJson", GenerateWordRequest{Prompt: "   "})
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestRegenerate_ReturnsOnlyTheField(t *testing.T) {
	router, db := setupRouter(t, nil)
	word, err := db.GetWordByKey("delta")
	require.NoError(t, err)

	tests := []struct {
		path string
		body any
		key  string
	}{
		{"/api/ai/generate-word-examples/", RegenerateRequest{Word: "delta", OldExamples: []string{"old"}}, "examples"},
		{"/api/ai/generate-code-switching/", RegenerateRequest{Word: "delta", Language: "en", OldExamples: []string{}}, "codeSwitching"},
		{"/api/ai/generate-code-synonyms/", RegenerateRequest{Word: "delta", OldExamples: []string{}}, "sinonyms"},
		{"/api/ai/generate-word-wordtypes/", RegenerateRequest{Word: "delta", OldExamples: []string{"noun"}}, "type"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			code, resp := do(t, router, http.MethodPut, tt.path+word.ID, tt.body)
			require.Equal(t, http.StatusOK, code)

			var fields map[string]json.RawMessage
			require.NoError(t, json.Unmarshal(resp.Data, &fields))
			assert.Len(t, fields, 2)
			assert.Contains(t, fields, tt.key)
			assert.Contains(t, fields, "updatedAt")
		})
	}

	code, resp := do(t, router, http.MethodPost, "/api/ai/generate-image/"+word.ID, RegenerateImageRequest{Word: "delta", ImgOld: "img"})
	require.Equal(t, http.StatusOK, code)
	var patch entities.WordPatch
	require.NoError(t, json.Unmarshal(resp.Data, &patch))
	require.NotNil(t, patch.Image)
	assert.Equal(t, "img-next", *patch.Image)
	assert.Nil(t, patch.Examples)

	stored, err := db.GetWordByID(word.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"new example"}, stored.Examples)
	assert.Equal(t, "img-next", stored.Image)

	code, _ = do(t, router, http.MethodPut, "/api/ai/generate-word-examples/missing", RegenerateRequest{})
	assert.Equal(t, http.StatusNotFound, code)
}

func TestListLectures(t *testing.T) {
	router, _ := setupRouter(t, nil)

	code, resp := do(t, router, http.MethodGet, "/api/lectures?page=1&limit=2", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Nil(t, resp.Pagination)

	var page LecturePage
	require.NoError(t, json.Unmarshal(resp.Data, &page))
	assert.Len(t, page.Data, 2)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 2, page.Pages)
	assert.Equal(t, int64(3), page.Total)
}

func TestLogin(t *testing.T) {
	router, _ := setupRouter(t, nil)

	code, resp := do(t, router, http.MethodPost, "/api/auth/login", LoginRequest{Username: "demo", Password: "pw"})
	require.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"token":"token-for-demo"}`, string(resp.Data))

	code, resp = do(t, router, http.MethodPost, "/api/auth/login", LoginRequest{Username: "demo", Password: "nope"})
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "Invalid credentials", resp.Message)

	code, _ = do(t, router, http.MethodPost, "/api/auth/login", LoginRequest{Username: "ghost", Password: "pw"})
	assert.Equal(t, http.StatusUnauthorized, code)

	code, _ = do(t, router, http.MethodPost, "/api/auth/login", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestAuthMiddlewareGuardsWordsAndAI(t *testing.T) {
	deny := func(c *gin.Context) {
		c.AbortWithStatusJSON(http.StatusUnauthorized, Envelope{Message: "denied"})
	}
	router, _ := setupRouter(t, deny)

	code, _ := do(t, router, http.MethodGet, "/api/words", nil)
	assert.Equal(t, http.StatusUnauthorized, code)
	code, _ = do(t, router, http.MethodPost, "/api/ai/generate-wordJson", GenerateWordRequest{Prompt: "x"})
	assert.Equal(t, http.StatusUnauthorized, code)

	code, _ = do(t, router, http.MethodGet, "/api/lectures", nil)
	assert.Equal(t, http.StatusOK, code)
	code, _ = do(t, router, http.MethodPost, "/api/auth/login", LoginRequest{Username: "demo", Password: "pw"})
	assert.Equal(t, http.StatusOK, code)
}

func TestHealthController_Status(t *testing.T) {
	t.Run("healthy when every check passes", func(t *testing.T) {
		router := NewStatusRouter("1.0.0", map[string]HealthCheck{"database": func() error { return nil }})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		var health HealthResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &health))
		assert.Equal(t, "healthy", health.Status)
		assert.Equal(t, "1.0.0", health.Version)
		assert.Equal(t, "ok", health.Checks["database"])
	})

	t.Run("unhealthy when a check fails", func(t *testing.T) {
		router := NewStatusRouter("1.0.0", map[string]HealthCheck{"tasks": func() error { return errors.New("closed") }})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), "error: closed")
	})

	t.Run("metrics are exposed", func(t *testing.T) {
		router := NewStatusRouter("1.0.0", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
