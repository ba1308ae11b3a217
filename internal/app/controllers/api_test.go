package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notesync/notesync/internal/app/models"
	"github.com/notesync/notesync/internal/app/routes"
	"github.com/notesync/notesync/internal/bootstrap"
	"github.com/notesync/notesync/internal/store"
)

// setupAPI assembles the real router on a fresh store.
func setupAPI(t *testing.T) (*gin.Engine, *store.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st, err := store.Open(filepath.Join(t.TempDir(), "db.json"), zerolog.Nop())
	require.NoError(t, err)

	deps := bootstrap.BuildDependencies(st, zerolog.Nop())
	router := gin.New()
	routes.SetupRouter(router, deps.DataController, deps.CourseController, deps.NoteController, deps.AuthController)
	return router, st
}

func performJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func signupUser(t *testing.T, router *gin.Engine, email, password, name string) string {
	t.Helper()
	rec := performJSON(t, router, http.MethodPost, "/api/auth/signup", gin.H{
		"email": email, "password": password, "name": name,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	return decodeBody[map[string]string](t, rec)["id"]
}

func TestSignupFlow(t *testing.T) {
	router, _ := setupAPI(t)

	rec := performJSON(t, router, http.MethodPost, "/api/auth/signup", gin.H{
		"email": "a@b.com", "password": "x", "name": "A",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	user := decodeBody[map[string]string](t, rec)
	assert.NotEmpty(t, user["id"])
	assert.Equal(t, "a@b.com", user["email"])
	assert.Equal(t, "A", user["name"])
	assert.NotContains(t, rec.Body.String(), "password")

	rec = performJSON(t, router, http.MethodPost, "/api/auth/signup", gin.H{
		"email": "a@b.com", "password": "x", "name": "A",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Email exists", decodeBody[map[string]string](t, rec)["error"])

	rec = performJSON(t, router, http.MethodPost, "/api/auth/signup", gin.H{"email": "b@b.com"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLoginEndpoint(t *testing.T) {
	router, _ := setupAPI(t)
	signupUser(t, router, "a@b.com", "x", "A")

	rec := performJSON(t, router, http.MethodPost, "/api/auth/login", gin.H{"email": "a@b.com", "password": "x"})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = performJSON(t, router, http.MethodPost, "/api/auth/login", gin.H{"email": "a@b.com", "password": "nope"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid credentials", decodeBody[map[string]string](t, rec)["error"])
}

func TestCourseEndpoints(t *testing.T) {
	router, _ := setupAPI(t)

	rec := performJSON(t, router, http.MethodPost, "/api/courses", gin.H{
		"title":       "Statistics",
		"description": "Probability and inference",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeBody[models.Course](t, rec)
	require.NotEmpty(t, created.ID)

	// Round trip through get-by-id.
	rec = performJSON(t, router, http.MethodGet, "/api/courses/"+created.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, created, decodeBody[models.Course](t, rec))

	rec = performJSON(t, router, http.MethodPut, "/api/courses/"+created.ID, gin.H{"icon": "📊"})
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decodeBody[models.Course](t, rec)
	assert.Equal(t, "📊", updated.Icon)
	assert.Equal(t, "Statistics", updated.Title)
	assert.Equal(t, created.ID, updated.ID)

	rec = performJSON(t, router, http.MethodPost, "/api/courses", gin.H{"title": "No description"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = performJSON(t, router, http.MethodGet, "/api/courses/missing", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = performJSON(t, router, http.MethodPut, "/api/courses/missing", gin.H{"icon": "x"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNoteEndpoints(t *testing.T) {
	router, st := setupAPI(t)
	authorID := signupUser(t, router, "ada@school.edu", "pw", "Ada")

	rec := performJSON(t, router, http.MethodPost, "/api/notes", gin.H{
		"courseId": "c1",
		"title":    "Limits",
		"content":  "epsilon-delta",
		"authorId": authorID,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	note := decodeBody[models.CommunityNote](t, rec)
	assert.Equal(t, "Ada", note.Author)

	t.Run("unknown author is rejected", func(t *testing.T) {
		rec := performJSON(t, router, http.MethodPost, "/api/notes", gin.H{
			"courseId": "c1", "title": "x", "content": "y", "authorId": "nobody",
		})
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid author", decodeBody[map[string]string](t, rec)["error"])
		assert.Len(t, st.ListNotes(), 1)
	})

	t.Run("non-author edit is forbidden", func(t *testing.T) {
		rec := performJSON(t, router, http.MethodPut, "/api/notes/"+note.ID, gin.H{
			"title": "hijacked", "authorId": "someone-else",
		})
		require.Equal(t, http.StatusForbidden, rec.Code)

		current, err := st.GetNote(note.ID)
		require.NoError(t, err)
		assert.Equal(t, "Limits", current.Title)
	})

	t.Run("author edit succeeds", func(t *testing.T) {
		rec := performJSON(t, router, http.MethodPut, "/api/notes/"+note.ID, gin.H{
			"title": "Limits v2", "authorId": authorID,
		})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Limits v2", decodeBody[models.CommunityNote](t, rec).Title)
	})

	t.Run("non-author delete is forbidden, author delete succeeds", func(t *testing.T) {
		rec := performJSON(t, router, http.MethodDelete, "/api/notes/"+note.ID, gin.H{"authorId": "someone-else"})
		require.Equal(t, http.StatusForbidden, rec.Code)
		assert.Len(t, st.ListNotes(), 1)

		rec = performJSON(t, router, http.MethodDelete, "/api/notes/"+note.ID, gin.H{"authorId": authorID})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, decodeBody[map[string]bool](t, rec)["success"])
		assert.Empty(t, st.ListNotes())

		rec = performJSON(t, router, http.MethodDelete, "/api/notes/"+note.ID, gin.H{"authorId": authorID})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestRateNoteEndpoint(t *testing.T) {
	router, _ := setupAPI(t)
	authorID := signupUser(t, router, "ada@school.edu", "pw", "Ada")

	rec := performJSON(t, router, http.MethodPost, "/api/notes", gin.H{
		"courseId": "c1", "title": "Derivatives", "content": "chain rule", "authorId": authorID,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	note := decodeBody[models.CommunityNote](t, rec)

	rec = performJSON(t, router, http.MethodPost, "/api/notes/"+note.ID+"/rate", gin.H{"userId": "u1", "rating": 5})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = performJSON(t, router, http.MethodPost, "/api/notes/"+note.ID+"/rate", gin.H{"userId": "u1", "rating": 3})
	require.Equal(t, http.StatusOK, rec.Code)

	summary := decodeBody[map[string]float64](t, rec)
	assert.Equal(t, 3.0, summary["averageRating"])
	assert.Equal(t, 1.0, summary["ratingsCount"])

	t.Run("zero rating is rejected", func(t *testing.T) {
		rec := performJSON(t, router, http.MethodPost, "/api/notes/"+note.ID+"/rate", gin.H{"userId": "u1", "rating": 0})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing fields are rejected", func(t *testing.T) {
		rec := performJSON(t, router, http.MethodPost, "/api/notes/"+note.ID+"/rate", gin.H{"rating": 4})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown note is not found", func(t *testing.T) {
		rec := performJSON(t, router, http.MethodPost, "/api/notes/missing/rate", gin.H{"userId": "u1", "rating": 4})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestGetDataStripsPasswords(t *testing.T) {
	router, _ := setupAPI(t)
	signupUser(t, router, "a@b.com", "topsecret", "A")

	rec := performJSON(t, router, http.MethodGet, "/api/data", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var data struct {
		Courses        []models.Course   `json:"courses"`
		CommunityNotes []json.RawMessage `json:"communityNotes"`
		Users          []map[string]any  `json:"users"`
		Analytics      json.RawMessage   `json:"analytics"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &data))

	assert.Len(t, data.Courses, 3, "seeded courses are served")
	require.Len(t, data.Users, 1)
	assert.NotContains(t, data.Users[0], "password")
	assert.NotContains(t, rec.Body.String(), "topsecret")
	assert.NotNil(t, data.Analytics)
}

func TestHealthEndpoint(t *testing.T) {
	router, _ := setupAPI(t)

	rec := performJSON(t, router, http.MethodGet, "/api/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}
