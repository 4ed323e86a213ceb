package app

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"crewboard/internal/config"
	dom "crewboard/internal/domain"
	"crewboard/internal/repo"
	"crewboard/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	usersFile := store.NewFile[repo.UserDocument](filepath.Join(dir, "users.json"), nil)
	require.NoError(t, usersFile.Save(repo.UserDocument{Users: []dom.User{
		{Name: "Carla", Role: dom.RoleManager},
		{Name: "Ana", Role: dom.RoleEmployee},
	}}))

	users := repo.NewFileUserRepo(usersFile)
	checklists := repo.NewFileChecklistRepo(store.NewFile[[]dom.Checklist](filepath.Join(dir, "checklists.json"), nil))
	feedbacks := repo.NewFileFeedbackRepo(store.NewFile[[]dom.Feedback](filepath.Join(dir, "feedbacks.json"), nil))

	r := gin.New()
	Setup(r, config.Config{}, users, checklists, feedbacks)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestLoginContract(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/login", gin.H{"userName": "Ana"})
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, true, body["success"])
	user := body["user"].(map[string]any)
	assert.Equal(t, "Ana", user["name"])
	assert.Equal(t, "Employee", user["role"])

	// Unknown user is a 200 with success=false, not an HTTP error.
	w = doJSON(t, r, http.MethodPost, "/api/login", gin.H{"userName": "nobody"})
	require.Equal(t, http.StatusOK, w.Code)
	body = decode(t, w)
	assert.Equal(t, false, body["success"])
	assert.NotEmpty(t, body["message"])
}

func TestChecklistLifecycleOverHTTP(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/checklists", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())

	w = doJSON(t, r, http.MethodPost, "/api/checklists", gin.H{
		"title":    "Setup laptop",
		"assignee": "Ana",
		"items":    []string{"Unbox", "Install OS", "Test"},
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decode(t, w)["success"])

	w = doJSON(t, r, http.MethodGet, "/api/checklists", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
	created := list[0]
	assert.Equal(t, "Setup laptop", created["title"])
	assert.Equal(t, false, created["completed"])
	assert.Nil(t, created["completedDate"])
	assert.Equal(t, []any{}, created["itemsCompleted"])
	id := int64(created["id"].(float64))
	assert.Positive(t, id)

	// Toggle through to completion.
	path := fmt.Sprintf("/api/checklists/%d/items", id)
	w = doJSON(t, r, http.MethodPut, path, gin.H{"itemIndex": 0, "completed": true})
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, float64(33), body["progress"])
	assert.Equal(t, false, body["completed"])

	doJSON(t, r, http.MethodPut, path, gin.H{"itemIndex": 1, "completed": true})
	w = doJSON(t, r, http.MethodPut, path, gin.H{"itemIndex": 2, "completed": true})
	body = decode(t, w)
	assert.Equal(t, float64(100), body["progress"])
	assert.Equal(t, true, body["completed"])

	// Out-of-range index is rejected.
	w = doJSON(t, r, http.MethodPut, path, gin.H{"itemIndex": 9, "completed": true})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "itemIndex out of range", decode(t, w)["error"])

	// Partial edit keeps id and date.
	w = doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/checklists/%d", id), gin.H{
		"title": "X",
		"id":    1,
		"date":  "1999-01-01T00:00:00Z",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/checklists", nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Equal(t, "X", list[0]["title"])
	assert.Equal(t, float64(id), list[0]["id"])
	assert.NotEqual(t, "1999-01-01T00:00:00Z", list[0]["date"])

	// Status bypass.
	w = doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/checklists/%d/status", id), gin.H{"completed": false})
	require.Equal(t, http.StatusOK, w.Code)

	// Delete, then further edits are 404.
	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/checklists/%d", id), nil)
	require.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/checklists/%d", id), gin.H{"title": "late"})
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "checklist not found", decode(t, w)["error"])
}

func TestChecklistInvalidID(t *testing.T) {
	r := newTestRouter(t)
	w := doJSON(t, r, http.MethodPut, "/api/checklists/abc", gin.H{"title": "x"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFeedbackLifecycleOverHTTP(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/feedbacks", gin.H{
		"title":    "Kudos",
		"message":  "Great first week",
		"assignee": "Ana",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decode(t, w)["success"])

	w = doJSON(t, r, http.MethodGet, "/api/feedbacks", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
	id := int64(list[0]["id"].(float64))

	w = doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/feedbacks/%d", id), gin.H{"message": "Even better"})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/feedbacks/%d", id), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/feedbacks/%d", id), nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "feedback not found", decode(t, w)["error"])
}

func TestOpsEndpoints(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decode(t, w)["ok"])

	w = doJSON(t, r, http.MethodGet, "/version", nil)
	require.Equal(t, http.StatusOK, w.Code)
}
