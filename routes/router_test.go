package routes_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/JordiPons-11/chessrank/config"
	"github.com/JordiPons-11/chessrank/internal/auth"
	"github.com/JordiPons-11/chessrank/internal/testutil"
	"github.com/JordiPons-11/chessrank/routes"
	"github.com/JordiPons-11/chessrank/utils"
)

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testutil.OpenTestDB(t)
	cfg := &config.Config{}
	cfg.App.Env = "test"
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.ExpiryMinutes = 5

	return routes.SetupRoutes(db, cfg), db
}

func createUser(t *testing.T, db *gorm.DB, username, password string) {
	t.Helper()
	hash, err := utils.HashPassword(password)
	require.NoError(t, err)
	require.NoError(t, db.Create(&auth.User{Username: username, PasswordHash: hash}).Error)
}

func login(t *testing.T, r *gin.Engine, username, password string) string {
	t.Helper()
	body, err := json.Marshal(gin.H{"username": username, "password": password})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Data struct {
			AccessToken string `json:"access_token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Data.AccessToken)
	return resp.Data.AccessToken
}

func TestUnauthenticatedRequestsRejected(t *testing.T) {
	r, _ := setupRouter(t)

	for _, path := range []string{"/api/players", "/api/tournaments", "/api/rankings/general"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	r, db := setupRouter(t)
	createUser(t, db, "admin", "s3cret")

	body, _ := json.Marshal(gin.H{"username": "admin", "password": "wrong"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginThenAuthorizedFlow(t *testing.T) {
	r, db := setupRouter(t)
	createUser(t, db, "admin", "s3cret")
	token := login(t, r, "admin", "s3cret")

	// Create a player through the protected API.
	body, _ := json.Marshal(gin.H{"first_name": "jérôme", "last_name": "garcia"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/players", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// Names come back normalized.
	var created struct {
		Data struct {
			FirstName string `json:"first_name"`
			LastName  string `json:"last_name"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "Jerome", created.Data.FirstName)
	assert.Equal(t, "Garcia", created.Data.LastName)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/players", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLeaderboardChartRejectsBadCategory(t *testing.T) {
	r, db := setupRouter(t)
	createUser(t, db, "admin", "s3cret")
	token := login(t, r, "admin", "s3cret")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/rankings/tournaments/1/chart.png?category=X", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGarbageTokenRejected(t *testing.T) {
	r, _ := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/players", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
