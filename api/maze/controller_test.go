package mazeapi

import (
	"bytes"
	"encoding/json"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/beka-birhanu/vinom-maze/api"
	apii "github.com/beka-birhanu/vinom-maze/api/i"
	"github.com/beka-birhanu/vinom-maze/api/identity"
	"github.com/beka-birhanu/vinom-maze/infrastruture/repo"
	"github.com/beka-birhanu/vinom-maze/infrastruture/token"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/render"
	"github.com/beka-birhanu/vinom-maze/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string)  {}
func (nopLogger) Warn(string)  {}
func (nopLogger) Error(string) {}

type testServer struct {
	handler http.Handler
	token   string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	return newTestServerWithRenderer(t, render.NewPNG(2))
}

func newTestServerWithRenderer(t *testing.T, renderer *render.PNG) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc, err := service.NewMazeService(repo.NewMemoryMazeRepo(), nopLogger{}, &service.Options{MaxDimension: 101})
	require.NoError(t, err)

	controller, err := NewMazeController(svc, renderer)
	require.NoError(t, err)

	tokenizer := token.NewJwtService("test-secret", "test")
	operatorToken, err := tokenizer.Issue("tester", time.Minute)
	require.NoError(t, err)

	router := api.NewRouter(api.Config{
		BaseURL:                 "/api",
		Controllers:             []apii.Controller{controller},
		AuthorizationMiddleware: identity.Authorize(tokenizer),
	})

	return &testServer{handler: router.Handler(), token: operatorToken}
}

func (s *testServer) do(t *testing.T, method, target string, authorized bool) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	if authorized {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}
	w := httptest.NewRecorder()
	s.handler.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

func TestGenerate(t *testing.T) {
	s := newTestServer(t)

	t.Run("PNG by default", func(t *testing.T) {
		w := s.do(t, http.MethodGet, "/api/v1/mazes/generate?width=11&height=7&seed=5", false)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
		assert.Equal(t, "5", w.Header().Get("X-Maze-Seed"))
		assert.NotEmpty(t, w.Header().Get("X-Maze-ID"))

		img, err := png.Decode(bytes.NewReader(w.Body.Bytes()))
		require.NoError(t, err)
		assert.Equal(t, 22, img.Bounds().Dx())
		assert.Equal(t, 14, img.Bounds().Dy())
	})

	t.Run("JSON matches a locally generated maze", func(t *testing.T) {
		w := s.do(t, http.MethodGet, "/api/v1/mazes/generate?width=11&height=7&seed=5&format=json", false)
		require.Equal(t, http.StatusOK, w.Code)

		response := decode[MazeResponse](t, w)
		m, err := maze.New(11, 7)
		require.NoError(t, err)
		m.GenerateWithSeed(5)
		assert.Equal(t, m.Rows(), response.Rows)
		assert.Equal(t, int64(5), response.Seed)
	})

	t.Run("Text", func(t *testing.T) {
		w := s.do(t, http.MethodGet, "/api/v1/mazes/generate?width=5&height=3&format=text", false)
		require.Equal(t, http.StatusOK, w.Code)
		lines := strings.Split(strings.TrimSuffix(w.Body.String(), "\n"), "\n")
		assert.Len(t, lines, 3)
		assert.Len(t, lines[0], 5)
	})

	t.Run("Bad requests", func(t *testing.T) {
		for _, target := range []string{
			"/api/v1/mazes/generate?width=4&height=5",
			"/api/v1/mazes/generate?width=1&height=5",
			"/api/v1/mazes/generate?width=201&height=5",
			"/api/v1/mazes/generate?height=5",
			"/api/v1/mazes/generate?width=abc&height=5",
			"/api/v1/mazes/generate?width=5&height=5&seed=x",
			"/api/v1/mazes/generate?width=5&height=5&format=gif",
		} {
			w := s.do(t, http.MethodGet, target, false)
			assert.Equal(t, http.StatusBadRequest, w.Code, target)
		}
	})
}

func TestImageSizeLimit(t *testing.T) {
	renderer := render.NewPNG(10)
	renderer.MaxPixels = 100 * 100
	s := newTestServerWithRenderer(t, renderer)

	w := s.do(t, http.MethodGet, "/api/v1/mazes/generate?width=11&height=11&seed=1", false)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "pixel limit")

	w = s.do(t, http.MethodGet, "/api/v1/mazes?limit=5", true)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode[ListResponse](t, w).Mazes)

	w = s.do(t, http.MethodGet, "/api/v1/mazes/generate?width=9&height=9&seed=1", false)
	assert.Equal(t, http.StatusOK, w.Code)

	w = s.do(t, http.MethodGet, "/api/v1/mazes/generate?width=11&height=11&seed=1&format=json", false)
	require.Equal(t, http.StatusOK, w.Code)
	created := decode[MazeResponse](t, w)

	w = s.do(t, http.MethodGet, "/api/v1/mazes/"+created.ID.String()+"/image", false)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestArchiveRoutes(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/api/v1/mazes/generate?width=9&height=9&seed=1&format=json", false)
	require.Equal(t, http.StatusOK, w.Code)
	created := decode[MazeResponse](t, w)

	t.Run("By ID", func(t *testing.T) {
		w := s.do(t, http.MethodGet, "/api/v1/mazes/"+created.ID.String(), false)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, created.Rows, decode[MazeResponse](t, w).Rows)

		w = s.do(t, http.MethodGet, "/api/v1/mazes/"+created.ID.String()+"/image", false)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	})

	t.Run("Unknown and malformed IDs", func(t *testing.T) {
		w := s.do(t, http.MethodGet, "/api/v1/mazes/"+uuid.NewString(), false)
		assert.Equal(t, http.StatusNotFound, w.Code)

		w = s.do(t, http.MethodGet, "/api/v1/mazes/not-a-uuid", false)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("List requires a token", func(t *testing.T) {
		w := s.do(t, http.MethodGet, "/api/v1/mazes", false)
		assert.Equal(t, http.StatusUnauthorized, w.Code)

		w = s.do(t, http.MethodGet, "/api/v1/mazes?limit=5", true)
		require.Equal(t, http.StatusOK, w.Code)
		list := decode[ListResponse](t, w)
		require.Len(t, list.Mazes, 1)
		assert.Equal(t, created.ID, list.Mazes[0].ID)
	})

	t.Run("Delete", func(t *testing.T) {
		target := "/api/v1/mazes/" + created.ID.String()

		w := s.do(t, http.MethodDelete, target, false)
		assert.Equal(t, http.StatusUnauthorized, w.Code)

		w = s.do(t, http.MethodDelete, target, true)
		assert.Equal(t, http.StatusNoContent, w.Code)

		w = s.do(t, http.MethodDelete, target, true)
		assert.Equal(t, http.StatusNotFound, w.Code)

		w = s.do(t, http.MethodGet, target, false)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestAuthorizeRejectsMalformedHeaders(t *testing.T) {
	s := newTestServer(t)

	for _, header := range []string{"Token abc", "Bearer", "Bearer not.a.jwt"} {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/mazes", nil)
		req.Header.Set("Authorization", header)
		w := httptest.NewRecorder()
		s.handler.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code, header)
	}
}
