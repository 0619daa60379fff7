package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestUploadTokenExchange(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/token", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]any{"access_token": "upload-tok", "expires_in": 600})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	token, err := client.UploadToken(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "upload-tok", token.AccessToken)
	assert.True(t, token.Valid())
}

func TestUploadTokenMissingMeansUnauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.UploadToken(context.Background())
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestUploadImagesSendsFilesParts(t *testing.T) {
	var auth string
	var fields []string
	var names []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/properties/12/upload", r.URL.Path)
		auth = r.Header.Get("Authorization")

		require.NoError(t, r.ParseMultipartForm(1<<20))
		for field, headers := range r.MultipartForm.File {
			for _, h := range headers {
				fields = append(fields, field)
				names = append(names, h.Filename)
			}
		}

		_ = json.NewEncoder(w).Encode(UploadResult{Uploaded: 2, URLs: []string{"https://cdn/a.jpg", "https://cdn/b.jpg"}})
	}))
	defer server.Close()

	one := writeTempFile(t, "fachada.jpg", "jpeg-bytes")
	two := writeTempFile(t, "sala.jpg", "jpeg-bytes")

	client := NewClient(server.URL)
	token := &oauth2.Token{AccessToken: "upload-tok", Expiry: time.Now().Add(time.Hour)}

	result, err := client.UploadImages(context.Background(), 12, token, []string{one, two})
	require.NoError(t, err)

	assert.Equal(t, "Bearer upload-tok", auth)
	assert.Equal(t, []string{"files[]", "files[]"}, fields)
	assert.ElementsMatch(t, []string{"fachada.jpg", "sala.jpg"}, names)
	assert.Equal(t, 2, result.Uploaded)
	assert.Len(t, result.URLs, 2)
}

func TestUploadImagesRefreshesExpiredToken(t *testing.T) {
	var tokenCalls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/auth/token" {
			tokenCalls++
			_ = json.NewEncoder(w).Encode(map[string]any{"access_token": "fresh", "expires_in": 600})
			return
		}
		assert.Equal(t, "Bearer fresh", r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(UploadResult{Uploaded: 1, URLs: []string{"https://cdn/a.jpg"}})
	}))
	defer server.Close()

	path := writeTempFile(t, "a.jpg", "x")

	client := NewClient(server.URL)
	stale := &oauth2.Token{AccessToken: "stale", Expiry: time.Now().Add(-time.Minute)}

	_, err := client.UploadImages(context.Background(), 1, stale, []string{path})
	require.NoError(t, err)
	assert.Equal(t, 1, tokenCalls)
}

func TestUploadVideoSendsSingleFilePart(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/properties/9/upload-video", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))

		_, ok := r.MultipartForm.File["file"]
		assert.True(t, ok, "video goes in the file field")

		size := 42.0
		_ = json.NewEncoder(w).Encode(VideoResult{VideoURL: "https://cdn/tour.mp4", OriginalSizeMB: &size})
	}))
	defer server.Close()

	path := writeTempFile(t, "tour.mp4", "mp4-bytes")

	client := NewClient(server.URL)
	token := &oauth2.Token{AccessToken: "tok", Expiry: time.Now().Add(time.Hour)}

	result, err := client.UploadVideo(context.Background(), 9, token, path)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn/tour.mp4", result.VideoURL)
}

func TestUploadUnauthorizedSurfacesLoginError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	path := writeTempFile(t, "a.jpg", "x")

	client := NewClient(server.URL)
	token := &oauth2.Token{AccessToken: "bad", Expiry: time.Now().Add(time.Hour)}

	_, err := client.UploadImages(context.Background(), 1, token, []string{path})
	assert.ErrorIs(t, err, ErrUnauthorized)
}
