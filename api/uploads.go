// ABOUTME: Multipart image and video uploads for properties
// ABOUTME: Uploads need a bearer token exchanged at /api/auth/token
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
)

// UploadResult is the response of POST /properties/{id}/upload.
type UploadResult struct {
	Uploaded int      `json:"uploaded"`
	URLs     []string `json:"urls"`
}

// VideoResult is the response of POST /properties/{id}/upload-video.
type VideoResult struct {
	VideoURL       string   `json:"video_url"`
	Message        string   `json:"message,omitempty"`
	OriginalSizeMB *float64 `json:"original_size_mb,omitempty"`
	FinalSizeMB    *float64 `json:"final_size_mb,omitempty"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in,omitempty"`
}

// UploadToken exchanges the session credential for the bearer token
// the upload origin requires. The exchange goes through the same-origin
// proxy route because the upload target enforces a stricter body-size
// limit and does not accept the session cookie directly.
func (c *Client) UploadToken(ctx context.Context) (*oauth2.Token, error) {
	var resp tokenResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/token", nil, nil, &resp); err != nil {
		return nil, err
	}
	if resp.AccessToken == "" {
		return nil, ErrUnauthorized
	}

	token := &oauth2.Token{AccessToken: resp.AccessToken, TokenType: "Bearer"}
	if resp.ExpiresIn > 0 {
		token.Expiry = time.Now().Add(time.Duration(resp.ExpiresIn) * time.Second)
	}
	return token, nil
}

// UploadImages posts local files as multipart "files[]" parts. The
// caller obtains the bearer token via UploadToken; an expired token is
// re-fetched here rather than failing the upload.
func (c *Client) UploadImages(ctx context.Context, propertyID int64, token *oauth2.Token, paths []string) (*UploadResult, error) {
	if !token.Valid() {
		fresh, err := c.UploadToken(ctx)
		if err != nil {
			return nil, err
		}
		token = fresh
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for _, path := range paths {
		if err := writeFilePart(writer, "files[]", path); err != nil {
			return nil, err
		}
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finish multipart body: %w", err)
	}

	endpoint := fmt.Sprintf("%s/properties/%d/upload", c.baseURL, propertyID)
	var result UploadResult
	if err := c.doMultipart(ctx, endpoint, writer.FormDataContentType(), &buf, token, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// UploadVideo posts one local file as the multipart "file" part.
func (c *Client) UploadVideo(ctx context.Context, propertyID int64, token *oauth2.Token, path string) (*VideoResult, error) {
	if !token.Valid() {
		fresh, err := c.UploadToken(ctx)
		if err != nil {
			return nil, err
		}
		token = fresh
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	if err := writeFilePart(writer, "file", path); err != nil {
		return nil, err
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finish multipart body: %w", err)
	}

	endpoint := fmt.Sprintf("%s/properties/%d/upload-video", c.baseURL, propertyID)
	var result VideoResult
	if err := c.doMultipart(ctx, endpoint, writer.FormDataContentType(), &buf, token, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) doMultipart(ctx context.Context, endpoint, contentType string, body io.Reader, token *oauth2.Token, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		return fmt.Errorf("failed to build upload request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("X-Request-ID", uuid.NewString())
	token.SetAuthHeader(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("upload failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &StatusError{Code: resp.StatusCode, Body: string(bytes.TrimSpace(raw))}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode upload response: %w", err)
	}
	return nil
}

func writeFilePart(writer *multipart.Writer, field, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	part, err := writer.CreateFormFile(field, filepath.Base(path))
	if err != nil {
		return fmt.Errorf("failed to create form part: %w", err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return fmt.Errorf("failed to copy %s: %w", path, err)
	}
	return nil
}
