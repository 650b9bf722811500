package imgur

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

	"github.com/chartops/chartsync/internal/domain/repositories"
)

const (
	defaultUploadURL = "https://api.imgur.com/3/image"
	uploadTimeout    = 60 * time.Second
)

// ImgurImageHostRepository implements repositories.ImageHostRepository
// against the Imgur anonymous-upload API, authenticated with a Client-ID.
type ImgurImageHostRepository struct {
	clientID  string
	uploadURL string
	client    *http.Client
}

// NewImageHostRepository creates an image host repository for the Imgur API.
func NewImageHostRepository(clientID string) repositories.ImageHostRepository {
	return newImageHostRepository(clientID, defaultUploadURL)
}

func newImageHostRepository(clientID, uploadURL string) *ImgurImageHostRepository {
	return &ImgurImageHostRepository{
		clientID:  clientID,
		uploadURL: uploadURL,
		client:    &http.Client{Timeout: uploadTimeout},
	}
}

// uploadResponse is the subset of the Imgur response we consume.
type uploadResponse struct {
	Data struct {
		Link  string `json:"link"`
		Error string `json:"error"`
	} `json:"data"`
	Success bool `json:"success"`
	Status  int  `json:"status"`
}

// Upload sends the image at the given path and returns its public URL.
func (r *ImgurImageHostRepository) Upload(ctx context.Context, imagePath string) (string, error) {
	body, contentType, err := buildUploadBody(imagePath)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.uploadURL, body)
	if err != nil {
		return "", fmt.Errorf("failed to build upload request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Client-ID "+r.clientID)

	resp, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	var payload uploadResponse
	if decodeErr := json.NewDecoder(resp.Body).Decode(&payload); decodeErr != nil {
		return "", fmt.Errorf("failed to decode upload response: %w", decodeErr)
	}

	if resp.StatusCode != http.StatusOK || !payload.Success {
		return "", fmt.Errorf(
			"upload rejected with status %d: %s", resp.StatusCode, payload.Data.Error,
		)
	}
	if payload.Data.Link == "" {
		return "", fmt.Errorf("upload response for %q has no link", filepath.Base(imagePath))
	}

	return payload.Data.Link, nil
}

// buildUploadBody assembles the multipart form Imgur expects: the image file
// plus a "type" field marking it as a file upload.
func buildUploadBody(imagePath string) (*bytes.Buffer, string, error) {
	file, err := os.Open(imagePath)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open image %q: %w", imagePath, err)
	}
	defer func() { _ = file.Close() }()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("image", filepath.Base(imagePath))
	if err != nil {
		return nil, "", fmt.Errorf("failed to build multipart body: %w", err)
	}
	if _, copyErr := io.Copy(part, file); copyErr != nil {
		return nil, "", fmt.Errorf("failed to read image %q: %w", imagePath, copyErr)
	}

	if fieldErr := writer.WriteField("type", "file"); fieldErr != nil {
		return nil, "", fmt.Errorf("failed to build multipart body: %w", fieldErr)
	}

	if closeErr := writer.Close(); closeErr != nil {
		return nil, "", fmt.Errorf("failed to finalize multipart body: %w", closeErr)
	}

	return &buf, writer.FormDataContentType(), nil
}
