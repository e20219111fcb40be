package uploader

import (
	"context"
	"crypto/sha1"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// Uploader pushes an in-memory image to an external host and returns its
// public HTTPS URL.
type Uploader interface {
	Upload(ctx context.Context, data []byte, mimeType string) (string, error)
}

type CloudinaryUploader struct {
	client    *resty.Client
	cloudName string
	apiKey    string
	apiSecret string
	folder    string
}

var _ Uploader = &CloudinaryUploader{}

type uploadResponse struct {
	SecureURL string `json:"secure_url"`
	Error     *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func NewCloudinaryUploader(baseURL, cloudName, apiKey, apiSecret, folder string) *CloudinaryUploader {
	client := resty.New().SetBaseURL(baseURL)
	return &CloudinaryUploader{
		client:    client,
		cloudName: cloudName,
		apiKey:    apiKey,
		apiSecret: apiSecret,
		folder:    folder,
	}
}

// Upload sends the file as a base64 data URI to the fixed target folder.
// Nothing is persisted locally; the caller decides what to do with the URL.
func (u *CloudinaryUploader) Upload(ctx context.Context, data []byte, mimeType string) (string, error) {
	dataURI := fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(data))
	timestamp := fmt.Sprintf("%d", time.Now().Unix())

	var result uploadResponse
	resp, err := u.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"file":      dataURI,
			"api_key":   u.apiKey,
			"timestamp": timestamp,
			"folder":    u.folder,
			"signature": u.sign(timestamp),
		}).
		SetResult(&result).
		SetError(&result).
		Post(fmt.Sprintf("/v1_1/%s/image/upload", u.cloudName))
	if err != nil {
		return "", fmt.Errorf("image upload request failed: %w", err)
	}

	if resp.IsError() {
		if result.Error != nil && result.Error.Message != "" {
			return "", fmt.Errorf("image host rejected upload: %s", result.Error.Message)
		}
		return "", fmt.Errorf("image host returned status %d", resp.StatusCode())
	}

	if result.SecureURL == "" {
		return "", fmt.Errorf("image host response missing secure_url")
	}

	return result.SecureURL, nil
}

// sign computes the Cloudinary request signature: the SHA-1 hex digest of the
// sorted parameter string followed by the API secret.
func (u *CloudinaryUploader) sign(timestamp string) string {
	toSign := fmt.Sprintf("folder=%s&timestamp=%s%s", u.folder, timestamp, u.apiSecret)
	sum := sha1.Sum([]byte(toSign))
	return hex.EncodeToString(sum[:])
}
