// Package uploads implements the object storage gateway: it accepts encoded
// file payloads from the submission pipeline, stores them through the
// S3-compatible storage client and hands back durable retrieval URLs.
package uploads

import (
	"bytes"
	"context"
	"fmt"
	"mime"
	"strings"
	"time"

	"github.com/google/uuid"

	"leadintake/internal/config"
	"leadintake/internal/storage"
)

// UploadError reports a payload the gateway refused (size ceiling, bad
// encoding) or the backend rejected.
type UploadError struct {
	Reason string
	Err    error
}

func (e *UploadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("upload: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("upload: %s", e.Reason)
}

func (e *UploadError) Unwrap() error { return e.Err }

// DeleteError reports a remote rejection of an asset deletion.
type DeleteError struct {
	AssetID string
	Err     error
}

func (e *DeleteError) Error() string {
	return fmt.Sprintf("delete asset %q: %v", e.AssetID, e.Err)
}

func (e *DeleteError) Unwrap() error { return e.Err }

// Gateway stores encoded file payloads and resolves their retrieval URLs.
// Asset IDs are the object keys embedded in gateway URLs.
type Gateway interface {
	// Upload decodes the data URI, stores the payload under folder and
	// returns the durable public URL. The encoded payload is bounded by the
	// configured ceiling; the check happens before any network call.
	Upload(ctx context.Context, dataURI, folder string) (string, error)
	// Delete removes an asset by its ID. Administrative only; the
	// submission path never calls it.
	Delete(ctx context.Context, assetID string) error
	// ResolveDownloadURL exchanges a gateway URL for a short-lived
	// presigned download URL. Best-effort: the input is returned unchanged
	// whenever the asset ID cannot be derived or presigning fails.
	ResolveDownloadURL(ctx context.Context, assetURL string) string
}

const presignExpiry = 15 * time.Minute

type gateway struct {
	store           storage.Storage
	bucket          string
	publicBaseURL   string
	maxEncodedBytes int64
}

// NewGateway constructs a Gateway over the given storage client. The
// configuration is passed in explicitly so tests can substitute both the
// client and the limits.
func NewGateway(store storage.Storage, cfg config.StorageConfig) Gateway {
	max := cfg.MaxEncodedBytes
	if max <= 0 {
		max = config.DefaultMaxEncodedBytes
	}
	return &gateway{
		store:           store,
		bucket:          cfg.Bucket,
		publicBaseURL:   strings.TrimSuffix(cfg.PublicBaseURL, "/"),
		maxEncodedBytes: max,
	}
}

func (g *gateway) Upload(ctx context.Context, dataURI, folder string) (string, error) {
	if int64(len(dataURI)) > g.maxEncodedBytes {
		return "", &UploadError{Reason: fmt.Sprintf("encoded payload of %d bytes exceeds ceiling of %d bytes", len(dataURI), g.maxEncodedBytes)}
	}

	contentType, data, err := ParseDataURI(dataURI)
	if err != nil {
		return "", &UploadError{Reason: "invalid encoded payload", Err: err}
	}

	key := strings.Trim(folder, "/") + "/" + uuid.New().String() + extensionFor(contentType)

	_, err = g.store.Put(ctx, key, bytes.NewReader(data), storage.PutObjectOptions{
		Size:        int64(len(data)),
		ContentType: contentType,
	})
	if err != nil {
		return "", &UploadError{Reason: "storage rejected payload", Err: err}
	}

	return g.publicBaseURL + "/" + g.bucket + "/" + key, nil
}

func (g *gateway) Delete(ctx context.Context, assetID string) error {
	if err := g.store.Delete(ctx, assetID); err != nil {
		return &DeleteError{AssetID: assetID, Err: err}
	}
	return nil
}

func (g *gateway) ResolveDownloadURL(ctx context.Context, assetURL string) string {
	key, ok := g.assetID(assetURL)
	if !ok {
		return assetURL
	}
	presigned, err := g.store.PresignGet(ctx, key, presignExpiry)
	if err != nil {
		return assetURL
	}
	return presigned
}

// assetID derives the object key from a gateway URL.
func (g *gateway) assetID(assetURL string) (string, bool) {
	prefix := g.publicBaseURL + "/" + g.bucket + "/"
	if g.publicBaseURL == "" || !strings.HasPrefix(assetURL, prefix) {
		return "", false
	}
	key := strings.TrimPrefix(assetURL, prefix)
	if key == "" {
		return "", false
	}
	return key, true
}

// extensionFor maps a MIME type to a stable file extension for object keys.
// mime.ExtensionsByType has platform-dependent ordering, so the common upload
// types are pinned.
func extensionFor(contentType string) string {
	switch contentType {
	case "application/pdf":
		return ".pdf"
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "application/octet-stream", "":
		return ""
	}
	if exts, err := mime.ExtensionsByType(contentType); err == nil && len(exts) > 0 {
		return exts[0]
	}
	return ""
}
