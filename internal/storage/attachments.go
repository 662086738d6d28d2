package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"toolcrib/internal/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Saver writes uploaded inspection reports to a local directory and,
// when a mirror is configured, re-uploads them to an S3-compatible
// bucket. The stored report link points at the mirror when enabled,
// at the local static path otherwise.
type Saver struct {
	localDir string
	baseURL  string
	bucket   string
	client   *minio.Client // nil when mirroring is disabled
}

func NewSaver(cfg *config.Config) (*Saver, error) {
	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}

	s := &Saver{
		localDir: cfg.UploadDir,
		baseURL:  strings.TrimRight(cfg.StorageBaseURL, "/"),
		bucket:   cfg.StorageBucket,
	}

	if cfg.MirrorEnabled() {
		client, err := minio.New(cfg.StorageEndpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(cfg.StorageAccessKey, cfg.StorageSecretKey, ""),
			Secure: cfg.StorageUseSSL,
		})
		if err != nil {
			return nil, fmt.Errorf("init object storage client: %w", err)
		}
		s.client = client
	}

	return s, nil
}

// SanitizeFilename strips any path components from an uploaded name.
func SanitizeFilename(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = filepath.Base(name)
	if name == "." || name == "/" || name == "" {
		return "_"
	}
	return name
}

// Save stores the file under its sanitized original name and returns
// the link to record as report_link. A mirror failure fails the whole
// call; there is no local-only fallback.
func (s *Saver) Save(ctx context.Context, name string, r io.Reader) (string, error) {
	name = SanitizeFilename(name)
	localPath := filepath.Join(s.localDir, name)

	out, err := os.Create(localPath)
	if err != nil {
		return "", fmt.Errorf("save attachment: %w", err)
	}
	size, err := io.Copy(out, r)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return "", fmt.Errorf("write attachment: %w", err)
	}

	if s.client == nil {
		return "/static/reports/" + name, nil
	}

	f, err := os.Open(localPath)
	if err != nil {
		return "", fmt.Errorf("reopen attachment for mirror: %w", err)
	}
	defer f.Close()

	_, err = s.client.PutObject(ctx, s.bucket, name, f, size, minio.PutObjectOptions{})
	if err != nil {
		return "", fmt.Errorf("mirror attachment to %s: %w", s.bucket, err)
	}

	return s.baseURL + "/" + name, nil
}
