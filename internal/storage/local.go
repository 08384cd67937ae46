package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LocalStorage menyimpan objek di disk di bawah basePath/bucket/path.
// Bucket bersifat privat; akses baca hanya lewat proxy endpoint.
type LocalStorage struct {
	basePath string
}

func NewLocalStorage(basePath string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	return &LocalStorage{basePath: basePath}, nil
}

func (s *LocalStorage) resolve(bucket, path string) (string, string, error) {
	if !ValidBucket(bucket) {
		return "", "", fmt.Errorf("unknown bucket: %s", bucket)
	}

	// Sanitasi path untuk mencegah directory traversal
	cleanPath := filepath.Clean(path)
	fullPath := filepath.Join(s.basePath, bucket, cleanPath)
	if !strings.HasPrefix(fullPath, filepath.Join(s.basePath, bucket)) {
		return "", "", fmt.Errorf("invalid file path: %s", path)
	}
	return fullPath, cleanPath, nil
}

func (s *LocalStorage) Upload(ctx context.Context, bucket, path string, file io.Reader) (string, error) {
	fullPath, cleanPath, err := s.resolve(bucket, path)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}

	dst, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		// Cleanup on error
		os.Remove(fullPath)
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return cleanPath, nil
}

func (s *LocalStorage) Download(ctx context.Context, bucket, path string) (io.ReadCloser, error) {
	fullPath, _, err := s.resolve(bucket, path)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(fullPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	return file, nil
}

func (s *LocalStorage) Delete(ctx context.Context, bucket, path string) error {
	fullPath, _, err := s.resolve(bucket, path)
	if err != nil {
		return err
	}

	if err := os.Remove(fullPath); err != nil {
		if os.IsNotExist(err) {
			return nil // Already deleted
		}
		return fmt.Errorf("failed to delete file: %w", err)
	}

	return nil
}

func (s *LocalStorage) Exists(ctx context.Context, bucket, path string) (bool, error) {
	fullPath, _, err := s.resolve(bucket, path)
	if err != nil {
		return false, err
	}

	if _, err := os.Stat(fullPath); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}
