// Package storage persists uploaded shop and product images.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
	"gocloud.dev/gcerrors"
)

var (
	ErrUnsupportedType = errors.New("only jpeg, jpg, png and gif images are allowed")
	ErrTooLarge        = errors.New("file exceeds the maximum upload size")
	ErrImageNotFound   = errors.New("image not found")
)

var allowedExtensions = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".gif":  true,
}

var allowedMIMETypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
}

// StoredImage describes an image written to the store
type StoredImage struct {
	Key         string
	URL         string
	ContentType string
	Size        int64
}

// ImageStore validates and persists images in a blob bucket
type ImageStore struct {
	bucket     *blob.Bucket
	maxBytes   int64
	publicPath string
	now        func() time.Time
}

// NewFileImageStore opens a store backed by a local directory
func NewFileImageStore(dir string, maxBytes int64, publicPath string) (*ImageStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	bucket, err := fileblob.OpenBucket(dir, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open upload bucket: %w", err)
	}

	return NewImageStore(bucket, maxBytes, publicPath), nil
}

// NewImageStore wraps an already opened bucket
func NewImageStore(bucket *blob.Bucket, maxBytes int64, publicPath string) *ImageStore {
	return &ImageStore{
		bucket:     bucket,
		maxBytes:   maxBytes,
		publicPath: "/" + strings.Trim(publicPath, "/"),
		now:        time.Now,
	}
}

// MaxBytes returns the largest accepted image size
func (s *ImageStore) MaxBytes() int64 {
	return s.maxBytes
}

// Save checks the extension, size and sniffed content of an image and writes it
// under a generated name of the form <unix-millis>-<random><ext>.
func (s *ImageStore) Save(ctx context.Context, filename string, r io.Reader) (*StoredImage, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedExtensions[ext] {
		return nil, ErrUnsupportedType
	}

	data, err := io.ReadAll(io.LimitReader(r, s.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}
	if int64(len(data)) > s.maxBytes {
		return nil, ErrTooLarge
	}

	mt := mimetype.Detect(data)
	if !allowedMIMETypes[mt.String()] {
		return nil, ErrUnsupportedType
	}

	key := fmt.Sprintf("%d-%s%s", s.now().UnixMilli(), strings.ReplaceAll(uuid.NewString(), "-", "")[:12], ext)

	err = s.bucket.WriteAll(ctx, key, data, &blob.WriterOptions{ContentType: mt.String()})
	if err != nil {
		return nil, fmt.Errorf("failed to write image: %w", err)
	}

	return &StoredImage{
		Key:         key,
		URL:         path.Join(s.publicPath, key),
		ContentType: mt.String(),
		Size:        int64(len(data)),
	}, nil
}

// Open returns a reader for a stored image. Keys containing path separators are rejected.
func (s *ImageStore) Open(ctx context.Context, key string) (*blob.Reader, error) {
	if key == "" || strings.ContainsAny(key, `/\`) || strings.HasPrefix(key, ".") {
		return nil, ErrImageNotFound
	}

	reader, err := s.bucket.NewReader(ctx, key, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, ErrImageNotFound
		}
		return nil, fmt.Errorf("failed to open image: %w", err)
	}

	return reader, nil
}

// Close releases the bucket
func (s *ImageStore) Close() error {
	return s.bucket.Close()
}
