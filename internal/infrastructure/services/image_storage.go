package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"path"
	"strings"
	"sync"

	"cloud.google.com/go/storage"
	"github.com/gabriel-vasile/mimetype"

	"github.com/oksasatya/go-ddd-recipe-api/internal/application/ports"
	"github.com/oksasatya/go-ddd-recipe-api/pkg/helpers"
)

const (
	defaultImageExt         = ".jpg"
	defaultImageContentType = "image/jpeg"
)

// ObjectStore is the blob backend behind ImageStorage.
type ObjectStore interface {
	Put(ctx context.Context, objectPath, contentType string, r io.Reader) (string, error)
	Remove(ctx context.Context, objectPath string) error
	// PathFromURL maps a URL returned by Put back to its object path.
	PathFromURL(url string) (string, bool)
}

// ImageStorage decodes base64 photos and stores them under Prefix.
type ImageStorage struct {
	Store  ObjectStore
	Prefix string
}

func NewImageStorage(store ObjectStore, prefix string) *ImageStorage {
	return &ImageStorage{Store: store, Prefix: strings.Trim(prefix, "/")}
}

func (s *ImageStorage) Upload(ctx context.Context, data, nameHint string) (string, error) {
	raw, err := decodeImage(data)
	if err != nil {
		return "", err
	}
	ext, contentType := defaultImageExt, defaultImageContentType
	if mt := mimetype.Detect(raw); strings.HasPrefix(mt.String(), "image/") && mt.Extension() != "" {
		ext, contentType = mt.Extension(), mt.String()
	}
	name := strings.TrimSpace(nameHint)
	if name == "" {
		name = "photo"
	}
	objectPath := path.Join(s.Prefix, name+ext)
	url, err := s.Store.Put(ctx, objectPath, contentType, bytes.NewReader(raw))
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", objectPath, err)
	}
	return url, nil
}

// Delete removes the object behind url. URLs this storage did not produce are ignored.
func (s *ImageStorage) Delete(ctx context.Context, url string) error {
	objectPath, ok := s.Store.PathFromURL(url)
	if !ok {
		return nil
	}
	if err := s.Store.Remove(ctx, objectPath); err != nil {
		return fmt.Errorf("delete %s: %w", objectPath, err)
	}
	return nil
}

func decodeImage(data string) ([]byte, error) {
	data = strings.TrimSpace(data)
	if strings.HasPrefix(data, "data:") {
		i := strings.Index(data, ";base64,")
		if i < 0 {
			return nil, ports.ErrInvalidImage
		}
		data = data[i+len(";base64,"):]
	}
	if data == "" {
		return nil, ports.ErrInvalidImage
	}
	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ports.ErrInvalidImage, err)
	}
	if len(raw) == 0 {
		return nil, ports.ErrInvalidImage
	}
	return raw, nil
}

// GCSObjectStore writes objects to a Google Cloud Storage bucket.
type GCSObjectStore struct {
	Client *storage.Client
	Bucket string
}

func NewGCSObjectStore(client *storage.Client, bucket string) *GCSObjectStore {
	return &GCSObjectStore{Client: client, Bucket: bucket}
}

func (g *GCSObjectStore) Put(ctx context.Context, objectPath, contentType string, r io.Reader) (string, error) {
	return helpers.UploadObject(ctx, g.Client, g.Bucket, objectPath, contentType, r)
}

func (g *GCSObjectStore) Remove(ctx context.Context, objectPath string) error {
	return helpers.DeleteObject(ctx, g.Client, g.Bucket, objectPath)
}

func (g *GCSObjectStore) PathFromURL(url string) (string, bool) {
	return helpers.ObjectPathFromURL(g.Bucket, url)
}

const memoryURLPrefix = "memory://images/"

// MemoryObjectStore keeps objects in process; used when no bucket is configured.
type MemoryObjectStore struct {
	mu      sync.RWMutex
	objects map[string][]byte
}

func NewMemoryObjectStore() *MemoryObjectStore {
	return &MemoryObjectStore{objects: make(map[string][]byte)}
}

func (m *MemoryObjectStore) Put(ctx context.Context, objectPath, _ string, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	m.mu.Lock()
	m.objects[objectPath] = b
	m.mu.Unlock()
	return memoryURLPrefix + objectPath, nil
}

func (m *MemoryObjectStore) Remove(ctx context.Context, objectPath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	delete(m.objects, objectPath)
	m.mu.Unlock()
	return nil
}

func (m *MemoryObjectStore) PathFromURL(url string) (string, bool) {
	if !strings.HasPrefix(url, memoryURLPrefix) || len(url) == len(memoryURLPrefix) {
		return "", false
	}
	return strings.TrimPrefix(url, memoryURLPrefix), true
}

// Has reports whether objectPath is stored.
func (m *MemoryObjectStore) Has(objectPath string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.objects[objectPath]
	return ok
}
