// Package memory implements ObjectStorage in process memory. Demo mode uses
// it so document processing works with no cloud credentials at all.
package memory

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/yongxin12/Macrohard/internal/domain"
)

type object struct {
	data        []byte
	contentType string
}

// Storage is an in-memory object store. Safe for concurrent use.
type Storage struct {
	mu      sync.RWMutex
	objects map[string]object
}

// NewStorage creates an empty in-memory object store.
func NewStorage() *Storage {
	return &Storage{objects: map[string]object{}}
}

func (s *Storage) Upload(_ context.Context, key string, content io.Reader, contentType string) (string, error) {
	data, err := io.ReadAll(content)
	if err != nil {
		return "", fmt.Errorf("reading upload content: %w", err)
	}
	s.mu.Lock()
	s.objects[key] = object{data: data, contentType: contentType}
	s.mu.Unlock()
	return "memory://" + key, nil
}

func (s *Storage) Download(_ context.Context, key string) (io.ReadCloser, error) {
	s.mu.RLock()
	obj, ok := s.objects[key]
	s.mu.RUnlock()
	if !ok {
		return nil, domain.ErrNotFound
	}
	return io.NopCloser(bytes.NewReader(obj.data)), nil
}

func (s *Storage) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.objects, key)
	s.mu.Unlock()
	return nil
}

func (s *Storage) GetPresignedURL(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	_, ok := s.objects[key]
	s.mu.RUnlock()
	if !ok {
		return "", domain.ErrNotFound
	}
	return "memory://" + key, nil
}
