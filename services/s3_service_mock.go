package services

import (
	"context"
	"fmt"
	"sync"
)

// MockS3Service keeps objects in memory
type MockS3Service struct {
	objects map[string]mockObject
	mu      sync.RWMutex

	// PutErr, when set, is returned by every PutObject call
	PutErr error
}

type mockObject struct {
	body        []byte
	contentType string
}

// NewMockS3Service creates an empty mock store
func NewMockS3Service() *MockS3Service {
	return &MockS3Service{objects: make(map[string]mockObject)}
}

// PutObject stores a copy of body under key
func (m *MockS3Service) PutObject(_ context.Context, key string, body []byte, contentType string) error {
	if m.PutErr != nil {
		return m.PutErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[key] = mockObject{body: append([]byte(nil), body...), contentType: contentType}
	return nil
}

// GetPresignedURL fails for keys that were never stored
func (m *MockS3Service) GetPresignedURL(_ context.Context, key string) (string, error) {
	if key == "" {
		return "", nil
	}
	if !m.ObjectExists(key) {
		return "", fmt.Errorf("object not found in mock S3: %s", key)
	}
	return fmt.Sprintf("https://test-bucket.s3.us-east-1.amazonaws.com/%s?mock=true", key), nil
}

func (m *MockS3Service) DeleteObject(_ context.Context, key string) error {
	m.mu.Lock()
	delete(m.objects, key)
	m.mu.Unlock()
	return nil
}

// Object returns the stored body and content type (for test assertions)
func (m *MockS3Service) Object(key string) ([]byte, string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	obj, ok := m.objects[key]
	return obj.body, obj.contentType, ok
}

// ObjectExists checks if key is in mock storage
func (m *MockS3Service) ObjectExists(key string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.objects[key]
	return ok
}

// Keys lists every stored key
func (m *MockS3Service) Keys() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	keys := make([]string, 0, len(m.objects))
	for k := range m.objects {
		keys = append(keys, k)
	}
	return keys
}
