package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"sync"
)

// MockS3Service is an in-memory S3Interface for tests
type MockS3Service struct {
	mu      sync.RWMutex
	objects map[string][]byte
}

// NewMockS3Service creates a new mock S3 service
func NewMockS3Service() *MockS3Service {
	return &MockS3Service{objects: make(map[string][]byte)}
}

// SetAsMockForTesting sets this mock as the global S3 service instance
func (m *MockS3Service) SetAsMockForTesting() {
	SetS3Service(m)
}

// UploadFile stores the file content in memory under a deterministic key
func (m *MockS3Service) UploadFile(prefix string, fileHeader *multipart.FileHeader) (string, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}

	key := fmt.Sprintf("%s/mock_%s", prefix, filepath.Base(fileHeader.Filename))

	m.mu.Lock()
	m.objects[key] = content
	m.mu.Unlock()
	return key, nil
}

// UploadBytes stores raw bytes in memory
func (m *MockS3Service) UploadBytes(key, contentType string, data []byte) (string, error) {
	m.mu.Lock()
	m.objects[key] = data
	m.mu.Unlock()
	return key, nil
}

// PublicURL mirrors the real service's URL shape against a fake bucket
func (m *MockS3Service) PublicURL(s3Key string) string {
	if s3Key == "" {
		return ""
	}
	return "https://mock-bucket.s3.test.amazonaws.com/" + s3Key
}

// DeleteFile removes an object from the in-memory store
func (m *MockS3Service) DeleteFile(s3Key string) error {
	m.mu.Lock()
	delete(m.objects, s3Key)
	m.mu.Unlock()
	return nil
}

// Object returns a stored object's content, for assertions
func (m *MockS3Service) Object(key string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.objects[key]
	return data, ok
}
