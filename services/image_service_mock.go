package services

import (
	"fmt"
	"mime/multipart"
	"path/filepath"
	"sync"

	"github.com/intellij1704/mobile-display-sub002/utils"
)

// MockImageService is an in-memory ImageService for tests
type MockImageService struct {
	mu       sync.Mutex
	Uploaded []string
}

// NewMockImageService creates a new mock image service
func NewMockImageService() *MockImageService {
	return &MockImageService{}
}

// SetAsMockForTesting sets this mock as the global image service instance
func (m *MockImageService) SetAsMockForTesting() {
	SetImageService(m)
}

// UploadImage validates the file and returns a deterministic fake URL
func (m *MockImageService) UploadImage(prefix string, fileHeader *multipart.FileHeader) (string, error) {
	if err := utils.ValidateImageFile(fileHeader); err != nil {
		return "", err
	}

	url := fmt.Sprintf("https://mock-bucket.s3.test.amazonaws.com/%s/mock_%s",
		prefix, filepath.Base(fileHeader.Filename))

	m.mu.Lock()
	m.Uploaded = append(m.Uploaded, url)
	m.mu.Unlock()
	return url, nil
}

// DeleteImage is a no-op for the mock
func (m *MockImageService) DeleteImage(imageKey string) error {
	return nil
}
