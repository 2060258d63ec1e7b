package services

import (
	"fmt"
	"mime/multipart"

	"github.com/intellij1704/mobile-display-sub002/utils"
)

// ImageService handles image upload, URL resolution and deletion for
// catalog entities (categories, brands, models, products, variations).
type ImageService interface {
	// UploadImage validates and uploads an image file under the given key
	// prefix, returning the persisted retrieval URL
	UploadImage(prefix string, fileHeader *multipart.FileHeader) (string, error)

	// DeleteImage removes an image from storage by its key
	DeleteImage(imageKey string) error
}

// S3ImageService implements ImageService on top of the object store
type S3ImageService struct {
	s3Service S3Interface
}

var imageServiceInstance ImageService

// InitImageService initializes the image service with the S3 backend
func InitImageService(s3Service S3Interface) ImageService {
	imageServiceInstance = &S3ImageService{s3Service: s3Service}
	return imageServiceInstance
}

// GetImageService returns the initialized image service instance
func GetImageService() ImageService {
	return imageServiceInstance
}

// SetImageService sets the image service instance (primarily for testing)
func SetImageService(service ImageService) {
	imageServiceInstance = service
}

// UploadImage validates and uploads an image, returning its public URL
func (s *S3ImageService) UploadImage(prefix string, fileHeader *multipart.FileHeader) (string, error) {
	if err := utils.ValidateImageFile(fileHeader); err != nil {
		return "", err
	}

	key, err := s.s3Service.UploadFile(prefix, fileHeader)
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}

	return s.s3Service.PublicURL(key), nil
}

// DeleteImage deletes an image from storage
func (s *S3ImageService) DeleteImage(imageKey string) error {
	if imageKey == "" {
		return nil
	}

	if err := s.s3Service.DeleteFile(imageKey); err != nil {
		return fmt.Errorf("failed to delete image: %w", err)
	}

	return nil
}
