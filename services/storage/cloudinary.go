// File: services/storage/cloudinary.go
package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// StorageService defines the interface for media storage operations.
type StorageService interface {
	UploadFile(ctx context.Context, file io.Reader, destFolder, publicID string) (string, error)
	DeleteFile(ctx context.Context, publicID string) error
}

// CloudinaryStorageService implements StorageService using Cloudinary.
type CloudinaryStorageService struct {
	client    *cloudinary.Cloudinary
	cloudName string
}

// NewCloudinaryStorageService creates a new CloudinaryStorageService.
func NewCloudinaryStorageService(client *cloudinary.Cloudinary, cloudName string) *CloudinaryStorageService {
	return &CloudinaryStorageService{client: client, cloudName: cloudName}
}

// UploadFile uploads the file under destFolder and returns its secure URL.
func (s *CloudinaryStorageService) UploadFile(ctx context.Context, file io.Reader, destFolder, publicID string) (string, error) {
	res, err := s.client.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:   destFolder,
		PublicID: publicID,
	})
	if err != nil {
		return "", fmt.Errorf("cloudinary upload failed: %w", err)
	}
	if res.Error.Message != "" {
		return "", fmt.Errorf("cloudinary upload failed: %s", res.Error.Message)
	}
	return res.SecureURL, nil
}

// DeleteFile removes the asset identified by publicID.
func (s *CloudinaryStorageService) DeleteFile(ctx context.Context, publicID string) error {
	_, err := s.client.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("cloudinary destroy failed: %w", err)
	}
	return nil
}
