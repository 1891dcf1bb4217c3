package services

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/url"

	"ems-backend/shared/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// profilePrefix is the object key prefix for profile photos.
const profilePrefix = "profiles/"

// PhotoStorage is the blob store collaborator for profile photos.
// Objects are addressed by their generated filename under the profiles
// prefix; each employee owns at most one object at a time.
type PhotoStorage struct {
	client     *minio.Client
	bucketName string
}

func NewPhotoStorage() (*PhotoStorage, error) {
	cfg := config.GetConfig()

	// Parse endpoint URL to get host
	parsedURL, err := url.Parse(cfg.MinIOServerURL)
	if err != nil {
		return nil, fmt.Errorf("invalid MinIO endpoint: %v", err)
	}

	endpoint := parsedURL.Host
	useSSL := cfg.MinIOUseSSL

	minioClient, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinIORootUser, cfg.MinIORootPassword, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %v", err)
	}

	storage := &PhotoStorage{
		client:     minioClient,
		bucketName: cfg.MinIOBucketName,
	}

	if err := storage.initializeBucket(); err != nil {
		return nil, err
	}

	return storage, nil
}

func (s *PhotoStorage) initializeBucket() error {
	ctx := context.Background()

	exists, err := s.client.BucketExists(ctx, s.bucketName)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %v", err)
	}

	if !exists {
		err = s.client.MakeBucket(ctx, s.bucketName, minio.MakeBucketOptions{})
		if err != nil {
			return fmt.Errorf("failed to create bucket: %v", err)
		}
		log.Printf("✅ MinIO bucket '%s' created successfully", s.bucketName)
	}

	return nil
}

// UploadProfilePhoto stores a photo under its generated filename
func (s *PhotoStorage) UploadProfilePhoto(ctx context.Context, file io.Reader, fileName string, fileSize int64, contentType string) error {
	log.Printf("⬆️ Uploading photo: %s/%s%s (size: %d bytes)", s.bucketName, profilePrefix, fileName, fileSize)

	_, err := s.client.PutObject(ctx, s.bucketName, profilePrefix+fileName, file, fileSize, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("failed to upload photo: %v", err)
	}

	return nil
}

// DownloadProfilePhoto opens a stored photo for streaming. The caller
// closes the reader.
func (s *PhotoStorage) DownloadProfilePhoto(ctx context.Context, fileName string) (io.ReadCloser, string, error) {
	object, err := s.client.GetObject(ctx, s.bucketName, profilePrefix+fileName, minio.GetObjectOptions{})
	if err != nil {
		return nil, "", fmt.Errorf("failed to download photo: %v", err)
	}

	// GetObject is lazy; Stat confirms the object exists and carries
	// the stored content type.
	info, err := object.Stat()
	if err != nil {
		object.Close()
		return nil, "", fmt.Errorf("photo not found: %v", err)
	}

	return object, info.ContentType, nil
}

// RemoveProfilePhoto deletes a stored photo. Removing a missing object
// is not an error.
func (s *PhotoStorage) RemoveProfilePhoto(ctx context.Context, fileName string) error {
	err := s.client.RemoveObject(ctx, s.bucketName, profilePrefix+fileName, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to remove photo: %v", err)
	}

	log.Printf("🗑️ Photo removed: %s", fileName)
	return nil
}
