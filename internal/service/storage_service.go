package service

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"quizhub_backend/internal/config"
	"quizhub_backend/pkg/logger"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
)

// StorageProvider abstracts where uploaded files end up. The local provider
// serves development; MinIO serves deployments.
type StorageProvider interface {
	Save(ctx context.Context, file *multipart.FileHeader, dir string) (string, error)
	Delete(ctx context.Context, path string) error
}

type StorageService struct {
	provider StorageProvider
}

func NewStorageService(cfg *config.StorageConfig) (*StorageService, error) {
	switch cfg.Type {
	case "minio":
		provider, err := newMinioProvider(cfg)
		if err != nil {
			return nil, err
		}
		return &StorageService{provider: provider}, nil
	default:
		return &StorageService{provider: &localProvider{root: cfg.LocalPath}}, nil
	}
}

func (s *StorageService) Save(ctx context.Context, file *multipart.FileHeader, dir string) (string, error) {
	return s.provider.Save(ctx, file, dir)
}

func (s *StorageService) Delete(ctx context.Context, path string) error {
	return s.provider.Delete(ctx, path)
}

// objectName keeps the original extension but replaces the name, so user
// supplied filenames never reach the filesystem or bucket.
func objectName(file *multipart.FileHeader, dir string) string {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	return fmt.Sprintf("%s/%s%s", dir, uuid.New().String(), ext)
}

type localProvider struct {
	root string
}

func (p *localProvider) Save(_ context.Context, file *multipart.FileHeader, dir string) (string, error) {
	name := objectName(file, dir)
	full := filepath.Join(p.root, name)
	if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
		return "", err
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(full)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return "/uploads/" + name, nil
}

func (p *localProvider) Delete(_ context.Context, path string) error {
	rel := strings.TrimPrefix(path, "/uploads/")
	return os.Remove(filepath.Join(p.root, rel))
}

type minioProvider struct {
	client *minio.Client
	bucket string
}

func newMinioProvider(cfg *config.StorageConfig) (*minioProvider, error) {
	client, err := minio.New(cfg.MinioEndpoint, &minio.Options{
		Creds: credentials.NewStaticV4(cfg.MinioAccessID, cfg.MinioSecret, ""),
	})
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	exists, err := client.BucketExists(ctx, cfg.MinioBucket)
	if err != nil {
		return nil, err
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.MinioBucket, minio.MakeBucketOptions{}); err != nil {
			return nil, err
		}
		logger.Log.Info("created storage bucket", zap.String("bucket", cfg.MinioBucket))
	}
	return &minioProvider{client: client, bucket: cfg.MinioBucket}, nil
}

func (p *minioProvider) Save(ctx context.Context, file *multipart.FileHeader, dir string) (string, error) {
	name := objectName(file, dir)
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	_, err = p.client.PutObject(ctx, p.bucket, name, src, file.Size, minio.PutObjectOptions{
		ContentType: file.Header.Get("Content-Type"),
	})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("/%s/%s", p.bucket, name), nil
}

func (p *minioProvider) Delete(ctx context.Context, path string) error {
	name := strings.TrimPrefix(path, "/"+p.bucket+"/")
	return p.client.RemoveObject(ctx, p.bucket, name, minio.RemoveObjectOptions{})
}
