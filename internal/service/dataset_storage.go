package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"learning_assistant_backend/internal/config"
	"learning_assistant_backend/internal/util"
	"os"
	"path/filepath"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// DatasetProvider 定义训练数据集的读取接口
type DatasetProvider interface {
	Open(ctx context.Context, name string) (io.ReadCloser, error)
	// Location describes where name is read from, for logs.
	Location(name string) string
}

// LocalDatasetProvider 本地目录实现
type LocalDatasetProvider struct {
	Config *config.StorageConfig
}

func (p *LocalDatasetProvider) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	f, err := os.Open(filepath.Join(p.Config.LocalPath, filepath.Clean("/"+name)))
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", util.ErrDatasetNotFound, p.Location(name))
	}
	return f, err
}

func (p *LocalDatasetProvider) Location(name string) string {
	return filepath.Join(p.Config.LocalPath, filepath.Clean("/"+name))
}

// MinioDatasetProvider MinIO实现
type MinioDatasetProvider struct {
	Config *config.StorageConfig
	Client *minio.Client
}

func NewMinioDatasetProvider(cfg *config.StorageConfig) (*MinioDatasetProvider, error) {
	client, err := minio.New(cfg.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessID, cfg.MinioSecret, ""),
		Secure: cfg.MinioUseSSL,
	})
	if err != nil {
		return nil, err
	}
	return &MinioDatasetProvider{Config: cfg, Client: client}, nil
}

func (p *MinioDatasetProvider) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	obj, err := p.Client.GetObject(ctx, p.Config.MinioBucket, name, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	// GetObject is lazy; Stat surfaces a missing key before the CSV reader does.
	if _, err := obj.Stat(); err != nil {
		obj.Close()
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, fmt.Errorf("%w: %s", util.ErrDatasetNotFound, p.Location(name))
		}
		return nil, err
	}
	return obj, nil
}

// Upload stores a dataset object, used to publish a local corpus to the bucket.
func (p *MinioDatasetProvider) Upload(ctx context.Context, name string, reader io.Reader, size int64) error {
	_, err := p.Client.PutObject(ctx, p.Config.MinioBucket, name, reader, size, minio.PutObjectOptions{
		ContentType: util.MimeCSV,
	})
	return err
}

func (p *MinioDatasetProvider) Location(name string) string {
	return "minio://" + p.Config.MinioBucket + "/" + name
}

// NewDatasetProvider picks the provider for cfg.Storage.Type. A MinIO client
// that cannot be built falls back to the local directory.
func NewDatasetProvider(cfg *config.StorageConfig) (DatasetProvider, error) {
	if cfg.Type == util.StorageMinio {
		p, err := NewMinioDatasetProvider(cfg)
		if err != nil {
			return &LocalDatasetProvider{Config: cfg}, err
		}
		return p, nil
	}
	return &LocalDatasetProvider{Config: cfg}, nil
}
