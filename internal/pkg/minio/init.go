package minio

import (
	"PortalPiloto/internal/api/config"
	"context"
	"fmt"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

var (
	// Client instância global do cliente MinIO
	Client *minio.Client
	// MainBucket bucket principal de mídia
	MainBucket string
)

// Init inicializa o cliente MinIO
func Init() error {
	cfg := config.Cfg.MinIO
	if cfg.Endpoint == "" {
		return fmt.Errorf("minio endpoint não configurado")
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize minio client: %w", err)
	}

	ctx := context.Background()
	_, err = client.ListBuckets(ctx)
	if err != nil {
		return fmt.Errorf("failed to connect to minio server: %w", err)
	}
	Client = client
	MainBucket = cfg.MainBucket
	return nil
}
