package minio

import (
	"PortalPiloto/internal/api/config"
	"bytes"
	"context"
	"fmt"
	"image"
	"io"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/minio/minio-go/v7"
)

// UploadFile envia um objeto para o bucket principal
func UploadFile(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error) {
	if Client == nil {
		return "", fmt.Errorf("minio client is not initialized")
	}
	bucket := MainBucket

	uploadInfo, err := Client.PutObject(ctx, bucket, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload file: %w", err)
	}

	return uploadInfo.Key, nil
}

// UploadThumbnail gera e envia a miniatura de 320px de uma imagem.
// Retorna a chave da miniatura.
func UploadThumbnail(ctx context.Context, objectName string, img image.Image) (string, error) {
	thumb := imaging.Resize(img, 320, 0, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, thumb, imaging.JPEG, imaging.JPEGQuality(80)); err != nil {
		return "", fmt.Errorf("failed to encode thumbnail: %w", err)
	}

	thumbName := thumbKey(objectName)
	_, err := Client.PutObject(ctx, MainBucket, thumbName, &buf, int64(buf.Len()), minio.PutObjectOptions{
		ContentType: "image/jpeg",
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload thumbnail: %w", err)
	}
	return thumbName, nil
}

func thumbKey(objectName string) string {
	if idx := strings.LastIndex(objectName, "."); idx > 0 {
		objectName = objectName[:idx]
	}
	return objectName + "_thumb.jpg"
}

// DeleteFile remove um objeto do bucket principal
func DeleteFile(ctx context.Context, objectName string) error {
	if Client == nil {
		return fmt.Errorf("minio client is not initialized")
	}
	bucket := MainBucket

	err := Client.RemoveObject(ctx, bucket, objectName, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}

	return nil
}

// GetPublicURL monta a URL pública de um objeto
func GetPublicURL(objectName string) string {
	cfg := config.Cfg.MinIO

	protocol := "http"
	if cfg.UseSSL {
		protocol = "https"
	}

	return fmt.Sprintf("%s://%s/%s/%s", protocol, cfg.Endpoint, MainBucket, objectName)
}
