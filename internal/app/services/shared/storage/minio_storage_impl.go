package storage

import (
	"context"
	"io"
	"mime/multipart"
	"net/url"
	"time"

	"clinicore-service/internal/pkg/exceptions"

	"github.com/minio/minio-go/v7"
)

type minioStorage struct {
	MinioClient *minio.Client
	BucketName  string
}

func NewMinioStorage(minioClient *minio.Client, bucketName string) Storage {
	return &minioStorage{
		MinioClient: minioClient,
		BucketName:  bucketName,
	}
}

func (m *minioStorage) UploadFile(ctx context.Context, file io.Reader, fileHeader *multipart.FileHeader, objectName string) (string, error) {
	_, err := m.MinioClient.PutObject(ctx, m.BucketName, objectName, file, fileHeader.Size, minio.PutObjectOptions{
		ContentType: fileHeader.Header.Get("Content-Type"),
	})
	if err != nil {
		return "", exceptions.ErrMinioCreateObject(err, m.BucketName)
	}

	return objectName, nil
}

func (m *minioStorage) PresignedURL(ctx context.Context, objectName string, expiry time.Duration) (string, error) {
	presignedURL, err := m.MinioClient.PresignedGetObject(ctx, m.BucketName, objectName, expiry, url.Values{})
	if err != nil {
		return "", exceptions.ErrMinioFindObjectPresignedURL(err, m.BucketName)
	}

	return presignedURL.String(), nil
}
