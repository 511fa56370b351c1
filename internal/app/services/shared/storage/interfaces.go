package storage

import (
	"context"
	"io"
	"mime/multipart"
	"time"
)

type Storage interface {
	UploadFile(ctx context.Context, file io.Reader, fileHeader *multipart.FileHeader, objectName string) (string, error)
	PresignedURL(ctx context.Context, objectName string, expiry time.Duration) (string, error)
}
