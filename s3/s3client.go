package s3client

import (
	"context"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type Params struct {
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	UseSSL          bool
}

func NewClient(ctx context.Context, params Params) (*minio.Client, error) {
	minioClient, err := minio.New(params.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(params.AccessKeyID, params.SecretAccessKey, ""),
		Secure: params.UseSSL,
	})
	if err != nil {
		return nil, err
	}
	// проверка доступности хранилища
	if _, err = minioClient.ListBuckets(ctx); err != nil {
		return nil, err
	}
	return minioClient, nil
}
