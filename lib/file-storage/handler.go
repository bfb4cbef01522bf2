package filestorage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"path"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	// UploadCV сохраняет резюме кандидата, возвращает ключ объекта
	UploadCV(ctx context.Context, spaceID, candidateID string, file io.Reader, fileSize int64, fileName, contentType string) (ref string, err error)
	GetCVUrl(ctx context.Context, ref string) (string, error)
	MakeBucket(ctx context.Context) error
}

var Instance Provider

type impl struct {
	s3client   *minio.Client
	bucketName string
	urlExpire  time.Duration
}

func NewHandler(s3client *minio.Client, bucketName string, urlExpire time.Duration) {
	Instance = &impl{
		s3client:   s3client,
		bucketName: bucketName,
		urlExpire:  urlExpire,
	}
}

func (i impl) UploadCV(ctx context.Context, spaceID, candidateID string, file io.Reader, fileSize int64, fileName, contentType string) (string, error) {
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	ref := CVObjectKey(spaceID, candidateID, fileName)
	_, err := i.s3client.PutObject(ctx, i.bucketName, ref, file, fileSize, minio.PutObjectOptions{
		ContentType:  contentType,
		UserMetadata: map[string]string{"file-name": fileName},
	})
	if err != nil {
		return "", errors.Wrap(err, "ошибка загрузки резюме в хранилище")
	}
	log.
		WithField("space_id", spaceID).
		WithField("candidate_id", candidateID).
		WithField("ref", ref).
		Info("резюме загружено")
	return ref, nil
}

func (i impl) GetCVUrl(ctx context.Context, ref string) (string, error) {
	if ref == "" {
		return "", errors.New("резюме не загружено")
	}
	params := url.Values{}
	params.Set("response-content-disposition", fmt.Sprintf("attachment; filename=%q", path.Base(ref)))
	u, err := i.s3client.PresignedGetObject(ctx, i.bucketName, ref, i.urlExpire, params)
	if err != nil {
		return "", errors.Wrap(err, "ошибка получения ссылки на резюме")
	}
	return u.String(), nil
}

func (i impl) MakeBucket(ctx context.Context) error {
	exists, err := i.s3client.BucketExists(ctx, i.bucketName)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return i.s3client.MakeBucket(ctx, i.bucketName, minio.MakeBucketOptions{Region: "us-east-1"})
}

func CVObjectKey(spaceID, candidateID, fileName string) string {
	ext := path.Ext(fileName)
	return path.Join(spaceID, "cv", candidateID, uuid.NewString()+ext)
}
