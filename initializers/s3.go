package initializers

import (
	"context"
	"time"

	"recruitment-board/config"
	filestorage "recruitment-board/lib/file-storage"
	s3client "recruitment-board/s3"

	log "github.com/sirupsen/logrus"
)

// InitS3 без S3 сервис работает, загрузка резюме недоступна
func InitS3(ctx context.Context) {
	if config.Conf.S3.Endpoint == "" {
		log.Warn("S3 не настроен, загрузка резюме недоступна")
		return
	}
	minioClient, err := s3client.NewClient(ctx, s3client.Params{
		Endpoint:        config.Conf.S3.Endpoint,
		AccessKeyID:     config.Conf.S3.AccessKeyID,
		SecretAccessKey: config.Conf.S3.SecretAccessKey,
		UseSSL:          *config.Conf.S3.UseSSL,
	})
	if err != nil {
		log.WithError(err).Error("Ошибка инициализации клиента S3")
		return
	}
	filestorage.NewHandler(minioClient, config.Conf.S3.BucketName, time.Duration(config.Conf.S3.UrlExpireInMin)*time.Minute)
	if err = filestorage.Instance.MakeBucket(ctx); err != nil {
		log.WithError(err).Error("Ошибка создания бакета S3")
		return
	}
	log.Info("S3 клиент успешно инициализирован")
}
