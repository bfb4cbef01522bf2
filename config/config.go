package config

import (
	"github.com/gotify/configor"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

var Conf *Configuration

type Configuration struct {
	App struct {
		ListenAddr  string `default:"" env:"APP_HOST"`
		Port        int    `default:"8080"  env:"APP_PORT"`
		SwaggerFile string `default:"./docs/swagger.json" env:"APP_SWAGGER_FILE"`
	}
	Auth struct {
		JWTSecret string `default:"" env:"JWT_SECRET"`
	}
	Database struct {
		Host           string `default:"127.0.0.1" env:"DB_HOST"`
		Port           string `default:"5432" env:"DB_PORT"`
		Name           string `default:"recruitment-board" env:"DB_NAME"`
		User           string `default:"postgres" env:"DB_USER"`
		Password       string `default:"postgres" env:"DB_PASSWORD"`
		MigrateOnStart *bool  `default:"true" env:"DB_MIGRATE_ON_START"`
		DebugMode      *bool  `default:"false" env:"DB_DEBUG_MODE"`
	}
	Smtp struct {
		User       string `default:"" env:"SMTP_USER"`
		Password   string `default:"" env:"SMTP_PASSWORD"`
		Host       string `default:"" env:"SMTP_HOST"`
		Port       string `default:"" env:"SMTP_PORT"`
		From       string `default:"" env:"SMTP_FROM"`
		TLSEnabled *bool  `default:"true" env:"SMTP_TLS_ENABLED"`
	}
	S3 struct {
		Endpoint        string `default:"" env:"S3_ENDPOINT"`
		AccessKeyID     string `default:"" env:"S3_ACCESS_KEY_ID"`
		SecretAccessKey string `default:"" env:"S3_SECRET_ACCESS_KEY"`
		BucketName      string `default:"recruitment-board" env:"S3_BUCKET_NAME"`
		UseSSL          *bool  `default:"false" env:"S3_USE_SSL"`
		UrlExpireInMin  int    `default:"15" env:"S3_URL_EXPIRE_IN_MIN"`
	}
	Nats struct {
		Url           string `default:"" env:"NATS_URL"`
		ConnTimeoutMs int    `default:"2000" env:"NATS_CONN_TIMEOUT_MS"`
		Subject       string `default:"recruitment.board.changes" env:"NATS_SUBJECT"`
	}
	Board struct {
		SyncIntervalSec int `default:"60" env:"BOARD_SYNC_INTERVAL_SEC"`
		PendingWaitMs   int `default:"0" env:"BOARD_PENDING_WAIT_MS"` // ожидание завершения предыдущего сохранения по записи
	}
}

func configFiles() []string {
	return []string{"config.yml"}
}

func InitConfig() {
	if Conf != nil {
		return
	}
	if err := godotenv.Load(); err != nil {
		log.Debug("файл .env не найден, используются переменные окружения")
	}
	conf := new(Configuration)
	err := configor.New(&configor.Config{}).Load(conf, configFiles()...)
	if err != nil {
		panic(err)
	}
	Conf = conf
}
