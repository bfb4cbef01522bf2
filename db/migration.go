package db

import (
	dbmodels "recruitment-board/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("Запуск миграций")
	if err := DB.AutoMigrate(&dbmodels.RecruitmentPosting{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры RecruitmentPosting")
	}
	if err := DB.AutoMigrate(&dbmodels.CandidateApplication{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры CandidateApplication")
	}
	if err := DB.AutoMigrate(&dbmodels.BoardHistory{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры BoardHistory")
	}
	log.Info("Миграция прошла успешно")
	return nil
}
