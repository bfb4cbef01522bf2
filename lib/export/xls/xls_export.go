package xlsexport

import (
	"bytes"
	"recruitment-board/models"
	dbmodels "recruitment-board/models/db"
	"strconv"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

type Provider interface {
	// ExportBoard вакансии по колонкам доски и кандидаты по этапам
	ExportBoard(postings []dbmodels.RecruitmentPosting, candidates []dbmodels.CandidateApplication) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

const (
	postingSheet   = "Вакансии"
	candidateSheet = "Кандидаты"
)

var postingHeaders = []string{"Колонка", "Должность", "Подразделение", "Локация", "Приоритет", "Кандидатов", "Создана", "Изменена"}

var candidateHeaders = []string{"Кандидат", "Email", "Вакансия", "Этап", "Колонка", "Общее собеседование", "Техническое собеседование", "Предложение", "Изменен"}

func (i impl) ExportBoard(postings []dbmodels.RecruitmentPosting, candidates []dbmodels.CandidateApplication) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("ошибка закрытия файла")
		}
	}()
	f.SetSheetName("Sheet1", postingSheet)
	if err := writePostings(f, postingSheet, postings); err != nil {
		return nil, errors.Wrap(err, "ошибка формирования листа вакансий в xlsx")
	}
	if _, err := f.NewSheet(candidateSheet); err != nil {
		return nil, errors.Wrap(err, "ошибка создания листа кандидатов в xlsx")
	}
	titles := map[string]string{}
	for _, item := range postings {
		titles[item.ID] = item.PositionTitle
	}
	if err := writeCandidates(f, candidateSheet, candidates, titles); err != nil {
		return nil, errors.Wrap(err, "ошибка формирования листа кандидатов в xlsx")
	}
	return f.WriteToBuffer()
}

func writePostings(f *excelize.File, sheet string, list []dbmodels.RecruitmentPosting) error {
	row, err := writeHeader(f, sheet, 0, postingHeaders)
	if err != nil {
		return err
	}
	if err = applyDataCellStyle(f, sheet, 1, row+1, len(postingHeaders), row+len(list)); err != nil {
		return err
	}
	// порядок колонок доски, внутри колонки порядок снимка
	for _, status := range models.PostingStatuses {
		for _, item := range list {
			if item.Status != status {
				continue
			}
			row++
			err = writeRow(f, sheet, row,
				string(item.Status),
				item.PositionTitle,
				item.Department,
				item.Location,
				string(item.Priority),
				item.CandidateCount,
				formatDate(item.CreatedAt.IsZero(), item.CreatedAt.Format("02.01.2006")),
				formatDate(item.UpdatedAt.IsZero(), item.UpdatedAt.Format("02.01.2006 15:04")),
			)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

func writeCandidates(f *excelize.File, sheet string, list []dbmodels.CandidateApplication, titles map[string]string) error {
	row, err := writeHeader(f, sheet, 0, candidateHeaders)
	if err != nil {
		return err
	}
	if err = applyDataCellStyle(f, sheet, 1, row+1, len(candidateHeaders), row+len(list)); err != nil {
		return err
	}
	for _, stage := range models.AllCandidateColumns() {
		for _, item := range list {
			if item.CurrentStage != stage {
				continue
			}
			row++
			var salary interface{}
			if item.HasOffer() {
				salary = *item.ProposedSalary
			}
			err = writeRow(f, sheet, row,
				item.CandidateName,
				item.CandidateEmail,
				titles[item.RecruitmentID],
				string(item.CurrentStage),
				string(item.CurrentStage.BoardColumn()),
				yesNo(item.NormalInterviewPassed),
				yesNo(item.TechnicalInterviewPassed),
				salary,
				formatDate(item.UpdatedAt.IsZero(), item.UpdatedAt.Format("02.01.2006 15:04")),
			)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

func formatDate(isZero bool, value string) interface{} {
	if isZero {
		return nil
	}
	return value
}

func yesNo(value bool) string {
	if value {
		return "да"
	}
	return "нет"
}

func itoa(value int) string {
	return strconv.Itoa(value)
}
