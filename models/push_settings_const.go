package models

import "fmt"

type PushCode string

const (
	PushSuccess PushCode = "success"
	PushError   PushCode = "error"
)

type PushTpl struct {
	Title string
	Msg   string
}

type PushTplCode string

const (
	PushPostingMoved       PushTplCode = "posting_moved"
	PushColumnSorted       PushTplCode = "column_sorted"
	PushCandidateMoved     PushTplCode = "candidate_moved"
	PushInterviewValidated PushTplCode = "interview_validated"
	PushOfferProposed      PushTplCode = "offer_proposed"
	PushCandidateRejected  PushTplCode = "candidate_rejected"
	PushCandidateHired     PushTplCode = "candidate_hired"
	PushCandidateAdded     PushTplCode = "candidate_added"
	PushSaveFailed         PushTplCode = "save_failed"
	PushLoadFailed         PushTplCode = "load_failed"
	PushActionFailed       PushTplCode = "action_failed"
)

var PushCodeMap = map[PushTplCode]PushTpl{
	PushPostingMoved:       {Title: "Вакансия перемещена", Msg: "Вакансия «%v» перемещена в колонку «%v»."},
	PushColumnSorted:       {Title: "Колонка упорядочена", Msg: "Колонка «%v» упорядочена по приоритету."},
	PushCandidateMoved:     {Title: "Кандидат переведен", Msg: "Кандидат %v переведен на этап «%v»."},
	PushInterviewValidated: {Title: "Собеседование пройдено", Msg: "Кандидат %v: %v пройдено. Текущий этап «%v»."},
	PushOfferProposed:      {Title: "Предложение отправлено", Msg: "Кандидату %v отправлено предложение: %v."},
	PushCandidateRejected:  {Title: "Кандидат отклонен", Msg: "Кандидат %v отклонен."},
	PushCandidateHired:     {Title: "Найм завершен", Msg: "Кандидат %v принят на работу."},
	PushCandidateAdded:     {Title: "Кандидат добавлен", Msg: "Кандидат %v добавлен на вакансию «%v»."},
	PushSaveFailed:         {Title: "Изменение не сохранено", Msg: "Не удалось сохранить изменение: %v. Доска перезагружена."},
	PushLoadFailed:         {Title: "Ошибка загрузки", Msg: "Не удалось загрузить доску: %v."},
	PushActionFailed:       {Title: "Действие недоступно", Msg: "%v"},
}

func (c PushTplCode) Format(args ...interface{}) string {
	tpl, ok := PushCodeMap[c]
	if !ok {
		return fmt.Sprint(args...)
	}
	return fmt.Sprintf(tpl.Msg, args...)
}

const SystemUser = "Система"
