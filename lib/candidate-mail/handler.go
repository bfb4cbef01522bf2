package candidatemail

import (
	"bytes"
	"fmt"
	"recruitment-board/lib/smtp"
	dbmodels "recruitment-board/models/db"
	"text/template"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gopkg.in/gomail.v2"
)

type Provider interface {
	// Notify письмо кандидату о решении, для прочих действий ничего не делает
	Notify(rec dbmodels.CandidateApplication, action dbmodels.ActionType, positionTitle string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{sender: smtp.Instance}
}

type impl struct {
	sender smtp.Provider
}

type mailTpl struct {
	subject string
	body    *template.Template
}

type mailData struct {
	CandidateName string
	PositionTitle string
	Salary        int
}

var mailTemplates = map[dbmodels.ActionType]mailTpl{
	dbmodels.HistoryTypeOffer: {
		subject: "Proposition d'embauche",
		body: template.Must(template.New("offer").Parse(
			"Bonjour {{.CandidateName}},\n\nNous avons le plaisir de vous proposer le poste « {{.PositionTitle}} » avec une rémunération de {{.Salary}}.\n")),
	},
	dbmodels.HistoryTypeReject: {
		subject: "Votre candidature",
		body: template.Must(template.New("reject").Parse(
			"Bonjour {{.CandidateName}},\n\nNous vous remercions pour votre candidature au poste « {{.PositionTitle}} ». Nous ne pouvons malheureusement pas y donner une suite favorable.\n")),
	},
	dbmodels.HistoryTypeFinalize: {
		subject: "Bienvenue",
		body: template.Must(template.New("finalize").Parse(
			"Bonjour {{.CandidateName}},\n\nVotre recrutement au poste « {{.PositionTitle}} » est finalisé. Bienvenue dans l'équipe !\n")),
	},
}

func (i impl) Notify(rec dbmodels.CandidateApplication, action dbmodels.ActionType, positionTitle string) error {
	tpl, ok := mailTemplates[action]
	if !ok || rec.CandidateEmail == "" {
		return nil
	}
	if i.sender == nil || !i.sender.IsConfigured() {
		return nil
	}
	msg, err := BuildMessage(i.sender.Sender(), rec, tpl, positionTitle)
	if err != nil {
		return err
	}
	buf := new(bytes.Buffer)
	if _, err = msg.WriteTo(buf); err != nil {
		return errors.Wrap(err, "ошибка формирования письма")
	}
	err = i.sender.SendMessage([]string{rec.CandidateEmail}, buf)
	if err != nil {
		return errors.Wrap(err, "ошибка отправки письма кандидату")
	}
	log.
		WithField("candidate_id", rec.ID).
		WithField("action", action).
		Info("кандидату отправлено письмо")
	return nil
}

func BuildMessage(from string, rec dbmodels.CandidateApplication, tpl mailTpl, positionTitle string) (*gomail.Message, error) {
	data := mailData{
		CandidateName: rec.CandidateName,
		PositionTitle: positionTitle,
	}
	if rec.ProposedSalary != nil {
		data.Salary = *rec.ProposedSalary
	}
	body := new(bytes.Buffer)
	if err := tpl.body.Execute(body, data); err != nil {
		return nil, errors.Wrap(err, "ошибка подготовки текста письма")
	}
	msg := gomail.NewMessage()
	msg.SetHeader("From", from)
	msg.SetHeader("To", rec.CandidateEmail)
	msg.SetHeader("Subject", fmt.Sprintf("%s - %s", tpl.subject, positionTitle))
	msg.SetBody("text/plain", body.String())
	return msg, nil
}
