package smtp

import (
	"io"

	"github.com/emersion/go-sasl"
	"github.com/emersion/go-smtp"
	log "github.com/sirupsen/logrus"
)

var Instance Provider

type Provider interface {
	IsConfigured() bool
	Sender() string
	// SendMessage отправка готового MIME-сообщения
	SendMessage(to []string, message io.Reader) error
}

type Params struct {
	User       string
	Password   string
	Host       string
	Port       string
	From       string
	TLSEnabled bool
}

func Connect(params Params) error {
	Instance = &impl{params: params}
	if !Instance.IsConfigured() {
		log.Warn("smtp клиент не настроен, письма кандидатам отправляться не будут")
	}
	return nil
}

type impl struct {
	params Params
}

func (i impl) IsConfigured() bool {
	return i.params.User != "" && i.params.Host != "" && i.params.Port != ""
}

func (i impl) Sender() string {
	if i.params.From != "" {
		return i.params.From
	}
	return i.params.User
}

func (i impl) SendMessage(to []string, message io.Reader) (err error) {
	logger := log.WithField("sender", i.Sender()).WithField("to", to)
	if !i.IsConfigured() {
		logger.Warn("письмо не отправлено, тк не настроен smtp клиент")
		return nil
	}
	auth := sasl.NewPlainClient("", i.params.User, i.params.Password)
	addr := i.params.Host + ":" + i.params.Port
	if i.params.TLSEnabled {
		err = smtp.SendMailTLS(addr, auth, i.params.User, to, message)
	} else {
		err = smtp.SendMail(addr, auth, i.params.User, to, message)
	}
	if err != nil {
		logger.WithError(err).Error("ошибка отправки письма")
		return err
	}
	logger.Info("письмо отправлено")
	return nil
}
