package initializers

import (
	"recruitment-board/config"
	"recruitment-board/lib/smtp"
)

func InitSmtp() {
	err := smtp.Connect(smtp.Params{
		User:       config.Conf.Smtp.User,
		Password:   config.Conf.Smtp.Password,
		Host:       config.Conf.Smtp.Host,
		Port:       config.Conf.Smtp.Port,
		From:       config.Conf.Smtp.From,
		TLSEnabled: *config.Conf.Smtp.TLSEnabled,
	})
	if err != nil {
		panic(err.Error())
	}
}
