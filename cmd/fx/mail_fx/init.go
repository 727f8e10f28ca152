package mail_fx

import (
	"go.uber.org/fx"

	"lifesync/internal/config"
	"lifesync/internal/services"
)

var Module = fx.Provide(provideMailService)

func provideMailService(cfg config.Config) services.IMailService {
	return services.NewMailService(services.SMTPConfig{
		Host:         cfg.SMTPHost,
		Port:         cfg.SMTPPort,
		Username:     cfg.SMTPUsername,
		Password:     cfg.SMTPPassword,
		From:         cfg.SMTPFrom,
		ContactInbox: cfg.ContactInbox,
	})
}
