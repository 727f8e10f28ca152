package newsletter_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"lifesync/internal/repositories"
	"lifesync/internal/services"
)

var Module = fx.Provide(
	provideNewsletterRepo, provideNewsletterService)

func provideNewsletterRepo(db *gorm.DB) repositories.NewsletterRepository {
	return repositories.NewNewsletterRepository(db)
}

func provideNewsletterService(repo repositories.NewsletterRepository, mailService services.IMailService) services.NewsletterService {
	return services.NewNewsletterService(repo, mailService)
}
