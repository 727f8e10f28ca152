package contact_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"lifesync/internal/repositories"
	"lifesync/internal/services"
)

var Module = fx.Provide(
	provideContactRepo, provideContactService)

func provideContactRepo(db *gorm.DB) repositories.ContactRepository {
	return repositories.NewContactRepository(db)
}

func provideContactService(contactRepo repositories.ContactRepository, mailService services.IMailService) services.ContactService {
	return services.NewContactService(contactRepo, mailService)
}
