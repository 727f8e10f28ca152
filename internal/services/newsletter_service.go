package services

import (
	"context"
	"log"

	"lifesync/internal/models/db_models"
	"lifesync/internal/models/request_models"
	"lifesync/internal/repositories"
	"lifesync/pkg/utils"
)

type NewsletterService interface {
	Subscribe(ctx context.Context, request request_models.NewsletterRequest) error
	Unsubscribe(ctx context.Context, request request_models.NewsletterRequest) error
}

type newsletterService struct {
	newsletterRepo repositories.NewsletterRepository
	mailService    IMailService
}

func NewNewsletterService(newsletterRepo repositories.NewsletterRepository, mailService IMailService) NewsletterService {
	return &newsletterService{
		newsletterRepo: newsletterRepo,
		mailService:    mailService,
	}
}

func (n *newsletterService) Subscribe(ctx context.Context, request request_models.NewsletterRequest) error {
	if err := utils.ValidateInput(request); err != nil {
		return err
	}

	existing, err := n.newsletterRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return utils.ErrDatabaseError
	}

	if existing != nil {
		// Resubscribing flips the flag back; subscribing twice is a no-op.
		if existing.Subscribed {
			return nil
		}
		if err := n.newsletterRepo.SetSubscribed(ctx, request.Email, true); err != nil {
			return utils.ErrDatabaseError
		}
		return nil
	}

	entry := &db_models.Newsletter{
		Email:      request.Email,
		Subscribed: true,
	}
	if err := n.newsletterRepo.Insert(ctx, entry); err != nil {
		if utils.IsUniqueViolation(err) {
			// Concurrent subscribe; the row exists, nothing to do.
			return nil
		}
		return utils.ErrDatabaseError
	}

	if err := n.mailService.SendNewsletterWelcome(request.Email); err != nil {
		log.Printf("newsletter welcome mail failed: %v", err)
	}

	return nil
}

func (n *newsletterService) Unsubscribe(ctx context.Context, request request_models.NewsletterRequest) error {
	if err := utils.ValidateInput(request); err != nil {
		return err
	}

	// Soft delete: the row stays, the flag flips.
	if err := n.newsletterRepo.SetSubscribed(ctx, request.Email, false); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
