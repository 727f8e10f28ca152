package services

import (
	"context"
	"log"

	"lifesync/internal/models/db_models"
	"lifesync/internal/models/request_models"
	"lifesync/internal/repositories"
	"lifesync/pkg/utils"
)

type ContactService interface {
	SubmitContact(ctx context.Context, request request_models.CreateContactRequest) (*db_models.Contact, error)
	ListContacts(ctx context.Context, status string) ([]db_models.Contact, error)
	UpdateStatus(ctx context.Context, id string, request request_models.UpdateContactStatusRequest) error
}

type contactService struct {
	contactRepo repositories.ContactRepository
	mailService IMailService
}

func NewContactService(contactRepo repositories.ContactRepository, mailService IMailService) ContactService {
	return &contactService{
		contactRepo: contactRepo,
		mailService: mailService,
	}
}

func (c *contactService) SubmitContact(ctx context.Context, request request_models.CreateContactRequest) (*db_models.Contact, error) {
	if err := utils.ValidateInput(request); err != nil {
		return nil, err
	}

	contact := &db_models.Contact{
		Name:    request.Name,
		Email:   request.Email,
		Subject: request.Subject,
		Message: request.Message,
		Status:  db_models.ContactStatusNew,
	}

	if err := c.contactRepo.Insert(ctx, contact); err != nil {
		return nil, utils.ErrDatabaseError
	}

	// Notification failure must not fail the submission.
	if err := c.mailService.SendContactNotification(contact); err != nil {
		log.Printf("contact notification mail failed: %v", err)
	}

	return contact, nil
}

func (c *contactService) ListContacts(ctx context.Context, status string) ([]db_models.Contact, error) {
	contacts, err := c.contactRepo.List(ctx, status)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return contacts, nil
}

func (c *contactService) UpdateStatus(ctx context.Context, id string, request request_models.UpdateContactStatusRequest) error {
	if err := utils.ValidateInput(request); err != nil {
		return err
	}

	contact, err := c.contactRepo.FindByID(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if contact == nil {
		return utils.ErrContactNotFound
	}

	if err := c.contactRepo.UpdateStatus(ctx, id, db_models.ContactStatus(request.Status)); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
