package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lifesync/internal/models/db_models"
	"lifesync/internal/models/request_models"
	"lifesync/pkg/utils"
)

func TestContactServiceSubmitContact(t *testing.T) {
	ctx := context.Background()

	t.Run("valid submission is stored as new and staff are notified", func(t *testing.T) {
		repo := newFakeContactRepo()
		mail := &fakeMail{}
		svc := NewContactService(repo, mail)

		contact, err := svc.SubmitContact(ctx, request_models.CreateContactRequest{
			Name:    "Jamie",
			Email:   "jamie@example.com",
			Message: "I would like a demo.",
		})
		require.NoError(t, err)
		assert.Equal(t, db_models.ContactStatusNew, contact.Status)
		assert.Len(t, mail.contactCalls, 1)
	})

	t.Run("notification failure does not fail the submission", func(t *testing.T) {
		repo := newFakeContactRepo()
		svc := NewContactService(repo, &fakeMail{err: errors.New("smtp down")})

		_, err := svc.SubmitContact(ctx, request_models.CreateContactRequest{
			Name:    "Jamie",
			Email:   "jamie@example.com",
			Message: "Hello",
		})
		require.NoError(t, err)
		assert.Len(t, repo.contacts, 1)
	})

	t.Run("missing fields are all enumerated", func(t *testing.T) {
		svc := NewContactService(newFakeContactRepo(), &fakeMail{})

		_, err := svc.SubmitContact(ctx, request_models.CreateContactRequest{})
		require.Error(t, err)

		var verr *utils.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Len(t, verr.Violations, 3) // name, email, message
	})
}

func TestContactServiceUpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("status advances through the workflow", func(t *testing.T) {
		repo := newFakeContactRepo()
		svc := NewContactService(repo, &fakeMail{})

		contact, err := svc.SubmitContact(ctx, request_models.CreateContactRequest{
			Name:    "Jamie",
			Email:   "jamie@example.com",
			Message: "Hello",
		})
		require.NoError(t, err)

		require.NoError(t, svc.UpdateStatus(ctx, contact.ID.String(), request_models.UpdateContactStatusRequest{Status: "read"}))
		assert.Equal(t, db_models.ContactStatusRead, repo.contacts[contact.ID.String()].Status)

		require.NoError(t, svc.UpdateStatus(ctx, contact.ID.String(), request_models.UpdateContactStatusRequest{Status: "replied"}))
		assert.Equal(t, db_models.ContactStatusReplied, repo.contacts[contact.ID.String()].Status)
	})

	t.Run("unknown contact is not found", func(t *testing.T) {
		svc := NewContactService(newFakeContactRepo(), &fakeMail{})

		err := svc.UpdateStatus(ctx, uuid.NewString(), request_models.UpdateContactStatusRequest{Status: "read"})
		assert.ErrorIs(t, err, utils.ErrContactNotFound)
	})

	t.Run("unknown status is a validation error", func(t *testing.T) {
		svc := NewContactService(newFakeContactRepo(), &fakeMail{})

		err := svc.UpdateStatus(ctx, uuid.NewString(), request_models.UpdateContactStatusRequest{Status: "archived"})
		require.Error(t, err)

		var verr *utils.ValidationError
		assert.True(t, errors.As(err, &verr))
	})
}

func TestContactServiceListContacts(t *testing.T) {
	ctx := context.Background()
	repo := newFakeContactRepo()
	svc := NewContactService(repo, &fakeMail{})

	for _, msg := range []string{"first", "second"} {
		_, err := svc.SubmitContact(ctx, request_models.CreateContactRequest{
			Name:    "Jamie",
			Email:   "jamie@example.com",
			Message: msg,
		})
		require.NoError(t, err)
	}

	all, err := svc.ListContacts(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	unread, err := svc.ListContacts(ctx, "new")
	require.NoError(t, err)
	assert.Len(t, unread, 2)

	replied, err := svc.ListContacts(ctx, "replied")
	require.NoError(t, err)
	assert.Empty(t, replied)
}
