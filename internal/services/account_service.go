package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"lifesync/internal/models/db_models"
	"lifesync/internal/models/request_models"
	"lifesync/internal/models/response_models"
	"lifesync/internal/repositories"
	"lifesync/pkg/utils"
)

type AccountServiceInterface interface {
	Login(request request_models.LoginRequest, ctx context.Context) (*response_models.LoginResponse, error)
	CreateAccount(ctx context.Context, request request_models.SignUpRequest) error
}

type AccountService struct {
	userRepo repositories.UserRepository
	subRepo  repositories.SubscriptionRepository
	newToken func(userID uuid.UUID) (string, error)
}

func NewAccountService(userRepo repositories.UserRepository, subRepo repositories.SubscriptionRepository) AccountServiceInterface {
	return &AccountService{
		userRepo: userRepo,
		subRepo:  subRepo,
		newToken: utils.CreateUserToken,
	}
}

func (a *AccountService) Login(request request_models.LoginRequest, ctx context.Context) (*response_models.LoginResponse, error) {
	if err := utils.ValidateInput(request); err != nil {
		return nil, err
	}

	user, err := a.userRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(user.PasswordHash, request.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	// A signing failure is an internal fault, not a credential problem.
	token, err := a.newToken(user.ID)
	if err != nil {
		return nil, errors.Join(utils.ErrDatabaseError, err)
	}

	plan := string(db_models.PlanFree)
	sub, err := a.subRepo.FindByUserID(ctx, user.ID.String())
	if err == nil && sub != nil && sub.Status == db_models.SubStatusActive {
		plan = string(sub.Plan)
	}

	return &response_models.LoginResponse{
		Token: token,
		User: response_models.UserProfile{
			ID:        user.ID.String(),
			Email:     user.Email,
			Username:  user.Username,
			FirstName: user.FirstName,
			LastName:  user.LastName,
			AvatarURL: user.AvatarURL,
			Plan:      plan,
		},
	}, nil
}

func (a *AccountService) CreateAccount(ctx context.Context, request request_models.SignUpRequest) error {
	if err := utils.ValidateInput(request); err != nil {
		return err
	}

	existing, err := a.userRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existing != nil {
		return utils.ErrEmailAlreadyExists
	}

	existing, err = a.userRepo.FindByUsername(ctx, request.Username)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existing != nil {
		return utils.ErrUsernameAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return utils.ErrDatabaseError
	}

	newUser := &db_models.User{
		Email:        request.Email,
		Username:     request.Username,
		PasswordHash: hashedPassword,
		FirstName:    request.FirstName,
		LastName:     request.LastName,
	}

	if err := a.userRepo.Insert(ctx, newUser); err != nil {
		// The existence checks race with concurrent signups; the unique
		// index is the source of truth.
		if utils.IsUniqueViolation(err) {
			if strings.Contains(utils.UniqueViolationConstraint(err), "username") {
				return utils.ErrUsernameAlreadyExists
			}
			return utils.ErrEmailAlreadyExists
		}
		return utils.ErrDatabaseError
	}

	return nil
}
