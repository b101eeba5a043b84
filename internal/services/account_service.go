package services

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"fittrack/internal/models/db_models"
	"fittrack/internal/models/request_models"
	"fittrack/internal/models/response_models"
	"fittrack/internal/repositories"
	"fittrack/pkg/utils"
)

type AccountServiceInterface interface {
	CreateAccount(ctx context.Context, request request_models.RegisterRequest) (*response_models.AccountResponse, error)
	Login(ctx context.Context, request request_models.LoginRequest) (string, error)
}

type AccountService struct {
	accountRepo repositories.AccountRepository
}

func NewAccountService(accountRepo repositories.AccountRepository) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
	}
}

func (a *AccountService) CreateAccount(ctx context.Context, request request_models.RegisterRequest) (*response_models.AccountResponse, error) {

	username := strings.ToLower(strings.TrimSpace(request.Username))
	if username == "" {
		return nil, utils.FieldErrors{"username": "This field may not be blank."}
	}

	if violations := utils.ValidatePassword(request.Password, username); len(violations) > 0 {
		return nil, utils.FieldErrors{"password": strings.Join(violations, " ")}
	}

	existing, err := a.accountRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrUsernameTaken
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	newAccount := &db_models.Account{
		Username:          username,
		PasswordHash:      hashedPassword,
		ProteinGoal:       defaultProteinGoal,
		TodaysProtein:     0,
		ProteinLastUpdate: utils.Today(),
	}

	if err := a.accountRepo.Insert(ctx, newAccount); err != nil {
		// Two registrations can race past the FindByUsername check; the
		// unique index settles it.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, utils.ErrUsernameTaken
		}
		return nil, utils.ErrDatabaseError
	}

	return &response_models.AccountResponse{
		ID:       newAccount.ID.String(),
		Username: newAccount.Username,
	}, nil
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (string, error) {

	username := strings.ToLower(strings.TrimSpace(request.Username))

	account, err := a.accountRepo.FindByUsername(ctx, username)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	if account == nil {
		return "", utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return "", utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(account.ID)
	if err != nil {
		return "", utils.ErrInvalidCredentials
	}

	return token, nil
}
