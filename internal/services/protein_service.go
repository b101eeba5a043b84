package services

import (
	"context"
	"errors"

	"fittrack/internal/models/db_models"
	"fittrack/internal/models/request_models"
	"fittrack/internal/models/response_models"
	"fittrack/internal/repositories"
	"fittrack/pkg/utils"
)

const (
	defaultProteinGoal = 150
	maxDailyProtein    = 500
)

type ProteinServiceInterface interface {
	GetProtein(ctx context.Context, userID string) (*response_models.ProteinResponse, error)
	UpdateProtein(ctx context.Context, userID string, request request_models.UpdateProteinRequest) (*response_models.ProteinResponse, error)
}

type ProteinService struct {
	accountRepo repositories.AccountRepository
}

func NewProteinService(accountRepo repositories.AccountRepository) ProteinServiceInterface {
	return &ProteinService{
		accountRepo: accountRepo,
	}
}

func (p *ProteinService) GetProtein(ctx context.Context, userID string) (*response_models.ProteinResponse, error) {

	account, err := p.accountRepo.MutateProtein(ctx, userID, func(account *db_models.Account) error {
		resetTodaysProtein(account)
		return nil
	})
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	return buildProteinResponse(account), nil
}

func (p *ProteinService) UpdateProtein(ctx context.Context, userID string, request request_models.UpdateProteinRequest) (*response_models.ProteinResponse, error) {

	if request.ProteinGoal != nil {
		if *request.ProteinGoal < 1 || *request.ProteinGoal > maxDailyProtein {
			return nil, utils.ErrProteinGoalOutOfRange
		}
	}
	if request.ProteinToAdd != nil && *request.ProteinToAdd <= 0 {
		return nil, utils.ErrProteinAmountNotPositive
	}

	account, err := p.accountRepo.MutateProtein(ctx, userID, func(account *db_models.Account) error {
		// Reset first; the daily cap is checked against the post-reset
		// counter. A cap violation rolls the whole transaction back, goal
		// change included.
		resetTodaysProtein(account)

		if request.ProteinToAdd != nil {
			if account.TodaysProtein+*request.ProteinToAdd > maxDailyProtein {
				return utils.ErrProteinLimitExceeded
			}
			account.TodaysProtein += *request.ProteinToAdd
		}

		if request.ProteinGoal != nil {
			account.ProteinGoal = *request.ProteinGoal
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, utils.ErrProteinLimitExceeded) {
			return nil, err
		}
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	return buildProteinResponse(account), nil
}

// resetTodaysProtein zeroes the counter the first time the protein resource
// is touched on a new calendar day. Same-day calls leave the account
// untouched, so MutateProtein issues no write for them.
func resetTodaysProtein(account *db_models.Account) {
	if !utils.SameCalendarDay(account.ProteinLastUpdate, utils.Today()) {
		account.TodaysProtein = 0
		account.ProteinLastUpdate = utils.Today()
	}
}

func buildProteinResponse(account *db_models.Account) *response_models.ProteinResponse {
	return &response_models.ProteinResponse{
		ProteinGoal:   account.ProteinGoal,
		TodaysProtein: account.TodaysProtein,
	}
}
