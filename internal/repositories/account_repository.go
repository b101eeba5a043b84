package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"fittrack/internal/models/db_models"
)

type AccountRepository interface {
	Insert(ctx context.Context, account *db_models.Account) error
	FindById(ctx context.Context, id string) (*db_models.Account, error)
	FindByUsername(ctx context.Context, username string) (*db_models.Account, error)

	// MutateProtein loads the account under a row lock, applies fn and
	// persists whichever of the three protein columns fn changed, all in one
	// transaction. If fn changes nothing, no write is issued. If fn returns
	// an error the transaction rolls back and nothing is persisted.
	MutateProtein(ctx context.Context, id string, fn func(*db_models.Account) error) (*db_models.Account, error)
}

type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{
		db: db,
	}
}

func (a *accountRepository) Insert(ctx context.Context, account *db_models.Account) error {
	return a.db.WithContext(ctx).Create(account).Error
}

func (a *accountRepository) FindById(ctx context.Context, id string) (*db_models.Account, error) {
	var account db_models.Account
	err := a.db.WithContext(ctx).First(&account, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &account, nil
}

func (a *accountRepository) FindByUsername(ctx context.Context, username string) (*db_models.Account, error) {
	var account db_models.Account
	err := a.db.WithContext(ctx).First(&account, "username = ?", username).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &account, nil
}

var proteinColumns = []string{"protein_goal", "todays_protein", "protein_last_update"}

func (a *accountRepository) MutateProtein(ctx context.Context, id string, fn func(*db_models.Account) error) (*db_models.Account, error) {
	var account db_models.Account

	err := a.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&account, "id = ?", id).Error
		if err != nil {
			return err
		}

		before := account
		if err := fn(&account); err != nil {
			return err
		}

		changed := changedProteinColumns(&before, &account)
		if len(changed) == 0 {
			return nil
		}

		return tx.Model(&account).Select(changed).Updates(&account).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &account, nil
}

func changedProteinColumns(before, after *db_models.Account) []string {
	var cols []string
	if before.ProteinGoal != after.ProteinGoal {
		cols = append(cols, "protein_goal")
	}
	if before.TodaysProtein != after.TodaysProtein {
		cols = append(cols, "todays_protein")
	}
	if !before.ProteinLastUpdate.Equal(after.ProteinLastUpdate) {
		cols = append(cols, "protein_last_update")
	}
	return cols
}
