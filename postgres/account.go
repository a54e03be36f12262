package postgres

import (
	"context"
	"errors"
	"strings"
	"time"

	"getmovies/account"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// AccountModel represents the database model for accounts
type AccountModel struct {
	ID        string    `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Name      string    `gorm:"not null"`
	Email     string    `gorm:"not null;unique"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (AccountModel) TableName() string {
	return "accounts"
}

// AccountRepository implements account.Repository
type AccountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

// GetByEmail implements the identity lookup backing login.
func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (account.Account, error) {
	var model AccountModel

	err := r.db.WithContext(ctx).Where("email = ?", email).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return account.Account{}, account.ErrAccountNotFound
		}
		return account.Account{}, err
	}

	return toDomainAccount(model), nil
}

func (r *AccountRepository) GetByID(ctx context.Context, id string) (account.Account, error) {
	var model AccountModel

	err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return account.Account{}, account.ErrAccountNotFound
		}
		return account.Account{}, err
	}

	return toDomainAccount(model), nil
}

// CreateAccount inserts a new account and returns it with the store-assigned
// id and timestamps.
func (r *AccountRepository) CreateAccount(ctx context.Context, a account.Account) (account.Account, error) {
	model := AccountModel{
		ID:    a.ID,
		Name:  a.Name,
		Email: a.Email,
	}
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		if isDuplicateEmailError(err) {
			return account.Account{}, account.ErrEmailAlreadyExists
		}
		return account.Account{}, err
	}
	return toDomainAccount(model), nil
}

func toDomainAccount(model AccountModel) account.Account {
	return account.Account{
		ID:        model.ID,
		Name:      model.Name,
		Email:     model.Email,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

func isDuplicateEmailError(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505" && strings.Contains(strings.ToLower(pqErr.Constraint), "email")
	}
	return false
}
