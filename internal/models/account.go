package models

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"crudkit/internal/domain"
)

// Account is a login identity for the demo application. The password hash
// never serializes to JSON.
type Account struct {
	domain.EntityFields
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Roles        []string  `json:"roles,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

var AccountName = domain.EntityName{Singular: "account", Plural: "accounts"}

// AccountMapper binds Account to the accounts table. Roles are stored as a
// comma-separated list.
type AccountMapper struct{}

func (AccountMapper) Table() string { return "accounts" }

func (AccountMapper) Columns() []string {
	return []string{"id", "concurrency_stamp", "username", "password_hash", "roles", "created_at"}
}

func (AccountMapper) Values(account *Account) []any {
	createdAt := account.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	return []any{
		account.ID.String(),
		account.ConcurrencyStamp.String(),
		account.Username,
		account.PasswordHash,
		strings.Join(account.Roles, ","),
		createdAt,
	}
}

func (AccountMapper) Scan(scan func(dest ...any) error) (*Account, error) {
	var (
		account Account
		id      string
		stamp   string
		roles   string
	)
	if err := scan(&id, &stamp, &account.Username, &account.PasswordHash, &roles, &account.CreatedAt); err != nil {
		return nil, err
	}

	parsedID, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}
	account.ID = parsedID
	if parsedStamp, err := uuid.Parse(stamp); err == nil {
		account.ConcurrencyStamp = parsedStamp
	}
	if roles != "" {
		account.Roles = strings.Split(roles, ",")
	}
	return &account, nil
}
