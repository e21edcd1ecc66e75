package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"crudkit/internal/auth"
	"crudkit/internal/domain"
	"crudkit/internal/models"
)

const MsgInvalidCredentials = "Invalid username or password"

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginProcessor exchanges valid credentials for a signed token. Credential
// failures are indistinguishable to the caller: unknown username and wrong
// password share one message.
type LoginProcessor struct {
	DB     *sql.DB
	Tokens auth.TokenConfig
}

func (p *LoginProcessor) Process(ctx context.Context, request LoginRequest) (domain.Result[string], error) {
	username := strings.TrimSpace(request.Username)
	if username == "" || request.Password == "" {
		return domain.Fail[string](domain.Unprocessable, MsgInvalidCredentials), nil
	}

	account, err := findAccountByUsername(ctx, p.DB, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Fail[string](domain.Unauthorized, MsgInvalidCredentials), nil
		}
		return domain.Result[string]{}, fmt.Errorf("load account: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(request.Password)) != nil {
		return domain.Fail[string](domain.Unauthorized, MsgInvalidCredentials), nil
	}

	token, err := auth.IssueToken(p.Tokens, &auth.User{
		ID:       account.ID,
		Username: account.Username,
		Roles:    account.Roles,
	})
	if err != nil {
		return domain.Result[string]{}, fmt.Errorf("issue token: %w", err)
	}
	return domain.Ok(token), nil
}

func findAccountByUsername(ctx context.Context, handle *sql.DB, username string) (*models.Account, error) {
	mapper := models.AccountMapper{}
	query := fmt.Sprintf("SELECT %s FROM %s WHERE username = ?",
		strings.Join(mapper.Columns(), ", "), mapper.Table())

	row := handle.QueryRowContext(ctx, query, username)
	return mapper.Scan(row.Scan)
}
