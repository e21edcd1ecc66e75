package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"crudkit/internal/domain"
	"crudkit/internal/models"
	"crudkit/internal/repositories"
)

const (
	MsgUsernameTaken   = "That username is already taken"
	MsgWeakPassword    = "Password must be at least 8 characters long"
	MsgMissingUsername = "Username is required"
)

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterProcessor creates a new account with a hashed password. The
// account repository runs the usual create pipeline, so the concurrency
// stamp hook fires like for any other entity.
type RegisterProcessor struct {
	DB       *sql.DB
	Accounts repositories.Repository[*models.Account]
}

func (p *RegisterProcessor) Process(ctx context.Context, request RegisterRequest) (domain.Result[bool], error) {
	username := strings.TrimSpace(request.Username)
	if username == "" {
		return domain.Fail[bool](domain.Unprocessable, MsgMissingUsername), nil
	}
	if len(request.Password) < 8 {
		return domain.Fail[bool](domain.Unprocessable, MsgWeakPassword), nil
	}

	_, err := findAccountByUsername(ctx, p.DB, username)
	if err == nil {
		return domain.Fail[bool](domain.Conflict, MsgUsernameTaken), nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return domain.Result[bool]{}, fmt.Errorf("check username: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.Result[bool]{}, fmt.Errorf("hash password: %w", err)
	}

	account := &models.Account{
		Username:     username,
		PasswordHash: string(hash),
		Roles:        []string{"user"},
	}
	stamper := repositories.ConcurrencyStampHook[*models.Account]{}
	if err := stamper.Handle(ctx, account, domain.ActionCreate); err != nil {
		return domain.Result[bool]{}, err
	}

	if _, err := p.Accounts.Create(ctx, account); err != nil {
		return domain.Result[bool]{}, fmt.Errorf("create account: %w", err)
	}
	return domain.Ok(true), nil
}
