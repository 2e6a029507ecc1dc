package service

import (
	"context"
	"testing"

	"finance-advisor-be/internal/dto"
	"finance-advisor-be/internal/entity"
	"finance-advisor-be/internal/pkg/mailer"
	"finance-advisor-be/internal/repository/contract"
	"finance-advisor-be/internal/repository/memory"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

type authFixture struct {
	service     IAuthService
	codeRepo    contract.CodeRepository
	userRepo    contract.UserRepository
	balanceRepo contract.BalanceRepository
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	userRepo := memory.NewUserRepository()
	codeRepo := memory.NewCodeRepository()
	balanceRepo := memory.NewBalanceRepository()
	// Empty host puts the mailer in mock mode.
	emailService := mailer.NewEmailService("", 0, "", "", "")

	svc := NewAuthService(
		userRepo,
		codeRepo,
		balanceRepo,
		memory.NewSettingsRepository(),
		emailService,
		decimal.RequireFromString("10"),
	)
	return &authFixture{
		service:     svc,
		codeRepo:    codeRepo,
		userRepo:    userRepo,
		balanceRepo: balanceRepo,
	}
}

func TestRequestCodeStoresSixDigits(t *testing.T) {
	f := newAuthFixture(t)

	err := f.service.RequestCode(context.Background(), &dto.RequestCodeRequest{Email: "user@example.com"})
	assert.NoError(t, err)

	code, found := f.codeRepo.Get("user@example.com")
	assert.True(t, found)
	assert.Len(t, code, 6)
}

func TestVerifyCodeFirstLoginCreatesAccount(t *testing.T) {
	f := newAuthFixture(t)
	email := "new@example.com"

	assert.NoError(t, f.service.RequestCode(context.Background(), &dto.RequestCodeRequest{Email: email}))
	code, _ := f.codeRepo.Get(email)

	res, err := f.service.VerifyCode(context.Background(), &dto.VerifyCodeRequest{Email: email, Code: code})
	assert.NoError(t, err)
	assert.NotEmpty(t, res.AccessToken)
	assert.Equal(t, email, res.User.Email)

	// First login opens the account with the starting balance.
	balance, err := f.balanceRepo.Balance(context.Background(), res.User.Id)
	assert.NoError(t, err)
	assert.Equal(t, "10", balance.String())

	// The code is single-use.
	_, found := f.codeRepo.Get(email)
	assert.False(t, found)
}

func TestVerifyCodeReturningUserKeepsBalance(t *testing.T) {
	f := newAuthFixture(t)
	email := "returning@example.com"

	assert.NoError(t, f.service.RequestCode(context.Background(), &dto.RequestCodeRequest{Email: email}))
	code, _ := f.codeRepo.Get(email)
	first, err := f.service.VerifyCode(context.Background(), &dto.VerifyCodeRequest{Email: email, Code: code})
	assert.NoError(t, err)

	// Spend something, then log in again.
	assert.NoError(t, f.balanceRepo.Debit(context.Background(), &entity.Transaction{
		UserId: first.User.Id,
		Type:   entity.TransactionTypeDebit,
		Amount: decimal.RequireFromString("4"),
	}))

	assert.NoError(t, f.service.RequestCode(context.Background(), &dto.RequestCodeRequest{Email: email}))
	code, _ = f.codeRepo.Get(email)
	second, err := f.service.VerifyCode(context.Background(), &dto.VerifyCodeRequest{Email: email, Code: code})
	assert.NoError(t, err)

	assert.Equal(t, first.User.Id, second.User.Id)
	balance, _ := f.balanceRepo.Balance(context.Background(), second.User.Id)
	assert.Equal(t, "6", balance.String())
}

func TestVerifyCodeWrongCode(t *testing.T) {
	f := newAuthFixture(t)
	email := "user@example.com"

	assert.NoError(t, f.service.RequestCode(context.Background(), &dto.RequestCodeRequest{Email: email}))

	_, err := f.service.VerifyCode(context.Background(), &dto.VerifyCodeRequest{Email: email, Code: "000000"})
	if err == nil {
		t.Fatal("expected wrong code to be rejected")
	}
	assert.ErrorIs(t, err, entity.ErrInvalidCode)

	// A failed attempt does not consume the code.
	_, found := f.codeRepo.Get(email)
	assert.True(t, found)
}

func TestVerifyCodeWithoutRequest(t *testing.T) {
	f := newAuthFixture(t)

	_, err := f.service.VerifyCode(context.Background(), &dto.VerifyCodeRequest{
		Email: "nobody@example.com",
		Code:  "123456",
	})
	assert.ErrorIs(t, err, entity.ErrCodeExpired)
}
