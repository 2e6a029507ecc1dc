// FILE: internal/service/auth_service.go
package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"finance-advisor-be/internal/dto"
	"finance-advisor-be/internal/entity"
	"finance-advisor-be/internal/pkg/mailer"
	"finance-advisor-be/internal/pkg/metrics"
	"finance-advisor-be/internal/pkg/serverutils"
	"finance-advisor-be/internal/repository/contract"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type IAuthService interface {
	RequestCode(ctx context.Context, req *dto.RequestCodeRequest) error
	VerifyCode(ctx context.Context, req *dto.VerifyCodeRequest) (*dto.AuthResponse, error)
}

type authService struct {
	userRepo        contract.UserRepository
	codeRepo        contract.CodeRepository
	balanceRepo     contract.BalanceRepository
	settingsRepo    contract.SettingsRepository
	emailService    mailer.IEmailService
	startingBalance decimal.Decimal
}

func NewAuthService(
	userRepo contract.UserRepository,
	codeRepo contract.CodeRepository,
	balanceRepo contract.BalanceRepository,
	settingsRepo contract.SettingsRepository,
	emailService mailer.IEmailService,
	startingBalance decimal.Decimal,
) IAuthService {
	return &authService{
		userRepo:        userRepo,
		codeRepo:        codeRepo,
		balanceRepo:     balanceRepo,
		settingsRepo:    settingsRepo,
		emailService:    emailService,
		startingBalance: startingBalance,
	}
}

func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n), nil
}

// RequestCode issues a fresh 6-digit code for the email and "sends" it.
// The address is not validated against existing users: first login creates
// the account.
func (s *authService) RequestCode(ctx context.Context, req *dto.RequestCodeRequest) error {
	code, err := generateCode()
	if err != nil {
		return err
	}
	s.codeRepo.Save(req.Email, code)
	metrics.LoginCodesIssued.Inc()

	// Log to console for dev convenience
	fmt.Printf(">>> [DEBUG CODE] Login code for %s is: %s <<<\n", req.Email, code)

	go func() {
		if emailErr := s.emailService.SendLoginCode(req.Email, code); emailErr != nil {
			fmt.Printf("Error sending login code email: %v\n", emailErr)
		}
	}()

	return nil
}

// VerifyCode checks the pending code, creates the user on first login with
// the starting balance and default settings, and mints a session token.
func (s *authService) VerifyCode(ctx context.Context, req *dto.VerifyCodeRequest) (*dto.AuthResponse, error) {
	stored, found := s.codeRepo.Get(req.Email)
	if !found {
		return nil, entity.ErrCodeExpired
	}
	if stored != req.Code {
		return nil, entity.ErrInvalidCode
	}
	s.codeRepo.Delete(req.Email)

	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		user = &entity.User{
			Id:        uuid.New(),
			Email:     req.Email,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
		if err := s.userRepo.Create(ctx, user); err != nil {
			return nil, err
		}
		if err := s.balanceRepo.EnsureAccount(ctx, user.Id, s.startingBalance); err != nil {
			return nil, err
		}
		if err := s.settingsRepo.Save(ctx, entity.DefaultSettings(user.Id)); err != nil {
			return nil, err
		}
	}

	accessTokenExpiry := time.Hour * 24
	claims := jwt.MapClaims{
		"user_id": user.Id.String(),
		"exp":     time.Now().Add(accessTokenExpiry).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(serverutils.JwtSecret()))
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		AccessToken: signedToken,
		User: dto.UserDTO{
			Id:    user.Id,
			Email: user.Email,
		},
	}, nil
}
