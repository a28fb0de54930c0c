package usecase

import (
	"context"
	"errors"

	"venue-scheduler/internal/domain/user"
	"venue-scheduler/internal/pkg/errs"
	"venue-scheduler/internal/pkg/jwt"
	"venue-scheduler/internal/pkg/password"
	"venue-scheduler/internal/usecase/readmodel"
	"venue-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrUserInactive         = errors.New("user account is inactive")
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrTokenGeneration      = errors.New("token generation failed")
	ErrTokenValidation      = errors.New("token validation failed")
)

type UserReadStore interface {
	FindByEmail(ctx context.Context, email string) (*readmodel.AuthorizedUserRM, string, error)
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.AuthorizedUserRM, error)
	ListWorkers(ctx context.Context) ([]*readmodel.WorkerRM, error)
	ListMembers(ctx context.Context) ([]*readmodel.AuthorizedUserRM, error)
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type AuthUseCase interface {
	Login(ctx context.Context, credentials user.Credentials) (*TokenPair, *readmodel.AuthorizedUserRM, error)
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*readmodel.AuthorizedUserRM, error)
}

type authUseCaseImpl struct {
	userReads  UserReadStore
	uow        shared.UnitOfWork
	jwtService *jwt.Service
}

func NewAuthUseCase(userReads UserReadStore, uow shared.UnitOfWork, jwtService *jwt.Service) AuthUseCase {
	return &authUseCaseImpl{
		userReads:  userReads,
		uow:        uow,
		jwtService: jwtService,
	}
}

func (a *authUseCaseImpl) Login(ctx context.Context, credentials user.Credentials) (*TokenPair, *readmodel.AuthorizedUserRM, error) {
	userRM, err := a.validateUser(ctx, credentials)
	if err != nil {
		return nil, nil, err
	}

	pair, err := a.issueTokens(userRM)
	if err != nil {
		return nil, nil, err
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdateLastLogin(ctx, userRM.ID)
	})
	if err != nil {
		return nil, nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return pair, userRM, nil
}

func (a *authUseCaseImpl) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, ErrTokenValidation
	}

	// Re-read the profile so revoked roles or deactivation take effect at
	// refresh time, not token expiry.
	userRM, err := a.userReads.FindByID(ctx, claims.UserID)
	if err != nil || userRM == nil {
		return nil, ErrUserNotFound
	}
	if !userRM.IsActive {
		return nil, ErrUserInactive
	}

	return a.issueTokens(userRM)
}

func (a *authUseCaseImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*readmodel.AuthorizedUserRM, error) {
	userRM, err := a.userReads.FindByID(ctx, userID)
	if err != nil || userRM == nil {
		return nil, ErrUserNotFound
	}

	if !userRM.IsActive {
		return nil, ErrUserInactive
	}

	return userRM, nil
}

func (a *authUseCaseImpl) validateUser(ctx context.Context, credentials user.Credentials) (*readmodel.AuthorizedUserRM, error) {
	userRM, hashedPassword, err := a.userReads.FindByEmail(ctx, credentials.Email().Value())
	if err != nil || userRM == nil {
		return nil, ErrUserNotFound
	}

	if !userRM.IsActive {
		return nil, ErrUserInactive
	}

	if err := password.ComparePassword(hashedPassword, credentials.Password().Value()); err != nil {
		return nil, ErrInvalidCredentials
	}

	return userRM, nil
}

func (a *authUseCaseImpl) issueTokens(userRM *readmodel.AuthorizedUserRM) (*TokenPair, error) {
	accessToken, err := a.jwtService.GenerateAccessToken(userRM.ID, userRM.IsAdmin, userRM.IsWorker)
	if err != nil {
		return nil, ErrTokenGeneration
	}

	refreshToken, err := a.jwtService.GenerateRefreshToken(userRM.ID, userRM.IsAdmin, userRM.IsWorker)
	if err != nil {
		return nil, ErrTokenGeneration
	}

	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}
