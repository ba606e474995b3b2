package commands

//go:generate mockgen -source=auth.go -destination=../../../tests/mock/commands/auth.go -package=commandsmock

import (
	"context"
	"log/slog"
	"time"

	"room-booking/internal/domain/user"
	reqdto "room-booking/internal/handler/dto/request"
	"room-booking/internal/infra"
	"room-booking/internal/pkg/clock"
	"room-booking/internal/pkg/errs"
	"room-booking/internal/pkg/jwt"
	"room-booking/internal/pkg/password"
	"room-booking/internal/usecase/shared"
)

var (
	ErrUsernameTaken      = errs.New("username already taken")
	ErrInvalidCredentials = errs.New("invalid credentials")
	ErrTokenGeneration    = errs.New("token generation failed")
)

type LoginResult struct {
	User        *user.User
	AccessToken string
	ExpiresIn   time.Duration
}

type AuthCommands interface {
	Register(ctx context.Context, req reqdto.RegisterRequest, role user.Role) (*user.User, error)
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
	// EnsureAdmin creates the admin account unless the username already exists.
	EnsureAdmin(ctx context.Context, username, plainPassword string) error
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	jwtService *jwt.Service
	clock      clock.Clock
}

func NewAuthCommands(uow shared.UnitOfWork, jwtService *jwt.Service, clk clock.Clock) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		jwtService: jwtService,
		clock:      clk,
	}
}

func (a *authCommandsImpl) Register(ctx context.Context, req reqdto.RegisterRequest, role user.Role) (*user.User, error) {
	username, pw, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, shared.ErrValidation)
	}
	if !role.IsValid() {
		return nil, errs.Mark(user.ErrInvalidRole, shared.ErrValidation)
	}

	hashed, err := password.Hash(pw.Value())
	if err != nil {
		return nil, errs.Wrap(err, "failed to hash password")
	}

	u := user.NewUser(username, hashed, role, a.clock.Now())
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().Insert(ctx, u)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrUsernameTaken
		}
		return nil, errs.Mark(err, shared.ErrStorage)
	}

	slog.Info("user registered", "user_id", u.ID().String(), "role", role.String())
	return u, nil
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	var u *user.User
	err := a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		found, err := tx.Users().FindByUsername(ctx, req.Username)
		if err != nil {
			return err
		}
		u = found
		return nil
	})
	if err != nil {
		// Unknown usernames and wrong passwords look the same to the caller
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, errs.Mark(err, shared.ErrStorage)
	}

	if err := password.Compare(u.PasswordHash(), req.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := a.jwtService.GenerateToken(u.ID(), u.Username().Value(), u.Role())
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &LoginResult{
		User:        u,
		AccessToken: token,
		ExpiresIn:   a.jwtService.TokenDuration(),
	}, nil
}

func (a *authCommandsImpl) EnsureAdmin(ctx context.Context, username, plainPassword string) error {
	_, err := a.Register(ctx, reqdto.RegisterRequest{Username: username, Password: plainPassword}, user.RoleAdmin)
	if errs.IsAny(err, ErrUsernameTaken) {
		return nil
	}
	return err
}
