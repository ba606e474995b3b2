package usecase

import (
	"room-booking/internal/domain/user"
	"room-booking/internal/pkg/errs"
	"room-booking/internal/pkg/jwt"

	"github.com/google/uuid"
)

var ErrInvalidToken = errs.New("invalid or expired token")

// Identity is the caller as proven by a verified access token. Handlers pass
// UserID to commands as the acting user.
type Identity struct {
	UserID   uuid.UUID
	Username string
	Role     user.Role
}

func (i Identity) IsAdmin() bool {
	return i.Role == user.RoleAdmin
}

type TokenValidator interface {
	ValidateToken(tokenString string) (Identity, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (Identity, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return Identity{}, errs.Mark(err, ErrInvalidToken)
	}

	role, err := user.NewRole(claims.Role)
	if err != nil || claims.UserID == uuid.Nil {
		return Identity{}, ErrInvalidToken
	}

	return Identity{UserID: claims.UserID, Username: claims.Username, Role: role}, nil
}
