package bootstrap

import (
	"errors"

	"room-booking/internal/pkg/config"
	"room-booking/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config) (*jwt.Service, error) {
	if cfg.JWT.Duration <= 0 {
		return nil, errors.New("JWT_DURATION must be positive")
	}
	return jwt.NewService(cfg.JWT.Secret, cfg.JWT.Duration), nil
}
