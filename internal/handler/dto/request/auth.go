package request

import (
	"room-booking/internal/domain/user"
)

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r *RegisterRequest) ToDomain() (user.Username, user.Password, error) {
	username, err := user.NewUsername(r.Username)
	if err != nil {
		return user.Username{}, user.Password{}, err
	}
	pw, err := user.NewPassword(r.Password)
	if err != nil {
		return user.Username{}, user.Password{}, err
	}
	return username, pw, nil
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
