package response

import (
	"time"

	"room-booking/internal/domain/user"
	"room-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

type LoginResponse struct {
	AccessToken string        `json:"access_token"`
	ExpiresIn   int64         `json:"expires_in"`
	User        *UserResponse `json:"user"`
}

func FromUser(u *user.User) *UserResponse {
	return &UserResponse{
		ID:        u.ID(),
		Username:  u.Username().Value(),
		Role:      u.Role().String(),
		CreatedAt: u.CreatedAt(),
	}
}

func FromUserView(v *queries.UserView) *UserResponse {
	return &UserResponse{
		ID:        v.ID,
		Username:  v.Username,
		Role:      v.Role,
		CreatedAt: v.CreatedAt,
	}
}
