package converter

import (
	"fmt"

	"room-booking/internal/domain/user"
	"room-booking/internal/infra/db"
)

func UserToParams(u *user.User) db.CreateUserParams {
	return db.CreateUserParams{
		ID:           u.ID(),
		Username:     u.Username().Value(),
		PasswordHash: u.PasswordHash(),
		Role:         u.Role().String(),
		CreatedAt:    u.CreatedAt(),
	}
}

func UserFromRow(row db.Users) (*user.User, error) {
	username, err := user.NewUsername(row.Username)
	if err != nil {
		return nil, fmt.Errorf("user %s: %w", row.ID, err)
	}
	role, err := user.NewRole(row.Role)
	if err != nil {
		return nil, fmt.Errorf("user %s: %w", row.ID, err)
	}
	return user.ReconstructUser(row.ID, username, row.PasswordHash, role, row.CreatedAt), nil
}
