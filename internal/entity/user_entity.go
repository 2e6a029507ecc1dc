package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account in the mocked identity flow. There are no passwords:
// sign-in is email + one-time code only.
type User struct {
	Id        uuid.UUID
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
