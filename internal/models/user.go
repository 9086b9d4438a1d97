package models

import (
	"time"

	"github.com/google/uuid"
)

// User is an account holder. Cards and transactions hang off the user id;
// Password holds the bcrypt hash, never the plaintext.
type User struct {
	ID        uuid.UUID `db:"id"`
	Username  string    `db:"username"`
	Email     string    `db:"email"`
	Password  string    `db:"password"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
