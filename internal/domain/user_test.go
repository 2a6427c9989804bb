package domain

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestNewUser(t *testing.T) {
	user, err := NewUser("alice", "alice@example.com", "correct-horse")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if user.ID == uuid.Nil {
		t.Error("Expected non-nil UUID, got nil UUID")
	}
	if user.Username != "alice" {
		t.Errorf("Expected username alice, got %s", user.Username)
	}
	if user.Password != "correct-horse" {
		t.Error("Expected plaintext password to be kept until hashing")
	}
	if user.CreatedAt.IsZero() || user.UpdatedAt.IsZero() {
		t.Error("Expected timestamps to be set")
	}
}

func TestUserValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(u *User)
		wantErr error
	}{
		{"valid", func(u *User) {}, nil},
		{"missing id", func(u *User) { u.ID = uuid.Nil }, ErrEmptyUserID},
		{"empty username", func(u *User) { u.Username = "" }, ErrEmptyUsername},
		{"short username", func(u *User) { u.Username = "ab" }, ErrInvalidUsername},
		{"username with spaces", func(u *User) { u.Username = "a b c" }, ErrInvalidUsername},
		{"empty email", func(u *User) { u.Email = "" }, ErrEmptyEmail},
		{"invalid email", func(u *User) { u.Email = "not-an-email" }, ErrInvalidEmail},
		{"short password", func(u *User) { u.Password = "short" }, ErrPasswordTooShort},
		{"long password", func(u *User) { u.Password = strings.Repeat("x", 73) }, ErrPasswordTooLong},
		{"hash only", func(u *User) { u.Password = ""; u.HashedPassword = "$2a$10$hash" }, nil},
		{"no password at all", func(u *User) { u.Password = "" }, ErrEmptyPassword},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			u := &User{
				ID:       uuid.New(),
				Username: "bob.smith",
				Email:    "bob@example.com",
				Password: "longenough",
			}
			tc.mutate(u)

			if err := u.Validate(); err != tc.wantErr {
				t.Errorf("Expected error %v, got %v", tc.wantErr, err)
			}
		})
	}
}
