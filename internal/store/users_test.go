package store

import (
	"errors"
	"testing"

	"toolcrib/internal/models"
)

func TestCreateAndAuthenticate(t *testing.T) {
	s := NewUserStore(setupTestDB(t))

	created, err := s.Create("inspector", "Secret123", models.RoleSeniorExpert)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.PasswordHash == "Secret123" {
		t.Fatal("password stored in plaintext")
	}

	user, err := s.Authenticate("inspector", "Secret123")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if user.Role != models.RoleSeniorExpert {
		t.Fatalf("wrong role: %s", user.Role)
	}

	if _, err := s.Authenticate("inspector", "wrong"); !errors.Is(err, ErrBadCredentials) {
		t.Fatalf("expected ErrBadCredentials for wrong password, got %v", err)
	}
	if _, err := s.Authenticate("nobody", "Secret123"); !errors.Is(err, ErrBadCredentials) {
		t.Fatalf("expected ErrBadCredentials for unknown user, got %v", err)
	}
}

func TestCreateDuplicateUsername(t *testing.T) {
	s := NewUserStore(setupTestDB(t))

	if _, err := s.Create("dup", "Secret123", models.RoleMember); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := s.Create("dup", "Other456", models.RoleMember); !errors.Is(err, ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}
