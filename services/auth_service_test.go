package services

import (
	"errors"
	"testing"
	"time"

	"backend/repository"

	"gorm.io/gorm"
)

func newAuthService(db *gorm.DB) *AuthService {
	return NewAuthService(repository.NewUserRepository(db), "test-secret", time.Hour)
}

func TestSignupAndLogin(t *testing.T) {
	db := setupTestDB(t)
	svc := newAuthService(db)

	token, user, err := svc.Signup("New@Example.com", "password123", "田中 花子", "hanako")
	if err != nil {
		t.Fatalf("Signup: %v", err)
	}
	if token == "" {
		t.Error("signup must log the user in (issue a token)")
	}
	if user.Email != "new@example.com" {
		t.Errorf("email not normalized: %q", user.Email)
	}
	if user.Password == "password123" {
		t.Error("password must not be stored in plaintext")
	}
	if user.AvatarURL == "" || user.Location == "" || user.RegistrationDate == "" {
		t.Error("signup must fill default profile fields")
	}

	token, got, err := svc.Login("new@example.com", "password123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if token == "" || got.ID != user.ID {
		t.Error("login must return token and the same user")
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	svc := newAuthService(db)

	if _, _, err := svc.Signup("a@example.com", "password", "A", "a"); err != nil {
		t.Fatal(err)
	}
	_, _, err := svc.Signup("A@example.com", "password", "B", "b")
	if !errors.Is(err, ErrDuplicateEmail) {
		t.Fatalf("want ErrDuplicateEmail, got %v", err)
	}
}

func TestLoginErrors(t *testing.T) {
	db := setupTestDB(t)
	svc := newAuthService(db)

	if _, _, err := svc.Signup("a@example.com", "password", "A", "a"); err != nil {
		t.Fatal(err)
	}

	// email ที่ไม่มี กับ รหัสผิด ต้องแยก error กันให้ UI แสดงข้อความต่างกัน
	if _, _, err := svc.Login("nobody@example.com", "password"); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown email: want ErrNotFound, got %v", err)
	}
	if _, _, err := svc.Login("a@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password: want ErrInvalidCredentials, got %v", err)
	}
}
