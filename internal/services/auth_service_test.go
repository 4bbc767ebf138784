package services

import (
	"testing"
	"time"

	"github.com/catalystlab/catalyst-backend/internal/config"
	"github.com/catalystlab/catalyst-backend/internal/dto"
	"github.com/catalystlab/catalyst-backend/internal/models"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:        "test-secret",
		JWTAccessExpiry:  15 * time.Minute,
		JWTRefreshExpiry: 168 * time.Hour,
	}
}

func register(t *testing.T, svc *AuthService) *dto.AuthResponse {
	t.Helper()
	resp, err := svc.Register(&dto.RegisterRequest{
		Email: "anna@example.com", Name: "Anna", Password: "correct horse",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	return resp
}

func TestRegisterAndLogin(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testConfig())

	resp := register(t, svc)
	if resp.Token == "" || resp.RefreshToken == "" {
		t.Fatal("token pair not issued")
	}
	if resp.User.Email != "anna@example.com" || resp.User.Name != "Anna" {
		t.Fatalf("user = %+v", resp.User)
	}

	// The password must never be stored in the clear.
	var stored models.User
	if err := db.First(&stored, "email = ?", "anna@example.com").Error; err != nil {
		t.Fatalf("load user: %v", err)
	}
	if stored.Password == "correct horse" {
		t.Fatal("password stored in plaintext")
	}

	login, err := svc.Login(&dto.LoginRequest{Email: "anna@example.com", Password: "correct horse"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if login.User.LastLogin == nil {
		t.Fatal("LastLogin not stamped on login")
	}

	if _, err := svc.Login(&dto.LoginRequest{Email: "anna@example.com", Password: "wrong"}); err != ErrInvalidCredentials {
		t.Fatalf("wrong password err = %v, want ErrInvalidCredentials", err)
	}
}

func TestRegisterValidation(t *testing.T) {
	svc := NewAuthService(newTestDB(t), testConfig())

	if _, err := svc.Register(&dto.RegisterRequest{Email: "a@b.c", Name: "A", Password: "short"}); err == nil {
		t.Fatal("expected error for short password")
	}
	if _, err := svc.Register(&dto.RegisterRequest{Name: "A", Password: "long enough"}); err == nil {
		t.Fatal("expected error for missing email")
	}

	register(t, svc)
	_, err := svc.Register(&dto.RegisterRequest{
		Email: "anna@example.com", Name: "Other", Password: "another pass",
	})
	if err != ErrEmailTaken {
		t.Fatalf("duplicate email err = %v, want ErrEmailTaken", err)
	}
}

func TestRefreshRotatesToken(t *testing.T) {
	svc := NewAuthService(newTestDB(t), testConfig())
	resp := register(t, svc)

	rotated, err := svc.Refresh(&dto.RefreshRequest{RefreshToken: resp.RefreshToken})
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if rotated.RefreshToken == resp.RefreshToken {
		t.Fatal("refresh token not rotated")
	}

	// The old token is revoked after the rotation.
	if _, err := svc.Refresh(&dto.RefreshRequest{RefreshToken: resp.RefreshToken}); err != ErrInvalidToken {
		t.Fatalf("reused token err = %v, want ErrInvalidToken", err)
	}
}

func TestLogoutRevokesToken(t *testing.T) {
	svc := NewAuthService(newTestDB(t), testConfig())
	resp := register(t, svc)

	if err := svc.Logout(&dto.LogoutRequest{RefreshToken: resp.RefreshToken}); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if _, err := svc.Refresh(&dto.RefreshRequest{RefreshToken: resp.RefreshToken}); err != ErrInvalidToken {
		t.Fatalf("post-logout err = %v, want ErrInvalidToken", err)
	}
}

func TestMe(t *testing.T) {
	svc := NewAuthService(newTestDB(t), testConfig())
	resp := register(t, svc)

	me, err := svc.Me(resp.User.ID)
	if err != nil {
		t.Fatalf("Me: %v", err)
	}
	if me.Email != resp.User.Email {
		t.Fatalf("Me = %+v", me)
	}
}
