package serviceimpl

import (
	"context"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"menu-api/domain/dto"
	"menu-api/domain/models"
	"menu-api/pkg/apperr"
)

const testSecret = "test-secret"

func seedUser(t *testing.T, repo *fakeUserRepo, email, password string) *models.User {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user := &models.User{Email: email, Password: string(hashed), Role: models.RoleOwner}
	if err := repo.Create(context.Background(), user); err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func TestLogin(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "owner@test.local", "correct-password")
	service := NewUserService(repo, testSecret)
	ctx := context.Background()

	t.Run("success returns token", func(t *testing.T) {
		resp, err := service.Login(ctx, &dto.LoginRequest{Email: "owner@test.local", Password: "correct-password"})
		if err != nil {
			t.Fatalf("Login() error = %v", err)
		}
		if resp.Token == "" {
			t.Error("expected non-empty token")
		}
		if resp.User.Email != "owner@test.local" {
			t.Errorf("user email = %q", resp.User.Email)
		}
	})

	// email ผิดกับ password ผิดต้องได้ error เดียวกันเป๊ะ
	t.Run("uniform failure message", func(t *testing.T) {
		_, errEmail := service.Login(ctx, &dto.LoginRequest{Email: "nobody@test.local", Password: "x"})
		_, errPassword := service.Login(ctx, &dto.LoginRequest{Email: "owner@test.local", Password: "wrong"})

		for _, err := range []error{errEmail, errPassword} {
			if apperr.KindOf(err) != apperr.KindUnauthenticated {
				t.Errorf("kind = %v, want Unauthenticated", apperr.KindOf(err))
			}
		}
		if errEmail.Error() != errPassword.Error() {
			t.Errorf("messages differ: %q vs %q", errEmail, errPassword)
		}
	})
}

func TestGetProfile(t *testing.T) {
	repo := newFakeUserRepo()
	user := seedUser(t, repo, "owner@test.local", "pw")
	service := NewUserService(repo, testSecret)

	got, err := service.GetProfile(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("GetProfile() error = %v", err)
	}
	if got.Email != user.Email {
		t.Errorf("email = %q, want %q", got.Email, user.Email)
	}

	if _, err := service.GetProfile(context.Background(), 999); apperr.KindOf(err) != apperr.KindNotFound {
		t.Errorf("missing user kind = %v, want NotFound", apperr.KindOf(err))
	}
}
