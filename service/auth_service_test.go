package service

import (
	"errors"
	"testing"

	"github.com/jagadeeshwarid/TaskTrackerPro/database"
	"github.com/jagadeeshwarid/TaskTrackerPro/repository"
	"github.com/jagadeeshwarid/TaskTrackerPro/types"
	"github.com/jagadeeshwarid/TaskTrackerPro/utils"
)

func newTestStore(t *testing.T) *database.Store {
	t.Helper()
	store, err := database.NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return store
}

func newAuthService(t *testing.T) AuthService {
	t.Helper()
	return NewAuthService(repository.NewUserRepo(newTestStore(t).Users))
}

func TestLegacyHash_Deterministic(t *testing.T) {
	if utils.LegacyHashPassword("secret") != utils.LegacyHashPassword("secret") {
		t.Fatal("same input must yield the same digest")
	}
	if utils.LegacyHashPassword("secret") == utils.LegacyHashPassword("Secret") {
		t.Fatal("different inputs must yield different digests")
	}
	// The digest the original system seeded for the admin account.
	if got := utils.LegacyHashPassword("admin"); got != database.SeededAdminDigest {
		t.Fatalf("admin digest mismatch: %s", got)
	}
}

func TestVerify_SeededAdmin(t *testing.T) {
	auth := newAuthService(t)

	if !auth.Verify("admin", "admin") {
		t.Fatal("seeded admin credential must verify via the legacy digest")
	}
	if auth.Verify("admin", "wrong") {
		t.Fatal("wrong password must not verify")
	}
	if auth.Verify("nobody", "admin") {
		t.Fatal("unknown user must be a plain false, not an error")
	}
}

func TestCreate_HashesWithBcryptAndVerifies(t *testing.T) {
	store := newTestStore(t)
	repo := repository.NewUserRepo(store.Users)
	auth := NewAuthService(repo)

	if err := auth.Create("bob", "hunter2secret", types.USER_ROLE_EMPLOYEE); err != nil {
		t.Fatalf("Create: %v", err)
	}

	user, err := repo.GetByUsername("bob")
	if err != nil {
		t.Fatalf("GetByUsername: %v", err)
	}
	if user.Password == "hunter2secret" || user.Password == utils.LegacyHashPassword("hunter2secret") {
		t.Fatalf("password stored without bcrypt: %s", user.Password)
	}
	if !auth.Verify("bob", "hunter2secret") {
		t.Fatal("created credential must verify")
	}
}

func TestCreate_DuplicateUsername(t *testing.T) {
	auth := newAuthService(t)

	if err := auth.Create("bob", "password1", types.USER_ROLE_EMPLOYEE); err != nil {
		t.Fatalf("first Create: %v", err)
	}
	err := auth.Create("bob", "password2", types.USER_ROLE_EMPLOYEE)
	if !errors.Is(err, types.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestCreate_RejectsEmptyAndUnknownRole(t *testing.T) {
	auth := newAuthService(t)

	cases := []struct {
		name               string
		username, password string
		role               string
	}{
		{"empty username", "", "password1", types.USER_ROLE_EMPLOYEE},
		{"empty password", "bob", "", types.USER_ROLE_EMPLOYEE},
		{"unknown role", "bob", "password1", "manager"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := auth.Create(tc.username, tc.password, tc.role); !errors.Is(err, types.ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
		})
	}
}

func TestResetPassword(t *testing.T) {
	auth := newAuthService(t)

	if err := auth.ResetPassword("nobody", "newpassword"); !errors.Is(err, types.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	// Resetting the seeded admin migrates it off the legacy digest.
	if err := auth.ResetPassword("admin", "rotated-secret"); err != nil {
		t.Fatalf("ResetPassword: %v", err)
	}
	if auth.Verify("admin", "admin") {
		t.Fatal("old password must stop verifying after reset")
	}
	if !auth.Verify("admin", "rotated-secret") {
		t.Fatal("new password must verify after reset")
	}
}

func TestLogin_IssuesTokenCarryingPrincipal(t *testing.T) {
	auth := newAuthService(t)

	token, user, err := auth.Login("admin", "admin")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if user.Role != types.USER_ROLE_ADMIN {
		t.Fatalf("unexpected role %q", user.Role)
	}
	claims, err := utils.ParseUserToken(token)
	if err != nil {
		t.Fatalf("ParseUserToken: %v", err)
	}
	if claims.Username != "admin" || claims.Role != types.USER_ROLE_ADMIN {
		t.Fatalf("claims mismatch: %+v", claims)
	}

	if _, _, err := auth.Login("admin", "wrong"); !errors.Is(err, types.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
