package session

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/golang-jwt/jwt/v5"

	"feedbackportal/internal/model"
	"feedbackportal/internal/storage"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func TestUserFromToken_ReadsIdentityClaims(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{
		"user_id": "u-42",
		"name":    "Ana",
		"role":    "admin",
	})

	user, err := UserFromToken(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if user.ID != "u-42" || user.Name != "Ana" || user.Role != "admin" {
		t.Errorf("user = %+v", user)
	}
	if !user.IsAdmin() {
		t.Error("role admin must report IsAdmin")
	}
}

func TestUserFromToken_NumericUserID(t *testing.T) {
	// json decoding turns numeric claims into float64
	token := signedToken(t, jwt.MapClaims{"user_id": 42, "name": "Ana", "role": "user"})

	user, err := UserFromToken(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if user.ID != "42" {
		t.Errorf("id = %q, want 42", user.ID)
	}
	if user.IsAdmin() {
		t.Error("role user must not report IsAdmin")
	}
}

func TestUserFromToken_MalformedToken(t *testing.T) {
	_, err := UserFromToken("not-a-jwt")
	if !model.IsKind(err, model.KindValidationFailure) {
		t.Fatalf("err = %v, want VALIDATION_FAILURE", err)
	}
}

func TestUserFromToken_MissingUserID(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{"name": "Ana"})
	_, err := UserFromToken(token)
	if !model.IsKind(err, model.KindValidationFailure) {
		t.Fatalf("err = %v, want VALIDATION_FAILURE", err)
	}
}

func TestLogin_RoundTripsThroughStorage(t *testing.T) {
	store, err := storage.NewJSONStorage(filepath.Join(t.TempDir(), "session.json"))
	if err != nil {
		t.Fatalf("storage: %v", err)
	}
	token := signedToken(t, jwt.MapClaims{"user_id": "u-7", "name": "Rui", "role": "user"})

	ctx := context.Background()
	user, err := Login(ctx, store, token)
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if user.Name != "Rui" {
		t.Errorf("user = %+v", user)
	}

	p, err := NewProvider(ctx, store)
	if err != nil {
		t.Fatalf("provider: %v", err)
	}
	got, ok := p.CurrentUser()
	if !ok || got.ID != "u-7" {
		t.Errorf("current user = %+v/%v", got, ok)
	}
	if p.Token() != token {
		t.Error("provider must expose the stored token")
	}

	if err := Logout(ctx, store); err != nil {
		t.Fatalf("logout: %v", err)
	}
	p, err = NewProvider(ctx, store)
	if err != nil {
		t.Fatalf("provider after logout: %v", err)
	}
	if _, ok := p.CurrentUser(); ok {
		t.Error("no user expected after logout")
	}
}

func TestLogin_RejectsBadToken(t *testing.T) {
	store, err := storage.NewJSONStorage(filepath.Join(t.TempDir(), "session.json"))
	if err != nil {
		t.Fatalf("storage: %v", err)
	}

	if _, err := Login(context.Background(), store, "garbage"); err == nil {
		t.Fatal("expected error")
	}
	sess, err := store.LoadSession(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if sess != nil {
		t.Error("failed login must not persist a session")
	}
}
