package session

import (
	"context"
	"fmt"
	"log"
	"strconv"

	"github.com/golang-jwt/jwt/v5"

	"feedbackportal/internal/model"
	"feedbackportal/internal/storage"
)

// Provider hands the current user and token to the stores and the
// transport. Injected at construction so no component reads ambient
// session state.
type Provider struct {
	user  model.User
	token string
}

// NewProvider builds a provider from whatever session is persisted. An
// empty provider (no user, no token) is valid: the caller is anonymous.
func NewProvider(ctx context.Context, store storage.Storage) (*Provider, error) {
	sess, err := store.LoadSession(ctx)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if sess == nil {
		return &Provider{}, nil
	}

	p := &Provider{user: sess.User, token: sess.Token}
	if p.user.ID == "" && sess.Token != "" {
		user, err := UserFromToken(sess.Token)
		if err != nil {
			log.Printf("[Session] Could not derive user from stored token: %v", err)
		} else {
			p.user = user
		}
	}
	return p, nil
}

// CurrentUser returns the session's user, if any.
func (p *Provider) CurrentUser() (model.User, bool) {
	return p.user, p.user.ID != ""
}

// Token satisfies transport.TokenSource.
func (p *Provider) Token() string { return p.token }

// Login validates a portal-issued token and persists the session.
func Login(ctx context.Context, store storage.Storage, token string) (model.User, error) {
	user, err := UserFromToken(token)
	if err != nil {
		return model.User{}, err
	}
	sess := storage.Session{Token: token, User: user}
	if err := store.SaveSession(ctx, sess); err != nil {
		return model.User{}, fmt.Errorf("save session: %w", err)
	}
	return user, nil
}

// Logout discards the persisted session.
func Logout(ctx context.Context, store storage.Storage) error {
	return store.ClearSession(ctx)
}

// UserFromToken reads the identity claims out of a portal JWT. The
// backend signs and verifies tokens; the client only reads its own
// identity from them, so the signature is not checked here.
func UserFromToken(token string) (model.User, error) {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return model.User{}, model.ValidationFailure("invalid session token")
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return model.User{}, model.ValidationFailure("invalid token claims")
	}

	var user model.User
	switch id := claims["user_id"].(type) {
	case string:
		user.ID = id
	case float64:
		user.ID = strconv.FormatFloat(id, 'f', -1, 64)
	}
	if name, ok := claims["name"].(string); ok {
		user.Name = name
	}
	if role, ok := claims["role"].(string); ok {
		user.Role = role
	}

	if user.ID == "" {
		return model.User{}, model.ValidationFailure("token has no user_id claim")
	}
	return user, nil
}
