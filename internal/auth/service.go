package auth

import (
	"context"
	"errors"
	"time"

	"github.com/siagaid/siaga-api/internal/store"
)

// ErrUnverifiedEmail rejects logins whose email the identity provider has
// not verified. No account is created in that case.
var ErrUnverifiedEmail = errors.New("email not verified")

// Service composes delegated identity verification, account resolution, and
// local session issuance.
type Service struct {
	verifier Verifier
	users    store.UserStore
	tokens   *TokenManager
}

// NewService creates the session/identity gate.
func NewService(verifier Verifier, users store.UserStore, tokens *TokenManager) *Service {
	return &Service{verifier: verifier, users: users, tokens: tokens}
}

// LoginWithGoogle verifies the delegated credential, resolves or creates
// the account, and issues a session token.
func (s *Service) LoginWithGoogle(ctx context.Context, credential string) (string, *store.User, error) {
	identity, err := s.verifier.Verify(ctx, credential)
	if err != nil {
		return "", nil, err
	}
	if !identity.EmailVerified {
		return "", nil, ErrUnverifiedEmail
	}

	user, err := s.resolveAccount(ctx, identity)
	if err != nil {
		return "", nil, err
	}

	token, err := s.tokens.Issue(user.ID, user.Email, user.Name)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// resolveAccount is the only place accounts are created: one email (or
// external id) resolves to exactly one account. An existing account gets
// its mutable profile fields refreshed in place.
func (s *Service) resolveAccount(ctx context.Context, identity *Identity) (*store.User, error) {
	now := time.Now().UTC()

	existing, err := s.users.FindByIdentity(ctx, identity.GoogleID, identity.Email)
	if err == nil {
		if err := s.users.UpdateProfile(ctx, existing.ID, identity.Name, identity.Picture, now); err != nil {
			return nil, err
		}
		existing.Name = identity.Name
		existing.Picture = identity.Picture
		existing.LastLogin = now
		return existing, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	user := &store.User{
		GoogleID:      identity.GoogleID,
		Email:         identity.Email,
		Name:          identity.Name,
		Picture:       identity.Picture,
		EmailVerified: identity.EmailVerified,
		Role:          "user",
		ReportsCount:  0,
		CreatedAt:     now,
		LastLogin:     now,
	}
	if _, err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// VerifyToken checks a session token and returns its claims.
func (s *Service) VerifyToken(tokenString string) (*Claims, error) {
	return s.tokens.Verify(tokenString)
}

// UserByID loads an account by id.
func (s *Service) UserByID(ctx context.Context, id string) (*store.User, error) {
	return s.users.FindByID(ctx, id)
}
