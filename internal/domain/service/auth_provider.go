package service

import "context"

// AuthAccountMetadata is attached to an identity-provider account so that the
// provider's tokens carry the local role binding.
type AuthAccountMetadata struct {
	UserID          string
	Username        string
	DisplayName     string
	Role            string
	RelatedEntityID string
}

// AuthProvider provisions accounts in the external identity service. The local
// User record is the source of truth for login, so callers treat failures
// here as best-effort.
type AuthProvider interface {
	CreateAuthUser(ctx context.Context, email, password string, metadata AuthAccountMetadata) error
}
