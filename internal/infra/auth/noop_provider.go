package auth

import (
	"context"
	"log/slog"

	"churchadmin/internal/domain/service"
)

type noopProvider struct {
	logger *slog.Logger
}

// NewNoopProvider returns an AuthProvider that records nothing externally.
// It is used when Firebase is not configured.
func NewNoopProvider(logger *slog.Logger) service.AuthProvider {
	return &noopProvider{logger: logger}
}

func (p *noopProvider) CreateAuthUser(_ context.Context, email, _ string, metadata service.AuthAccountMetadata) error {
	p.logger.Debug("Auth provider disabled, skipping account",
		slog.String("email", email),
		slog.String("userID", metadata.UserID))

	return nil
}
