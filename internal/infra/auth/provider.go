package auth

import (
	"context"
	"log/slog"

	"churchadmin/config"
	"churchadmin/internal/domain/lifecycle"
	"churchadmin/internal/domain/service"
)

// NewAuthProvider selects Firebase when a project or credentials file is
// configured and the no-op provider otherwise.
func NewAuthProvider(cfg *config.Config, logger *slog.Logger) (service.AuthProvider, error) {
	if cfg.Firebase == nil || (cfg.Firebase.ProjectID == "" && cfg.Firebase.CredentialsPath == "") {
		logger.Info("Firebase not configured, auth provider accounts are disabled")

		return NewNoopProvider(logger), nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	provider, err := NewFirebaseProvider(ctx, cfg.Firebase, logger)
	if err != nil {
		return nil, err
	}
	logger.Info("Using Firebase auth provider", slog.String("projectId", cfg.Firebase.ProjectID))

	return provider, nil
}
