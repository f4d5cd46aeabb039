package auth

import (
	"context"
	"log/slog"

	"churchadmin/config"
	"churchadmin/internal/domain/service"
	"churchadmin/internal/errors"

	firebase "firebase.google.com/go/v4"
	firebaseauth "firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

type firebaseProvider struct {
	client *firebaseauth.Client
	logger *slog.Logger
}

// NewFirebaseProvider creates accounts in Firebase Authentication. The local
// role binding is copied into custom claims.
func NewFirebaseProvider(ctx context.Context, cfg *config.FirebaseConfig, logger *slog.Logger) (service.AuthProvider, error) {
	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	var appCfg *firebase.Config
	if cfg.ProjectID != "" {
		appCfg = &firebase.Config{ProjectID: cfg.ProjectID}
	}

	app, err := firebase.NewApp(ctx, appCfg, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get Firebase auth client")
	}

	return &firebaseProvider{client: client, logger: logger}, nil
}

// CreateAuthUser creates the account and attaches the role claims.
func (p *firebaseProvider) CreateAuthUser(ctx context.Context, email, password string, metadata service.AuthAccountMetadata) error {
	params := (&firebaseauth.UserToCreate{}).
		Email(email).
		Password(password).
		EmailVerified(false).
		Disabled(false)
	if metadata.DisplayName != "" {
		params = params.DisplayName(metadata.DisplayName)
	}

	record, err := p.client.CreateUser(ctx, params)
	if err != nil {
		if firebaseauth.IsEmailAlreadyExists(err) {
			return errors.Wrapf(err, "firebase account for %s already exists", email)
		}

		return errors.Wrap(err, "failed to create firebase user")
	}

	claims := map[string]any{
		"userId":          metadata.UserID,
		"username":        metadata.Username,
		"role":            metadata.Role,
		"relatedEntityId": metadata.RelatedEntityID,
	}
	if err := p.client.SetCustomUserClaims(ctx, record.UID, claims); err != nil {
		return errors.Wrapf(err, "failed to set claims for firebase user %s", record.UID)
	}

	p.logger.Debug("Firebase account created", slog.String("uid", record.UID), slog.String("userID", metadata.UserID))

	return nil
}
