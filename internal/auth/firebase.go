package auth

import (
	"context"
	"encoding/base64"
	"fmt"

	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	"pawmart-backend-go/internal/config"
)

// firebaseVerifier implements TokenVerifier on the Firebase Admin SDK.
type firebaseVerifier struct {
	client *fbauth.Client
}

// NewFirebaseVerifier initializes the Firebase Admin SDK from the configured
// credentials and returns a TokenVerifier backed by its Auth client.
// Credentials come from a service-account file path, a base64-encoded
// service-account JSON, or Application Default Credentials, in that order.
func NewFirebaseVerifier(ctx context.Context, cfg *config.Config) (TokenVerifier, error) {
	var opts []option.ClientOption
	switch {
	case cfg.GoogleApplicationCredentials != "":
		opts = append(opts, option.WithCredentialsFile(cfg.GoogleApplicationCredentials))
	case cfg.FirebaseServiceAccountJSONBase64 != "":
		decoded, err := base64.StdEncoding.DecodeString(cfg.FirebaseServiceAccountJSONBase64)
		if err != nil {
			return nil, fmt.Errorf("decode FIREBASE_SERVICE_ACCOUNT_JSON_BASE64: %w", err)
		}
		opts = append(opts, option.WithCredentialsJSON(decoded))
	}

	var fbConfig *firebase.Config
	if cfg.FirebaseProjectID != "" {
		fbConfig = &firebase.Config{ProjectID: cfg.FirebaseProjectID}
	}

	app, err := firebase.NewApp(ctx, fbConfig, opts...)
	if err != nil {
		return nil, fmt.Errorf("firebase.NewApp: %w", err)
	}
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("firebase app.Auth: %w", err)
	}
	return &firebaseVerifier{client: client}, nil
}

// Verify validates a Firebase ID token and extracts the caller's identity
// from its standard claims.
func (v *firebaseVerifier) Verify(ctx context.Context, token string) (*Identity, error) {
	decoded, err := v.client.VerifyIDToken(ctx, token)
	if err != nil {
		switch {
		case fbauth.IsIDTokenExpired(err):
			return nil, fmt.Errorf("%w: %v", ErrTokenExpired, err)
		case fbauth.IsIDTokenInvalid(err):
			return nil, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
		default:
			return nil, fmt.Errorf("%w: %v", ErrVerifierUnavailable, err)
		}
	}

	identity := &Identity{UID: decoded.UID}
	if email, ok := decoded.Claims["email"].(string); ok {
		identity.Email = email
	}
	if name, ok := decoded.Claims["name"].(string); ok {
		identity.DisplayName = name
	}
	if picture, ok := decoded.Claims["picture"].(string); ok {
		identity.PhotoURL = picture
	}
	return identity, nil
}
