package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-web-server/internal/logger"
	"github.com/MKhiriev/go-web-server/internal/store"
	"github.com/MKhiriev/go-web-server/models"
)

// Demo account created by SeedDemoAccount.
const (
	DemoLogin    = "demo1"
	DemoPassword = "welcome"
)

// SeedDemoAccount registers the demo account. An already existing account
// is not an error.
func SeedDemoAccount(ctx context.Context, auth AuthService) error {
	_, err := auth.RegisterUser(ctx, models.User{Login: DemoLogin, Password: DemoPassword})
	if err != nil && !errors.Is(err, store.ErrLoginAlreadyExists) {
		return err
	}

	logger.FromContext(ctx).Info().Str("login", DemoLogin).Msg("demo account is ready")
	return nil
}
