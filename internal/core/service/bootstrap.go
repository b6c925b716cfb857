package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/univeval/evaluation-system/internal/core/domain"
	"github.com/univeval/evaluation-system/internal/core/ports"
)

// SeedDefaultAccounts ensures the bootstrap admin and hr accounts exist so a
// fresh deployment can be administered. Existing accounts are left untouched.
func SeedDefaultAccounts(ctx context.Context, users ports.UserRepository, log zerolog.Logger) error {
	seeds := []struct {
		username string
		password string
		role     domain.Role
	}{
		{"admin", "admin123", domain.RoleAdmin},
		{"hr", "hr123", domain.RoleHR},
	}

	for _, seed := range seeds {
		if _, err := users.FindByUsername(ctx, seed.username); err == nil {
			continue
		} else if !errors.Is(err, domain.ErrUserNotFound) {
			return fmt.Errorf("seed lookup %s: %w", seed.username, err)
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(seed.password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("seed hash %s: %w", seed.username, err)
		}

		now := time.Now().UTC()
		_, err = users.Create(ctx, &domain.User{
			Username:     seed.username,
			PasswordHash: string(hash),
			Role:         seed.role,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
		if err != nil && !errors.Is(err, domain.ErrUserExists) {
			return fmt.Errorf("seed create %s: %w", seed.username, err)
		}

		log.Info().Str("username", seed.username).Str("role", string(seed.role)).Msg("seeded default account")
	}
	return nil
}
