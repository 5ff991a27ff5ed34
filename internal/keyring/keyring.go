// Package keyring stores the tray helper's webhook secret in the OS keyring
// so it never has to live on disk in plain text.
package keyring

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"

	"grasspit/internal/constants"
)

var (
	// ErrNotFound is returned when no secret is stored in the keyring
	ErrNotFound = errors.New("tray secret not found in keyring")
	// ErrKeyringUnavailable is returned when the OS keyring is not available
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
)

// GetTraySecret retrieves the tray webhook secret from the OS keyring.
// Returns ErrNotFound if no secret is stored.
func GetTraySecret() (string, error) {
	secret, err := keyring.Get(constants.AppName, constants.TraySecretKeyringUser)
	if err != nil {
		if err == keyring.ErrNotFound {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}
	return secret, nil
}

// SetTraySecret stores the tray webhook secret in the OS keyring.
func SetTraySecret(secret string) error {
	if secret == "" {
		return errors.New("secret cannot be empty")
	}
	if err := keyring.Set(constants.AppName, constants.TraySecretKeyringUser, secret); err != nil {
		return fmt.Errorf("failed to store tray secret in keyring: %w", err)
	}
	return nil
}

// DeleteTraySecret removes the tray webhook secret from the OS keyring.
func DeleteTraySecret() error {
	err := keyring.Delete(constants.AppName, constants.TraySecretKeyringUser)
	if err != nil {
		if err == keyring.ErrNotFound {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete tray secret from keyring: %w", err)
	}
	return nil
}

// IsAvailable checks if the OS keyring is available on the current system.
// This is a best-effort check and may not catch all failure scenarios.
func IsAvailable() bool {
	_, err := keyring.Get(constants.AppName, "test-availability")
	// ErrNotFound means the keyring answered, it just has no entry.
	return err == nil || err == keyring.ErrNotFound
}
