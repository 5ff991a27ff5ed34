package system

import (
	"fmt"

	"grasspit/internal/keyring"
)

// TraySecretCmd manages the shared secret the tray helper expects on its
// webhook. Stored in the OS keyring when one is available.
type TraySecretCmd struct {
	Set   string `help:"Store a new tray secret." xor:"op"`
	Clear bool   `help:"Remove the stored tray secret." xor:"op"`
}

func (c *TraySecretCmd) Run() error {
	switch {
	case c.Set != "":
		if err := keyring.SetTraySecret(c.Set); err != nil {
			return err
		}
		fmt.Println("✓ Tray secret stored in the OS keyring.")
	case c.Clear:
		if err := keyring.DeleteTraySecret(); err != nil {
			return err
		}
		fmt.Println("✓ Tray secret removed.")
	default:
		if !keyring.IsAvailable() {
			fmt.Println("OS keyring unavailable; the tray falls back to its lockfile secret.")
			return nil
		}
		if _, err := keyring.GetTraySecret(); err != nil {
			fmt.Println("No tray secret stored. Set one with --set.")
			return nil
		}
		fmt.Println("A tray secret is stored in the OS keyring.")
	}
	return nil
}
