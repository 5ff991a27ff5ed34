package system

import (
	"fmt"

	"grasspit/internal/backup"
	"grasspit/internal/cli"
	"grasspit/internal/notifier"
	"grasspit/internal/validation"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false

	// Check 1: DB reachable
	if err := ctx.Store.Load(); err != nil {
		fmt.Printf("❌ Database reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Database reachable: OK\n")

		// Check 2: state slices readable
		if _, err := ctx.Store.GetCurrencyStats(); err != nil {
			fmt.Printf("❌ Currency state: FAIL (%v)\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Currency state: OK\n")
		}
		if _, err := ctx.Store.GetSessionStats(); err != nil {
			fmt.Printf("❌ Session stats: FAIL (%v)\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Session stats: OK\n")
		}

		// Check 3: settings within usable ranges
		if settings, err := ctx.Store.GetSettings(); err != nil {
			fmt.Printf("❌ Settings readable: FAIL (%v)\n", err)
			hasError = true
		} else if problems := validation.ValidateSettings(settings); len(problems) > 0 {
			for _, p := range problems {
				fmt.Printf("❌ Settings valid: FAIL (%s)\n", p)
			}
			hasError = true
		} else {
			fmt.Printf("✓ Settings valid: OK\n")
		}
	}

	// Check 4: backups present (warning only)
	backups, err := backup.NewManager(ctx.Store.GetConfigPath()).ListBackups()
	if err != nil || len(backups) == 0 {
		fmt.Printf("⚠ Backups present: WARNING (no backups yet)\n")
	} else {
		fmt.Printf("✓ Backups present: OK (%d)\n", len(backups))
	}

	// Check 5: tray helper reachable (warning only)
	if err := notifier.New().Notify("grasspit doctor check"); err != nil {
		fmt.Printf("⚠ Tray notifier: WARNING (%v)\n", err)
	} else {
		fmt.Printf("✓ Tray notifier: OK\n")
	}

	fmt.Println()
	if hasError {
		return fmt.Errorf("diagnostics found problems")
	}
	fmt.Println("All checks passed.")
	return nil
}
