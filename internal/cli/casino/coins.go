// Package casino holds the commands a casino host uses to settle bets. The
// games render elsewhere; only the money movement flows through here.
package casino

import (
	"fmt"

	"grasspit/internal/cli"
	"grasspit/internal/economy"
)

func requireCasino(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	if !settings.CasinoEnabled {
		return fmt.Errorf("the casino is disabled (enable it with 'grasspit settings --casino-enabled')")
	}
	return nil
}

type BetCmd struct {
	Amount int `arg:"" help:"Coins to wager."`
}

func (c *BetCmd) Run(ctx *cli.Context) error {
	if err := requireCasino(ctx); err != nil {
		return err
	}
	if c.Amount <= 0 {
		return fmt.Errorf("bet must be positive")
	}
	svc, err := ctx.Services()
	if err != nil {
		return err
	}
	if !svc.Ledger.SpendCoins(c.Amount) {
		return fmt.Errorf("insufficient funds: balance is %d, bet was %d", svc.Ledger.Balance(), c.Amount)
	}
	svc.Achievements.CheckBet(c.Amount)
	svc.Achievements.CheckBalance(svc.Ledger.Balance())
	fmt.Printf("Wagered %d $GRASS. Balance: %d\n", c.Amount, svc.Ledger.Balance())
	return nil
}

type PayoutCmd struct {
	Amount    int  `arg:"" help:"Coins won."`
	Blackjack bool `help:"Count this payout as a blackjack win."`
}

func (c *PayoutCmd) Run(ctx *cli.Context) error {
	if err := requireCasino(ctx); err != nil {
		return err
	}
	if c.Amount <= 0 {
		return fmt.Errorf("payout must be positive")
	}
	svc, err := ctx.Services()
	if err != nil {
		return err
	}
	svc.Ledger.AddCoins(c.Amount, economy.SourceCasino)
	if c.Blackjack {
		svc.Ledger.RecordBlackjackWin()
		svc.Achievements.CheckBlackjackWins(svc.Ledger.Stats().BlackjackWins)
	}
	svc.Achievements.CheckPayout(c.Amount)
	svc.Achievements.CheckBalance(svc.Ledger.Balance())
	fmt.Printf("Paid out %d $GRASS. Balance: %d\n", c.Amount, svc.Ledger.Balance())
	return nil
}

type LossCmd struct {
	Amount int `arg:"" help:"Coins lost on a settled bet."`
}

func (c *LossCmd) Run(ctx *cli.Context) error {
	if err := requireCasino(ctx); err != nil {
		return err
	}
	if c.Amount <= 0 {
		return fmt.Errorf("loss must be positive")
	}
	svc, err := ctx.Services()
	if err != nil {
		return err
	}
	svc.Ledger.RecordLoss(c.Amount)
	svc.Achievements.CheckLifetimeLost(svc.Ledger.LifetimeLost())
	svc.Achievements.CheckBalance(svc.Ledger.Balance())
	fmt.Printf("Recorded a %d $GRASS loss. Balance: %d\n", c.Amount, svc.Ledger.Balance())
	return nil
}

type BalanceCmd struct{}

func (c *BalanceCmd) Run(ctx *cli.Context) error {
	svc, err := ctx.Services()
	if err != nil {
		return err
	}
	stats := svc.Ledger.Stats()
	fmt.Printf("Balance: %d $GRASS\n", stats.Balance)
	fmt.Printf("  Lifetime earned:  %d\n", stats.LifetimeEarned)
	fmt.Printf("  Lifetime wagered: %d\n", stats.LifetimeWagered)
	fmt.Printf("  Lifetime won:     %d\n", stats.LifetimeWon)
	fmt.Printf("  Lifetime lost:    %d\n", stats.LifetimeLost)
	fmt.Printf("  Blackjack wins:   %d\n", stats.BlackjackWins)
	return nil
}
