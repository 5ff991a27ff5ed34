package models

import "grasspit/internal/constants"

// CurrencyStats is the persisted record for the $GRASS ledger. The balance is
// only ever decreased through a successful spend; the lifetime accumulators
// are pure statistics.
type CurrencyStats struct {
	Balance         int `json:"balance"`
	LifetimeEarned  int `json:"lifetime_earned"`  // coins earned from coding time
	LifetimeWagered int `json:"lifetime_wagered"` // coins placed on bets
	LifetimeWon     int `json:"lifetime_won"`     // coins won back from the casino
	LifetimeLost    int `json:"lifetime_lost"`    // coins lost to the casino
	BlackjackWins   int `json:"blackjack_wins"`
}

// DefaultCurrencyStats returns a fresh ledger record with the starting balance.
func DefaultCurrencyStats() CurrencyStats {
	return CurrencyStats{Balance: constants.StartingBalance}
}
