// Package economy owns the $GRASS balance and its lifetime statistics.
package economy

import (
	"sync"

	"grasspit/internal/events"
	"grasspit/internal/logger"
	"grasspit/internal/models"
	"grasspit/internal/storage"
)

// Source describes where earned coins came from.
type Source string

const (
	SourceCoding Source = "coding"
	SourceCasino Source = "casino"
)

// Ledger is the virtual currency manager. All mutations persist synchronously
// (best-effort) and emit a balance-changed event.
type Ledger struct {
	mu    sync.Mutex
	store storage.Provider
	bus   *events.Bus
	stats models.CurrencyStats
}

func NewLedger(store storage.Provider, bus *events.Bus) (*Ledger, error) {
	stats, err := store.GetCurrencyStats()
	if err != nil {
		return nil, err
	}
	return &Ledger{store: store, bus: bus, stats: stats}, nil
}

// AddCoins credits the balance. Coding income counts toward lifetime earned,
// casino payouts toward lifetime won. Non-positive amounts are ignored.
func (l *Ledger) AddCoins(amount int, source Source) {
	if amount <= 0 {
		return
	}
	l.mu.Lock()
	l.stats.Balance += amount
	if source == SourceCasino {
		l.stats.LifetimeWon += amount
	} else {
		l.stats.LifetimeEarned += amount
	}
	balance := l.stats.Balance
	l.persistLocked()
	l.mu.Unlock()

	l.bus.PublishBalanceChanged(balance)
}

// SpendCoins debits the balance, returning false without mutating anything
// when the balance cannot cover the amount. This is the only operation that
// ever decreases the balance, so it can never go negative.
func (l *Ledger) SpendCoins(amount int) bool {
	if amount <= 0 {
		return false
	}
	l.mu.Lock()
	if amount > l.stats.Balance {
		l.mu.Unlock()
		return false
	}
	l.stats.Balance -= amount
	l.stats.LifetimeWagered += amount
	balance := l.stats.Balance
	l.persistLocked()
	l.mu.Unlock()

	l.bus.PublishBalanceChanged(balance)
	return true
}

// RecordLoss annotates a casino loss. The balance was already debited by the
// spend that placed the bet.
func (l *Ledger) RecordLoss(amount int) {
	if amount <= 0 {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.stats.LifetimeLost += amount
	l.persistLocked()
}

func (l *Ledger) RecordBlackjackWin() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.stats.BlackjackWins++
	l.persistLocked()
}

func (l *Ledger) Balance() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.stats.Balance
}

// Stats returns a copy of the full ledger record.
func (l *Ledger) Stats() models.CurrencyStats {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.stats
}

func (l *Ledger) LifetimeLost() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.stats.LifetimeLost
}

// Reset restores the default record with the starting balance.
func (l *Ledger) Reset() {
	l.mu.Lock()
	l.stats = models.DefaultCurrencyStats()
	balance := l.stats.Balance
	l.persistLocked()
	l.mu.Unlock()

	l.bus.PublishBalanceChanged(balance)
}

func (l *Ledger) persistLocked() {
	if err := l.store.SaveCurrencyStats(l.stats); err != nil {
		logger.Warn("Failed to persist currency stats", "error", err)
	}
}
