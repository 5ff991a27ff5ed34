// Package achievements owns the fixed catalog and the persisted set of
// unlocked IDs. Unlock checks are independent and idempotent.
package achievements

import (
	"sync"
	"time"

	"grasspit/internal/events"
	"grasspit/internal/logger"
	"grasspit/internal/models"
	"grasspit/internal/storage"
)

// Notifier surfaces an unlock to the user outside the panel (tray popup).
type Notifier interface {
	NotifyAchievement(a models.Achievement) error
}

type Registry struct {
	mu       sync.Mutex
	store    storage.Provider
	bus      *events.Bus
	catalog  []models.Achievement
	byID     map[string]models.Achievement
	unlocked map[string]struct{}
	order    []string // unlock order, persisted

	notifier      Notifier
	notifyEnabled func() bool
	now           func() time.Time
}

func NewRegistry(store storage.Provider, bus *events.Bus) (*Registry, error) {
	catalog := Catalog()
	byID := make(map[string]models.Achievement, len(catalog))
	for _, a := range catalog {
		byID[a.ID] = a
	}

	ids, err := store.GetUnlockedAchievements()
	if err != nil {
		return nil, err
	}

	r := &Registry{
		store:    store,
		bus:      bus,
		catalog:  catalog,
		byID:     byID,
		unlocked: make(map[string]struct{}),
		now:      time.Now,
	}
	// Drop persisted IDs that no longer exist in the catalog so every
	// unlocked ID stays a real catalog entry across catalog edits.
	for _, id := range ids {
		if _, ok := byID[id]; ok {
			if _, dup := r.unlocked[id]; !dup {
				r.unlocked[id] = struct{}{}
				r.order = append(r.order, id)
			}
		}
	}
	return r, nil
}

// SetNotifier wires the tray notifier; enabled is re-read on every unlock so
// the settings flag takes effect without a restart.
func (r *Registry) SetNotifier(n Notifier, enabled func() bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notifier = n
	r.notifyEnabled = enabled
}

// Check unlocks the achievement with the given id. It returns true only on a
// genuine first unlock; already-unlocked and unknown IDs are silent no-ops.
func (r *Registry) Check(id string) bool {
	r.mu.Lock()
	a, known := r.byID[id]
	if !known {
		r.mu.Unlock()
		return false
	}
	if _, done := r.unlocked[id]; done {
		r.mu.Unlock()
		return false
	}
	r.unlocked[id] = struct{}{}
	r.order = append(r.order, id)
	r.persistLocked()
	notifier := r.notifier
	notify := r.notifyEnabled != nil && r.notifyEnabled()
	r.mu.Unlock()

	r.bus.PublishAchievementUnlocked(a)
	if notify && notifier != nil {
		if err := notifier.NotifyAchievement(a); err != nil {
			logger.Debug("Achievement notification failed", "id", id, "error", err)
		}
	}
	return true
}

func (r *Registry) IsUnlocked(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.unlocked[id]
	return ok
}

// Visible returns catalog entries that are unlocked or non-secret, annotated
// with their unlock status. Secret achievements that have not been earned are
// omitted entirely.
func (r *Registry) Visible() []models.AchievementView {
	r.mu.Lock()
	defer r.mu.Unlock()

	views := make([]models.AchievementView, 0, len(r.catalog))
	for _, a := range r.catalog {
		_, unlocked := r.unlocked[a.ID]
		if a.Secret && !unlocked {
			continue
		}
		views = append(views, models.AchievementView{Achievement: a, Unlocked: unlocked})
	}
	return views
}

// Progress returns the unlocked count and the catalog size.
func (r *Registry) Progress() (unlocked, total int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.unlocked), len(r.catalog)
}

// Reset clears the unlocked set.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.unlocked = make(map[string]struct{})
	r.order = nil
	r.persistLocked()
}

func (r *Registry) persistLocked() {
	if err := r.store.SaveUnlockedAchievements(append([]string{}, r.order...)); err != nil {
		logger.Warn("Failed to persist unlocked achievements", "error", err)
	}
}
