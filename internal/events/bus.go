// Package events carries the in-process notifications the core managers emit
// for the host UI layer. Publishing is synchronous; handlers must not block.
package events

import (
	"sync"

	"grasspit/internal/models"
)

type Bus struct {
	mu sync.Mutex

	balanceChanged      []func(balance int)
	achievementUnlocked []func(a models.Achievement)
	pomodoroChanged     []func(state models.PomodoroState)
	workComplete        []func()
	breakComplete       []func()
	generationStart     []func()
	generationEnd       []func()
}

func NewBus() *Bus {
	return &Bus{}
}

func (b *Bus) OnBalanceChanged(fn func(balance int)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.balanceChanged = append(b.balanceChanged, fn)
}

func (b *Bus) OnAchievementUnlocked(fn func(a models.Achievement)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.achievementUnlocked = append(b.achievementUnlocked, fn)
}

func (b *Bus) OnPomodoroChanged(fn func(state models.PomodoroState)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.pomodoroChanged = append(b.pomodoroChanged, fn)
}

func (b *Bus) OnWorkComplete(fn func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.workComplete = append(b.workComplete, fn)
}

func (b *Bus) OnBreakComplete(fn func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.breakComplete = append(b.breakComplete, fn)
}

func (b *Bus) OnGenerationStart(fn func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.generationStart = append(b.generationStart, fn)
}

func (b *Bus) OnGenerationEnd(fn func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.generationEnd = append(b.generationEnd, fn)
}

func (b *Bus) PublishBalanceChanged(balance int) {
	for _, fn := range b.snapshotBalance() {
		fn(balance)
	}
}

func (b *Bus) PublishAchievementUnlocked(a models.Achievement) {
	b.mu.Lock()
	handlers := append([]func(models.Achievement){}, b.achievementUnlocked...)
	b.mu.Unlock()
	for _, fn := range handlers {
		fn(a)
	}
}

func (b *Bus) PublishPomodoroChanged(state models.PomodoroState) {
	b.mu.Lock()
	handlers := append([]func(models.PomodoroState){}, b.pomodoroChanged...)
	b.mu.Unlock()
	for _, fn := range handlers {
		fn(state)
	}
}

func (b *Bus) PublishWorkComplete()    { b.publishPlain(&b.workComplete) }
func (b *Bus) PublishBreakComplete()   { b.publishPlain(&b.breakComplete) }
func (b *Bus) PublishGenerationStart() { b.publishPlain(&b.generationStart) }
func (b *Bus) PublishGenerationEnd()   { b.publishPlain(&b.generationEnd) }

func (b *Bus) snapshotBalance() []func(int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]func(int){}, b.balanceChanged...)
}

func (b *Bus) publishPlain(handlers *[]func()) {
	b.mu.Lock()
	snapshot := append([]func(){}, (*handlers)...)
	b.mu.Unlock()
	for _, fn := range snapshot {
		fn()
	}
}
