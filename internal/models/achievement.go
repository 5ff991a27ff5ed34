package models

import "grasspit/internal/constants"

// Achievement is an immutable catalog entry. The catalog is hardcoded and
// loaded at startup; only the unlocked set is persisted.
type Achievement struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Icon        string           `json:"icon"`
	Rarity      constants.Rarity `json:"rarity"`
	Secret      bool             `json:"secret"` // hidden from listings until unlocked
}

// AchievementView is a catalog entry annotated with its unlock status, as
// surfaced to the host UI.
type AchievementView struct {
	Achievement
	Unlocked bool `json:"unlocked"`
}
