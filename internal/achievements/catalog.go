package achievements

import (
	"grasspit/internal/constants"
	"grasspit/internal/models"
)

// Catalog returns the fixed achievement catalog. Keep the IDs stable: the
// unlocked set persists IDs, and clients may cache them.
func Catalog() []models.Achievement {
	return []models.Achievement{
		// Casino
		{ID: "first-gamble", Name: "Baby's First Bet", Description: "Place your first bet", Icon: "🎲", Rarity: constants.RarityCommon},
		{ID: "high-roller", Name: "High Roller", Description: "Put 1,000 $GRASS on a single bet", Icon: "💸", Rarity: constants.RarityRare},
		{ID: "whale", Name: "Whale", Description: "Hold 10,000 $GRASS at once", Icon: "🐋", Rarity: constants.RarityLegendary},
		{ID: "broke", Name: "Stony Broke", Description: "Hit a balance of exactly zero", Icon: "🪙", Rarity: constants.RarityCursed},
		{ID: "house-always-wins", Name: "The House Always Wins", Description: "Lose 1,000 $GRASS lifetime", Icon: "🏦", Rarity: constants.RarityCursed},
		{ID: "jackpot", Name: "Jackpot", Description: "Win 500 $GRASS in a single payout", Icon: "🎰", Rarity: constants.RarityRare},
		{ID: "blackjack-dealer", Name: "Card Counter", Description: "Win 10 hands of blackjack", Icon: "🃏", Rarity: constants.RarityUncommon},

		// Game scores
		{ID: "snake-100", Name: "Garden Snake", Description: "Score 100 in Snake", Icon: "🐍", Rarity: constants.RarityCommon},
		{ID: "snake-500", Name: "Python", Description: "Score 500 in Snake", Icon: "🐍", Rarity: constants.RarityUncommon},
		{ID: "snake-1000", Name: "Basilisk", Description: "Score 1,000 in Snake", Icon: "🐉", Rarity: constants.RarityRare},
		{ID: "flappy-10", Name: "Fledgling", Description: "Score 10 in Flappy", Icon: "🐤", Rarity: constants.RarityCommon},
		{ID: "flappy-50", Name: "Migratory", Description: "Score 50 in Flappy", Icon: "🐦", Rarity: constants.RarityUncommon},
		{ID: "flappy-100", Name: "Apex Flapper", Description: "Score 100 in Flappy", Icon: "🦅", Rarity: constants.RarityRare},

		// Play volume
		{ID: "games-10", Name: "Button Masher", Description: "Play 10 games", Icon: "🕹️", Rarity: constants.RarityCommon},
		{ID: "games-100", Name: "No Lifer", Description: "Play 100 games", Icon: "👾", Rarity: constants.RarityRare},
		{ID: "jack-of-all-trades", Name: "Jack of All Trades", Description: "Play every game at least once", Icon: "🎪", Rarity: constants.RarityUncommon},

		// Timing
		{ID: "speed-death", Name: "Speedrun to the Grave", Description: "Die within 3 seconds of starting a game", Icon: "💀", Rarity: constants.RarityCursed, Secret: true},
		{ID: "rage-quit", Name: "Rage Quit", Description: "Burn through 5 games in under 2 minutes", Icon: "🤬", Rarity: constants.RarityCursed, Secret: true},

		// Pomodoro
		{ID: "first-pomodoro", Name: "One Tomato", Description: "Complete a pomodoro work session", Icon: "🍅", Rarity: constants.RarityCommon},
		{ID: "pomodoro-5", Name: "Tomato Patch", Description: "Complete 5 pomodoro work sessions", Icon: "🍅", Rarity: constants.RarityUncommon},
		{ID: "pomodoro-25", Name: "Tomato Farmer", Description: "Complete 25 pomodoro work sessions", Icon: "🧑‍🌾", Rarity: constants.RarityRare},

		// Brainrot time
		{ID: "first-brainrot", Name: "It Begins", Description: "Get caught waiting on your first AI generation", Icon: "🤖", Rarity: constants.RarityCommon},
		{ID: "hour-of-rot", Name: "Hour of Rot", Description: "Spend an hour in a single brainrot session", Icon: "🧠", Rarity: constants.RarityUncommon},
		{ID: "day-of-rot", Name: "Full Decomposition", Description: "Spend 24 hours in a single brainrot session", Icon: "🧟", Rarity: constants.RarityCursed, Secret: true},

		// Wall clock
		{ID: "midnight-coder", Name: "Midnight Coder", Description: "Rot between 2am and 5am", Icon: "🌙", Rarity: constants.RarityRare},
		{ID: "monday-morning", Name: "Case of the Mondays", Description: "Rot before 9am on a Monday", Icon: "☕", Rarity: constants.RarityUncommon},
		{ID: "friday-afternoon", Name: "Mentally Clocked Out", Description: "Rot after 4pm on a Friday", Icon: "🏖️", Rarity: constants.RarityCommon},

		// Dedication
		{ID: "week-streak", Name: "Regular", Description: "Use grasspit on 7 different days", Icon: "📅", Rarity: constants.RarityUncommon},
		{ID: "month-streak", Name: "Resident", Description: "Use grasspit on 30 different days", Icon: "🗓️", Rarity: constants.RarityRare},
		{ID: "terminally-online", Name: "Terminally Online", Description: "Reach terminal degeneracy", Icon: "⚰️", Rarity: constants.RarityCursed},
	}
}
