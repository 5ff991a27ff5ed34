package cli

import "fmt"

type AchievementsCmd struct{}

func (c *AchievementsCmd) Run(ctx *Context) error {
	svc, err := ctx.Services()
	if err != nil {
		return err
	}

	unlocked, total := svc.Achievements.Progress()
	fmt.Printf("Achievements: %d/%d unlocked\n\n", unlocked, total)

	for _, view := range svc.Achievements.Visible() {
		marker := " "
		if view.Unlocked {
			marker = "✓"
		}
		fmt.Printf("%s %s %-24s [%s] %s\n", marker, view.Icon, view.Name, view.Rarity.DisplayName(), view.Description)
	}
	return nil
}
