package system

import (
	"grasspit/internal/cli"
	"grasspit/internal/notifier"
)

type NotifyCmd struct {
	Message string `arg:"" help:"Notification text to send."`
}

func (c *NotifyCmd) Run(ctx *cli.Context) error {
	return notifier.New().Notify(c.Message)
}
