package system

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"daydesk/internal/cli"
)

type RunCmd struct{}

// Run keeps the scheduler resident: arms every active alarm, then
// reconciles against the store once a minute until interrupted.
func (c *RunCmd) Run(ctx *cli.Context) error {
	sigCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fmt.Println("daydesk scheduler running. Press Ctrl+C to stop.")
	ctx.Scheduler.Run(sigCtx)
	fmt.Println("Scheduler stopped.")
	return nil
}
