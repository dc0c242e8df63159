package controllers

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/pyforge/internal/domain/commands"
	"github.com/rios0rios0/pyforge/internal/domain/entities"
)

// WatchController handles the "watch" subcommand.
type WatchController struct {
	command commands.Watch
}

// NewWatchController creates a new WatchController.
func NewWatchController(command commands.Watch) *WatchController {
	return &WatchController{command: command}
}

// GetBind returns the Cobra command metadata for the watch controller.
func (it *WatchController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "watch",
		Short: "Keep the environment in sync with the manifest",
		Long: `Run a full sync, then watch the manifest file and re-sync whenever
it changes. Runs until interrupted.`,
	}
}

// Execute runs watch mode until a shutdown signal arrives.
func (it *WatchController) Execute(cmd *cobra.Command, _ []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		<-sigCh
		logger.Info("Received shutdown signal")
		cancel()
	}()

	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	return it.command.Execute(ctx, settings, commands.WatchOptions{
		SyncOptions: syncOptionsFromFlags(cmd),
	})
}

// AddFlags adds the watch-specific flags to the given Cobra command.
func (it *WatchController) AddFlags(cmd *cobra.Command) {
	addSyncFlags(cmd)
}
