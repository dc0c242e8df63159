package controllers

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/pyforge/internal/domain/entities"
)

// RegisterProviders registers all controller providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register controller constructors
	if err := container.Provide(NewSyncController); err != nil {
		return err
	}
	if err := container.Provide(NewTeardownController); err != nil {
		return err
	}
	if err := container.Provide(NewOutdatedController); err != nil {
		return err
	}
	if err := container.Provide(NewDoctorController); err != nil {
		return err
	}
	if err := container.Provide(NewWatchController); err != nil {
		return err
	}
	if err := container.Provide(NewControllers); err != nil {
		return err
	}

	return nil
}

// NewControllers aggregates all controllers into a slice for the AppInternal.
func NewControllers(
	syncController *SyncController,
	teardownController *TeardownController,
	outdatedController *OutdatedController,
	doctorController *DoctorController,
	watchController *WatchController,
) *[]entities.Controller {
	return &[]entities.Controller{
		syncController,
		teardownController,
		outdatedController,
		doctorController,
		watchController,
	}
}
