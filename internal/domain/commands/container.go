package commands

import (
	"go.uber.org/dig"
)

// RegisterProviders registers all command providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register command constructors
	if err := container.Provide(NewSyncCommand); err != nil {
		return err
	}
	if err := container.Provide(NewTeardownCommand); err != nil {
		return err
	}
	if err := container.Provide(NewOutdatedCommand); err != nil {
		return err
	}
	if err := container.Provide(NewDoctorCommand); err != nil {
		return err
	}
	if err := container.Provide(NewWatchCommand); err != nil {
		return err
	}

	// Bind interfaces to implementations
	if err := container.Provide(func(impl *SyncCommand) Sync {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *TeardownCommand) Teardown {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *OutdatedCommand) Outdated {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *DoctorCommand) Doctor {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *WatchCommand) Watch {
		return impl
	}); err != nil {
		return err
	}

	return nil
}
