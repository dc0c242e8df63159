package internal

import (
	"github.com/rios0rios0/pyforge/internal/domain/entities"
)

// AppInternal holds the wired application graph the CLI entrypoint consumes.
type AppInternal struct {
	controllers *[]entities.Controller
}

// NewAppInternal creates the application context from the aggregated controllers.
func NewAppInternal(controllers *[]entities.Controller) *AppInternal {
	return &AppInternal{controllers: controllers}
}

// GetControllers returns every registered controller.
func (it *AppInternal) GetControllers() []entities.Controller {
	return *it.controllers
}
