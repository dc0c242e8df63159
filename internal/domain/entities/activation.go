package entities

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// Activation is the environment-variable overlay that makes a provisioned
// environment the active Python for subsequent commands. It mirrors what the
// stock "activate" scripts do: prepend the environment's bin directory to
// PATH, export the marker variable of the flavor, and clear PYTHONHOME.
type Activation struct {
	environment Environment
	applied     bool
	saved       map[string]*string // previous values, nil means the variable was unset
}

// NewActivation builds the overlay for an environment without applying it.
func NewActivation(environment Environment) *Activation {
	return &Activation{environment: environment}
}

// Vars returns the variables the activation sets, computed against the
// current process environment.
func (it *Activation) Vars() map[string]string {
	vars := map[string]string{
		"PATH": prependPath(BinDir(it.environment.Root), os.Getenv("PATH")),
	}
	if it.environment.Kind == KindConda {
		vars["CONDA_PREFIX"] = it.environment.Root
		vars["CONDA_DEFAULT_ENV"] = it.environment.Root
	} else {
		vars["VIRTUAL_ENV"] = it.environment.Root
	}
	return vars
}

// Cleared returns the variables the activation unsets. PYTHONHOME would make
// the interpreter resolve its standard library outside the environment.
func (it *Activation) Cleared() []string {
	return []string{"PYTHONHOME"}
}

// Environ returns a copy of the current process environment with the overlay
// applied, suitable for exec.Cmd.Env.
func (it *Activation) Environ() []string {
	vars := it.Vars()
	cleared := make(map[string]bool, len(it.Cleared()))
	for _, key := range it.Cleared() {
		cleared[key] = true
	}

	base := os.Environ()
	environ := make([]string, 0, len(base)+len(vars))
	for _, entry := range base {
		key, _, found := strings.Cut(entry, "=")
		if !found {
			continue
		}
		if _, overridden := vars[key]; overridden {
			continue
		}
		if cleared[key] {
			continue
		}
		environ = append(environ, entry)
	}
	for key, value := range vars {
		environ = append(environ, key+"="+value)
	}
	return environ
}

// Apply mutates the process environment, remembering previous values so that
// Restore can undo it. Applying an already applied activation is an error.
func (it *Activation) Apply() error {
	if it.applied {
		return errors.New("activation already applied")
	}

	it.saved = make(map[string]*string)
	for key, value := range it.Vars() {
		it.remember(key)
		if err := os.Setenv(key, value); err != nil {
			return fmt.Errorf("failed to set %s: %w", key, err)
		}
	}
	for _, key := range it.Cleared() {
		it.remember(key)
		if err := os.Unsetenv(key); err != nil {
			return fmt.Errorf("failed to unset %s: %w", key, err)
		}
	}

	it.applied = true
	return nil
}

// Restore returns the process environment to its state before Apply.
// Restoring an activation that was never applied is a no-op.
func (it *Activation) Restore() error {
	if !it.applied {
		return nil
	}

	var firstErr error
	for key, previous := range it.saved {
		var err error
		if previous == nil {
			err = os.Unsetenv(key)
		} else {
			err = os.Setenv(key, *previous)
		}
		if err != nil && firstErr == nil {
			firstErr = fmt.Errorf("failed to restore %s: %w", key, err)
		}
	}

	it.applied = false
	it.saved = nil
	return firstErr
}

func (it *Activation) remember(key string) {
	if _, seen := it.saved[key]; seen {
		return
	}
	if value, exists := os.LookupEnv(key); exists {
		it.saved[key] = &value
	} else {
		it.saved[key] = nil
	}
}

func prependPath(directory, path string) string {
	if path == "" {
		return directory
	}
	return directory + string(os.PathListSeparator) + path
}
