package entities

import (
	"path/filepath"
	"runtime"
)

// EnvironmentKind identifies the flavor of isolation backing an environment.
type EnvironmentKind string

const (
	KindVenv  EnvironmentKind = "venv"
	KindConda EnvironmentKind = "conda"
)

// EnvironmentSpec carries everything needed to create or locate an environment.
type EnvironmentSpec struct {
	Root          string // directory the environment lives in
	Interpreter   string // base interpreter that seeds a virtualenv
	CondaBinary   string // conda executable, conda mode only
	PythonVersion string // python pin for conda creation, empty means latest
}

// Environment describes a provisioned environment on disk.
type Environment struct {
	Kind   EnvironmentKind
	Root   string
	Python string
	Pip    string
}

// BinDir returns the directory holding an environment's executables.
func BinDir(root string) string {
	if runtime.GOOS == "windows" {
		return filepath.Join(root, "Scripts")
	}
	return filepath.Join(root, "bin")
}

// DescribeEnvironment resolves the executable layout under an environment root.
// It is purely computational, nothing on disk is checked.
func DescribeEnvironment(kind EnvironmentKind, root string) *Environment {
	binDir := BinDir(root)
	return &Environment{
		Kind:   kind,
		Root:   root,
		Python: filepath.Join(binDir, exeName("python")),
		Pip:    filepath.Join(binDir, exeName("pip")),
	}
}

func exeName(name string) string {
	if runtime.GOOS == "windows" {
		return name + ".exe"
	}
	return name
}
