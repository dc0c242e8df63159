package commands

// ResolveKind exports resolveKind for testing.
var ResolveKind = resolveKind //nolint:gochecknoglobals // test export

// ResolveValue exports resolveValue for testing.
var ResolveValue = resolveValue //nolint:gochecknoglobals // test export

// InstallOptionsFor exports installOptions for testing.
var InstallOptionsFor = installOptions //nolint:gochecknoglobals // test export
