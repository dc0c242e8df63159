package entities

// InstallOptions carries the knobs for one installation run. Exactly one of
// ManifestPath or Specs is set: requirements manifests install through the
// installer's own file support, pyproject manifests through resolved specs.
type InstallOptions struct {
	ManifestPath string
	Specs        []string
	IndexURL     string
	ExtraArgs    []string
	UpgradePip   bool
}
