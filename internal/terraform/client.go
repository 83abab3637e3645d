package terraform

import (
	goversion "github.com/hashicorp/go-version"
)

// Client abstracts the terraform binary so command handlers can be
// exercised without spawning real processes. The int results are the
// child's exit code, which callers propagate as their own.
type Client interface {
	Plan(varFile string) (int, error)
	Apply(varFile string, autoApprove bool) (int, error)
	Destroy(varFile string) (int, error)
	Init(backendConfig string) (int, error)
	Version() (*goversion.Version, error)
}
