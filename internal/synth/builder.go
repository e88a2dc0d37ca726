package synth

import (
	"github.com/clawdock/clawdock/internal/catalog"
	"github.com/clawdock/clawdock/internal/tree"
)

// Format is the serialization format mandated for a family. It is fixed
// per family, never autodetected.
type Format string

const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
	FormatNone Format = "none"
)

// Builder produces the value tree for one upstream family. Builders read
// only from the inputs and the injected catalog — never from the
// filesystem — and are stateless: one invocation, one tree, no retries.
//
// A builder may return a nil tree to signal that the family's
// configuration is handled out-of-band and nothing should be written.
type Builder interface {
	Family() catalog.UpstreamType
	Format() Format

	// TargetPath returns the destination of the rendered document below
	// stateDir. Meaningless for builders whose Format is FormatNone.
	TargetPath(stateDir string) string

	BuildTree(in Inputs) (*tree.Node, error)
}

// Registry maps upstream families to their schema builders. Selection goes
// through the map; there is no conditional cascade to extend when a new
// family is added.
type Registry struct {
	builders map[catalog.UpstreamType]Builder
	fallback catalog.UpstreamType
}

// NewRegistry returns a registry with all supported family builders
// registered, using cat as the shared resolution table. The fallback
// family for unrecognized selectors is openclaw.
func NewRegistry(cat *catalog.Catalog) *Registry {
	r := &Registry{
		builders: make(map[catalog.UpstreamType]Builder),
		fallback: catalog.UpstreamOpenClaw,
	}
	r.register(newOpenClawBuilder(cat))
	r.register(newPicoClawBuilder(cat))
	r.register(newIronClawBuilder())
	return r
}

func (r *Registry) register(b Builder) {
	r.builders[b.Family()] = b
}

// Lookup returns the builder for the given family.
func (r *Registry) Lookup(family catalog.UpstreamType) (Builder, bool) {
	b, ok := r.builders[family]
	return b, ok
}

// Fallback returns the designated default family.
func (r *Registry) Fallback() catalog.UpstreamType {
	return r.fallback
}
