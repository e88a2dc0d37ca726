package synth

import (
	"github.com/clawdock/clawdock/internal/catalog"
	"github.com/clawdock/clawdock/internal/tree"
)

// ironClawBuilder covers the IronClaw family, which is configured through
// its own interactive onboarding flow and keeps state in a separate
// datastore. There is nothing for the synthesizer to write, so the builder
// returns no tree and the dispatcher skips materialization.
type ironClawBuilder struct{}

func newIronClawBuilder() *ironClawBuilder {
	return &ironClawBuilder{}
}

func (b *ironClawBuilder) Family() catalog.UpstreamType {
	return catalog.UpstreamIronClaw
}

func (b *ironClawBuilder) Format() Format {
	return FormatNone
}

func (b *ironClawBuilder) TargetPath(string) string {
	return ""
}

func (b *ironClawBuilder) BuildTree(Inputs) (*tree.Node, error) {
	return nil, nil
}
