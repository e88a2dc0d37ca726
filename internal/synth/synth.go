// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package synth

import (
	"fmt"

	"github.com/clawdock/clawdock/internal/catalog"
	"github.com/clawdock/clawdock/internal/logger"
	"github.com/clawdock/clawdock/internal/tree"
)

// Synthesizer orchestrates one end-to-end synthesis run: selector →
// builder → tree → serializer → files.
type Synthesizer struct {
	registry *Registry
	logger   *logger.Logger
}

// Result reports what a synthesis run produced.
type Result struct {
	Family     catalog.UpstreamType
	Format     Format
	Path       string
	BackupPath string

	// Written is false when the family's configuration is handled
	// out-of-band and no file was produced. The run still succeeded.
	Written bool
}

// NewSynthesizer builds a Synthesizer over the given resolution catalog.
func NewSynthesizer(cat *catalog.Catalog, logger *logger.Logger) *Synthesizer {
	return &Synthesizer{
		registry: NewRegistry(cat),
		logger:   logger,
	}
}

// Synthesize runs the pipeline for the family named by selector.
//
// An unrecognized selector never fails the run: it deterministically falls
// back to the default family with a logged warning. A builder returning no
// tree terminates the run successfully without touching the filesystem.
// Filesystem write failures are fatal; permission hardening failures are
// logged and swallowed.
func (s *Synthesizer) Synthesize(selector string, in Inputs) (Result, error) {
	family, err := catalog.ParseUpstream(selector)
	if err != nil {
		family = s.registry.Fallback()
		s.logger.Warn().
			Str("selector", selector).
			Str("fallback", string(family)).
			Msg("unknown upstream selector, using fallback family")
	}

	builder, ok := s.registry.Lookup(family)
	if !ok {
		// registry always carries the fallback family, so this is
		// unreachable unless the registry was built by hand
		return Result{}, fmt.Errorf("%w: %q", ErrNoBuilder, family)
	}

	result := Result{
		Family: family,
		Format: builder.Format(),
	}

	node, err := builder.BuildTree(in)
	if err != nil {
		return Result{}, fmt.Errorf("building %s tree: %w", family, err)
	}
	if node == nil {
		s.logger.Info().
			Str("family", string(family)).
			Msg("family is configured out-of-band, nothing to write")
		return result, nil
	}

	rendered, err := s.render(builder.Format(), node)
	if err != nil {
		return Result{}, fmt.Errorf("rendering %s config: %w", family, err)
	}

	path := builder.TargetPath(in.StateDir)
	backupPath, err := s.materialize(path, rendered)
	if err != nil {
		return Result{}, err
	}

	result.Path = path
	result.BackupPath = backupPath
	result.Written = true

	s.logger.Info().
		Str("family", string(family)).
		Str("format", string(builder.Format())).
		Str("path", path).
		Msg("configuration synthesized")

	return result, nil
}

func (s *Synthesizer) render(format Format, node *tree.Node) ([]byte, error) {
	switch format {
	case FormatJSON:
		return tree.ToJSON(node)
	case FormatTOML:
		return tree.ToTOML(node)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
