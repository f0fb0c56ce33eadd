// SPDX-License-Identifier: MIT
//
// File: topology.go
// Role: YAML topology declarations and the mapping from BuildConfig to
// builder constructors and options.

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvmesh/builder"
)

// LoadTopology reads and validates a topology declaration:
//
//	name: branch-office
//	nodes:
//	  - {id: R1, location: hq, role: core}
//	links:
//	  - {a: R1, b: R2, latency: 4, bandwidth: 1000}
//
// Unknown keys are rejected.
func LoadTopology(path string) (builder.Topology, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return builder.Topology{}, fmt.Errorf("config: topology: %w", err)
	}
	return ParseTopology(data)
}

// ParseTopology decodes and validates a YAML topology document.
func ParseTopology(data []byte) (builder.Topology, error) {
	var spec builder.Topology
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&spec); err != nil && !errors.Is(err, io.EOF) {
		return builder.Topology{}, fmt.Errorf("config: topology: %w", err)
	}
	if err := validate.Struct(spec); err != nil {
		return builder.Topology{}, formatValidationError(err)
	}
	return spec, nil
}

// Options maps the latency, bandwidth, seed and ID settings to builder options.
func (b BuildConfig) Options() []builder.BuilderOption {
	opts := []builder.BuilderOption{builder.WithSeed(b.Seed)}
	if b.Latency > 0 {
		opts = append(opts, builder.WithLatency(b.Latency))
	} else {
		opts = append(opts, b.latencyOption())
	}
	if b.Bandwidth > 0 {
		opts = append(opts, builder.WithBandwidth(b.Bandwidth))
	}
	switch {
	case b.Prefix != "":
		opts = append(opts, builder.WithPrefixIDs(b.Prefix))
	case b.IDs == IDsSymbol:
		opts = append(opts, builder.WithSymbolIDs())
	case b.IDs == IDsExcel:
		opts = append(opts, builder.WithExcelColumnIDs())
	}
	return opts
}

func (b BuildConfig) latencyOption() builder.BuilderOption {
	lo, hi := float64(b.LatencyMin), float64(b.LatencyMax)
	switch b.LatencyDist {
	case DistUniform:
		return builder.WithLatencyFn(builder.UniformLatencyFn(lo, hi))
	case DistNormal:
		return builder.WithLatencyFn(builder.NormalLatencyFn((lo+hi)/2, (hi-lo)/6))
	default:
		return builder.WithLatencyRange(b.LatencyMin, b.LatencyMax)
	}
}

// Constructor returns the constructor selected by Mode. Custom mode reads
// the topology file.
func (b BuildConfig) Constructor() (builder.Constructor, error) {
	switch b.Mode {
	case ModeRandom:
		return builder.RandomMesh(b.Nodes, b.Degree), nil
	case ModeFull:
		return builder.FullMesh(b.names()), nil
	case ModePartial:
		return builder.PartialMesh(b.names(), b.MinDegree), nil
	case ModeRing:
		return builder.Ring(b.names()), nil
	case ModeStar:
		return builder.Star(b.names()), nil
	case ModeGrid:
		return builder.Grid(b.names(), b.Columns), nil
	case ModeCustom:
		spec, err := LoadTopology(b.Topology)
		if err != nil {
			return nil, err
		}
		return builder.FromTopology(spec), nil
	default:
		return nil, fmt.Errorf("%w: build.mode %q", ErrInvalid, b.Mode)
	}
}

func (b BuildConfig) names() []string {
	if len(b.Names) > 0 {
		return b.Names
	}
	fn := builder.NodeIDFn
	switch {
	case b.Prefix != "":
		fn = builder.PrefixIDFn(b.Prefix)
	case b.IDs == IDsSymbol:
		fn = builder.SymbolIDFn
	case b.IDs == IDsExcel:
		fn = builder.ExcelColumnIDFn
	}
	return builder.Names(b.Nodes, fn)
}
