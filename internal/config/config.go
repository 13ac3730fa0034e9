// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package config parses the engine configuration string.
//
// The format is a comma-separated list of "key=value" items, e.g. "kernel=6x16,threads=4,kc=256".
// Keys:
//
//   - kernel: force a register tile shape, e.g. "6x64", "6x32" or "6x16". It applies to the triples whose
//     kernels have that shape; the others keep the automatic selection.
//   - level: override the detected CPU level: "generic", "neondot", "avx2" or "avx512vnni".
//   - threads: number of workers. 0 (the default) uses all available cores, 1 disables parallelism.
//   - mc, nc, kc: override the cache blocking sizes of the selected families.
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/gomlx/lpgemm/internal/cpuinfo"
	"github.com/gomlx/lpgemm/pkg/core/kernels"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// EnvVar is the environment variable with the default configuration.
const EnvVar = "LPGEMM_CONFIG"

// Config holds the parsed configuration. The zero value means "all defaults".
type Config struct {
	// Kernel, if not zero, forces the tile shape.
	Kernel kernels.Shape

	// Level overrides the host CPU level if HasLevel is set.
	Level    cpuinfo.Level
	HasLevel bool

	// Threads is the number of workers, 0 for automatic.
	Threads int

	// Blocks overrides the non-zero block sizes.
	Blocks kernels.BlockSizes
}

// Parse parses a configuration string.
func Parse(config string) (Config, error) {
	var cfg Config
	for _, part := range strings.Split(config, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		key, value, found := strings.Cut(part, "=")
		if !found {
			return Config{}, errors.Errorf("invalid configuration item %q in %q, expected key=value", part, config)
		}
		key = strings.ToLower(strings.TrimSpace(key))
		value = strings.TrimSpace(value)
		var err error
		switch key {
		case "kernel":
			cfg.Kernel, err = kernels.ParseShape(value)
		case "level":
			cfg.Level, err = cpuinfo.ParseLevel(value)
			cfg.HasLevel = err == nil
		case "threads":
			cfg.Threads, err = parseNonNegative(value)
		case "mc":
			cfg.Blocks.MC, err = parsePositive(value)
		case "nc":
			cfg.Blocks.NC, err = parsePositive(value)
		case "kc":
			cfg.Blocks.KC, err = parsePositive(value)
		default:
			err = errors.Errorf("unknown key %q (valid keys are kernel, level, threads, mc, nc and kc)", key)
		}
		if err != nil {
			return Config{}, errors.WithMessagef(err, "parsing configuration %q", config)
		}
	}
	return cfg, nil
}

func parseNonNegative(value string) (int, error) {
	v, err := strconv.Atoi(value)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid integer %q", value)
	}
	if v < 0 {
		return 0, errors.Errorf("value %d must be >= 0", v)
	}
	return v, nil
}

func parsePositive(value string) (int, error) {
	v, err := parseNonNegative(value)
	if err != nil {
		return 0, err
	}
	if v == 0 {
		return 0, errors.New("block size must be > 0")
	}
	return v, nil
}

// FromEnv parses the configuration in the LPGEMM_CONFIG environment variable, if set.
func FromEnv() (Config, error) {
	config, found := os.LookupEnv(EnvVar)
	if !found {
		return Config{}, nil
	}
	cfg, err := Parse(config)
	if err != nil {
		return Config{}, errors.WithMessagef(err, "environment variable %s", EnvVar)
	}
	klog.V(1).Infof("lpgemm: %s=%q", EnvVar, config)
	return cfg, nil
}

// Merge returns c with the non-default values of override applied on top.
func (c Config) Merge(override Config) Config {
	if !override.Kernel.IsZero() {
		c.Kernel = override.Kernel
	}
	if override.HasLevel {
		c.Level, c.HasLevel = override.Level, true
	}
	if override.Threads != 0 {
		c.Threads = override.Threads
	}
	if override.Blocks.MC != 0 {
		c.Blocks.MC = override.Blocks.MC
	}
	if override.Blocks.NC != 0 {
		c.Blocks.NC = override.Blocks.NC
	}
	if override.Blocks.KC != 0 {
		c.Blocks.KC = override.Blocks.KC
	}
	return c
}

// String returns the configuration in the format accepted by Parse. Default values are omitted.
func (c Config) String() string {
	var parts []string
	if !c.Kernel.IsZero() {
		parts = append(parts, "kernel="+c.Kernel.String())
	}
	if c.HasLevel {
		parts = append(parts, "level="+c.Level.String())
	}
	if c.Threads != 0 {
		parts = append(parts, "threads="+strconv.Itoa(c.Threads))
	}
	for _, kv := range []struct {
		key   string
		value int
	}{{"mc", c.Blocks.MC}, {"nc", c.Blocks.NC}, {"kc", c.Blocks.KC}} {
		if kv.value != 0 {
			parts = append(parts, kv.key+"="+strconv.Itoa(kv.value))
		}
	}
	return strings.Join(parts, ",")
}
