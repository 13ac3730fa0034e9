// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package config

import (
	"testing"

	"github.com/gomlx/lpgemm/internal/cpuinfo"
	"github.com/gomlx/lpgemm/pkg/core/kernels"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	cfg, err := Parse("")
	require.NoError(t, err)
	assert.Equal(t, Config{}, cfg)

	cfg, err = Parse(" kernel=6x16, level=AVX2,threads=3,mc=60,nc=128,kc=256 ,")
	require.NoError(t, err)
	assert.Equal(t, kernels.Shape{MR: 6, NR: 16}, cfg.Kernel)
	assert.True(t, cfg.HasLevel)
	assert.Equal(t, cpuinfo.AVX2, cfg.Level)
	assert.Equal(t, 3, cfg.Threads)
	assert.Equal(t, kernels.BlockSizes{MC: 60, NC: 128, KC: 256}, cfg.Blocks)
	assert.Equal(t, "kernel=6x16,level=avx2,threads=3,mc=60,nc=128,kc=256", cfg.String())

	roundTrip, err := Parse(cfg.String())
	require.NoError(t, err)
	assert.Equal(t, cfg, roundTrip)

	for _, bad := range []string{"kernel", "kernel=6", "level=sse", "threads=-1", "threads=x", "kc=0", "foo=1"} {
		_, err = Parse(bad)
		assert.Errorf(t, err, "config %q should fail", bad)
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv(EnvVar, "threads=2")
	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Threads)

	t.Setenv(EnvVar, "threads=two")
	_, err = FromEnv()
	require.ErrorContains(t, err, EnvVar)
}

func TestMerge(t *testing.T) {
	base := Config{Threads: 4, Blocks: kernels.BlockSizes{MC: 72, KC: 512}}
	merged := base.Merge(Config{Level: cpuinfo.Generic, HasLevel: true, Blocks: kernels.BlockSizes{KC: 64}})
	assert.Equal(t, 4, merged.Threads)
	assert.True(t, merged.HasLevel)
	assert.Equal(t, cpuinfo.Generic, merged.Level)
	assert.Equal(t, kernels.BlockSizes{MC: 72, KC: 64}, merged.Blocks)
	assert.Equal(t, base, base.Merge(Config{}))
}
