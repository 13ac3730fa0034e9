// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package lpgemm implements low-precision integer matrix multiplication (GEMM) with fused epilogues:
//
//	C = postops(alpha·A·B + beta·C)
//
// A is uint8 or int8, B is int8, and the accumulators (and C) are int32 or int16, giving the four triples
// u8s8s32, s8s8s32, u8s8s16 and s8s8s16. The result can be stored into a narrower Output (int8, uint8, int16,
// float32, BFloat16 or Float16) instead of C.
//
// Example:
//
//	engine := must.M1(lpgemm.New())
//	c := make([]int32, m*n)
//	err := engine.U8S8S32(&lpgemm.Params[uint8, int32]{
//		A: lpgemm.RowMajor(a, m, k),
//		B: lpgemm.RowMajor(b, k, n),
//		C: lpgemm.RowMajor(c, m, n),
//		Alpha: 1,
//	})
//
// The Engine selects the kernels for the host CPU once, and is safe for concurrent use.
// Its configuration can be given with the LPGEMM_CONFIG environment variable, see internal/config for
// the format.
package lpgemm

import (
	"fmt"
	"sync"

	"github.com/gomlx/lpgemm/internal/config"
	"github.com/gomlx/lpgemm/internal/cpuinfo"
	"github.com/gomlx/lpgemm/internal/workerspool"
	"github.com/gomlx/lpgemm/pkg/core/kernels"
	"github.com/gomlx/lpgemm/pkg/support/arena"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// Engine holds the kernel selection, the workers pool and the scratch arenas.
type Engine struct {
	cfg   config.Config
	level cpuinfo.Level
	pool  *workerspool.Pool

	// arenas holds *arena.Arena: one per concurrent Gemm call, with one slab set per worker.
	arenas sync.Pool

	s32 map[kernels.Triple]*kernels.Family[int32]
	s16 map[kernels.Triple]*kernels.Family[int16]
}

// New creates an Engine configured by the LPGEMM_CONFIG environment variable, if set.
func New() (*Engine, error) {
	cfg, err := config.FromEnv()
	if err != nil {
		return nil, err
	}
	return newEngine(cfg)
}

// NewFromString creates an Engine from a configuration string (see internal/config), ignoring the environment.
func NewFromString(configStr string) (*Engine, error) {
	cfg, err := config.Parse(configStr)
	if err != nil {
		return nil, err
	}
	return newEngine(cfg)
}

// Options configure an Engine programmatically. Zero values keep the defaults.
type Options struct {
	// Kernel forces the tile shape, e.g. kernels.Shape{MR: 6, NR: 16}.
	Kernel kernels.Shape

	// Level overrides the detected CPU level: "generic", "neondot", "avx2" or "avx512vnni".
	Level string

	// Threads is the maximum number of workers of one call.
	Threads int

	// Blocks overrides the cache block sizes.
	Blocks kernels.BlockSizes
}

func (opts Options) config() (cfg config.Config, err error) {
	if opts.Threads < 0 {
		return cfg, errors.Errorf("Options.Threads must be >= 0, got %d", opts.Threads)
	}
	if opts.Blocks.MC < 0 || opts.Blocks.NC < 0 || opts.Blocks.KC < 0 {
		return cfg, errors.Errorf("Options.Blocks must be >= 0, got %s", opts.Blocks)
	}
	cfg.Kernel = opts.Kernel
	cfg.Threads = opts.Threads
	cfg.Blocks = opts.Blocks
	if opts.Level != "" {
		cfg.Level, err = cpuinfo.ParseLevel(opts.Level)
		if err != nil {
			return cfg, errors.WithMessage(err, "Options.Level")
		}
		cfg.HasLevel = true
	}
	return cfg, nil
}

// NewWithOptions creates an Engine configured by LPGEMM_CONFIG, if set, with the non-zero opts applied on top.
func NewWithOptions(opts Options) (*Engine, error) {
	override, err := opts.config()
	if err != nil {
		return nil, err
	}
	cfg, err := config.FromEnv()
	if err != nil {
		return nil, err
	}
	return newEngine(cfg.Merge(override))
}

// forcedKernelWarnings records the (shape, triple) pairs already warned about by warnForcedKernel.
var forcedKernelWarnings sync.Map

type forcedKernel struct {
	shape  kernels.Shape
	triple kernels.Triple
}

// warnForcedKernel logs, once per shape and triple, that a forced kernel shape is ignored.
// It returns whether it logged.
func warnForcedKernel(shape kernels.Shape, triple kernels.Triple) bool {
	if _, warned := forcedKernelWarnings.LoadOrStore(forcedKernel{shape, triple}, struct{}{}); warned {
		return false
	}
	klog.Warningf("lpgemm: kernel %s is not available for %s, using the default selection", shape, triple)
	return true
}

func newEngine(cfg config.Config) (*Engine, error) {
	e := &Engine{
		cfg:   cfg,
		level: cpuinfo.HostLevel(),
		s32:   make(map[kernels.Triple]*kernels.Family[int32]),
		s16:   make(map[kernels.Triple]*kernels.Family[int16]),
	}
	if cfg.HasLevel {
		e.level = cfg.Level
	}
	e.arenas.New = func() any { return arena.New() }
	if cfg.Threads > 0 {
		e.pool = workerspool.NewWithParallelism(cfg.Threads)
	} else {
		e.pool = workerspool.New()
	}

	for _, triple := range kernels.Triples {
		var err error
		if triple.C.Size() == 4 {
			e.s32[triple], err = selectFamily[int32](triple, e.level, cfg)
		} else {
			e.s16[triple], err = selectFamily[int16](triple, e.level, cfg)
		}
		if err != nil {
			return nil, errors.WithMessagef(err, "lpgemm.New(%q)", cfg)
		}
	}
	klog.V(1).Infof("lpgemm: %s", e)
	return e, nil
}

// selectFamily picks the family for the triple: the forced shape if the configuration has one and the triple
// has kernels of that shape, otherwise the best supported at the level.
func selectFamily[T kernels.Accumulator](triple kernels.Triple, level cpuinfo.Level, cfg config.Config) (*kernels.Family[T], error) {
	var fam *kernels.Family[T]
	var err error
	if !cfg.Kernel.IsZero() {
		if _, found := kernels.Lookup[T](triple, cfg.Kernel); found {
			fam, err = kernels.Select[T](triple, level, cfg.Kernel)
			if err != nil {
				return nil, err
			}
		} else {
			warnForcedKernel(cfg.Kernel, triple)
		}
	}
	if fam == nil {
		fam, err = kernels.Select[T](triple, level, kernels.Shape{})
		if err != nil {
			return nil, err
		}
	}
	return fam.WithBlocks(cfg.Blocks), nil
}

// Level returns the CPU level the kernels were selected for.
func (e *Engine) Level() cpuinfo.Level {
	return e.level
}

// Parallelism returns the number of workers a large GEMM is split into.
func (e *Engine) Parallelism() int {
	return e.pool.AdjustedMaxParallelism()
}

// Family returns the name of the kernel family used for the triple, e.g. "s32-6x64".
func (e *Engine) Family(triple kernels.Triple) string {
	if fam, found := e.s32[triple]; found {
		return fam.String()
	}
	if fam, found := e.s16[triple]; found {
		return fam.String()
	}
	return "<none>"
}

// String implements fmt.Stringer.
func (e *Engine) String() string {
	s := fmt.Sprintf("Engine(level=%s, parallelism=%d", e.level, e.Parallelism())
	for _, triple := range kernels.Triples {
		s += fmt.Sprintf(", %s: %s", triple, e.Family(triple))
	}
	return s + ")"
}
