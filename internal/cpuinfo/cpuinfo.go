// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package cpuinfo maps the host CPU features onto the capability levels used to select GEMM kernel families.
package cpuinfo

import (
	"fmt"
	"runtime"
	"strings"
	"sync"

	"github.com/ajroetker/go-highway/hwy"
	"github.com/pkg/errors"
	"golang.org/x/sys/cpu"
	"k8s.io/klog/v2"
)

// Level is a kernel capability level.
//
// Levels are ordered within one architecture: a host at AVX512VNNI also runs AVX2 kernels.
// Generic is supported everywhere.
type Level int

const (
	// Generic kernels run on any CPU.
	Generic Level = iota

	// NEONDot requires the arm64 dot-product extension (SDOT/UDOT).
	NEONDot

	// AVX2 requires AVX2 (256-bit integer multiply-add of byte pairs).
	AVX2

	// AVX512VNNI requires AVX512F, AVX512BW and AVX512-VNNI (4-deep byte dot products).
	AVX512VNNI
)

var levelNames = []string{"generic", "neondot", "avx2", "avx512vnni"}

// String implements fmt.Stringer.
func (l Level) String() string {
	if l < 0 || int(l) >= len(levelNames) {
		return fmt.Sprintf("Level(%d)", int(l))
	}
	return levelNames[l]
}

// ParseLevel converts a level name (case-insensitive) back to a Level.
func ParseLevel(name string) (Level, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range levelNames {
		if n == name {
			return Level(i), nil
		}
	}
	return Generic, errors.Errorf("unknown CPU level %q, valid levels are %q", name, levelNames)
}

// Supports returns whether a host at level l can run kernels requiring the given level.
func (l Level) Supports(required Level) bool {
	switch required {
	case Generic:
		return true
	case NEONDot:
		return l == NEONDot
	case AVX2:
		return l == AVX2 || l == AVX512VNNI
	case AVX512VNNI:
		return l == AVX512VNNI
	}
	return false
}

// Features is the subset of host CPU features relevant to the integer GEMM kernels.
type Features struct {
	Arch       string
	AVX2       bool
	AVX512F    bool
	AVX512BW   bool
	AVX512VNNI bool
	ASIMDDP    bool

	// VectorTarget and VectorWidth (in bytes) are the go-highway dispatch target running the
	// lane operations of the accumulator vectors; "scalar" (or empty) when hwy runs its portable fallback.
	VectorTarget string
	VectorWidth  int
}

// Level returns the highest capability level the features support.
func (f Features) Level() Level {
	switch {
	case f.AVX512F && f.AVX512BW && f.AVX512VNNI:
		return AVX512VNNI
	case f.AVX2:
		return AVX2
	case f.ASIMDDP:
		return NEONDot
	}
	return Generic
}

var (
	detectOnce sync.Once
	detected   Features
)

// Detect returns the host features, read once from golang.org/x/sys/cpu.
func Detect() Features {
	detectOnce.Do(func() {
		detected = Features{
			Arch:       runtime.GOARCH,
			AVX2:       cpu.X86.HasAVX2,
			AVX512F:    cpu.X86.HasAVX512F,
			AVX512BW:   cpu.X86.HasAVX512BW,
			AVX512VNNI: cpu.X86.HasAVX512VNNI,
			ASIMDDP:    cpu.ARM64.HasASIMDDP,

			VectorTarget: hwy.CurrentName(),
			VectorWidth:  hwy.CurrentWidth(),
		}
		klog.V(1).Infof("cpuinfo: arch=%s level=%s (avx2=%v avx512f=%v avx512bw=%v avx512vnni=%v asimddp=%v), hwy target=%q width=%d",
			detected.Arch, detected.Level(), detected.AVX2, detected.AVX512F, detected.AVX512BW,
			detected.AVX512VNNI, detected.ASIMDDP, detected.VectorTarget, detected.VectorWidth)
	})
	return detected
}

// HostLevel returns the capability level of the host.
func HostLevel() Level {
	return Detect().Level()
}
