// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package kernels

import (
	"slices"
	"sync"

	"github.com/gomlx/lpgemm/internal/cpuinfo"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// Priorities of the registered families: for a triple, the supported family with the highest priority is
// selected.
const (
	PriorityBase  = 0
	PriorityTuned = 10
)

// Key indexes the capability table.
type Key struct {
	Triple Triple
	Shape  Shape
}

// Registration is one entry of the capability table.
type Registration struct {
	Key
	Name     string
	Level    cpuinfo.Level
	Priority int

	family any // *Family[int32] or *Family[int16].
}

var (
	muRegistry sync.Mutex
	registry   = make(map[Key]*Registration)
)

// Register adds a family to the capability table for the given triple.
// The triple's accumulator must match T, and a family registered twice for the same key replaces the previous one.
func Register[T Accumulator](triple Triple, fam *Family[T], priority int) {
	if triple.C.Size() != accumulatorSize[T]() {
		klog.Fatalf("kernels.Register(%s, %s): accumulator dtype does not match the family", triple, fam.Name)
	}
	muRegistry.Lock()
	defer muRegistry.Unlock()
	key := Key{Triple: triple, Shape: fam.Shape}
	registry[key] = &Registration{
		Key: key, Name: fam.Name, Level: fam.Level, Priority: priority,
		family: fam,
	}
	klog.V(2).Infof("kernels: registered %s for %s (level %s, priority %d)", fam.Name, triple, fam.Level, priority)
}

func accumulatorSize[T Accumulator]() int {
	var zero T
	switch any(zero).(type) {
	case int16:
		return 2
	default:
		return 4
	}
}

// Lookup returns the family registered for the triple and shape.
func Lookup[T Accumulator](triple Triple, shape Shape) (*Family[T], bool) {
	muRegistry.Lock()
	defer muRegistry.Unlock()
	reg, found := registry[Key{Triple: triple, Shape: shape}]
	if !found {
		return nil, false
	}
	fam, ok := reg.family.(*Family[T])
	return fam, ok
}

// Registered returns the registrations for the triple, from highest to lowest priority.
func Registered(triple Triple) []*Registration {
	muRegistry.Lock()
	defer muRegistry.Unlock()
	var regs []*Registration
	for key, reg := range registry {
		if key.Triple == triple {
			regs = append(regs, reg)
		}
	}
	slices.SortFunc(regs, func(a, b *Registration) int {
		if a.Priority != b.Priority {
			return b.Priority - a.Priority
		}
		return b.Shape.NR - a.Shape.NR
	})
	return regs
}

// Select returns the family to use for the triple on a host at the given level.
//
// If shape is not zero, the family with that shape is required (it must still be supported by level).
// Otherwise, the supported family with the highest priority is returned.
func Select[T Accumulator](triple Triple, level cpuinfo.Level, shape Shape) (*Family[T], error) {
	for _, reg := range Registered(triple) {
		if !shape.IsZero() && reg.Shape != shape {
			continue
		}
		if !level.Supports(reg.Level) {
			if !shape.IsZero() {
				return nil, errors.Errorf("kernel %s for %s requires CPU level %s, host is %s",
					reg.Name, triple, reg.Level, level)
			}
			continue
		}
		fam, ok := reg.family.(*Family[T])
		if !ok {
			return nil, errors.Errorf("kernel %s registered for %s has a different accumulator type", reg.Name, triple)
		}
		klog.V(1).Infof("kernels: selected %s for %s (host level %s)", fam.Name, triple, level)
		return fam, nil
	}
	if !shape.IsZero() {
		return nil, errors.Errorf("no kernel with shape %s registered for %s", shape, triple)
	}
	return nil, errors.Errorf("no kernel registered for %s", triple)
}

func init() {
	for _, triple := range []Triple{U8S8S32, S8S8S32} {
		Register(triple, S32x16, PriorityBase)
		Register(triple, S32x64, PriorityTuned)
	}
	for _, triple := range []Triple{U8S8S16, S8S8S16} {
		Register(triple, S16x16, PriorityBase)
		Register(triple, S16x32, PriorityTuned)
	}
}
