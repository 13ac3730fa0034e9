// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package postops implements the fused epilogue of the low-precision GEMM micro-kernels.
//
// A List is an ordered, immutable chain of Op nodes terminated by a KindDisable sentinel. Micro-kernels run
// it on their accumulator tile (Tile32 or Tile16) on the last K slice, after alpha/beta scaling and before
// the final store. Nodes are applied strictly in list order, and the same kind may appear more than once.
//
// Lists are created with a Builder:
//
//	ops, err := postops.New().Bias(bias).ReLU().Downscale(scales, zeroPoints).Done()
package postops

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Op is one node of a post-op List.
type Op struct {
	Kind Kind

	// Bias holds the per-column bias for KindBias, widened to int32.
	Bias []int32

	// Alpha is the slope of KindPReLU and the sigmoid multiplier of KindSiLU.
	Alpha int32

	// Min and Max are the bounds of KindClip.
	Min, Max int32

	// Scale holds the requantization factors of KindDownscale: one per column, or a single per-tensor value.
	Scale []float32

	// ZeroPoint holds the zero points of KindDownscale: one per column, a single per-tensor value, or none.
	ZeroPoint []int32

	// Matrix is the operand of KindMatrixAdd.
	Matrix Operand

	next *Op
}

// Next returns the following node. The last node of a list is the KindDisable sentinel, whose Next is nil.
func (op *Op) Next() *Op {
	return op.next
}

// String implements fmt.Stringer.
func (op *Op) String() string {
	switch op.Kind {
	case KindBias:
		return fmt.Sprintf("bias[%d]", len(op.Bias))
	case KindPReLU, KindSiLU:
		return fmt.Sprintf("%s(alpha=%d)", op.Kind, op.Alpha)
	case KindClip:
		return fmt.Sprintf("clip[%d, %d]", op.Min, op.Max)
	case KindDownscale:
		return fmt.Sprintf("downscale(scales=%d, zero_points=%d)", len(op.Scale), len(op.ZeroPoint))
	case KindMatrixAdd:
		return fmt.Sprintf("matrixadd(%s, ld=%d)", op.Matrix.DType(), op.Matrix.LeadingDim())
	default:
		return op.Kind.String()
	}
}

// disabled is the head of the empty list.
var disabled = &Op{Kind: KindDisable}

// List is an ordered, immutable chain of post-ops. A nil *List is a valid empty list.
type List struct {
	head *Op
	len  int
}

// Head returns the first node, which is the KindDisable sentinel if the list is empty.
func (l *List) Head() *Op {
	if l == nil || l.head == nil {
		return disabled
	}
	return l.head
}

// Len returns the number of nodes, not counting the sentinel.
func (l *List) Len() int {
	if l == nil {
		return 0
	}
	return l.len
}

// Kinds returns the kinds of the nodes in application order.
func (l *List) Kinds() []Kind {
	kinds := make([]Kind, 0, l.Len())
	for op := l.Head(); op.Kind != KindDisable; op = op.next {
		kinds = append(kinds, op.Kind)
	}
	return kinds
}

// Has returns whether a node of the given kind is in the list.
func (l *List) Has(kind Kind) bool {
	for op := l.Head(); op.Kind != KindDisable; op = op.next {
		if op.Kind == kind {
			return true
		}
	}
	return false
}

// String implements fmt.Stringer.
func (l *List) String() string {
	if l.Len() == 0 {
		return "[]"
	}
	parts := make([]string, 0, l.Len())
	for op := l.Head(); op.Kind != KindDisable; op = op.next {
		parts = append(parts, op.String())
	}
	return "[" + strings.Join(parts, " -> ") + "]"
}

// Validate checks that the operands of every node cover an m×n output.
func (l *List) Validate(m, n int) error {
	for op := l.Head(); op.Kind != KindDisable; op = op.next {
		switch op.Kind {
		case KindBias:
			if len(op.Bias) < n {
				return errors.Errorf("post-op %s: bias has %d values, output has %d columns", op, len(op.Bias), n)
			}
		case KindDownscale:
			if len(op.Scale) > 1 && len(op.Scale) < n {
				return errors.Errorf("post-op %s: %d scale factors for %d columns", op, len(op.Scale), n)
			}
			if len(op.ZeroPoint) > 1 && len(op.ZeroPoint) < n {
				return errors.Errorf("post-op %s: %d zero points for %d columns", op, len(op.ZeroPoint), n)
			}
		case KindMatrixAdd:
			if op.Matrix.LeadingDim() < n {
				return errors.Errorf("post-op %s: leading dimension smaller than the %d output columns", op, n)
			}
			if need := (m-1)*op.Matrix.LeadingDim() + n; m > 0 && op.Matrix.Len() < need {
				return errors.Errorf("post-op %s: matrix has %d values, %d required for a %dx%d output",
					op, op.Matrix.Len(), need, m, n)
			}
		}
	}
	return nil
}

// Builder creates a List. Errors are deferred to Done.
type Builder struct {
	ops []*Op
	err error
}

// New returns an empty Builder.
func New() *Builder {
	return &Builder{}
}

func (b *Builder) add(op *Op) *Builder {
	if b.err == nil {
		b.ops = append(b.ops, op)
	}
	return b
}

func (b *Builder) setErr(err error) *Builder {
	if b.err == nil {
		b.err = err
	}
	return b
}

// Bias adds a per-column bias. values must be a []int8, []int16 or []int32.
func (b *Builder) Bias(values any) *Builder {
	bias, err := widenInts(values)
	if err != nil {
		return b.setErr(errors.WithMessage(err, "postops.Bias"))
	}
	return b.add(&Op{Kind: KindBias, Bias: bias})
}

// ReLU adds max(x, 0).
func (b *Builder) ReLU() *Builder {
	return b.add(&Op{Kind: KindReLU})
}

// PReLU adds the parametric ReLU: values <= 0 are multiplied by slope.
func (b *Builder) PReLU(slope int32) *Builder {
	return b.add(&Op{Kind: KindPReLU, Alpha: slope})
}

// GELUTanh adds GELU with the tanh approximation.
func (b *Builder) GELUTanh() *Builder {
	return b.add(&Op{Kind: KindGELUTanh})
}

// GELUErf adds GELU with the erf formulation.
func (b *Builder) GELUErf() *Builder {
	return b.add(&Op{Kind: KindGELUErf})
}

// Clip adds a clamp to [lo, hi].
func (b *Builder) Clip(lo, hi int32) *Builder {
	if lo > hi {
		return b.setErr(errors.Errorf("postops.Clip: min (%d) > max (%d)", lo, hi))
	}
	return b.add(&Op{Kind: KindClip, Min: lo, Max: hi})
}

// Downscale adds a requantization step: round(x * scale) + zeroPoint.
//
// scale has either one value per output column or a single per-tensor value.
// zeroPoint may be nil, or a []int8, []uint8, []int16 or []int32 with one value per column or a single value.
func (b *Builder) Downscale(scale []float32, zeroPoint any) *Builder {
	if len(scale) == 0 {
		return b.setErr(errors.New("postops.Downscale: at least one scale factor required"))
	}
	var zp []int32
	if zeroPoint != nil {
		var err error
		zp, err = widenInts(zeroPoint)
		if err != nil {
			return b.setErr(errors.WithMessage(err, "postops.Downscale zero point"))
		}
	}
	return b.add(&Op{Kind: KindDownscale, Scale: scale, ZeroPoint: zp})
}

// MatrixAdd adds the operand matrix (see NewOperand) elementwise.
func (b *Builder) MatrixAdd(m Operand) *Builder {
	if m == nil {
		return b.setErr(errors.New("postops.MatrixAdd: nil operand"))
	}
	return b.add(&Op{Kind: KindMatrixAdd, Matrix: m})
}

// SiLU adds the Swish activation x * sigmoid(alpha * x).
func (b *Builder) SiLU(alpha int32) *Builder {
	return b.add(&Op{Kind: KindSiLU, Alpha: alpha})
}

// Done links the nodes and terminates the list with the sentinel.
func (b *Builder) Done() (*List, error) {
	if b.err != nil {
		return nil, b.err
	}
	l := &List{len: len(b.ops)}
	tail := &Op{Kind: KindDisable}
	for i := len(b.ops) - 1; i >= 0; i-- {
		op := *b.ops[i]
		op.next = tail
		tail = &op
	}
	l.head = tail
	return l, nil
}

func widenInts(values any) ([]int32, error) {
	switch v := values.(type) {
	case []int32:
		return v, nil
	case []int16:
		return widen(v), nil
	case []int8:
		return widen(v), nil
	case []uint8:
		return widen(v), nil
	default:
		return nil, errors.Errorf("unsupported values type %T, expected []int8, []uint8, []int16 or []int32", values)
	}
}

func widen[T int8 | uint8 | int16](values []T) []int32 {
	out := make([]int32, len(values))
	for i, x := range values {
		out[i] = int32(x)
	}
	return out
}
