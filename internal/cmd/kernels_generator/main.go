// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// kernels_generator writes the unrolled micro-kernels of pkg/core/kernels: one function per
// (rows, width) pair of each accumulator family, plus the lookup tables used by the row-panel dispatchers.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/exec"
	"path"
	"strings"
	"text/template"

	"github.com/janpfeifer/must"
	"k8s.io/klog/v2"
)

// FamilyInfo describes one accumulator family.
type FamilyInfo struct {
	Prefix   string // Function name prefix, e.g. "s32".
	FileName string
	Acc      string // Accumulator Go type.
	Tile     string // postops tile type.
	MaxVecs  int    // Widest tile in 16-lane vectors.
	MaxVecsC string // Name of the postops constant for MaxVecs.
	Chunk    int    // K values per dot-product group.
	Load     string // vec group loader.
	Dot      string // vec dot-product method.
	Finish   string // Epilogue function.
	Desc     string
	Kernels  []KernelInfo
}

// KernelInfo describes one generated kernel.
type KernelInfo struct {
	*FamilyInfo
	Name       string
	Rows, Vecs int
	Width      string
	Masked     bool
	RowIdx     []int
	VecIdx     []int
}

var (
	flagOutput = flag.String("output", ".", "Directory where to write the generated files.")

	families = []*FamilyInfo{
		{
			Prefix: "s32", FileName: "gen_kernels_s32.go", Acc: "int32", Tile: "Tile32",
			MaxVecs: 4, MaxVecsC: "MaxVecs32", Chunk: 4, Load: "LoadGroup4", Dot: "DotU8I8", Finish: "finishS32",
			Desc: "32-bit accumulators, 4-deep u8·s8 dot products",
		},
		{
			Prefix: "s16", FileName: "gen_kernels_s16.go", Acc: "int16", Tile: "Tile16",
			MaxVecs: 2, MaxVecsC: "MaxVecs16", Chunk: 2, Load: "LoadGroup2", Dot: "MaddU8I8", Finish: "finishS16",
			Desc: "16-bit accumulators, 2-deep saturating u8·s8 multiply-adds",
		},
	}
)

const maxRows = 6

func sequence(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

// offset renders "+name", "+2*name", ... for index i > 0, and nothing for 0.
func offset(name string, i int) string {
	switch i {
	case 0:
		return ""
	case 1:
		return "+" + name
	default:
		return fmt.Sprintf("+%d*%s", i, name)
	}
}

func buildKernels(f *FamilyInfo) {
	for rows := maxRows; rows >= 1; rows-- {
		for vecs := f.MaxVecs; vecs >= 1; vecs-- {
			f.Kernels = append(f.Kernels, KernelInfo{
				FamilyInfo: f,
				Name:       fmt.Sprintf("%sKernel%dx%d", f.Prefix, rows, 16*vecs),
				Rows:       rows, Vecs: vecs, Width: fmt.Sprintf("%d", 16*vecs),
				RowIdx: sequence(rows), VecIdx: sequence(vecs),
			})
		}
		f.Kernels = append(f.Kernels, KernelInfo{
			FamilyInfo: f,
			Name:       fmt.Sprintf("%sKernel%dxLt16", f.Prefix, rows),
			Rows:       rows, Vecs: 1, Width: "lt16", Masked: true,
			RowIdx: sequence(rows), VecIdx: sequence(1),
		})
	}
}

var kernelsTemplate = template.Must(template.New("kernels").Funcs(template.FuncMap{
	"offset": offset,
	"rows":   func() []int { return sequence(maxRows + 1)[1:] },
	"vecs":   func(n int) []int { return sequence(n + 1)[1:] },
	"mul16":  func(v int) int { return 16 * v },
}).Parse(`/***** File generated by ./internal/cmd/kernels_generator. Don't edit it directly. *****/

// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package kernels

import (
	"github.com/gomlx/lpgemm/pkg/core/postops"
	"github.com/gomlx/lpgemm/pkg/core/vec"
)

// Micro-kernels with {{.Desc}}.
{{- $f := . }}
{{- range .Kernels}}
{{- $k := . }}

// {{.Name}} computes a {{.Rows}}x{{if .Masked}}n0 (n0 < 16){{else}}{{.Width}}{{end}} tile.
func {{.Name}}({{if .Masked}}n0, {{end}}k0 int, a []uint8, rsA, csA int, b []int8, rsB, csB int, c []{{$f.Acc}}, rsC int, alpha, beta {{$f.Acc}}, ops *postops.List, attr postops.Attributes) {
	var t postops.{{$f.Tile}}
	t.Init({{.Rows}}, {{.Vecs}}, {{if .Masked}}vec.TailMask(n0){{else}}vec.FullMask{{end}})
	kFull, kPartial := k0/{{$f.Chunk}}, k0%{{$f.Chunk}}
	for kr := range kFull {
		bOff := rsB * kr
{{- range .VecIdx}}
		b{{.}} := b[bOff{{offset "csB" .}}:]
{{- end}}
		aOff := csA * kr
{{- range $r := .RowIdx}}
		a{{$r}} := vec.{{$f.Load}}(a, aOff{{offset "rsA" $r}})
{{- range $v := $k.VecIdx}}
		t.Acc[{{$r}}][{{$v}}].{{$f.Dot}}(a{{$r}}, b{{$v}})
{{- end}}
{{- end}}
	}
	if kPartial > 0 {
		bOff := rsB * kFull
{{- range .VecIdx}}
		b{{.}} := b[bOff{{offset "csB" .}}:]
{{- end}}
		aOff := csA * kFull
{{- range $r := .RowIdx}}
		a{{$r}} := vec.{{$f.Load}}Partial(a, aOff{{offset "rsA" $r}}, kPartial)
{{- range $v := $k.VecIdx}}
		t.Acc[{{$r}}][{{$v}}].{{$f.Dot}}(a{{$r}}, b{{$v}})
{{- end}}
{{- end}}
	}
	{{$f.Finish}}(&t, c, rsC, alpha, beta, ops, &attr)
}
{{- end}}

// {{.Prefix}}Kernels indexes the full-width kernels by [rows][16-column vectors].
var {{.Prefix}}Kernels = [postops.MaxRows + 1][postops.{{.MaxVecsC}} + 1]Kernel[{{.Acc}}]{
{{- range $r := rows}}
	{{$r}}: {
{{- range $v := vecs $f.MaxVecs}}{{if gt $v 1}}, {{end}}{{$v}}: {{$f.Prefix}}Kernel{{$r}}x{{mul16 $v}}{{end}}},
{{- end}}
}

// {{.Prefix}}MaskedKernels indexes the kernels for fewer than 16 columns by rows.
var {{.Prefix}}MaskedKernels = [postops.MaxRows + 1]MaskedKernel[{{.Acc}}]{
{{- range $r := rows}}
	{{$r}}: {{$f.Prefix}}Kernel{{$r}}xLt16,
{{- end}}
}
`))

func main() {
	klog.InitFlags(nil)
	flag.Parse()
	for _, f := range families {
		buildKernels(f)
		var sb strings.Builder
		must.M(kernelsTemplate.Execute(&sb, f))
		fileName := path.Join(*flagOutput, f.FileName)
		must.M(os.WriteFile(fileName, []byte(sb.String()), 0644))
		cmd := exec.Command("gofmt", "-w", fileName)
		klog.V(1).Infof("\t%s", cmd)
		must.M(cmd.Run())
		fmt.Printf("✅ kernels_generator:       \tsuccessfully generated %s\n", fileName)
	}
}
