// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// lpgemm_bench measures the throughput of the low-precision GEMM for each triple over a list of problem
// sizes, optionally checking the results against a reference implementation.
//
// Usage:
//
//	lpgemm_bench -sizes=64,256,1024x512x768 -triples=u8s8s32,s8s8s16 -threads=4 -postops=bias,relu -plot=gops.png
package main

import (
	"flag"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/gomlx/lpgemm"
	"github.com/gomlx/lpgemm/internal/config"
	"github.com/gomlx/lpgemm/internal/gemmtest"
	"github.com/gomlx/lpgemm/pkg/core/kernels"
	"github.com/gomlx/lpgemm/pkg/core/postops"
	"github.com/janpfeifer/must"
	"github.com/muesli/termenv"
	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
	"k8s.io/klog/v2"
)

var (
	flagSizes = flag.String("sizes", "64,128,256,512",
		"Comma-separated problem sizes: either a single value for a square problem, or MxNxK.")
	flagTriples = flag.String("triples", "u8s8s32,s8s8s32,u8s8s16,s8s8s16",
		"Comma-separated list of triples to benchmark.")
	flagConfig = flag.String("config", "",
		fmt.Sprintf("Engine configuration, see internal/config. If empty, $%s is used.", config.EnvVar))
	flagThreads = flag.Int("threads", 0, "Maximum number of workers per call. 0 keeps the configured value.")
	flagPostOps = flag.String("postops", "",
		"Comma-separated post-ops applied to every call: bias, relu, prelu, gelu_tanh, gelu_erf, silu, clip or downscale.")
	flagMinTime = flag.Duration("min_time", 200*time.Millisecond, "Minimum time spent on each benchmark.")
	flagCheck   = flag.Bool("check", true, "Check the results against the reference implementation.")
	flagPlot    = flag.String("plot", "", "If set, save a plot of GOPS per problem size to this PNG file.")
)

// Shape of one GEMM problem.
type Shape struct {
	M, N, K int
}

func (s Shape) String() string {
	return fmt.Sprintf("%dx%dx%d", s.M, s.N, s.K)
}

// Ops returns the number of integer operations (multiply and add) of the problem.
func (s Shape) Ops() int64 {
	return 2 * int64(s.M) * int64(s.N) * int64(s.K)
}

func parseShapes(str string) ([]Shape, error) {
	var shapes []Shape
	for _, part := range strings.Split(str, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		dims := strings.Split(part, "x")
		if len(dims) != 1 && len(dims) != 3 {
			return nil, errors.Errorf("invalid size %q: use N or MxNxK", part)
		}
		values := make([]int, len(dims))
		for i, d := range dims {
			v, err := strconv.Atoi(d)
			if err != nil || v <= 0 {
				return nil, errors.Errorf("invalid size %q: dimensions must be positive integers", part)
			}
			values[i] = v
		}
		if len(values) == 1 {
			shapes = append(shapes, Shape{values[0], values[0], values[0]})
		} else {
			shapes = append(shapes, Shape{values[0], values[1], values[2]})
		}
	}
	if len(shapes) == 0 {
		return nil, errors.New("no sizes given")
	}
	return shapes, nil
}

func parseTriples(str string) ([]kernels.Triple, error) {
	var triples []kernels.Triple
	for _, part := range strings.Split(str, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		triple, err := kernels.ParseTriple(part)
		if err != nil {
			return nil, err
		}
		triples = append(triples, triple)
	}
	return triples, nil
}

// Result of one benchmark.
type Result struct {
	Triple   kernels.Triple
	Shape    Shape
	Family   string
	Calls    int
	PerCall  time.Duration
	Mismatch int
	Checked  bool
}

// GOPS returns billions of integer operations per second.
func (r Result) GOPS() float64 {
	if r.PerCall <= 0 {
		return 0
	}
	return float64(r.Shape.Ops()) / r.PerCall.Seconds() / 1e9
}

func main() {
	klog.InitFlags(nil)
	flag.Parse()

	shapes := must.M1(parseShapes(*flagSizes))
	triples := must.M1(parseTriples(*flagTriples))
	postOpNames := must.M1(parsePostOps(*flagPostOps))
	var engine *lpgemm.Engine
	if *flagConfig != "" {
		configStr := *flagConfig
		if *flagThreads > 0 {
			configStr += fmt.Sprintf(",threads=%d", *flagThreads)
		}
		engine = must.M1(lpgemm.NewFromString(configStr))
	} else {
		engine = must.M1(lpgemm.NewWithOptions(lpgemm.Options{Threads: *flagThreads}))
	}
	fmt.Println(titleStyle.Render("lpgemm benchmark"))
	fmt.Println(engineTable(engine).Render())

	out := termenv.NewOutput(os.Stdout)
	bar := progressbar.NewOptions(len(shapes)*len(triples),
		progressbar.OptionSetDescription("Benchmarking"),
		progressbar.OptionEnableColorCodes(out.Profile != termenv.Ascii),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.ThemeASCII),
		progressbar.OptionClearOnFinish(),
	)
	var results []Result
	for _, triple := range triples {
		for _, shape := range shapes {
			bar.Describe(fmt.Sprintf("%s %s", triple, shape))
			results = append(results, must.M1(benchmark(engine, triple, shape, postOpNames)))
			_ = bar.Add(1)
		}
	}
	_ = bar.Finish()

	fmt.Println(resultsTable(results).Table.Render())
	mismatches := 0
	for _, r := range results {
		mismatches += r.Mismatch
	}
	if mismatches > 0 {
		fmt.Println(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")).
			Render(fmt.Sprintf("%s values differ from the reference", humanize.Comma(int64(mismatches)))))
	}
	if *flagPlot != "" {
		must.M(plotResults(results, *flagPlot))
		fmt.Printf("Plot saved to %q\n", *flagPlot)
	}
	if mismatches > 0 {
		os.Exit(1)
	}
}

var validPostOps = []string{"bias", "relu", "prelu", "gelu_tanh", "gelu_erf", "silu", "clip", "downscale"}

func parsePostOps(str string) ([]string, error) {
	var names []string
	for _, name := range strings.Split(str, ",") {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		if !slices.Contains(validPostOps, name) {
			return nil, errors.Errorf("unknown post-op %q, valid values are %q", name, validPostOps)
		}
		names = append(names, name)
	}
	return names, nil
}

// buildPostOps creates the post-ops list for an output with n columns.
func buildPostOps(names []string, n int) (*postops.List, error) {
	if len(names) == 0 {
		return nil, nil
	}
	b := postops.New()
	for _, name := range names {
		switch name {
		case "bias":
			b.Bias(gemmtest.RandomInts[int32](gemmtest.NewRand(uint64(n)), n, -1000, 1000))
		case "relu":
			b.ReLU()
		case "prelu":
			b.PReLU(3)
		case "gelu_tanh":
			b.GELUTanh()
		case "gelu_erf":
			b.GELUErf()
		case "silu":
			b.SiLU(1)
		case "clip":
			b.Clip(-20000, 20000)
		case "downscale":
			b.Downscale([]float32{1.0 / 256}, []int32{0})
		}
	}
	return b.Done()
}

func benchmark(e *lpgemm.Engine, triple kernels.Triple, shape Shape, postOps []string) (Result, error) {
	ops, err := buildPostOps(postOps, shape.N)
	if err != nil {
		return Result{}, err
	}
	switch triple {
	case kernels.U8S8S32:
		return run[uint8, int32](e, shape, 127, ops)
	case kernels.S8S8S32:
		return run[int8, int32](e, shape, 127, ops)
	case kernels.U8S8S16:
		return run[uint8, int16](e, shape, 63, ops)
	case kernels.S8S8S16:
		return run[int8, int16](e, shape, 63, ops)
	}
	return Result{}, errors.Errorf("triple %s not supported", triple)
}

// run times repeated calls until flagMinTime has passed, then checks the last result.
func run[TA uint8 | int8, TC int32 | int16](e *lpgemm.Engine, shape Shape, bLimit int, ops *postops.List) (Result, error) {
	triple := lpgemm.TripleOf[TA, TC]()
	prob := gemmtest.NewProblem[TA](uint64(shape.M*131+shape.N*17+shape.K), shape.M, shape.N, shape.K, bLimit)
	c := make([]TC, shape.M*shape.N)
	params := &lpgemm.Params[TA, TC]{
		A:       lpgemm.RowMajor(prob.A, shape.M, shape.K),
		B:       lpgemm.RowMajor(prob.B, shape.K, shape.N),
		C:       lpgemm.RowMajor(c, shape.M, shape.N),
		Alpha:   1,
		PostOps: ops,
	}
	// Warm-up: sizes the scratch arenas.
	if err := lpgemm.Gemm(e, params); err != nil {
		return Result{}, err
	}
	r := Result{Triple: triple, Shape: shape, Family: e.Family(triple)}
	start := time.Now()
	for r.Calls == 0 || time.Since(start) < *flagMinTime {
		if err := lpgemm.Gemm(e, params); err != nil {
			return Result{}, err
		}
		r.Calls++
	}
	r.PerCall = time.Since(start) / time.Duration(r.Calls)
	klog.V(1).Infof("%s %s: %d calls, %s per call", triple, shape, r.Calls, r.PerCall)

	if *flagCheck {
		r.Checked = true
		product := prob.Product()
		var zero TC
		switch cTyped := any(c).(type) {
		case []int32:
			want := gemmtest.ReferenceS32(product, shape.M, shape.N, 1, 0, nil, ops)
			r.Mismatch = countMismatches(cTyped, want)
		case []int16:
			want := gemmtest.ReferenceS16(product, shape.M, shape.N, 1, 0, nil, ops)
			r.Mismatch = countMismatches(cTyped, want)
		default:
			return Result{}, errors.Errorf("unexpected accumulator type %T", zero)
		}
	}
	return r, nil
}

func countMismatches[T comparable](got, want []T) (count int) {
	for i := range got {
		if got[i] != want[i] {
			count++
		}
	}
	return
}
