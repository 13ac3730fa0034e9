// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package main

import (
	"image/color"
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var tripleColors = []color.Color{
	color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff},
	color.RGBA{R: 0xff, G: 0x7f, B: 0x0e, A: 0xff},
	color.RGBA{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff},
	color.RGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0xff},
}

// plotResults saves a line per triple of GOPS over the cube root of M·N·K.
func plotResults(results []Result, fileName string) error {
	p := plot.New()
	p.Title.Text = "lpgemm throughput"
	p.X.Label.Text = "(M·N·K)^(1/3)"
	p.Y.Label.Text = "GOPS"
	p.Y.Min = 0
	p.Add(plotter.NewGrid())

	var order []string
	series := make(map[string]plotter.XYs)
	for _, r := range results {
		name := r.Triple.String()
		if _, found := series[name]; !found {
			order = append(order, name)
		}
		size := math.Cbrt(float64(r.Shape.M) * float64(r.Shape.N) * float64(r.Shape.K))
		series[name] = append(series[name], plotter.XY{X: size, Y: r.GOPS()})
	}
	for i, name := range order {
		line, points, err := plotter.NewLinePoints(series[name])
		if err != nil {
			return errors.Wrapf(err, "failed to plot %s", name)
		}
		c := tripleColors[i%len(tripleColors)]
		line.Color = c
		points.Color = c
		p.Add(line, points)
		p.Legend.Add(name, line, points)
	}
	p.Legend.Top = true
	p.Legend.Left = true
	if err := p.Save(12*vg.Inch, 6*vg.Inch, fileName); err != nil {
		return errors.Wrapf(err, "failed to save plot to %q", fileName)
	}
	return nil
}
