/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package main

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
	"gonum.org/v1/gonum/floats"
)

// abscissae of the chart
const (
	plotLower  = 0
	plotUpper  = 7
	plotPoints = 1001
)

func convertCurve(xs []float64, f func(float64) float64) []opts.LineData {
	items := make([]opts.LineData, len(xs))
	for i, x := range xs {
		items[i] = opts.LineData{Value: [2]float64{x, f(x)}}
	}
	return items
}

// newDensityChart creates a line chart of the analytic density pdf and
// the density estimate kde.
func newDensityChart(title string, pdf, kde func(float64) float64) *charts.Line {
	xs := make([]float64, plotPoints)
	floats.Span(xs, plotLower, plotUpper)

	chart := charts.NewLine()
	chart.SetGlobalOptions(charts.WithInitializationOpts(opts.Initialization{
		Theme: types.ThemeChalk,
	}),
		charts.WithToolboxOpts(opts.Toolbox{
			Show: true,
			Feature: &opts.ToolBoxFeature{
				SaveAsImage: &opts.ToolBoxFeatureSaveAsImage{
					Show:  true,
					Title: "Save",
				},
				DataZoom: &opts.ToolBoxFeatureDataZoom{
					Show: true,
				},
			},
		}),
		charts.WithLegendOpts(opts.Legend{Show: true}),
		charts.WithXAxisOpts(opts.XAxis{Type: "value"}),
		charts.WithTitleOpts(opts.Title{
			Title: title,
		}))
	chart.AddSeries("Analytic", convertCurve(xs, pdf)).AddSeries("KDE", convertCurve(xs, kde))

	return chart
}

// writeChart renders the density chart of Gamma(shape, rate) to path.
func writeChart(path string, shape, rate float64, pdf, kde func(float64) float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	chart := newDensityChart(fmt.Sprintf("Gamma(%v, %v)", shape, rate), pdf, kde)
	if err := chart.Render(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
