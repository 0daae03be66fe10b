// Copyright 2025 the dr-microbenchmarks authors
// This file is part of the dr-microbenchmarks suite.
//
// dr-microbenchmarks is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// dr-microbenchmarks is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with dr-microbenchmarks. If not, see <http://www.gnu.org/licenses/>.

package visualizer

import (
	"fmt"
	"net/http"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"github.com/szape/dr-microbenchmarks/model"
	"github.com/szape/dr-microbenchmarks/statistics/distribution"
)

// HTML references for the rendered pages.
const probabilityRef = "probability-stats"
const cumulativeRef = "cumulative-stats"

// maxProbabilityPoints caps the probability chart; wider tails carry no
// visible information and only weigh down the page.
const maxProbabilityPoints = 1000

// MainHtml is the index page.
const MainHtml = `
<!DOCTYPE html>
<html lang="en">
  <head>
    <meta charset="utf-8">
    <title>dr-microbenchmarks: Workload Distribution</title>
  </head>
  <body>
    <h1>dr-microbenchmarks: Workload Distribution</h1>
    <ul>
    <li> <h3> <a href="/` + probabilityRef + `"> Probability Profile </a> </h3> </li>
    <li> <h3> <a href="/` + cumulativeRef + `"> Cumulative Distribution </a> </h3> </li>
    </ul>
</body>
</html>
`

// renderMain renders the main menu.
func renderMain(w http.ResponseWriter, r *http.Request) {
	_, _ = fmt.Fprint(w, MainHtml)
}

// convertPoints converts (x,y) pairs to chart points.
func convertPoints(data [][2]float64) []opts.LineData {
	items := []opts.LineData{}
	for _, pair := range data {
		items = append(items, opts.LineData{Value: pair})
	}
	return items
}

// newChart creates a line chart with the shared option boilerplate.
func newChart(title string) *charts.Line {
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
		charts.WithTitleOpts(opts.Title{
			Title: title,
		}))
	return chart
}

// probabilitySeries maps per-outcome probabilities to (outcome, p) points.
func probabilitySeries(pmf []float64) [][2]float64 {
	n := len(pmf)
	if n > maxProbabilityPoints {
		n = maxProbabilityPoints
	}
	points := make([][2]float64, n)
	for i := 0; i < n; i++ {
		points[i] = [2]float64{float64(i + 1), pmf[i]}
	}
	return points
}

// renderProbability renders the analytic and empirical probability profiles.
func renderProbability(w http.ResponseWriter, r *http.Request) {
	view, err := currentView()
	if err != nil {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}
	chart := newChart("Probability Profile")
	chart.AddSeries("Analytic", convertPoints(probabilitySeries(view.pmf))).
		AddSeries("Empirical", convertPoints(probabilitySeries(view.empirical)))
	_ = chart.Render(w)
}

// renderCumulative renders the compressed cumulative distribution.
func renderCumulative(w http.ResponseWriter, r *http.Request) {
	view, err := currentView()
	if err != nil {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}
	chart := newChart("Cumulative Distribution")
	chart.AddSeries("CDF", convertPoints(view.ecdf))
	_ = chart.Render(w)
}

// FireUpWeb derives the chart series of the given model and visualizes
// them with a local web-server.
func FireUpWeb(m *model.Model, addr string, u distribution.UniformSource, sampleSize int) error {
	if err := setViewState(m, u, sampleSize); err != nil {
		return err
	}

	// create web server
	http.HandleFunc("/", renderMain)
	http.HandleFunc("/"+probabilityRef, renderProbability)
	http.HandleFunc("/"+cumulativeRef, renderCumulative)
	return http.ListenAndServe(":"+addr, nil)
}
