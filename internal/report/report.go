// SPDX-License-Identifier: MIT

// Package report reads the short timing report written by the generator and
// renders it as an HTML page of go-echarts line charts.
package report

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/katalvlaran/matpow/internal/harness"
)

var (
	// ErrMalformed indicates a short report that does not follow the
	// "matrix_size exponent field_size computation_time_ns" layout.
	ErrMalformed = errors.New("report: malformed short report")

	// ErrNoData indicates a report without any data row.
	ErrNoData = errors.New("report: no data rows")
)

// Row is one line of the short report.
type Row struct {
	Size      int
	Exponent  uint64
	FieldSize uint64
	Nanos     int64
}

// ReadShort parses a short report. The header line is required; blank lines
// are skipped.
func ReadShort(r io.Reader) ([]Row, error) {
	sc := bufio.NewScanner(r)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("read short report: %w", err)
		}
		return nil, fmt.Errorf("missing header: %w", ErrMalformed)
	}
	if got := strings.TrimSpace(sc.Text()); got != harness.ShortHeader {
		return nil, fmt.Errorf("header %q: %w", got, ErrMalformed)
	}

	var rows []Row
	for line := 2; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		row, err := parseRow(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read short report: %w", err)
	}

	return rows, nil
}

func parseRow(text string) (Row, error) {
	f := strings.Fields(text)
	if len(f) != 4 {
		return Row{}, fmt.Errorf("%d fields, want 4: %w", len(f), ErrMalformed)
	}

	var (
		row Row
		err error
	)
	if row.Size, err = strconv.Atoi(f[0]); err != nil || row.Size <= 0 {
		return Row{}, fmt.Errorf("matrix_size %q: %w", f[0], ErrMalformed)
	}
	if row.Exponent, err = strconv.ParseUint(f[1], 10, 64); err != nil {
		return Row{}, fmt.Errorf("exponent %q: %w", f[1], ErrMalformed)
	}
	if row.FieldSize, err = strconv.ParseUint(f[2], 10, 64); err != nil {
		return Row{}, fmt.Errorf("field_size %q: %w", f[2], ErrMalformed)
	}
	if row.Nanos, err = strconv.ParseInt(f[3], 10, 64); err != nil || row.Nanos < 0 {
		return Row{}, fmt.Errorf("computation_time_ns %q: %w", f[3], ErrMalformed)
	}

	return row, nil
}

// Point is the mean duration of every row sharing Key.
type Point struct {
	Key   uint64
	Mean  float64 // nanoseconds
	Count int
}

// MeanBy groups rows by key and returns the means ordered by key.
func MeanBy(rows []Row, key func(Row) uint64) []Point {
	sums := make(map[uint64]float64)
	counts := make(map[uint64]int)
	for _, r := range rows {
		k := key(r)
		sums[k] += float64(r.Nanos)
		counts[k]++
	}

	points := make([]Point, 0, len(sums))
	for k, s := range sums {
		points = append(points, Point{Key: k, Mean: s / float64(counts[k]), Count: counts[k]})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Key < points[j].Key })

	return points
}

// Plot renders the mean computation time per matrix size and per exponent
// as an HTML page.
func Plot(w io.Writer, rows []Row) error {
	if len(rows) == 0 {
		return ErrNoData
	}

	page := components.NewPage().SetPageTitle("Matrix power timings")
	page.AddCharts(
		lineChart("Mean computation time by matrix size", "matrix size",
			MeanBy(rows, func(r Row) uint64 { return uint64(r.Size) })),
		lineChart("Mean computation time by exponent", "exponent",
			MeanBy(rows, func(r Row) uint64 { return r.Exponent })),
	)

	if err := page.Render(w); err != nil {
		return fmt.Errorf("render error: %w", err)
	}

	return nil
}

func lineChart(title, xName string, points []Point) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: xName}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:      "ns",
			AxisLabel: &opts.AxisLabel{Formatter: "{value}"},
		}),
		charts.WithToolboxOpts(opts.Toolbox{
			Show: opts.Bool(true),
			Feature: &opts.ToolBoxFeature{
				SaveAsImage: &opts.ToolBoxFeatureSaveAsImage{Show: opts.Bool(true)},
			},
		}),
	)

	labels := make([]string, len(points))
	data := make([]opts.LineData, len(points))
	for i, p := range points {
		labels[i] = strconv.FormatUint(p.Key, 10)
		data[i] = opts.LineData{Value: p.Mean}
	}
	line.SetXAxis(labels).AddSeries("mean ns", data)

	return line
}
