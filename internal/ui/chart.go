package ui

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	chartWidth  = 640
	chartHeight = 240
	padLeft     = 36.0
	padRight    = 12.0
	padTop      = 12.0
	padBottom   = 28.0
	yTickCount  = 4
)

// ChartPoint is one x-axis category with its two series values.
type ChartPoint struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Total float64 `json:"total"`
}

// Chart is a dual-series area chart. Points are drawn in the order given.
type Chart struct {
	ID         string       `json:"-"`
	ValueLabel string       `json:"value_label"`
	TotalLabel string       `json:"total_label"`
	Points     []ChartPoint `json:"points"`
}

type Marker struct {
	X, ValueY, TotalY float64
	Tooltip           string
}

type Tick struct {
	Pos   float64
	Label string
}

// ChartLayout is the SVG geometry computed from a Chart.
type ChartLayout struct {
	Width, Height int
	Baseline      float64
	ValueArea     string
	ValueLine     string
	TotalArea     string
	TotalLine     string
	XTicks        []Tick
	YTicks        []Tick
	Markers       []Marker
}

func NewChart(id, valueLabel, totalLabel string, points []ChartPoint) Chart {
	return Chart{ID: id, ValueLabel: valueLabel, TotalLabel: totalLabel, Points: points}
}

func (c Chart) Layout() ChartLayout {
	l := ChartLayout{
		Width:    chartWidth,
		Height:   chartHeight,
		Baseline: chartHeight - padBottom,
	}
	if len(c.Points) == 0 {
		return l
	}

	maxY := 0.0
	for _, p := range c.Points {
		maxY = max(maxY, p.Value, p.Total)
	}
	if maxY <= 0 {
		maxY = 1
	}

	plotW := chartWidth - padLeft - padRight
	plotH := chartHeight - padTop - padBottom

	xAt := func(i int) float64 {
		if len(c.Points) == 1 {
			return round2(padLeft + plotW/2)
		}
		return round2(padLeft + float64(i)*plotW/float64(len(c.Points)-1))
	}
	yAt := func(v float64) float64 {
		return round2(padTop + plotH - (v/maxY)*plotH)
	}

	values := make([][2]float64, 0, len(c.Points))
	totals := make([][2]float64, 0, len(c.Points))
	for i, p := range c.Points {
		x := xAt(i)
		values = append(values, [2]float64{x, yAt(p.Value)})
		totals = append(totals, [2]float64{x, yAt(p.Total)})
		l.XTicks = append(l.XTicks, Tick{Pos: x, Label: p.Name})
		l.Markers = append(l.Markers, Marker{
			X:       x,
			ValueY:  yAt(p.Value),
			TotalY:  yAt(p.Total),
			Tooltip: fmt.Sprintf("%s: %s %s, %s %s", p.Name, c.ValueLabel, num(p.Value), c.TotalLabel, num(p.Total)),
		})
	}

	l.ValueLine = linePath(values)
	l.ValueArea = areaPath(values, l.Baseline)
	l.TotalLine = linePath(totals)
	l.TotalArea = areaPath(totals, l.Baseline)

	for i := 0; i <= yTickCount; i++ {
		v := maxY * float64(i) / yTickCount
		l.YTicks = append(l.YTicks, Tick{Pos: yAt(v), Label: num(v)})
	}
	return l
}

func linePath(pts [][2]float64) string {
	var b strings.Builder
	for i, p := range pts {
		if i == 0 {
			b.WriteString("M")
		} else {
			b.WriteString(" L")
		}
		b.WriteString(num(p[0]) + "," + num(p[1]))
	}
	return b.String()
}

func areaPath(pts [][2]float64, baseline float64) string {
	if len(pts) == 0 {
		return ""
	}
	first, last := pts[0], pts[len(pts)-1]
	return "M" + num(first[0]) + "," + num(baseline) + " L" +
		strings.TrimPrefix(linePath(pts), "M") +
		" L" + num(last[0]) + "," + num(baseline) + " Z"
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// num renders v with at most two decimals and no trailing zeros.
func num(v float64) string {
	return strconv.FormatFloat(round2(v), 'f', -1, 64)
}
