package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rgehrsitz/coastfi/internal/domain"
	"github.com/rgehrsitz/coastfi/internal/tui/tuistyles"
)

// DataSeries is one plotted line
type DataSeries struct {
	Name   string
	Points []float64
	Color  lipgloss.Color
	Char   rune
}

// ASCIIChart plots one or more series against an integer x axis (ages)
type ASCIIChart struct {
	Title  string
	Series []*DataSeries
	XStart int
	Marker int // x value drawn as a vertical rule, 0 for none
	Width  int
	Height int
}

const yAxisWidth = 9

// NewASCIIChart creates a new chart
func NewASCIIChart(title string) *ASCIIChart {
	return &ASCIIChart{
		Title:  title,
		Width:  60,
		Height: 12,
	}
}

// AddSeries adds a data series to the chart
func (c *ASCIIChart) AddSeries(name string, points []float64, color lipgloss.Color, char rune) *ASCIIChart {
	c.Series = append(c.Series, &DataSeries{Name: name, Points: points, Color: color, Char: char})
	return c
}

// WithSize sets the chart dimensions, including the y axis
func (c *ASCIIChart) WithSize(width, height int) *ASCIIChart {
	c.Width = width
	c.Height = height
	return c
}

// ProjectionChart plots nominal and real value by age with the retirement age marked
func ProjectionChart(points []domain.InvestmentProjection, retirementAge int) *ASCIIChart {
	nominal := make([]float64, len(points))
	realValues := make([]float64, len(points))
	for i, p := range points {
		nominal[i] = p.Value
		realValues[i] = p.RealValue
	}

	chart := NewASCIIChart("Portfolio value by age").
		AddSeries("Nominal", nominal, tuistyles.ColorChartLine1, '●').
		AddSeries("Today's dollars", realValues, tuistyles.ColorChartLine2, '·')
	if len(points) > 0 {
		chart.XStart = points[0].Age
	}
	chart.Marker = retirementAge
	return chart
}

// Render draws the chart
func (c *ASCIIChart) Render() string {
	n := c.length()
	if n == 0 {
		return tuistyles.InfoStyle.Render("No data to display")
	}

	plotWidth := c.Width - yAxisWidth - 3
	if plotWidth < 2 {
		plotWidth = 2
	}
	height := c.Height
	if height < 2 {
		height = 2
	}

	minVal, maxVal := c.bounds()
	grid := make([][]rune, height)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", plotWidth))
	}

	col := func(i int) int {
		if n == 1 {
			return 0
		}
		return int(math.Round(float64(i) / float64(n-1) * float64(plotWidth-1)))
	}
	row := func(v float64) int {
		return height - 1 - int(math.Round((v-minVal)/(maxVal-minVal)*float64(height-1)))
	}

	if c.Marker >= c.XStart && c.Marker < c.XStart+n {
		x := col(c.Marker - c.XStart)
		for y := range grid {
			grid[y][x] = '┊'
		}
	}

	for _, s := range c.Series {
		for i, v := range s.Points {
			if !domain.IsFinite(v) {
				continue
			}
			x, y := col(i), row(v)
			if i > 0 && domain.IsFinite(s.Points[i-1]) {
				drawLine(grid, col(i-1), row(s.Points[i-1]), x, y, s.Char)
			}
			if y >= 0 && y < height {
				grid[y][x] = s.Char
			}
		}
	}

	var out strings.Builder
	if c.Title != "" {
		out.WriteString(tuistyles.TitleStyle.Render(c.Title))
		out.WriteString("\n")
	}

	axis := lipgloss.NewStyle().Foreground(tuistyles.ColorMuted).Width(yAxisWidth).Align(lipgloss.Right)
	for y, line := range grid {
		label := ""
		if y == 0 || y == height-1 || y == height/2 {
			label = formatChartValue(maxVal - float64(y)/float64(height-1)*(maxVal-minVal))
		}
		out.WriteString(axis.Render(label))
		out.WriteString(" │ ")
		out.WriteString(c.colorize(string(line)))
		out.WriteString("\n")
	}
	out.WriteString(strings.Repeat(" ", yAxisWidth))
	out.WriteString(" └")
	out.WriteString(strings.Repeat("─", plotWidth+1))
	out.WriteString("\n")
	out.WriteString(c.xLabels(plotWidth, n))
	out.WriteString("\n")
	out.WriteString(c.legend())
	return out.String()
}

func (c *ASCIIChart) length() int {
	n := 0
	for _, s := range c.Series {
		if len(s.Points) > n {
			n = len(s.Points)
		}
	}
	return n
}

// bounds spans every finite point, starting at zero for non-negative data
func (c *ASCIIChart) bounds() (float64, float64) {
	minVal, maxVal := math.Inf(1), math.Inf(-1)
	for _, s := range c.Series {
		for _, v := range s.Points {
			if !domain.IsFinite(v) {
				continue
			}
			minVal = math.Min(minVal, v)
			maxVal = math.Max(maxVal, v)
		}
	}
	if math.IsInf(minVal, 1) {
		return 0, 1
	}
	if minVal > 0 {
		minVal = 0
	}
	if maxVal == minVal {
		maxVal = minVal + 1
	}
	return minVal, maxVal
}

func (c *ASCIIChart) colorize(line string) string {
	var b strings.Builder
	for _, r := range line {
		styled := false
		for _, s := range c.Series {
			if r == s.Char {
				b.WriteString(lipgloss.NewStyle().Foreground(s.Color).Render(string(r)))
				styled = true
				break
			}
		}
		if !styled {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func (c *ASCIIChart) xLabels(plotWidth, n int) string {
	first := fmt.Sprintf("%d", c.XStart)
	last := fmt.Sprintf("%d", c.XStart+n-1)
	gap := plotWidth - len(first) - len(last)
	if gap < 1 {
		gap = 1
	}
	label := first + strings.Repeat(" ", gap) + last
	return strings.Repeat(" ", yAxisWidth+3) + tuistyles.SubtitleStyle.Render(label)
}

func (c *ASCIIChart) legend() string {
	items := make([]string, 0, len(c.Series)+1)
	for _, s := range c.Series {
		symbol := lipgloss.NewStyle().Foreground(s.Color).Render(string(s.Char))
		items = append(items, symbol+" "+s.Name)
	}
	if c.Marker > 0 {
		items = append(items, fmt.Sprintf("┊ retirement (%d)", c.Marker))
	}
	return tuistyles.SubtitleStyle.Render(strings.Join(items, "  •  "))
}

// drawLine fills the cells between two points with Bresenham's algorithm, leaving set cells alone
func drawLine(grid [][]rune, x0, y0, x1, y1 int, char rune) {
	dx, dy := abs(x1-x0), abs(y1-y0)
	sx, sy := -1, -1
	if x0 < x1 {
		sx = 1
	}
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		if y0 >= 0 && y0 < len(grid) && x0 >= 0 && x0 < len(grid[y0]) && grid[y0][x0] == ' ' {
			grid[y0][x0] = char
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

func formatChartValue(value float64) string {
	switch {
	case math.Abs(value) >= 1_000_000:
		return fmt.Sprintf("$%.1fM", value/1_000_000)
	case math.Abs(value) >= 1000:
		return fmt.Sprintf("$%.0fK", value/1000)
	default:
		return fmt.Sprintf("$%.0f", value)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
