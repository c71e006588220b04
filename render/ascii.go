package render

import (
	"strings"

	"github.com/skillscape/skillscape/graph"
	"github.com/skillscape/skillscape/view"
)

// ASCIIRenderer draws the frame as a character grid for terminals and
// snapshot tests. One cell covers roughly 10×20 screen pixels to keep
// the aspect ratio plausible.
type ASCIIRenderer struct{}

// Name returns the backend name.
func (r *ASCIIRenderer) Name() string { return "ascii" }

// CellFor returns the grid glyph for a node category.
func CellFor(c graph.Category) rune {
	switch c {
	case graph.CategoryAnchor:
		return '@'
	case graph.CategoryOccupation:
		return 'O'
	case graph.CategorySkillGroup:
		return '#'
	default:
		return '*'
	}
}

// Render rasterizes edges then nodes onto the grid; nodes win cell
// conflicts.
func (r *ASCIIRenderer) Render(frame view.Frame, vp *view.Viewport, options *Options) ([]byte, error) {
	width := int(vp.Width / 10)
	height := int(vp.Height / 20)
	if width < 40 {
		width = 40
	}
	if height < 20 {
		height = 20
	}

	grid := make([][]rune, height)
	for i := range grid {
		grid[i] = make([]rune, width)
		for j := range grid[i] {
			grid[i][j] = ' '
		}
	}

	toCell := func(wx, wy float64) (int, int) {
		sx, sy := vp.WorldToScreen(wx, wy)
		return int(sx / vp.Width * float64(width)), int(sy / vp.Height * float64(height))
	}

	pos := make(map[string][2]int, len(frame.Nodes))
	for _, fn := range frame.Nodes {
		x, y := toCell(fn.X, fn.Y)
		pos[fn.Node.ID] = [2]int{x, y}
	}

	for _, e := range frame.Edges {
		s, okS := pos[e.Source]
		t, okT := pos[e.Target]
		if !okS || !okT {
			continue
		}
		drawLine(grid, s[0], s[1], t[0], t[1])
	}

	for _, fn := range frame.Nodes {
		n := fn.Node
		if n.State == graph.StateHidden {
			continue
		}
		p := pos[n.ID]
		if p[1] < 0 || p[1] >= height || p[0] < 0 || p[0] >= width {
			continue
		}
		grid[p[1]][p[0]] = CellFor(n.Category)

		if options.ShowLabels && n.Label != "" && frame.Detail == view.DetailFull && p[1]+1 < height {
			label := n.Label
			if p[0]+len(label) > width {
				label = label[:width-p[0]]
			}
			for i := 0; i < len(label); i++ {
				grid[p[1]+1][p[0]+i] = rune(label[i])
			}
		}
	}

	var out strings.Builder
	for _, row := range grid {
		out.WriteString(string(row))
		out.WriteByte('\n')
	}
	return []byte(out.String()), nil
}

// drawLine plots a Bresenham line, never overwriting node glyphs.
func drawLine(grid [][]rune, x1, y1, x2, y2 int) {
	dx := abs(x2 - x1)
	dy := -abs(y2 - y1)
	sx := 1
	if x1 >= x2 {
		sx = -1
	}
	sy := 1
	if y1 >= y2 {
		sy = -1
	}
	err := dx + dy

	for {
		if y1 >= 0 && y1 < len(grid) && x1 >= 0 && x1 < len(grid[y1]) {
			if grid[y1][x1] == ' ' {
				grid[y1][x1] = '.'
			}
		}
		if x1 == x2 && y1 == y2 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			if x1 == x2 {
				return
			}
			err += dy
			x1 += sx
		}
		if e2 <= dx {
			if y1 == y2 {
				return
			}
			err += dx
			y1 += sy
		}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
