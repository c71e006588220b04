// Package tui is an interactive terminal host for the layout engine.
// Terminal cells map onto engine pixels at a fixed scale so the mouse
// coordinates line up with the viewport transform.
package tui

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/skillscape/skillscape/engine"
	"github.com/skillscape/skillscape/graph"
	"github.com/skillscape/skillscape/render"
	"github.com/skillscape/skillscape/view"
)

// Terminal cells are roughly twice as tall as wide; the scale keeps
// layouts from looking squashed.
const (
	cellW = 10.0
	cellH = 20.0

	frameRate = 30
)

var categoryStyles = map[graph.Category]tcell.Style{
	graph.CategoryAnchor:     tcell.StyleDefault.Foreground(tcell.ColorPurple).Bold(true),
	graph.CategoryOccupation: tcell.StyleDefault.Foreground(tcell.ColorBlue),
	graph.CategorySkillGroup: tcell.StyleDefault.Foreground(tcell.ColorTeal),
	graph.CategorySkill:      tcell.StyleDefault.Foreground(tcell.ColorGreen),
}

// Run opens the viewer and blocks until the user quits.
func Run(g *graph.Graph, cfg engine.Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("opening screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()

	cols, rows := screen.Size()
	cfg.Width = float64(cols) * cellW
	cfg.Height = float64(rows-1) * cellH

	eng := engine.New(cfg)

	status := ""
	eng.OnNodeClick(func(n graph.Node) {
		if eng.CompleteNode(n.ID) {
			status = fmt.Sprintf("completed: %s", n.Label)
		}
	})
	eng.OnNodeHover(func(n *graph.Node) {
		if n == nil {
			status = ""
			return
		}
		status = fmt.Sprintf("%s (%s)", n.Label, n.Category)
	})

	eng.SetGraph(g)

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(quit)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(time.Second / frameRate)
	defer ticker.Stop()

	dragging := false
	draw(screen, eng, status)

	for {
		select {
		case <-quit:
			return nil
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch {
				case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q':
					return nil
				case ev.Rune() == 'r':
					eng.ResetView()
				case ev.Rune() == '+' || ev.Rune() == '=':
					eng.SetZoom(eng.Viewport().Zoom * 1.2)
				case ev.Rune() == '-':
					eng.SetZoom(eng.Viewport().Zoom / 1.2)
				}
			case *tcell.EventMouse:
				cx, cy := ev.Position()
				px, py := float64(cx)*cellW+cellW/2, float64(cy)*cellH+cellH/2
				switch {
				case ev.Buttons()&tcell.ButtonPrimary != 0:
					if dragging {
						eng.PointerMove(px, py)
					} else {
						eng.PointerDown(px, py)
						dragging = true
					}
				case ev.Buttons()&tcell.WheelUp != 0:
					eng.Wheel(-120, px, py)
				case ev.Buttons()&tcell.WheelDown != 0:
					eng.Wheel(120, px, py)
				default:
					if dragging {
						eng.PointerUp(px, py)
						dragging = false
					} else {
						eng.PointerMove(px, py)
					}
				}
			case *tcell.EventResize:
				cols, rows = screen.Size()
				eng.Resize(float64(cols)*cellW, float64(rows-1)*cellH)
				screen.Sync()
			}
		case <-ticker.C:
			if eng.Tick(1.0/frameRate) || status != "" {
				draw(screen, eng, status)
			}
		}
	}
}

func draw(screen tcell.Screen, eng *engine.Engine, status string) {
	screen.Clear()
	cols, rows := screen.Size()
	vp := eng.Viewport()
	frame := eng.Frame()

	toCell := func(wx, wy float64) (int, int) {
		sx, sy := vp.WorldToScreen(wx, wy)
		return int(sx / cellW), int(sy / cellH)
	}

	pos := make(map[string][2]int, len(frame.Nodes))
	for _, fn := range frame.Nodes {
		x, y := toCell(fn.X, fn.Y)
		pos[fn.Node.ID] = [2]int{x, y}
	}

	edgeStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)
	for _, e := range frame.Edges {
		s, okS := pos[e.Source]
		t, okT := pos[e.Target]
		if !okS || !okT {
			continue
		}
		drawLine(screen, s[0], s[1], t[0], t[1], cols, rows-1, edgeStyle)
	}

	for _, fn := range frame.Nodes {
		n := fn.Node
		if n.State == graph.StateHidden {
			continue
		}
		c, ok := pos[n.ID]
		if !ok || c[0] < 0 || c[0] >= cols || c[1] < 0 || c[1] >= rows-1 {
			continue
		}
		style, found := categoryStyles[n.Category]
		if !found {
			style = tcell.StyleDefault
		}
		if n.State == graph.StateCompleted {
			style = style.Reverse(true)
		}
		screen.SetContent(c[0], c[1], render.CellFor(n.Category), nil, style)

		if frame.Detail == view.DetailFull {
			for i, r := range n.Label {
				x := c[0] - len(n.Label)/2 + i
				if x >= 0 && x < cols && c[1]+1 < rows-1 {
					screen.SetContent(x, c[1]+1, r, nil, tcell.StyleDefault)
				}
			}
		}
	}

	drawStatus(screen, eng, status, cols, rows)
	screen.Show()
}

func drawStatus(screen tcell.Screen, eng *engine.Engine, status string, cols, rows int) {
	p := eng.Progress()
	line := fmt.Sprintf(" zoom %.2f | %d/%d loaded", eng.Viewport().Zoom, p.Loaded, p.Total)
	if status != "" {
		line += " | " + status
	}
	line += " | q quit, r reset"
	style := tcell.StyleDefault.Reverse(true)
	for x := 0; x < cols; x++ {
		r := ' '
		if x < len(line) {
			r = rune(line[x])
		}
		screen.SetContent(x, rows-1, r, nil, style)
	}
}

// drawLine walks a Bresenham line, skipping cells outside the canvas.
func drawLine(screen tcell.Screen, x1, y1, x2, y2, cols, rows int, style tcell.Style) {
	dx, dy := abs(x2-x1), abs(y2-y1)
	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}
	err := dx - dy
	for {
		if x1 >= 0 && x1 < cols && y1 >= 0 && y1 < rows {
			screen.SetContent(x1, y1, '.', nil, style)
		}
		if x1 == x2 && y1 == y2 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
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
