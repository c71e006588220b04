// Package view owns the world/screen coordinate transform and the
// per-frame culling and level-of-detail selection.
package view

import "github.com/skillscape/skillscape/layout"

// Zoom clamp range.
const (
	MinZoom = 0.1
	MaxZoom = 3.0
)

// Viewport holds pan offset, zoom factor and screen dimensions. It is
// owned by the interaction controller; every other component only
// reads it.
type Viewport struct {
	Zoom   float64
	PanX   float64
	PanY   float64
	Width  float64
	Height float64
}

// New creates a viewport with the world origin at the screen center
// and zoom 1.
func New(width, height float64) *Viewport {
	vp := &Viewport{Width: width, Height: height}
	vp.Reset()
	return vp
}

// Reset restores zoom 1 with the world origin centered.
func (v *Viewport) Reset() {
	v.Zoom = 1
	v.PanX = v.Width / 2
	v.PanY = v.Height / 2
}

// Resize updates the screen dimensions. Pan and zoom are kept.
func (v *Viewport) Resize(width, height float64) {
	v.Width = width
	v.Height = height
}

// WorldToScreen maps a world point to screen pixels.
func (v *Viewport) WorldToScreen(wx, wy float64) (float64, float64) {
	return wx*v.Zoom + v.PanX, wy*v.Zoom + v.PanY
}

// ScreenToWorld maps a screen pixel to world coordinates; it is the
// inverse transform used for hit-testing and zoom anchoring.
func (v *Viewport) ScreenToWorld(sx, sy float64) (float64, float64) {
	return (sx - v.PanX) / v.Zoom, (sy - v.PanY) / v.Zoom
}

// Pan shifts the view by a screen-space delta.
func (v *Viewport) Pan(dx, dy float64) {
	v.PanX += dx
	v.PanY += dy
}

// SetZoom zooms anchored at the screen center.
func (v *Viewport) SetZoom(z float64) {
	v.ZoomAt(z, v.Width/2, v.Height/2)
}

// ZoomAt sets the zoom anchored at screen point (mx, my): the world
// point currently under the anchor stays under it after the change.
// Zoom is clamped to [MinZoom, MaxZoom].
func (v *Viewport) ZoomAt(z, mx, my float64) {
	if z < MinZoom {
		z = MinZoom
	} else if z > MaxZoom {
		z = MaxZoom
	}
	ratio := z / v.Zoom
	v.PanX = mx - (mx-v.PanX)*ratio
	v.PanY = my - (my-v.PanY)*ratio
	v.Zoom = z
}

// VisibleRect returns the world rectangle covered by the screen,
// padded on every side to avoid pop-in during fast pans.
func (v *Viewport) VisibleRect(padding float64) layout.Rect {
	return layout.Rect{
		Left:   (0-v.PanX)/v.Zoom - padding,
		Top:    (0-v.PanY)/v.Zoom - padding,
		Right:  (v.Width-v.PanX)/v.Zoom + padding,
		Bottom: (v.Height-v.PanY)/v.Zoom + padding,
	}
}
