package desktop

import "github.com/dashy/dashy/internal/model"

// dockMargin keeps a gap between a dragged window's bottom edge and
// the dock, so windows can never be parked underneath it.
const dockMargin = 1

// closeControlWidth is how many header cells from the left edge act as
// the close control.
const closeControlWidth = 3

// Window is the floating window controller for one widget instance.
// It owns the drag state machine (Idle → Dragging → Idle) and the
// clamping math; committed positions are reported back to the surface
// by the caller.
type Window struct {
	Instance *model.WidgetInstance

	// Width and Height are the rendered footprint in cells, resolved
	// from the render registry at construction.
	Width  int
	Height int

	dragging bool
	dragOffX int
	dragOffY int
}

// Contains reports whether the cell lies inside the window rect.
func (w *Window) Contains(x, y int) bool {
	p := w.Instance.Position
	return x >= p.X && x < p.X+w.Width && y >= p.Y && y < p.Y+w.Height
}

// InHeader reports whether the cell lies on the window's header row.
// Only the header starts a drag; presses on the body focus without
// dragging.
func (w *Window) InHeader(x, y int) bool {
	p := w.Instance.Position
	return y == p.Y && x >= p.X && x < p.X+w.Width
}

// InCloseControl reports whether the cell lies on the close control at
// the left end of the header.
func (w *Window) InCloseControl(x, y int) bool {
	p := w.Instance.Position
	return y == p.Y && x >= p.X && x < p.X+closeControlWidth
}

// StartDrag transitions Idle → Dragging, recording the pointer offset
// relative to the window's top-left corner.
func (w *Window) StartDrag(pointerX, pointerY int) {
	w.dragging = true
	w.dragOffX = pointerX - w.Instance.Position.X
	w.dragOffY = pointerY - w.Instance.Position.Y
}

// DragTo computes the candidate position (pointer minus the recorded
// offset), clamps it to the viewport and above the dock, and commits
// it to the instance. It reports whether the position changed. Calls
// while Idle are ignored.
func (w *Window) DragTo(pointerX, pointerY int, vp Viewport) (int, int, bool) {
	if !w.dragging {
		return w.Instance.Position.X, w.Instance.Position.Y, false
	}

	x, y := ClampPosition(pointerX-w.dragOffX, pointerY-w.dragOffY, w.Width, w.Height, vp)
	if x == w.Instance.Position.X && y == w.Instance.Position.Y {
		return x, y, false
	}
	w.Instance.Position = model.Position{X: x, Y: y}
	return x, y, true
}

// EndDrag transitions back to Idle. Release is global: it applies no
// matter where the pointer is.
func (w *Window) EndDrag() {
	w.dragging = false
}

// Dragging reports whether the window is mid-drag.
func (w *Window) Dragging() bool {
	return w.dragging
}

// ClampPosition constrains a window's top-left corner so the whole
// rect stays inside the viewport, and above the dock (with a margin)
// when one is present.
func ClampPosition(x, y, width, height int, vp Viewport) (int, int) {
	maxX := vp.Width - width
	maxY := vp.Height - height
	if vp.DockTop > 0 {
		if dockMax := vp.DockTop - height - dockMargin; dockMax < maxY {
			maxY = dockMax
		}
	}

	if x > maxX {
		x = maxX
	}
	if x < 0 {
		x = 0
	}
	if y > maxY {
		y = maxY
	}
	if y < 0 {
		y = 0
	}
	return x, y
}
