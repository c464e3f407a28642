package render

// Viewport computes camera coordinates for a player's view. World y grows
// upward, so the top screen row shows the highest visible y.
type Viewport struct {
	CamX, CamY   int // bottom-left world coordinate
	ViewW, ViewH int // viewport size in tiles
}

// NewViewport centers the camera on the focus tile, clamped to map edges.
// A map smaller than the view on an axis is centered on that axis.
func NewViewport(focusX, focusY, viewW, viewH, mapW, mapH int) Viewport {
	return Viewport{
		CamX:  camAxis(focusX, viewW, mapW),
		CamY:  camAxis(focusY, viewH, mapH),
		ViewW: viewW,
		ViewH: viewH,
	}
}

func camAxis(focus, view, size int) int {
	if size < view {
		return -(view - size) / 2
	}
	cam := focus - view/2
	if cam < 0 {
		cam = 0
	}
	if cam+view > size {
		cam = size - view
	}
	return cam
}

// WorldToScreen converts world coordinates to a 0-based view column and
// row. Returns -1,-1 if the world position is outside the viewport.
func (v Viewport) WorldToScreen(wx, wy int) (int, int) {
	col := wx - v.CamX
	row := v.ViewH - 1 - (wy - v.CamY)
	if col < 0 || col >= v.ViewW || row < 0 || row >= v.ViewH {
		return -1, -1
	}
	return col, row
}

// ScreenToWorld converts a 0-based view column and row to world coordinates.
func (v Viewport) ScreenToWorld(col, row int) (int, int) {
	return v.CamX + col, v.CamY + v.ViewH - 1 - row
}
