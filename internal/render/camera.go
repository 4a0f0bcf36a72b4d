package render

// Camera translates between grid cells and screen cells. Every grid cell is
// two terminal columns wide so that emoji markers fit.
type Camera struct {
	OffsetX    int
	OffsetY    int
	ViewWidth  int // in terminal columns
	ViewHeight int // in terminal rows
}

// NewCamera creates a camera centred on cell (cx, cy).
func NewCamera(cx, cy, viewW, viewH int) *Camera {
	c := &Camera{ViewWidth: viewW, ViewHeight: viewH}
	c.Center(cx, cy)
	return c
}

// Center moves the camera so that cell (cx, cy) is in the middle of the view.
func (c *Camera) Center(cx, cy int) {
	c.OffsetX = cx - (c.ViewWidth/2)/2
	c.OffsetY = cy - c.ViewHeight/2
}

// Pan shifts the view by (dx, dy) cells.
func (c *Camera) Pan(dx, dy int) {
	c.OffsetX += dx
	c.OffsetY += dy
}

// WorldToScreen converts cell (wx, wy) to screen (sx, sy).
// visible is false when the cell falls outside the viewport.
func (c *Camera) WorldToScreen(wx, wy int) (sx, sy int, visible bool) {
	sx = (wx - c.OffsetX) * 2
	sy = wy - c.OffsetY
	visible = sx >= 0 && sx+1 < c.ViewWidth && sy >= 0 && sy < c.ViewHeight
	return
}

// ScreenToWorld converts screen (sx, sy) to the cell under it. ok is false
// outside the viewport.
func (c *Camera) ScreenToWorld(sx, sy int) (wx, wy int, ok bool) {
	if sx < 0 || sx >= c.ViewWidth || sy < 0 || sy >= c.ViewHeight {
		return 0, 0, false
	}
	return sx/2 + c.OffsetX, sy + c.OffsetY, true
}
