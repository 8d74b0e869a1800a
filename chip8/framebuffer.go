package chip8

// Framebuffer owns up to four independent bit-packed monochrome planes.
// Colour index of a pixel is the concatenation of its bits across planes
// 0..N-1 (spec section 3); the framebuffer itself never resolves that to an
// actual colour -- that's the Display port's job once it receives a
// snapshot via Present.
//
// Pixels are stored one bit per pixel, row-major, MSB first, following the
// teacher's chip8.Video layout (chip8/chip8.go's Video field) generalized
// from one plane to N. scchip/framebuffer.py instead stores one byte per
// pixel per plane for simplicity; bit-packing is kept here because spec
// section 4.5 calls it out explicitly as the required storage strategy.
type Framebuffer struct {
	width, height int
	stride        int // bytes per row
	numPlanes     int // total planes this architecture supports (1, 2 or 4)
	planeMask     uint8
	planes        [4][]byte
}

// NewFramebuffer allocates a framebuffer supporting numPlanes planes,
// booted at the classic 64x32 resolution (spec section 4.5).
func NewFramebuffer(numPlanes int) *Framebuffer {
	fb := &Framebuffer{numPlanes: numPlanes, planeMask: 1}
	fb.Resize(64, 32)
	return fb
}

// Resize changes resolution, clearing every plane and keeping the plane
// mask (spec section 4.5, "Mode change"). Used by 00FE/00FF.
func (fb *Framebuffer) Resize(w, h int) {
	fb.width = w
	fb.height = h
	fb.stride = w / 8

	for p := 0; p < fb.numPlanes; p++ {
		fb.planes[p] = make([]byte, fb.stride*h)
	}
}

// Size returns the current resolution.
func (fb *Framebuffer) Size() (int, int) {
	return fb.width, fb.height
}

// SetPlaneMask selects which planes subsequent blits, scrolls and clears
// affect (FN01, XO-CHIP only; always 1 on earlier dialects).
func (fb *Framebuffer) SetPlaneMask(mask uint8) {
	fb.planeMask = mask
}

// PlaneMask returns the currently selected plane mask.
func (fb *Framebuffer) PlaneMask() uint8 {
	return fb.planeMask
}

// selectedPlanes returns the indices of planes the current mask affects.
func (fb *Framebuffer) selectedPlanes() []int {
	var sel []int
	for p := 0; p < fb.numPlanes; p++ {
		if fb.planeMask&(1<<p) != 0 {
			sel = append(sel, p)
		}
	}
	return sel
}

// Clear blanks every selected plane (00E0).
func (fb *Framebuffer) Clear() {
	for _, p := range fb.selectedPlanes() {
		plane := fb.planes[p]
		for i := range plane {
			plane[i] = 0
		}
	}
}

// getPixel reports whether the pixel at (x, y) is set on plane p. x and y
// must already be in range.
func (fb *Framebuffer) getPixel(p, x, y int) bool {
	byteIdx := y*fb.stride + x/8
	bit := byte(0x80 >> (x % 8))
	return fb.planes[p][byteIdx]&bit != 0
}

// setPixel unconditionally sets or clears the pixel at (x, y) on plane p.
func (fb *Framebuffer) setPixel(p, x, y int, on bool) {
	byteIdx := y*fb.stride + x/8
	bit := byte(0x80 >> (x % 8))

	if on {
		fb.planes[p][byteIdx] |= bit
	} else {
		fb.planes[p][byteIdx] &^= bit
	}
}

// Blit XORs an N-row sprite (8 or 16 pixels wide) onto every selected
// plane at (x, y), following spec section 4.5's DXYN semantics. spriteRows
// is indexed [plane][row], each element holding the row's bits left-
// justified in a uint16, MSB first (so an 8-wide row uses only bits
// 15..8). It returns the number of sprite rows, across all selected
// planes, that collided with an already-set pixel -- callers translate that
// into VF themselves, since whether VF is the row count or a plain 0/1
// depends on the architecture (spec section 4.5; scchip/cpu.py._Dxyn).
func (fb *Framebuffer) Blit(x, y, width, height int, wrap bool, spriteRows func(plane, row int) uint16) int {
	rowsCollided := 0
	startX := ((x % fb.width) + fb.width) % fb.width
	startY := ((y % fb.height) + fb.height) % fb.height

	for _, p := range fb.selectedPlanes() {
		for row := 0; row < height; row++ {
			bits := spriteRows(p, row)
			scrY := startY + row
			rowHit := false

			if !wrap && scrY >= fb.height {
				continue
			}
			if wrap {
				scrY %= fb.height
			}

			for col := 0; col < width; col++ {
				if bits&(0x8000>>col) == 0 {
					continue
				}

				scrX := startX + col
				if !wrap {
					if scrX >= fb.width {
						continue
					}
				} else {
					scrX %= fb.width
				}

				was := fb.getPixel(p, scrX, scrY)
				fb.setPixel(p, scrX, scrY, !was)
				if was {
					rowHit = true
				}
			}

			if rowHit {
				rowsCollided++
			}
		}
	}

	return rowsCollided
}

// ScrollDown shifts selected planes down by rows, per 00CN.
func (fb *Framebuffer) ScrollDown(rows int) {
	if rows <= 0 {
		return
	}
	for _, p := range fb.selectedPlanes() {
		fb.shiftRows(p, rows)
	}
}

// ScrollUp shifts selected planes up by rows, per 00DN (XO-CHIP).
func (fb *Framebuffer) ScrollUp(rows int) {
	if rows <= 0 {
		return
	}
	for _, p := range fb.selectedPlanes() {
		fb.shiftRows(p, -rows)
	}
}

// ScrollRight shifts selected planes right by cols, per 00FB.
func (fb *Framebuffer) ScrollRight(cols int) {
	if cols <= 0 {
		return
	}
	for _, p := range fb.selectedPlanes() {
		fb.shiftCols(p, cols)
	}
}

// ScrollLeft shifts selected planes left by cols, per 00FC.
func (fb *Framebuffer) ScrollLeft(cols int) {
	if cols <= 0 {
		return
	}
	for _, p := range fb.selectedPlanes() {
		fb.shiftCols(p, -cols)
	}
}

// shiftRows moves plane p's pixels by delta rows (positive = down,
// negative = up), filling vacated rows with zero. Rows are always a whole
// number of bytes (stride), so each row is copied as a byte slice into a
// fresh buffer; shiftCols below works pixel by pixel, since column shifts
// are sub-byte.
func (fb *Framebuffer) shiftRows(p, delta int) {
	plane := fb.planes[p]
	shifted := make([]byte, len(plane))

	for y := 0; y < fb.height; y++ {
		srcY := y - delta
		if srcY < 0 || srcY >= fb.height {
			continue
		}
		copy(shifted[y*fb.stride:(y+1)*fb.stride], plane[srcY*fb.stride:(srcY+1)*fb.stride])
	}

	copy(plane, shifted)
}

// shiftCols moves plane p's pixels by delta columns (positive = right,
// negative = left), filling vacated columns with zero.
func (fb *Framebuffer) shiftCols(p, delta int) {
	for y := 0; y < fb.height; y++ {
		if delta > 0 {
			for x := fb.width - 1; x >= 0; x-- {
				srcX := x - delta
				fb.setPixel(p, x, y, srcX >= 0 && fb.getPixel(p, srcX, y))
			}
		} else {
			for x := 0; x < fb.width; x++ {
				srcX := x - delta
				fb.setPixel(p, x, y, srcX < fb.width && fb.getPixel(p, srcX, y))
			}
		}
	}
}

// Planes returns a read-only snapshot of every plane's raw bytes, for
// Display.Present. Callers must not retain the returned slices past the
// call -- they alias the framebuffer's own storage (spec section 5).
func (fb *Framebuffer) Planes() [][]byte {
	out := make([][]byte, fb.numPlanes)
	for p := 0; p < fb.numPlanes; p++ {
		out[p] = fb.planes[p]
	}
	return out
}
