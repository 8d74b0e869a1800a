package chip8

// opCLS clears every selected plane (00E0).
func opCLS(m *Machine, word uint16) error {
	m.FB.Clear()
	return nil
}

// opLoRes switches to the classic 64x32 resolution (00FE).
func opLoRes(m *Machine, word uint16) error {
	m.FB.Resize(64, 32)
	return nil
}

// opHiRes switches to the Super-CHIP 128x64 resolution (00FF).
func opHiRes(m *Machine, word uint16) error {
	m.FB.Resize(128, 64)
	return nil
}

// scrollDistance resolves a nibble-encoded or fixed scroll distance to a
// low-res pixel count. In 64-wide (low-res) mode the distance is halved,
// since the nibble is expressed in hi-res grid units (spec section 4.9's
// resolved Open Question on half-pixel scrolling: the distance rounds down
// rather than erroring).
func (m *Machine) scrollDistance(n int) int {
	w, _ := m.FB.Size()
	if w == 64 {
		return n / 2
	}
	return n
}

// opScrollDown scrolls selected planes down by N rows (00CN, Super-CHIP 1.1
// and later).
func opScrollDown(m *Machine, word uint16) error {
	m.FB.ScrollDown(m.scrollDistance(int(opN(word))))
	return nil
}

// opScrollUp scrolls selected planes up by N rows (00DN, XO-CHIP).
func opScrollUp(m *Machine, word uint16) error {
	m.FB.ScrollUp(m.scrollDistance(int(opN(word))))
	return nil
}

// opScrollRight scrolls selected planes right by 4 pixels, or 2 in 64-wide
// low-res mode (00FB).
func opScrollRight(m *Machine, word uint16) error {
	m.FB.ScrollRight(m.scrollDistance(4))
	return nil
}

// opScrollLeft scrolls selected planes left by 4 pixels, or 2 in 64-wide
// low-res mode (00FC).
func opScrollLeft(m *Machine, word uint16) error {
	m.FB.ScrollLeft(m.scrollDistance(4))
	return nil
}

// opPlaneMask selects which planes subsequent drawing, scrolling and
// clearing affect (FN01, XO-CHIP). N is encoded in the opcode's second
// nibble, not the usual operand byte.
func opPlaneMask(m *Machine, word uint16) error {
	m.FB.SetPlaneMask(opX(word) & 0xF)
	return nil
}

// opLoadPattern copies 16 bytes starting at I into the audio pattern
// buffer and hands it to the Audio port along with the current pitch
// (F002, XO-CHIP).
func opLoadPattern(m *Machine, word uint16) error {
	base := uint32(m.Reg.I)
	if err := m.checkAddr(word, base+15); err != nil {
		return err
	}

	copy(m.pattern[:], m.Mem.ReadBlock(base, 16))
	m.audio.SetPattern(m.pattern, m.pitchHz())
	return nil
}

// opDRW draws an 8xN (or, when n is zero on Super-CHIP and later, 16x16 in
// hi-res mode and 8x16 in low-res mode) sprite at (Vx, Vy) on every selected plane, XORing it onto the
// framebuffer (DXYN, spec section 4.5).
//
// When the sprite_delay quirk is active, a DXYN that has already drawn
// once this tick is re-entered rather than executed: PC is rewound so the
// same instruction is re-fetched next Step, cooperatively yielding until
// the next 60Hz tick clears the gate (spec section 5; this differs from
// scchip/cpu.py._Dxyn's busy-wait by design).
func opDRW(m *Machine, word uint16) error {
	if m.preset.Quirks.SpriteDelay && m.spriteDrawnThisTick {
		m.Reg.PC -= 2
		return nil
	}

	x := int(m.Reg.V[opX(word)])
	y := int(m.Reg.V[opY(word)])
	n := opN(word)

	// N=0 is a plain CHIP-8 no-op (zero-height sprite); on Super-CHIP and
	// later it means the big sprite, which is 8x16 in low-res mode and
	// 16x16 in hi-res mode (cpu.py._Dxyn).
	width, height := 8, int(n)
	if n == 0 {
		switch {
		case m.preset.Arch < ArchSuperCHIP10:
			height = 0
		default:
			fbWidth, _ := m.FB.Size()
			width = 16
			if fbWidth == 64 {
				width = 8
			}
			height = 16
		}
	}

	planes := m.FB.selectedPlanes()
	rows := make(map[int][]uint16, len(planes))
	addr := uint32(m.Reg.I)

	for _, p := range planes {
		rowBits := make([]uint16, height)
		for r := 0; r < height; r++ {
			if width == 8 {
				if err := m.checkAddr(word, addr); err != nil {
					return err
				}
				rowBits[r] = uint16(m.Mem.Read(addr)) << 8
				addr++
			} else {
				if err := m.checkAddr(word, addr+1); err != nil {
					return err
				}
				hi := uint16(m.Mem.Read(addr))
				lo := uint16(m.Mem.Read(addr + 1))
				rowBits[r] = hi<<8 | lo
				addr += 2
			}
		}
		rows[p] = rowBits
	}

	hits := m.FB.Blit(x, y, width, height, m.preset.Quirks.ScreenWrap, func(plane, row int) uint16 {
		return rows[plane][row]
	})

	if m.preset.CountsRows {
		m.Reg.V[0xF] = byte(hits)
	} else if hits > 0 {
		m.Reg.V[0xF] = 1
	} else {
		m.Reg.V[0xF] = 0
	}

	m.spriteDrawnThisTick = true
	return nil
}
