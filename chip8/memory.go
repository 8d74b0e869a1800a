/* Copyright (c) 2017 Jeffrey Massung
 *
 * This software is provided 'as-is', without any express or implied
 * warranty.  In no event will the authors be held liable for any damages
 * arising from the use of this software.
 *
 * Permission is granted to anyone to use this software for any purpose,
 * including commercial applications, and to alter it and redistribute it
 * freely, subject to the following restrictions:
 *
 * 1. The origin of this software must not be misrepresented; you must not
 *    claim that you wrote the original software. If you use this software
 *    in a product, an acknowledgment in the product documentation would be
 *    appreciated but is not required.
 *
 * 2. Altered source versions must be plainly marked as such, and must not be
 *    misrepresented as being the original software.
 *
 * 3. This notice may not be removed or altered from any source distribution.
 */

package chip8

// ProgramStart is the address every ROM image is copied to.
const ProgramStart = 0x200

// Memory is the flat, byte-addressable RAM of the machine. It is 0x1000
// bytes on classic and Super-CHIP dialects, 0x10000 bytes on XO-CHIP.
//
// Block operations (read, write, move, zero) are the ones the framebuffer
// and load/store opcodes actually need, so those are what this type
// exposes rather than generic slice access.
type Memory struct {
	bytes []byte
}

// NewMemory allocates a zeroed memory bank of the given size.
func NewMemory(size int) *Memory {
	return &Memory{bytes: make([]byte, size)}
}

// Size returns the number of addressable bytes.
func (m *Memory) Size() int {
	return len(m.bytes)
}

// Read returns a single byte. The caller is responsible for bounds-checking
// when the address comes from guest-controlled state (see Machine.checkAddr).
func (m *Memory) Read(addr uint32) byte {
	return m.bytes[addr]
}

// Write stores a single byte.
func (m *Memory) Write(addr uint32, b byte) {
	m.bytes[addr] = b
}

// ReadBlock returns a slice view of size bytes starting at addr. The slice
// aliases the underlying memory; callers must not retain it across writes.
func (m *Memory) ReadBlock(addr uint32, size int) []byte {
	return m.bytes[addr : addr+uint32(size)]
}

// WriteBlock copies block into memory starting at addr.
func (m *Memory) WriteBlock(addr uint32, block []byte) {
	copy(m.bytes[addr:], block)
}

// ZeroBlock clears size bytes starting at addr.
func (m *Memory) ZeroBlock(addr uint32, size int) {
	block := m.bytes[addr : addr+uint32(size)]
	for i := range block {
		block[i] = 0
	}
}

// Clear zeroes the entire bank.
func (m *Memory) Clear() {
	for i := range m.bytes {
		m.bytes[i] = 0
	}
}

// Move shifts the entire bank's contents by offset bytes. A positive offset
// moves contents toward higher addresses (down-scroll), a negative offset
// toward lower addresses (up-scroll); vacated bytes are left untouched and
// must be zeroed separately by the caller. The framebuffer does not use it:
// its planes are separate buffers that scroll themselves.
func (m *Memory) Move(offset int) {
	if offset == 0 {
		return
	}

	if offset > 0 {
		copy(m.bytes[offset:], m.bytes[:len(m.bytes)-offset])
	} else {
		copy(m.bytes[:len(m.bytes)+offset], m.bytes[-offset:])
	}
}
