package chip8

// Architecture selects one of the seven CHIP-8 family dialects the core
// understands. The ordering matters: several default quirks and opcode
// availability checks below are expressed as range comparisons against
// these values, following scchip/constants.py's ARCH_* ordering except
// that CHIP-48 sits below Super-CHIP 1.0 here (see schipOrLater).
type Architecture int

const (
	ArchCHIP8 Architecture = iota
	ArchCHIP8HiRes
	ArchCHIP48
	ArchSuperCHIP10
	ArchSuperCHIP11
	ArchXOCHIP
	ArchXOCHIP16
)

// String names the architecture the way CLI-style configuration would
// reference it (see scchip/constants.py's SUPPORTED_CPUS keys).
func (a Architecture) String() string {
	switch a {
	case ArchCHIP8:
		return "chip8"
	case ArchCHIP8HiRes:
		return "chip8hires"
	case ArchCHIP48:
		return "chip48"
	case ArchSuperCHIP10:
		return "schip1.0"
	case ArchSuperCHIP11:
		return "schip1.1"
	case ArchXOCHIP:
		return "xochip"
	case ArchXOCHIP16:
		return "xochip16"
	default:
		return "unknown"
	}
}

// Quirks selects between the historically divergent opcode behaviours
// described in spec section 4.8. A nil *bool override in Config leaves the
// architecture preset's default untouched; overrides are applied after the
// preset, matching the close of spec section 4.8.
type Quirks struct {
	Load           bool
	Shift          bool
	Logic          bool
	IndexOverflow  bool
	IndexIncrement bool
	Jump           bool
	SpriteDelay    bool
	ScreenWrap     bool
}

// QuirkOverrides lets a host force individual quirks away from the
// architecture's default. A nil field leaves the preset's value alone.
type QuirkOverrides struct {
	Load           *bool
	Shift          *bool
	Logic          *bool
	IndexOverflow  *bool
	IndexIncrement *bool
	Jump           *bool
	SpriteDelay    *bool
	ScreenWrap     *bool
}

// ArchitecturePreset is everything about a dialect that isn't a single
// instruction's behaviour: memory size, stack depth, index register width,
// plane count and default quirks. Resolution is not part of the preset:
// every architecture boots at 64x32 (Machine.Reset). Values are grounded
// on scchip/cpu.py.__init__'s quirk defaults and scchip/__init__.py's
// memory/stack/plane sizing.
type ArchitecturePreset struct {
	Arch          Architecture
	MemorySize    int
	StackCapacity int
	IndexBits     int  // 12 or 16
	NumPlanes     int  // 1, 2 or 4
	CountsRows    bool // Super-CHIP 1.1+ reports collision row count, not just 0/1
	Quirks        Quirks
}

// schipOrLater reports whether arch has at least the Super-CHIP 1.0 stack
// depth and opcode set. CHIP-48 sits below ArchSuperCHIP10 in the enum, but
// the original treats it as "Super-CHIP 1.0 with different default quirk
// flags" (scchip/constants.py:18: ARCH_CHIP48 = 15 >= ARCH_SUPERCHIP_1_0 =
// 10), so it inherits the same stack depth and opcode set via this explicit
// check rather than the enum ordering alone.
func schipOrLater(arch Architecture) bool {
	return arch == ArchCHIP48 || arch >= ArchSuperCHIP10
}

// Preset returns the default configuration for an architecture. CLI-style
// per-quirk overrides are applied on top of this by Config.resolve.
func Preset(arch Architecture) ArchitecturePreset {
	isSuper := arch == ArchCHIP48 || arch == ArchSuperCHIP10 || arch == ArchSuperCHIP11

	memSize := 0x1000
	indexBits := 12
	stackCap := 12
	numPlanes := 1

	if schipOrLater(arch) {
		stackCap = 16
	}

	if arch >= ArchXOCHIP {
		memSize = 0x10000
		indexBits = 16
		numPlanes = 2
	}

	if arch >= ArchXOCHIP16 {
		numPlanes = 4
	}

	return ArchitecturePreset{
		Arch:          arch,
		MemorySize:    memSize,
		StackCapacity: stackCap,
		IndexBits:     indexBits,
		NumPlanes:     numPlanes,
		CountsRows:    arch >= ArchSuperCHIP11,
		Quirks: Quirks{
			Load:           arch >= ArchSuperCHIP11 || arch == ArchCHIP8 || arch == ArchCHIP8HiRes,
			Shift:          isSuper,
			Logic:          arch == ArchCHIP8 || arch == ArchCHIP8HiRes,
			IndexOverflow:  false,
			IndexIncrement: arch == ArchCHIP48,
			Jump:           isSuper,
			SpriteDelay:    arch == ArchCHIP8 || arch == ArchCHIP8HiRes,
			ScreenWrap:     arch >= ArchXOCHIP,
		},
	}
}

// apply overlays non-nil overrides onto the preset's quirk defaults.
func (o QuirkOverrides) apply(q Quirks) Quirks {
	if o.Load != nil {
		q.Load = *o.Load
	}
	if o.Shift != nil {
		q.Shift = *o.Shift
	}
	if o.Logic != nil {
		q.Logic = *o.Logic
	}
	if o.IndexOverflow != nil {
		q.IndexOverflow = *o.IndexOverflow
	}
	if o.IndexIncrement != nil {
		q.IndexIncrement = *o.IndexIncrement
	}
	if o.Jump != nil {
		q.Jump = *o.Jump
	}
	if o.SpriteDelay != nil {
		q.SpriteDelay = *o.SpriteDelay
	}
	if o.ScreenWrap != nil {
		q.ScreenWrap = *o.ScreenWrap
	}
	return q
}

// Config is everything New needs to boot a Machine: the dialect, any quirk
// overrides, and the target clock speed (0 means uncapped).
type Config struct {
	Arch       Architecture
	Overrides  QuirkOverrides
	ClockSpeed int // cycles/second; 0 = uncapped
	DebugMode  bool
}

// resolve turns a Config into the concrete preset plus overridden quirks.
// It rejects only an unknown architecture; quirk overrides are applied as
// given, with no check for combinations that conflict.
func (c Config) resolve() (ArchitecturePreset, error) {
	if c.Arch < ArchCHIP8 || c.Arch > ArchXOCHIP16 {
		return ArchitecturePreset{}, ConfigError{Reason: "unknown architecture"}
	}

	preset := Preset(c.Arch)
	preset.Quirks = c.Overrides.apply(preset.Quirks)
	return preset, nil
}
