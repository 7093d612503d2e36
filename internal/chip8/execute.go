package chip8

import (
	"github.com/retroenv/retrogolib/log"
)

// Outcome tells the driver how execution of an instruction ended.
type Outcome uint8

const (
	// OutcomeAdvance means the instruction completed and execution continues
	// at the program counter.
	OutcomeAdvance Outcome = iota
	// OutcomeWait means the instruction refused to complete, it has to be
	// executed again on the next cycle. This is returned by FX0A while no key
	// is pressed.
	OutcomeWait
)

// Execute applies the instruction to the machine state. The program counter
// is expected to point at the instruction following ins. Errors are fatal
// and leave the machine state unchanged by the failing instruction.
func (m *Machine) Execute(ins Instruction) (Outcome, error) {
	switch ins.Kind {
	case KindCls:
		m.display.Clear()
		m.displayDirty = true

	case KindRet:
		if m.sp == 0 {
			return OutcomeAdvance, ErrStackUnderflow
		}
		m.sp--
		m.pc = m.stack[m.sp]

	case KindJump:
		m.pc = ins.NNN

	case KindCall:
		if int(m.sp) == StackSize {
			return OutcomeAdvance, ErrStackOverflow
		}
		m.stack[m.sp] = m.pc
		m.sp++
		m.pc = ins.NNN

	case KindSkipEqImm:
		m.skipIf(m.v[ins.X] == ins.NN)
	case KindSkipNeImm:
		m.skipIf(m.v[ins.X] != ins.NN)
	case KindSkipEqReg:
		m.skipIf(m.v[ins.X] == m.v[ins.Y])
	case KindSkipNeReg:
		m.skipIf(m.v[ins.X] != m.v[ins.Y])

	case KindLoadImm:
		m.v[ins.X] = ins.NN
	case KindAddImm:
		m.v[ins.X] += ins.NN

	case KindMove, KindOr, KindAnd, KindXor, KindAdd, KindSub, KindShr, KindSubn, KindShl:
		m.executeArithmetic(ins)

	case KindLoadIndex:
		m.index = ins.NNN

	case KindJumpOffset:
		return OutcomeAdvance, m.jumpWithOffset(ins)

	case KindRandom:
		m.v[ins.X] = m.random() & ins.NN

	case KindDraw:
		return OutcomeAdvance, m.draw(ins)

	case KindSkipKey:
		m.skipIf(m.keyPressed(m.v[ins.X]))
	case KindSkipNotKey:
		m.skipIf(!m.keyPressed(m.v[ins.X]))

	case KindWaitKey:
		key, ok := m.keys.FirstPressed()
		if !ok {
			return OutcomeWait, nil
		}
		m.v[ins.X] = key

	case KindLoadDelay, KindSetDelay, KindSetSound, KindAddIndex, KindFont, KindBCD, KindStore, KindLoad:
		return OutcomeAdvance, m.executeMisc(ins)

	default: // KindSys and KindUnknown
		m.logAnomaly(ins)
	}

	return OutcomeAdvance, nil
}

func (m *Machine) skipIf(condition bool) {
	if condition {
		m.pc += InstructionSize
	}
}

func (m *Machine) keyPressed(key uint8) bool {
	if int(key) >= KeyCount {
		return false
	}
	return m.keys[key]
}

// executeArithmetic handles the 8XYN register to register operations.
func (m *Machine) executeArithmetic(ins Instruction) {
	x, y := ins.X, ins.Y

	switch ins.Kind {
	case KindMove:
		m.v[x] = m.v[y]
	case KindOr:
		m.v[x] |= m.v[y]
	case KindAnd:
		m.v[x] &= m.v[y]
	case KindXor:
		m.v[x] ^= m.v[y]

	case KindAdd:
		sum := uint16(m.v[x]) + uint16(m.v[y])
		m.v[x] = uint8(sum)
		m.v[FlagRegister] = flag(sum > 0xFF)

	case KindSub:
		vx, vy := m.v[x], m.v[y]
		m.v[x] = vx - vy
		m.v[FlagRegister] = flag(vx >= vy)

	case KindSubn:
		vx, vy := m.v[x], m.v[y]
		m.v[x] = vy - vx
		m.v[FlagRegister] = flag(vy >= vx)

	case KindShr:
		if m.quirks.LegacyShift {
			m.v[x] = m.v[y]
		}
		m.v[FlagRegister] = m.v[x] & 0x01
		m.v[x] >>= 1

	case KindShl:
		if m.quirks.LegacyShift {
			m.v[x] = m.v[y]
		}
		m.v[FlagRegister] = flag(m.v[x]&0x80 != 0)
		m.v[x] <<= 1

	default:
	}
}

func (m *Machine) jumpWithOffset(ins Instruction) error {
	register := uint8(0)
	if m.quirks.JumpWithVX {
		register = ins.X
	}

	target := int(ins.NNN) + int(m.v[register])
	if target > MaxAddress {
		return addressError(target)
	}
	m.pc = uint16(target)
	return nil
}

// draw XORs an N byte sprite read from I onto the display. The origin wraps
// around the display, pixels beyond the right and bottom edge are clipped.
func (m *Machine) draw(ins Instruction) error {
	originX := int(m.v[ins.X]) % DisplayWidth
	originY := int(m.v[ins.Y]) % DisplayHeight
	rows := min(int(ins.N), DisplayHeight-originY)

	if rows > 0 {
		if err := checkRange(int(m.index), rows); err != nil {
			return err
		}
	}

	m.v[FlagRegister] = 0
	for row := range rows {
		sprite := m.memory[int(m.index)+row]
		line := &m.display[originY+row]

		for col := 0; col < 8 && originX+col < DisplayWidth; col++ {
			if sprite&(0x80>>col) == 0 {
				continue
			}
			pixel := &line[originX+col]
			if *pixel {
				m.v[FlagRegister] = 1
			}
			*pixel = !*pixel
		}
	}

	if ins.N > 0 {
		m.displayDirty = true
	}
	return nil
}

// executeMisc handles the FXNN timer, index and memory transfer operations.
func (m *Machine) executeMisc(ins Instruction) error {
	x := ins.X

	switch ins.Kind {
	case KindLoadDelay:
		m.v[x] = m.timers.Delay()
	case KindSetDelay:
		m.timers.SetDelay(m.v[x])
	case KindSetSound:
		m.timers.SetSound(m.v[x])

	case KindAddIndex:
		sum := int(m.index) + int(m.v[x])
		m.v[FlagRegister] = flag(sum > indexMask)
		m.index = uint16(sum) & indexMask

	case KindFont:
		m.index = GlyphAddress(m.v[x]) & indexMask

	case KindBCD:
		if err := checkRange(int(m.index), 3); err != nil {
			return err
		}
		value := m.v[x]
		m.memory[m.index] = value / 100
		m.memory[m.index+1] = value / 10 % 10
		m.memory[m.index+2] = value % 10

	case KindStore:
		count := int(x) + 1
		if err := checkRange(int(m.index), count); err != nil {
			return err
		}
		copy(m.memory[m.index:], m.v[:count])
		if m.quirks.LegacyIndexing {
			m.index = (m.index + uint16(x)) & indexMask
		}

	case KindLoad:
		count := int(x) + 1
		if err := checkRange(int(m.index), count); err != nil {
			return err
		}
		copy(m.v[:count], m.memory[m.index:])

	default:
	}
	return nil
}

func (m *Machine) logAnomaly(ins Instruction) {
	if m.logger == nil {
		return
	}
	m.logger.Debug("Ignoring unsupported instruction",
		log.Hex("pc", m.pc-InstructionSize),
		log.Hex("opcode", ins.Word),
		log.Stringer("kind", ins.Kind),
	)
}

func flag(condition bool) uint8 {
	if condition {
		return 1
	}
	return 0
}
