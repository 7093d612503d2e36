package chip8

// StepResult describes the effects of a single Step.
type StepResult struct {
	PC          uint16 // address the instruction was fetched from
	Instruction Instruction

	// Waiting is set when the instruction refused to complete and will be
	// executed again on the next step.
	Waiting bool

	DisplayDirty bool // the display buffer changed
	SoundActive  bool // the tone should be audible
}

// Fetch reads the big endian instruction word at the program counter and
// advances the program counter past it.
func (m *Machine) Fetch() (uint16, error) {
	if int(m.pc)+1 > MaxAddress {
		return 0, ErrEndOfMemory
	}
	word := uint16(m.memory[m.pc])<<8 | uint16(m.memory[m.pc+1])
	m.pc += InstructionSize
	return word, nil
}

// Step latches the key state and runs one fetch-decode-execute cycle.
// Fatal errors are returned as *Fault.
func (m *Machine) Step(keys Keys) (StepResult, error) {
	m.displayDirty = false
	m.keys = keys

	result := StepResult{PC: m.pc}

	word, err := m.Fetch()
	if err != nil {
		return result, &Fault{PC: result.PC, Err: err}
	}

	ins := Decode(word)
	result.Instruction = ins

	outcome, err := m.Execute(ins)
	if err != nil {
		m.pc = result.PC
		return result, &Fault{PC: result.PC, Word: word, Err: err}
	}

	if outcome == OutcomeWait {
		m.pc -= InstructionSize
		result.Waiting = true
	}

	result.DisplayDirty = m.displayDirty
	result.SoundActive = m.timers.SoundActive()
	return result, nil
}
