// Package mos6502 implements the MOS Technologies 6502 processor as
// wired into the NES: the interpreter core plus the memory bus that
// routes accesses to the PPU and APU register windows and the
// cartridge mapper.
// https://en.wikipedia.org/wiki/MOS_Technology_6502
package mos6502

import (
	"fmt"
	"strings"

	"github.com/mp3/res/mappers"
	"github.com/mp3/res/nesrom"
	"github.com/mp3/res/ppu"
)

// 6502 Interrupt Vectors
// https://en.wikipedia.org/wiki/Interrupts_in_65xx_processors
const (
	INT_IRQ   = 0xFFFE
	INT_BRK   = INT_IRQ
	INT_RESET = 0xFFFC
	INT_NMI   = 0xFFFA
)

// 6502 Processor Status Flags
// https://www.nesdev.org/obelisk-6502-guide/registers.html
const (
	STATUS_FLAG_CARRY             = 1 << 0 // C
	STATUS_FLAG_ZERO              = 1 << 1 // Z
	STATUS_FLAG_INTERRUPT_DISABLE = 1 << 2 // I
	STATUS_FLAG_DECIMAL           = 1 << 3 // D
	STATUS_FLAG_BREAK             = 1 << 4 // B
	UNUSED_STATUS_FLAG            = 1 << 5 // This is never used but is always pushed on
	STATUS_FLAG_OVERFLOW          = 1 << 6 // V
	STATUS_FLAG_NEGATIVE          = 1 << 7 // N
)

const (
	STACK_PAGE  = 0x0100
	STACK_RESET = 0xFD
)

var flagMap map[uint8]byte = map[uint8]byte{
	STATUS_FLAG_CARRY:             'C',
	STATUS_FLAG_ZERO:              'Z',
	STATUS_FLAG_INTERRUPT_DISABLE: 'I',
	STATUS_FLAG_DECIMAL:           'D',
	STATUS_FLAG_BREAK:             'B',
	UNUSED_STATUS_FLAG:            '-',
	STATUS_FLAG_OVERFLOW:          'V',
	STATUS_FLAG_NEGATIVE:          'N',
}

func statusString(p uint8) string {
	var sb strings.Builder

	flags := []uint8{
		STATUS_FLAG_NEGATIVE,
		STATUS_FLAG_OVERFLOW,
		UNUSED_STATUS_FLAG,
		STATUS_FLAG_BREAK,
		STATUS_FLAG_DECIMAL,
		STATUS_FLAG_INTERRUPT_DISABLE,
		STATUS_FLAG_ZERO,
		STATUS_FLAG_CARRY,
	}

	for _, f := range flags {
		if p&f > 0 {
			sb.WriteByte(flagMap[f])
		} else {
			sb.WriteByte('.')
		}
	}

	return sb.String()
}

// UnsupportedOpcodeError reports a fetched byte outside the
// documented instruction set. The interpreter halts cleanly without
// charging cycles for the failed byte.
type UnsupportedOpcodeError struct {
	Opcode uint8
	PC     uint16
}

func (e *UnsupportedOpcodeError) Error() string {
	return fmt.Sprintf("unsupported opcode 0x%02x at pc 0x%04x", e.Opcode, e.PC)
}

// type CPU implements all of the machine state for the 6502
type CPU struct {
	acc    uint8   // main register
	x, y   uint8   // index registers
	status uint8   // a register for storing various status bits
	sp     uint8   // stack pointer - stack is 0x0100-0x01FF so only 8 bits needed
	pc     uint16  // the program counter
	mem    *memory // 64k addressable memory, PPU/APU/mapper routing included
	cycles uint64  // total cycles charged since reset
}

func New() *CPU {
	// Power on state values from:
	// https://nesdev-wiki.nes.science/wikipages/CPU_ALL.xhtml#Power_up_state
	return &CPU{
		sp:     STACK_RESET,
		mem:    newMemory(),
		status: UNUSED_STATUS_FLAG | STATUS_FLAG_INTERRUPT_DISABLE,
	}
}

func (c *CPU) String() string {
	return fmt.Sprintf("A,X,Y: %4d, %4d, %4d; PC: 0x%04x, SP: 0x%02x, P: %s; OP: %s", c.acc, c.x, c.y, c.pc, c.sp, statusString(c.status), opcodes[c.MemRead(c.pc)])
}

func (c *CPU) A() uint8       { return c.acc }
func (c *CPU) X() uint8       { return c.x }
func (c *CPU) Y() uint8       { return c.y }
func (c *CPU) SP() uint8      { return c.sp }
func (c *CPU) Status() uint8  { return c.status }
func (c *CPU) PC() uint16     { return c.pc }
func (c *CPU) SetPC(a uint16) { c.pc = a }

// TotalCycles returns the cycles charged since the last reset.
func (c *CPU) TotalCycles() uint64 {
	return c.cycles
}

// PPU exposes the picture processing unit the CPU drives through its
// register window.
func (c *CPU) PPU() *ppu.PPU {
	return c.mem.ppu
}

// MemRead returns the byte from the bus at addr
func (c *CPU) MemRead(addr uint16) uint8 {
	return c.mem.read(addr)
}

// MemWrite writes val to the bus at addr
func (c *CPU) MemWrite(addr uint16, val uint8) {
	c.mem.write(addr, val)
}

// MemRead16 returns the two bytes from the bus at addr (lower byte is
// first), wrapping from $FFFF to $0000.
func (c *CPU) MemRead16(addr uint16) uint16 {
	return c.mem.read16(addr)
}

// MemWrite16 splits val across addr and addr+1 (lower byte first),
// wrapping from $FFFF to $0000.
func (c *CPU) MemWrite16(addr, val uint16) {
	c.mem.write16(addr, val)
}

// SetPpuMirroring overrides the nametable mirroring the PPU applies.
func (c *CPU) SetPpuMirroring(mirroring uint8) {
	c.mem.ppu.SetMirroring(mirroring)
}

// LoadCartridge builds a mapper for the validated image, shares it
// between the CPU bus and the PPU, and installs the cartridge's
// mirroring. A previously loaded cartridge is replaced wholesale. On
// error the CPU is left unchanged.
func (c *CPU) LoadCartridge(rom *nesrom.ROM) error {
	m, err := mappers.Get(rom)
	if err != nil {
		return err
	}

	c.mem.mapper = m
	c.mem.ppu.SetMirroring(rom.Mirroring)
	c.mem.ppu.SetMapper(m)
	return nil
}

// LoadPrgRom copies a raw PRG image into the internal bytes behind
// $8000-$FFFF, bypassing the mapper path: a 16 KiB image is mirrored
// into both halves of the window, a 32 KiB image fills it. Any loaded
// cartridge is detached. On error the CPU is left unchanged.
func (c *CPU) LoadPrgRom(prgROM []uint8) error {
	switch len(prgROM) {
	case 0x4000:
		copy(c.mem.ram[0x8000:0xC000], prgROM)
		copy(c.mem.ram[0xC000:], prgROM)
	case 0x8000:
		copy(c.mem.ram[0x8000:], prgROM)
	default:
		return &mappers.InvalidPrgSizeError{Size: len(prgROM)}
	}

	c.mem.mapper = nil
	c.mem.ppu.SetMapper(nil)
	return nil
}

// Load places a raw program at $0600 and points the reset vector at
// it. This is a programming-exercise entry path that bypasses the
// cartridge entirely.
func (c *CPU) Load(program []uint8) {
	for i, b := range program {
		c.MemWrite(0x0600+uint16(i), b)
	}
	c.MemWrite16(INT_RESET, 0x0600)
}

func (c *CPU) LoadAndRun(program []uint8) {
	c.Load(program)
	c.Reset()
	c.Run()
}

// Reset restores the power-on register state and loads the program
// counter from the reset vector.
func (c *CPU) Reset() {
	c.acc = 0
	c.x = 0
	c.y = 0
	c.sp = STACK_RESET
	c.status = UNUSED_STATUS_FLAG | STATUS_FLAG_INTERRUPT_DISABLE
	c.cycles = 0

	c.pc = c.MemRead16(INT_RESET)
}

// pushInterruptState writes the common interrupt entry frame: PC high
// byte, PC low byte, then a copy of the status register with the
// unused bit forced on and BREAK reflecting the entry kind (set only
// for BRK).
func (c *CPU) pushInterruptState(breakFlag bool) {
	c.pushAddress(c.pc)

	flags := c.status | UNUSED_STATUS_FLAG
	if breakFlag {
		flags |= STATUS_FLAG_BREAK
	} else {
		flags &^= STATUS_FLAG_BREAK
	}
	c.pushStack(flags)
}

// TriggerNMI enters the non-maskable interrupt handler at the $FFFA
// vector.
func (c *CPU) TriggerNMI() {
	c.pushInterruptState(false)
	c.flagsOn(STATUS_FLAG_INTERRUPT_DISABLE)
	c.pc = c.MemRead16(INT_NMI)
}

// TriggerIRQ enters the interrupt handler at the $FFFE vector, unless
// interrupts are disabled. It reports whether the interrupt was
// taken; a masked IRQ leaves the CPU untouched.
func (c *CPU) TriggerIRQ() bool {
	if c.flagSet(STATUS_FLAG_INTERRUPT_DISABLE) {
		return false
	}

	c.pushInterruptState(false)
	c.flagsOn(STATUS_FLAG_INTERRUPT_DISABLE)
	c.pc = c.MemRead16(INT_IRQ)
	return true
}

// TriggerBRK enters the $FFFE handler with the BREAK flag set in the
// pushed status copy. This is the interrupt-style entry; the run loop
// itself treats a fetched 0x00 as a halt instead.
func (c *CPU) TriggerBRK() {
	c.pushInterruptState(true)
	c.flagsOn(STATUS_FLAG_INTERRUPT_DISABLE)
	c.pc = c.MemRead16(INT_BRK)
}

// getOperandAddr takes a mode and returns an address for the operand
// referenced by the program counter. It assumes that the counter was
// incremented past the actual instruction itself.
func (c *CPU) getOperandAddr(mode uint8) uint16 {
	switch mode {
	case IMMEDIATE:
		return c.pc
	case ZERO_PAGE:
		return uint16(c.MemRead(c.pc))
	case ZERO_PAGE_X:
		return uint16(c.MemRead(c.pc) + c.x)
	case ZERO_PAGE_Y:
		return uint16(c.MemRead(c.pc) + c.y)
	case ABSOLUTE:
		return c.MemRead16(c.pc)
	case ABSOLUTE_X:
		return c.MemRead16(c.pc) + uint16(c.x)
	case ABSOLUTE_Y:
		return c.MemRead16(c.pc) + uint16(c.y)
	case INDIRECT:
		// JMP ($xxFF) fetches its high byte from the start of the
		// same page instead of crossing it.
		// http://www.6502.org/tutorials/6502opcodes.html#JMP
		ptr := c.MemRead16(c.pc)
		if ptr&0x00FF == 0x00FF {
			lo := uint16(c.MemRead(ptr))
			hi := uint16(c.MemRead(ptr & 0xFF00))
			return hi<<8 | lo
		}
		return c.MemRead16(ptr)
	case INDIRECT_X:
		ptr := c.MemRead(c.pc) + c.x // wraps within the zero page
		lo := uint16(c.MemRead(uint16(ptr)))
		hi := uint16(c.MemRead(uint16(ptr + 1)))
		return hi<<8 | lo
	case INDIRECT_Y:
		ptr := c.MemRead(c.pc)
		lo := uint16(c.MemRead(uint16(ptr)))
		hi := uint16(c.MemRead(uint16(ptr + 1)))
		return (hi<<8 | lo) + uint16(c.y)
	case RELATIVE:
		// Relative from the address of the next instruction. We
		// advance pc as soon as we eat the byte from memory to
		// decode the instruction, so the operand sits at pc and
		// the branch base is pc+1.
		return (c.pc + 1) + uint16(int8(c.MemRead(c.pc)))
	}

	panic(fmt.Sprintf("%s addressing has no operand address", modenames[mode]))
}

// didPageCross reports whether indexing for the mode moves the
// effective address onto a different page than its base.
func (c *CPU) didPageCross(mode uint8) bool {
	switch mode {
	case ABSOLUTE_X:
		base := c.MemRead16(c.pc)
		return base&0xFF00 != (base+uint16(c.x))&0xFF00
	case ABSOLUTE_Y:
		base := c.MemRead16(c.pc)
		return base&0xFF00 != (base+uint16(c.y))&0xFF00
	case INDIRECT_Y:
		ptr := c.MemRead(c.pc)
		lo := uint16(c.MemRead(uint16(ptr)))
		hi := uint16(c.MemRead(uint16(ptr + 1)))
		base := hi<<8 | lo
		return base&0xFF00 != (base+uint16(c.y))&0xFF00
	}

	return false
}

// setNegativeAndZeroFlags sets the STATUS_FLAG_NEGATIVE and
// STATUS_FLAG_ZERO bits of the status register accordingly for the
// value specified in n.
func (c *CPU) setNegativeAndZeroFlags(n uint8) {
	if n == 0 {
		c.flagsOn(STATUS_FLAG_ZERO)
	} else {
		c.flagsOff(STATUS_FLAG_ZERO)
	}

	if n&0b1000_0000 != 0 {
		c.flagsOn(STATUS_FLAG_NEGATIVE)
	} else {
		c.flagsOff(STATUS_FLAG_NEGATIVE)
	}
}

func (c *CPU) getStackAddr() uint16 {
	return STACK_PAGE + uint16(c.sp)
}

func (c *CPU) pushStack(val uint8) {
	c.MemWrite(c.getStackAddr(), val)
	c.sp -= 1
}

func (c *CPU) popStack() uint8 {
	c.sp += 1
	return c.MemRead(c.getStackAddr())
}

// pushAddress pushes high byte then low byte, so the low byte sits at
// the lower address.
func (c *CPU) pushAddress(addr uint16) {
	c.pushStack(uint8(addr >> 8))
	c.pushStack(uint8(addr & 0x00FF))
}

func (c *CPU) popAddress() uint16 {
	lo := uint16(c.popStack())
	hi := uint16(c.popStack())

	return hi<<8 | lo
}

// flagsOn forces the flags in mask (STATUS_FLAG_XXX|STATUS_FLAG_YYY)
// on in the status register.
func (c *CPU) flagsOn(mask uint8) {
	c.status = c.status | mask
}

// flagsOff forces the flags in mask (STATUS_FLAG_XXX|STATUS_FLAG_YYY)
// off in the status register.
func (c *CPU) flagsOff(mask uint8) {
	c.status = c.status &^ mask
}

func (c *CPU) flagSet(mask uint8) bool {
	return c.status&mask > 0
}

// setRegisterA routes every accumulator result through the Z/N update.
func (c *CPU) setRegisterA(val uint8) {
	c.acc = val
	c.setNegativeAndZeroFlags(c.acc)
}

// addToRegisterA adds val and the carry into the accumulator in 9-bit
// arithmetic, handling overflow, carry and ZN flag setting as
// appropriate.
func (c *CPU) addToRegisterA(val uint8) {
	sum := uint16(c.acc) + uint16(val) + uint16(c.status&STATUS_FLAG_CARRY)

	if sum > 0xFF {
		c.flagsOn(STATUS_FLAG_CARRY)
	} else {
		c.flagsOff(STATUS_FLAG_CARRY)
	}

	res := uint8(sum)
	if (val^res)&(res^c.acc)&0x80 != 0 {
		c.flagsOn(STATUS_FLAG_OVERFLOW)
	} else {
		c.flagsOff(STATUS_FLAG_OVERFLOW)
	}

	c.setRegisterA(res)
}

// branch will adjust the PC if condition holds, returning the extra
// cycles incurred: 1 for a taken branch, 1 more if the target sits on
// a different page than the instruction following the branch.
func (c *CPU) branch(condition bool) uint64 {
	if !condition {
		return 0
	}

	base := c.pc + 1
	target := c.getOperandAddr(RELATIVE)

	extra := uint64(1)
	if base&0xFF00 != target&0xFF00 {
		extra += 1
	}

	c.pc = target
	return extra
}

// baseCMP does comparison operations on the register value and the
// addressed operand, setting flags accordingly.
func (c *CPU) baseCMP(mode uint8, reg uint8) {
	val := c.MemRead(c.getOperandAddr(mode))

	if val <= reg {
		c.flagsOn(STATUS_FLAG_CARRY)
	} else {
		c.flagsOff(STATUS_FLAG_CARRY)
	}

	c.setNegativeAndZeroFlags(reg - val)
}

func (c *CPU) lda(mode uint8) {
	c.setRegisterA(c.MemRead(c.getOperandAddr(mode)))
}

func (c *CPU) ldx(mode uint8) {
	c.x = c.MemRead(c.getOperandAddr(mode))
	c.setNegativeAndZeroFlags(c.x)
}

func (c *CPU) ldy(mode uint8) {
	c.y = c.MemRead(c.getOperandAddr(mode))
	c.setNegativeAndZeroFlags(c.y)
}

func (c *CPU) adc(mode uint8) {
	c.addToRegisterA(c.MemRead(c.getOperandAddr(mode)))
}

// sbc is adc of the one's complement: A - M - (1-C) == A + ^M + C.
func (c *CPU) sbc(mode uint8) {
	c.addToRegisterA(^c.MemRead(c.getOperandAddr(mode)))
}

func (c *CPU) asl(mode uint8) {
	if mode == ACCUMULATOR {
		ov := c.acc
		c.setCarry(ov&0x80 != 0)
		c.setRegisterA(ov << 1)
		return
	}

	addr := c.getOperandAddr(mode)
	ov := c.MemRead(addr)
	c.setCarry(ov&0x80 != 0)
	nv := ov << 1
	c.MemWrite(addr, nv)
	c.setNegativeAndZeroFlags(nv)
}

func (c *CPU) lsr(mode uint8) {
	if mode == ACCUMULATOR {
		ov := c.acc
		c.setCarry(ov&0x01 != 0)
		c.setRegisterA(ov >> 1)
		return
	}

	addr := c.getOperandAddr(mode)
	ov := c.MemRead(addr)
	c.setCarry(ov&0x01 != 0)
	nv := ov >> 1
	c.MemWrite(addr, nv)
	c.setNegativeAndZeroFlags(nv)
}

func (c *CPU) rol(mode uint8) {
	oldCarry := c.flagSet(STATUS_FLAG_CARRY)

	if mode == ACCUMULATOR {
		ov := c.acc
		c.setCarry(ov&0x80 != 0)
		nv := ov << 1
		if oldCarry {
			nv |= 0x01
		}
		c.setRegisterA(nv)
		return
	}

	addr := c.getOperandAddr(mode)
	ov := c.MemRead(addr)
	c.setCarry(ov&0x80 != 0)
	nv := ov << 1
	if oldCarry {
		nv |= 0x01
	}
	c.MemWrite(addr, nv)
	c.setNegativeAndZeroFlags(nv)
}

func (c *CPU) ror(mode uint8) {
	oldCarry := c.flagSet(STATUS_FLAG_CARRY)

	if mode == ACCUMULATOR {
		ov := c.acc
		c.setCarry(ov&0x01 != 0)
		nv := ov >> 1
		if oldCarry {
			nv |= 0x80
		}
		c.setRegisterA(nv)
		return
	}

	addr := c.getOperandAddr(mode)
	ov := c.MemRead(addr)
	c.setCarry(ov&0x01 != 0)
	nv := ov >> 1
	if oldCarry {
		nv |= 0x80
	}
	c.MemWrite(addr, nv)
	c.setNegativeAndZeroFlags(nv)
}

func (c *CPU) setCarry(on bool) {
	if on {
		c.flagsOn(STATUS_FLAG_CARRY)
	} else {
		c.flagsOff(STATUS_FLAG_CARRY)
	}
}

func (c *CPU) inc(mode uint8) {
	addr := c.getOperandAddr(mode)
	nv := c.MemRead(addr) + 1
	c.MemWrite(addr, nv)
	c.setNegativeAndZeroFlags(nv)
}

func (c *CPU) dec(mode uint8) {
	addr := c.getOperandAddr(mode)
	nv := c.MemRead(addr) - 1
	c.MemWrite(addr, nv)
	c.setNegativeAndZeroFlags(nv)
}

// bit tests A against the operand without modifying A: Z from the
// AND, N and V copied straight from bits 7 and 6 of the operand.
func (c *CPU) bit(mode uint8) {
	val := c.MemRead(c.getOperandAddr(mode))

	if c.acc&val == 0 {
		c.flagsOn(STATUS_FLAG_ZERO)
	} else {
		c.flagsOff(STATUS_FLAG_ZERO)
	}

	c.flagsOff(STATUS_FLAG_NEGATIVE | STATUS_FLAG_OVERFLOW)
	c.flagsOn(val & (STATUS_FLAG_NEGATIVE | STATUS_FLAG_OVERFLOW))
}

func (c *CPU) php() {
	// the 6502 always forces BREAK and the unused bit on when
	// pushing the status register
	c.pushStack(c.status | STATUS_FLAG_BREAK | UNUSED_STATUS_FLAG)
}

// plp pulls the status register; BREAK comes back cleared and the
// unused bit comes back set regardless of the pushed copy.
func (c *CPU) plp() {
	c.status = c.popStack()
	c.flagsOff(STATUS_FLAG_BREAK)
	c.flagsOn(UNUSED_STATUS_FLAG)
}

func (c *CPU) jsr() {
	// push the address of the last byte of the operand; RTS adds 1
	c.pushAddress(c.pc + 2 - 1)
	c.pc = c.MemRead16(c.pc)
}

func (c *CPU) rti() {
	c.plp()
	c.pc = c.popAddress()
}

// Run executes instructions until BRK. An unsupported opcode is a
// programming error on this path and panics; use TryRunWithCallback
// to observe it instead.
func (c *CPU) Run() {
	c.RunWithCallback(func(*CPU) {})
}

// RunWithCallback is Run with an observer invoked after every
// executed instruction. The observer may read the CPU freely but must
// not re-enter the interpreter.
func (c *CPU) RunWithCallback(callback func(*CPU)) {
	if err := c.TryRunWithCallback(callback); err != nil {
		panic(fmt.Sprintf("cpu halted with error: %v", err))
	}
}

// TryRunWithCallback executes instructions until BRK, returning an
// UnsupportedOpcodeError for bytes outside the instruction set.
func (c *CPU) TryRunWithCallback(callback func(*CPU)) error {
	for {
		halted, err := c.Step()
		if err != nil {
			return err
		}
		if halted {
			return nil
		}

		callback(c)
	}
}

// Step fetches, decodes and executes a single instruction, charging
// its cycles. It reports whether the instruction was BRK, which the
// stand-alone interpreter treats as a halt.
func (c *CPU) Step() (bool, error) {
	code := c.MemRead(c.pc)
	opcodePC := c.pc
	c.pc += 1
	pcState := c.pc

	op, ok := opcodes[code]
	if !ok {
		// leave the PC on the offending byte for diagnosis; no
		// cycles are charged for it
		c.pc = opcodePC
		return false, &UnsupportedOpcodeError{Opcode: code, PC: opcodePC}
	}

	var extra uint64
	if pageCrossPenalty(code) && c.didPageCross(op.mode) {
		extra += 1
	}

	switch op.inst {
	case BRK:
		c.cycles += uint64(op.cycles)
		return true, nil

	case LDA:
		c.lda(op.mode)
	case LDX:
		c.ldx(op.mode)
	case LDY:
		c.ldy(op.mode)
	case STA:
		c.MemWrite(c.getOperandAddr(op.mode), c.acc)
	case STX:
		c.MemWrite(c.getOperandAddr(op.mode), c.x)
	case STY:
		c.MemWrite(c.getOperandAddr(op.mode), c.y)

	case TAX:
		c.x = c.acc
		c.setNegativeAndZeroFlags(c.x)
	case TAY:
		c.y = c.acc
		c.setNegativeAndZeroFlags(c.y)
	case TSX:
		c.x = c.sp
		c.setNegativeAndZeroFlags(c.x)
	case TXA:
		c.setRegisterA(c.x)
	case TYA:
		c.setRegisterA(c.y)
	case TXS:
		c.sp = c.x

	case ADC:
		c.adc(op.mode)
	case SBC:
		c.sbc(op.mode)
	case AND:
		c.setRegisterA(c.acc & c.MemRead(c.getOperandAddr(op.mode)))
	case ORA:
		c.setRegisterA(c.acc | c.MemRead(c.getOperandAddr(op.mode)))
	case EOR:
		c.setRegisterA(c.acc ^ c.MemRead(c.getOperandAddr(op.mode)))

	case ASL:
		c.asl(op.mode)
	case LSR:
		c.lsr(op.mode)
	case ROL:
		c.rol(op.mode)
	case ROR:
		c.ror(op.mode)

	case INC:
		c.inc(op.mode)
	case DEC:
		c.dec(op.mode)
	case INX:
		c.x += 1
		c.setNegativeAndZeroFlags(c.x)
	case DEX:
		c.x -= 1
		c.setNegativeAndZeroFlags(c.x)
	case INY:
		c.y += 1
		c.setNegativeAndZeroFlags(c.y)
	case DEY:
		c.y -= 1
		c.setNegativeAndZeroFlags(c.y)

	case CMP:
		c.baseCMP(op.mode, c.acc)
	case CPX:
		c.baseCMP(op.mode, c.x)
	case CPY:
		c.baseCMP(op.mode, c.y)
	case BIT:
		c.bit(op.mode)

	case BCC:
		extra += c.branch(!c.flagSet(STATUS_FLAG_CARRY))
	case BCS:
		extra += c.branch(c.flagSet(STATUS_FLAG_CARRY))
	case BNE:
		extra += c.branch(!c.flagSet(STATUS_FLAG_ZERO))
	case BEQ:
		extra += c.branch(c.flagSet(STATUS_FLAG_ZERO))
	case BPL:
		extra += c.branch(!c.flagSet(STATUS_FLAG_NEGATIVE))
	case BMI:
		extra += c.branch(c.flagSet(STATUS_FLAG_NEGATIVE))
	case BVC:
		extra += c.branch(!c.flagSet(STATUS_FLAG_OVERFLOW))
	case BVS:
		extra += c.branch(c.flagSet(STATUS_FLAG_OVERFLOW))

	case JMP:
		c.pc = c.getOperandAddr(op.mode)
	case JSR:
		c.jsr()
	case RTS:
		c.pc = c.popAddress() + 1
	case RTI:
		c.rti()

	case PHA:
		c.pushStack(c.acc)
	case PLA:
		c.setRegisterA(c.popStack())
	case PHP:
		c.php()
	case PLP:
		c.plp()

	case CLC:
		c.flagsOff(STATUS_FLAG_CARRY)
	case SEC:
		c.flagsOn(STATUS_FLAG_CARRY)
	case CLI:
		c.flagsOff(STATUS_FLAG_INTERRUPT_DISABLE)
	case SEI:
		c.flagsOn(STATUS_FLAG_INTERRUPT_DISABLE)
	case CLV:
		c.flagsOff(STATUS_FLAG_OVERFLOW)
	case CLD:
		c.flagsOff(STATUS_FLAG_DECIMAL)
	case SED:
		c.flagsOn(STATUS_FLAG_DECIMAL)

	case NOP:
	}

	// If we didn't branch, move the PC beyond the full width of
	// the instruction. We consumed the first byte for the
	// instruction code, so only skip over the remaining argument
	// bytes.
	if c.pc == pcState {
		c.pc += uint16(op.bytes) - 1
	}

	c.cycles += uint64(op.cycles) + extra

	return false, nil
}
