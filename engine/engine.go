// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package engine

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/ezrec/tyson/image"
	"github.com/ezrec/tyson/opcode"
)

// ExitStatus is the reason the engine stopped.
type ExitStatus int

const (
	EXIT_RUNNING   = ExitStatus(0) // Still executing.
	EXIT_DIE       = ExitStatus(1) // A die instruction was executed.
	EXIT_RESERVED  = ExitStatus(2) // A reserved instruction was executed.
	EXIT_DEBUG_END = ExitStatus(3) // The operator ended the debug session.
	EXIT_FAULT     = ExitStatus(4) // A fatal trap stopped execution.
)

var _exit_status = [...]string{
	EXIT_RUNNING:   "running",
	EXIT_DIE:       "die",
	EXIT_RESERVED:  "reserved",
	EXIT_DEBUG_END: "debug-end",
	EXIT_FAULT:     "fault",
}

func (es ExitStatus) String() string {
	if es < 0 || int(es) >= len(_exit_status) {
		return fmt.Sprintf("ExitStatus(%d)", int(es))
	}
	return _exit_status[es]
}

// Limits are the engine capacities.
type Limits struct {
	StackSize     uint64 // Data stack size, in bytes.
	RecurLimit    int    // Return stack depth.
	GcolThreshold uint64 // Stack depth, in bytes, reported by stk_gcol.
}

// DefaultLimits are the standard engine capacities.
var DefaultLimits = Limits{
	StackSize:     STACK_SIZE,
	RecurLimit:    RECUR_LIMIT,
	GcolThreshold: GCOL_THRESHOLD,
}

// Loop is the single loop register set.
type Loop struct {
	Count uint64 // Remaining iterations.
	Cont  uint64 // Continue address.
	Stop  uint64 // Stop address.
}

// Monitor is consulted before each instruction while single-stepping.
type Monitor interface {
	// Suspend is called with the engine positioned at the next
	// instruction. Returning halt ends the run.
	Suspend(e *Engine) (halt bool, err error)
}

// Engine is the execution context of a single image.
type Engine struct {
	Traced     bool        // Log each instruction, and honor SingleStep.
	SingleStep bool        // Suspend to Monitor before each instruction.
	Monitor    Monitor     // Debug controller, if any.
	Output     io.Writer   // Destination of show_* output.
	Log        *log.Logger // Destination of trace output.

	Image  *image.Image // Image being executed.
	Limits Limits       // Engine capacities.

	Ip     uint64     // Instruction pointer.
	Stack  Stack      // Data stack.
	Return Return     // Return stack.
	Tdx    uint64     // Table cursor.
	Loop   Loop       // Loop registers.
	Fast   [4]uint64  // Fast jump registers c1..c4.
	Cycles uint64     // Instructions traced since reset.
	Status ExitStatus // Run state.
}

// NewEngine creates an engine for an image.
func NewEngine(img *image.Image, limits Limits) (e *Engine) {
	if limits.StackSize == 0 {
		limits.StackSize = DefaultLimits.StackSize
	}
	if limits.RecurLimit == 0 {
		limits.RecurLimit = DefaultLimits.RecurLimit
	}
	if limits.GcolThreshold == 0 {
		limits.GcolThreshold = DefaultLimits.GcolThreshold
	}

	e = &Engine{
		Output: os.Stdout,
		Log:    log.Default(),
		Image:  img,
		Limits: limits,
		Stack:  NewStack(limits.StackSize),
		Return: NewReturn(limits.RecurLimit),
	}

	e.Reset()

	return
}

// Reset the engine to the image entry point.
func (e *Engine) Reset() {
	hdr := e.Image.Header()

	e.Ip = hdr.Start
	e.Stack.Clear()
	e.Return.Reset(hdr.TextBase)
	e.Tdx = 0
	e.Loop = Loop{}
	clear(e.Fast[:])
	e.Cycles = 0
	e.SingleStep = e.Traced
	e.Status = EXIT_RUNNING

	if e.Traced {
		e.Log.Printf("tyson: reset, start %#x", e.Ip)
	}
}

// Instruction decodes the instruction at the instruction pointer.
func (e *Engine) Instruction() (opcode.Instruction, error) {
	return opcode.Decode(e.Image.Data, e.Ip)
}

// trace logs the instruction about to execute.
func (e *Engine) trace() {
	inst, err := e.Instruction()
	if err != nil {
		e.Log.Printf("tyson: %6d 0x%04x %v", e.Cycles, e.Ip, err)
		return
	}
	e.Log.Printf("tyson: %6d 0x%04x %v", e.Cycles, e.Ip, inst)
}

// Tick executes a single instruction.
func (e *Engine) Tick() (done bool, err error) {
	if e.Status != EXIT_RUNNING {
		done = true
		return
	}

	ip := e.Ip
	var op opcode.Opcode

	defer func() {
		if err != nil {
			e.Status = EXIT_FAULT
			done = true
			err = errors.Join(ErrOpcode{Ip: ip, Op: op}, err)
		}
	}()

	code, err := e.Image.Byte(ip)
	if err != nil {
		return
	}
	op = opcode.Opcode(code)

	if e.Traced {
		e.Cycles++
		e.trace()

		if e.SingleStep && e.Monitor != nil {
			var halt bool
			halt, err = e.Monitor.Suspend(e)
			if err != nil {
				return
			}
			if halt {
				e.Status = EXIT_DEBUG_END
				done = true
				return
			}
		}
	}

	if !op.Valid() {
		err = ErrOpcodeInvalid
		return
	}

	err = _dispatch[op](e)
	if err != nil {
		return
	}

	done = e.Status != EXIT_RUNNING

	return
}

// Run executes instructions until the engine stops.
func (e *Engine) Run() (status ExitStatus, err error) {
	for done := false; !done; {
		done, err = e.Tick()
	}

	status = e.Status

	if e.Traced {
		e.Log.Printf("tyson: exit %v after %d cycles", status, e.Cycles)
	}

	return
}

// String returns the register file as text.
func (e *Engine) String() (text string) {
	top := "----_----"
	value, err := e.Stack.Peek()
	if err == nil {
		top = fmt.Sprintf("0x%016x", value)
	}

	text += fmt.Sprintf("% 6s: %#x\n", "ip", e.Ip)
	text += fmt.Sprintf("% 6s: %#x (%d)\n", "sp", e.Stack.Sp, e.Stack.Depth())
	text += fmt.Sprintf("% 6s: %v\n", "top", top)
	text += fmt.Sprintf("% 6s: %d -> %#x\n", "rp", e.Return.Rp, e.Return.Data[e.Return.Rp])
	text += fmt.Sprintf("% 6s: %#x\n", "tdx", e.Tdx)
	text += fmt.Sprintf("% 6s: %d %#x %#x\n", "loop", e.Loop.Count, e.Loop.Cont, e.Loop.Stop)
	for n, addr := range e.Fast {
		text += fmt.Sprintf("% 6s: %#x\n", fmt.Sprintf("c%d", n+1), addr)
	}
	text += fmt.Sprintf("% 6s: %d\n", "cycles", e.Cycles)

	return
}

// Snapshot is a copy of the register file and live stack contents.
type Snapshot struct {
	Ip     uint64
	Sp     uint64
	Rp     int
	Tdx    uint64
	Loop   Loop
	Fast   [4]uint64
	Cycles uint64
	Status ExitStatus
	Stack  []uint64 // Live data stack slots, base slot first.
	Return []uint64 // Live return stack slots, base slot first.
}

// Snapshot copies the engine state.
func (e *Engine) Snapshot() (snap Snapshot) {
	snap = Snapshot{
		Ip:     e.Ip,
		Sp:     e.Stack.Sp,
		Rp:     e.Return.Rp,
		Tdx:    e.Tdx,
		Loop:   e.Loop,
		Fast:   e.Fast,
		Cycles: e.Cycles,
		Status: e.Status,
		Return: append([]uint64(nil), e.Return.Data[:e.Return.Rp+1]...),
	}

	for offset := uint64(0); offset <= e.Stack.Sp; offset += WORD_SIZE {
		snap.Stack = append(snap.Stack, wordOf(e.Stack.Data[offset:]))
	}

	return
}
