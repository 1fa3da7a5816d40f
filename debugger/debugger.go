// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package debugger is the operator console consulted by a traced engine
// before each single-stepped instruction.
package debugger

import (
	"fmt"
	"io"
	"os"

	"github.com/ezrec/tyson/engine"
	"github.com/ezrec/tyson/translate"
)

const (
	DEFAULT_PROMPT = " --> " // Default operator prompt.

	PRINTM_SIZE = 64 // Default printm length, in bytes.
	PRINTS_SIZE = 8  // Default prints depth, in slots.

	dumpWidth = 16
)

// State of the debug controller.
type State int

const (
	STATE_RUNNING          = State(0) // Engine executes freely.
	STATE_AWAITING_COMMAND = State(1) // Suspended at the prompt.
	STATE_SINGLE_STEPPING  = State(2) // Executing a single instruction.
	STATE_HALTED           = State(3) // Operator ended the run.
)

var _state_name = [...]string{
	STATE_RUNNING:          "running",
	STATE_AWAITING_COMMAND: "awaiting-command",
	STATE_SINGLE_STEPPING:  "single-stepping",
	STATE_HALTED:           "halted",
}

func (st State) String() string {
	if st < 0 || int(st) >= len(_state_name) {
		return fmt.Sprintf("State(%d)", int(st))
	}
	return _state_name[st]
}

// Locator maps an image offset to a source line.
type Locator interface {
	LineNo(ip uint64) int
}

// Debugger is an interactive engine.Monitor.
type Debugger struct {
	Prompt  Prompt    // Source of operator commands.
	Output  io.Writer // Destination of menus and dumps.
	Source  Locator   // Source line lookup, if any.
	State   State     // Controller state.
	Prompts int       // Number of commands read.
}

var _ engine.Monitor = (*Debugger)(nil)

// NewDebugger creates a debug controller reading from prompt.
func NewDebugger(prompt Prompt) (db *Debugger) {
	db = &Debugger{
		Prompt: prompt,
		Output: os.Stdout,
		State:  STATE_RUNNING,
	}

	return
}

// Suspend shows the next instruction, and handles operator commands
// until one resumes execution.
func (db *Debugger) Suspend(e *engine.Engine) (halt bool, err error) {
	db.State = STATE_AWAITING_COMMAND
	db.where(e)

	for {
		translate.Fprintf(db.Output, "\n\t[0]end [1]start [2]stop [3]stepf [4]printm [5]prints\n")

		var line string
		line, err = db.Prompt.Readline()
		if err != nil {
			// End of input, or interrupt, ends the session.
			err = nil
			db.State = STATE_HALTED
			halt = true
			return
		}
		db.Prompts++

		cmd, args, perr := ParseCommand(line)
		if perr != nil {
			translate.Fprintf(db.Output, "\t%v\n", perr)
			continue
		}

		switch cmd {
		case COMMAND_END:
			db.State = STATE_HALTED
			halt = true
			return
		case COMMAND_RUN:
			db.State = STATE_RUNNING
			e.SingleStep = false
			return
		case COMMAND_STOP:
			db.where(e)
		case COMMAND_STEP:
			db.State = STATE_SINGLE_STEPPING
			e.SingleStep = true
			return
		case COMMAND_PRINTM:
			addr, size := e.Ip, uint64(PRINTM_SIZE)
			if len(args) > 0 {
				addr = args[0]
			}
			if len(args) > 1 {
				size = args[1]
			}
			db.printMemory(e, addr, size)
		case COMMAND_PRINTS:
			depth := PRINTS_SIZE
			if len(args) > 0 {
				depth = int(min(args[0], uint64(e.Stack.Depth())))
			}
			db.printStack(e, depth)
		}
	}
}

// where shows the instruction about to execute.
func (db *Debugger) where(e *engine.Engine) {
	var lineno int
	if db.Source != nil {
		lineno = db.Source.LineNo(e.Ip)
	}

	inst, err := e.Instruction()
	if err != nil {
		fmt.Fprintf(db.Output, "0x%04x: %v\n", e.Ip, err)
		return
	}

	if lineno != 0 {
		fmt.Fprintf(db.Output, "0x%04x: %v (line %d)\n", e.Ip, inst, lineno)
	} else {
		fmt.Fprintf(db.Output, "0x%04x: %v\n", e.Ip, inst)
	}
}

// printMemory writes a hex dump of an image region, clipped to the image.
func (db *Debugger) printMemory(e *engine.Engine, addr uint64, size uint64) {
	limit := e.Image.Size()
	if addr >= limit {
		translate.Fprintf(db.Output, "\taddress %#x outside of image\n", addr)
		return
	}
	size = min(size, limit-addr)

	data, err := e.Image.Bytes(addr, size)
	if err != nil {
		translate.Fprintf(db.Output, "\t%v\n", err)
		return
	}

	for len(data) > 0 {
		line := data[:min(dumpWidth, len(data))]
		fmt.Fprintf(db.Output, "0x%04x: % x\n", addr, line)
		addr += uint64(len(line))
		data = data[len(line):]
	}
}

// printStack writes the top depth slots of the data stack.
func (db *Debugger) printStack(e *engine.Engine, depth int) {
	depth = min(depth, e.Stack.Depth())
	if depth == 0 {
		translate.Fprintf(db.Output, "\tstack empty\n")
		return
	}

	snap := e.Snapshot()
	for n := range depth {
		slot := len(snap.Stack) - 1 - n
		fmt.Fprintf(db.Output, "sp-%-3d 0x%016x\n", n*engine.WORD_SIZE, snap.Stack[slot])
	}
}
