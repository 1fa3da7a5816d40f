// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"fmt"
	"io"
	"iter"
	"log"
	"maps"

	"github.com/ezrec/tyson/asm"
	"github.com/ezrec/tyson/debugger"
	"github.com/ezrec/tyson/engine"
	"github.com/ezrec/tyson/image"
	"github.com/ezrec/tyson/internal"
)

var _emulator_defines = map[string]string{
	"SIZE_B":  fmt.Sprintf("%v", engine.SIZE_B),
	"SIZE_HW": fmt.Sprintf("%v", engine.SIZE_HW),
	"SIZE_W":  fmt.Sprintf("%v", engine.SIZE_W),
	"SIZE_DW": fmt.Sprintf("%v", engine.SIZE_DW),
	"SIZE_QW": fmt.Sprintf("%v", engine.SIZE_QW),
}

// Emulator state. Engine + optional debugger and program listing.
type Emulator struct {
	Verbose    bool               // If set, enables verbose logging.
	Traced     bool               // If set, traces each instruction.
	SingleStep bool               // If set, traced runs start suspended.
	Limits     engine.Limits      // Engine capacities.
	Output     io.Writer          // Destination of show_* output, if set.
	Log        *log.Logger        // Destination of trace output, if set.
	Engine     *engine.Engine     // Reference to the engine, once reset.
	Program    *asm.Program       // Program listing, if assembled.
	Debugger   *debugger.Debugger // Debug controller, if any.
}

// NewEmulator creates a new emulator.
func NewEmulator(limits engine.Limits) (emu *Emulator) {
	emu = &Emulator{
		SingleStep: true,
		Limits:     limits,
	}

	return
}

// Defines returns an iterator over all of the defines.
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.Chain2(maps.All(_emulator_defines),
		emu.limitDefines(),
	)
}

func (emu *Emulator) limitDefines() iter.Seq2[string, string] {
	limits := emu.Limits
	if limits.StackSize == 0 {
		limits.StackSize = engine.DefaultLimits.StackSize
	}
	if limits.RecurLimit == 0 {
		limits.RecurLimit = engine.DefaultLimits.RecurLimit
	}
	if limits.GcolThreshold == 0 {
		limits.GcolThreshold = engine.DefaultLimits.GcolThreshold
	}

	return maps.All(map[string]string{
		"STACK_SIZE":     fmt.Sprintf("%v", limits.StackSize),
		"RECUR_LIMIT":    fmt.Sprintf("%v", limits.RecurLimit),
		"GCOL_THRESHOLD": fmt.Sprintf("%v", limits.GcolThreshold),
	})
}

// Assemble a program, with the emulator defines, and make it the
// current program listing.
func (emu *Emulator) Assemble(input io.Reader) (prog *asm.Program, err error) {
	assembler := &asm.Assembler{Verbose: emu.Verbose}
	for equ, value := range emu.Defines() {
		assembler.Predefine(equ, value)
	}

	prog, err = assembler.Parse(input)
	if err != nil {
		return
	}

	emu.Program = prog

	return
}

// Reset the emulator to execute an image.
func (emu *Emulator) Reset(img *image.Image) {
	e := engine.NewEngine(img, emu.Limits)
	e.Traced = emu.Traced
	if emu.Output != nil {
		e.Output = emu.Output
	}
	if emu.Log != nil {
		e.Log = emu.Log
	}
	if emu.Debugger != nil {
		e.Monitor = emu.Debugger
		if emu.Program != nil {
			emu.Debugger.Source = emu.Program
		}
	}

	e.Reset()
	e.SingleStep = e.Traced && emu.SingleStep

	emu.Engine = e

	if emu.Verbose {
		log.Printf("emulator: reset: %v", img.Header())
	}
}

// LineNo returns the source line for the executing instruction, or 0
// if there is no program listing.
func (emu *Emulator) LineNo() int {
	if emu.Program == nil {
		return 0
	}

	return emu.Program.LineNo(emu.Engine.Ip)
}

// Tick performs a single instruction of the emulator.
func (emu *Emulator) Tick() (done bool, err error) {
	ip := emu.Engine.Ip
	lineno := emu.LineNo()

	done, err = emu.Engine.Tick()
	if err != nil {
		err = &ErrRuntime{Ip: ip, LineNo: lineno, Err: err}
	}

	return
}

// Run the engine until it stops.
func (emu *Emulator) Run() (status engine.ExitStatus, err error) {
	for done := false; !done; {
		done, err = emu.Tick()
	}

	status = emu.Engine.Status

	if emu.Verbose {
		log.Printf("emulator: exit %v after %d cycles", status, emu.Engine.Cycles)
	}

	return
}

// Load an image file.
func Load(path string) (*image.Image, error) {
	return image.Load(path)
}

// Save an image file.
func Save(img *image.Image, path string) (n int64, err error) {
	return img.Save(path)
}

// Run an image to completion with the default engine limits.
func Run(img *image.Image, traced bool) (status engine.ExitStatus, err error) {
	emu := NewEmulator(engine.DefaultLimits)
	emu.Traced = traced
	emu.Reset(img)

	return emu.Run()
}
