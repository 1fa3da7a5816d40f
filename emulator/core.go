package emulator

import (
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
)

var coreEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("emulator: failed to create CBOR enc mode: %v", err))
	}
	coreEncMode = em
}

// Core is a post-mortem record of the engine state.
type Core struct {
	Ip        uint64    `cbor:"1,keyasint"`
	Sp        uint64    `cbor:"2,keyasint"`
	Rp        int       `cbor:"3,keyasint"`
	Tdx       uint64    `cbor:"4,keyasint"`
	LoopCount uint64    `cbor:"5,keyasint"`
	LoopCont  uint64    `cbor:"6,keyasint"`
	LoopStop  uint64    `cbor:"7,keyasint"`
	Fast      [4]uint64 `cbor:"8,keyasint"`
	Cycles    uint64    `cbor:"9,keyasint"`
	Status    string    `cbor:"10,keyasint"`
	Stack     []uint64  `cbor:"11,keyasint,omitempty"` // Live data stack, base slot first.
	Return    []uint64  `cbor:"12,keyasint,omitempty"` // Live return stack, base slot first.
	LineNo    int       `cbor:"13,keyasint,omitempty"`
	Fault     string    `cbor:"14,keyasint,omitempty"`
	Image     []byte    `cbor:"15,keyasint"`
}

// Core captures the engine state, and the fault that stopped it, if any.
func (emu *Emulator) Core(fault error) (core *Core) {
	snap := emu.Engine.Snapshot()

	core = &Core{
		Ip:        snap.Ip,
		Sp:        snap.Sp,
		Rp:        snap.Rp,
		Tdx:       snap.Tdx,
		LoopCount: snap.Loop.Count,
		LoopCont:  snap.Loop.Cont,
		LoopStop:  snap.Loop.Stop,
		Fast:      snap.Fast,
		Cycles:    snap.Cycles,
		Status:    snap.Status.String(),
		Stack:     snap.Stack,
		Return:    snap.Return,
		LineNo:    emu.LineNo(),
		Image:     emu.Engine.Image.Data,
	}

	if fault != nil {
		core.Fault = fault.Error()
	}

	return
}

// WriteCore writes the CBOR encoded engine state.
func (emu *Emulator) WriteCore(w io.Writer, fault error) (err error) {
	data, err := coreEncMode.Marshal(emu.Core(fault))
	if err != nil {
		return
	}

	_, err = w.Write(data)

	return
}

// ReadCore decodes a core written by WriteCore.
func ReadCore(r io.Reader) (core *Core, err error) {
	core = &Core{}
	err = cbor.NewDecoder(r).Decode(core)
	if err != nil {
		core = nil
		err = fmt.Errorf("emulator: read core: %w", err)
	}

	return
}
