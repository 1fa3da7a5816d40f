package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ezrec/tyson/emulator"
	"github.com/ezrec/tyson/image"
	"github.com/ezrec/tyson/opcode"
)

func newDisCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dis IMAGE",
		Short: "Disassemble the text of an image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			img, err := emulator.Load(args[0])
			if err != nil {
				return
			}

			return disassemble(cmd.OutOrStdout(), img)
		},
	}

	return cmd
}

// disassemble writes the header and decoded text of an image.
func disassemble(w io.Writer, img *image.Image) (err error) {
	hdr := img.Header()
	fmt.Fprint(w, hdr.String())

	end := min(hdr.TextBase+hdr.TextSize, img.Size())
	for ip := hdr.TextBase; ip < end; {
		inst, derr := opcode.Decode(img.Data[:end], ip)
		if derr != nil {
			fmt.Fprintf(w, "0x%04x: .byte 0x%02x ; %v\n", ip, img.Data[ip], derr)
			ip++
			continue
		}

		mark := " "
		if ip == hdr.Start {
			mark = ">"
		}
		_, err = fmt.Fprintf(w, "%s0x%04x: %v\n", mark, ip, inst)
		if err != nil {
			return
		}
		ip += inst.Size

		if inst.Op == opcode.SWCH {
			ip, err = jumpTable(w, img, ip, hdr.TextBase, end)
			if err != nil {
				return
			}
		}
	}

	return
}

// jumpTable writes the words following a swch as data, and returns the
// offset of the first instruction after them. The table ends at the
// first word that is not a text address, or at the nearest forward
// target seen so far.
func jumpTable(w io.Writer, img *image.Image, ip, base, end uint64) (next uint64, err error) {
	limit := end
	for next = ip; next+image.WORD_SIZE <= limit; next += image.WORD_SIZE {
		target, werr := img.Word(next)
		if werr != nil || target < base || target >= end {
			break
		}
		_, err = fmt.Fprintf(w, " 0x%04x: .word %#x\n", next, target)
		if err != nil {
			return
		}
		if target > next {
			limit = min(limit, target)
		}
	}

	return
}
