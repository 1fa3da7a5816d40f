// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package image reads, writes and builds tyson program images.
package image

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
)

const (
	WORD_SIZE   = 8              // Size of a word.
	HEADER_SIZE = 12 * WORD_SIZE // Size of the image header.
	TEXT_BASE   = HEADER_SIZE    // Offset of the program text.
)

// Header is the fixed prefix of every image.
type Header struct {
	Size        uint64 // Total image size, including the header.
	Start       uint64 // Initial instruction pointer.
	ArgsBase    uint64 // Offset of the program arguments.
	TextBase    uint64 // Offset of the program text.
	PoolBase    uint64 // Offset of the constant pool.
	HeapBase    uint64 // Offset of the heap.
	ProgramSize uint64 // Size of text and pool.
	TextSize    uint64 // Size of the program text.
	PoolSize    uint64 // Size of the constant pool.
	HeapSize    uint64 // Size of the heap.
	ArgCount    uint64 // Number of program arguments.
	ArgBytes    uint64 // Size of the program arguments.
}

// fields returns the header fields in encoding order.
func (hdr *Header) fields() []*uint64 {
	return []*uint64{
		&hdr.Size, &hdr.Start, &hdr.ArgsBase, &hdr.TextBase,
		&hdr.PoolBase, &hdr.HeapBase, &hdr.ProgramSize, &hdr.TextSize,
		&hdr.PoolSize, &hdr.HeapSize, &hdr.ArgCount, &hdr.ArgBytes,
	}
}

// String returns the header as a field listing.
func (hdr Header) String() (text string) {
	names := []string{
		"size", "start", "args-base", "text-base",
		"pool-base", "heap-base", "program-size", "text-size",
		"pool-size", "heap-size", "arg-count", "arg-bytes",
	}
	for n, field := range hdr.fields() {
		text += fmt.Sprintf("% 12s: %#x\n", names[n], *field)
	}
	return
}

// Image is a loaded program image. The buffer is never resized.
type Image struct {
	Data []byte
}

// New creates a zeroed image of size bytes, with the size field set.
func New(size uint64) (img *Image) {
	if size < HEADER_SIZE {
		size = HEADER_SIZE
	}
	img = &Image{Data: make([]byte, size)}
	binary.LittleEndian.PutUint64(img.Data, size)
	return
}

// Size of the image in bytes.
func (img *Image) Size() uint64 {
	return uint64(len(img.Data))
}

// Header decodes the image header.
func (img *Image) Header() (hdr Header) {
	if len(img.Data) < HEADER_SIZE {
		return
	}
	for n, field := range hdr.fields() {
		*field = binary.LittleEndian.Uint64(img.Data[n*WORD_SIZE:])
	}
	return
}

// SetHeader encodes hdr into the image.
func (img *Image) SetHeader(hdr Header) {
	for n, field := range hdr.fields() {
		binary.LittleEndian.PutUint64(img.Data[n*WORD_SIZE:], *field)
	}
}

// Load an image from a file.
func Load(path string) (img *Image, err error) {
	inf, err := os.Open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	info, err := inf.Stat()
	if err != nil {
		return
	}

	img, err = readSized(inf, uint64(info.Size()))
	if err != nil {
		err = fmt.Errorf("%v: %w", path, err)
	}
	return
}

// Read an image from a stream. The stream must contain exactly the
// number of bytes declared by the header.
func Read(r io.Reader) (img *Image, err error) {
	return readSized(r, 0)
}

// readSized reads an image whose total length is known to be actual,
// or unknown when actual is zero.
func readSized(r io.Reader, actual uint64) (img *Image, err error) {
	var size [WORD_SIZE]byte
	_, err = io.ReadFull(r, size[:])
	if err != nil {
		err = ErrHeaderShort
		return
	}

	declared := binary.LittleEndian.Uint64(size[:])
	if declared < HEADER_SIZE {
		err = ErrHeaderShort
		return
	}
	if actual != 0 && actual != declared {
		err = &ErrSizeMismatch{Declared: declared, Actual: actual}
		return
	}

	// Memory grows with the bytes actually present, not the declared size.
	body, err := io.ReadAll(io.LimitReader(r, int64(min(declared, math.MaxInt64-1)-WORD_SIZE)+1))
	if err != nil {
		return
	}
	got := uint64(WORD_SIZE + len(body))
	if got != declared {
		if got > declared {
			extra, _ := io.Copy(io.Discard, r)
			got += uint64(extra)
		}
		err = &ErrSizeMismatch{Declared: declared, Actual: got}
		return
	}

	data := make([]byte, 0, declared)
	data = append(data, size[:]...)
	data = append(data, body...)

	img = &Image{Data: data}
	if img.Header().Start >= declared {
		img = nil
		err = ErrStartInvalid
		return
	}

	return
}

// Save the image, verbatim, to a file.
func (img *Image) Save(path string) (n int64, err error) {
	ouf, err := os.Create(path)
	if err != nil {
		return
	}

	n, err = img.WriteTo(ouf)
	if err != nil {
		ouf.Close()
		return
	}

	err = ouf.Close()
	return
}

// WriteTo writes the image, verbatim, to w.
func (img *Image) WriteTo(w io.Writer) (n int64, err error) {
	return io.Copy(w, bytes.NewReader(img.Data))
}

// check verifies that [addr, addr+n) lies within the image.
func (img *Image) check(addr uint64, n uint64) (err error) {
	size := uint64(len(img.Data))
	if addr > size || n > size-addr {
		err = &ErrAddress{Addr: addr, Len: n, Size: size}
	}
	return
}

// Bytes returns the n bytes at addr. The slice aliases the image.
func (img *Image) Bytes(addr uint64, n uint64) (data []byte, err error) {
	err = img.check(addr, n)
	if err != nil {
		return
	}
	data = img.Data[addr : addr+n : addr+n]
	return
}

// Byte reads the byte at addr.
func (img *Image) Byte(addr uint64) (value byte, err error) {
	err = img.check(addr, 1)
	if err != nil {
		return
	}
	value = img.Data[addr]
	return
}

// SetByte writes the byte at addr.
func (img *Image) SetByte(addr uint64, value byte) (err error) {
	err = img.check(addr, 1)
	if err != nil {
		return
	}
	img.Data[addr] = value
	return
}

// Word reads the little-endian word at addr.
func (img *Image) Word(addr uint64) (value uint64, err error) {
	err = img.check(addr, WORD_SIZE)
	if err != nil {
		return
	}
	value = binary.LittleEndian.Uint64(img.Data[addr:])
	return
}

// SetWord writes the little-endian word at addr.
func (img *Image) SetWord(addr uint64, value uint64) (err error) {
	err = img.check(addr, WORD_SIZE)
	if err != nil {
		return
	}
	binary.LittleEndian.PutUint64(img.Data[addr:], value)
	return
}

// CString returns the bytes at addr up to, but excluding, the nul
// terminator. The slice aliases the image.
func (img *Image) CString(addr uint64) (str []byte, err error) {
	err = img.check(addr, 1)
	if err != nil {
		return
	}
	end := bytes.IndexByte(img.Data[addr:], 0)
	if end < 0 {
		err = &ErrAddress{Addr: addr, Len: uint64(len(img.Data)) - addr + 1, Size: uint64(len(img.Data))}
		return
	}
	str = img.Data[addr : addr+uint64(end) : addr+uint64(end)]
	return
}
