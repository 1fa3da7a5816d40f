package image

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuild(t *testing.T) {
	assert := assert.New(t)

	img := Build(Layout{
		Start:    1,
		Text:     []byte{1, 0},
		Pool:     []byte("abc\x00"),
		HeapSize: 16,
		Args:     [][]byte{[]byte("x")},
	})

	hdr := img.Header()
	assert.Equal(uint64(96+2+4+16+2), hdr.Size)
	assert.Equal(hdr.Size, img.Size())
	assert.Equal(uint64(97), hdr.Start)
	assert.Equal(uint64(96), hdr.TextBase)
	assert.Equal(uint64(98), hdr.PoolBase)
	assert.Equal(uint64(102), hdr.HeapBase)
	assert.Equal(uint64(118), hdr.ArgsBase)
	assert.Equal(uint64(6), hdr.ProgramSize)
	assert.Equal(uint64(1), hdr.ArgCount)
	assert.Equal(uint64(2), hdr.ArgBytes)

	str, err := img.CString(hdr.PoolBase)
	assert.NoError(err)
	assert.Equal("abc", string(str))

	str, err = img.CString(hdr.ArgsBase)
	assert.NoError(err)
	assert.Equal("x", string(str))
}

func TestRead(t *testing.T) {
	assert := assert.New(t)

	img := Build(Layout{Text: []byte{0}})
	out := &bytes.Buffer{}
	n, err := img.WriteTo(out)
	assert.NoError(err)
	assert.Equal(int64(97), n)

	loaded, err := Read(bytes.NewReader(out.Bytes()))
	assert.NoError(err)
	assert.Equal(img.Data, loaded.Data)
	assert.Equal(img.Header(), loaded.Header())
}

func TestRead_Errors(t *testing.T) {
	assert := assert.New(t)

	good := Build(Layout{Text: []byte{0, 1, 2, 3}}).Data

	table := [](struct {
		name     string
		data     []byte
		mismatch bool
	}){
		{"empty", nil, false},
		{"tiny", []byte{1, 2, 3}, false},
		{"declared-short", binary.LittleEndian.AppendUint64(nil, 64), false},
		{"truncated", good[:len(good)-1], true},
		{"trailing", append(bytes.Clone(good), 0xff), true},
	}

	for _, entry := range table {
		_, err := Read(bytes.NewReader(entry.data))
		if entry.mismatch {
			var mismatch *ErrSizeMismatch
			if assert.ErrorAs(err, &mismatch, entry.name) {
				assert.Equal(uint64(len(good)), mismatch.Declared, entry.name)
			}
		} else {
			assert.ErrorIs(err, ErrHeaderShort, entry.name)
		}
	}

	bad := bytes.Clone(good)
	binary.LittleEndian.PutUint64(bad[8:], uint64(len(bad)))
	_, err := Read(bytes.NewReader(bad))
	assert.ErrorIs(err, ErrStartInvalid)

	// A huge declared size with a short body fails on the body.
	huge := make([]byte, HEADER_SIZE)
	binary.LittleEndian.PutUint64(huge, 1<<40)
	_, err = Read(bytes.NewReader(huge))
	var mismatch *ErrSizeMismatch
	if assert.ErrorAs(err, &mismatch) {
		assert.Equal(uint64(1<<40), mismatch.Declared)
		assert.Equal(uint64(HEADER_SIZE), mismatch.Actual)
	}
}

func TestLoad_SizeMismatch(t *testing.T) {
	assert := assert.New(t)

	good := Build(Layout{Text: []byte{0, 1, 2, 3}}).Data

	huge := bytes.Clone(good)
	binary.LittleEndian.PutUint64(huge, 1<<40)

	table := [](struct {
		name     string
		data     []byte
		declared uint64
	}){
		{"truncated", good[:len(good)-1], uint64(len(good))},
		{"trailing", append(bytes.Clone(good), 0xff), uint64(len(good))},
		{"huge", huge, 1 << 40},
	}

	for _, entry := range table {
		path := filepath.Join(t.TempDir(), entry.name+".tyimg")
		assert.NoError(os.WriteFile(path, entry.data, 0o644), entry.name)

		_, err := Load(path)
		var mismatch *ErrSizeMismatch
		if assert.ErrorAs(err, &mismatch, entry.name) {
			assert.Equal(entry.declared, mismatch.Declared, entry.name)
			assert.Equal(uint64(len(entry.data)), mismatch.Actual, entry.name)
		}
	}
}

func TestSaveLoad(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "prog.tyimg")

	img := Build(Layout{Text: []byte{1, 1, 0}, HeapSize: 8})
	n, err := img.Save(path)
	assert.NoError(err)
	assert.Equal(int64(len(img.Data)), n)

	loaded, err := Load(path)
	assert.NoError(err)

	again := filepath.Join(t.TempDir(), "again.tyimg")
	_, err = loaded.Save(again)
	assert.NoError(err)

	a, err := os.ReadFile(path)
	assert.NoError(err)
	b, err := os.ReadFile(again)
	assert.NoError(err)
	assert.Equal(a, b)

	_, err = Load(filepath.Join(t.TempDir(), "missing"))
	assert.ErrorIs(err, os.ErrNotExist)
}

func TestAccess(t *testing.T) {
	assert := assert.New(t)

	img := New(HEADER_SIZE + 16)
	base := uint64(HEADER_SIZE)

	assert.NoError(img.SetWord(base, 0x1122334455667788))
	value, err := img.Word(base)
	assert.NoError(err)
	assert.Equal(uint64(0x1122334455667788), value)

	b, err := img.Byte(base)
	assert.NoError(err)
	assert.Equal(byte(0x88), b)

	assert.NoError(img.SetByte(base+15, 7))
	data, err := img.Bytes(base+8, 8)
	assert.NoError(err)
	assert.Equal([]byte{0, 0, 0, 0, 0, 0, 0, 7}, data)

	var addrErr *ErrAddress
	_, err = img.Word(base + 9)
	if assert.ErrorAs(err, &addrErr) {
		assert.Equal(base+9, addrErr.Addr)
	}

	_, err = img.Byte(img.Size())
	assert.ErrorAs(err, &addrErr)

	_, err = img.Bytes(base, ^uint64(0))
	assert.ErrorAs(err, &addrErr)

	assert.Error(img.SetWord(^uint64(0)-2, 1))

	_, err = img.CString(base + 8)
	assert.NoError(err)

	assert.NoError(img.SetByte(base+15, 0))
	full := bytes.Repeat([]byte{'a'}, 16)
	copy(img.Data[base:], full)
	_, err = img.CString(base)
	assert.ErrorAs(err, &addrErr)
}
