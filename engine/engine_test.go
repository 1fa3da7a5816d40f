package engine

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/tyson/asm"
	"github.com/ezrec/tyson/image"
)

type testEngine struct {
	*Engine
	Prog   *asm.Program
	Out    *bytes.Buffer
	Traces *bytes.Buffer
}

func build(t *testing.T, limits Limits, program ...string) (te *testEngine) {
	a := &asm.Assembler{}
	prog, err := a.Parse(strings.NewReader(strings.Join(program, "\n")))
	if err != nil {
		t.Fatalf("%v", err)
	}

	te = &testEngine{
		Engine: NewEngine(prog.Image(), limits),
		Prog:   prog,
		Out:    &bytes.Buffer{},
		Traces: &bytes.Buffer{},
	}
	te.Output = te.Out
	te.Log = log.New(te.Traces, "", 0)

	return
}

func (te *testEngine) addr(t *testing.T, label string) uint64 {
	addr, ok := te.Prog.Address(label)
	if !ok {
		t.Fatalf("label %v missing", label)
	}
	return addr
}

func run(t *testing.T, program ...string) (te *testEngine) {
	te = build(t, DefaultLimits, program...)
	status, err := te.Run()
	if err != nil {
		t.Log(te.String())
		t.Fatalf("%v", err)
	}
	assert.Equal(t, EXIT_DIE, status)
	return
}

func top(t *testing.T, te *testEngine) uint64 {
	value, err := te.Stack.Peek()
	assert.NoError(t, err)
	return value
}

func TestEngine_Die(t *testing.T) {
	assert := assert.New(t)

	te := run(t, "start: die")
	assert.Equal(uint64(image.TEXT_BASE), te.Ip)
	assert.Equal(uint64(0), te.Stack.Sp)
	assert.Equal(0, te.Return.Rp)
	assert.Equal(uint64(image.TEXT_BASE), te.Return.Data[0])

	done, err := te.Tick()
	assert.True(done)
	assert.NoError(err)
}

func TestEngine_AddShow(t *testing.T) {
	assert := assert.New(t)

	te := run(t,
		".start",
		"stk_psh0",
		"stk_psh1",
		"add_u",
		"show_top_u",
		"die",
	)
	assert.Equal("stack-top(u64): 1\n", te.Out.String())
	assert.Equal(1, te.Stack.Depth())
}

func TestEngine_Arithmetic(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		op          string
		left, right string
		expect      uint64
	}){
		{"add_b", "200", "100", 44},
		{"add_u", "2", "3", 5},
		{"add_i", "-7", "3", uint64(0xfffffffffffffffc)},
		{"add_r", "1.5", "2.25", math.Float64bits(3.75)},
		{"sub_b", "1", "2", 255},
		{"sub_u", "10", "3", 7},
		{"sub_i", "3", "10", uint64(0xfffffffffffffff9)},
		{"sub_r", "1.0", "0.5", math.Float64bits(0.5)},
		{"mul_b", "16", "17", 16},
		{"mul_u", "6", "7", 42},
		{"mul_i", "-3", "4", uint64(0xfffffffffffffff4)},
		{"mul_r", "1.5", "-2.0", math.Float64bits(-3.0)},
		{"div_b", "255", "16", 15},
		{"div_u", "100", "7", 14},
		{"div_i", "-12", "4", uint64(0xfffffffffffffffd)},
		{"div_r", "1.0", "0.0", math.Float64bits(math.Inf(1))},
		{"mod_b", "255", "16", 15},
		{"mod_u", "10", "3", 1},
		{"mod_i", "-7", "2", uint64(0xffffffffffffffff)},
		{"and", "0xf0f0", "0xff00", 0xf000},
		{"or", "0xf0f0", "0x0f00", 0xfff0},
		{"xor", "0xff", "0x0f", 0xf0},
		{"lsh", "1", "4", 16},
		{"rsh", "256", "4", 16},
	}

	for _, entry := range table {
		te := run(t,
			".start",
			"stk_pshc "+entry.right,
			"stk_pshc "+entry.left,
			entry.op,
			"die",
		)
		assert.Equal(1, te.Stack.Depth(), entry.op)
		assert.Equal(entry.expect, top(t, te), entry.op)
	}
}

func TestEngine_ArithmeticRoundTrip(t *testing.T) {
	assert := assert.New(t)

	for _, kind := range []string{"b", "u", "i"} {
		te := run(t,
			".start",
			"stk_pshc 3",
			"stk_pshc 9",
			"add_"+kind,
			"stk_pshc 3",
			"stk_xcht",
			"sub_"+kind,
			"die",
		)
		assert.Equal(uint64(9), top(t, te), kind)
	}
}

func TestEngine_Unary(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		op     string
		value  string
		expect uint64
	}){
		{"inc_b", "255", 0},
		{"inc_u", "41", 42},
		{"inc_i", "-1", 0},
		{"dec_b", "0", 255},
		{"dec_u", "43", 42},
		{"dec_i", "0", uint64(0xffffffffffffffff)},
		{"not", "0", uint64(0xffffffffffffffff)},
		{"b2u", "0x1ff", 0xff},
		{"b2i", "0x180", 0x80},
		{"b2r", "0x1ff", math.Float64bits(255)},
		{"u2b", "0x1234", 0x34},
		{"u2i", "7", 7},
		{"u2r", "7", math.Float64bits(7)},
		{"i2b", "-1", 0xff},
		{"i2u", "-1", uint64(0xffffffffffffffff)},
		{"i2r", "-2", math.Float64bits(-2)},
		{"r2b", "3.75", 3},
		{"r2u", "3.75", 3},
		{"r2i", "-3.75", uint64(0xfffffffffffffffd)},
	}

	for _, entry := range table {
		te := run(t,
			".start",
			"stk_pshc "+entry.value,
			entry.op,
			"die",
		)
		assert.Equal(1, te.Stack.Depth(), entry.op)
		assert.Equal(entry.expect, top(t, te), entry.op)
	}
}

func TestEngine_Compare(t *testing.T) {
	assert := assert.New(t)

	te := run(t, "start: stk_pshc 5", "stk_pshc 5", "eq", "die")
	assert.Equal(3, te.Stack.Depth())
	assert.Equal(uint64(1), top(t, te))

	te = run(t, "start: stk_pshc 5", "stk_pshc 5", "neq", "die")
	assert.Equal(3, te.Stack.Depth())
	assert.Equal(uint64(0), top(t, te))
}

func TestEngine_ConditionalJump(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		op         string
		top, below string
		taken      bool
	}){
		{"jeq_b", "0x101", "0x201", true},
		{"jneq_b", "1", "2", true},
		{"jgt_b", "2", "1", true},
		{"jlt_b", "2", "1", false},
		{"jeq_w", "0x101", "0x201", false},
		{"jneq_w", "7", "7", false},
		{"jgeq_u", "7", "7", true},
		{"jleq_u", "8", "7", false},
		{"jgt_u", "-1", "1", true},
		{"jlt_u", "-1", "1", false},
		{"jgt_i", "-1", "1", false},
		{"jlt_i", "-1", "1", true},
		{"jgeq_i", "-1", "-1", true},
		{"jleq_i", "-2", "-1", true},
		{"jgt_r", "1.5", "1.25", true},
		{"jlt_r", "1.5", "1.25", false},
		{"jgeq_r", "-0.5", "-0.5", true},
		{"jleq_r", "2.0", "1.0", false},
	}

	for _, entry := range table {
		te := run(t,
			".start",
			"stk_pshc "+entry.below,
			"stk_pshc "+entry.top,
			entry.op+" taken",
			"stk_pshc 100",
			"die",
			"taken: stk_pshc 200",
			"die",
		)
		assert.Equal(3, te.Stack.Depth(), entry.op)
		if entry.taken {
			assert.Equal(uint64(200), top(t, te), entry.op)
		} else {
			assert.Equal(uint64(100), top(t, te), entry.op)
		}
	}
}

func TestEngine_FastJump(t *testing.T) {
	assert := assert.New(t)

	for n := 1; n <= 4; n++ {
		digit := fmt.Sprint(n)
		te := run(t,
			"start: set_c"+digit+" target",
			"jmp_c"+digit,
			"stk_pshc 1",
			"die",
			"target: stk_pshc 2",
			"die",
		)
		assert.Equal(uint64(2), top(t, te), digit)
		assert.Equal(te.addr(t, "target"), te.Fast[n-1])
	}
}

func TestEngine_CallRet(t *testing.T) {
	assert := assert.New(t)

	te := run(t,
		"start: call sub",
		"stk_pshc 2",
		"die",
		"sub: stk_pshc 1",
		"ret",
	)
	assert.Equal(2, te.Stack.Depth())
	assert.Equal(uint64(2), top(t, te))
	assert.Equal(0, te.Return.Rp)
	assert.Equal(uint64(image.TEXT_BASE+9), te.Return.Data[1])
}

func TestEngine_Swch(t *testing.T) {
	assert := assert.New(t)

	for index, expect := range []uint64{10, 20, 30} {
		te := run(t,
			"start: stk_pshc "+fmt.Sprint(index*8),
			"swch a b c",
			"a: stk_pshc 10",
			"die",
			"b: stk_pshc 20",
			"die",
			"c: stk_pshc 30",
			"die",
		)
		assert.Equal(1, te.Stack.Depth())
		assert.Equal(expect, top(t, te))
	}
}

func TestEngine_Loop(t *testing.T) {
	assert := assert.New(t)

	for n := range 6 {
		te := run(t,
			"start: stk_psh0",
			fmt.Sprintf("lstart %d body done", n),
			"body: inc_u",
			"ltest",
			"done: die",
		)
		assert.Equal(uint64(n+1), top(t, te), n)
		assert.Equal(uint64(0), te.Loop.Count)
	}

	te := run(t,
		"start: lstart 5 body done",
		"body: stk_psh1",
		"lstop",
		"stk_psh2",
		"done: die",
	)
	assert.Equal(1, te.Stack.Depth())
	assert.Equal(uint64(5), te.Loop.Count)

	te = run(t,
		"start: stk_psh0",
		"lstart 0 body done",
		"body: stk_pshc 3",
		"jeq_w done",
		"stk_dwn",
		"inc_u",
		"lcont",
		"done: die",
	)
	assert.Equal(2, te.Stack.Depth())
	assert.Equal(uint64(3), top(t, te))
}

func TestEngine_Faults(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		limits  Limits
		program []string
		err     error
		depth   int
	}){
		{DefaultLimits, []string{"start: stk_psh0", "stk_psh1", "div_u", "die"}, ErrDivideByZero, 0},
		{DefaultLimits, []string{"start: stk_psh0", "stk_psh1", "mod_i", "die"}, ErrDivideByZero, 0},
		{DefaultLimits, []string{"start: ret"}, ErrReturnEmpty, 0},
		{DefaultLimits, []string{"start: add_u"}, ErrStackEmpty, 0},
		{DefaultLimits, []string{"start: stk_psh1", "jeq_w start"}, ErrStackEmpty, 1},
		{DefaultLimits, []string{"start: stk_dwn"}, ErrStackEmpty, 0},
		{DefaultLimits, []string{"start: rstk_dwn"}, ErrReturnEmpty, 0},
		{Limits{StackSize: 32}, []string{"start: stk_psh0", "jmp start"}, ErrStackFull, 3},
		{Limits{RecurLimit: 4}, []string{"start: call start"}, ErrReturnFull, 0},
		{DefaultLimits, []string{"start: put_w 0xffffff 1"}, nil, 0},
		{DefaultLimits, []string{"start: .byte 0xfe"}, ErrOpcodeInvalid, 0},
		{DefaultLimits, []string{"start: jmp 0xffffff"}, nil, 0},
		{DefaultLimits, []string{"start: stk_psh1", "stk_cpy 0 16"}, ErrStackRange, 1},
		{DefaultLimits, []string{"start: str_len 0xffffff"}, nil, 0},
	}

	for n, entry := range table {
		te := build(t, entry.limits, entry.program...)
		status, err := te.Run()
		assert.Equal(EXIT_FAULT, status, n)
		assert.True(errors.Is(err, ErrOpcode{}), n)
		if entry.err != nil {
			assert.ErrorIs(err, entry.err, n)
		} else {
			var addr *image.ErrAddress
			assert.ErrorAs(err, &addr, n)
		}
		assert.Equal(entry.depth, te.Stack.Depth(), n)

		done, err := te.Tick()
		assert.True(done, n)
		assert.NoError(err, n)
	}

	te := build(t, Limits{RecurLimit: 4}, "start: call start")
	_, err := te.Run()
	assert.ErrorIs(err, ErrReturnFull)
	assert.Equal(3, te.Return.Rp)
}

func TestEngine_Reserved(t *testing.T) {
	assert := assert.New(t)

	for _, mnemonic := range []string{"openf", "rsv_sys2", "rsv_sys15", "stk_mov", "stk_2top", "stk_dup"} {
		te := build(t, DefaultLimits, "start: stk_psh1", mnemonic, "stk_psh2", "die")
		status, err := te.Run()
		assert.NoError(err, mnemonic)
		assert.Equal(EXIT_RESERVED, status, mnemonic)
		assert.Equal(1, te.Stack.Depth(), mnemonic)
		assert.Equal(uint64(image.TEXT_BASE+1), te.Ip, mnemonic)
	}
}

func TestEngine_Memory(t *testing.T) {
	assert := assert.New(t)

	te := run(t,
		".heap buf 64",
		".heap other 64",
		".start",
		"put_b buf 0x11",
		"put_hw buf+4 0x22334455",
		"put_w buf+8 0x0102030405060708",
		"put_nb buf+16 1 2 3",
		"put_nw buf+24 0x10 0x20",
		"cpy_w other buf+8",
		"cpy_nb other+8 buf+16 3",
		"xch_b buf buf+4",
		"die",
	)
	base := te.addr(t, "buf")
	other := te.addr(t, "other")

	data, err := te.Image.Bytes(base, 40)
	assert.NoError(err)
	assert.Equal([]byte{
		0x55, 0, 0, 0, 0x11, 0x44, 0x33, 0x22,
		8, 7, 6, 5, 4, 3, 2, 1,
		1, 2, 3, 0, 0, 0, 0, 0,
		0x10, 0, 0, 0, 0, 0, 0, 0,
		0x20, 0, 0, 0, 0, 0, 0, 0,
	}, data)

	value, err := te.Image.Word(other)
	assert.NoError(err)
	assert.Equal(uint64(0x0102030405060708), value)

	data, err = te.Image.Bytes(other+8, 4)
	assert.NoError(err)
	assert.Equal([]byte{1, 2, 3, 0}, data)
}

func TestEngine_MemoryFromStack(t *testing.T) {
	assert := assert.New(t)

	te := run(t,
		".heap buf 32",
		".start",
		"put_w buf+16 0xaabb",
		"stk_pshc buf",
		"put_w_fs 0x1234",
		"stk_pshc buf+8",
		"cpy_w_fs buf+16",
		"put_b buf+24 0x77",
		"stk_pshc buf+16",
		"xch_b_fs buf+24",
		"die",
	)
	base := te.addr(t, "buf")
	assert.Equal(3, te.Stack.Depth())

	for addr, expect := range map[uint64]uint64{
		base:      0x1234,
		base + 8:  0xaabb,
		base + 16: 0xaa77,
		base + 24: 0xbb,
	} {
		value, err := te.Image.Word(addr)
		assert.NoError(err)
		assert.Equal(expect, value, addr-base)
	}
}

func TestEngine_Strings(t *testing.T) {
	assert := assert.New(t)

	te := run(t,
		".pool",
		"abc: .string \"abc\"",
		"abd: .string \"abd\"",
		"ab: .string \"ab\"",
		"vowels: .string \"xyzc\"",
		".heap buf 32",
		".text",
		".start",
		"put_s buf \"hello\"",
		"str_len buf",
		"str_cmp abc abd",
		"str_cmp abd abc",
		"str_ncmp abc abd 2",
		"str_cmp ab abc",
		"str_chr buf 'l'",
		"str_chr buf 'q'",
		"str_chr buf 0",
		"str_cspn abc vowels",
		"str_cat buf abc",
		"str_ncat buf abd 1",
		"str_str buf abc",
		"die",
	)
	buf := te.addr(t, "buf")

	snap := te.Snapshot()
	assert.Equal([]uint64{
		0,
		5,
		uint64(0xffffffffffffffff),
		1,
		0,
		uint64(0xffffffffffffffff),
		buf + 2,
		0,
		buf + 5,
		2,
		buf + 5,
	}, snap.Stack)

	str, err := te.Image.CString(buf)
	assert.NoError(err)
	assert.Equal("helloabca", string(str))
}

func TestEngine_JmpStrCmp(t *testing.T) {
	assert := assert.New(t)

	te := run(t,
		".pool",
		"abc: .string \"abc\"",
		"abd: .string \"abd\"",
		".text",
		".start",
		"jmp_str_cmp abc abd 1 wrong",
		"jmp_str_cmp abc abd -1 less",
		"wrong: stk_psh0",
		"die",
		"less: jmp_str_ncmp abc abd 2 0 same",
		"stk_psh0",
		"die",
		"same: stk_psh2",
		"die",
	)
	assert.Equal(1, te.Stack.Depth())
	assert.Equal(uint64(2), top(t, te))
}

func TestEngine_Table(t *testing.T) {
	assert := assert.New(t)

	te := run(t,
		".heap buf 32",
		".heap ptr 8",
		".start",
		"put_w ptr buf",
		"set_tdx_fh ptr",
		"t_fd_putb 1",
		"t_fd_putb 2",
		"t_fd_putw 0x33",
		"set_tdx_fc buf",
		"t_fd_pshb",
		"t_fd_pshb",
		"t_fd_pshw",
		"stk_pshc 0x1ff",
		"t_bk_popb",
		"t_fd_popb",
		"tdx_w_up",
		"tdx_b_dwn",
		"stk_pshc buf+24",
		"set_tdx_fs",
		"t_bk_cpyw buf+2",
		"die",
	)
	buf := te.addr(t, "buf")

	snap := te.Snapshot()
	assert.Equal([]uint64{0, 1, 2, buf + 24}, snap.Stack)
	assert.Equal(buf+16, te.Tdx)

	data, err := te.Image.Bytes(buf, 32)
	assert.NoError(err)
	assert.Equal([]byte{
		1, 2, 0x33, 0, 0, 0, 0, 0,
		0, 0x33, 0xff, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0x33, 0, 0, 0, 0, 0, 0, 0x33,
	}, data)
}

func TestEngine_StackOps(t *testing.T) {
	assert := assert.New(t)

	te := run(t,
		".heap buf 16",
		".start",
		"put_w buf 0x99",
		"stk_pshc 1",
		"stk_pshc 2",
		"stk_cpy 0 8",
		"stk_setc 8 7",
		"stk_xch 0 8",
		"stk_psh buf",
		"put_w buf 0x55",
		"stk_hxch buf 0",
		"stk_pshc 5",
		"stk_ovwr0",
		"stk_pshc 9",
		"stk_ovwrc 6",
		"stk_top_dup",
		"stk_stor buf+8",
		"die",
	)
	snap := te.Snapshot()
	assert.Equal([]uint64{0, 1, 7, 0x55, 0, 6, 6}, snap.Stack)

	buf := te.addr(t, "buf")
	value, err := te.Image.Word(buf)
	assert.NoError(err)
	assert.Equal(uint64(0x99), value)
	value, err = te.Image.Word(buf + 8)
	assert.NoError(err)
	assert.Equal(uint64(6), value)

	te = build(t, Limits{StackSize: 64},
		".heap buf 64",
		".start",
		"stk_spoffs",
		"stk_pshc 5",
		"stk_save buf",
		"stk_clr",
		"stk_load buf",
		"stk_up",
		"stk_up",
		"die",
	)
	status, err := te.Run()
	assert.NoError(err)
	assert.Equal(EXIT_DIE, status)
	snap = te.Snapshot()
	assert.Equal([]uint64{0, 8, 5}, snap.Stack)
}

func TestEngine_StackPop(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		value string
		bytes []byte
	}){
		{"0x1122334455667788", []byte{0x88, 0x77, 0x66, 0x55, 0x44, 0x33, 0x22, 0x11}},
		{"0", []byte{0, 0, 0, 0, 0, 0, 0, 0}},
		{"-1", []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}},
	}

	for _, entry := range table {
		pushed := run(t,
			".heap buf 8",
			".start",
			"stk_psh1",
			"stk_pshc "+entry.value,
			"die",
		)
		assert.Equal(2, pushed.Stack.Depth(), entry.value)

		te := run(t,
			".heap buf 8",
			".start",
			"stk_psh1",
			"stk_pshc "+entry.value,
			"stk_pop buf",
			"die",
		)
		assert.Equal(1, te.Stack.Depth(), entry.value)
		assert.Equal(uint64(1), top(t, te), entry.value)

		data, err := te.Image.Bytes(te.addr(t, "buf"), 8)
		assert.NoError(err, entry.value)
		assert.Equal(entry.bytes, data, entry.value)
	}
}

func TestEngine_Show(t *testing.T) {
	assert := assert.New(t)

	te := run(t,
		".pool",
		"word: .word -2",
		"real: .word 2.5",
		"name: .string \"tyson\"",
		".text",
		".start",
		"stk_pshc 0x1ff",
		"show_top_b",
		"stk_pshc -3",
		"show_top_i",
		"stk_pshc 0.25",
		"show_top_r",
		"show_mem_b word",
		"show_mem_u word",
		"show_mem_i word",
		"show_mem_r real",
		"show_mem_s name",
		"die",
	)
	word := te.addr(t, "word")
	number := te.addr(t, "real")
	name := te.addr(t, "name")

	expect := []string{
		"stack-top(u8): 255",
		"stack-top(s64): -3",
		"stack-top(r64): 0.250000",
		fmt.Sprintf("heap[%d] = (u8) 254", word),
		fmt.Sprintf("heap[%d] = (u64) 18446744073709551614", word),
		fmt.Sprintf("heap[%d] = (s64) -2", word),
		fmt.Sprintf("heap[%d] = (r64) 2.500000", number),
		fmt.Sprintf("heap[%d] = (str) \"tyson\"", name),
		"",
	}
	assert.Equal(strings.Join(expect, "\n"), te.Out.String())
}

func TestEngine_Trace(t *testing.T) {
	assert := assert.New(t)

	te := build(t, DefaultLimits, "start: stk_psh1", "nop", "die")
	te.Traced = true
	te.Reset()
	te.SingleStep = false

	status, err := te.Run()
	assert.NoError(err)
	assert.Equal(EXIT_DIE, status)
	assert.Equal(uint64(3), te.Cycles)

	text := te.Traces.String()
	assert.Contains(text, "stk_psh1")
	assert.Contains(text, "nop")
	assert.Contains(text, "exit die after 3 cycles")
}

type countMonitor struct {
	calls int
	ips   []uint64
}

func (cm *countMonitor) Suspend(e *Engine) (halt bool, err error) {
	cm.calls++
	cm.ips = append(cm.ips, e.Ip)
	if cm.calls == 3 {
		e.SingleStep = false
	}
	return
}

func TestEngine_Monitor(t *testing.T) {
	assert := assert.New(t)

	te := build(t, DefaultLimits, "start: stk_psh1", "stk_psh2", "add_u", "stk_psh0", "die")
	monitor := &countMonitor{}
	te.Traced = true
	te.Monitor = monitor
	te.Reset()
	assert.True(te.SingleStep)

	status, err := te.Run()
	assert.NoError(err)
	assert.Equal(EXIT_DIE, status)
	assert.Equal(3, monitor.calls)
	base := uint64(image.TEXT_BASE)
	assert.Equal([]uint64{base, base + 1, base + 2}, monitor.ips)
	assert.Equal(uint64(5), te.Cycles)
}

type haltMonitor struct{}

func (haltMonitor) Suspend(e *Engine) (halt bool, err error) {
	return true, nil
}

func TestEngine_MonitorHalt(t *testing.T) {
	assert := assert.New(t)

	te := build(t, DefaultLimits, "start: stk_psh1", "die")
	te.Traced = true
	te.Monitor = haltMonitor{}
	te.Reset()

	status, err := te.Run()
	assert.NoError(err)
	assert.Equal(EXIT_DEBUG_END, status)
	assert.Equal(0, te.Stack.Depth())
}

func TestEngine_Breakpoint(t *testing.T) {
	assert := assert.New(t)

	program := []string{"start: nop", "breakpoint", "nop", "die"}

	te := build(t, DefaultLimits, program...)
	monitor := &countMonitor{}
	te.Monitor = monitor
	status, err := te.Run()
	assert.NoError(err)
	assert.Equal(EXIT_DIE, status)
	assert.Equal(0, monitor.calls)

	te = build(t, DefaultLimits, program...)
	monitor = &countMonitor{}
	te.Traced = true
	te.Monitor = monitor
	te.Reset()
	te.SingleStep = false
	status, err = te.Run()
	assert.NoError(err)
	assert.Equal(EXIT_DIE, status)
	assert.Equal(2, monitor.calls)
}
