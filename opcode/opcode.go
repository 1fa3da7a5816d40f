// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package opcode defines the tyson instruction set and its operand encoding.
package opcode

import (
	"fmt"
)

// Opcode is a single-byte tyson instruction code.
type Opcode byte

// Control flow.
const (
	DIE    = Opcode(0)
	NOP    = Opcode(1)
	JMP    = Opcode(2)
	CALL   = Opcode(3)
	RET    = Opcode(4)
	SWCH   = Opcode(5)
	JEQ_B  = Opcode(6)
	JNEQ_B = Opcode(7)
	JEQ_W  = Opcode(8)
	JNEQ_W = Opcode(9)
	JGEQ_U = Opcode(10)
	JLEQ_U = Opcode(11)
	JGT_U  = Opcode(12)
	JLT_U  = Opcode(13)
	JGEQ_I = Opcode(14)
	JLEQ_I = Opcode(15)
	JGT_I  = Opcode(16)
	JLT_I  = Opcode(17)
	JGEQ_R = Opcode(18)
	JLEQ_R = Opcode(19)
	JGT_R  = Opcode(20)
	JLT_R  = Opcode(21)
	JMP_C1 = Opcode(22)
	JMP_C2 = Opcode(23)
	JMP_C3 = Opcode(24)
	JMP_C4 = Opcode(25)
	SET_C1 = Opcode(26)
	SET_C2 = Opcode(27)
	SET_C3 = Opcode(28)
	SET_C4 = Opcode(29)
)

// Logic and arithmetic.
const (
	EQ    = Opcode(30)
	NEQ   = Opcode(31)
	AND   = Opcode(32)
	NOT   = Opcode(33)
	OR    = Opcode(34)
	XOR   = Opcode(35)
	LSH   = Opcode(36)
	RSH   = Opcode(37)
	INC_B = Opcode(38)
	INC_U = Opcode(39)
	INC_I = Opcode(40)
	DEC_B = Opcode(41)
	DEC_U = Opcode(42)
	DEC_I = Opcode(43)
	ADD_B = Opcode(44)
	ADD_U = Opcode(45)
	ADD_I = Opcode(46)
	ADD_R = Opcode(47)
	SUB_B = Opcode(48)
	SUB_U = Opcode(49)
	SUB_I = Opcode(50)
	SUB_R = Opcode(51)
	MUL_B = Opcode(52)
	MUL_U = Opcode(53)
	MUL_I = Opcode(54)
	MUL_R = Opcode(55)
	DIV_B = Opcode(56)
	DIV_U = Opcode(57)
	DIV_I = Opcode(58)
	DIV_R = Opcode(59)
	MOD_B = Opcode(60)
	MOD_U = Opcode(61)
	MOD_I = Opcode(62)
)

// Type conversion.
const (
	B2U = Opcode(63)
	B2I = Opcode(64)
	B2R = Opcode(65)
	U2B = Opcode(66)
	U2I = Opcode(67)
	U2R = Opcode(68)
	I2B = Opcode(69)
	I2U = Opcode(70)
	I2R = Opcode(71)
	R2B = Opcode(72)
	R2U = Opcode(73)
	R2I = Opcode(74)
)

// Loop control and breakpoint.
const (
	LSTART     = Opcode(75)
	LTEST      = Opcode(76)
	LCONT      = Opcode(77)
	LSTOP      = Opcode(78)
	BREAKPOINT = Opcode(79)
)

// Memory movement.
const (
	PUT_B  = Opcode(80)
	PUT_NB = Opcode(81)
	PUT_HW = Opcode(82)
	PUT_W  = Opcode(83)
	PUT_NW = Opcode(84)
	PUT_DW = Opcode(85)
	PUT_QW = Opcode(86)
	PUT_S  = Opcode(87)
	CPY_B  = Opcode(88)
	CPY_NB = Opcode(89)
	CPY_HW = Opcode(90)
	CPY_W  = Opcode(91)
	CPY_NW = Opcode(92)
	CPY_DW = Opcode(93)
	CPY_QW = Opcode(94)
	CPY_S  = Opcode(95)
	XCH_B  = Opcode(96)
	XCH_NB = Opcode(97)
	XCH_HW = Opcode(98)
	XCH_W  = Opcode(99)
	XCH_NW = Opcode(100)
	XCH_DW = Opcode(101)
	XCH_QW = Opcode(102)
	XCH_S  = Opcode(103)
)

// Strings.
const (
	STR_CMP      = Opcode(104)
	STR_NCMP     = Opcode(105)
	JMP_STR_CMP  = Opcode(106)
	JMP_STR_NCMP = Opcode(107)
	STR_CHR      = Opcode(108)
	STR_CSPN     = Opcode(109)
	STR_STR      = Opcode(110)
	STR_CAT      = Opcode(111)
	STR_NCAT     = Opcode(112)
	STR_LEN      = Opcode(113)
)

// Return stack cursor, from-stack movement and table cursor.
const (
	RSTK_UP    = Opcode(114)
	RSTK_DWN   = Opcode(115)
	RSTK_RST   = Opcode(116)
	PUT_B_FS   = Opcode(117)
	PUT_W_FS   = Opcode(118)
	CPY_B_FS   = Opcode(119)
	CPY_W_FS   = Opcode(120)
	XCH_B_FS   = Opcode(121)
	XCH_W_FS   = Opcode(122)
	SET_TDX_FC = Opcode(123)
	SET_TDX_FH = Opcode(124)
	SET_TDX_FS = Opcode(125)
	T_FD_PUTB  = Opcode(126)
	T_BK_PUTB  = Opcode(127)
	T_FD_PUTW  = Opcode(128)
	T_BK_PUTW  = Opcode(129)
	T_FD_CPYB  = Opcode(130)
	T_BK_CPYB  = Opcode(131)
	T_FD_CPYW  = Opcode(132)
	T_BK_CPYW  = Opcode(133)
	T_FD_POPB  = Opcode(134)
	T_BK_POPB  = Opcode(135)
	T_FD_POPW  = Opcode(136)
	T_BK_POPW  = Opcode(137)
	T_FD_PSHB  = Opcode(138)
	T_BK_PSHB  = Opcode(139)
	T_FD_PSHW  = Opcode(140)
	T_BK_PSHW  = Opcode(141)
)

// Data stack.
const (
	STK_SPOFFS   = Opcode(142)
	STK_SAVE     = Opcode(143)
	STK_LOAD     = Opcode(144)
	STK_UP       = Opcode(145)
	STK_DWN      = Opcode(146)
	STK_RST      = Opcode(147)
	STK_CLR      = Opcode(148)
	STK_SET      = Opcode(149)
	STK_SETN     = Opcode(150)
	STK_SETC     = Opcode(151)
	STK_SETCN    = Opcode(152)
	STK_CPY      = Opcode(153)
	STK_CPYN     = Opcode(154)
	STK_XCH      = Opcode(155)
	STK_XCHN     = Opcode(156)
	STK_HXCH     = Opcode(157)
	STK_HXCHN    = Opcode(158)
	STK_MOV      = Opcode(159)
	STK_MOVN     = Opcode(160)
	STK_DEL      = Opcode(161)
	STK_DELN     = Opcode(162)
	STK_GET      = Opcode(163)
	STK_GETN     = Opcode(164)
	STK_INS      = Opcode(165)
	STK_INSN     = Opcode(166)
	STK_2TOP     = Opcode(167)
	STK_TT_DUP   = Opcode(168)
	STK_XT_DUP   = Opcode(169)
	STK_TX_DUP   = Opcode(170)
	STK_TOP_DUP  = Opcode(171)
	STK_TOP_DUP2 = Opcode(172)
	STK_DUP      = Opcode(173)
	STK_TAPSH    = Opcode(174)
	STK_PSH      = Opcode(175)
	STK_PSHC     = Opcode(176)
	STK_PSH0     = Opcode(177)
	STK_PSH1     = Opcode(178)
	STK_PSH2     = Opcode(179)
	STK_OVWR     = Opcode(180)
	STK_STOR     = Opcode(181)
	STK_POP      = Opcode(182)
	STK_XCHT     = Opcode(183)
	STK_GCOL     = Opcode(184)
)

// Reserved system calls.
const (
	OPENF     = Opcode(185)
	RSV_SYS2  = Opcode(186)
	RSV_SYS3  = Opcode(187)
	RSV_SYS4  = Opcode(188)
	RSV_SYS5  = Opcode(189)
	RSV_SYS6  = Opcode(190)
	RSV_SYS7  = Opcode(191)
	RSV_SYS8  = Opcode(192)
	RSV_SYS9  = Opcode(193)
	RSV_SYS10 = Opcode(194)
	RSV_SYS11 = Opcode(195)
	RSV_SYS12 = Opcode(196)
	RSV_SYS13 = Opcode(197)
	RSV_SYS14 = Opcode(198)
	RSV_SYS15 = Opcode(199)
)

// Introspection and table cursor stepping.
const (
	SHOW_TOP_B = Opcode(200)
	SHOW_TOP_U = Opcode(201)
	SHOW_TOP_I = Opcode(202)
	SHOW_TOP_R = Opcode(203)
	SHOW_MEM_B = Opcode(204)
	SHOW_MEM_U = Opcode(205)
	SHOW_MEM_I = Opcode(206)
	SHOW_MEM_R = Opcode(207)
	SHOW_MEM_S = Opcode(208)
	TDX_B_UP   = Opcode(209)
	TDX_B_DWN  = Opcode(210)
	TDX_W_UP   = Opcode(211)
	TDX_W_DWN  = Opcode(212)
)

// Stack overwrite constants and byte-typed ordered jumps.
const (
	STK_OVWRC = Opcode(213)
	STK_OVWR0 = Opcode(214)
	STK_OVWR1 = Opcode(215)
	STK_OVWR2 = Opcode(216)
	JGEQ_B    = Opcode(217)
	JLEQ_B    = Opcode(218)
	JGT_B     = Opcode(219)
	JLT_B     = Opcode(220)

	COUNT = 221 // Number of defined opcodes.
)

// String returns the mnemonic of the opcode.
func (op Opcode) String() string {
	if !op.Valid() {
		return fmt.Sprintf("op(0x%02x)", byte(op))
	}

	return _opcode_info[op].name
}

// Valid returns true if the opcode is defined.
func (op Opcode) Valid() bool {
	return int(op) < COUNT
}

// Reserved returns true if the opcode is defined, but terminates
// execution instead of performing an action.
func (op Opcode) Reserved() bool {
	return op.Valid() && _opcode_info[op].reserved
}

// Layout returns the operand encoding that follows the opcode byte.
func (op Opcode) Layout() []Operand {
	if !op.Valid() {
		return nil
	}

	return _opcode_info[op].layout
}

// Lookup finds an opcode by its mnemonic.
func Lookup(mnemonic string) (op Opcode, ok bool) {
	op, ok = _mnemonic[mnemonic]
	return
}

var _mnemonic map[string]Opcode

func init() {
	_mnemonic = make(map[string]Opcode, COUNT)
	for n, info := range _opcode_info {
		if len(info.name) == 0 {
			panic(fmt.Sprintf("opcode 0x%02x has no mnemonic", n))
		}
		_mnemonic[info.name] = Opcode(n)
	}
}
