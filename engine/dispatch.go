package engine

import (
	"fmt"

	op "github.com/ezrec/tyson/opcode"
)

// _dispatch maps each opcode to its handler. Each handler leaves the
// instruction pointer at the next instruction to execute.
var _dispatch [op.COUNT]handler

func init() {
	table := map[op.Opcode]handler{
		op.DIE:  (*Engine).opDie,
		op.NOP:  (*Engine).opNop,
		op.JMP:  (*Engine).opJmp,
		op.CALL: (*Engine).opCall,
		op.RET:  (*Engine).opRet,
		op.SWCH: (*Engine).opSwch,

		op.JEQ_B:  jumpIf(asB, eq[uint8]),
		op.JNEQ_B: jumpIf(asB, neq[uint8]),
		op.JGEQ_B: jumpIf(asB, geq[uint8]),
		op.JLEQ_B: jumpIf(asB, leq[uint8]),
		op.JGT_B:  jumpIf(asB, gt[uint8]),
		op.JLT_B:  jumpIf(asB, lt[uint8]),
		op.JEQ_W:  jumpIf(asU, eq[uint64]),
		op.JNEQ_W: jumpIf(asU, neq[uint64]),
		op.JGEQ_U: jumpIf(asU, geq[uint64]),
		op.JLEQ_U: jumpIf(asU, leq[uint64]),
		op.JGT_U:  jumpIf(asU, gt[uint64]),
		op.JLT_U:  jumpIf(asU, lt[uint64]),
		op.JGEQ_I: jumpIf(asI, geq[int64]),
		op.JLEQ_I: jumpIf(asI, leq[int64]),
		op.JGT_I:  jumpIf(asI, gt[int64]),
		op.JLT_I:  jumpIf(asI, lt[int64]),
		op.JGEQ_R: jumpIf(asR, geq[float64]),
		op.JLEQ_R: jumpIf(asR, leq[float64]),
		op.JGT_R:  jumpIf(asR, gt[float64]),
		op.JLT_R:  jumpIf(asR, lt[float64]),
		op.JMP_C1: jumpFast(0),
		op.JMP_C2: jumpFast(1),
		op.JMP_C3: jumpFast(2),
		op.JMP_C4: jumpFast(3),
		op.SET_C1: setFast(0),
		op.SET_C2: setFast(1),
		op.SET_C3: setFast(2),
		op.SET_C4: setFast(3),

		op.EQ:  compare(true),
		op.NEQ: compare(false),
		op.AND: binaryOp(asU, fromU, and),
		op.NOT: (*Engine).opNot,
		op.OR:  binaryOp(asU, fromU, or),
		op.XOR: binaryOp(asU, fromU, xor),
		op.LSH: binaryOp(asU, fromU, lsh),
		op.RSH: binaryOp(asU, fromU, rsh),

		op.INC_B: unary(asB, fromB, inc[uint8]),
		op.INC_U: unary(asU, fromU, inc[uint64]),
		op.INC_I: unary(asI, fromI, inc[int64]),
		op.DEC_B: unary(asB, fromB, dec[uint8]),
		op.DEC_U: unary(asU, fromU, dec[uint64]),
		op.DEC_I: unary(asI, fromI, dec[int64]),
		op.ADD_B: binaryOp(asB, fromB, add[uint8]),
		op.ADD_U: binaryOp(asU, fromU, add[uint64]),
		op.ADD_I: binaryOp(asI, fromI, add[int64]),
		op.ADD_R: binaryOp(asR, fromR, add[float64]),
		op.SUB_B: binaryOp(asB, fromB, sub[uint8]),
		op.SUB_U: binaryOp(asU, fromU, sub[uint64]),
		op.SUB_I: binaryOp(asI, fromI, sub[int64]),
		op.SUB_R: binaryOp(asR, fromR, sub[float64]),
		op.MUL_B: binaryOp(asB, fromB, mul[uint8]),
		op.MUL_U: binaryOp(asU, fromU, mul[uint64]),
		op.MUL_I: binaryOp(asI, fromI, mul[int64]),
		op.MUL_R: binaryOp(asR, fromR, mul[float64]),
		op.DIV_B: binaryOp(asB, fromB, div[uint8]),
		op.DIV_U: binaryOp(asU, fromU, div[uint64]),
		op.DIV_I: binaryOp(asI, fromI, div[int64]),
		op.DIV_R: binaryOp(asR, fromR, divR),
		op.MOD_B: binaryOp(asB, fromB, mod[uint8]),
		op.MOD_U: binaryOp(asU, fromU, mod[uint64]),
		op.MOD_I: binaryOp(asI, fromI, mod[int64]),

		op.B2U: convert[uint8, uint64](asB, fromU),
		op.B2I: convert[uint8, int64](asB, fromI),
		op.B2R: convert[uint8, float64](asB, fromR),
		op.U2B: convert[uint64, uint8](asU, fromB),
		op.U2I: convert[uint64, int64](asU, fromI),
		op.U2R: convert[uint64, float64](asU, fromR),
		op.I2B: convert[int64, uint8](asI, fromB),
		op.I2U: convert[int64, uint64](asI, fromU),
		op.I2R: convert[int64, float64](asI, fromR),
		op.R2B: convert[float64, uint8](asR, fromB),
		op.R2U: convert[float64, uint64](asR, fromU),
		op.R2I: convert[float64, int64](asR, fromI),

		op.LSTART:     (*Engine).opLstart,
		op.LTEST:      (*Engine).opLtest,
		op.LCONT:      (*Engine).opLcont,
		op.LSTOP:      (*Engine).opLstop,
		op.BREAKPOINT: (*Engine).opBreakpoint,

		op.PUT_B:  put(SIZE_B),
		op.PUT_NB: putN(SIZE_B),
		op.PUT_HW: put(SIZE_HW),
		op.PUT_W:  put(SIZE_W),
		op.PUT_NW: putN(SIZE_W),
		op.PUT_DW: put(SIZE_DW),
		op.PUT_QW: put(SIZE_QW),
		op.PUT_S:  (*Engine).opPutS,
		op.CPY_B:  move(SIZE_B, copyTo),
		op.CPY_NB: moveN(SIZE_B, copyTo),
		op.CPY_HW: move(SIZE_HW, copyTo),
		op.CPY_W:  move(SIZE_W, copyTo),
		op.CPY_NW: moveN(SIZE_W, copyTo),
		op.CPY_DW: move(SIZE_DW, copyTo),
		op.CPY_QW: move(SIZE_QW, copyTo),
		op.CPY_S:  (*Engine).opCpyS,
		op.XCH_B:  move(SIZE_B, swap),
		op.XCH_NB: moveN(SIZE_B, swap),
		op.XCH_HW: move(SIZE_HW, swap),
		op.XCH_W:  move(SIZE_W, swap),
		op.XCH_NW: moveN(SIZE_W, swap),
		op.XCH_DW: move(SIZE_DW, swap),
		op.XCH_QW: move(SIZE_QW, swap),
		op.XCH_S:  (*Engine).opXchS,

		op.STR_CMP:      strCmp(false),
		op.STR_NCMP:     strCmp(true),
		op.JMP_STR_CMP:  jmpStrCmp(false),
		op.JMP_STR_NCMP: jmpStrCmp(true),
		op.STR_CHR:      (*Engine).opStrChr,
		op.STR_CSPN:     (*Engine).opStrCspn,
		op.STR_STR:      (*Engine).opStrStr,
		op.STR_CAT:      strCat(false),
		op.STR_NCAT:     strCat(true),
		op.STR_LEN:      (*Engine).opStrLen,

		op.RSTK_UP:  (*Engine).opRstkUp,
		op.RSTK_DWN: (*Engine).opRstkDwn,
		op.RSTK_RST: (*Engine).opRstkRst,

		op.PUT_B_FS: putFromStack(SIZE_B),
		op.PUT_W_FS: putFromStack(SIZE_W),
		op.CPY_B_FS: moveFromStack(SIZE_B, copyTo),
		op.CPY_W_FS: moveFromStack(SIZE_W, copyTo),
		op.XCH_B_FS: moveFromStack(SIZE_B, swap),
		op.XCH_W_FS: moveFromStack(SIZE_W, swap),

		op.SET_TDX_FC: (*Engine).opSetTdxFc,
		op.SET_TDX_FH: (*Engine).opSetTdxFh,
		op.SET_TDX_FS: (*Engine).opSetTdxFs,
		op.T_FD_PUTB:  tablePut(SIZE_B, forward),
		op.T_BK_PUTB:  tablePut(SIZE_B, backward),
		op.T_FD_PUTW:  tablePut(SIZE_W, forward),
		op.T_BK_PUTW:  tablePut(SIZE_W, backward),
		op.T_FD_CPYB:  tableCpy(SIZE_B, forward),
		op.T_BK_CPYB:  tableCpy(SIZE_B, backward),
		op.T_FD_CPYW:  tableCpy(SIZE_W, forward),
		op.T_BK_CPYW:  tableCpy(SIZE_W, backward),
		op.T_FD_POPB:  tablePop(SIZE_B, forward),
		op.T_BK_POPB:  tablePop(SIZE_B, backward),
		op.T_FD_POPW:  tablePop(SIZE_W, forward),
		op.T_BK_POPW:  tablePop(SIZE_W, backward),
		op.T_FD_PSHB:  tablePsh(SIZE_B, forward),
		op.T_BK_PSHB:  tablePsh(SIZE_B, backward),
		op.T_FD_PSHW:  tablePsh(SIZE_W, forward),
		op.T_BK_PSHW:  tablePsh(SIZE_W, backward),
		op.TDX_B_UP:   tdxStep(SIZE_B, forward),
		op.TDX_B_DWN:  tdxStep(SIZE_B, backward),
		op.TDX_W_UP:   tdxStep(SIZE_W, forward),
		op.TDX_W_DWN:  tdxStep(SIZE_W, backward),

		op.STK_SPOFFS:   (*Engine).opStkSpoffs,
		op.STK_SAVE:     (*Engine).opStkSave,
		op.STK_LOAD:     (*Engine).opStkLoad,
		op.STK_UP:       (*Engine).opStkUp,
		op.STK_DWN:      (*Engine).opStkDwn,
		op.STK_RST:      (*Engine).opStkRst,
		op.STK_CLR:      (*Engine).opStkClr,
		op.STK_SET:      stackSet(false),
		op.STK_SETN:     stackSet(true),
		op.STK_SETC:     (*Engine).opStkSetc,
		op.STK_SETCN:    (*Engine).opStkSetcn,
		op.STK_CPY:      stackMove(false, copyTo),
		op.STK_CPYN:     stackMove(true, copyTo),
		op.STK_XCH:      stackMove(false, swap),
		op.STK_XCHN:     stackMove(true, swap),
		op.STK_HXCH:     heapExchange(false),
		op.STK_HXCHN:    heapExchange(true),
		op.STK_TOP_DUP:  dup(1),
		op.STK_TOP_DUP2: dup(2),
		op.STK_TAPSH:    (*Engine).opStkTapsh,
		op.STK_PSH:      (*Engine).opStkPsh,
		op.STK_PSHC:     (*Engine).opStkPshc,
		op.STK_PSH0:     pushConst(0),
		op.STK_PSH1:     pushConst(1),
		op.STK_PSH2:     pushConst(2),
		op.STK_OVWR:     (*Engine).opStkOvwr,
		op.STK_OVWRC:    (*Engine).opStkOvwrc,
		op.STK_OVWR0:    overwriteConst(0),
		op.STK_OVWR1:    overwriteConst(1),
		op.STK_OVWR2:    overwriteConst(2),
		op.STK_STOR:     (*Engine).opStkStor,
		op.STK_POP:      (*Engine).opStkPop,
		op.STK_XCHT:     (*Engine).opStkXcht,
		op.STK_GCOL:     (*Engine).opStkGcol,

		op.SHOW_TOP_B: showTop("u8", formatB),
		op.SHOW_TOP_U: showTop("u64", formatU),
		op.SHOW_TOP_I: showTop("s64", formatI),
		op.SHOW_TOP_R: showTop("r64", formatR),
		op.SHOW_MEM_B: showMem("u8", formatB, true),
		op.SHOW_MEM_U: showMem("u64", formatU, false),
		op.SHOW_MEM_I: showMem("s64", formatI, false),
		op.SHOW_MEM_R: showMem("r64", formatR, false),
		op.SHOW_MEM_S: (*Engine).opShowMemS,
	}

	for n := range op.COUNT {
		code := op.Opcode(n)
		if code.Reserved() {
			_dispatch[code] = (*Engine).opReserved
			continue
		}
		fn, ok := table[code]
		if !ok {
			panic(fmt.Sprintf("engine: no handler for %v", code))
		}
		_dispatch[code] = fn
	}
}
