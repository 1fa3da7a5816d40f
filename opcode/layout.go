// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package opcode

// Operand is the encoding of a single instruction operand.
type Operand int

const (
	OPERAND_BYTE   = Operand(0)
	OPERAND_HWORD  = Operand(1)
	OPERAND_WORD   = Operand(2)
	OPERAND_DWORD  = Operand(3)
	OPERAND_QWORD  = Operand(4)
	OPERAND_BYTES  = Operand(5)
	OPERAND_WORDS  = Operand(6)
	OPERAND_STRING = Operand(7)
	OPERAND_TABLE  = Operand(8)
)

// Size of the fixed-width operands, in bytes.
// Counted, terminated and table operands return 0.
func (o Operand) Size() int {
	switch o {
	case OPERAND_BYTE:
		return 1
	case OPERAND_HWORD:
		return 4
	case OPERAND_WORD:
		return 8
	case OPERAND_DWORD:
		return 16
	case OPERAND_QWORD:
		return 32
	}

	return 0
}

var (
	_b      = []Operand{OPERAND_BYTE}
	_w      = []Operand{OPERAND_WORD}
	_ww     = []Operand{OPERAND_WORD, OPERAND_WORD}
	_www    = []Operand{OPERAND_WORD, OPERAND_WORD, OPERAND_WORD}
	_wwww   = []Operand{OPERAND_WORD, OPERAND_WORD, OPERAND_WORD, OPERAND_WORD}
	_wwwww  = []Operand{OPERAND_WORD, OPERAND_WORD, OPERAND_WORD, OPERAND_WORD, OPERAND_WORD}
	_wb     = []Operand{OPERAND_WORD, OPERAND_BYTE}
	_wh     = []Operand{OPERAND_WORD, OPERAND_HWORD}
	_wd     = []Operand{OPERAND_WORD, OPERAND_DWORD}
	_wq     = []Operand{OPERAND_WORD, OPERAND_QWORD}
	_wbytes = []Operand{OPERAND_WORD, OPERAND_BYTES}
	_wwords = []Operand{OPERAND_WORD, OPERAND_WORDS}
	_wstr   = []Operand{OPERAND_WORD, OPERAND_STRING}
	_table  = []Operand{OPERAND_TABLE}
)

type info struct {
	name     string
	layout   []Operand
	reserved bool
}

var _opcode_info = [COUNT]info{
	DIE:          {name: "die"},
	NOP:          {name: "nop"},
	JMP:          {name: "jmp", layout: _w},
	CALL:         {name: "call", layout: _w},
	RET:          {name: "ret"},
	SWCH:         {name: "swch", layout: _table},
	JEQ_B:        {name: "jeq_b", layout: _w},
	JNEQ_B:       {name: "jneq_b", layout: _w},
	JEQ_W:        {name: "jeq_w", layout: _w},
	JNEQ_W:       {name: "jneq_w", layout: _w},
	JGEQ_U:       {name: "jgeq_u", layout: _w},
	JLEQ_U:       {name: "jleq_u", layout: _w},
	JGT_U:        {name: "jgt_u", layout: _w},
	JLT_U:        {name: "jlt_u", layout: _w},
	JGEQ_I:       {name: "jgeq_i", layout: _w},
	JLEQ_I:       {name: "jleq_i", layout: _w},
	JGT_I:        {name: "jgt_i", layout: _w},
	JLT_I:        {name: "jlt_i", layout: _w},
	JGEQ_R:       {name: "jgeq_r", layout: _w},
	JLEQ_R:       {name: "jleq_r", layout: _w},
	JGT_R:        {name: "jgt_r", layout: _w},
	JLT_R:        {name: "jlt_r", layout: _w},
	JMP_C1:       {name: "jmp_c1"},
	JMP_C2:       {name: "jmp_c2"},
	JMP_C3:       {name: "jmp_c3"},
	JMP_C4:       {name: "jmp_c4"},
	SET_C1:       {name: "set_c1", layout: _w},
	SET_C2:       {name: "set_c2", layout: _w},
	SET_C3:       {name: "set_c3", layout: _w},
	SET_C4:       {name: "set_c4", layout: _w},
	EQ:           {name: "eq"},
	NEQ:          {name: "neq"},
	AND:          {name: "and"},
	NOT:          {name: "not"},
	OR:           {name: "or"},
	XOR:          {name: "xor"},
	LSH:          {name: "lsh"},
	RSH:          {name: "rsh"},
	INC_B:        {name: "inc_b"},
	INC_U:        {name: "inc_u"},
	INC_I:        {name: "inc_i"},
	DEC_B:        {name: "dec_b"},
	DEC_U:        {name: "dec_u"},
	DEC_I:        {name: "dec_i"},
	ADD_B:        {name: "add_b"},
	ADD_U:        {name: "add_u"},
	ADD_I:        {name: "add_i"},
	ADD_R:        {name: "add_r"},
	SUB_B:        {name: "sub_b"},
	SUB_U:        {name: "sub_u"},
	SUB_I:        {name: "sub_i"},
	SUB_R:        {name: "sub_r"},
	MUL_B:        {name: "mul_b"},
	MUL_U:        {name: "mul_u"},
	MUL_I:        {name: "mul_i"},
	MUL_R:        {name: "mul_r"},
	DIV_B:        {name: "div_b"},
	DIV_U:        {name: "div_u"},
	DIV_I:        {name: "div_i"},
	DIV_R:        {name: "div_r"},
	MOD_B:        {name: "mod_b"},
	MOD_U:        {name: "mod_u"},
	MOD_I:        {name: "mod_i"},
	B2U:          {name: "b2u"},
	B2I:          {name: "b2i"},
	B2R:          {name: "b2r"},
	U2B:          {name: "u2b"},
	U2I:          {name: "u2i"},
	U2R:          {name: "u2r"},
	I2B:          {name: "i2b"},
	I2U:          {name: "i2u"},
	I2R:          {name: "i2r"},
	R2B:          {name: "r2b"},
	R2U:          {name: "r2u"},
	R2I:          {name: "r2i"},
	LSTART:       {name: "lstart", layout: _www},
	LTEST:        {name: "ltest"},
	LCONT:        {name: "lcont"},
	LSTOP:        {name: "lstop"},
	BREAKPOINT:   {name: "breakpoint"},
	PUT_B:        {name: "put_b", layout: _wb},
	PUT_NB:       {name: "put_nb", layout: _wbytes},
	PUT_HW:       {name: "put_hw", layout: _wh},
	PUT_W:        {name: "put_w", layout: _ww},
	PUT_NW:       {name: "put_nw", layout: _wwords},
	PUT_DW:       {name: "put_dw", layout: _wd},
	PUT_QW:       {name: "put_qw", layout: _wq},
	PUT_S:        {name: "put_s", layout: _wstr},
	CPY_B:        {name: "cpy_b", layout: _ww},
	CPY_NB:       {name: "cpy_nb", layout: _www},
	CPY_HW:       {name: "cpy_hw", layout: _ww},
	CPY_W:        {name: "cpy_w", layout: _ww},
	CPY_NW:       {name: "cpy_nw", layout: _www},
	CPY_DW:       {name: "cpy_dw", layout: _ww},
	CPY_QW:       {name: "cpy_qw", layout: _ww},
	CPY_S:        {name: "cpy_s", layout: _ww},
	XCH_B:        {name: "xch_b", layout: _ww},
	XCH_NB:       {name: "xch_nb", layout: _www},
	XCH_HW:       {name: "xch_hw", layout: _ww},
	XCH_W:        {name: "xch_w", layout: _ww},
	XCH_NW:       {name: "xch_nw", layout: _www},
	XCH_DW:       {name: "xch_dw", layout: _ww},
	XCH_QW:       {name: "xch_qw", layout: _ww},
	XCH_S:        {name: "xch_s", layout: _ww},
	STR_CMP:      {name: "str_cmp", layout: _ww},
	STR_NCMP:     {name: "str_ncmp", layout: _www},
	JMP_STR_CMP:  {name: "jmp_str_cmp", layout: _wwww},
	JMP_STR_NCMP: {name: "jmp_str_ncmp", layout: _wwwww},
	STR_CHR:      {name: "str_chr", layout: _wb},
	STR_CSPN:     {name: "str_cspn", layout: _ww},
	STR_STR:      {name: "str_str", layout: _ww},
	STR_CAT:      {name: "str_cat", layout: _ww},
	STR_NCAT:     {name: "str_ncat", layout: _www},
	STR_LEN:      {name: "str_len", layout: _w},
	RSTK_UP:      {name: "rstk_up"},
	RSTK_DWN:     {name: "rstk_dwn"},
	RSTK_RST:     {name: "rstk_rst"},
	PUT_B_FS:     {name: "put_b_fs", layout: _b},
	PUT_W_FS:     {name: "put_w_fs", layout: _w},
	CPY_B_FS:     {name: "cpy_b_fs", layout: _w},
	CPY_W_FS:     {name: "cpy_w_fs", layout: _w},
	XCH_B_FS:     {name: "xch_b_fs", layout: _w},
	XCH_W_FS:     {name: "xch_w_fs", layout: _w},
	SET_TDX_FC:   {name: "set_tdx_fc", layout: _w},
	SET_TDX_FH:   {name: "set_tdx_fh", layout: _w},
	SET_TDX_FS:   {name: "set_tdx_fs"},
	T_FD_PUTB:    {name: "t_fd_putb", layout: _b},
	T_BK_PUTB:    {name: "t_bk_putb", layout: _b},
	T_FD_PUTW:    {name: "t_fd_putw", layout: _w},
	T_BK_PUTW:    {name: "t_bk_putw", layout: _w},
	T_FD_CPYB:    {name: "t_fd_cpyb", layout: _w},
	T_BK_CPYB:    {name: "t_bk_cpyb", layout: _w},
	T_FD_CPYW:    {name: "t_fd_cpyw", layout: _w},
	T_BK_CPYW:    {name: "t_bk_cpyw", layout: _w},
	T_FD_POPB:    {name: "t_fd_popb"},
	T_BK_POPB:    {name: "t_bk_popb"},
	T_FD_POPW:    {name: "t_fd_popw"},
	T_BK_POPW:    {name: "t_bk_popw"},
	T_FD_PSHB:    {name: "t_fd_pshb"},
	T_BK_PSHB:    {name: "t_bk_pshb"},
	T_FD_PSHW:    {name: "t_fd_pshw"},
	T_BK_PSHW:    {name: "t_bk_pshw"},
	STK_SPOFFS:   {name: "stk_spoffs"},
	STK_SAVE:     {name: "stk_save", layout: _w},
	STK_LOAD:     {name: "stk_load", layout: _w},
	STK_UP:       {name: "stk_up"},
	STK_DWN:      {name: "stk_dwn"},
	STK_RST:      {name: "stk_rst"},
	STK_CLR:      {name: "stk_clr"},
	STK_SET:      {name: "stk_set", layout: _ww},
	STK_SETN:     {name: "stk_setn", layout: _www},
	STK_SETC:     {name: "stk_setc", layout: _ww},
	STK_SETCN:    {name: "stk_setcn", layout: _wbytes},
	STK_CPY:      {name: "stk_cpy", layout: _ww},
	STK_CPYN:     {name: "stk_cpyn", layout: _www},
	STK_XCH:      {name: "stk_xch", layout: _ww},
	STK_XCHN:     {name: "stk_xchn", layout: _www},
	STK_HXCH:     {name: "stk_hxch", layout: _ww},
	STK_HXCHN:    {name: "stk_hxchn", layout: _www},
	STK_MOV:      {name: "stk_mov", reserved: true},
	STK_MOVN:     {name: "stk_movn", reserved: true},
	STK_DEL:      {name: "stk_del", reserved: true},
	STK_DELN:     {name: "stk_deln", reserved: true},
	STK_GET:      {name: "stk_get", reserved: true},
	STK_GETN:     {name: "stk_getn", reserved: true},
	STK_INS:      {name: "stk_ins", reserved: true},
	STK_INSN:     {name: "stk_insn", reserved: true},
	STK_2TOP:     {name: "stk_2top", reserved: true},
	STK_TT_DUP:   {name: "stk_tt_dup", reserved: true},
	STK_XT_DUP:   {name: "stk_xt_dup", reserved: true},
	STK_TX_DUP:   {name: "stk_tx_dup", reserved: true},
	STK_TOP_DUP:  {name: "stk_top_dup"},
	STK_TOP_DUP2: {name: "stk_top_dup2"},
	STK_DUP:      {name: "stk_dup", reserved: true},
	STK_TAPSH:    {name: "stk_tapsh"},
	STK_PSH:      {name: "stk_psh", layout: _w},
	STK_PSHC:     {name: "stk_pshc", layout: _w},
	STK_PSH0:     {name: "stk_psh0"},
	STK_PSH1:     {name: "stk_psh1"},
	STK_PSH2:     {name: "stk_psh2"},
	STK_OVWR:     {name: "stk_ovwr", layout: _w},
	STK_STOR:     {name: "stk_stor", layout: _w},
	STK_POP:      {name: "stk_pop", layout: _w},
	STK_XCHT:     {name: "stk_xcht"},
	STK_GCOL:     {name: "stk_gcol"},
	OPENF:        {name: "openf", reserved: true},
	RSV_SYS2:     {name: "rsv_sys2", reserved: true},
	RSV_SYS3:     {name: "rsv_sys3", reserved: true},
	RSV_SYS4:     {name: "rsv_sys4", reserved: true},
	RSV_SYS5:     {name: "rsv_sys5", reserved: true},
	RSV_SYS6:     {name: "rsv_sys6", reserved: true},
	RSV_SYS7:     {name: "rsv_sys7", reserved: true},
	RSV_SYS8:     {name: "rsv_sys8", reserved: true},
	RSV_SYS9:     {name: "rsv_sys9", reserved: true},
	RSV_SYS10:    {name: "rsv_sys10", reserved: true},
	RSV_SYS11:    {name: "rsv_sys11", reserved: true},
	RSV_SYS12:    {name: "rsv_sys12", reserved: true},
	RSV_SYS13:    {name: "rsv_sys13", reserved: true},
	RSV_SYS14:    {name: "rsv_sys14", reserved: true},
	RSV_SYS15:    {name: "rsv_sys15", reserved: true},
	SHOW_TOP_B:   {name: "show_top_b"},
	SHOW_TOP_U:   {name: "show_top_u"},
	SHOW_TOP_I:   {name: "show_top_i"},
	SHOW_TOP_R:   {name: "show_top_r"},
	SHOW_MEM_B:   {name: "show_mem_b", layout: _w},
	SHOW_MEM_U:   {name: "show_mem_u", layout: _w},
	SHOW_MEM_I:   {name: "show_mem_i", layout: _w},
	SHOW_MEM_R:   {name: "show_mem_r", layout: _w},
	SHOW_MEM_S:   {name: "show_mem_s", layout: _w},
	TDX_B_UP:     {name: "tdx_b_up"},
	TDX_B_DWN:    {name: "tdx_b_dwn"},
	TDX_W_UP:     {name: "tdx_w_up"},
	TDX_W_DWN:    {name: "tdx_w_dwn"},
	STK_OVWRC:    {name: "stk_ovwrc", layout: _w},
	STK_OVWR0:    {name: "stk_ovwr0"},
	STK_OVWR1:    {name: "stk_ovwr1"},
	STK_OVWR2:    {name: "stk_ovwr2"},
	JGEQ_B:       {name: "jgeq_b", layout: _w},
	JLEQ_B:       {name: "jleq_b", layout: _w},
	JGT_B:        {name: "jgt_b", layout: _w},
	JLT_B:        {name: "jlt_b", layout: _w},
}
