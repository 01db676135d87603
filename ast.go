package m1asm

// Instruction is one parsed `* [LABEL:] [ADDR]` block together with its up
// to four field-group lines. Any of the field groups may be nil, meaning
// "no-operation" for that slice of the microinstruction word.
type Instruction struct {
	Label      string
	HasLabel   bool
	Address    uint16
	HasAddress bool

	Seq  *SequenceField
	Mem  *MemoryField
	Calc *CalculationField
	Ex   *ExField

	Span Span
}

// Flag names the condition tested by an IF sequence statement.
type Flag int

const (
	FlagZer Flag = iota
	FlagNeg
	FlagCry
	FlagOv
	FlagCz
	FlagT
)

// SeqKind discriminates the next-address/test action of a SequenceField.
type SeqKind int

const (
	SeqNSQ SeqKind = iota
	SeqGoto
	SeqCall
	SeqReturn
	SeqIf
	SeqIOP
	SeqIRA
	SeqIAB
)

// SequenceField is the test-and-sequence field group (GOTO/CALL/RETURN/IF/
// IOP/IRA/IAB/NSQ). A nil *SequenceField on an Instruction is equivalent to
// an explicit NSQ.
type SequenceField struct {
	Kind  SeqKind
	Label string // target label for Goto/Call/If/IOP/IRA/IAB

	// If-only fields.
	Flag         Flag
	FlagIsOne    bool // flag = 1 (vs flag = 0)
	HasElseFetch bool // "ELSE FETCH" form
}

// MemKind is the memory action of a MemoryField.
type MemKind int

const (
	MemRead MemKind = iota
	MemWrite
)

// MemoryField is the memory field group. A nil *MemoryField means no memory
// action.
type MemoryField struct {
	Kind MemKind
}

// LbusReg enumerates the registers selectable onto LBUS.
type LbusReg int

const (
	LbusR0 LbusReg = iota
	LbusR1
	LbusR2
	LbusR3
	LbusR4
	LbusR5
	LbusR6
	LbusR7
	LbusRB
	LbusRBP
	LbusPC
	LbusIO
	LbusMM
	LbusIR
	LbusFSR
	LbusZero
)

// RbusReg enumerates the registers selectable onto RBUS. A literal operand
// is represented separately in RbusOperand.
type RbusReg int

const (
	RbusR0 RbusReg = iota
	RbusR1
	RbusR2
	RbusR3
	RbusR4
	RbusR5
	RbusR6
	RbusR7
	RbusRA
	RbusRAP
)

// RbusOperand is either a named register or a numeric literal on RBUS.
type RbusOperand struct {
	IsLiteral bool
	Reg       RbusReg
	Literal   uint16
}

// SbusReg enumerates the store-bus destinations of an ALU-form calculation.
type SbusReg int

const (
	SbusR0 SbusReg = iota
	SbusR1
	SbusR2
	SbusR3
	SbusR4
	SbusR5
	SbusR6
	SbusR7
	SbusRA
	SbusRAP
	SbusRB
	SbusRBP
	SbusPC
)

// AluOp is the ALU operator of a calculation statement.
type AluOp int

const (
	AluPlus AluOp = iota
	AluMinus
	AluAnd
	AluOr
	AluXor
	AluDollar
	AluAt
)

// ShiftOp is the optional shifter stage appended to an ALU op or an
// AluThrough pass.
type ShiftOp int

const (
	ShiftSLL ShiftOp = iota
	ShiftSRL
	ShiftSLA
	ShiftSRA
	ShiftSNX
	ShiftSWP
	ShiftNSB
)

// StmtKind discriminates a calculation Statement's right-hand side.
type StmtKind int

const (
	StmtFirst StmtKind = iota
	StmtAluThrough
)

// Statement is the right-hand side of a calculation statement: either the
// full "LBUS <alu>[:<shift>] RBUS" form, or a single-operand pass through an
// optional shifter.
type Statement struct {
	Kind StmtKind

	// StmtFirst fields.
	Lbus     LbusReg
	Alu      AluOp
	HasShift bool
	Shift    ShiftOp
	Rbus     RbusOperand

	// StmtAluThrough fields. HasShift/Shift are shared with StmtFirst.
	ThroughIsLbus bool
	ThroughLbus   LbusReg
	ThroughRbus   RbusOperand
}

// CalcKind discriminates whether a calculation writes its result to SBUS
// (Alu) or only computes it for side effects (Set).
type CalcKind int

const (
	CalcAlu CalcKind = iota
	CalcSet
)

// CalculationField is the datapath calculation field group: SBUS := stmt
// (Alu) or SET BY stmt (Set, result discarded). A nil *CalculationField
// means no calculation.
type CalculationField struct {
	Kind CalcKind
	Sbus SbusReg // valid when Kind == CalcAlu
	Stmt Statement
}

// ExKind enumerates the auxiliary EX actions. ExNex (no explicit field
// present) and the explicit "NEX" token both lower identically.
type ExKind int

const (
	ExNex ExKind = iota
	ExDecrementC
	ExFlagSave
	ExWithCry
	ExWithOne
	ExIR
	ExIO
	ExC
	ExExecuteIO
	ExAssign1ToT
	ExAssign0ToT
	ExIraPlus1
	ExIrbPlus1
	ExIrbMinus1
	ExSetHlt
	ExSetOv
)

// LbusSource is the right-hand side of "IR := src" / "IO := src": either a
// specific register, or the placeholder LBUS meaning "reuse the bus value
// already selected by the calculation field".
type LbusSource struct {
	IsPlaceholder bool
	Reg           LbusReg
}

// RbusSource is the right-hand side of "C := src": either a register or
// literal operand, or the placeholder RBUS meaning "reuse the bus value
// already selected by the calculation field".
type RbusSource struct {
	IsPlaceholder bool
	Operand       RbusOperand
}

// ExField is the auxiliary EX field group. A nil *ExField means no EX
// action (equivalent to an explicit NEX).
type ExField struct {
	Kind ExKind

	IR LbusSource // valid when Kind == ExIR
	IO LbusSource // valid when Kind == ExIO
	C  RbusSource // valid when Kind == ExC
}
