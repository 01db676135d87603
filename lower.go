package m1asm

// LowHalfKind discriminates the four mutually exclusive encodings of a
// MicroInstruction's low 16 bits (§3).
type LowHalfKind int

const (
	LowLlt LowHalfKind = iota
	LowTsAndEx
	LowTsExAndLt
	LowWithReference
)

// Reference is a sequence-field label: either still textual (Unresolved)
// or rewritten to its numeric address by the Resolver.
type Reference struct {
	Resolved bool
	Name     string
	Addr     uint16
}

// LowHalf is the tagged low-16-bit variant of a MicroInstruction. Only the
// fields relevant to Kind are meaningful.
type LowHalf struct {
	Kind LowHalfKind

	Llt uint16 // LowLlt

	Ts uint8 // LowTsAndEx, LowTsExAndLt, LowWithReference
	Ex uint8

	Lt uint16 // LowTsExAndLt: 9-bit short literal

	Ref Reference // LowWithReference
	Seq SqCode    // LowWithReference: sequence opcode, needed by the Encoder's address-scatter table
}

// MicroInstruction is the fully field-coded intermediate form produced by
// the Lowerer and consumed by the Resolver and Encoder.
type MicroInstruction struct {
	Lb, Rb uint8
	Al, Sh uint8
	Sb     uint8
	Mm     uint8
	Sq     SqCode
	Low    LowHalf
}

func memCode(m *MemoryField) uint8 {
	if m == nil {
		return MemCodeNone
	}
	return MemCode(m.Kind)
}

// sequenceLabel returns the label a (possibly nil) sequence field targets and whether it requires resolution. GOTO FETCH targets no
// address at all: the EI opcode alone encodes "return to fetch".
func sequenceLabel(sf *SequenceField) (string, bool) {
	if sf == nil {
		return "", false
	}
	switch sf.Kind {
	case SeqGoto:
		if sf.Label == FetchLabel {
			return "", false
		}
		return sf.Label, true
	case SeqCall, SeqIf, SeqIOP, SeqIRA, SeqIAB:
		return sf.Label, true
	default:
		return "", false
	}
}

func sequenceOpcode(sf *SequenceField) SqCode {
	if sf == nil {
		return SqNSQ
	}
	switch sf.Kind {
	case SeqNSQ:
		return SqNSQ
	case SeqGoto:
		if sf.Label == FetchLabel {
			return SqEI
		}
		return SqB
	case SeqCall:
		return SqBP
	case SeqReturn:
		return SqRTN
	case SeqIf:
		if sf.FlagIsOne {
			return SqBT
		}
		return SqBF
	case SeqIOP:
		return SqIOP
	case SeqIRA:
		return SqIRA
	case SeqIAB:
		return SqIAB
	default:
		panic("m1asm: unhandled SeqKind")
	}
}

func testCode(sf *SequenceField) uint8 {
	if sf == nil || sf.Kind != SeqIf {
		return TsCodeNone
	}
	return TsCode(sf.Flag)
}

// calcCodes derives the Lb/Rb/Al/Sh/Sb codes from a (possibly absent)
// calculation field, plus the literal value riding on Rb when Rb ends up
// coded as a short or long literal.
func calcCodes(c *CalculationField) (lb, rb, al, sh, sb uint8, literal uint16, hasLiteral bool) {
	lb, rb, al, sh, sb = LbusCodeNone, RbusCodeNone, AluCodeNone, ShiftCodeNone, SbusCodeNone
	if c == nil {
		return
	}
	if c.Kind == CalcAlu {
		sb = SbusCode(c.Sbus)
	}

	switch c.Stmt.Kind {
	case StmtFirst:
		lb = LbusCode(c.Stmt.Lbus)
		al = AluCode(c.Stmt.Alu)
		if c.Stmt.HasShift {
			sh = ShiftCode(c.Stmt.Shift)
		}
		rb = RbusOperandCode(c.Stmt.Rbus)
		if c.Stmt.Rbus.IsLiteral && rb != RbusCodeNone {
			literal, hasLiteral = c.Stmt.Rbus.Literal, true
		}
	case StmtAluThrough:
		// The ALU code for an AluThrough statement depends on which
		// calculation form carries it: the SET form defaults to OR,
		// while the plain ALU-write (store) form leaves the ALU idle.
		if c.Kind == CalcSet {
			al = AluCode(AluOr)
		} else {
			al = AluCodeNone
		}
		if c.Stmt.HasShift {
			sh = ShiftCode(c.Stmt.Shift)
		}
		if c.Stmt.ThroughIsLbus {
			lb = LbusCode(c.Stmt.ThroughLbus)
			rb = RbusCodeNone
		} else {
			rb = RbusOperandCode(c.Stmt.ThroughRbus)
			if c.Stmt.ThroughRbus.IsLiteral && rb != RbusCodeNone {
				literal, hasLiteral = c.Stmt.ThroughRbus.Literal, true
			}
		}
	default:
		panic("m1asm: unhandled StmtKind")
	}
	return
}

// Lower translates a parsed Instruction into a MicroInstruction, selecting
// the low-16-bit variant per the priority-ordered rules of §4.4.
func Lower(inst Instruction) (*MicroInstruction, *Error) {
	lb, rb, al, sh, sb, literal, hasLiteral := calcCodes(inst.Calc)
	ts := testCode(inst.Seq)
	sq := sequenceOpcode(inst.Seq)
	label, hasRef := sequenceLabel(inst.Seq)

	exCode := uint8(ExCodeNex)
	if inst.Ex != nil {
		exCode = ExCode(inst.Ex.Kind)
	}

	// Rules 1 and 2 (long/short literal) take priority over rule 3 (the EX
	// source override): a literal already riding in on the calculation
	// field's RBUS is classified before any override is considered, and
	// wins outright, mirroring the Rust priority chain where Rb::Llt and
	// Rb::Slt are matched ahead of Ex::Lir/Lio/Sc. Only when the RBUS code
	// is neither does the override get a chance to patch LB/RB and have
	// its own result reconsidered against the same two rules.
	for pass := 0; pass < 2; pass++ {
		switch rb {
		case RbusCodeLLT:
			// Rule 1. Note this check can never pass when the literal rode
			// in on an EX "C := <literal>" override, since exCode is then
			// Sc, not Nex: the calculation-sourced and EX-sourced
			// long-literal paths share this one legality test even though
			// only the former can satisfy it.
			if ts != TsCodeNone || hasRef || exCode != ExCodeNex {
				return nil, &Error{Kind: ErrIllegalEncoding, Span: inst.Span, Message: "long literal cannot combine with test, label reference, or EX action"}
			}
			mi := &MicroInstruction{Lb: lb, Rb: rb, Al: al, Sh: sh, Sb: sb, Mm: memCode(inst.Mem), Sq: sq}
			mi.Low = LowHalf{Kind: LowLlt, Llt: literal}
			return mi, nil

		case RbusCodeSLT:
			// Rule 2.
			if hasRef {
				return nil, &Error{Kind: ErrIllegalEncoding, Span: inst.Span, Message: "short literal cannot combine with a label reference"}
			}
			if !hasLiteral {
				return nil, &Error{Kind: ErrIllegalEncoding, Span: inst.Span, Message: "internal: SLT code without a literal value"}
			}
			mi := &MicroInstruction{Lb: lb, Rb: rb, Al: al, Sh: sh, Sb: sb, Mm: memCode(inst.Mem), Sq: sq}
			mi.Low = LowHalf{Kind: LowTsExAndLt, Ts: ts, Ex: exCode, Lt: literal}
			return mi, nil
		}

		if pass == 1 || inst.Ex == nil {
			break
		}

		// Rule 3: EX source-override path. IR/IO/C with an explicit
		// (non-placeholder) source requires the calculation field to be
		// absent, and patches the corresponding Lb or Rb slot.
		switch inst.Ex.Kind {
		case ExIR:
			if !inst.Ex.IR.IsPlaceholder {
				if inst.Calc != nil {
					return nil, &Error{Kind: ErrIllegalEncoding, Span: inst.Span, Message: "IR source override cannot combine with a calculation field"}
				}
				lb = LbusCode(inst.Ex.IR.Reg)
			}
		case ExIO:
			if !inst.Ex.IO.IsPlaceholder {
				if inst.Calc != nil {
					return nil, &Error{Kind: ErrIllegalEncoding, Span: inst.Span, Message: "IO source override cannot combine with a calculation field"}
				}
				lb = LbusCode(inst.Ex.IO.Reg)
			}
		case ExC:
			if !inst.Ex.C.IsPlaceholder {
				if inst.Calc != nil {
					return nil, &Error{Kind: ErrIllegalEncoding, Span: inst.Span, Message: "C source override cannot combine with a calculation field"}
				}
				op := inst.Ex.C.Operand
				rb = RbusOperandCode(op)
				if op.IsLiteral && rb != RbusCodeNone {
					literal, hasLiteral = op.Literal, true
				} else {
					hasLiteral = false
				}
			}
		}
	}

	// Rule 4.
	mi := &MicroInstruction{Lb: lb, Rb: rb, Al: al, Sh: sh, Sb: sb, Mm: memCode(inst.Mem), Sq: sq}
	if hasRef {
		mi.Low = LowHalf{Kind: LowWithReference, Ts: ts, Ex: exCode, Ref: Reference{Name: label}, Seq: sq}
	} else {
		mi.Low = LowHalf{Kind: LowTsAndEx, Ts: ts, Ex: exCode}
	}
	return mi, nil
}
