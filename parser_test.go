package m1asm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, src string) (string, []Instruction) {
	t.Helper()
	toks, lexErrs := Lex([]byte(src))
	require.Empty(t, lexErrs)
	title, instrs, errs := Parse(toks)
	require.Empty(t, errs)
	return title, instrs
}

func TestParseMinimalProgram(t *testing.T) {
	src := ".TITLE HELLO\r\n" +
		"* L1:\n" +
		"  GOTO FETCH\n" +
		".END\n"
	title, instrs := mustParse(t, src)
	assert.Equal(t, "HELLO", title)
	require.Len(t, instrs, 1)
	assert.Equal(t, "L1", instrs[0].Label)
	require.NotNil(t, instrs[0].Seq)
	assert.Equal(t, SeqGoto, instrs[0].Seq.Kind)
	assert.Equal(t, "FETCH", instrs[0].Seq.Label)
}

func TestParseShortLiteralCalculation(t *testing.T) {
	src := ".TITLE T\n" +
		`* L1:` + "\n" +
		`  R0 := R1 + D"5` + "\n" +
		".END\n"
	_, instrs := mustParse(t, src)
	require.Len(t, instrs, 1)
	calc := instrs[0].Calc
	require.NotNil(t, calc)
	assert.Equal(t, CalcAlu, calc.Kind)
	assert.Equal(t, SbusR0, calc.Sbus)
	require.Equal(t, StmtFirst, calc.Stmt.Kind)
	assert.Equal(t, LbusR1, calc.Stmt.Lbus)
	assert.Equal(t, AluPlus, calc.Stmt.Alu)
	assert.True(t, calc.Stmt.Rbus.IsLiteral)
	assert.Equal(t, uint16(5), calc.Stmt.Rbus.Literal)
}

func TestParseSetByAluThrough(t *testing.T) {
	src := ".TITLE T\n" +
		"* L1:\n" +
		"  SET BY R0\n" +
		".END\n"
	_, instrs := mustParse(t, src)
	require.Len(t, instrs, 1)
	calc := instrs[0].Calc
	require.NotNil(t, calc)
	assert.Equal(t, CalcSet, calc.Kind)
	require.Equal(t, StmtAluThrough, calc.Stmt.Kind)
	assert.True(t, calc.Stmt.ThroughIsLbus)
	assert.Equal(t, LbusR0, calc.Stmt.ThroughLbus)
}

func TestParseIfStatement(t *testing.T) {
	src := ".TITLE T\n" +
		"* L1:\n" +
		"  IF CRY = 1 THEN TARGET ELSE FETCH\n" +
		".END\n"
	_, instrs := mustParse(t, src)
	require.Len(t, instrs, 1)
	seq := instrs[0].Seq
	require.NotNil(t, seq)
	assert.Equal(t, SeqIf, seq.Kind)
	assert.Equal(t, FlagCry, seq.Flag)
	assert.True(t, seq.FlagIsOne)
	assert.Equal(t, "TARGET", seq.Label)
	assert.True(t, seq.HasElseFetch)
}

func TestParseExIRAssign(t *testing.T) {
	src := ".TITLE T\n" +
		"* L1:\n" +
		"  IR := R2\n" +
		".END\n"
	_, instrs := mustParse(t, src)
	require.Len(t, instrs, 1)
	ex := instrs[0].Ex
	require.NotNil(t, ex)
	assert.Equal(t, ExIR, ex.Kind)
	assert.False(t, ex.IR.IsPlaceholder)
	assert.Equal(t, LbusR2, ex.IR.Reg)
}

func TestParseOutOfOrderFieldGroupsIsError(t *testing.T) {
	src := ".TITLE T\n" +
		"* L1:\n" +
		"  READ\n" +
		"  GOTO FETCH\n" +
		".END\n"
	toks, lexErrs := Lex([]byte(src))
	require.Empty(t, lexErrs)
	_, _, errs := Parse(toks)
	require.NotEmpty(t, errs)
	assert.Equal(t, ErrParse, errs[0].Kind)
}
