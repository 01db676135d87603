package m1asm

// SymbolTable maps a defined label to its assigned ROM address. It is
// built once and only ever read afterward (by the Resolver).
type SymbolTable map[string]uint16

// BuildSymbolTable performs a single forward scan over addressed
// instructions, recording the address of each labeled instruction. The
// first definition of a given label wins; later redefinitions are
// silently ignored, matching §4.2.
func BuildSymbolTable(instrs []Instruction) SymbolTable {
	table := make(SymbolTable)
	for _, inst := range instrs {
		if !inst.HasLabel {
			continue
		}
		if _, exists := table[inst.Label]; exists {
			continue
		}
		table[inst.Label] = inst.Address
	}
	return table
}

// referencedLabel returns the label a sequence field targets and whether
// it carries one at all. GOTO FETCH is not excluded here: it is returned
// like any label-carrying Goto, and the caller skips it.
func referencedLabel(sf *SequenceField) (string, bool) {
	if sf == nil {
		return "", false
	}
	switch sf.Kind {
	case SeqGoto, SeqCall, SeqIf, SeqIOP, SeqIRA, SeqIAB:
		return sf.Label, true
	default:
		return "", false
	}
}

// CheckUnresolvedLabels reports every label referenced by a sequence field
// that is never defined in the symbol table. GOTO FETCH is always legal
// and is never recorded as a reference, per §4.3. The returned slice is
// empty on success.
func CheckUnresolvedLabels(instrs []Instruction, table SymbolTable) []string {
	var unresolved []string
	seen := make(map[string]bool)
	for _, inst := range instrs {
		label, ok := referencedLabel(inst.Seq)
		if !ok {
			continue
		}
		if inst.Seq.Kind == SeqGoto && label == FetchLabel {
			continue
		}
		if _, defined := table[label]; defined {
			continue
		}
		if seen[label] {
			continue
		}
		seen[label] = true
		unresolved = append(unresolved, label)
	}
	return unresolved
}
