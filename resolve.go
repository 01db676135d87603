package m1asm

// Resolve rewrites every WithReference low-half variant carrying an
// unresolved label to its numeric address, looking the label up in table.
// Other variants pass through unchanged. Fails with UnresolvedLabel if a
// referenced label was never defined.
func Resolve(mis []MicroInstruction, table SymbolTable) ([]MicroInstruction, *Error) {
	out := make([]MicroInstruction, len(mis))
	for i, mi := range mis {
		if mi.Low.Kind == LowWithReference && !mi.Low.Ref.Resolved {
			addr, ok := table[mi.Low.Ref.Name]
			if !ok {
				return nil, &Error{Kind: ErrUnresolvedLabel, Label: mi.Low.Ref.Name, Message: "label " + mi.Low.Ref.Name + " is not defined"}
			}
			mi.Low.Ref = Reference{Resolved: true, Name: mi.Low.Ref.Name, Addr: addr}
		}
		out[i] = mi
	}
	return out, nil
}
