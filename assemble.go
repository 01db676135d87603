package m1asm

// Result is the successful output of Assemble: a title and one emitted
// line per source instruction, in source order.
type Result struct {
	Title string
	Lines []EmittedLine
}

// Assemble runs the full pipeline over src: lex, parse, assign addresses,
// build and check the symbol table, lower, resolve, and encode. Lex and
// parse errors are accumulated and returned together; any later-stage
// error aborts the pipeline immediately, matching §7's error policy.
func Assemble(src []byte) (*Result, []*Error) {
	toks, lexErrs := Lex(src)
	title, instrs, parseErrs := Parse(toks)

	if len(lexErrs) > 0 || len(parseErrs) > 0 {
		return nil, append(lexErrs, parseErrs...)
	}

	addressed, err := AssignAddresses(instrs)
	if err != nil {
		return nil, []*Error{err}
	}

	table := BuildSymbolTable(addressed)
	if unresolved := CheckUnresolvedLabels(addressed, table); len(unresolved) > 0 {
		errs := make([]*Error, len(unresolved))
		for i, name := range unresolved {
			errs[i] = &Error{Kind: ErrUnresolvedLabel, Label: name, Message: "label " + name + " is not defined"}
		}
		return nil, errs
	}

	mis := make([]MicroInstruction, len(addressed))
	for i, inst := range addressed {
		mi, err := Lower(inst)
		if err != nil {
			return nil, []*Error{err}
		}
		mis[i] = *mi
	}

	resolved, err := Resolve(mis, table)
	if err != nil {
		return nil, []*Error{err}
	}

	lines := make([]EmittedLine, len(resolved))
	for i, mi := range resolved {
		word, err := Encode(mi)
		if err != nil {
			return nil, []*Error{err}
		}
		lines[i] = EmittedLine{Address: addressed[i].Address, Word: word}
	}

	return &Result{Title: title, Lines: lines}, nil
}
