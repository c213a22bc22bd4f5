package hlir

// DefinedName reports the variable name a statement directly binds, i.e.
// the kind of definition site reaching-definitions analysis tracks: a Let
// always binds its name, and an Assign binds a name only when its target
// is a plain variable (assignment through a field, index, or dereference
// mutates state reachable from a use, not a fresh binding).
func DefinedName(s Stmt) (string, bool) {
	switch n := s.(type) {
	case *Let:
		return n.Name, true
	case *Assign:
		if v, ok := n.Target.(*VarLValue); ok {
			return v.Name, true
		}
	}
	return "", false
}

// StmtUses returns the free variable names read by a single statement,
// excluding any nested block bodies (those are built into separate basic
// blocks by the CFG builder and are walked independently).
func StmtUses(s Stmt) []string {
	var names []string
	add := func(e Expr) {
		if e != nil {
			names = append(names, Uses(e)...)
		}
	}
	switch n := s.(type) {
	case *Let:
		add(n.Value)
	case *Assign:
		switch t := n.Target.(type) {
		case *DerefLValue:
			add(t.Ptr)
		case *FieldLValue:
			add(t.Object)
		case *IndexLValue:
			add(t.Array)
			add(t.Index)
		}
		add(n.Value)
	case *DerefAssign:
		add(n.Target)
		add(n.Value)
	case *ExprStmt:
		add(n.X)
	case *Print:
		for _, a := range n.Args {
			add(a)
		}
	case *Return:
		add(n.Value)
	case *If:
		add(n.Cond)
	case *While:
		add(n.Cond)
	}
	return names
}

// Uses recursively collects every free variable name referenced by an
// expression. An InlinedFunction's parameters shadow same-named captures
// within its own body; everything else it references is a use at the
// enclosing site.
func Uses(e Expr) []string {
	var names []string
	switch n := e.(type) {
	case *VarRef:
		names = append(names, n.Name)
	case *Literal:
		// no references
	case *Binary:
		names = append(names, Uses(n.Left)...)
		names = append(names, Uses(n.Right)...)
	case *Conditional:
		names = append(names, Uses(n.Cond)...)
		names = append(names, Uses(n.Then)...)
		names = append(names, Uses(n.Else)...)
	case *Call:
		names = append(names, Uses(n.Callee)...)
		for _, a := range n.Args {
			names = append(names, Uses(a)...)
		}
	case *Record:
		for _, f := range n.Fields {
			names = append(names, Uses(f.Value)...)
		}
	case *Array:
		for _, elt := range n.Elements {
			names = append(names, Uses(elt)...)
		}
	case *Index:
		names = append(names, Uses(n.Array)...)
		names = append(names, Uses(n.Idx)...)
	case *Field:
		names = append(names, Uses(n.Object)...)
	case *Ref:
		names = append(names, Uses(n.Operand)...)
	case *Deref:
		names = append(names, Uses(n.Operand)...)
	case *Paren:
		names = append(names, Uses(n.Inner)...)
	case *InlinedFunction:
		shadowed := make(map[string]bool, len(n.Params))
		for _, p := range n.Params {
			shadowed[p] = true
		}
		for _, u := range bodyUses(n.Body) {
			if !shadowed[u] {
				names = append(names, u)
			}
		}
	}
	return names
}

// bodyUses recursively collects every free variable use in stmts, including
// uses nested inside If/While/Block sub-bodies. The CFG builder never
// compiles an InlinedFunction's body into its own basic blocks (it is a
// captured closure, not a control-flow construct the enclosing CFG knows
// about), so unlike StmtUses on a top-level statement, nested control flow
// here cannot rely on its arms being walked as separate blocks and must be
// descended into explicitly.
func bodyUses(b *Block) []string {
	if b == nil {
		return nil
	}
	var names []string
	for _, s := range b.Stmts {
		names = append(names, StmtUses(s)...)
		switch n := s.(type) {
		case *Block:
			names = append(names, bodyUses(n)...)
		case *If:
			names = append(names, bodyUses(n.Then)...)
			names = append(names, bodyUses(n.Else)...)
		case *While:
			names = append(names, bodyUses(n.Body)...)
		}
	}
	return names
}
