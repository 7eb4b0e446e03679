package parser

import "github.com/katalvlaran/simplicity/ast"

// varScope interns variable names for one rule or net and counts their uses.
type varScope struct {
	ids   map[string]ast.Var
	names []string
	uses  [][]ast.Pos
}

func newVarScope() *varScope {
	return &varScope{ids: make(map[string]ast.Var)}
}

// use returns the id of name, defining it on first sight.
func (s *varScope) use(name string, at ast.Pos) ast.Var {
	v, ok := s.ids[name]
	if !ok {
		v = ast.Var(len(s.names))
		s.ids[name] = v
		s.names = append(s.names, name)
		s.uses = append(s.uses, nil)
	}
	s.uses[v] = append(s.uses[v], at)
	return v
}

// check returns an error for the first variable, in definition order, that
// is not used exactly twice. It points at the third use, or the lone one.
func (s *varScope) check(file string) error {
	for v, at := range s.uses {
		switch {
		case len(at) == 2:
			continue
		case len(at) > 2:
			return &Error{File: file, Pos: at[2], Err: ErrVariableUse,
				Msg: "variable " + quote(s.names[v]) + " used more than twice"}
		default:
			return &Error{File: file, Pos: at[0], Err: ErrVariableUse,
				Msg: "variable " + quote(s.names[v]) + " used once"}
		}
	}
	return nil
}
