// SPDX-License-Identifier: MIT

package parser

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/scanner"

	"github.com/katalvlaran/simplicity/ast"
)

const (
	kwAgent = "agent"
	kwRule  = "rule"
	kwNet   = "net"
)

// Parse reads src, reporting positions against file.
func Parse(file, src string) (*ast.System, error) {
	p := newParser(file, src)
	if err := p.next(); err != nil {
		return nil, err
	}
	if err := p.parseFile(); err != nil {
		return nil, err
	}
	return p.sys, nil
}

// ParseFile reads and parses the file at path.
func ParseFile(path string) (*ast.System, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("parser: read %s: %w", path, err)
	}
	return Parse(path, string(src))
}

type parser struct {
	s      scanner.Scanner
	file   string
	tok    rune
	lit    string
	pos    ast.Pos
	lexErr *Error

	sys    *ast.System
	agents map[string]ast.AgentID
	vars   *varScope
}

func newParser(file, src string) *parser {
	p := &parser{
		file:   file,
		sys:    &ast.System{},
		agents: make(map[string]ast.AgentID),
	}
	p.s.Init(strings.NewReader(src))
	p.s.Filename = file
	p.s.Mode = scanner.ScanIdents | scanner.ScanComments | scanner.SkipComments
	p.s.Error = func(s *scanner.Scanner, msg string) {
		if p.lexErr == nil {
			at := s.Pos()
			p.lexErr = &Error{File: file, Pos: ast.Pos{Line: at.Line, Col: at.Column}, Msg: msg, Err: ErrSyntax}
		}
	}
	return p
}

// next advances to the following token.
func (p *parser) next() error {
	p.tok = p.s.Scan()
	p.lit = p.s.TokenText()
	p.pos = ast.Pos{Line: p.s.Position.Line, Col: p.s.Position.Column}
	if p.lexErr != nil {
		return p.lexErr
	}
	return nil
}

func (p *parser) errorAt(at ast.Pos, sentinel error, format string, args ...any) error {
	return &Error{File: p.file, Pos: at, Msg: fmt.Sprintf(format, args...), Err: sentinel}
}

func (p *parser) unexpected(want string) error {
	found := "end of file"
	if p.tok != scanner.EOF {
		found = quote(p.lit)
	}
	return p.errorAt(p.pos, ErrUnexpected, "expected %s, found %s", want, found)
}

// got consumes the token tok if it is next.
func (p *parser) got(tok rune) (bool, error) {
	if p.tok != tok {
		return false, nil
	}
	return true, p.next()
}

func (p *parser) expect(tok rune) error {
	if p.tok != tok {
		return p.unexpected(quote(string(tok)))
	}
	return p.next()
}

// ident consumes an identifier and returns its text and position.
func (p *parser) ident() (string, ast.Pos, error) {
	if p.tok != scanner.Ident {
		return "", p.pos, p.unexpected("identifier")
	}
	name, at := p.lit, p.pos
	return name, at, p.next()
}

func (p *parser) parseFile() error {
	for p.tok != scanner.EOF {
		if p.tok != scanner.Ident {
			return p.unexpected("agent, rule or net")
		}
		var err error
		switch p.lit {
		case kwAgent:
			err = p.parseAgentDef()
		case kwRule:
			err = p.parseRuleDef()
		case kwNet:
			err = p.parseNetDef()
		default:
			err = p.unexpected("agent, rule or net")
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (p *parser) parseAgentDef() error {
	at := p.pos
	if err := p.next(); err != nil {
		return err
	}
	name, namePos, err := p.ident()
	if err != nil {
		return err
	}
	if err = p.expect('('); err != nil {
		return err
	}
	if err = p.expect('*'); err != nil {
		return err
	}

	var groups []int
	comma, err := p.got(',')
	if err != nil {
		return err
	}
	if comma {
		parts, err := parsePartition(p, func() (struct{}, error) {
			return struct{}{}, p.expect('*')
		})
		if err != nil {
			return err
		}
		groups = make([]int, len(parts))
		for i, g := range parts {
			groups[i] = len(g)
		}
	}
	if err = p.expect(')'); err != nil {
		return err
	}

	if _, dup := p.agents[name]; dup {
		return p.errorAt(namePos, ErrDuplicateAgent, "agent %s declared twice", quote(name))
	}
	p.agents[name] = ast.AgentID(len(p.sys.Agents))
	p.sys.Agents = append(p.sys.Agents, ast.AgentDef{Name: name, Groups: groups, Pos: at})
	return nil
}

func (p *parser) parseRuleDef() error {
	at := p.pos
	if err := p.next(); err != nil {
		return err
	}
	p.vars = newVarScope()

	a, err := p.parseNode(true)
	if err != nil {
		return err
	}
	b, err := p.parseNode(true)
	if err != nil {
		return err
	}
	result, err := p.parseBody()
	if err != nil {
		return err
	}
	if err = p.vars.check(p.file); err != nil {
		return err
	}
	p.sys.Rules = append(p.sys.Rules, ast.RuleDef{A: a, B: b, Result: result, Vars: p.vars.names, Pos: at})
	return nil
}

func (p *parser) parseNetDef() error {
	at := p.pos
	if err := p.next(); err != nil {
		return err
	}
	name, _, err := p.ident()
	if err != nil {
		return err
	}
	p.vars = newVarScope()

	if err = p.expect('('); err != nil {
		return err
	}
	var ports [][]ast.Var
	if p.tok != ')' {
		ports, err = parsePartition(p, p.parseVar)
		if err != nil {
			return err
		}
	}
	if err = p.expect(')'); err != nil {
		return err
	}
	nodes, err := p.parseBody()
	if err != nil {
		return err
	}
	if err = p.vars.check(p.file); err != nil {
		return err
	}
	p.sys.Nets = append(p.sys.Nets, ast.NetDef{Name: name, Ports: ports, Nodes: nodes, Vars: p.vars.names, Pos: at})
	return nil
}

// parseBody reads "{" { node } "}".
func (p *parser) parseBody() ([]ast.Node, error) {
	if err := p.expect('{'); err != nil {
		return nil, err
	}
	var nodes []ast.Node
	for p.tok != '}' {
		if p.tok == scanner.EOF {
			return nil, p.unexpected(quote("}"))
		}
		n, err := p.parseNode(false)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	return nodes, p.next()
}

// parseNode reads one agent occurrence. Root nodes bind auxiliary ports only.
func (p *parser) parseNode(root bool) (ast.Node, error) {
	name, at, err := p.ident()
	if err != nil {
		return ast.Node{}, err
	}
	id, ok := p.agents[name]
	if !ok {
		return ast.Node{}, p.errorAt(at, ErrUndefinedAgent, "undefined agent %s", quote(name))
	}
	if err = p.expect('('); err != nil {
		return ast.Node{}, err
	}
	var ports []ast.Var
	if p.tok != ')' {
		for {
			v, err := p.parseVar()
			if err != nil {
				return ast.Node{}, err
			}
			ports = append(ports, v)
			comma, err := p.got(',')
			if err != nil {
				return ast.Node{}, err
			}
			if !comma {
				break
			}
		}
	}
	if err = p.expect(')'); err != nil {
		return ast.Node{}, err
	}

	want := p.sys.Agents[id].Arity()
	if !root {
		want++
	}
	if len(ports) != want {
		return ast.Node{}, p.errorAt(at, ErrPortArity, "%s takes %d ports, got %d", name, want, len(ports))
	}
	return ast.Node{Agent: id, Ports: ports, Pos: at}, nil
}

func (p *parser) parseVar() (ast.Var, error) {
	name, at, err := p.ident()
	if err != nil {
		return 0, err
	}
	return p.vars.use(name, at), nil
}

// parsePartition reads group { "," group }, where a group is a single
// element or a braced list of elements. The closing ")" is left in place.
func parsePartition[T any](p *parser, elem func() (T, error)) ([][]T, error) {
	var out [][]T
	for {
		braced, err := p.got('{')
		if err != nil {
			return nil, err
		}
		var group []T
		for {
			x, err := elem()
			if err != nil {
				return nil, err
			}
			group = append(group, x)
			if !braced {
				break
			}
			comma, err := p.got(',')
			if err != nil {
				return nil, err
			}
			if !comma {
				if err = p.expect('}'); err != nil {
					return nil, err
				}
				break
			}
		}
		out = append(out, group)

		comma, err := p.got(',')
		if err != nil {
			return nil, err
		}
		if !comma {
			return out, nil
		}
	}
}

func quote(s string) string { return strconv.Quote(s) }
