// SPDX-License-Identifier: MIT

package parser_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/simplicity/ast"
	"github.com/katalvlaran/simplicity/parser"
)

func TestParseFile(t *testing.T) {
	sys, err := parser.ParseFile("testdata/combinators.inet")
	require.NoError(t, err)

	require.Len(t, sys.Agents, 4)
	assert.Equal(t, "Con", sys.Agents[0].Name)
	assert.Equal(t, []int{1, 1}, sys.Agents[0].Groups)
	assert.Nil(t, sys.Agents[2].Groups, "Era has no auxiliary ports")
	assert.Equal(t, []int{2}, sys.Agents[3].Groups)
	assert.Equal(t, ast.Pos{Line: 2, Col: 1}, sys.Agents[0].Pos)

	require.Len(t, sys.Rules, 3)
	assert.Equal(t, "Con Con", sys.RuleName(sys.Rules[0]))
	assert.Equal(t, "Con Era", sys.RuleName(sys.Rules[1]))
	assert.Equal(t, "Con Dup", sys.RuleName(sys.Rules[2]))

	comm := sys.Rules[2]
	assert.Equal(t, []ast.Var{0, 1}, comm.A.Ports)
	assert.Equal(t, []ast.Var{2, 3}, comm.B.Ports)
	require.Len(t, comm.Result, 4)
	assert.Equal(t, []string{"a", "b", "c", "d", "x", "y", "z", "w"}, comm.Vars)
	assert.Equal(t, "Con(d, y, w)", sys.FormatNode(comm.Result[3], comm.Vars))

	require.Len(t, sys.Nets, 1)
	net := sys.Nets[0]
	assert.Equal(t, "main", net.Name)
	assert.Equal(t, [][]ast.Var{{0}, {1, 2}, {3}}, net.Ports)
	assert.Len(t, net.Nodes, 2)
}

func TestParse_ScopesVariablesPerRule(t *testing.T) {
	src := `
agent A(*, *)
rule A(x) A(x) {}
rule A(x) A(y) { A(x, y) }
`
	sys, err := parser.Parse("scope", src)
	require.NoError(t, err)
	require.Len(t, sys.Rules, 2)
	assert.Equal(t, []string{"x"}, sys.Rules[0].Vars)
	assert.Equal(t, []string{"x", "y"}, sys.Rules[1].Vars)
}

func TestParse_EmptyNet(t *testing.T) {
	sys, err := parser.Parse("", "agent A(*) net loop() { A(x) A(x) }")
	require.NoError(t, err)
	require.Len(t, sys.Nets, 1)
	assert.Empty(t, sys.Nets[0].Ports)
	assert.Len(t, sys.Nets[0].Nodes, 2)
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want error
		pos  ast.Pos
	}{
		{"undefined agent", "agent A(*)\nrule A() B() {}", parser.ErrUndefinedAgent, ast.Pos{Line: 2, Col: 10}},
		{"duplicate agent", "agent A(*)\nagent A(*, *)", parser.ErrDuplicateAgent, ast.Pos{Line: 2, Col: 7}},
		{"root arity", "agent A(*, *)\nrule A(x, y) A(x, y) {}", parser.ErrPortArity, ast.Pos{Line: 2, Col: 6}},
		{"body arity", "agent A(*, *)\nrule A(x) A(y) { A(x) }", parser.ErrPortArity, ast.Pos{Line: 2, Col: 18}},
		{"variable once", "agent A(*, *)\nrule A(x) A(y) { A(x, z) }", parser.ErrVariableUse, ast.Pos{Line: 2, Col: 13}},
		{"variable thrice", "agent A(*, *)\nrule A(x) A(x) { A(x, y) A(y, z) }", parser.ErrVariableUse, ast.Pos{Line: 2, Col: 20}},
		{"bad keyword", "type T", parser.ErrUnexpected, ast.Pos{Line: 1, Col: 1}},
		{"missing star", "agent A()", parser.ErrUnexpected, ast.Pos{Line: 1, Col: 9}},
		{"unclosed body", "agent A(*)\nnet n() { A(x) A(x)", parser.ErrUnexpected, ast.Pos{}},
		{"stray symbol", "agent A(*) + ", parser.ErrUnexpected, ast.Pos{Line: 1, Col: 12}},
		{"unterminated comment", "agent A(*) /* never closed", parser.ErrSyntax, ast.Pos{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sys, err := parser.Parse("in", tc.src)
			require.Error(t, err)
			assert.Nil(t, sys)
			assert.ErrorIs(t, err, tc.want)

			var perr *parser.Error
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, "in", perr.File)
			if tc.pos.IsValid() {
				assert.Equal(t, tc.pos, perr.Pos)
			}
		})
	}
}

func TestParseFile_Missing(t *testing.T) {
	_, err := parser.ParseFile("testdata/does-not-exist.inet")
	assert.Error(t, err)
}

func TestError_Format(t *testing.T) {
	err := &parser.Error{File: "f.inet", Pos: ast.Pos{Line: 3, Col: 4}, Msg: "boom", Err: parser.ErrSyntax}
	assert.Equal(t, "f.inet:3:4: boom", err.Error())
	err.File = ""
	assert.Equal(t, "3:4: boom", err.Error())
}
