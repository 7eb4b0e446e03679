// SPDX-License-Identifier: MIT

package parser

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/simplicity/ast"
)

// Sentinel errors wrapped by *Error.
var (
	ErrSyntax         = errors.New("parser: syntax error")
	ErrUnexpected     = errors.New("parser: unexpected token")
	ErrDuplicateAgent = errors.New("parser: duplicate agent")
	ErrUndefinedAgent = errors.New("parser: undefined agent")
	ErrPortArity      = errors.New("parser: port arity mismatch")
	ErrVariableUse    = errors.New("parser: variable not used exactly twice")
)

// Error is a positioned parse failure.
type Error struct {
	File string
	Pos  ast.Pos
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.File == "" {
		return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
	}
	return fmt.Sprintf("%s:%s: %s", e.File, e.Pos, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }
