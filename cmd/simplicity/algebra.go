package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/simplicity/arrow"
)

func newAlgebraCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "algebra A B",
		Short: "Show composition, converse and intersection of two relations",
		Long: `Relations are written as five glyphs for ≪ ≺ ≈ ≻ ≫, with '-' for an
absent atom: "<<---" is {≪,≺}, "--*--" is {≈}, "--->>" is {≻,≫}.
Put "--" before the relations so they are not read as flags.`,
		Example: "  simplicity algebra -- -<--- -<---",
		Args:    cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			x, err := arrow.ParseArrow(args[0])
			if err != nil {
				return err
			}
			y, err := arrow.ParseArrow(args[1])
			if err != nil {
				return err
			}
			printAlgebra(a.stdout, x, y)
			return nil
		},
	}
}

func printAlgebra(w io.Writer, x, y arrow.Arrow) {
	row := func(name string, v arrow.Arrow) {
		fmt.Fprintf(w, "%-7s %s  %s\n", name, v, v.Symbols())
	}
	cx, _ := x.Converse()
	cy, _ := y.Converse()

	row("a", x)
	row("b", y)
	if j, ok := x.Join(y); ok {
		row("a ∘ b", j)
	} else {
		fmt.Fprintf(w, "%-7s %s\n", "a ∘ b", "no information")
	}
	row("a⁻¹", cx)
	row("b⁻¹", cy)
	row("a ∩ b", x.Merge(y))
}
