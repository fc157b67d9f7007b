package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/tcg/notation"
	"github.com/katalvlaran/tcg/route"
)

var routesCountOnly bool

// routesCmd enumerates the direct routes between two positions
var routesCmd = &cobra.Command{
	Use:   "routes FROM TO",
	Short: "Enumerate the direct routes between two positions",
	Long: `Prints every shortest orthogonal route from FROM to TO.

Positions use the "(x,y)@o" or "#k@o" notation, for example:
  tcg routes "(0,0)@1" "#3"`,
	Args: cobra.ExactArgs(2),
	RunE: runRoutes,
}

func init() {
	routesCmd.Flags().BoolVar(&routesCountOnly, "count", false, "Print only the number of routes")
}

func runRoutes(cmd *cobra.Command, args []string) error {
	from, err := notation.ParsePosition(args[0])
	if err != nil {
		return err
	}
	to, err := notation.ParsePosition(args[1])
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	n := route.Count(from, to)
	logger.Debug("enumerating routes",
		zap.Stringer("from", from), zap.Stringer("to", to), zap.Int("routes", n))
	if routesCountOnly {
		fmt.Fprintln(w, n)
		return nil
	}
	for r := range route.Direct(from, to) {
		fmt.Fprintln(w, r)
	}
	return nil
}
