package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// operatorsCmd lists the operator catalog
var operatorsCmd = &cobra.Command{
	Use:   "operators",
	Short: "List the available operators and their variable domains",
	Args:  cobra.NoArgs,
	RunE:  runOperators,
}

func runOperators(cmd *cobra.Command, args []string) error {
	cat, err := catalog()
	if err != nil {
		return err
	}
	logger.Debug("listing operators", zap.Int("operators", cat.Len()))
	w := cmd.OutOrStdout()
	for _, op := range cat.All() {
		fmt.Fprint(w, op.Name())
		for _, v := range op.FreeVars() {
			fmt.Fprintf(w, " %s=%v", v, op.Domain(v))
		}
		fmt.Fprintln(w)
	}
	return nil
}
