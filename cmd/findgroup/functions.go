package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dshills/findgroup/internal/searcher"
)

func newFunctionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "functions PATH",
		Short: "Print the function spans of a source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outline, err := searcher.New().Outline(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(outline.Functions) == 0 {
				_, err := fmt.Fprintf(out, "no functions found (%s)\n", outline.Language)
				return err
			}
			for _, fn := range outline.Functions {
				if _, err := fmt.Fprintf(out, "%d-%d\t%s\n", fn.Start.Line, fn.End.Line, fn.QualifiedName()); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
