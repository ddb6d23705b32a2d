package main

import (
	"fmt"
	"sort"

	"github.com/alecthomas/chroma"
	"github.com/spf13/cobra"

	"github.com/unkn0wn-root/syntaxforge/internal/syntax"
)

func newChromaCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "chroma [scheme]",
		Short: "Print the chroma style entries derived from a scheme",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			def, err := a.resolve(args)
			if err != nil {
				return err
			}
			if _, err := syntax.ChromaStyle(def.Key, def.Profile); err != nil {
				return err
			}
			entries := syntax.ChromaEntries(def.Profile)
			tokens := make([]chroma.TokenType, 0, len(entries))
			for token := range entries {
				tokens = append(tokens, token)
			}
			sort.Slice(tokens, func(i, j int) bool { return tokens[i] < tokens[j] })

			out := cmd.OutOrStdout()
			for _, token := range tokens {
				if _, err := fmt.Fprintf(out, "%s: %s\n", token, entries[token]); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
