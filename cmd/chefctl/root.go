package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type rootOptions struct {
	output string
}

// newRootCmd builds the chefctl command tree.
func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "chefctl",
		Short: "Offline tools for the ChefWeb booking backend",
		Long: `chefctl runs the ChefWeb chat classifier, pricing calculator and payload
validators locally, and hashes admin passwords for ADMIN_PASSWORD_HASH.

Examples:
  chefctl classify "how much is the premium package?"
  chefctl quote --package premium --adults 6 --addon wine --travel-fee 40
  chefctl validate booking -f booking.json
  chefctl hash-password`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&opts.output, "output", "o", "yaml", "Output format: yaml, json")

	rootCmd.AddCommand(
		newClassifyCmd(opts),
		newIntentsCmd(opts),
		newQuoteCmd(opts),
		newValidateCmd(opts),
		newHashPasswordCmd(),
	)
	return rootCmd
}

func (o *rootOptions) print(w io.Writer, v any) error {
	switch o.output {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml", "":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(v)
	default:
		return fmt.Errorf("unknown output format %q", o.output)
	}
}
