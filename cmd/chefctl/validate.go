package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jimmy00415/ChefWeb-sub000/internal/model"
	"github.com/jimmy00415/ChefWeb-sub000/internal/validation"
)

type validateResult struct {
	Valid      bool     `json:"valid" yaml:"valid"`
	Errors     []string `json:"errors" yaml:"errors"`
	Normalized any      `json:"normalized" yaml:"normalized"`
}

func newValidateCmd(opts *rootOptions) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:       "validate {booking|contact}",
		Short:     "Validate a booking or contact payload",
		Long:      "Validate a JSON booking or contact payload. Exits non-zero when the payload has errors.",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"booking", "contact"},
		RunE: func(cmd *cobra.Command, args []string) error {
			var result validateResult
			switch args[0] {
			case "booking":
				var req model.BookingRequest
				if err := readJSON(cmd, file, &req); err != nil {
					return err
				}
				result.Errors = validation.ValidateBookingPayload(&req)
				result.Normalized = validation.NormalizeBooking(&req)
			case "contact":
				var req model.ContactRequest
				if err := readJSON(cmd, file, &req); err != nil {
					return err
				}
				result.Normalized, result.Errors = validation.ValidateContact(&req)
			}
			if result.Errors == nil {
				result.Errors = []string{}
			}
			result.Valid = len(result.Errors) == 0

			if err := opts.print(cmd.OutOrStdout(), result); err != nil {
				return err
			}
			if !result.Valid {
				return fmt.Errorf("%s payload has %d error(s)", args[0], len(result.Errors))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "-", "JSON payload file, - for stdin")
	return cmd
}

// readJSON decodes path, or stdin when path is "-".
func readJSON(cmd *cobra.Command, path string, v any) error {
	var r io.Reader
	if path == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open payload: %w", err)
		}
		defer f.Close()
		r = f
	}

	if err := json.NewDecoder(r).Decode(v); err != nil {
		return fmt.Errorf("failed to decode payload: %w", err)
	}
	return nil
}
