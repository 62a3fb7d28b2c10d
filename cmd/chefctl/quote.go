package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jimmy00415/ChefWeb-sub000/internal/model"
	"github.com/jimmy00415/ChefWeb-sub000/internal/pricing"
	"github.com/jimmy00415/ChefWeb-sub000/internal/validation"
)

type quoteResult struct {
	model.QuoteResponse `yaml:",inline"`
	Formatted           string `json:"formatted" yaml:"formatted"`
}

func newQuoteCmd(opts *rootOptions) *cobra.Command {
	var (
		file string
		req  model.BookingRequest
		adults, children, addonsTotal, travelFee float64
	)

	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Price a booking from flags or a JSON booking payload",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if file != "" {
				if err := readJSON(cmd, file, &req); err != nil {
					return err
				}
			} else {
				req.NumAdults = model.Number(adults)
				req.NumChildren = model.Number(children)
				req.AddonsTotal = model.Number(addonsTotal)
				req.TravelFeeAmount = model.Number(travelFee)
			}

			n := validation.NormalizeBooking(&req)
			in := n.PricingInput()
			var unknown []string
			if len(n.Addons) > 0 {
				in.AddonsTotal, unknown = pricing.DefaultAddons().Total(n.Addons, in.Adults+in.Children)
			}
			totals := pricing.CalculateTotals(in)

			formatted := pricing.FormatUSD(totals.Total)
			if n.TravelFeeStatus == pricing.TravelFeeTBD {
				formatted += " + travel (TBD)"
			}

			return opts.print(cmd.OutOrStdout(), quoteResult{
				QuoteResponse: model.QuoteResponse{
					Package:       pricing.ResolvePackage(n.Package),
					Totals:        totals,
					TotalCents:    pricing.ToCents(totals.Total),
					UnknownAddons: unknown,
				},
				Formatted: formatted,
			})
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&file, "file", "f", "", "JSON booking payload, - for stdin")
	flags.StringVar(&req.Package, "package", pricing.DefaultPackage, "Package: essential, signature, premium")
	flags.Float64Var(&adults, "adults", 0, "Number of adults")
	flags.Float64Var(&children, "children", 0, "Number of children")
	flags.StringSliceVar(&req.Addons, "addon", nil, "Add-on id, name or alias (repeatable)")
	flags.Float64Var(&addonsTotal, "addons-total", 0, "Precomputed add-ons total, ignored when --addon is given")
	flags.StringVar(&req.TravelFeeStatus, "travel-status", pricing.TravelFeeEstimated, fmt.Sprintf("Travel fee status: %s, %s, %s", pricing.TravelFeeIncluded, pricing.TravelFeeEstimated, pricing.TravelFeeTBD))
	flags.Float64Var(&travelFee, "travel-fee", 0, "Travel fee amount")
	return cmd
}
