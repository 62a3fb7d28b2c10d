package main

import (
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jimmy00415/ChefWeb-sub000/internal/chatbot"
)

type classifyResult struct {
	Message        string   `json:"message" yaml:"message"`
	Normalized     string   `json:"normalized" yaml:"normalized"`
	Intent         string   `json:"intent" yaml:"intent"`
	Confidence     float64  `json:"confidence" yaml:"confidence"`
	MatchedPattern *string  `json:"matchedPattern" yaml:"matchedPattern"`
	Response       string   `json:"response" yaml:"response"`
	QuickReplies   []string `json:"quickReplies" yaml:"quickReplies"`
}

func newClassifyCmd(opts *rootOptions) *cobra.Command {
	var catalogPath string

	cmd := &cobra.Command{
		Use:   "classify <message>",
		Short: "Detect the intent of a chat message",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog := chatbot.LoadCatalogOrFallback(catalogPath, zap.NewNop())
			classifier := chatbot.NewClassifier(catalog)
			generator := chatbot.NewGenerator(classifier, nil)

			message := strings.Join(args, " ")
			det := classifier.Detect(message)
			reply := generator.Generate(message)

			return opts.print(cmd.OutOrStdout(), classifyResult{
				Message:        message,
				Normalized:     chatbot.Normalize(message),
				Intent:         det.Intent,
				Confidence:     det.Confidence,
				MatchedPattern: det.MatchedPattern,
				Response:       reply.Response,
				QuickReplies:   reply.QuickReplies,
			})
		},
	}

	cmd.Flags().StringVar(&catalogPath, "catalog", "", "Intent catalog file (.yaml or .json), bundled catalog if empty")
	return cmd
}

func newIntentsCmd(opts *rootOptions) *cobra.Command {
	var catalogPath string

	cmd := &cobra.Command{
		Use:   "intents",
		Short: "Print the intent catalog in declaration order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				catalog *chatbot.Catalog
				err     error
			)
			if catalogPath == "" {
				catalog, err = chatbot.DefaultCatalog()
			} else {
				catalog, err = chatbot.LoadCatalog(catalogPath)
			}
			if err != nil {
				return err
			}

			return opts.print(cmd.OutOrStdout(), map[string]any{
				"intents":  catalog.Intents(),
				"fallback": catalog.Fallback(),
			})
		},
	}

	cmd.Flags().StringVar(&catalogPath, "catalog", "", "Intent catalog file (.yaml or .json), bundled catalog if empty")
	return cmd
}
