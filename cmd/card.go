package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/openagentic/textstat/pkg/a2a"
	"github.com/spf13/cobra"
)

var (
	cardJSONFlag bool

	cardCmd = &cobra.Command{
		Use:   "card",
		Short: "Print the configured agent card",
		RunE: func(cmd *cobra.Command, args []string) error {
			card := a2a.NewAgentCardFromConfig(cardFlag)

			if cardJSONFlag {
				b, err := json.MarshalIndent(card, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(b))
				return nil
			}

			fmt.Fprint(cmd.OutOrStdout(), card.String())
			return nil
		},
	}
)

func init() {
	rootCmd.AddCommand(cardCmd)

	cardCmd.Flags().BoolVar(&cardJSONFlag, "json", false, "Print the card as JSON")
	cardCmd.Flags().StringVarP(&cardFlag, "card", "c", "textstat", "Agent card key in the config")
}
