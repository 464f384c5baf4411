package commands

import (
	"fmt"
	"strings"

	"github.com/imkonsowa/restaurants-challenges/challenge"
	"github.com/spf13/cobra"
)

func themesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List challenge themes and their categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, theme := range challenge.Themes {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n\t%s\n", theme.ID, theme.Title, strings.Join(theme.Categories, ", "))
			}
			return nil
		},
	}
}
