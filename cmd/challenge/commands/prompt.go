package commands

import (
	"fmt"

	"github.com/imkonsowa/restaurants-challenges/challenge"
	"github.com/spf13/cobra"
)

func promptCmd() *cobra.Command {
	var req request

	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Print the prompt for a theme without calling the model",
		RunE: func(cmd *cobra.Command, args []string) error {
			theme, err := challenge.Lookup(req.theme)
			if err != nil {
				return err
			}

			prompt, err := challenge.NewBuilder(theme).Build(req.category, req.text)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), prompt)
			return nil
		},
	}
	req.bind(cmd)

	return cmd
}
