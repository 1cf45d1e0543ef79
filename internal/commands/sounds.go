package commands

import (
	"github.com/spf13/cobra"

	"github.com/edalrymple/horizon/internal/api"
)

var soundsCmd = &cobra.Command{
	Use:   "sounds",
	Short: "Search space sounds",
	Long: `Retrieve NASA recorded sounds from space, hosted on SoundCloud.

Example:
  horizon sounds --q apollo --limit 10`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		resp, err := client.Sounds(api.Params{
			"q":     stringParam(cmd, "q"),
			"limit": intParam(cmd, "limit"),
		})
		if err != nil {
			return err
		}

		printResponse(client, resp)
		return nil
	},
}

func init() {
	soundsCmd.Flags().String("q", "", "Search text")
	soundsCmd.Flags().Int("limit", 0, "Maximum number of sounds")
}
