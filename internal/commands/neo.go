package commands

import (
	"github.com/spf13/cobra"

	"github.com/edalrymple/horizon/internal/api"
)

var neoCmd = &cobra.Command{
	Use:   "neo",
	Short: "Near-earth-object service",
}

var neoFeedCmd = &cobra.Command{
	Use:   "feed <start-date> <end-date>",
	Short: "Asteroids by closest approach date",
	Long: `Retrieve asteroids by their closest approach date to Earth within
the given range.

Example:
  horizon neo feed 2015-09-07 2015-09-08`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		resp, err := client.NeoFeed(args[0], args[1])
		if err != nil {
			return err
		}
		printResponse(client, resp)
		return nil
	},
}

var neoTodayCmd = &cobra.Command{
	Use:   "today",
	Short: "Asteroids approaching Earth today",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		resp, err := client.NeoFeedToday()
		if err != nil {
			return err
		}
		printResponse(client, resp)
		return nil
	},
}

var neoLookupCmd = &cobra.Command{
	Use:   "lookup <asteroid-id>",
	Short: "Look up a specific asteroid",
	Long: `Look up a specific asteroid by its NASA JPL small body id.

Example:
  horizon neo lookup 3542519`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		resp, err := client.NeoLookup(args[0])
		if err != nil {
			return err
		}
		printResponse(client, resp)
		return nil
	},
}

var neoBrowseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the overall asteroid data set",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		resp, err := client.NeoBrowse(api.Params{
			"page": intParam(cmd, "page"),
			"size": intParam(cmd, "size"),
		})
		if err != nil {
			return err
		}
		printResponse(client, resp)
		return nil
	},
}

var neoStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Asteroid data set statistics",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		resp, err := client.NeoStats()
		if err != nil {
			return err
		}
		printResponse(client, resp)
		return nil
	},
}

func init() {
	neoBrowseCmd.Flags().Int("page", 0, "Result page")
	neoBrowseCmd.Flags().Int("size", 0, "Results per page")

	neoCmd.AddCommand(neoFeedCmd)
	neoCmd.AddCommand(neoTodayCmd)
	neoCmd.AddCommand(neoLookupCmd)
	neoCmd.AddCommand(neoBrowseCmd)
	neoCmd.AddCommand(neoStatsCmd)
}
