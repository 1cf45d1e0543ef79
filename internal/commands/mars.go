package commands

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/edalrymple/horizon/internal/api"
)

var (
	marsSolSave       bool
	marsEarthDateSave bool
)

var marsCmd = &cobra.Command{
	Use:   "mars",
	Short: "Mars rover photos",
	Long: `Retrieve photos taken by the Curiosity, Opportunity and Spirit
rovers, addressed either by martian sol or by earth date.`,
}

var marsSolCmd = &cobra.Command{
	Use:   "sol <rover> <sol>",
	Short: "Rover photos by martian sol",
	Long: `Retrieve rover photos taken on the given martian sol.

Examples:
  horizon mars sol curiosity 1000
  horizon mars sol curiosity 1000 --camera fhaz --page 2 --save`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		sol, err := strconv.Atoi(args[1])
		if err != nil {
			return err
		}

		client, err := newClient()
		if err != nil {
			return err
		}

		resp, err := client.MartianSol(args[0], sol, api.Params{
			"camera": stringParam(cmd, "camera"),
			"page":   intParam(cmd, "page"),
		})
		if err != nil {
			return err
		}

		printResponse(client, resp)
		if marsSolSave {
			return saveImages(client, resp)
		}
		return nil
	},
}

var marsEarthDateCmd = &cobra.Command{
	Use:   "earth-date <rover> <date>",
	Short: "Rover photos by earth date",
	Long: `Retrieve rover photos taken on the given earth date (YYYY-MM-DD).

Examples:
  horizon mars earth-date curiosity 2015-06-03
  horizon mars earth-date spirit 2007-02-14 --camera navcam`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		resp, err := client.EarthDate(args[0], args[1], api.Params{
			"camera": stringParam(cmd, "camera"),
			"page":   intParam(cmd, "page"),
		})
		if err != nil {
			return err
		}

		printResponse(client, resp)
		if marsEarthDateSave {
			return saveImages(client, resp)
		}
		return nil
	},
}

func init() {
	marsSolCmd.Flags().String("camera", "", "Camera code (see 'horizon cameras')")
	marsSolCmd.Flags().Int("page", 0, "Result page (25 photos per page)")
	marsSolCmd.Flags().BoolVar(&marsSolSave, "save", false, "Download the photos to the configured download directory")

	marsEarthDateCmd.Flags().String("camera", "", "Camera code (see 'horizon cameras')")
	marsEarthDateCmd.Flags().Int("page", 0, "Result page (25 photos per page)")
	marsEarthDateCmd.Flags().BoolVar(&marsEarthDateSave, "save", false, "Download the photos to the configured download directory")

	marsCmd.AddCommand(marsSolCmd)
	marsCmd.AddCommand(marsEarthDateCmd)
}
