package commands

import (
	"github.com/spf13/cobra"

	"github.com/edalrymple/horizon/internal/api"
)

var earthCmd = &cobra.Command{
	Use:   "earth",
	Short: "Landsat 8 earth imagery",
}

var earthImageryCmd = &cobra.Command{
	Use:   "imagery",
	Short: "Landsat 8 image for a location and date",
	Long: `Retrieve the Landsat 8 image for the entered location and date.

Examples:
  horizon earth imagery --lat 1.5 --lon 100.75 --date 2014-02-01
  horizon earth imagery --lat 1.5 --lon 100.75 --cloud-score`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		resp, err := client.Imagery(api.Params{
			"lat":         floatParam(cmd, "lat"),
			"lon":         floatParam(cmd, "lon"),
			"dim":         floatParam(cmd, "dim"),
			"date":        stringParam(cmd, "date"),
			"cloud_score": boolParam(cmd, "cloud-score"),
		})
		if err != nil {
			return err
		}

		printResponse(client, resp)
		return nil
	},
}

var earthAssetsCmd = &cobra.Command{
	Use:   "assets",
	Short: "Available imagery dates for a location",
	Long: `Retrieve the date-times and asset names of available Landsat 8
imagery for the entered location.

Examples:
  horizon earth assets --lat 1.5 --lon 100.75 --begin 2014-02-01`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		resp, err := client.Assets(api.Params{
			"lat":   floatParam(cmd, "lat"),
			"lon":   floatParam(cmd, "lon"),
			"begin": stringParam(cmd, "begin"),
			"end":   stringParam(cmd, "end"),
		})
		if err != nil {
			return err
		}

		printResponse(client, resp)
		return nil
	},
}

func init() {
	earthImageryCmd.Flags().Float64("lat", 0, "Latitude")
	earthImageryCmd.Flags().Float64("lon", 0, "Longitude")
	earthImageryCmd.Flags().Float64("dim", 0, "Width/height of the image in degrees")
	earthImageryCmd.Flags().String("date", "", "Image date (YYYY-MM-DD)")
	earthImageryCmd.Flags().Bool("cloud-score", false, "Compute the cloud coverage score")

	earthAssetsCmd.Flags().Float64("lat", 0, "Latitude")
	earthAssetsCmd.Flags().Float64("lon", 0, "Longitude")
	earthAssetsCmd.Flags().String("begin", "", "Beginning of the date range (YYYY-MM-DD)")
	earthAssetsCmd.Flags().String("end", "", "End of the date range (YYYY-MM-DD)")

	earthCmd.AddCommand(earthImageryCmd)
	earthCmd.AddCommand(earthAssetsCmd)
}
