package commands

import (
	"github.com/spf13/cobra"

	"github.com/edalrymple/horizon/internal/api"
)

var apodSave bool

var apodCmd = &cobra.Command{
	Use:   "apod",
	Short: "Astronomy picture of the day",
	Long: `Retrieve information and the image URL for NASA's astronomy picture
of the day.

Examples:
  horizon apod
  horizon apod --date 2016-01-01 --hd
  horizon apod --save`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		resp, err := client.APOD(api.Params{
			"date": stringParam(cmd, "date"),
			"hd":   boolParam(cmd, "hd"),
		})
		if err != nil {
			return err
		}

		printResponse(client, resp)
		if apodSave {
			return saveImages(client, resp)
		}
		return nil
	},
}

func init() {
	apodCmd.Flags().String("date", "", "Picture date (YYYY-MM-DD, default today)")
	apodCmd.Flags().Bool("hd", false, "Request the high-definition image URL")
	apodCmd.Flags().BoolVar(&apodSave, "save", false, "Download the image(s) to the configured download directory")
}
