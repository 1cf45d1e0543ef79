package commands

import (
	"github.com/spf13/cobra"

	"github.com/edalrymple/horizon/internal/api"
)

var patentsCmd = &cobra.Command{
	Use:   "patents",
	Short: "Search NASA patents",
	Long: `Retrieve a list of NASA patents.

Example:
  horizon patents --query temperature --limit 5`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		resp, err := client.Patents(api.Params{
			"query":        stringParam(cmd, "query"),
			"concept_tags": boolParam(cmd, "concept-tags"),
			"limit":        intParam(cmd, "limit"),
		})
		if err != nil {
			return err
		}

		printResponse(client, resp)
		return nil
	},
}

func init() {
	patentsCmd.Flags().String("query", "", "Search text")
	patentsCmd.Flags().Bool("concept-tags", false, "Return concept tags for each patent")
	patentsCmd.Flags().Int("limit", 0, "Maximum number of patents")
}
