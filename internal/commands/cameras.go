package commands

import (
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/edalrymple/horizon/internal/models"
)

var camerasCmd = &cobra.Command{
	Use:   "cameras",
	Short: "List rover cameras",
	Long:  `List the known rover cameras and the rovers that carry them.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		codes := make([]string, 0, len(models.Cameras))
		for code := range models.Cameras {
			codes = append(codes, code)
		}
		sort.Strings(codes)

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "CODE\tNAME\tROVERS")
		for _, code := range codes {
			cam := models.Cameras[code]
			fmt.Fprintf(w, "%s\t%s\t%s\n", cam.Code, cam.FullName, strings.Join(cam.Rovers, ", "))
		}
		return w.Flush()
	},
}
