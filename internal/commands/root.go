// Package commands provides the CLI commands for horizon.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/edalrymple/horizon/internal/api"
	"github.com/edalrymple/horizon/internal/config"
)

var (
	apiKeyFlag string

	// Version info (set at build time)
	Version = "0.1.0"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "horizon",
	Short: "CLI for the NASA Open APIs",
	Long: `horizon is a thin command-line wrapper for the NASA Open APIs
(https://api.nasa.gov). It covers the astronomy picture of the day, Mars
rover photos, Landsat earth imagery, the near-earth-object service, patents
and space sounds, and can extract and save every image referenced by a
response.

Requests use the shared DEMO_KEY unless a personal key is configured in
~/.horizon/config.json, the NASA_API_KEY environment variable, or --api-key.

Examples:
  horizon apod                          Today's astronomy picture
  horizon apod --date 2016-01-01 --save
  horizon mars sol curiosity 1000 --camera fhaz
  horizon neo feed 2015-09-07 2015-09-08
  horizon earth imagery --lat 1.5 --lon 100.75`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if v, _ := cmd.Flags().GetBool("version"); v {
			fmt.Printf("horizon %s\n", Version)
			return nil
		}
		return cmd.Help()
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&apiKeyFlag, "api-key", "k", "", "NASA API key (overrides config and environment)")
	rootCmd.Flags().BoolP("version", "v", false, "Show version and exit")

	rootCmd.AddCommand(apodCmd)
	rootCmd.AddCommand(marsCmd)
	rootCmd.AddCommand(earthCmd)
	rootCmd.AddCommand(neoCmd)
	rootCmd.AddCommand(patentsCmd)
	rootCmd.AddCommand(soundsCmd)
	rootCmd.AddCommand(camerasCmd)
}

// newClient builds the API client from config, environment and flags. A
// package variable so tests can inject a client backed by a mock transport.
var newClient = func() (*api.Client, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	key := cfg.APIKey
	if apiKeyFlag != "" {
		key = apiKeyFlag
	}
	return api.New(api.WithAPIKey(key))
}

// printResponse writes the pretty-printed body to stdout and the remaining
// rate-limit quota to stderr.
func printResponse(client *api.Client, resp *api.Response) {
	fmt.Println(resp.Pretty())
	fmt.Fprintf(os.Stderr, "Rate limit remaining: %s\n", client.RateLimitRemaining())
}

// saveImages runs the image walk over a response into the configured
// download directory. Already-saved paths are reported even when a later
// download fails.
func saveImages(client *api.Client, resp *api.Response) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	paths, walkErr := client.ImageWalk(resp.Body(), cfg.DownloadDir, "image")
	for _, p := range paths {
		fmt.Printf("Saved %s\n", p)
	}
	return walkErr
}

// Optional-parameter helpers: a flag the user never set must be absent from
// the request, not sent as a zero value, so these return nil for unchanged
// flags.

func stringParam(cmd *cobra.Command, name string) any {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetString(name)
	return v
}

func intParam(cmd *cobra.Command, name string) any {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetInt(name)
	return v
}

func boolParam(cmd *cobra.Command, name string) any {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetBool(name)
	return v
}

func floatParam(cmd *cobra.Command, name string) any {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetFloat64(name)
	return v
}
