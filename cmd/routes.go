package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rapidresponse/leadsite/internal/catalog"
	"github.com/rapidresponse/leadsite/internal/route"
)

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "Lists every service-in-location route",
	Long: `The routes command prints one "/<service>-in-<location>" path per service and
location pair in the catalog, services outermost, after checking that every
path resolves back to the pair it was built from.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		resolver, err := loadResolver()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, token := range resolver.Tokens() {
			fmt.Fprintf(out, "/%s\n", token)
		}
		return nil
	},
}

var resolveCmd = &cobra.Command{
	Use:   "resolve <token>",
	Short: "Resolves a combined route segment against the catalog",
	Long: `The resolve command decodes a "<service>-in-<location>" segment and prints the
service and location it names. It fails when the segment does not parse or
either half is not in the catalog.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		resolver, err := loadResolver()
		if err != nil {
			return err
		}
		res := resolver.Resolve(args[0])
		if !res.Found() {
			return fmt.Errorf("%s: %s", res.Kind, res.Reason)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "service:  %s (%s)\nlocation: %s (%s)\n",
			res.Service.Slug, res.Service.Name, res.Location.Slug, res.Location.Name)
		return nil
	},
}

func loadResolver() (*route.Resolver, error) {
	cat, err := catalog.Load(appConfig.CatalogFile)
	if err != nil {
		return nil, err
	}
	resolver := route.NewResolver(cat)
	if err := resolver.Verify(); err != nil {
		return nil, fmt.Errorf("catalog cannot be routed: %w", err)
	}
	return resolver, nil
}

func init() {
	rootCmd.AddCommand(routesCmd)
	rootCmd.AddCommand(resolveCmd)
}
