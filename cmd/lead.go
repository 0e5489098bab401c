package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rapidresponse/leadsite/internal/leads"
)

var leadValues leads.Lead

var leadCmd = &cobra.Command{
	Use:   "lead",
	Short: "Submits a single lead to the configured endpoint",
	Long: `The lead command sends one submission to the lead endpoint exactly as the
contact form does. It makes a single attempt and reports the outcome.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := leads.NewClient(leads.ClientConfig{
			Endpoint:   appConfig.Leads.Endpoint,
			BusinessID: appConfig.Leads.BusinessID,
			Source:     appConfig.Leads.Source,
			Timeout:    appConfig.Leads.Timeout,
			Logger:     logger.Named("leads"),
		})
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		form := leads.NewForm()
		form.Values = leadValues
		if err := form.Submit(ctx, client); err != nil {
			return fmt.Errorf("%s: %w", form.ErrorMessage, err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "lead submitted")
		return nil
	},
}

func init() {
	leadCmd.Flags().StringVar(&leadValues.Name, "name", "", "contact name (required)")
	leadCmd.Flags().StringVar(&leadValues.Email, "email", "", "contact email (required)")
	leadCmd.Flags().StringVar(&leadValues.Phone, "phone", "", "contact phone")
	leadCmd.Flags().StringVar(&leadValues.Message, "message", "", "message describing the job")
	rootCmd.AddCommand(leadCmd)
}
