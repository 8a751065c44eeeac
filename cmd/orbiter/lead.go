package main

import (
	"fmt"
	"strings"

	"orbiter/cmd/orbiter/cli"
	"orbiter/internal/errors"
	"orbiter/internal/lead"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

// fieldOrder is the order validation messages are printed in, matching
// the order of the form on the page.
var fieldOrder = []string{
	lead.FieldFirstName, lead.FieldLastName, lead.FieldOrganization,
	lead.FieldPhone, lead.FieldEmail, lead.FieldCountry,
	lead.FieldExistingCustomer, lead.FieldApplication, lead.FieldHowHeard,
	lead.FieldQuestions, lead.FieldConsent, lead.FieldNewsletter,
}

// NewLeadCmd submits a demo request from flags, for scripting.
func NewLeadCmd() *cobra.Command {
	var (
		form     lead.Form
		endpoint string
		dryRun   bool
	)

	cmd := &cobra.Command{
		Use:   "lead",
		Short: "Validate and submit a demo request",
		Long: `Validate a demo request built from flags and POST it to the configured endpoint.
Valid choices:
  --country      ` + strings.Join(lead.Countries, ", ") + `
  --customer     ` + strings.Join(lead.CustomerOptions, ", ") + `
  --application  ` + strings.Join(lead.Applications, ", ") + `
  --heard        ` + strings.Join(lead.HowHeardOptions, ", "),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if err := form.Validate(); err != nil {
				fields := errors.FieldErrors(err)
				for _, name := range fieldOrder {
					if msg, ok := fields[name]; ok {
						cli.PrintError(out, fmt.Sprintf("%s: %s", name, msg))
					}
				}
				return err
			}
			if dryRun {
				cli.PrintSuccess(out, "Demo request is valid")
				return nil
			}

			if endpoint == "" {
				endpoint = cfg.Lead.Endpoint
			}
			client := lead.NewClient(endpoint, cfg.Lead.Timeout)
			receipt, err := client.Submit(cmd.Context(), form)
			if err != nil {
				cli.PrintError(out, lead.FailureMessage)
				return err
			}

			cli.PrintSuccess(out, lead.SuccessMessage)
			fmt.Fprintln(out, cli.DrawBoxWithTheme(strings.Join([]string{
				"Submission: " + receipt.ID,
				"Endpoint:   " + client.Endpoint(),
				fmt.Sprintf("Status:     %d", receipt.StatusCode),
				"Sent:       " + humanize.Time(receipt.SubmittedAt),
			}, "\n")))
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&form.FirstName, "first-name", "", "first name (required)")
	f.StringVar(&form.LastName, "last-name", "", "last name (required)")
	f.StringVar(&form.Organization, "organization", "", "organization (required)")
	f.StringVar(&form.Phone, "phone", "", "phone number")
	f.StringVar(&form.Email, "email", "", "email address (required)")
	f.StringVar(&form.Country, "country", "", "country (required)")
	f.StringVar(&form.ExistingCustomer, "customer", "", "existing customer answer (required)")
	f.StringVar(&form.Application, "application", "", "application area (required)")
	f.StringVar(&form.HowHeard, "heard", "", "how you heard about us (required)")
	f.StringVar(&form.Questions, "questions", "", "questions or comments")
	f.BoolVar(&form.Consent, "consent", false, "consent to the submitted data being stored (required)")
	f.BoolVar(&form.Newsletter, "newsletter", false, "subscribe to the newsletter")
	f.StringVar(&endpoint, "endpoint", "", "override the configured submission endpoint")
	f.BoolVar(&dryRun, "dry-run", false, "validate only, do not submit")
	return cmd
}
