package cli

import (
	"github.com/spf13/cobra"

	"github.com/globalpayments/gpapi-go/pkg/gpapi"
	"github.com/globalpayments/gpapi-go/pkg/gpapi/entities"
)

func customersCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "customers",
		Short: "Manage stored customers",
	}

	var customer entities.Customer
	create := &cobra.Command{
		Use:   "create",
		Short: "Store a new customer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			created, err := gpapi.CreateRecurring(&customer).ExecuteWithConfig(cmd.Context(), opts.configName)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), created)
		},
	}
	create.Flags().StringVar(&customer.Reference, "reference", "", "Merchant reference")
	create.Flags().StringVar(&customer.FirstName, "first-name", "", "First name")
	create.Flags().StringVar(&customer.LastName, "last-name", "", "Last name")
	create.Flags().StringVar(&customer.Email, "email", "", "Email address")
	create.Flags().StringVar(&customer.Phone, "phone", "", "Phone number")

	get := &cobra.Command{
		Use:   "get [customer-id]",
		Short: "Show a stored customer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			found, err := gpapi.FetchRecurring(&entities.Customer{ID: args[0]}).ExecuteWithConfig(cmd.Context(), opts.configName)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), found)
		},
	}

	var criteria map[string]string
	search := &cobra.Command{
		Use:   "search",
		Short: "Search stored customers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b := gpapi.SearchRecurring(&entities.Customer{})
			for k, v := range criteria {
				b.AddSearchCriteria(k, v)
			}
			found, err := b.ExecuteWithConfig(cmd.Context(), opts.configName)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), found)
		},
	}
	search.Flags().StringToStringVar(&criteria, "where", nil, "Filters as key=value pairs")

	cmd.AddCommand(create, get, search)
	return cmd
}
