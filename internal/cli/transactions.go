package cli

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/globalpayments/gpapi-go/pkg/gpapi"
	"github.com/globalpayments/gpapi-go/pkg/gpapi/entities"
)

func transactionsCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "transactions",
		Aliases: []string{"txn"},
		Short:   "Report on and manage transactions",
	}

	cmd.AddCommand(transactionsListCmd(opts))
	cmd.AddCommand(transactionsGetCmd(opts))
	cmd.AddCommand(manageCmd(opts, "capture", "Capture an authorized transaction", entities.Capture))
	cmd.AddCommand(manageCmd(opts, "refund", "Refund a captured transaction", entities.Refund))
	cmd.AddCommand(manageCmd(opts, "reverse", "Reverse a transaction before settlement", entities.Reversal))

	return cmd
}

func transactionsListCmd(opts *rootOptions) *cobra.Command {
	var (
		flags      listFlags
		settlement bool
		brand      string
		reference  string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Search transactions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b := gpapi.FindTransactions()
			if settlement {
				b = gpapi.FindSettlementTransactions()
			}
			b.Where(func(c *gpapi.SearchCriteria) {
				c.TransactionStatus = entities.TransactionStatus(flags.status)
				c.CardBrand = brand
				c.ReferenceNumber = reference
			})
			b, err := applyListFlags(b, &flags)
			if err != nil {
				return err
			}

			txns, err := b.ExecuteWithConfig(cmd.Context(), opts.configName)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), txns)
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&settlement, "settlement", false, "Search settled transactions")
	cmd.Flags().StringVar(&brand, "brand", "", "Card brand filter")
	cmd.Flags().StringVar(&reference, "reference", "", "Merchant reference filter")

	return cmd
}

func transactionsGetCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get [transaction-id]",
		Short: "Show one transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			txn, err := gpapi.TransactionDetail(args[0]).ExecuteWithConfig(cmd.Context(), opts.configName)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), txn)
		},
	}
}

func manageCmd(opts *rootOptions, use, short string, txnType entities.TransactionType) *cobra.Command {
	var (
		amount         string
		currency       string
		idempotencyKey string
	)

	cmd := &cobra.Command{
		Use:   use + " [transaction-id]",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b := gpapi.NewManagementBuilder(txnType, entities.NewTransactionReference(args[0])).
				WithCurrency(currency).
				WithIdempotencyKey(idempotencyKey)
			if amount != "" {
				d, err := decimal.NewFromString(amount)
				if err != nil {
					return fmt.Errorf("--amount: %w", err)
				}
				b.WithAmount(gpapi.Amount(d))
			}

			txn, err := b.ExecuteWithConfig(cmd.Context(), opts.configName)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), txn)
		},
	}

	cmd.Flags().StringVar(&amount, "amount", "", "Amount in major units, e.g. 10.99")
	cmd.Flags().StringVar(&currency, "currency", "", "ISO 4217 currency code")
	cmd.Flags().StringVar(&idempotencyKey, "idempotency-key", "", "Value for the x-gp-idempotency header")

	return cmd
}

func depositsCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deposits",
		Short: "Report on settlement deposits",
	}

	var flags listFlags
	list := &cobra.Command{
		Use:   "list",
		Short: "Search deposits",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := applyListFlags(gpapi.FindDeposits().WithDepositStatus(entities.DepositStatus(flags.status)), &flags)
			if err != nil {
				return err
			}
			deposits, err := b.ExecuteWithConfig(cmd.Context(), opts.configName)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), deposits)
		},
	}
	flags.register(list)

	get := &cobra.Command{
		Use:   "get [deposit-id]",
		Short: "Show one deposit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			deposit, err := gpapi.DepositDetail(args[0]).ExecuteWithConfig(cmd.Context(), opts.configName)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), deposit)
		},
	}

	cmd.AddCommand(list, get)
	return cmd
}
