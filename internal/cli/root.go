// Package cli implements the gpapi command line tool.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/globalpayments/gpapi-go/internal/config"
	"github.com/globalpayments/gpapi-go/pkg/gpapi"
)

const dateLayout = "2006-01-02"

type rootOptions struct {
	envFile    string
	configName string
	verbose    bool
}

// Execute runs the root command.
func Execute(version string) error {
	cmd := NewRootCmd()
	cmd.Version = version
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}

// NewRootCmd builds the command tree. Each invocation configures the gp-api
// service from the environment before running a subcommand.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "gpapi",
		Short: "Query and manage Global Payments GP-API transactions",
		Long: `gpapi talks to the Global Payments GP-API.

Credentials are read from GP_API_* environment variables or an .env file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.configure()
		},
	}

	cmd.PersistentFlags().StringVar(&opts.envFile, "env-file", "", "Load variables from this file instead of .env")
	cmd.PersistentFlags().StringVar(&opts.configName, "config-name", gpapi.DefaultConfigName, "Name to register the service configuration under")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log gateway requests and responses")

	cmd.AddCommand(tokenCmd(opts))
	cmd.AddCommand(transactionsCmd(opts))
	cmd.AddCommand(depositsCmd(opts))
	cmd.AddCommand(disputesCmd(opts))
	cmd.AddCommand(customersCmd(opts))

	return cmd
}

func (o *rootOptions) configure() error {
	var files []string
	if o.envFile != "" {
		files = append(files, o.envFile)
	}

	cfg, err := config.Load(files...)
	if err != nil {
		return err
	}
	if o.verbose {
		cfg.LogLevel = "debug"
	}

	logger, err := cfg.NewLogger()
	if err != nil {
		return err
	}
	cfg.GpAPI.Logger = logger
	if o.verbose {
		cfg.GpAPI.RequestLogger = gpapi.NewZapRequestLogger(logger)
	}

	if err := gpapi.ConfigureService(cfg.GpAPI, o.configName); err != nil {
		return fmt.Errorf("configure gp-api: %w", err)
	}
	logger.Debug("gp-api configured", zap.String("config", o.configName), zap.String("url", cfg.GpAPI.ServiceURL))
	return nil
}

func tokenCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "token",
		Short: "Print a GP-API access token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := gpapi.GetAccessToken(cmd.Context(), opts.configName)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
}

// listFlags are shared by the list subcommands.
type listFlags struct {
	page     int
	pageSize int
	from     string
	to       string
	status   string
}

func (f *listFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.page, "page", 1, "Page number")
	cmd.Flags().IntVar(&f.pageSize, "page-size", 10, "Results per page")
	cmd.Flags().StringVar(&f.from, "from", "", "Start date (YYYY-MM-DD), defaults to today")
	cmd.Flags().StringVar(&f.to, "to", "", "End date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.status, "status", "", "Status filter")
}

func (f *listFlags) dates() (from, to *time.Time, err error) {
	if from, err = parseDate("from", f.from); err != nil {
		return nil, nil, err
	}
	if to, err = parseDate("to", f.to); err != nil {
		return nil, nil, err
	}
	return from, to, nil
}

func parseDate(flag, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return nil, fmt.Errorf("--%s must be YYYY-MM-DD", flag)
	}
	return &t, nil
}

func applyListFlags[T any](b *gpapi.TransactionReportBuilder[T], f *listFlags) (*gpapi.TransactionReportBuilder[T], error) {
	from, to, err := f.dates()
	if err != nil {
		return nil, err
	}
	b.WithPaging(f.page, f.pageSize)
	if from != nil {
		b.WithStartDate(*from)
	}
	if to != nil {
		b.WithEndDate(*to)
	}
	return b, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
