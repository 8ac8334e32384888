package cli

import (
	"encoding/base64"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/globalpayments/gpapi-go/pkg/gpapi"
	"github.com/globalpayments/gpapi-go/pkg/gpapi/entities"
)

func disputesCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "disputes",
		Short: "Report on and respond to disputes",
	}

	cmd.AddCommand(disputesListCmd(opts))
	cmd.AddCommand(disputesGetCmd(opts))
	cmd.AddCommand(disputesAcceptCmd(opts))
	cmd.AddCommand(disputesChallengeCmd(opts))
	cmd.AddCommand(disputesDocumentCmd(opts))

	return cmd
}

func disputesListCmd(opts *rootOptions) *cobra.Command {
	var (
		flags      listFlags
		settlement bool
		stage      string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Search disputes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			from, to, err := flags.dates()
			if err != nil {
				return err
			}

			b := gpapi.FindDisputes()
			if settlement {
				b = gpapi.FindSettlementDisputes()
			}
			b.WithPaging(flags.page, flags.pageSize).Where(func(c *gpapi.SearchCriteria) {
				c.DisputeStatus = entities.DisputeStatus(flags.status)
				c.DisputeStage = entities.DisputeStage(stage)
				c.StartStageDate = from
				c.EndStageDate = to
			})

			disputes, err := b.ExecuteWithConfig(cmd.Context(), opts.configName)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), disputes)
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&settlement, "settlement", false, "Search settled disputes")
	cmd.Flags().StringVar(&stage, "stage", "", "Dispute stage filter")

	return cmd
}

func disputesGetCmd(opts *rootOptions) *cobra.Command {
	var settlement bool

	cmd := &cobra.Command{
		Use:   "get [dispute-id]",
		Short: "Show one dispute",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b := gpapi.DisputeDetail(args[0])
			if settlement {
				b = gpapi.SettlementDisputeDetail(args[0])
			}
			dispute, err := b.ExecuteWithConfig(cmd.Context(), opts.configName)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), dispute)
		},
	}

	cmd.Flags().BoolVar(&settlement, "settlement", false, "Look up a settlement dispute")
	return cmd
}

func disputesAcceptCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "accept [dispute-id]",
		Short: "Accept liability for a dispute",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			action, err := gpapi.AcceptDispute(args[0]).ExecuteWithConfig(cmd.Context(), opts.configName)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), action)
		},
	}
}

func disputesChallengeCmd(opts *rootOptions) *cobra.Command {
	var documents []string

	cmd := &cobra.Command{
		Use:   "challenge [dispute-id]",
		Short: "Challenge a dispute with supporting documents",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			docs, err := readDocuments(documents)
			if err != nil {
				return err
			}
			action, err := gpapi.ChallengeDispute(args[0], docs).ExecuteWithConfig(cmd.Context(), opts.configName)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), action)
		},
	}

	cmd.Flags().StringArrayVarP(&documents, "document", "d", nil, "Evidence as TYPE=path, e.g. SALES_RECEIPT=receipt.pdf (repeatable)")
	return cmd
}

func disputesDocumentCmd(opts *rootOptions) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "document [dispute-id] [document-id]",
		Short: "Download a dispute document",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := gpapi.DocumentDisputeDetail(args[0], args[1]).ExecuteWithConfig(cmd.Context(), opts.configName)
			if err != nil {
				return err
			}
			if doc == nil {
				return fmt.Errorf("document %s has no readable content", args[1])
			}
			if out == "" {
				_, err = cmd.OutOrStdout().Write(doc.Content)
				return err
			}
			return os.WriteFile(out, doc.Content, 0o600)
		},
	}

	cmd.Flags().StringVarP(&out, "output", "o", "", "Write the document to this file instead of stdout")
	return cmd
}

// readDocuments turns TYPE=path pairs into base64 evidence.
func readDocuments(pairs []string) ([]entities.DocumentInfo, error) {
	docs := make([]entities.DocumentInfo, 0, len(pairs))
	for _, pair := range pairs {
		kind, path, ok := strings.Cut(pair, "=")
		if !ok || path == "" {
			return nil, fmt.Errorf("--document %q: want TYPE=path", pair)
		}
		docType := entities.ParseDocumentType(strings.ToUpper(kind))
		if docType == "" {
			return nil, fmt.Errorf("--document %q: unknown document type %q", pair, kind)
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read document: %w", err)
		}
		docs = append(docs, entities.DocumentInfo{
			Type:       docType,
			B64Content: base64.StdEncoding.EncodeToString(content),
		})
	}
	return docs, nil
}
