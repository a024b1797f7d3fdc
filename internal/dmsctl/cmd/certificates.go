package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nandemo-ya/dms-go/internal/api"
	"github.com/nandemo-ya/dms-go/internal/awsclient/services/dms"
)

func newCertificatesCmd(opts *options) *cobra.Command {
	certificatesCmd := &cobra.Command{
		Use:     "certificates",
		Aliases: []string{"certs"},
		Short:   "Manage certificates used by endpoints",
	}
	certificatesCmd.AddCommand(
		newListCertificatesCmd(opts),
		newImportCertificateCmd(opts),
		newDeleteCertificateCmd(opts),
	)
	return certificatesCmd
}

func certificateRows(certificates ...api.Certificate) func() table {
	return func() table {
		rows := table{{"IDENTIFIER", "ALGORITHM", "KEY LENGTH", "VALID TO", "ARN"}}
		for _, c := range certificates {
			rows = append(rows, []string{
				str(c.CertificateIdentifier),
				str(c.SigningAlgorithm),
				num(c.KeyLength),
				date(c.ValidToDate),
				str(c.CertificateArn),
			})
		}
		return rows
	}
}

func findCertificateARN(client *dms.Client) func(context.Context, string) (*string, error) {
	return func(ctx context.Context, id string) (*string, error) {
		resp, err := client.DescribeCertificates(ctx, (&api.DescribeCertificatesRequest{}).
			AddFilters(idFilter("certificate-id", id)))
		if err != nil {
			return nil, err
		}
		if len(resp.Certificates) == 0 {
			return nil, nil
		}
		return resp.Certificates[0].CertificateArn, nil
	}
}

func newListCertificatesCmd(opts *options) *cobra.Command {
	var filters []string

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List certificates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed, err := parseFilters(filters)
			if err != nil {
				return err
			}
			client, err := opts.newClient(cmd.Context())
			if err != nil {
				return err
			}

			paginator := dms.NewDescribeCertificatesPaginator(client,
				(&api.DescribeCertificatesRequest{}).SetFilters(parsed))
			certificates, err := collect(cmd.Context(), paginator, func(r *api.DescribeCertificatesResponse) []api.Certificate {
				return r.Certificates
			})
			if err != nil {
				return err
			}
			return opts.printResult(cmd.OutOrStdout(), certificates, certificateRows(certificates...))
		},
	}

	listCmd.Flags().StringArrayVar(&filters, "filter", nil, "Filter as name=value[,value...], e.g. certificate-id=my-cert")
	return listCmd
}

func newImportCertificateCmd(opts *options) *cobra.Command {
	var (
		pemFile    string
		walletFile string
		tags       []string
	)

	importCmd := &cobra.Command{
		Use:   "import <identifier>",
		Short: "Import a PEM certificate or an Oracle wallet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if (pemFile == "") == (walletFile == "") {
				return errors.New("exactly one of --pem-file or --wallet-file is required")
			}
			parsedTags, err := parseTags(tags)
			if err != nil {
				return err
			}

			req := (&api.ImportCertificateRequest{}).
				SetCertificateIdentifier(args[0]).
				SetTags(parsedTags)
			if pemFile != "" {
				data, err := os.ReadFile(pemFile)
				if err != nil {
					return fmt.Errorf("failed to read certificate: %w", err)
				}
				req.SetCertificatePem(string(data))
			} else {
				data, err := os.ReadFile(walletFile)
				if err != nil {
					return fmt.Errorf("failed to read wallet: %w", err)
				}
				req.SetCertificateWallet(data)
			}

			client, err := opts.newClient(cmd.Context())
			if err != nil {
				return err
			}
			resp, err := client.ImportCertificate(cmd.Context(), req)
			if err != nil {
				return err
			}
			return opts.printResult(cmd.OutOrStdout(), resp.Certificate, certificateRows(*resp.Certificate))
		},
	}

	importCmd.Flags().StringVar(&pemFile, "pem-file", "", "PEM encoded certificate file")
	importCmd.Flags().StringVar(&walletFile, "wallet-file", "", "Oracle wallet file")
	importCmd.Flags().StringArrayVar(&tags, "tag", nil, "Tag as key=value (repeatable)")
	return importCmd
}

func newDeleteCertificateCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <identifier|arn>",
		Short: "Delete a certificate",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.newClient(cmd.Context())
			if err != nil {
				return err
			}
			arn, err := resolveARN(cmd.Context(), "certificate", args[0], findCertificateARN(client))
			if err != nil {
				return err
			}
			resp, err := client.DeleteCertificate(cmd.Context(),
				(&api.DeleteCertificateRequest{}).SetCertificateArn(arn))
			if err != nil {
				return err
			}
			return opts.printResult(cmd.OutOrStdout(), resp.Certificate, certificateRows(*resp.Certificate))
		},
	}
}
