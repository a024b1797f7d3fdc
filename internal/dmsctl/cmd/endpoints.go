package cmd

import (
	"github.com/spf13/cobra"

	"github.com/nandemo-ya/dms-go/internal/api"
	"github.com/nandemo-ya/dms-go/internal/awsclient/services/dms"
)

func newEndpointsCmd(opts *options) *cobra.Command {
	endpointsCmd := &cobra.Command{
		Use:   "endpoints",
		Short: "Inspect source and target endpoints",
	}
	endpointsCmd.AddCommand(newListEndpointsCmd(opts))
	return endpointsCmd
}

func endpointRows(endpoints ...api.Endpoint) func() table {
	return func() table {
		rows := table{{"IDENTIFIER", "TYPE", "ENGINE", "SERVER", "PORT", "STATUS", "ARN"}}
		for _, e := range endpoints {
			rows = append(rows, []string{
				str(e.EndpointIdentifier),
				str(e.EndpointType),
				str(e.EngineName),
				str(e.ServerName),
				num(e.Port),
				str(e.Status),
				str(e.EndpointArn),
			})
		}
		return rows
	}
}

func newListEndpointsCmd(opts *options) *cobra.Command {
	var filters []string

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List endpoints",
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

			paginator := dms.NewDescribeEndpointsPaginator(client,
				(&api.DescribeEndpointsRequest{}).SetFilters(parsed))
			endpoints, err := collect(cmd.Context(), paginator, func(r *api.DescribeEndpointsResponse) []api.Endpoint {
				return r.Endpoints
			})
			if err != nil {
				return err
			}
			return opts.printResult(cmd.OutOrStdout(), endpoints, endpointRows(endpoints...))
		},
	}

	listCmd.Flags().StringArrayVar(&filters, "filter", nil, "Filter as name=value[,value...], e.g. endpoint-type=source")
	return listCmd
}
