package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/nandemo-ya/dms-go/internal/api"
	"github.com/nandemo-ya/dms-go/internal/awsclient/services/dms"
)

func newReplicationInstancesCmd(opts *options) *cobra.Command {
	instancesCmd := &cobra.Command{
		Use:     "replication-instances",
		Aliases: []string{"ri", "instances"},
		Short:   "Manage replication instances",
	}
	instancesCmd.AddCommand(
		newListInstancesCmd(opts),
		newCreateInstanceCmd(opts),
		newDeleteInstanceCmd(opts),
	)
	return instancesCmd
}

func instanceRows(instances ...api.ReplicationInstance) func() table {
	return func() table {
		rows := table{{"IDENTIFIER", "CLASS", "STATUS", "STORAGE", "AZ", "MULTI-AZ", "ARN"}}
		for _, ri := range instances {
			multiAZ := "no"
			if ri.MultiAZ != nil && *ri.MultiAZ {
				multiAZ = "yes"
			}
			rows = append(rows, []string{
				str(ri.ReplicationInstanceIdentifier),
				str(ri.ReplicationInstanceClass),
				str(ri.ReplicationInstanceStatus),
				num(ri.AllocatedStorage),
				str(ri.AvailabilityZone),
				multiAZ,
				str(ri.ReplicationInstanceArn),
			})
		}
		return rows
	}
}

func findInstanceARN(client *dms.Client) func(context.Context, string) (*string, error) {
	return func(ctx context.Context, id string) (*string, error) {
		resp, err := client.DescribeReplicationInstances(ctx, (&api.DescribeReplicationInstancesRequest{}).
			AddFilters(idFilter("replication-instance-id", id)))
		if err != nil {
			return nil, err
		}
		if len(resp.ReplicationInstances) == 0 {
			return nil, nil
		}
		return resp.ReplicationInstances[0].ReplicationInstanceArn, nil
	}
}

func newListInstancesCmd(opts *options) *cobra.Command {
	var filters []string

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List replication instances",
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

			paginator := dms.NewDescribeReplicationInstancesPaginator(client,
				(&api.DescribeReplicationInstancesRequest{}).SetFilters(parsed))
			instances, err := collect(cmd.Context(), paginator, func(r *api.DescribeReplicationInstancesResponse) []api.ReplicationInstance {
				return r.ReplicationInstances
			})
			if err != nil {
				return err
			}
			return opts.printResult(cmd.OutOrStdout(), instances, instanceRows(instances...))
		},
	}

	listCmd.Flags().StringArrayVar(&filters, "filter", nil, "Filter as name=value[,value...], e.g. replication-instance-class=dms.t3.medium")
	return listCmd
}

func newCreateInstanceCmd(opts *options) *cobra.Command {
	var (
		class         string
		storage       int32
		multiAZ       bool
		engineVersion string
		subnetGroup   string
		az            string
		private       bool
		tags          []string
	)

	createCmd := &cobra.Command{
		Use:   "create <identifier>",
		Short: "Create a replication instance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parsedTags, err := parseTags(tags)
			if err != nil {
				return err
			}

			req := (&api.CreateReplicationInstanceRequest{}).
				SetReplicationInstanceIdentifier(args[0]).
				SetReplicationInstanceClass(class).
				SetMultiAZ(multiAZ).
				SetTags(parsedTags)
			if cmd.Flags().Changed("allocated-storage") {
				req.SetAllocatedStorage(storage)
			}
			if engineVersion != "" {
				req.SetEngineVersion(engineVersion)
			}
			if subnetGroup != "" {
				req.SetReplicationSubnetGroupIdentifier(subnetGroup)
			}
			if az != "" {
				req.SetAvailabilityZone(az)
			}
			if private {
				req.SetPubliclyAccessible(false)
			}

			client, err := opts.newClient(cmd.Context())
			if err != nil {
				return err
			}
			resp, err := client.CreateReplicationInstance(cmd.Context(), req)
			if err != nil {
				return err
			}
			return opts.printResult(cmd.OutOrStdout(), resp.ReplicationInstance, instanceRows(*resp.ReplicationInstance))
		},
	}

	flags := createCmd.Flags()
	flags.StringVar(&class, "class", "dms.t3.medium", "Replication instance class")
	flags.Int32Var(&storage, "allocated-storage", 50, "Allocated storage in GB")
	flags.BoolVar(&multiAZ, "multi-az", false, "Create a Multi-AZ instance")
	flags.StringVar(&engineVersion, "engine-version", "", "Replication engine version")
	flags.StringVar(&subnetGroup, "subnet-group", "", "Replication subnet group identifier")
	flags.StringVar(&az, "availability-zone", "", "Availability zone")
	flags.BoolVar(&private, "private", false, "Do not assign a public IP address")
	flags.StringArrayVar(&tags, "tag", nil, "Tag as key=value (repeatable)")
	return createCmd
}

func newDeleteInstanceCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <identifier|arn>",
		Short: "Delete a replication instance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.newClient(cmd.Context())
			if err != nil {
				return err
			}
			arn, err := resolveARN(cmd.Context(), "replication instance", args[0], findInstanceARN(client))
			if err != nil {
				return err
			}
			resp, err := client.DeleteReplicationInstance(cmd.Context(),
				(&api.DeleteReplicationInstanceRequest{}).SetReplicationInstanceArn(arn))
			if err != nil {
				return err
			}
			return opts.printResult(cmd.OutOrStdout(), resp.ReplicationInstance, instanceRows(*resp.ReplicationInstance))
		},
	}
}
