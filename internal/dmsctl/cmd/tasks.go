package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/nandemo-ya/dms-go/internal/api"
	"github.com/nandemo-ya/dms-go/internal/awsclient/services/dms"
)

func newTasksCmd(opts *options) *cobra.Command {
	tasksCmd := &cobra.Command{
		Use:     "tasks",
		Aliases: []string{"replication-tasks"},
		Short:   "Manage replication tasks",
	}
	tasksCmd.AddCommand(
		newListTasksCmd(opts),
		newStartTaskCmd(opts),
		newStopTaskCmd(opts),
	)
	return tasksCmd
}

func taskRows(tasks ...api.ReplicationTask) func() table {
	return func() table {
		rows := table{{"IDENTIFIER", "STATUS", "MIGRATION TYPE", "STARTED", "ARN"}}
		for _, t := range tasks {
			rows = append(rows, []string{
				str(t.ReplicationTaskIdentifier),
				str(t.Status),
				str(t.MigrationType),
				date(t.ReplicationTaskStartDate),
				str(t.ReplicationTaskArn),
			})
		}
		return rows
	}
}

func findTaskARN(client *dms.Client) func(context.Context, string) (*string, error) {
	return func(ctx context.Context, id string) (*string, error) {
		resp, err := client.DescribeReplicationTasks(ctx, (&api.DescribeReplicationTasksRequest{}).
			AddFilters(idFilter("replication-task-id", id)))
		if err != nil {
			return nil, err
		}
		if len(resp.ReplicationTasks) == 0 {
			return nil, nil
		}
		return resp.ReplicationTasks[0].ReplicationTaskArn, nil
	}
}

func newListTasksCmd(opts *options) *cobra.Command {
	var filters []string

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List replication tasks",
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

			paginator := dms.NewDescribeReplicationTasksPaginator(client,
				(&api.DescribeReplicationTasksRequest{}).SetFilters(parsed))
			tasks, err := collect(cmd.Context(), paginator, func(r *api.DescribeReplicationTasksResponse) []api.ReplicationTask {
				return r.ReplicationTasks
			})
			if err != nil {
				return err
			}
			return opts.printResult(cmd.OutOrStdout(), tasks, taskRows(tasks...))
		},
	}

	listCmd.Flags().StringArrayVar(&filters, "filter", nil, "Filter as name=value[,value...], e.g. migration-type=cdc")
	return listCmd
}

func newStartTaskCmd(opts *options) *cobra.Command {
	var (
		startType        string
		cdcStartPosition string
	)

	startCmd := &cobra.Command{
		Use:   "start <identifier|arn>",
		Short: "Start a replication task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.newClient(cmd.Context())
			if err != nil {
				return err
			}
			arn, err := resolveARN(cmd.Context(), "replication task", args[0], findTaskARN(client))
			if err != nil {
				return err
			}

			req := (&api.StartReplicationTaskRequest{}).
				SetReplicationTaskArn(arn).
				SetStartReplicationTaskType(startType)
			if cdcStartPosition != "" {
				req.SetCdcStartPosition(cdcStartPosition)
			}
			resp, err := client.StartReplicationTask(cmd.Context(), req)
			if err != nil {
				return err
			}
			return opts.printResult(cmd.OutOrStdout(), resp.ReplicationTask, taskRows(*resp.ReplicationTask))
		},
	}

	startCmd.Flags().StringVar(&startType, "type", string(api.StartReplicationTaskTypeValueStartReplication),
		"Start type: start-replication, resume-processing, reload-target")
	startCmd.Flags().StringVar(&cdcStartPosition, "cdc-start-position", "", "Position to start change data capture from")
	return startCmd
}

func newStopTaskCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "stop <identifier|arn>",
		Short: "Stop a running replication task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.newClient(cmd.Context())
			if err != nil {
				return err
			}
			arn, err := resolveARN(cmd.Context(), "replication task", args[0], findTaskARN(client))
			if err != nil {
				return err
			}
			resp, err := client.StopReplicationTask(cmd.Context(),
				(&api.StopReplicationTaskRequest{}).SetReplicationTaskArn(arn))
			if err != nil {
				return err
			}
			return opts.printResult(cmd.OutOrStdout(), resp.ReplicationTask, taskRows(*resp.ReplicationTask))
		},
	}
}
