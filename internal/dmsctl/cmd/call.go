package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/nandemo-ya/dms-go/internal/api"
)

func newCallCmd(opts *options) *cobra.Command {
	var input string

	callCmd := &cobra.Command{
		Use:   "call [operation]",
		Short: "Call any DMS operation",
		Long: `Call any DMS operation with a JSON or YAML input document. The document
uses the member names of the operation's request, e.g.

  dmsctl call DescribeReplicationTasks --input tasks.yaml

Without an operation the supported operation names are listed. Use
--input - to read the document from standard input.`,
		Args: cobra.MaximumNArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return api.OperationNames(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				for _, name := range api.OperationNames() {
					fmt.Fprintln(cmd.OutOrStdout(), name)
				}
				return nil
			}

			req, ok := api.NewRequest(args[0])
			if !ok {
				return fmt.Errorf("unknown operation %q, run \"dmsctl call\" to list operations", args[0])
			}
			if input != "" {
				data, err := readInput(cmd.InOrStdin(), input)
				if err != nil {
					return err
				}
				if err := decodeInput(data, req); err != nil {
					return fmt.Errorf("invalid input for %s: %w", args[0], err)
				}
			}

			client, err := opts.newClient(cmd.Context())
			if err != nil {
				return err
			}
			out, err := client.Invoke(cmd.Context(), req)
			if err != nil {
				return err
			}
			return opts.printResult(cmd.OutOrStdout(), out, nil)
		},
	}

	callCmd.Flags().StringVarP(&input, "input", "i", "", "JSON or YAML file with the request members")
	return callCmd
}

func readInput(stdin io.Reader, path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read input: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}
	return data, nil
}

// decodeInput fills req from a YAML or JSON document. JSON is a subset of
// YAML, so both go through the YAML decoder and are re-encoded as JSON to
// reuse the wire decoding of the request.
func decodeInput(data []byte, req api.Request) error {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return err
	}
	if doc == nil {
		return nil
	}
	if _, ok := doc.(map[string]any); !ok {
		return fmt.Errorf("the input must be a mapping of member names")
	}

	encoded, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	return json.Unmarshal(encoded, req)
}
