// Package cmd implements the dmsctl command line.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/nandemo-ya/dms-go/internal/awsclient"
	"github.com/nandemo-ya/dms-go/internal/awsclient/services/dms"
	"github.com/nandemo-ya/dms-go/internal/config"
	"github.com/nandemo-ya/dms-go/internal/logging"
)

// options holds the global flags and the configuration they resolve to
type options struct {
	configPath string
	noColor    bool
	cfg        *config.Config
}

// persistent flags and the configuration keys they override
var flagKeys = map[string]string{
	"region":    "aws.region",
	"endpoint":  "aws.endpoint",
	"profile":   "aws.profile",
	"log-level": "log.level",
	"output":    "output",
}

// NewRootCommand builds the dmsctl command tree
func NewRootCommand() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "dmsctl",
		Short: "Command line client for AWS Database Migration Service",
		Long: `dmsctl talks to AWS Database Migration Service, or to a local in-memory
DMS server started with "dmsctl local".`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "Config file (default is ./dms.yaml or $HOME/.dms/dms.yaml)")
	flags.String("region", "", "AWS region")
	flags.String("endpoint", "", "DMS endpoint URL, e.g. http://localhost:8700 for the local server")
	flags.String("profile", "", "Shared config profile used for credentials")
	flags.StringP("log-level", "l", "", "Log level (debug, info, warn, error)")
	flags.StringP("output", "o", "", "Output format: table, json, yaml")
	flags.BoolVar(&opts.noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(
		newVersionCmd(),
		newLocalCmd(opts),
		newCallCmd(opts),
		newReplicationInstancesCmd(opts),
		newTasksCmd(opts),
		newCertificatesCmd(opts),
		newEndpointsCmd(opts),
	)
	return rootCmd
}

// Execute runs the root command and exits on error.
// This is called by main.main().
func Execute() {
	if err := NewRootCommand().ExecuteContext(context.Background()); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}

func (o *options) load(cmd *cobra.Command) error {
	for name, key := range flagKeys {
		if err := config.BindFlag(key, cmd.Root().PersistentFlags().Lookup(name)); err != nil {
			return err
		}
	}

	cfg, err := config.LoadConfig(o.configPath)
	if err != nil {
		return err
	}
	o.cfg = cfg

	if o.noColor {
		pterm.DisableColor()
	}
	logging.Initialize(&logging.Config{
		Level:  logging.ParseLevel(cfg.Log.Level),
		Format: cfg.Log.Format,
		Output: cmd.ErrOrStderr(),
	})
	return nil
}

// newClient creates a DMS client from the configuration. Static keys win;
// a custom endpoint without a profile is used unsigned; otherwise the
// default credential chain resolves credentials.
func (o *options) newClient(ctx context.Context) (*dms.Client, error) {
	aws := o.cfg.AWS
	clientConfig := awsclient.Config{
		Region:     aws.Region,
		Endpoint:   aws.Endpoint,
		MaxRetries: aws.MaxRetries,
		Timeout:    aws.Timeout,
	}

	switch creds := (awsclient.Credentials{AccessKeyID: aws.AccessKeyID, SecretAccessKey: aws.SecretAccessKey}); {
	case creds.IsSet():
		clientConfig.Credentials = creds
	case aws.Endpoint != "" && aws.Profile == "":
		logging.Debug("Sending unsigned requests", "endpoint", aws.Endpoint)
	default:
		resolved, err := awsclient.LoadDefaultConfig(ctx, aws.Profile, aws.Region)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve credentials: %w", err)
		}
		clientConfig.CredentialsProvider = resolved.CredentialsProvider
		if clientConfig.Region == "" {
			clientConfig.Region = resolved.Region
		}
	}

	return dms.NewClient(clientConfig), nil
}
