package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-object-sync/internal/client"
	"github.com/MKhiriev/go-object-sync/internal/config"
	"github.com/MKhiriev/go-object-sync/internal/logger"
)

// clientFactory opens the sync client for one command invocation.
type clientFactory func(ctx context.Context, flags *config.FlagValues) (client.Client, error)

func openClient(ctx context.Context, flags *config.FlagValues) (client.Client, error) {
	cfg, err := config.GetClientConfig(flags)
	if err != nil {
		return nil, fmt.Errorf("error getting configs: %w", err)
	}

	log := logger.NewClientLogger("objsync")
	if cfg.Log.File != "" {
		log = logger.NewFileLogger("objsync", cfg.Log.File)
	}
	if err = logger.SetLevel(cfg.Log.Level); err != nil {
		return nil, fmt.Errorf("set log level: %w", err)
	}

	return client.NewApp(ctx, cfg, log)
}

func newRootCmd(open clientFactory) *cobra.Command {
	root := &cobra.Command{
		Use:           "objsync",
		Short:         "Synchronize encrypted objects with the object API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := config.BindFlags(root.PersistentFlags())

	// withClient opens the client, runs fn and closes the client again.
	withClient := func(fn func(cmd *cobra.Command, c client.Client, args []string) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			c, err := open(cmd.Context(), flags)
			if err != nil {
				return report(cmd, err)
			}
			defer c.Close()

			return report(cmd, fn(cmd, c, args))
		}
	}

	root.AddCommand(
		newSyncCmd(withClient),
		newStatusCmd(withClient),
		newPushCmd(withClient),
		newPullCmd(withClient),
		newRefreshCmd(withClient),
		newGetCmd(withClient),
		newListCmd(withClient),
		newDeleteCmd(withClient),
		newWatchCmd(withClient),
		newVersionCmd(withClient),
	)

	return root
}

type runWithClient func(fn func(cmd *cobra.Command, c client.Client, args []string) error) func(*cobra.Command, []string) error

// report prints a failed command's error in the error style.
func report(cmd *cobra.Command, err error) error {
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), errorStyle.Render("Error: "+err.Error()))
	}
	return err
}
