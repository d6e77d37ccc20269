package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-object-sync/internal/client"
	"github.com/MKhiriev/go-object-sync/models"
)

var errNothingToDelete = errors.New("no ids given, pass --all to delete every object of the type")

func newSyncCmd(withClient runWithClient) *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Run one full sync",
		Args:  cobra.NoArgs,
		RunE: withClient(func(cmd *cobra.Command, c client.Client, _ []string) error {
			out := cmd.OutOrStdout()
			last := ""
			err := c.Sync(cmd.Context(), func(status models.SyncStatus) {
				if line := status.String(); line != last {
					last = line
					fmt.Fprintln(out, stateStyle.Render(line))
				}
			})
			if err != nil {
				return err
			}

			fmt.Fprintln(out, okStyle.Render("sync finished"))
			return nil
		}),
	}
}

func newStatusCmd(withClient runWithClient) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show local object counts and the server version",
		Args:  cobra.NoArgs,
		RunE: withClient(func(cmd *cobra.Command, c client.Client, _ []string) error {
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, titleStyle.Render("Local objects"))
			for _, t := range models.KnownObjectTypes() {
				entities, err := c.List(cmd.Context(), t)
				if err != nil {
					return fmt.Errorf("list %s: %w", t, err)
				}
				fmt.Fprintf(out, "  %-18s %d\n", t, len(entities))
			}

			info, err := c.ServerVersion(cmd.Context())
			if err != nil {
				fmt.Fprintln(out, helpStyle.Render("server unreachable: "+err.Error()))
				return nil
			}
			fmt.Fprintf(out, "%s %s (%s)\n", titleStyle.Render("Server"), info.Version, info.Commit)
			return nil
		}),
	}
}

func newPushCmd(withClient runWithClient) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "push <type> [id]",
		Short: "Store a JSON payload and save it remotely",
		Long: `Store a JSON payload as an object and save it to the object API.

The payload is read from --file, or from stdin when --file is not given.
Without an id a new object is created.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: withClient(func(cmd *cobra.Command, c client.Client, args []string) error {
			payload, err := readPayload(cmd.InOrStdin(), file)
			if err != nil {
				return err
			}

			id := ""
			if len(args) == 2 {
				id = args[1]
			}

			entity, err := c.Push(cmd.Context(), models.ObjectType(args[0]), id, payload)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), entity.ID)
			return nil
		}),
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "Read the payload from this file")

	return cmd
}

func readPayload(stdin io.Reader, file string) (json.RawMessage, error) {
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("read payload: %w", err)
		}
		return data, nil
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return nil, fmt.Errorf("read payload: %w", err)
	}
	return data, nil
}

func newPullCmd(withClient runWithClient) *cobra.Command {
	return &cobra.Command{
		Use:   "pull <type>",
		Short: "Re-fetch every remote object of a type",
		Args:  cobra.ExactArgs(1),
		RunE: withClient(func(cmd *cobra.Command, c client.Client, args []string) error {
			n, err := c.Pull(cmd.Context(), models.ObjectType(args[0]))
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %d object(s)\n", okStyle.Render("fetched"), n)
			return nil
		}),
	}
}

func newRefreshCmd(withClient runWithClient) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "refresh <type> <id>",
		Short: "Re-fetch one object when its remote checksum changed",
		Args:  cobra.ExactArgs(2),
		RunE: withClient(func(cmd *cobra.Command, c client.Client, args []string) error {
			fetched, err := c.Refresh(cmd.Context(), models.ObjectType(args[0]), args[1], force)
			if err != nil {
				return err
			}

			if fetched {
				fmt.Fprintln(cmd.OutOrStdout(), okStyle.Render("refreshed "+args[1]))
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), helpStyle.Render(args[1]+" is up to date"))
			}
			return nil
		}),
	}
	cmd.Flags().BoolVar(&force, "force", false, "Fetch even when the checksums match")

	return cmd
}

func newGetCmd(withClient runWithClient) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Print the payload of a local object",
		Args:  cobra.ExactArgs(1),
		RunE: withClient(func(cmd *cobra.Command, c client.Client, args []string) error {
			entity, err := c.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), string(entity.Payload))
			return nil
		}),
	}
}

func newListCmd(withClient runWithClient) *cobra.Command {
	return &cobra.Command{
		Use:   "list <type>",
		Short: "List local objects of a type",
		Args:  cobra.ExactArgs(1),
		RunE: withClient(func(cmd *cobra.Command, c client.Client, args []string) error {
			entities, err := c.List(cmd.Context(), models.ObjectType(args[0]))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(entities) == 0 {
				fmt.Fprintln(out, helpStyle.Render("no objects"))
				return nil
			}

			fmt.Fprintln(out, titleStyle.Render(fmt.Sprintf("%-36s  %s", "ID", "UPDATED")))
			for _, e := range entities {
				fmt.Fprintf(out, "%-36s  %s\n", e.ID, e.UpdatedAt.Local().Format(time.DateTime))
			}
			return nil
		}),
	}
}

func newDeleteCmd(withClient runWithClient) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "delete <type> [id...]",
		Short: "Delete objects remotely and locally",
		Args:  cobra.MinimumNArgs(1),
		RunE: withClient(func(cmd *cobra.Command, c client.Client, args []string) error {
			ids := args[1:]
			if len(ids) == 0 && !all {
				return errNothingToDelete
			}

			if err := c.Delete(cmd.Context(), models.ObjectType(args[0]), ids...); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), okStyle.Render("deleted"))
			return nil
		}),
	}
	cmd.Flags().BoolVar(&all, "all", false, "Delete every object of the type")

	return cmd
}

func newWatchCmd(withClient runWithClient) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Sync periodically and apply live updates until interrupted",
		Args:  cobra.NoArgs,
		RunE: withClient(func(cmd *cobra.Command, c client.Client, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			fmt.Fprintln(cmd.OutOrStdout(), helpStyle.Render("watching, press Ctrl+C to stop"))
			if err := c.Watch(ctx); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), stateStyle.Render(c.Status().String()))
			return nil
		}),
	}
}

func newVersionCmd(withClient runWithClient) *cobra.Command {
	var offline bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print build information of the client and the server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printBuildInfo(cmd.OutOrStdout())
			if offline {
				return nil
			}

			return withClient(func(cmd *cobra.Command, c client.Client, _ []string) error {
				info, err := c.ServerVersion(cmd.Context())
				if err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "Server version: %s\n", info.Version)
				fmt.Fprintf(cmd.OutOrStdout(), "Server date: %s\n", info.Date)
				fmt.Fprintf(cmd.OutOrStdout(), "Server commit: %s\n", info.Commit)
				return nil
			})(cmd, args)
		},
	}
	cmd.Flags().BoolVar(&offline, "offline", false, "Only print the client build")

	return cmd
}
