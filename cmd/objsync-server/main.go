// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-object-sync/internal/config"
	"github.com/MKhiriev/go-object-sync/internal/handler"
	handlerhttp "github.com/MKhiriev/go-object-sync/internal/handler/http"
	"github.com/MKhiriev/go-object-sync/internal/logger"
	"github.com/MKhiriev/go-object-sync/internal/server"
	"github.com/MKhiriev/go-object-sync/internal/service"
	"github.com/MKhiriev/go-object-sync/internal/store"
	"github.com/MKhiriev/go-object-sync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "objsync-server",
		Short:         "Reference object API for objsync clients",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := config.BindFlags(root.PersistentFlags())

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Serve the object API until SIGTERM",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				printBuildInfo(cmd.OutOrStdout())
				return serve(flags)
			},
		},
		&cobra.Command{
			Use:   "token <account-id>",
			Short: "Issue a bearer token for an account",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return issueToken(cmd, flags, args[0])
			},
		},
	)

	return root
}

func serve(flags *config.FlagValues) error {
	log := logger.NewLogger("objsync-server")
	cfg, err := config.GetServerConfig(flags)
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}
	if err = logger.SetLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("set log level: %w", err)
	}

	live := handlerhttp.NewLiveHub(log)

	services, err := service.NewServices(store.NewServerStorages(), live, *cfg,
		models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
	if err != nil {
		return fmt.Errorf("error creating services: %w", err)
	}

	handlers, err := handler.NewHandlers(services, live, *cfg, log)
	if err != nil {
		return fmt.Errorf("error creating handlers: %w", err)
	}

	srv, err := server.NewServer(handlers, *cfg, log, live.Close)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	srv.RunServer()
	return nil
}

func issueToken(cmd *cobra.Command, flags *config.FlagValues, accountID string) error {
	cfg, err := config.GetServerConfig(flags)
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}

	token, err := service.NewAuthService(cfg.App, logger.Nop()).CreateToken(cmd.Context(), accountID)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), token.String())
	return nil
}

func printBuildInfo(w io.Writer) {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Fprintf(w, "Build version: %s\n", buildVersion)
	fmt.Fprintf(w, "Build date: %s\n", buildDate)
	fmt.Fprintf(w, "Build commit: %s\n", buildCommit)
}
