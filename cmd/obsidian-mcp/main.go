// Package main runs the Obsidian vault tool server. It exposes the vault
// tools over a stdio pipe (the default, for agent hosts that spawn the
// server as a subprocess) or a local HTTP endpoint.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/entrhq/obsidian-mcp/pkg/config"
	"github.com/entrhq/obsidian-mcp/pkg/logging"
	"github.com/entrhq/obsidian-mcp/pkg/mcp"
	"github.com/entrhq/obsidian-mcp/pkg/search"
	"github.com/entrhq/obsidian-mcp/pkg/tools/obsidian"
	"github.com/entrhq/obsidian-mcp/pkg/vault"
)

var (
	transportFlag = &cli.StringFlag{
		Name:  "transport",
		Usage: "The transport for the tool server (stdio or http)",
		Value: "stdio",
	}
	hostFlag = &cli.StringFlag{
		Name:  "host",
		Usage: "The host address for the HTTP transport",
		Value: "127.0.0.1",
	}
	portFlag = &cli.IntFlag{
		Name:  "port",
		Usage: "The port for the HTTP transport",
		Value: 37123,
	}
	configFlag = &cli.StringFlag{
		Name:  "config",
		Usage: "Path to the config file (default: ~/.obsidian-mcp/config.yaml)",
	}
)

func main() {
	cmd := &cli.Command{
		Name:   "obsidian-mcp",
		Usage:  "Expose an Obsidian vault as a tool server for agents",
		Flags:  []cli.Flag{transportFlag, hostFlag, portFlag, configFlag},
		Action: run,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.Run(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	configPath := cmd.String(configFlag.Name)
	if configPath == "" {
		if path, err := config.DefaultPath(); err == nil {
			configPath = path
		}
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger, logErr := logging.NewLogger("server")
	if logErr != nil {
		fmt.Fprintf(os.Stderr, "Warning: file logging unavailable: %v\n", logErr)
	}
	defer logger.Close()

	client, err := vault.New(
		vault.WithBaseURL(cfg.BaseURL()),
		vault.WithTimeout(cfg.Timeout),
		vault.WithInsecureTLS(!cfg.VerifyTLS),
		vault.WithAPIKey(cfg.APIKey),
		vault.WithLogger(logger),
	)
	if err != nil {
		return fmt.Errorf("failed to create vault client: %w", err)
	}

	server := mcp.NewServer(logger)
	server.Register(obsidian.RegisterTools(client, search.Options{
		Workers:           cfg.Search.Workers,
		IncludeContent:    cfg.Search.IncludeContent,
		AbortOnFetchError: cfg.Search.AbortOnFetchError,
	}, logger)...)

	switch transport := cmd.String(transportFlag.Name); transport {
	case "stdio":
		logger.Infof("serving on stdio, vault at %s", cfg.BaseURL())
		return server.ServeStdio(ctx, os.Stdin, os.Stdout)
	case "http":
		addr := fmt.Sprintf("%s:%d", cmd.String(hostFlag.Name), cmd.Int(portFlag.Name))
		logger.Infof("serving on http %s, vault at %s", addr, cfg.BaseURL())
		return server.ListenAndServe(ctx, addr)
	default:
		return fmt.Errorf("unknown transport %q: must be stdio or http", transport)
	}
}
