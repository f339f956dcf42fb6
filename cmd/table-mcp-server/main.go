package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/wxyzh/table-mcp-server/internal/config"
	"github.com/wxyzh/table-mcp-server/internal/server"
	"github.com/wxyzh/table-mcp-server/internal/table"
)

// Version is set during build.
var Version = "dev"

func parseLogLevel() logrus.Level {
	level, err := logrus.ParseLevel(strings.TrimSpace(os.Getenv("LOG_LEVEL")))
	if err != nil {
		return logrus.WarnLevel
	}
	return level
}

func newLogger() *logrus.Logger {
	logger := logrus.New()
	// stdout carries the protocol in stdio mode; logs go to stderr only
	logger.SetOutput(os.Stderr)
	logger.SetLevel(parseLogLevel())
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return logger
}

func setupSignalHandling() {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-signals
		fmt.Fprintln(os.Stderr, "Shutting down server...")
		os.Exit(0)
	}()
}

func main() {
	// best effort, a missing .env is fine
	_ = godotenv.Load()

	logger := newLogger()

	app := &cli.App{
		Name:    "table-mcp-server",
		Usage:   "MCP server exposing query/update/delete operations over an Excel or CSV file",
		Version: Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "file-path",
				Usage: "Path to the Excel (xls/xlsx) or CSV backing file",
			},
			&cli.StringFlag{
				Name:    "transport",
				Aliases: []string{"t"},
				Usage:   "Transport type (stdio or sse)",
			},
			&cli.StringFlag{
				Name:  "host",
				Usage: "Host to bind for the SSE transport",
			},
			&cli.IntFlag{
				Name:  "port",
				Usage: "Port to bind for the SSE transport",
			},
			&cli.StringFlag{
				Name:  "config",
				Usage: "Path to a YAML configuration file",
			},
		},
		Action: func(c *cli.Context) error {
			cfg := config.Default()
			if configPath := c.String("config"); configPath != "" {
				if err := config.LoadFile(configPath, &cfg); err != nil {
					return err
				}
			}
			if c.IsSet("file-path") {
				cfg.FilePath = c.String("file-path")
			}
			if c.IsSet("transport") {
				cfg.Transport = c.String("transport")
			}
			if c.IsSet("host") {
				cfg.Host = c.String("host")
			}
			if c.IsSet("port") {
				cfg.Port = c.Int("port")
			}

			format, err := cfg.Validate()
			if err != nil {
				logger.WithError(err).Error("Invalid backing file")
				return err
			}
			logger.WithFields(logrus.Fields{
				"path":   cfg.FilePath,
				"format": format,
			}).Info("Backing file validated")

			store, err := table.NewStore(cfg.FilePath)
			if err != nil {
				return err
			}

			setupSignalHandling()

			s := server.New(Version, store, logger)
			if cfg.Transport == config.TransportSSE {
				return s.StartSSE(cfg.Host, cfg.Port)
			}
			return s.Start()
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start the server: %v\n", err)
		os.Exit(1)
	}
}
