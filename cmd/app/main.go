package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pointlessduffin-21/duffin-blogs/internal/blogclient"
	"github.com/pointlessduffin-21/duffin-blogs/internal/credstore"
	"github.com/pointlessduffin-21/duffin-blogs/internal/postengine"
)

type application struct {
	config *Config
	logger *slog.Logger
	client *blogclient.Client
	creds  *credstore.Store
	engine *postengine.Engine
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	cfg, err := loadConfig(".env")
	if err != nil {
		logger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	credPath := cfg.CredentialsFile
	if credPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			logger.Error("failed to locate home directory", slog.String("error", err.Error()))
			os.Exit(1)
		}
		credPath = filepath.Join(home, ".duffin-blogs", "credentials")
	}

	creds, err := credstore.New(credPath)
	if err != nil {
		logger.Error("failed to open credential store", slog.String("error", err.Error()))
		os.Exit(1)
	}

	client := blogclient.New(cfg.BaseURL, nil, logger)

	app := &application{
		config: cfg,
		logger: logger,
		client: client,
		creds:  creds,
		engine: postengine.New(client, creds, logger),
	}

	if err := app.rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func (app *application) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "duffin-blogs",
		Short:         "Command line client for the Duffin's Blogs platform",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		app.registerCmd(),
		app.loginCmd(),
		app.logoutCmd(),
		app.whoamiCmd(),
		app.listCmd(),
		app.searchCmd(),
		app.tagCmd(),
		app.tagsCmd(),
		app.showCmd(),
		app.createCmd(),
		app.updateCmd(),
		app.deleteCmd(),
		app.summaryCmd(),
	)

	return root
}
