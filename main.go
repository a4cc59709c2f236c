package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/electr1fy0/valuevault/appraisal"
	"github.com/electr1fy0/valuevault/config"
	"github.com/electr1fy0/valuevault/logging"
	"github.com/electr1fy0/valuevault/model"
	"github.com/electr1fy0/valuevault/wallet"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configPath string
	logFile    string
	offline    bool
	debug      bool
	devnetAddr string
)

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("offline") {
		cfg.Wallet.Offline = offline
	}
	if logFile != "" {
		cfg.Log.File = logFile
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, err := logging.New(cfg.Log.File, cfg.Log.Level, debug)
	if err != nil {
		return err
	}
	defer logger.Sync()

	provider, err := wallet.FromConfig(cfg, logger.Named("wallet"))
	if err != nil {
		return err
	}
	defer provider.Close()

	m := model.New(model.Options{
		AppName: cfg.AppName,
		Vault:   cfg.Contracts.SecureVault,
		Wallet:  provider,
		Logger:  logger.Named("ui"),
	})

	logger.Info("starting", zap.String("network", cfg.ChainNetwork().String()), zap.Bool("offline", cfg.Wallet.Offline))
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

func printRecords(w io.Writer, records []appraisal.Record) {
	for _, r := range records {
		conf := "-"
		if r.ShowsConfidence() {
			conf = fmt.Sprintf("%d%%", r.Confidence)
		}
		fmt.Fprintf(w, "| %-12s | %-34s | %-10s | %-14s | %4s | %s |\n",
			r.ID, r.Address, r.Status.Label(), r.Value, conf, r.Date)
	}
}

func recordsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "records",
		Short: "Print the recent appraisals table",
		RunE: func(cmd *cobra.Command, args []string) error {
			printRecords(cmd.OutOrStdout(), appraisal.SampleRecords())
			return nil
		},
	}
}

func devnetCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "devnet",
		Short: "Run a placeholder JSON-RPC node for the wallet to connect to",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			// stderr unless --log-file is set
			var logger *zap.Logger
			if logFile != "" {
				logger, err = logging.New(logFile, cfg.Log.Level, debug)
			} else {
				logger, err = zap.NewProduction()
			}
			if err != nil {
				return err
			}
			defer logger.Sync()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			fmt.Fprintf(cmd.OutOrStdout(), "devnet for %s on ws://%s/ws\n", cfg.ChainNetwork(), devnetAddr)
			return wallet.NewDevnet(cfg.ChainNetwork(), logger).Serve(ctx, devnetAddr)
		},
	}
	c.Flags().StringVar(&devnetAddr, "addr", ":8545", "listen address")
	return c
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "valuevault",
		Short:        "Secure Value Vault: encrypted property appraisals demo",
		SilenceUsage: true,
		RunE:         runTUI,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (yaml)")
	root.PersistentFlags().StringVar(&logFile, "log-file", "", "write logs to this file")
	root.PersistentFlags().BoolVar(&debug, "debug", false, "debug logging")
	root.Flags().BoolVar(&offline, "offline", false, "connect the wallet without contacting a node")

	root.AddCommand(recordsCmd(), devnetCmd())
	return root
}

func main() {
	if err := rootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
