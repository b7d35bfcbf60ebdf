package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/rocpay1889/baba-shoping/internal/app"
	"github.com/rocpay1889/baba-shoping/internal/config"
	httpapi "github.com/rocpay1889/baba-shoping/internal/http"
	"github.com/rocpay1889/baba-shoping/internal/lifecycle"
	"github.com/rocpay1889/baba-shoping/internal/logging"
	"github.com/rocpay1889/baba-shoping/internal/repository"
	"github.com/rocpay1889/baba-shoping/internal/view"
)

type rootOptions struct {
	configPath string
	verbose    bool
}

func rootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "baba-shop",
		Short:         "BABA Shopping storefront",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Config file path (YAML)")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Debug logging")

	cmd.AddCommand(serveCmd(opts), catalogCmd(opts), trackCmd(opts))
	return cmd
}

// load config and logger; --verbose wins over log.level
func (o *rootOptions) load() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, nil, err
	}
	if o.verbose {
		cfg.Log.Level = "debug"
	}
	log, err := logging.New(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		return nil, nil, err
	}
	return cfg, log, nil
}

func serveCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), opts)
		},
	}
}

func runServe(ctx context.Context, opts *rootOptions) error {
	cfg, log, err := opts.load()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	a, err := app.New(cfg, log, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err := a.Close(); err != nil {
			log.Warn("close failed", zap.Error(err))
		}
	}()

	if !cfg.Log.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	srv := httpapi.NewServer(httpapi.Services{
		Products: a.Products,
		Cart:     a.Cart,
		Orders:   a.Orders,
		Payments: a.Payments,
		Tracking: a.Tracking,
		Identity: a.Identity,
		Metrics:  a.Metrics,
		Log:      log,
	})

	httpServer := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           srv.Engine(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("HTTP server listening", zap.String("addr", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		log.Info("shutting down")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown error: %w", err)
		}
		return nil
	})
	return g.Wait()
}

func catalogCmd(opts *rootOptions) *cobra.Command {
	var (
		query    string
		tag      string
		maxPrice int64
	)
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Print the combo catalog",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := opts.load()
			if err != nil {
				return err
			}
			a, err := app.New(cfg, log, nil)
			if err != nil {
				return err
			}
			defer a.Close()

			f := repository.ProductFilter{NameSubstring: query, Tag: tag}
			if maxPrice > 0 {
				f.MaxPrice = &maxPrice
			}
			list, err := a.Products.List(cmd.Context(), f)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), view.Catalog(list))
			return nil
		},
	}
	cmd.Flags().StringVarP(&query, "query", "q", "", "Name contains")
	cmd.Flags().StringVar(&tag, "tag", "", "Exact tag")
	cmd.Flags().Int64Var(&maxPrice, "max-price", 0, "Upper price bound, 0 for none")
	return cmd
}

func trackCmd(opts *rootOptions) *cobra.Command {
	var brief bool
	cmd := &cobra.Command{
		Use:   "track",
		Short: "Show the order status from the configured store",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := opts.load()
			if err != nil {
				return err
			}
			a, err := app.New(cfg, log, nil)
			if err != nil {
				return err
			}
			defer a.Close()

			v, err := a.Tracking.OrderStatus(cmd.Context(), !brief)
			if errors.Is(err, lifecycle.ErrNoOrder) {
				fmt.Fprintln(cmd.OutOrStdout(), view.Empty())
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), view.OrderStatus(v))
			return nil
		},
	}
	cmd.Flags().BoolVar(&brief, "brief", false, "Hide the tracking panel")
	return cmd
}
