package cmd

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"storefront.GO/config"
	"storefront.GO/core/app"
	"storefront.GO/cron"
	_ "storefront.GO/cron/jobs"
)

var (
	servePort   string
	serveNoCron bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server, the cron scheduler and the event relay",
	RunE: func(c *cobra.Command, args []string) error {
		cfg := config.App()
		log := config.Logger()
		defer log.Sync()

		a, err := app.New(cfg, log, app.Options{})
		if err != nil {
			return err
		}
		defer func() {
			if err := a.Close(); err != nil {
				log.Error("shutdown", zap.Error(err))
			}
		}()

		port := servePort
		if port == "" {
			port = cfg.Port
		}
		e := a.Echo()

		fonts := []string{"banner", "big", "block", "slant", "standard", "small", "doom", "larry3d", "puffy"}
		figure.NewFigure(cfg.AppName, fonts[rand.Intn(len(fonts))], true).Print()
		fmt.Fprintln(c.OutOrStdout())

		ctx, stop := signal.NotifyContext(c.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		g, ctx := errgroup.WithContext(ctx)

		g.Go(func() error {
			log.Info("http listening", zap.String("addr", ":"+port))
			if err := e.Start(":" + port); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})

		g.Go(func() error {
			<-ctx.Done()
			shutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return e.Shutdown(shutdown)
		})

		g.Go(func() error {
			sched := cron.New(log)
			if !serveNoCron {
				if err := cron.AddJobs(sched, log); err != nil {
					return err
				}
			}
			if err := a.Schedule(sched); err != nil {
				return err
			}
			sched.Start()
			<-ctx.Done()
			<-sched.Stop().Done()
			return nil
		})

		g.Go(func() error {
			return a.RunRelay(ctx)
		})

		return g.Wait()
	},
}

func init() {
	serveCmd.Flags().StringVarP(&servePort, "port", "p", "", "Listen port (default PORT or 8080)")
	serveCmd.Flags().BoolVar(&serveNoCron, "no-cron", false, "Do not run the registered cron jobs in this process")
	rootCmd.AddCommand(serveCmd)
}
