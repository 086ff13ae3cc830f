package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/lynnadornets/adornets-backend/api/routes"
	"github.com/lynnadornets/adornets-backend/internal/cart"
	"github.com/lynnadornets/adornets-backend/internal/catalog"
	checkoutsvc "github.com/lynnadornets/adornets-backend/internal/checkout"
	"github.com/lynnadornets/adornets-backend/internal/whatsapp"
	"github.com/lynnadornets/adornets-backend/pkg/config"
	"github.com/lynnadornets/adornets-backend/pkg/logger"
	"github.com/lynnadornets/adornets-backend/pkg/metrics"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	feed, err := catalog.DefaultFeed()
	if err != nil {
		logg.Error(context.Background(), "failed to load product feed", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	storefrontMetrics := metrics.NewStorefrontMetrics(registry)

	carts := cart.NewSessions(cfg.Session.IdleTTL, cfg.Session.SweepInterval)
	defer carts.Close()

	dispatcher, err := whatsapp.New(cfg.WhatsApp.Phone, whatsapp.NewProbeOpener(cfg.WhatsApp.ProbeTimeout))
	if err != nil {
		logg.Error(context.Background(), "failed to create order dispatcher", err)
		os.Exit(1)
	}

	checkoutService, err := checkoutsvc.NewService(carts, dispatcher, checkoutsvc.PaymentInstructions{
		PayBillNumber: cfg.WhatsApp.PayBillNumber,
		AccountNumber: cfg.WhatsApp.PayBillAccount,
		AccountName:   cfg.WhatsApp.PayBillAccountName,
	}, logg, storefrontMetrics)
	if err != nil {
		logg.Error(context.Background(), "failed to create checkout service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":      cfg.App.Env,
		"addr":     addr,
		"products": len(feed.All()),
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:    addr,
		Handler: routes.NewRouter(cfg, logg, feed, carts, checkoutService, storefrontMetrics, registry),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
