package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rentflow-solutions/property-management-service/internal/api"
	"github.com/rentflow-solutions/property-management-service/internal/config"
	"github.com/rentflow-solutions/property-management-service/internal/ledger"
	"github.com/rentflow-solutions/property-management-service/internal/monitoring"
	"github.com/rentflow-solutions/property-management-service/internal/service"
	"github.com/rentflow-solutions/property-management-service/internal/store"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg := config.Load()
	var (
		httpAddr    = flag.String("http-addr", cfg.HTTPAddr, "API listen address")
		metricsAddr = flag.String("metrics-addr", cfg.MetricsAddr, "Health/metrics listen address")
		dbHost      = flag.String("db-host", cfg.DBHost, "Database host")
		dbPort      = flag.Int("db-port", cfg.DBPort, "Database port")
		dbUser      = flag.String("db-user", cfg.DBUser, "Database user")
		dbPass      = flag.String("db-pass", cfg.DBPass, "Database password")
		dbName      = flag.String("db-name", cfg.DBName, "Database name")
	)
	flag.Parse()
	cfg.HTTPAddr = *httpAddr
	cfg.MetricsAddr = *metricsAddr
	cfg.DBHost = *dbHost
	cfg.DBPort = *dbPort
	cfg.DBUser = *dbUser
	cfg.DBPass = *dbPass
	cfg.DBName = *dbName

	st, err := store.Open(cfg.DSN())
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer st.Close()

	monitoring.InitMetrics()

	handlers := &api.Handlers{
		Properties:  service.NewPropertyService(st.Properties),
		Tenants:     service.NewTenantService(st.Tenants),
		Leases:      service.NewLeaseService(st.Leases),
		Payments:    service.NewPaymentService(st.Payments, st.Leases),
		Maintenance: service.NewMaintenanceService(st.Maintenance),
		Reconciler:  ledger.New(st.Payments, st.Leases),
	}

	apiServer := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: api.NewRouter(handlers),
	}

	go func() {
		log.Info().Msgf("Starting RentFlow API on %s", cfg.HTTPAddr)
		if err := apiServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("API server error")
		}
	}()

	go func() {
		mux := http.NewServeMux()
		mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("OK"))
		})
		mux.Handle("/metrics", promhttp.Handler())

		log.Info().Msgf("Health and metrics listening on %s", cfg.MetricsAddr)
		if err := http.ListenAndServe(cfg.MetricsAddr, mux); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("Metrics server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := apiServer.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Forced shutdown")
	}
	log.Info().Msg("Server exiting")
}
