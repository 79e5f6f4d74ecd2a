package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/rentflow-solutions/property-management-service/internal/config"
	"github.com/rentflow-solutions/property-management-service/internal/ledger"
	"github.com/rentflow-solutions/property-management-service/internal/service"
	"github.com/rentflow-solutions/property-management-service/internal/store"
)

// console bundles everything the commands touch. It is wired once per
// invocation against a live store.
type console struct {
	store      *store.Store
	properties *service.PropertyService
	tenants    *service.TenantService
	leases     *service.LeaseService
	payments   *service.PaymentService
	requests   *service.MaintenanceService
	reconciler *ledger.Reconciler
}

func (cl *console) close() {
	if cl.store != nil {
		cl.store.Close()
	}
}

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg := config.Load()
	var cl console

	rootCmd := &cobra.Command{
		Use:   "rentflow-console",
		Short: "Interactive console for the RentFlow property management service",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			st, err := store.Open(cfg.DSN())
			if err != nil {
				return err
			}
			cl = console{
				store:      st,
				properties: service.NewPropertyService(st.Properties),
				tenants:    service.NewTenantService(st.Tenants),
				leases:     service.NewLeaseService(st.Leases),
				payments:   service.NewPaymentService(st.Payments, st.Leases),
				requests:   service.NewMaintenanceService(st.Maintenance),
				reconciler: ledger.New(st.Payments, st.Leases),
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			cl.close()
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfg.DBHost, "db-host", cfg.DBHost, "Database host")
	rootCmd.PersistentFlags().IntVar(&cfg.DBPort, "db-port", cfg.DBPort, "Database port")
	rootCmd.PersistentFlags().StringVar(&cfg.DBUser, "db-user", cfg.DBUser, "Database user")
	rootCmd.PersistentFlags().StringVar(&cfg.DBPass, "db-pass", cfg.DBPass, "Database password")
	rootCmd.PersistentFlags().StringVar(&cfg.DBName, "db-name", cfg.DBName, "Database name")

	menuCmd := &cobra.Command{
		Use:   "menu",
		Short: "Run the interactive menu",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cl.runMenu()
		},
	}

	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Print the payment summary report",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cl.printSummaryReport()
		},
	}

	overdueCmd := &cobra.Command{
		Use:   "overdue",
		Short: "List overdue payments, oldest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cl.printOverduePayments()
		},
	}

	var expiringDays int
	expiringCmd := &cobra.Command{
		Use:   "expiring",
		Short: "List active leases expiring soon",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cl.printExpiringLeases(expiringDays)
		},
	}
	expiringCmd.Flags().IntVar(&expiringDays, "days", 30, "Look-ahead window in days")

	rootCmd.AddCommand(menuCmd, reportCmd, overdueCmd, expiringCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("Command failed")
		os.Exit(1)
	}
}
