package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/rentflow-solutions/property-management-service/internal/model"
)

// runMenu drives the interactive loop. Each selection is one
// read/compute/display cycle; input errors abort the single operation
// with a warning and return to the menu.
func (cl *console) runMenu() error {
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Println()
		fmt.Println("===== RentFlow Property Management =====")
		fmt.Println("1. List Properties")
		fmt.Println("2. List Tenants")
		fmt.Println("3. List Leases")
		fmt.Println("4. List Payments")
		fmt.Println("5. Payment Tracking")
		fmt.Println("6. Overdue Payments")
		fmt.Println("7. Payment Summary Report")
		fmt.Println("8. Leases Expiring Soon")
		fmt.Println("9. Expired Leases Still Active")
		fmt.Println("10. Open Maintenance Requests")
		fmt.Println("11. Property Explorer")
		fmt.Println("12. Manage Properties")
		fmt.Println("13. Manage Tenants")
		fmt.Println("14. Update Maintenance Status")
		fmt.Println("0. Exit")

		choice := prompt(scanner, "Select an option: ")
		var err error
		switch choice {
		case "1":
			err = cl.printProperties()
		case "2":
			err = cl.printTenants()
		case "3":
			err = cl.printLeases()
		case "4":
			err = cl.printPayments()
		case "5":
			err = cl.printPaymentTracking()
		case "6":
			err = cl.printOverduePayments()
		case "7":
			err = cl.printSummaryReport()
		case "8":
			days, perr := strconv.Atoi(prompt(scanner, "Days ahead: "))
			if perr != nil {
				fmt.Println("Warning: please enter a whole number of days.")
				continue
			}
			err = cl.printExpiringLeases(days)
		case "9":
			err = cl.printExpiredActiveLeases()
		case "10":
			err = cl.printOpenMaintenance()
		case "11":
			err = cl.propertyExplorer(scanner)
		case "12":
			err = cl.manageProperties(scanner)
		case "13":
			err = cl.manageTenants(scanner)
		case "14":
			err = cl.updateMaintenanceStatus(scanner)
		case "0":
			return nil
		default:
			fmt.Println("Unknown option.")
			continue
		}
		if err != nil {
			fmt.Printf("Warning: %v\n", err)
		}
	}
}

func prompt(scanner *bufio.Scanner, label string) string {
	fmt.Print(label)
	if !scanner.Scan() {
		return ""
	}
	return strings.TrimSpace(scanner.Text())
}

func (cl *console) printProperties() error {
	properties, err := cl.properties.List(context.Background())
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tADDRESS\tCITY\tTYPE\tBEDS\tRENT")
	for _, p := range properties {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\t$%s\n",
			p.ID, p.Address, p.City, p.PropertyType, p.Bedrooms, p.MonthlyRent.StringFixed(2))
	}
	return w.Flush()
}

func (cl *console) printTenants() error {
	tenants, err := cl.tenants.List(context.Background())
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tEMAIL\tPHONE\tEMPLOYMENT")
	for _, t := range tenants {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			t.ID, t.FullName(), t.Email, t.Phone, t.EmploymentStatus)
	}
	return w.Flush()
}

func (cl *console) printLeases() error {
	leases, err := cl.leases.List(context.Background())
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPROPERTY\tTENANT\tSTART\tEND\tRENT\tSTATUS")
	for _, l := range leases {
		fmt.Fprintf(w, "%d\t%d\t%d\t%s\t%s\t$%s\t%s\n",
			l.ID, l.PropertyID, l.TenantID, l.StartDate, l.EndDate,
			l.MonthlyRent.StringFixed(2), l.Status)
	}
	return w.Flush()
}

// printPaymentTracking renders the per-lease ledger position for
// every active lease: total paid, outstanding, and OWES/PAID.
func (cl *console) printPaymentTracking() error {
	ctx := context.Background()
	leases, err := cl.leases.ActiveLeases(ctx)
	if err != nil {
		return err
	}

	today := model.Today()
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "LEASE\tRENT\tPAID\tOUTSTANDING\tSTATUS")
	for _, l := range leases {
		balance, err := cl.reconciler.Balance(ctx, l.ID, today)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%d\t$%s\t$%s\t$%s\t%s\n",
			l.ID, l.MonthlyRent.StringFixed(2),
			balance.TotalPaid.StringFixed(2),
			balance.Outstanding.StringFixed(2),
			balance.Status)
	}
	return w.Flush()
}

func (cl *console) printOverduePayments() error {
	overdue, err := cl.reconciler.OverduePayments(context.Background(), model.Today())
	if err != nil {
		return err
	}
	if len(overdue) == 0 {
		fmt.Println("No overdue payments.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PAYMENT\tLEASE\tAMOUNT\tDUE\tDAYS OVERDUE")
	for _, p := range overdue {
		fmt.Fprintf(w, "%d\t%d\t$%s\t%s\t%d\n",
			p.ID, p.LeaseID, p.Amount.StringFixed(2), p.DueDate, p.DaysOverdue)
	}
	return w.Flush()
}

func (cl *console) printSummaryReport() error {
	summary, err := cl.reconciler.Summary(context.Background(), model.Today())
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("===== Payment Summary Report =====")
	fmt.Printf("Total Rent Received:  $%s\n", summary.TotalReceived.StringFixed(2))
	fmt.Printf("Total Rent Expected:  $%s\n", summary.TotalExpected.StringFixed(2))
	fmt.Printf("Collection Rate:      %s%%\n", summary.CollectionRate.StringFixed(2))
	fmt.Printf("Late Payments:        %d\n", summary.LateCount)
	return nil
}

func (cl *console) printExpiringLeases(days int) error {
	leases, err := cl.reconciler.LeasesExpiringSoon(context.Background(), days, model.Today())
	if err != nil {
		return err
	}
	if len(leases) == 0 {
		fmt.Printf("No active leases ending within %d days.\n", days)
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "LEASE\tPROPERTY\tTENANT\tEND DATE")
	for _, l := range leases {
		fmt.Fprintf(w, "%d\t%d\t%d\t%s\n", l.ID, l.PropertyID, l.TenantID, l.EndDate)
	}
	return w.Flush()
}

func (cl *console) printExpiredActiveLeases() error {
	leases, err := cl.reconciler.ExpiredActiveLeases(context.Background(), model.Today())
	if err != nil {
		return err
	}
	if len(leases) == 0 {
		fmt.Println("No expired leases are still marked active.")
		return nil
	}

	fmt.Println("These leases have ended but are still marked ACTIVE; review and update them:")
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "LEASE\tPROPERTY\tTENANT\tENDED")
	for _, l := range leases {
		fmt.Fprintf(w, "%d\t%d\t%d\t%s\n", l.ID, l.PropertyID, l.TenantID, l.EndDate)
	}
	return w.Flush()
}

func (cl *console) printOpenMaintenance() error {
	requests, err := cl.requests.ListByStatus(context.Background(), model.MaintenanceOpen)
	if err != nil {
		return err
	}
	if len(requests) == 0 {
		fmt.Println("No open maintenance requests.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPROPERTY\tPRIORITY\tREQUESTED\tDESCRIPTION")
	for _, m := range requests {
		fmt.Fprintf(w, "%d\t%d\t%s\t%s\t%s\n",
			m.ID, m.PropertyID, m.Priority, m.RequestDate, m.Description)
	}
	return w.Flush()
}
