package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"github.com/rentflow-solutions/property-management-service/internal/model"
	"github.com/rentflow-solutions/property-management-service/internal/store"
)

func (cl *console) printPayments() error {
	payments, err := cl.payments.List(context.Background())
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tLEASE\tDATE\tAMOUNT\tTYPE\tMETHOD\tSTATUS")
	for _, p := range payments {
		fmt.Fprintf(w, "%d\t%d\t%s\t$%s\t%s\t%s\t%s\n",
			p.ID, p.LeaseID, p.PaymentDate, p.Amount.StringFixed(2),
			p.PaymentType, p.PaymentMethod, p.Status)
	}
	return w.Flush()
}

// propertyExplorer runs the filter sub-menu. Every branch is one
// Search call with a different filter.
func (cl *console) propertyExplorer(scanner *bufio.Scanner) error {
	for {
		fmt.Println()
		fmt.Println("----- Property Explorer -----")
		fmt.Println("1. List all properties")
		fmt.Println("2. Filter by city")
		fmt.Println("3. Filter by state")
		fmt.Println("4. Filter by type")
		fmt.Println("5. Filter by bedrooms")
		fmt.Println("6. Filter by rent range")
		fmt.Println("0. Back")

		var filter store.PropertyFilter
		switch prompt(scanner, "Select an option: ") {
		case "1":
		case "2":
			filter.City = prompt(scanner, "City: ")
		case "3":
			filter.State = prompt(scanner, "State (e.g. SC): ")
		case "4":
			t, err := model.ParsePropertyType(prompt(scanner, "Type (APARTMENT, HOUSE, CONDO, DUPLEX, SINGLE_FAMILY): "))
			if err != nil {
				fmt.Printf("Warning: %v\n", err)
				continue
			}
			filter.PropertyType = t
		case "5":
			n, err := strconv.Atoi(prompt(scanner, "Minimum bedrooms: "))
			if err != nil {
				fmt.Println("Warning: please enter a whole number.")
				continue
			}
			filter.MinBedrooms = n
		case "6":
			min, err := decimal.NewFromString(prompt(scanner, "Minimum rent: "))
			if err != nil {
				fmt.Println("Warning: invalid amount.")
				continue
			}
			max, err := decimal.NewFromString(prompt(scanner, "Maximum rent: "))
			if err != nil {
				fmt.Println("Warning: invalid amount.")
				continue
			}
			filter.MinRent = &min
			filter.MaxRent = &max
		case "0":
			return nil
		default:
			fmt.Println("Unknown option.")
			continue
		}

		properties, err := cl.properties.Search(context.Background(), filter)
		if err != nil {
			return err
		}
		if len(properties) == 0 {
			fmt.Println("No properties match.")
			continue
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tADDRESS\tCITY\tSTATE\tTYPE\tBEDS\tRENT")
		for _, p := range properties {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%d\t$%s\n",
				p.ID, p.Address, p.City, p.State, p.PropertyType,
				p.Bedrooms, p.MonthlyRent.StringFixed(2))
		}
		if err := w.Flush(); err != nil {
			return err
		}
	}
}

func (cl *console) manageProperties(scanner *bufio.Scanner) error {
	for {
		fmt.Println()
		fmt.Println("----- Property Management -----")
		fmt.Println("1. List properties")
		fmt.Println("2. Property explorer")
		fmt.Println("3. Create property")
		fmt.Println("4. Update property")
		fmt.Println("5. Delete property")
		fmt.Println("0. Back")

		var err error
		switch prompt(scanner, "Select an option: ") {
		case "1":
			err = cl.printProperties()
		case "2":
			err = cl.propertyExplorer(scanner)
		case "3":
			err = cl.createProperty(scanner)
		case "4":
			err = cl.updateProperty(scanner)
		case "5":
			err = cl.deleteProperty(scanner)
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

func (cl *console) createProperty(scanner *bufio.Scanner) error {
	p := model.Property{
		Address: prompt(scanner, "Address: "),
		City:    prompt(scanner, "City: "),
		State:   prompt(scanner, "State (e.g. SC): "),
		ZipCode: prompt(scanner, "Zip code: "),
	}

	t, err := model.ParsePropertyType(prompt(scanner, "Type (APARTMENT, HOUSE, CONDO, DUPLEX, SINGLE_FAMILY): "))
	if err != nil {
		return err
	}
	p.PropertyType = t

	if p.Bedrooms, err = strconv.Atoi(prompt(scanner, "Bedrooms: ")); err != nil {
		return fmt.Errorf("invalid bedroom count")
	}
	if p.Bathrooms, err = decimal.NewFromString(prompt(scanner, "Bathrooms (e.g. 1.5): ")); err != nil {
		return fmt.Errorf("invalid bathroom count")
	}
	if p.MonthlyRent, err = decimal.NewFromString(prompt(scanner, "Monthly rent: ")); err != nil {
		return fmt.Errorf("invalid rent amount")
	}

	if v := prompt(scanner, "Square feet (optional): "); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid square footage")
		}
		p.SquareFeet = &n
	}
	if v := prompt(scanner, "Purchase date (YYYY-MM-DD, optional): "); v != "" {
		d, err := model.ParseDate(v)
		if err != nil {
			return err
		}
		p.PurchaseDate = &d
	}
	if v := prompt(scanner, "Purchase price (optional): "); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return fmt.Errorf("invalid purchase price")
		}
		p.PurchasePrice = &d
	}

	if err := cl.properties.Create(context.Background(), &p); err != nil {
		return err
	}
	fmt.Printf("Property %d created.\n", p.ID)
	return nil
}

// updateProperty prompts per field with the current value as default;
// blank input keeps it.
func (cl *console) updateProperty(scanner *bufio.Scanner) error {
	id, err := strconv.ParseInt(prompt(scanner, "Property ID to update: "), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid property id")
	}
	p, err := cl.properties.Get(context.Background(), id)
	if err != nil {
		return err
	}

	if v := prompt(scanner, fmt.Sprintf("Address [%s]: ", p.Address)); v != "" {
		p.Address = v
	}
	if v := prompt(scanner, fmt.Sprintf("City [%s]: ", p.City)); v != "" {
		p.City = v
	}
	if v := prompt(scanner, fmt.Sprintf("State [%s]: ", p.State)); v != "" {
		p.State = v
	}
	if v := prompt(scanner, fmt.Sprintf("Zip code [%s]: ", p.ZipCode)); v != "" {
		p.ZipCode = v
	}
	if v := prompt(scanner, fmt.Sprintf("Type [%s]: ", p.PropertyType)); v != "" {
		t, err := model.ParsePropertyType(v)
		if err != nil {
			return err
		}
		p.PropertyType = t
	}
	if v := prompt(scanner, fmt.Sprintf("Bedrooms [%d]: ", p.Bedrooms)); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid bedroom count")
		}
		p.Bedrooms = n
	}
	if v := prompt(scanner, fmt.Sprintf("Bathrooms [%s]: ", p.Bathrooms)); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return fmt.Errorf("invalid bathroom count")
		}
		p.Bathrooms = d
	}
	if v := prompt(scanner, fmt.Sprintf("Monthly rent [%s]: ", p.MonthlyRent.StringFixed(2))); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return fmt.Errorf("invalid rent amount")
		}
		p.MonthlyRent = d
	}

	if err := cl.properties.Update(context.Background(), p); err != nil {
		return err
	}
	fmt.Println("Property updated.")
	return nil
}

func (cl *console) deleteProperty(scanner *bufio.Scanner) error {
	id, err := strconv.ParseInt(prompt(scanner, "Property ID to delete: "), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid property id")
	}
	p, err := cl.properties.Get(context.Background(), id)
	if err != nil {
		return err
	}

	confirm := prompt(scanner, fmt.Sprintf("Type DELETE to confirm removal of %s: ", p.Address))
	if !strings.EqualFold(confirm, "DELETE") {
		fmt.Println("Deletion cancelled.")
		return nil
	}
	if err := cl.properties.Delete(context.Background(), id); err != nil {
		return err
	}
	fmt.Println("Property deleted.")
	return nil
}

func (cl *console) manageTenants(scanner *bufio.Scanner) error {
	for {
		fmt.Println()
		fmt.Println("----- Tenant Management -----")
		fmt.Println("1. List tenants")
		fmt.Println("2. Create tenant")
		fmt.Println("3. Update tenant")
		fmt.Println("4. Delete tenant")
		fmt.Println("0. Back")

		var err error
		switch prompt(scanner, "Select an option: ") {
		case "1":
			err = cl.printTenants()
		case "2":
			err = cl.createTenant(scanner)
		case "3":
			err = cl.updateTenant(scanner)
		case "4":
			err = cl.deleteTenant(scanner)
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

func (cl *console) createTenant(scanner *bufio.Scanner) error {
	t := model.Tenant{
		FirstName: prompt(scanner, "First name: "),
		LastName:  prompt(scanner, "Last name: "),
		Email:     prompt(scanner, "Email: "),
		Phone:     prompt(scanner, "Phone: "),
	}

	status, err := model.ParseEmploymentStatus(prompt(scanner, "Employment status (EMPLOYED, SELF_EMPLOYED, UNEMPLOYED, RETIRED, STUDENT): "))
	if err != nil {
		return err
	}
	t.EmploymentStatus = status

	if v := prompt(scanner, "Monthly income (optional): "); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return fmt.Errorf("invalid income amount")
		}
		t.MonthlyIncome = &d
	}
	if v := prompt(scanner, "Date of birth (YYYY-MM-DD, optional): "); v != "" {
		d, err := model.ParseDate(v)
		if err != nil {
			return err
		}
		t.DateOfBirth = &d
	}
	t.SSNLastFour = prompt(scanner, "SSN last four (optional): ")
	t.EmergencyContactName = prompt(scanner, "Emergency contact name (optional): ")
	t.EmergencyContactPhone = prompt(scanner, "Emergency contact phone (optional): ")

	if err := cl.tenants.Create(context.Background(), &t); err != nil {
		return err
	}
	fmt.Printf("Tenant %d created.\n", t.ID)
	return nil
}

func (cl *console) updateTenant(scanner *bufio.Scanner) error {
	id, err := strconv.ParseInt(prompt(scanner, "Tenant ID to update: "), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid tenant id")
	}
	t, err := cl.tenants.Get(context.Background(), id)
	if err != nil {
		return err
	}
	fmt.Printf("Current tenant: %s (%s)\n", t.FullName(), t.Email)

	if v := prompt(scanner, fmt.Sprintf("First name [%s]: ", t.FirstName)); v != "" {
		t.FirstName = v
	}
	if v := prompt(scanner, fmt.Sprintf("Last name [%s]: ", t.LastName)); v != "" {
		t.LastName = v
	}
	if v := prompt(scanner, fmt.Sprintf("Email [%s]: ", t.Email)); v != "" {
		t.Email = v
	}
	if v := prompt(scanner, fmt.Sprintf("Phone [%s]: ", t.Phone)); v != "" {
		t.Phone = v
	}
	if v := prompt(scanner, fmt.Sprintf("Employment status [%s]: ", t.EmploymentStatus)); v != "" {
		status, err := model.ParseEmploymentStatus(v)
		if err != nil {
			return err
		}
		t.EmploymentStatus = status
	}

	if err := cl.tenants.Update(context.Background(), t); err != nil {
		return err
	}
	fmt.Println("Tenant updated.")
	return nil
}

func (cl *console) deleteTenant(scanner *bufio.Scanner) error {
	id, err := strconv.ParseInt(prompt(scanner, "Tenant ID to delete: "), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid tenant id")
	}
	t, err := cl.tenants.Get(context.Background(), id)
	if err != nil {
		return err
	}

	confirm := prompt(scanner, fmt.Sprintf("Type DELETE to confirm removal of %s: ", t.FullName()))
	if !strings.EqualFold(confirm, "DELETE") {
		fmt.Println("Deletion cancelled.")
		return nil
	}
	if err := cl.tenants.Delete(context.Background(), id); err != nil {
		return err
	}
	fmt.Println("Tenant deleted.")
	return nil
}

// updateMaintenanceStatus lists every request, then walks one through
// a status change. Completing a request defaults the completion date
// to today.
func (cl *console) updateMaintenanceStatus(scanner *bufio.Scanner) error {
	ctx := context.Background()
	requests, err := cl.requests.List(ctx)
	if err != nil {
		return err
	}
	if len(requests) == 0 {
		fmt.Println("No maintenance requests found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPROPERTY\tPRIORITY\tSTATUS\tDESCRIPTION")
	for _, m := range requests {
		fmt.Fprintf(w, "%d\t%d\t%s\t%s\t%s\n",
			m.ID, m.PropertyID, m.Priority, m.Status, m.Description)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	id, err := strconv.ParseInt(prompt(scanner, "Maintenance request ID: "), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid request id")
	}
	m, err := cl.requests.Get(ctx, id)
	if err != nil {
		return err
	}

	fmt.Printf("Current status: %s\n", m.Status)
	status, err := model.ParseMaintenanceStatus(prompt(scanner, "New status (OPEN, IN_PROGRESS, COMPLETED, CANCELLED): "))
	if err != nil {
		return err
	}
	m.Status = status

	if status == model.MaintenanceCompleted {
		if v := prompt(scanner, "Completion date (YYYY-MM-DD, blank for today): "); v != "" {
			d, err := model.ParseDate(v)
			if err != nil {
				return err
			}
			m.CompletionDate = &d
		} else {
			today := model.Today()
			m.CompletionDate = &today
		}
	}
	if v := prompt(scanner, "Actual cost (optional): "); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return fmt.Errorf("invalid cost amount")
		}
		m.ActualCost = &d
	}
	if v := prompt(scanner, "Notes (optional): "); v != "" {
		m.Notes = v
	}

	if err := cl.requests.Update(ctx, m); err != nil {
		return err
	}
	fmt.Println("Maintenance request updated.")
	return nil
}
