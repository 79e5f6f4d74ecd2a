package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rentflow-solutions/property-management-service/internal/model"
)

// MaintenanceRepository handles database operations for maintenance
// requests.
type MaintenanceRepository struct {
	db *sql.DB
}

const maintenanceColumns = `id, property_id, tenant_id, request_date, description, priority,
	status, estimated_cost, actual_cost, completion_date, notes, created_at, updated_at`

func scanMaintenance(row interface{ Scan(...interface{}) error }) (*model.MaintenanceRequest, error) {
	m := &model.MaintenanceRequest{}
	var (
		tenantID       sql.NullInt64
		estimatedCost  decimal.NullDecimal
		actualCost     decimal.NullDecimal
		completionDate sql.NullTime
		notes          sql.NullString
	)
	err := row.Scan(&m.ID, &m.PropertyID, &tenantID, &m.RequestDate, &m.Description,
		&m.Priority, &m.Status, &estimatedCost, &actualCost, &completionDate,
		&notes, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if tenantID.Valid {
		m.TenantID = &tenantID.Int64
	}
	if estimatedCost.Valid {
		m.EstimatedCost = &estimatedCost.Decimal
	}
	if actualCost.Valid {
		m.ActualCost = &actualCost.Decimal
	}
	m.CompletionDate = dateFromNull(completionDate)
	m.Notes = notes.String
	return m, nil
}

func (r *MaintenanceRepository) Create(ctx context.Context, m *model.MaintenanceRequest) error {
	query := `
		INSERT INTO maintenance_requests (property_id, tenant_id, request_date, description,
			priority, status, estimated_cost, actual_cost, completion_date, notes,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $11)
		RETURNING id, created_at, updated_at
	`
	now := time.Now()
	return r.db.QueryRowContext(ctx, query,
		m.PropertyID, nullID(m.TenantID), m.RequestDate, m.Description,
		m.Priority, m.Status, nullDecimal(m.EstimatedCost), nullDecimal(m.ActualCost),
		nullDate(m.CompletionDate), m.Notes, now,
	).Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt)
}

func (r *MaintenanceRepository) GetByID(ctx context.Context, id int64) (*model.MaintenanceRequest, error) {
	query := `SELECT ` + maintenanceColumns + ` FROM maintenance_requests WHERE id = $1`
	m, err := scanMaintenance(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	return m, err
}

func (r *MaintenanceRepository) List(ctx context.Context) ([]model.MaintenanceRequest, error) {
	return r.queryRequests(ctx, `SELECT `+maintenanceColumns+` FROM maintenance_requests ORDER BY id`)
}

func (r *MaintenanceRepository) ListByProperty(ctx context.Context, propertyID int64) ([]model.MaintenanceRequest, error) {
	query := `SELECT ` + maintenanceColumns + ` FROM maintenance_requests
		WHERE property_id = $1 ORDER BY id`
	return r.queryRequests(ctx, query, propertyID)
}

func (r *MaintenanceRepository) ListByStatus(ctx context.Context, status model.MaintenanceStatus) ([]model.MaintenanceRequest, error) {
	query := `SELECT ` + maintenanceColumns + ` FROM maintenance_requests
		WHERE status = $1 ORDER BY id`
	return r.queryRequests(ctx, query, status)
}

func (r *MaintenanceRepository) ListByPriority(ctx context.Context, priority model.MaintenancePriority) ([]model.MaintenanceRequest, error) {
	query := `SELECT ` + maintenanceColumns + ` FROM maintenance_requests
		WHERE priority = $1 ORDER BY id`
	return r.queryRequests(ctx, query, priority)
}

// TotalActualCostForProperty sums actual costs of completed requests
// for a property.
func (r *MaintenanceRepository) TotalActualCostForProperty(ctx context.Context, propertyID int64) (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(actual_cost), 0) FROM maintenance_requests
		WHERE property_id = $1 AND status = 'COMPLETED'`
	var total decimal.Decimal
	err := r.db.QueryRowContext(ctx, query, propertyID).Scan(&total)
	return total, err
}

func (r *MaintenanceRepository) Update(ctx context.Context, m *model.MaintenanceRequest) error {
	query := `
		UPDATE maintenance_requests
		SET property_id = $2, tenant_id = $3, request_date = $4, description = $5,
			priority = $6, status = $7, estimated_cost = $8, actual_cost = $9,
			completion_date = $10, notes = $11, updated_at = now()
		WHERE id = $1
		RETURNING updated_at
	`
	err := r.db.QueryRowContext(ctx, query,
		m.ID, m.PropertyID, nullID(m.TenantID), m.RequestDate, m.Description,
		m.Priority, m.Status, nullDecimal(m.EstimatedCost), nullDecimal(m.ActualCost),
		nullDate(m.CompletionDate), m.Notes,
	).Scan(&m.UpdatedAt)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	return err
}

func (r *MaintenanceRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM maintenance_requests WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MaintenanceRepository) queryRequests(ctx context.Context, query string, args ...interface{}) ([]model.MaintenanceRequest, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []model.MaintenanceRequest
	for rows.Next() {
		m, err := scanMaintenance(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, *m)
	}
	return requests, rows.Err()
}
