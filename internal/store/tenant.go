package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rentflow-solutions/property-management-service/internal/crypto"
	"github.com/rentflow-solutions/property-management-service/internal/model"
)

// TenantRepository handles database operations for tenants. The SSN
// last-four is encrypted before insert and decrypted after select.
type TenantRepository struct {
	db *sql.DB
}

const tenantColumns = `id, first_name, last_name, email, phone, date_of_birth,
	encrypted_ssn, ssn_nonce, employment_status, monthly_income,
	emergency_contact_name, emergency_contact_phone, created_at, updated_at`

func scanTenant(row interface{ Scan(...interface{}) error }) (*model.Tenant, error) {
	t := &model.Tenant{}
	var (
		dob          sql.NullTime
		income       decimal.NullDecimal
		contactName  sql.NullString
		contactPhone sql.NullString
	)
	err := row.Scan(&t.ID, &t.FirstName, &t.LastName, &t.Email, &t.Phone, &dob,
		&t.EncryptedSSN, &t.SSNNonce, &t.EmploymentStatus, &income,
		&contactName, &contactPhone, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	t.DateOfBirth = dateFromNull(dob)
	if income.Valid {
		t.MonthlyIncome = &income.Decimal
	}
	t.EmergencyContactName = contactName.String
	t.EmergencyContactPhone = contactPhone.String

	if len(t.EncryptedSSN) > 0 && len(t.SSNNonce) > 0 {
		ssn, err := crypto.DecryptField(t.EncryptedSSN, t.SSNNonce)
		if err != nil {
			return nil, err
		}
		t.SSNLastFour = ssn
	}
	return t, nil
}

func (r *TenantRepository) encryptSSN(t *model.Tenant) error {
	if t.SSNLastFour == "" {
		t.EncryptedSSN = nil
		t.SSNNonce = nil
		return nil
	}
	ciphertext, nonce, err := crypto.EncryptField(t.SSNLastFour)
	if err != nil {
		return err
	}
	t.EncryptedSSN = ciphertext
	t.SSNNonce = nonce
	return nil
}

func (r *TenantRepository) Create(ctx context.Context, t *model.Tenant) error {
	if err := r.encryptSSN(t); err != nil {
		return err
	}
	query := `
		INSERT INTO tenants (first_name, last_name, email, phone, date_of_birth,
			encrypted_ssn, ssn_nonce, employment_status, monthly_income,
			emergency_contact_name, emergency_contact_phone, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $12)
		RETURNING id, created_at, updated_at
	`
	now := time.Now()
	return r.db.QueryRowContext(ctx, query,
		t.FirstName, t.LastName, t.Email, t.Phone, nullDate(t.DateOfBirth),
		t.EncryptedSSN, t.SSNNonce, t.EmploymentStatus, nullDecimal(t.MonthlyIncome),
		t.EmergencyContactName, t.EmergencyContactPhone, now,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
}

func (r *TenantRepository) GetByID(ctx context.Context, id int64) (*model.Tenant, error) {
	query := `SELECT ` + tenantColumns + ` FROM tenants WHERE id = $1`
	t, err := scanTenant(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	return t, err
}

// GetByEmail returns nil without an error when no tenant has the
// address; callers use it for uniqueness checks.
func (r *TenantRepository) GetByEmail(ctx context.Context, email string) (*model.Tenant, error) {
	query := `SELECT ` + tenantColumns + ` FROM tenants WHERE email = $1`
	t, err := scanTenant(r.db.QueryRowContext(ctx, query, email))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return t, err
}

func (r *TenantRepository) List(ctx context.Context) ([]model.Tenant, error) {
	query := `SELECT ` + tenantColumns + ` FROM tenants ORDER BY id`
	return r.queryTenants(ctx, query)
}

// SearchByName matches a case-insensitive substring of either name.
func (r *TenantRepository) SearchByName(ctx context.Context, name string) ([]model.Tenant, error) {
	query := `SELECT ` + tenantColumns + ` FROM tenants
		WHERE first_name ILIKE '%' || $1 || '%' OR last_name ILIKE '%' || $1 || '%'
		ORDER BY id`
	return r.queryTenants(ctx, query, name)
}

func (r *TenantRepository) ListByEmploymentStatus(ctx context.Context, status model.EmploymentStatus) ([]model.Tenant, error) {
	query := `SELECT ` + tenantColumns + ` FROM tenants WHERE employment_status = $1 ORDER BY id`
	return r.queryTenants(ctx, query, status)
}

func (r *TenantRepository) Update(ctx context.Context, t *model.Tenant) error {
	if err := r.encryptSSN(t); err != nil {
		return err
	}
	query := `
		UPDATE tenants
		SET first_name = $2, last_name = $3, email = $4, phone = $5, date_of_birth = $6,
			encrypted_ssn = $7, ssn_nonce = $8, employment_status = $9, monthly_income = $10,
			emergency_contact_name = $11, emergency_contact_phone = $12, updated_at = now()
		WHERE id = $1
		RETURNING updated_at
	`
	err := r.db.QueryRowContext(ctx, query,
		t.ID, t.FirstName, t.LastName, t.Email, t.Phone, nullDate(t.DateOfBirth),
		t.EncryptedSSN, t.SSNNonce, t.EmploymentStatus, nullDecimal(t.MonthlyIncome),
		t.EmergencyContactName, t.EmergencyContactPhone,
	).Scan(&t.UpdatedAt)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	return err
}

func (r *TenantRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM tenants WHERE id = $1`, id)
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

func (r *TenantRepository) queryTenants(ctx context.Context, query string, args ...interface{}) ([]model.Tenant, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tenants []model.Tenant
	for rows.Next() {
		t, err := scanTenant(rows)
		if err != nil {
			return nil, err
		}
		tenants = append(tenants, *t)
	}
	return tenants, rows.Err()
}
