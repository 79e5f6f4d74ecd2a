package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rentflow-solutions/property-management-service/internal/model"
)

// PropertyRepository handles database operations for properties.
type PropertyRepository struct {
	db *sql.DB
}

const propertyColumns = `id, address, city, state, zip_code, property_type, bedrooms,
	bathrooms, square_feet, monthly_rent, purchase_date, purchase_price,
	created_at, updated_at`

func scanProperty(row interface{ Scan(...interface{}) error }) (*model.Property, error) {
	p := &model.Property{}
	var (
		squareFeet    sql.NullInt64
		purchaseDate  sql.NullTime
		purchasePrice decimal.NullDecimal
	)
	err := row.Scan(&p.ID, &p.Address, &p.City, &p.State, &p.ZipCode, &p.PropertyType,
		&p.Bedrooms, &p.Bathrooms, &squareFeet, &p.MonthlyRent,
		&purchaseDate, &purchasePrice, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if squareFeet.Valid {
		v := int(squareFeet.Int64)
		p.SquareFeet = &v
	}
	p.PurchaseDate = dateFromNull(purchaseDate)
	if purchasePrice.Valid {
		p.PurchasePrice = &purchasePrice.Decimal
	}
	return p, nil
}

func (r *PropertyRepository) Create(ctx context.Context, p *model.Property) error {
	query := `
		INSERT INTO properties (address, city, state, zip_code, property_type, bedrooms,
			bathrooms, square_feet, monthly_rent, purchase_date, purchase_price,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $12)
		RETURNING id, created_at, updated_at
	`
	now := time.Now()
	return r.db.QueryRowContext(ctx, query,
		p.Address, p.City, p.State, p.ZipCode, p.PropertyType, p.Bedrooms,
		p.Bathrooms, nullInt(p.SquareFeet), p.MonthlyRent,
		nullDate(p.PurchaseDate), nullDecimal(p.PurchasePrice), now,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

func (r *PropertyRepository) GetByID(ctx context.Context, id int64) (*model.Property, error) {
	query := `SELECT ` + propertyColumns + ` FROM properties WHERE id = $1`
	p, err := scanProperty(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	return p, err
}

func (r *PropertyRepository) List(ctx context.Context) ([]model.Property, error) {
	query := `SELECT ` + propertyColumns + ` FROM properties ORDER BY id`
	return r.queryProperties(ctx, query)
}

// PropertyFilter narrows List results. Zero values mean "no
// constraint" for that field.
type PropertyFilter struct {
	City         string
	State        string
	PropertyType model.PropertyType
	MinBedrooms  int
	MinRent      *decimal.Decimal
	MaxRent      *decimal.Decimal
}

func (r *PropertyRepository) Search(ctx context.Context, f PropertyFilter) ([]model.Property, error) {
	query := `SELECT ` + propertyColumns + ` FROM properties
		WHERE ($1 = '' OR city = $1)
		  AND ($2 = '' OR state = $2)
		  AND ($3 = '' OR property_type = $3)
		  AND bedrooms >= $4
		  AND ($5::numeric IS NULL OR monthly_rent >= $5)
		  AND ($6::numeric IS NULL OR monthly_rent <= $6)
		ORDER BY id`
	return r.queryProperties(ctx, query,
		f.City, f.State, string(f.PropertyType), f.MinBedrooms,
		nullDecimal(f.MinRent), nullDecimal(f.MaxRent))
}

func (r *PropertyRepository) Update(ctx context.Context, p *model.Property) error {
	query := `
		UPDATE properties
		SET address = $2, city = $3, state = $4, zip_code = $5, property_type = $6,
			bedrooms = $7, bathrooms = $8, square_feet = $9, monthly_rent = $10,
			purchase_date = $11, purchase_price = $12, updated_at = now()
		WHERE id = $1
		RETURNING updated_at
	`
	err := r.db.QueryRowContext(ctx, query,
		p.ID, p.Address, p.City, p.State, p.ZipCode, p.PropertyType,
		p.Bedrooms, p.Bathrooms, nullInt(p.SquareFeet), p.MonthlyRent,
		nullDate(p.PurchaseDate), nullDecimal(p.PurchasePrice),
	).Scan(&p.UpdatedAt)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	return err
}

func (r *PropertyRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM properties WHERE id = $1`, id)
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

func (r *PropertyRepository) queryProperties(ctx context.Context, query string, args ...interface{}) ([]model.Property, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var properties []model.Property
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, err
		}
		properties = append(properties, *p)
	}
	return properties, rows.Err()
}
