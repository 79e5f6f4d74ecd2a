package store

import (
	"database/sql"

	"github.com/shopspring/decimal"

	"github.com/rentflow-solutions/property-management-service/internal/model"
)

// Helpers converting optional model fields to their driver-level
// nullable forms.

func nullInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}

func nullID(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}

func nullDate(d *model.Date) sql.NullTime {
	if d == nil || d.IsZero() {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: d.Time, Valid: true}
}

func nullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *d, Valid: true}
}

func dateFromNull(t sql.NullTime) *model.Date {
	if !t.Valid {
		return nil
	}
	d := model.NewDate(t.Time.Year(), t.Time.Month(), t.Time.Day())
	return &d
}
