package models

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

// NewDate returns the finite calendar date year-month-day in UTC.
func NewDate(year int, month time.Month, day int) pgtype.Date {
	return pgtype.Date{
		Time:  time.Date(year, month, day, 0, 0, 0, 0, time.UTC),
		Valid: true,
	}
}

// IsCalendarDate reports whether d holds a finite date.
func IsCalendarDate(d pgtype.Date) bool {
	return d.Valid && d.InfinityModifier == pgtype.Finite
}
