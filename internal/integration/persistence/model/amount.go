package model

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// Amount is a monetary column. SQLite stores it as text since its numeric
// affinity would round values beyond float64 precision.
type Amount struct {
	decimal.Decimal
}

// GormDBDataType returns the column type for the connected dialect.
func (Amount) GormDBDataType(db *gorm.DB, _ *schema.Field) string {
	if db.Dialector.Name() == "sqlite" {
		return "text"
	}
	return "decimal(18,2)"
}
