package tenant

import "gorm.io/gorm"

// Column is the owner column on every company scoped table.
const Column = "company_id"

// Scope limits a query to rows owned by companyID.
func Scope(companyID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(Column+" = ?", companyID)
	}
}
