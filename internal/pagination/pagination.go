// Package pagination provides skip/limit list parameters shared by the
// collection endpoints.
package pagination

import "gorm.io/gorm"

// ListParams holds offset pagination parameters parsed from query strings.
type ListParams struct {
	Skip  int `form:"skip" binding:"omitempty,min=0"`
	Limit int `form:"limit" binding:"omitempty,min=1,max=1000"`
}

// Defaults fills in the default limit when not provided.
func (p *ListParams) Defaults() {
	if p.Limit == 0 {
		p.Limit = 100
	}
}

// Scope returns a GORM scope that applies OFFSET and LIMIT.
func Scope(p ListParams) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(p.Skip).Limit(p.Limit)
	}
}
