package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// FundPerformance is a historical NAV and return record for a fund.
// (fund_id, date) is unique.
type FundPerformance struct {
	ID                    uint                `gorm:"primaryKey" json:"id"`
	FundID                uint                `gorm:"not null;index;uniqueIndex:uq_fund_date" json:"fund_id"`
	Date                  time.Time           `gorm:"type:date;not null;index;uniqueIndex:uq_fund_date" json:"date"`
	NAVPrice              decimal.Decimal     `gorm:"column:nav_price;type:numeric(10,4);not null" json:"nav_price"`
	TotalReturn           decimal.NullDecimal `gorm:"type:numeric(8,4)" json:"total_return"`
	DailyReturn           decimal.NullDecimal `gorm:"type:numeric(8,4)" json:"daily_return"`
	AssetsUnderManagement decimal.NullDecimal `gorm:"type:numeric(15,2)" json:"assets_under_management"`
	SharesOutstanding     *int64              `json:"shares_outstanding,omitempty"`
	CreatedAt             time.Time           `json:"created_at"`
}

// TableName keeps the singular table name used by the dashboard schema.
func (FundPerformance) TableName() string { return "fund_performance" }
