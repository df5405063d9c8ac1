package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PeerCategory buckets benchmark funds by cap/style/sector/region.
type PeerCategory string

const (
	PeerLargeCapGrowth         PeerCategory = "large_cap_growth"
	PeerLargeCapValue          PeerCategory = "large_cap_value"
	PeerMidCapGrowth           PeerCategory = "mid_cap_growth"
	PeerMidCapValue            PeerCategory = "mid_cap_value"
	PeerSmallCapGrowth         PeerCategory = "small_cap_growth"
	PeerSmallCapValue          PeerCategory = "small_cap_value"
	PeerInternationalDeveloped PeerCategory = "international_developed"
	PeerEmergingMarkets        PeerCategory = "emerging_markets"
	PeerSectorTechnology       PeerCategory = "sector_technology"
	PeerSectorHealthcare       PeerCategory = "sector_healthcare"
	PeerSectorFinancial        PeerCategory = "sector_financial"
)

// PeerFund is an external benchmark/competitor fund used for comparative
// performance display. It has no ownership relation to Fund.
type PeerFund struct {
	ID                uint                `gorm:"primaryKey" json:"id"`
	Name              string              `gorm:"size:255;not null" json:"name"`
	BenchmarkCategory PeerCategory        `gorm:"size:32;not null;index" json:"benchmark_category"`
	TotalAUM          decimal.NullDecimal `gorm:"column:total_aum;type:numeric(15,2)" json:"total_aum"`
	ExpenseRatio      decimal.NullDecimal `gorm:"type:numeric(6,4)" json:"expense_ratio"`
	InceptionDate     *time.Time          `gorm:"type:date" json:"inception_date,omitempty"`
	ManagerCompany    string              `gorm:"size:255" json:"manager_company,omitempty"`
	Description       string              `gorm:"type:text" json:"description,omitempty"`
	CreatedAt         time.Time           `json:"created_at"`
}
