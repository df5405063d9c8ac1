package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// FundStrategy represents a fund's investment strategy.
type FundStrategy string

const (
	StrategyGrowth          FundStrategy = "growth"
	StrategyValue           FundStrategy = "value"
	StrategyBlend           FundStrategy = "blend"
	StrategyIncome          FundStrategy = "income"
	StrategySectorSpecific  FundStrategy = "sector_specific"
	StrategyInternational   FundStrategy = "international"
	StrategyEmergingMarkets FundStrategy = "emerging_markets"
)

// Fund represents an investment fund. A fund owns its holdings and
// performance records; deleting a fund removes both.
type Fund struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	Name          string          `gorm:"size:255;not null;uniqueIndex" json:"name"`
	Strategy      FundStrategy    `gorm:"size:32;not null" json:"strategy"`
	InceptionDate time.Time       `gorm:"type:date;not null" json:"inception_date"`
	TotalAUM      decimal.Decimal `gorm:"column:total_aum;type:numeric(15,2);not null;default:0" json:"total_aum"`
	ManagerName   string          `gorm:"size:255" json:"manager_name,omitempty"`
	ExpenseRatio  decimal.Decimal `gorm:"type:numeric(6,4);default:0" json:"expense_ratio"`
	Description   string          `gorm:"type:text" json:"description,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`

	Holdings           []Holding         `gorm:"foreignKey:FundID;constraint:OnDelete:CASCADE" json:"holdings,omitempty"`
	PerformanceRecords []FundPerformance `gorm:"foreignKey:FundID;constraint:OnDelete:CASCADE" json:"-"`
}

// TotalCostBasis sums shares * purchase_price across the loaded holdings.
func (f *Fund) TotalCostBasis() decimal.Decimal {
	total := decimal.Zero
	for i := range f.Holdings {
		total = total.Add(f.Holdings[i].CostBasis())
	}
	return total
}
