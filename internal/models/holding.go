package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Holding represents a stock position owned by a fund. Tickers are stored
// upper-cased; shares and purchase price carry four decimal places.
type Holding struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	FundID        uint            `gorm:"not null;index" json:"fund_id"`
	Ticker        string          `gorm:"size:10;not null;index" json:"ticker"`
	CompanyName   string          `gorm:"size:255" json:"company_name,omitempty"`
	Shares        decimal.Decimal `gorm:"type:numeric(15,4);not null" json:"shares"`
	PurchasePrice decimal.Decimal `gorm:"type:numeric(10,4);not null" json:"purchase_price"`
	PurchaseDate  time.Time       `gorm:"type:date;not null" json:"purchase_date"`
	Sector        *string         `gorm:"size:100" json:"sector,omitempty"`
	MarketCap     *int64          `json:"market_cap,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// CostBasis returns shares * purchase_price, exact regardless of whether a
// current price is known.
func (h *Holding) CostBasis() decimal.Decimal {
	return h.Shares.Mul(h.PurchasePrice)
}
