package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockPrice represents one day of OHLCV market data for a ticker.
// (ticker, date) is unique; the schema additionally enforces
// low <= open <= high and low <= close <= high.
type StockPrice struct {
	ID            uint                `gorm:"primaryKey" json:"id"`
	Ticker        string              `gorm:"size:10;not null;index;uniqueIndex:uq_ticker_date" json:"ticker"`
	Date          time.Time           `gorm:"type:date;not null;index;uniqueIndex:uq_ticker_date" json:"date"`
	OpenPrice     decimal.Decimal     `gorm:"type:numeric(10,4);not null" json:"open_price"`
	HighPrice     decimal.Decimal     `gorm:"type:numeric(10,4);not null" json:"high_price"`
	LowPrice      decimal.Decimal     `gorm:"type:numeric(10,4);not null" json:"low_price"`
	ClosePrice    decimal.Decimal     `gorm:"type:numeric(10,4);not null" json:"close_price"`
	Volume        int64               `gorm:"not null" json:"volume"`
	AdjustedClose decimal.NullDecimal `gorm:"type:numeric(10,4)" json:"adjusted_close"`
	CreatedAt     time.Time           `json:"created_at"`
}
