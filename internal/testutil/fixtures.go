package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"fundboard/internal/models"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// Dec parses a decimal literal, failing the test on bad input.
func Dec(t *testing.T, value string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(value)
	if err != nil {
		t.Fatalf("bad decimal literal %q: %v", value, err)
	}
	return d
}

// Date builds a date value for fixture rows.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// CreateTestFund creates a growth fund with a unique name.
func CreateTestFund(t *testing.T, db *gorm.DB) *models.Fund {
	t.Helper()
	return CreateTestFundWithName(t, db, fmt.Sprintf("Test Fund %d", nextID()))
}

// CreateTestFundWithName creates a fund with the given name.
func CreateTestFundWithName(t *testing.T, db *gorm.DB, name string) *models.Fund {
	t.Helper()

	fund := &models.Fund{
		Name:          name,
		Strategy:      models.StrategyGrowth,
		InceptionDate: Date(2020, time.January, 15),
		TotalAUM:      Dec(t, "250000000.00"),
		ManagerName:   "Jordan Blake",
		ExpenseRatio:  Dec(t, "0.0075"),
	}
	if err := db.Create(fund).Error; err != nil {
		t.Fatalf("failed to create test fund: %v", err)
	}
	return fund
}

// CreateTestHolding creates a holding for the given fund and ticker.
func CreateTestHolding(t *testing.T, db *gorm.DB, fundID uint, ticker string, shares, purchasePrice string) *models.Holding {
	t.Helper()

	sector := "Technology"
	holding := &models.Holding{
		FundID:        fundID,
		Ticker:        ticker,
		CompanyName:   fmt.Sprintf("%s Inc", ticker),
		Shares:        Dec(t, shares),
		PurchasePrice: Dec(t, purchasePrice),
		PurchaseDate:  Date(2023, time.June, 1),
		Sector:        &sector,
	}
	if err := db.Create(holding).Error; err != nil {
		t.Fatalf("failed to create test holding: %v", err)
	}
	return holding
}

// CreateTestHoldingInSector creates a holding with a specific sector,
// nil meaning no sector recorded.
func CreateTestHoldingInSector(t *testing.T, db *gorm.DB, fundID uint, ticker string, shares, purchasePrice string, sector *string) *models.Holding {
	t.Helper()

	holding := &models.Holding{
		FundID:        fundID,
		Ticker:        ticker,
		CompanyName:   fmt.Sprintf("%s Inc", ticker),
		Shares:        Dec(t, shares),
		PurchasePrice: Dec(t, purchasePrice),
		PurchaseDate:  Date(2023, time.June, 1),
		Sector:        sector,
	}
	if err := db.Create(holding).Error; err != nil {
		t.Fatalf("failed to create test holding: %v", err)
	}
	return holding
}

// CreateTestStockPrice creates a flat OHLCV row for a ticker and date.
func CreateTestStockPrice(t *testing.T, db *gorm.DB, ticker string, date time.Time, closePrice string) *models.StockPrice {
	t.Helper()

	c := Dec(t, closePrice)
	price := &models.StockPrice{
		Ticker:     ticker,
		Date:       date,
		OpenPrice:  c,
		HighPrice:  c,
		LowPrice:   c,
		ClosePrice: c,
		Volume:     1000000,
	}
	if err := db.Create(price).Error; err != nil {
		t.Fatalf("failed to create test stock price: %v", err)
	}
	return price
}

// CreateTestPerformance creates a NAV record for a fund on a date.
func CreateTestPerformance(t *testing.T, db *gorm.DB, fundID uint, date time.Time, totalReturn, aum string) *models.FundPerformance {
	t.Helper()

	record := &models.FundPerformance{
		FundID:                fundID,
		Date:                  date,
		NAVPrice:              Dec(t, "102.5000"),
		TotalReturn:           decimal.NullDecimal{Decimal: Dec(t, totalReturn), Valid: true},
		DailyReturn:           decimal.NullDecimal{Decimal: Dec(t, "0.12"), Valid: true},
		AssetsUnderManagement: decimal.NullDecimal{Decimal: Dec(t, aum), Valid: true},
	}
	if err := db.Create(record).Error; err != nil {
		t.Fatalf("failed to create test performance record: %v", err)
	}
	return record
}

// CreateTestPeerFund creates a peer fund in the given benchmark category.
func CreateTestPeerFund(t *testing.T, db *gorm.DB, category models.PeerCategory) *models.PeerFund {
	t.Helper()

	peer := &models.PeerFund{
		Name:              fmt.Sprintf("Peer Fund %d", nextID()),
		BenchmarkCategory: category,
		TotalAUM:          decimal.NullDecimal{Decimal: Dec(t, "500000000.00"), Valid: true},
		ExpenseRatio:      decimal.NullDecimal{Decimal: Dec(t, "0.0045"), Valid: true},
		ManagerCompany:    "Benchmark Partners",
	}
	if err := db.Create(peer).Error; err != nil {
		t.Fatalf("failed to create test peer fund: %v", err)
	}
	return peer
}
