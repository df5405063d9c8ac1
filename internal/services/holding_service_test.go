package services

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"fundboard/internal/pagination"
	"fundboard/internal/testutil"
)

func TestCreateHolding(t *testing.T) {
	t.Run("valid_normalizes_ticker", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewHoldingService(db)
		fund := testutil.CreateTestFund(t, db)

		holding, err := svc.CreateHolding(CreateHoldingInput{
			FundID:        fund.ID,
			Ticker:        " aapl ",
			CompanyName:   "Apple Inc.",
			Shares:        testutil.Dec(t, "100"),
			PurchasePrice: testutil.Dec(t, "150.00"),
			PurchaseDate:  testutil.Date(2023, time.May, 1),
		})
		testutil.AssertNoError(t, err)

		if holding.Ticker != "AAPL" {
			t.Errorf("expected normalized ticker AAPL, got %s", holding.Ticker)
		}
	})

	t.Run("fund_not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewHoldingService(db)

		_, err := svc.CreateHolding(CreateHoldingInput{
			FundID:        9999,
			Ticker:        "AAPL",
			CompanyName:   "Apple Inc.",
			Shares:        testutil.Dec(t, "100"),
			PurchasePrice: testutil.Dec(t, "150.00"),
			PurchaseDate:  testutil.Date(2023, time.May, 1),
		})
		testutil.AssertAppError(t, err, "FUND_NOT_FOUND")
	})

	t.Run("future_purchase_date", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewHoldingService(db)
		fund := testutil.CreateTestFund(t, db)

		_, err := svc.CreateHolding(CreateHoldingInput{
			FundID:        fund.ID,
			Ticker:        "AAPL",
			CompanyName:   "Apple Inc.",
			Shares:        testutil.Dec(t, "100"),
			PurchasePrice: testutil.Dec(t, "150.00"),
			PurchaseDate:  time.Now().AddDate(0, 0, 1),
		})
		testutil.AssertAppError(t, err, "FUTURE_PURCHASE_DATE")
	})
}

func TestListHoldings(t *testing.T) {
	t.Run("enriches_with_latest_price", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewHoldingService(db)
		fund := testutil.CreateTestFund(t, db)
		// Cost basis 10 * 100 = 1000.
		testutil.CreateTestHolding(t, db, fund.ID, "AAPL", "10", "100.00")
		testutil.CreateTestStockPrice(t, db, "AAPL", testutil.Date(2024, time.January, 1), "120.00")
		testutil.CreateTestStockPrice(t, db, "AAPL", testutil.Date(2024, time.February, 1), "150.00")

		views, err := svc.ListHoldings(pagination.ListParams{}, HoldingFilter{})
		testutil.AssertNoError(t, err)

		if len(views) != 1 {
			t.Fatalf("expected 1 holding, got %d", len(views))
		}
		v := views[0]
		if v.CurrentPrice == nil || !v.CurrentPrice.Equal(testutil.Dec(t, "150.00")) {
			t.Fatalf("expected latest close 150.00, got %v", v.CurrentPrice)
		}
		if !v.CurrentValue.Equal(decimal.NewFromInt(1500)) {
			t.Errorf("expected current value 1500, got %s", v.CurrentValue)
		}
		if !v.UnrealizedGainLoss.Equal(decimal.NewFromInt(500)) {
			t.Errorf("expected gain 500, got %s", v.UnrealizedGainLoss)
		}
		if !v.UnrealizedGainLossPercent.Equal(decimal.NewFromInt(50)) {
			t.Errorf("expected gain percent 50, got %s", v.UnrealizedGainLossPercent)
		}
	})

	t.Run("no_price_data_falls_back_to_cost_basis", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewHoldingService(db)
		fund := testutil.CreateTestFund(t, db)
		testutil.CreateTestHolding(t, db, fund.ID, "ZZZZ", "10", "100.00")

		views, err := svc.ListHoldings(pagination.ListParams{}, HoldingFilter{})
		testutil.AssertNoError(t, err)

		v := views[0]
		if v.CurrentPrice != nil {
			t.Errorf("expected nil current price, got %v", v.CurrentPrice)
		}
		if !v.CurrentValue.Equal(v.CostBasis) {
			t.Errorf("expected current value to equal cost basis, got %s", v.CurrentValue)
		}
		if !v.UnrealizedGainLoss.IsZero() {
			t.Errorf("expected zero gain, got %s", v.UnrealizedGainLoss)
		}
	})

	t.Run("search_takes_precedence_over_ticker", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewHoldingService(db)
		fund := testutil.CreateTestFund(t, db)
		testutil.CreateTestHolding(t, db, fund.ID, "AAPL", "10", "100.00")
		testutil.CreateTestHolding(t, db, fund.ID, "MSFT", "10", "100.00")

		views, err := svc.ListHoldings(pagination.ListParams{}, HoldingFilter{
			Search: "msft",
			Ticker: "AAPL",
		})
		testutil.AssertNoError(t, err)

		if len(views) != 1 {
			t.Fatalf("expected 1 holding, got %d", len(views))
		}
		if views[0].Ticker != "MSFT" {
			t.Errorf("expected search branch to win, got %s", views[0].Ticker)
		}
	})

	t.Run("ticker_filter_is_normalized", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewHoldingService(db)
		fund := testutil.CreateTestFund(t, db)
		testutil.CreateTestHolding(t, db, fund.ID, "AAPL", "10", "100.00")

		views, err := svc.ListHoldings(pagination.ListParams{}, HoldingFilter{Ticker: "aapl"})
		testutil.AssertNoError(t, err)

		if len(views) != 1 {
			t.Errorf("expected 1 holding, got %d", len(views))
		}
	})

	t.Run("fund_filter", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewHoldingService(db)
		fund1 := testutil.CreateTestFund(t, db)
		fund2 := testutil.CreateTestFund(t, db)
		testutil.CreateTestHolding(t, db, fund1.ID, "AAPL", "10", "100.00")
		testutil.CreateTestHolding(t, db, fund2.ID, "MSFT", "10", "100.00")

		views, err := svc.ListHoldings(pagination.ListParams{}, HoldingFilter{FundID: &fund1.ID})
		testutil.AssertNoError(t, err)

		if len(views) != 1 {
			t.Fatalf("expected 1 holding, got %d", len(views))
		}
		if views[0].FundID != fund1.ID {
			t.Errorf("expected fund %d, got %d", fund1.ID, views[0].FundID)
		}
	})
}

func TestGetHoldingByID(t *testing.T) {
	t.Run("computes_weight_in_fund", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewHoldingService(db)
		fund := testutil.CreateTestFund(t, db)
		h1 := testutil.CreateTestHolding(t, db, fund.ID, "AAPL", "10", "100.00") // 1000
		testutil.CreateTestHolding(t, db, fund.ID, "MSFT", "30", "100.00")       // 3000

		view, err := svc.GetHoldingByID(h1.ID)
		testutil.AssertNoError(t, err)

		if view.WeightInFund == nil {
			t.Fatal("expected weight to be set")
		}
		if !view.WeightInFund.Equal(decimal.NewFromInt(25)) {
			t.Errorf("expected weight 25, got %s", view.WeightInFund)
		}
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewHoldingService(db)

		_, err := svc.GetHoldingByID(9999)
		testutil.AssertAppError(t, err, "HOLDING_NOT_FOUND")
	})
}

func TestUpdateHolding(t *testing.T) {
	t.Run("partial_update", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewHoldingService(db)
		fund := testutil.CreateTestFund(t, db)
		holding := testutil.CreateTestHolding(t, db, fund.ID, "AAPL", "10", "100.00")

		shares := testutil.Dec(t, "25")
		updated, err := svc.UpdateHolding(holding.ID, UpdateHoldingInput{Shares: &shares})
		testutil.AssertNoError(t, err)

		if !updated.Shares.Equal(shares) {
			t.Errorf("expected 25 shares, got %s", updated.Shares)
		}
		if updated.CompanyName != holding.CompanyName {
			t.Errorf("expected company name untouched, got %s", updated.CompanyName)
		}
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewHoldingService(db)

		name := "Ghost Corp"
		_, err := svc.UpdateHolding(9999, UpdateHoldingInput{CompanyName: &name})
		testutil.AssertAppError(t, err, "HOLDING_NOT_FOUND")
	})
}

func TestDeleteHolding(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewHoldingService(db)
		fund := testutil.CreateTestFund(t, db)
		holding := testutil.CreateTestHolding(t, db, fund.ID, "AAPL", "10", "100.00")

		testutil.AssertNoError(t, svc.DeleteHolding(holding.ID))

		_, err := svc.GetHoldingByID(holding.ID)
		testutil.AssertAppError(t, err, "HOLDING_NOT_FOUND")
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewHoldingService(db)

		err := svc.DeleteHolding(9999)
		testutil.AssertAppError(t, err, "HOLDING_NOT_FOUND")
	})
}

func TestGetFundHoldingsSummary(t *testing.T) {
	t.Run("aggregates", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewHoldingService(db)
		fund := testutil.CreateTestFund(t, db)
		tech := "Technology"
		health := "Healthcare"
		testutil.CreateTestHoldingInSector(t, db, fund.ID, "AAPL", "10", "100.00", &tech)
		testutil.CreateTestHoldingInSector(t, db, fund.ID, "MSFT", "10", "100.00", &tech)
		testutil.CreateTestHoldingInSector(t, db, fund.ID, "JNJ", "10", "100.00", &health)

		summary, err := svc.GetFundHoldingsSummary(fund.ID)
		testutil.AssertNoError(t, err)

		if summary.TotalHoldings != 3 {
			t.Errorf("expected 3 holdings, got %d", summary.TotalHoldings)
		}
		if !summary.TotalCostBasis.Equal(decimal.NewFromInt(3000)) {
			t.Errorf("expected cost basis 3000, got %s", summary.TotalCostBasis)
		}
		if summary.UniqueTickers != 3 {
			t.Errorf("expected 3 unique tickers, got %d", summary.UniqueTickers)
		}
		if summary.UniqueSectors != 2 {
			t.Errorf("expected 2 unique sectors, got %d", summary.UniqueSectors)
		}
	})

	t.Run("fund_not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewHoldingService(db)

		_, err := svc.GetFundHoldingsSummary(9999)
		testutil.AssertAppError(t, err, "FUND_NOT_FOUND")
	})
}

func TestGetSectorBreakdown(t *testing.T) {
	t.Run("groups_and_orders_by_value", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewHoldingService(db)
		fund := testutil.CreateTestFund(t, db)
		tech := "Technology"
		testutil.CreateTestHoldingInSector(t, db, fund.ID, "AAPL", "10", "100.00", &tech) // 1000
		testutil.CreateTestHoldingInSector(t, db, fund.ID, "MSFT", "20", "100.00", &tech) // 2000
		testutil.CreateTestHoldingInSector(t, db, fund.ID, "MYST", "5", "100.00", nil)    // 500

		sectors, err := svc.GetSectorBreakdown(fund.ID)
		testutil.AssertNoError(t, err)

		if len(sectors) != 2 {
			t.Fatalf("expected 2 sectors, got %d", len(sectors))
		}
		if sectors[0].Sector != "Technology" {
			t.Errorf("expected Technology first, got %s", sectors[0].Sector)
		}
		if !sectors[0].TotalValue.Equal(decimal.NewFromInt(3000)) {
			t.Errorf("expected Technology value 3000, got %s", sectors[0].TotalValue)
		}
		if sectors[1].Sector != "Unknown" {
			t.Errorf("expected Unknown bucket, got %s", sectors[1].Sector)
		}
	})

	t.Run("fund_not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewHoldingService(db)

		_, err := svc.GetSectorBreakdown(9999)
		testutil.AssertAppError(t, err, "FUND_NOT_FOUND")
	})
}

func TestGetTopHoldings(t *testing.T) {
	t.Run("orders_by_cost_value", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewHoldingService(db)
		fund := testutil.CreateTestFund(t, db)
		testutil.CreateTestHolding(t, db, fund.ID, "AAPL", "10", "100.00") // 1000
		testutil.CreateTestHolding(t, db, fund.ID, "MSFT", "50", "100.00") // 5000
		testutil.CreateTestHolding(t, db, fund.ID, "JNJ", "30", "100.00")  // 3000

		views, err := svc.GetTopHoldings(fund.ID, 2)
		testutil.AssertNoError(t, err)

		if len(views) != 2 {
			t.Fatalf("expected 2 holdings, got %d", len(views))
		}
		if views[0].Ticker != "MSFT" || views[1].Ticker != "JNJ" {
			t.Errorf("expected MSFT then JNJ, got %s then %s", views[0].Ticker, views[1].Ticker)
		}
	})

	t.Run("fund_not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewHoldingService(db)

		_, err := svc.GetTopHoldings(9999, 10)
		testutil.AssertAppError(t, err, "FUND_NOT_FOUND")
	})
}
