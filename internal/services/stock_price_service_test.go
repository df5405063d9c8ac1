package services

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"fundboard/internal/pagination"
	"fundboard/internal/testutil"
)

func TestCreatePrice(t *testing.T) {
	t.Run("valid_normalizes_ticker", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewStockPriceService(db)

		price, err := svc.CreatePrice(CreateStockPriceInput{
			Ticker:     "aapl",
			Date:       testutil.Date(2024, time.January, 15),
			OpenPrice:  testutil.Dec(t, "100.00"),
			HighPrice:  testutil.Dec(t, "110.00"),
			LowPrice:   testutil.Dec(t, "95.00"),
			ClosePrice: testutil.Dec(t, "105.00"),
			Volume:     1000000,
		})
		testutil.AssertNoError(t, err)

		if price.Ticker != "AAPL" {
			t.Errorf("expected normalized ticker AAPL, got %s", price.Ticker)
		}
	})

	t.Run("duplicate_ticker_date", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewStockPriceService(db)
		testutil.CreateTestStockPrice(t, db, "AAPL", testutil.Date(2024, time.January, 15), "100.00")

		_, err := svc.CreatePrice(CreateStockPriceInput{
			Ticker:     "AAPL",
			Date:       testutil.Date(2024, time.January, 15),
			OpenPrice:  testutil.Dec(t, "100.00"),
			HighPrice:  testutil.Dec(t, "110.00"),
			LowPrice:   testutil.Dec(t, "95.00"),
			ClosePrice: testutil.Dec(t, "105.00"),
			Volume:     1,
		})
		testutil.AssertAppError(t, err, "DUPLICATE_STOCK_PRICE")
	})

	t.Run("invalid_price_range", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewStockPriceService(db)

		_, err := svc.CreatePrice(CreateStockPriceInput{
			Ticker:     "AAPL",
			Date:       testutil.Date(2024, time.January, 15),
			OpenPrice:  testutil.Dec(t, "120.00"), // above high
			HighPrice:  testutil.Dec(t, "110.00"),
			LowPrice:   testutil.Dec(t, "95.00"),
			ClosePrice: testutil.Dec(t, "105.00"),
			Volume:     1,
		})
		testutil.AssertAppError(t, err, "INVALID_PRICE_RANGE")
	})

	t.Run("future_date", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewStockPriceService(db)

		_, err := svc.CreatePrice(CreateStockPriceInput{
			Ticker:     "AAPL",
			Date:       time.Now().AddDate(0, 0, 1),
			OpenPrice:  testutil.Dec(t, "100.00"),
			HighPrice:  testutil.Dec(t, "110.00"),
			LowPrice:   testutil.Dec(t, "95.00"),
			ClosePrice: testutil.Dec(t, "105.00"),
			Volume:     1,
		})
		testutil.AssertAppError(t, err, "FUTURE_PRICE_DATE")
	})
}

func TestUpdatePrice(t *testing.T) {
	t.Run("revalidates_merged_range", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewStockPriceService(db)
		// Flat 100.00 OHLC row.
		price := testutil.CreateTestStockPrice(t, db, "AAPL", testutil.Date(2024, time.January, 15), "100.00")

		low := testutil.Dec(t, "150.00")
		_, err := svc.UpdatePrice(price.ID, UpdateStockPriceInput{LowPrice: &low})
		testutil.AssertAppError(t, err, "INVALID_PRICE_RANGE")
	})

	t.Run("partial_update", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewStockPriceService(db)
		price := testutil.CreateTestStockPrice(t, db, "AAPL", testutil.Date(2024, time.January, 15), "100.00")

		volume := int64(5000000)
		updated, err := svc.UpdatePrice(price.ID, UpdateStockPriceInput{Volume: &volume})
		testutil.AssertNoError(t, err)

		if updated.Volume != 5000000 {
			t.Errorf("expected volume 5000000, got %d", updated.Volume)
		}
		if !updated.ClosePrice.Equal(price.ClosePrice) {
			t.Errorf("expected close untouched, got %s", updated.ClosePrice)
		}
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewStockPriceService(db)

		volume := int64(1)
		_, err := svc.UpdatePrice(9999, UpdateStockPriceInput{Volume: &volume})
		testutil.AssertAppError(t, err, "STOCK_PRICE_NOT_FOUND")
	})
}

func TestDeletePrice(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewStockPriceService(db)
		price := testutil.CreateTestStockPrice(t, db, "AAPL", testutil.Date(2024, time.January, 15), "100.00")

		testutil.AssertNoError(t, svc.DeletePrice(price.ID))

		_, err := svc.GetPriceByID(price.ID)
		testutil.AssertAppError(t, err, "STOCK_PRICE_NOT_FOUND")
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewStockPriceService(db)

		err := svc.DeletePrice(9999)
		testutil.AssertAppError(t, err, "STOCK_PRICE_NOT_FOUND")
	})
}

func TestListPrices(t *testing.T) {
	t.Run("ticker_with_date_range", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewStockPriceService(db)
		testutil.CreateTestStockPrice(t, db, "AAPL", testutil.Date(2024, time.January, 1), "100.00")
		testutil.CreateTestStockPrice(t, db, "AAPL", testutil.Date(2024, time.January, 15), "110.00")
		testutil.CreateTestStockPrice(t, db, "AAPL", testutil.Date(2024, time.February, 1), "120.00")
		testutil.CreateTestStockPrice(t, db, "MSFT", testutil.Date(2024, time.January, 15), "300.00")

		start := testutil.Date(2024, time.January, 10)
		end := testutil.Date(2024, time.January, 31)
		prices, err := svc.ListPrices(pagination.ListParams{}, "aapl", &start, &end)
		testutil.AssertNoError(t, err)

		if len(prices) != 1 {
			t.Fatalf("expected 1 price, got %d", len(prices))
		}
		if !prices[0].ClosePrice.Equal(testutil.Dec(t, "110.00")) {
			t.Errorf("expected close 110.00, got %s", prices[0].ClosePrice)
		}
	})

	t.Run("unfiltered_newest_first", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewStockPriceService(db)
		testutil.CreateTestStockPrice(t, db, "AAPL", testutil.Date(2024, time.January, 1), "100.00")
		testutil.CreateTestStockPrice(t, db, "AAPL", testutil.Date(2024, time.February, 1), "120.00")

		prices, err := svc.ListPrices(pagination.ListParams{}, "", nil, nil)
		testutil.AssertNoError(t, err)

		if len(prices) != 2 {
			t.Fatalf("expected 2 prices, got %d", len(prices))
		}
		if !prices[0].ClosePrice.Equal(testutil.Dec(t, "120.00")) {
			t.Errorf("expected newest first, got close %s", prices[0].ClosePrice)
		}
	})
}

func TestGetLatestPrice(t *testing.T) {
	t.Run("returns_max_date_row", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewStockPriceService(db)
		testutil.CreateTestStockPrice(t, db, "AAPL", testutil.Date(2024, time.January, 1), "100.00")
		testutil.CreateTestStockPrice(t, db, "AAPL", testutil.Date(2024, time.February, 1), "150.00")

		price, err := svc.GetLatestPrice("aapl")
		testutil.AssertNoError(t, err)

		if !price.ClosePrice.Equal(testutil.Dec(t, "150.00")) {
			t.Errorf("expected latest close 150.00, got %s", price.ClosePrice)
		}
	})

	t.Run("no_data", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewStockPriceService(db)

		_, err := svc.GetLatestPrice("NOPE")
		testutil.AssertAppError(t, err, "STOCK_PRICE_NOT_FOUND")
	})
}

func TestGetLatestPrices(t *testing.T) {
	t.Run("one_row_per_ticker_with_data", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewStockPriceService(db)
		testutil.CreateTestStockPrice(t, db, "AAPL", testutil.Date(2024, time.January, 1), "100.00")
		testutil.CreateTestStockPrice(t, db, "AAPL", testutil.Date(2024, time.February, 1), "150.00")
		testutil.CreateTestStockPrice(t, db, "MSFT", testutil.Date(2024, time.January, 1), "300.00")

		prices, err := svc.GetLatestPrices([]string{"aapl", "msft", "goog"})
		testutil.AssertNoError(t, err)

		if len(prices) != 2 {
			t.Fatalf("expected 2 rows, got %d", len(prices))
		}
		if prices[0].Ticker != "AAPL" || !prices[0].ClosePrice.Equal(testutil.Dec(t, "150.00")) {
			t.Errorf("expected AAPL latest 150.00, got %s %s", prices[0].Ticker, prices[0].ClosePrice)
		}
		if prices[1].Ticker != "MSFT" {
			t.Errorf("expected MSFT second, got %s", prices[1].Ticker)
		}
	})

	t.Run("empty_input", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewStockPriceService(db)

		prices, err := svc.GetLatestPrices(nil)
		testutil.AssertNoError(t, err)

		if len(prices) != 0 {
			t.Errorf("expected no rows, got %d", len(prices))
		}
	})
}

func TestGetPriceHistory(t *testing.T) {
	t.Run("window_newest_first", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewStockPriceService(db)
		testutil.CreateTestStockPrice(t, db, "AAPL", time.Now().AddDate(0, 0, -5), "100.00")
		testutil.CreateTestStockPrice(t, db, "AAPL", time.Now().AddDate(0, 0, -1), "110.00")
		// Outside the 30 day window.
		testutil.CreateTestStockPrice(t, db, "AAPL", time.Now().AddDate(0, 0, -60), "90.00")

		history, err := svc.GetPriceHistory("aapl", 30)
		testutil.AssertNoError(t, err)

		if history.Ticker != "AAPL" {
			t.Errorf("expected ticker AAPL, got %s", history.Ticker)
		}
		if history.TotalRecords != 2 {
			t.Fatalf("expected 2 records, got %d", history.TotalRecords)
		}
		if !history.Prices[0].ClosePrice.Equal(testutil.Dec(t, "110.00")) {
			t.Errorf("expected newest first, got %s", history.Prices[0].ClosePrice)
		}
	})

	t.Run("empty_window_is_not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewStockPriceService(db)
		testutil.CreateTestStockPrice(t, db, "AAPL", time.Now().AddDate(0, 0, -60), "90.00")

		_, err := svc.GetPriceHistory("AAPL", 7)
		testutil.AssertAppError(t, err, "STOCK_PRICE_NOT_FOUND")
	})
}

func TestGetPriceSummary(t *testing.T) {
	t.Run("aggregates_window", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewStockPriceService(db)
		testutil.CreateTestStockPrice(t, db, "AAPL", time.Now().AddDate(0, 0, -10), "100.00")
		testutil.CreateTestStockPrice(t, db, "AAPL", time.Now().AddDate(0, 0, -5), "110.00")
		testutil.CreateTestStockPrice(t, db, "AAPL", time.Now().AddDate(0, 0, -1), "120.00")

		summary, err := svc.GetPriceSummary("aapl", 30)
		testutil.AssertNoError(t, err)

		if summary.TotalRecords != 3 {
			t.Fatalf("expected 3 records, got %d", summary.TotalRecords)
		}
		if !summary.MinPrice.Decimal.Equal(decimal.NewFromInt(100)) {
			t.Errorf("expected min 100, got %s", summary.MinPrice.Decimal)
		}
		if !summary.MaxPrice.Decimal.Equal(decimal.NewFromInt(120)) {
			t.Errorf("expected max 120, got %s", summary.MaxPrice.Decimal)
		}
		if summary.TotalVolume != 3000000 {
			t.Errorf("expected volume 3000000, got %d", summary.TotalVolume)
		}
		if !summary.FirstPrice.Decimal.Equal(decimal.NewFromInt(100)) || !summary.LastPrice.Decimal.Equal(decimal.NewFromInt(120)) {
			t.Errorf("expected first 100 last 120, got %s and %s",
				summary.FirstPrice.Decimal, summary.LastPrice.Decimal)
		}
		if summary.PeriodReturnPercent == nil || *summary.PeriodReturnPercent != 20 {
			t.Errorf("expected period return 20, got %v", summary.PeriodReturnPercent)
		}
	})

	t.Run("single_record_has_no_return", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewStockPriceService(db)
		testutil.CreateTestStockPrice(t, db, "AAPL", time.Now().AddDate(0, 0, -3), "100.00")

		summary, err := svc.GetPriceSummary("AAPL", 30)
		testutil.AssertNoError(t, err)

		if summary.TotalRecords != 1 {
			t.Fatalf("expected 1 record, got %d", summary.TotalRecords)
		}
		if !summary.FirstPrice.Decimal.Equal(summary.LastPrice.Decimal) {
			t.Errorf("expected first and last to match, got %s and %s",
				summary.FirstPrice.Decimal, summary.LastPrice.Decimal)
		}
		if summary.PeriodReturnPercent != nil {
			t.Errorf("expected nil period return, got %v", *summary.PeriodReturnPercent)
		}
	})

	t.Run("no_records", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewStockPriceService(db)

		summary, err := svc.GetPriceSummary("NOPE", 30)
		testutil.AssertNoError(t, err)

		if summary.TotalRecords != 0 {
			t.Errorf("expected 0 records, got %d", summary.TotalRecords)
		}
		if summary.PeriodReturnPercent != nil {
			t.Errorf("expected nil period return, got %v", *summary.PeriodReturnPercent)
		}
		if summary.FirstPrice.Valid {
			t.Error("expected invalid first price")
		}
	})
}

func TestListTickers(t *testing.T) {
	t.Run("distinct_sorted", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewStockPriceService(db)
		testutil.CreateTestStockPrice(t, db, "MSFT", testutil.Date(2024, time.January, 1), "300.00")
		testutil.CreateTestStockPrice(t, db, "AAPL", testutil.Date(2024, time.January, 1), "100.00")
		testutil.CreateTestStockPrice(t, db, "AAPL", testutil.Date(2024, time.February, 1), "110.00")

		tickers, err := svc.ListTickers()
		testutil.AssertNoError(t, err)

		if len(tickers) != 2 {
			t.Fatalf("expected 2 tickers, got %d", len(tickers))
		}
		if tickers[0] != "AAPL" || tickers[1] != "MSFT" {
			t.Errorf("expected sorted tickers, got %v", tickers)
		}
	})
}
