// Package seed loads sample funds, holdings, and peer funds into an empty
// database so the dashboard has data to show on first run.
package seed

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"fundboard/internal/logger"
	"fundboard/internal/models"
)

func dec(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func nd(value string) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: dec(value), Valid: true}
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func strPtr(s string) *string { return &s }

// Run inserts the sample dataset. It is a no-op when any fund already
// exists, so restarting the server never duplicates rows.
func Run(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Fund{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		logger.Get().Infow("database already contains data, skipping seeding")
		return nil
	}

	logger.Get().Infow("seeding database with sample data")

	return db.Transaction(func(tx *gorm.DB) error {
		funds := []models.Fund{
			{
				Name:          "Tech Growth Fund",
				Strategy:      models.StrategyGrowth,
				InceptionDate: day(2020, time.January, 15),
				TotalAUM:      dec("250000000.00"),
				ManagerName:   "Sarah Johnson",
				ExpenseRatio:  dec("0.0075"),
				Description:   "Focused on high-growth technology companies",
			},
			{
				Name:          "Value Opportunities Fund",
				Strategy:      models.StrategyValue,
				InceptionDate: day(2019, time.March, 20),
				TotalAUM:      dec("180000000.00"),
				ManagerName:   "Michael Chen",
				ExpenseRatio:  dec("0.0065"),
				Description:   "Undervalued companies with strong fundamentals",
			},
			{
				Name:          "Healthcare Innovation Fund",
				Strategy:      models.StrategySectorSpecific,
				InceptionDate: day(2021, time.June, 10),
				TotalAUM:      dec("95000000.00"),
				ManagerName:   "Dr. Emily Rodriguez",
				ExpenseRatio:  dec("0.0085"),
				Description:   "Healthcare and biotech sector investments",
			},
			{
				Name:          "Balanced Growth Fund",
				Strategy:      models.StrategyBlend,
				InceptionDate: day(2018, time.September, 5),
				TotalAUM:      dec("320000000.00"),
				ManagerName:   "David Thompson",
				ExpenseRatio:  dec("0.0055"),
				Description:   "Balanced approach to growth and value investing",
			},
			{
				Name:          "International Equity Fund",
				Strategy:      models.StrategyInternational,
				InceptionDate: day(2017, time.November, 30),
				TotalAUM:      dec("140000000.00"),
				ManagerName:   "Anna Kowalski",
				ExpenseRatio:  dec("0.0095"),
				Description:   "Diversified international equity exposure",
			},
		}
		if err := tx.Create(&funds).Error; err != nil {
			return err
		}

		type position struct {
			fund    int
			ticker  string
			company string
			shares  string
			price   string
			date    time.Time
			sector  string
		}
		positions := []position{
			{0, "AAPL", "Apple Inc.", "75000", "145.50", day(2023, time.January, 15), "Technology"},
			{0, "GOOGL", "Alphabet Inc.", "35000", "2650.00", day(2023, time.February, 10), "Technology"},
			{0, "MSFT", "Microsoft Corporation", "45000", "310.20", day(2023, time.January, 25), "Technology"},
			{0, "NVDA", "NVIDIA Corporation", "25000", "450.75", day(2023, time.March, 5), "Technology"},
			{0, "TSLA", "Tesla, Inc.", "15000", "875.30", day(2023, time.February, 20), "Consumer Discretionary"},
			{0, "META", "Meta Platforms, Inc.", "30000", "325.45", day(2023, time.March, 15), "Communication Services"},
			{0, "AMZN", "Amazon.com, Inc.", "20000", "3100.00", day(2023, time.January, 30), "Consumer Discretionary"},

			{1, "BRK-B", "Berkshire Hathaway Inc.", "50000", "290.15", day(2023, time.February, 5), "Financial Services"},
			{1, "JPM", "JPMorgan Chase & Co.", "40000", "135.75", day(2023, time.January, 20), "Financial Services"},
			{1, "JNJ", "Johnson & Johnson", "35000", "165.25", day(2023, time.March, 1), "Healthcare"},
			{1, "PG", "Procter & Gamble Co.", "25000", "152.80", day(2023, time.February, 15), "Consumer Staples"},
			{1, "KO", "The Coca-Cola Company", "60000", "58.45", day(2023, time.January, 10), "Consumer Staples"},
			{1, "WMT", "Walmart Inc.", "30000", "145.90", day(2023, time.February, 25), "Consumer Staples"},

			{2, "UNH", "UnitedHealth Group Inc.", "15000", "485.20", day(2023, time.January, 12), "Healthcare"},
			{2, "PFE", "Pfizer Inc.", "80000", "42.15", day(2023, time.February, 8), "Healthcare"},
			{2, "MRNA", "Moderna, Inc.", "25000", "180.75", day(2023, time.March, 10), "Healthcare"},
			{2, "GILD", "Gilead Sciences, Inc.", "35000", "78.90", day(2023, time.January, 25), "Healthcare"},
			{2, "BIIB", "Biogen Inc.", "12000", "275.30", day(2023, time.February, 18), "Healthcare"},

			{3, "SPY", "SPDR S&P 500 ETF Trust", "100000", "385.75", day(2023, time.January, 5), "Diversified"},
			{3, "QQQ", "Invesco QQQ Trust", "75000", "315.20", day(2023, time.January, 15), "Technology"},
			{3, "IWM", "iShares Russell 2000 ETF", "50000", "195.45", day(2023, time.February, 1), "Diversified"},
			{3, "VTI", "Vanguard Total Stock Market ETF", "60000", "225.80", day(2023, time.January, 20), "Diversified"},
			{3, "GLD", "SPDR Gold Shares", "40000", "182.15", day(2023, time.March, 5), "Commodities"},

			{4, "VEA", "Vanguard FTSE Developed Markets ETF", "120000", "45.30", day(2023, time.January, 8), "International"},
			{4, "VWO", "Vanguard FTSE Emerging Markets ETF", "90000", "38.75", day(2023, time.February, 12), "International"},
			{4, "EFA", "iShares MSCI EAFE ETF", "80000", "68.90", day(2023, time.January, 18), "International"},
			{4, "FXI", "iShares China Large-Cap ETF", "60000", "32.45", day(2023, time.February, 28), "International"},
		}

		holdings := make([]models.Holding, 0, len(positions))
		for _, p := range positions {
			holdings = append(holdings, models.Holding{
				FundID:        funds[p.fund].ID,
				Ticker:        p.ticker,
				CompanyName:   p.company,
				Shares:        dec(p.shares),
				PurchasePrice: dec(p.price),
				PurchaseDate:  p.date,
				Sector:        strPtr(p.sector),
			})
		}
		if err := tx.Create(&holdings).Error; err != nil {
			return err
		}

		peers := []models.PeerFund{
			{Name: "Vanguard Growth Index Fund", BenchmarkCategory: models.PeerLargeCapGrowth, TotalAUM: nd("45000000000"), ExpenseRatio: nd("0.0014"), ManagerCompany: "Vanguard"},
			{Name: "Fidelity Contrafund", BenchmarkCategory: models.PeerLargeCapGrowth, TotalAUM: nd("130000000000"), ExpenseRatio: nd("0.0085"), ManagerCompany: "Fidelity"},
			{Name: "T. Rowe Price Blue Chip Growth Fund", BenchmarkCategory: models.PeerLargeCapGrowth, TotalAUM: nd("95000000000"), ExpenseRatio: nd("0.0070"), ManagerCompany: "T. Rowe Price"},
			{Name: "American Funds Growth Fund of America", BenchmarkCategory: models.PeerLargeCapGrowth, TotalAUM: nd("250000000000"), ExpenseRatio: nd("0.0066"), ManagerCompany: "American Funds"},
			{Name: "Vanguard Value Index Fund", BenchmarkCategory: models.PeerLargeCapValue, TotalAUM: nd("85000000000"), ExpenseRatio: nd("0.0014"), ManagerCompany: "Vanguard"},
			{Name: "Dodge & Cox Stock Fund", BenchmarkCategory: models.PeerLargeCapValue, TotalAUM: nd("75000000000"), ExpenseRatio: nd("0.0052"), ManagerCompany: "Dodge & Cox"},
			{Name: "Vanguard Health Care Fund", BenchmarkCategory: models.PeerSectorHealthcare, TotalAUM: nd("15000000000"), ExpenseRatio: nd("0.0034"), ManagerCompany: "Vanguard"},
			{Name: "Fidelity Select Health Care Portfolio", BenchmarkCategory: models.PeerSectorHealthcare, TotalAUM: nd("8000000000"), ExpenseRatio: nd("0.0076"), ManagerCompany: "Fidelity"},
			{Name: "Vanguard Balanced Index Fund", BenchmarkCategory: models.PeerLargeCapValue, TotalAUM: nd("55000000000"), ExpenseRatio: nd("0.0015"), ManagerCompany: "Vanguard"},
			{Name: "American Funds American Balanced Fund", BenchmarkCategory: models.PeerLargeCapGrowth, TotalAUM: nd("110000000000"), ExpenseRatio: nd("0.0059"), ManagerCompany: "American Funds"},
		}
		if err := tx.Create(&peers).Error; err != nil {
			return err
		}

		logger.Get().Infow("database seeded",
			"funds", len(funds),
			"holdings", len(holdings),
			"peer_funds", len(peers),
		)
		return nil
	})
}
