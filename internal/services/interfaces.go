package services

import (
	"time"

	"github.com/shopspring/decimal"

	"fundboard/internal/models"
	"fundboard/internal/pagination"
)

// CreateFundInput carries the validated fields for creating a fund.
type CreateFundInput struct {
	Name          string
	Strategy      models.FundStrategy
	InceptionDate time.Time
	TotalAUM      decimal.Decimal
	ManagerName   string
	ExpenseRatio  decimal.Decimal
	Description   string
}

// UpdateFundInput carries the optional fields for a partial fund update.
// Nil fields are left untouched.
type UpdateFundInput struct {
	Name         *string
	Strategy     *models.FundStrategy
	ManagerName  *string
	ExpenseRatio *decimal.Decimal
	Description  *string
	TotalAUM     *decimal.Decimal
}

// FundSummary is a fund enriched with holdings count and the latest
// performance record. Funds without performance data fall back to
// total_aum and zero returns.
type FundSummary struct {
	ID                 uint                `json:"id"`
	Name               string              `json:"name"`
	Strategy           models.FundStrategy `json:"strategy"`
	InceptionDate      string              `json:"inception_date"`
	TotalAUM           decimal.Decimal     `json:"total_aum"`
	ManagerName        string              `json:"manager_name,omitempty"`
	ExpenseRatio       decimal.Decimal     `json:"expense_ratio"`
	Description        string              `json:"description,omitempty"`
	CreatedAt          time.Time           `json:"created_at"`
	UpdatedAt          time.Time           `json:"updated_at"`
	HoldingsCount      int                 `json:"holdings_count"`
	TotalReturnPercent float64             `json:"total_return_percent"`
	DailyReturnPercent float64             `json:"daily_return_percent"`
	CurrentValue       decimal.Decimal     `json:"current_value"`
}

// FundDetail adds the unrealized gain/loss computed against the fund's
// total cost basis.
type FundDetail struct {
	FundSummary
	UnrealizedGainLoss        decimal.Decimal `json:"unrealized_gain_loss"`
	UnrealizedGainLossPercent float64         `json:"unrealized_gain_loss_percent"`
}

// PerformancePoint is one NAV observation in a performance report.
type PerformancePoint struct {
	Date                  string              `json:"date"`
	NAVPrice              decimal.Decimal     `json:"nav_price"`
	TotalReturn           decimal.NullDecimal `json:"total_return"`
	DailyReturn           decimal.NullDecimal `json:"daily_return"`
	AssetsUnderManagement decimal.NullDecimal `json:"assets_under_management"`
}

// PerformanceReport is the response for a fund's performance window.
type PerformanceReport struct {
	FundID          uint               `json:"fund_id"`
	FundName        string             `json:"fund_name"`
	PeriodDays      int                `json:"period_days"`
	PerformanceData []PerformancePoint `json:"performance_data"`
}

// RecordPerformanceInput carries the fields for recording a NAV observation.
type RecordPerformanceInput struct {
	Date                  time.Time
	NAVPrice              decimal.Decimal
	TotalReturn           *decimal.Decimal
	DailyReturn           *decimal.Decimal
	AssetsUnderManagement *decimal.Decimal
	SharesOutstanding     *int64
}

// PeerComparisonEntry pairs a peer fund with its display return.
type PeerComparisonEntry struct {
	FundID            uint                `json:"fund_id"`
	FundName          string              `json:"fund_name"`
	BenchmarkCategory models.PeerCategory `json:"benchmark_category"`
	TotalAUM          decimal.NullDecimal `json:"total_aum"`
	ExpenseRatio      decimal.NullDecimal `json:"expense_ratio"`
	TotalReturn       float64             `json:"total_return"`
}

// PeerComparisonReport is the response for a fund's peer comparison.
type PeerComparisonReport struct {
	FundID          uint                  `json:"fund_id"`
	FundName        string                `json:"fund_name"`
	FundStrategy    models.FundStrategy   `json:"fund_strategy"`
	FundPerformance float64               `json:"fund_performance"`
	Peers           []PeerComparisonEntry `json:"peers"`
}

// FundStatistics summarizes a fund's holdings alongside its profile.
type FundStatistics struct {
	FundID         uint                `json:"fund_id"`
	FundName       string              `json:"fund_name"`
	TotalAUM       decimal.Decimal     `json:"total_aum"`
	HoldingsCount  int64               `json:"holdings_count"`
	TotalCostBasis decimal.Decimal     `json:"total_cost_basis"`
	InceptionDate  string              `json:"inception_date"`
	Strategy       models.FundStrategy `json:"strategy"`
	ManagerName    string              `json:"manager_name,omitempty"`
	ExpenseRatio   decimal.Decimal     `json:"expense_ratio"`
}

// FundServicer defines the contract for fund-related business logic.
type FundServicer interface {
	ListFunds(params pagination.ListParams, search string) ([]FundSummary, error)
	GetFundByID(id uint) (*FundDetail, error)
	CreateFund(input CreateFundInput) (*models.Fund, error)
	UpdateFund(id uint, input UpdateFundInput) (*models.Fund, error)
	DeleteFund(id uint) error
	GetFundPerformance(id uint, days int) (*PerformanceReport, error)
	RecordPerformance(fundID uint, input RecordPerformanceInput) (*models.FundPerformance, error)
	GetPeerComparison(id uint) (*PeerComparisonReport, error)
	GetFundStatistics(id uint) (*FundStatistics, error)
}

// CreateHoldingInput carries the validated fields for creating a holding.
type CreateHoldingInput struct {
	FundID        uint
	Ticker        string
	CompanyName   string
	Shares        decimal.Decimal
	PurchasePrice decimal.Decimal
	PurchaseDate  time.Time
	Sector        *string
	MarketCap     *int64
}

// UpdateHoldingInput carries the optional fields for a partial holding update.
type UpdateHoldingInput struct {
	CompanyName *string
	Shares      *decimal.Decimal
	Sector      *string
	MarketCap   *int64
}

// HoldingFilter selects at most one filter branch for listing holdings.
// Priority: Search > Ticker > FundID > unfiltered.
type HoldingFilter struct {
	Search string
	Ticker string
	FundID *uint
}

// HoldingView is a holding enriched with derived valuation fields. The
// current price is resolved from the latest stock price row for the
// ticker; positions without price data fall back to cost basis.
type HoldingView struct {
	models.Holding
	CostBasis                 decimal.Decimal  `json:"cost_basis"`
	CurrentPrice              *decimal.Decimal `json:"current_price"`
	CurrentValue              decimal.Decimal  `json:"current_value"`
	UnrealizedGainLoss        decimal.Decimal  `json:"unrealized_gain_loss"`
	UnrealizedGainLossPercent decimal.Decimal  `json:"unrealized_gain_loss_percent"`
	WeightInFund              *decimal.Decimal `json:"weight_in_fund"`
}

// FundHoldingsSummary aggregates one fund's holdings.
type FundHoldingsSummary struct {
	FundID         uint            `json:"fund_id"`
	TotalHoldings  int64           `json:"total_holdings"`
	TotalCostBasis decimal.Decimal `json:"total_cost_basis"`
	UniqueTickers  int64           `json:"unique_tickers"`
	UniqueSectors  int64           `json:"unique_sectors"`
}

// SectorSlice is one sector's share of a fund, by summed cost value.
type SectorSlice struct {
	Sector     string          `json:"sector"`
	Count      int64           `json:"count"`
	TotalValue decimal.Decimal `json:"total_value"`
}

// HoldingServicer defines the contract for holding-related business logic.
type HoldingServicer interface {
	ListHoldings(params pagination.ListParams, filter HoldingFilter) ([]HoldingView, error)
	GetHoldingByID(id uint) (*HoldingView, error)
	CreateHolding(input CreateHoldingInput) (*models.Holding, error)
	UpdateHolding(id uint, input UpdateHoldingInput) (*models.Holding, error)
	DeleteHolding(id uint) error
	GetFundHoldingsSummary(fundID uint) (*FundHoldingsSummary, error)
	GetSectorBreakdown(fundID uint) ([]SectorSlice, error)
	GetTopHoldings(fundID uint, limit int) ([]HoldingView, error)
}

// CreateStockPriceInput carries the validated fields for a new price row.
type CreateStockPriceInput struct {
	Ticker        string
	Date          time.Time
	OpenPrice     decimal.Decimal
	HighPrice     decimal.Decimal
	LowPrice      decimal.Decimal
	ClosePrice    decimal.Decimal
	Volume        int64
	AdjustedClose *decimal.Decimal
}

// UpdateStockPriceInput carries the optional fields for a partial price update.
type UpdateStockPriceInput struct {
	OpenPrice     *decimal.Decimal
	HighPrice     *decimal.Decimal
	LowPrice      *decimal.Decimal
	ClosePrice    *decimal.Decimal
	Volume        *int64
	AdjustedClose *decimal.Decimal
}

// PriceHistory is the response for a ticker's fixed-window history.
type PriceHistory struct {
	Ticker       string              `json:"ticker"`
	StartDate    string              `json:"start_date"`
	EndDate      string              `json:"end_date"`
	TotalRecords int                 `json:"total_records"`
	Prices       []models.StockPrice `json:"prices"`
}

// PriceSummary aggregates a ticker's closes and volume over a window.
// PeriodReturnPercent is nil when the window holds fewer than two records
// or no usable first price.
type PriceSummary struct {
	Ticker              string              `json:"ticker"`
	PeriodDays          int                 `json:"period_days"`
	TotalRecords        int64               `json:"total_records"`
	MinPrice            decimal.NullDecimal `json:"min_price"`
	MaxPrice            decimal.NullDecimal `json:"max_price"`
	AvgPrice            decimal.NullDecimal `json:"avg_price"`
	TotalVolume         int64               `json:"total_volume"`
	FirstPrice          decimal.NullDecimal `json:"first_price"`
	LastPrice           decimal.NullDecimal `json:"last_price"`
	PeriodReturnPercent *float64            `json:"period_return_percent"`
}

// StockPriceServicer defines the contract for stock price business logic.
type StockPriceServicer interface {
	ListPrices(params pagination.ListParams, ticker string, start, end *time.Time) ([]models.StockPrice, error)
	GetPriceByID(id uint) (*models.StockPrice, error)
	CreatePrice(input CreateStockPriceInput) (*models.StockPrice, error)
	UpdatePrice(id uint, input UpdateStockPriceInput) (*models.StockPrice, error)
	DeletePrice(id uint) error
	GetLatestPrice(ticker string) (*models.StockPrice, error)
	GetLatestPrices(tickers []string) ([]models.StockPrice, error)
	GetPriceHistory(ticker string, days int) (*PriceHistory, error)
	GetPriceSummary(ticker string, days int) (*PriceSummary, error)
	ListTickers() ([]string, error)
}

// CreatePeerFundInput carries the validated fields for a new peer fund.
type CreatePeerFundInput struct {
	Name              string
	BenchmarkCategory models.PeerCategory
	TotalAUM          *decimal.Decimal
	ExpenseRatio      *decimal.Decimal
	InceptionDate     *time.Time
	ManagerCompany    string
	Description       string
}

// PeerFundServicer defines the contract for peer fund business logic.
type PeerFundServicer interface {
	ListPeerFunds(params pagination.ListParams) ([]models.PeerFund, error)
	CreatePeerFund(input CreatePeerFundInput) (*models.PeerFund, error)
	GetPeerFundByID(id uint) (*models.PeerFund, error)
	DeletePeerFund(id uint) error
}
