package services

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "fundboard/internal/errors"
	"fundboard/internal/models"
	"fundboard/internal/pagination"
)

// holdingService handles holding-related business logic.
type holdingService struct {
	db *gorm.DB
}

// NewHoldingService creates a new HoldingServicer.
func NewHoldingService(db *gorm.DB) HoldingServicer {
	return &holdingService{db: db}
}

// ListHoldings returns holdings for exactly one filter branch, checked in
// priority order: search > ticker > fund_id > unfiltered-paginated. Rows
// are enriched with cost basis and the latest known price per ticker.
func (s *holdingService) ListHoldings(params pagination.ListParams, filter HoldingFilter) ([]HoldingView, error) {
	params.Defaults()

	var holdings []models.Holding
	var err error

	switch {
	case filter.Search != "":
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		err = s.db.
			Where("LOWER(ticker) LIKE ? OR LOWER(company_name) LIKE ?", pattern, pattern).
			Order("ticker ASC, fund_id ASC").
			Limit(params.Limit).
			Find(&holdings).Error
	case filter.Ticker != "":
		err = s.db.
			Where("ticker = ?", normalizeTicker(filter.Ticker)).
			Order("fund_id ASC").
			Find(&holdings).Error
	case filter.FundID != nil:
		err = s.db.
			Where("fund_id = ?", *filter.FundID).
			Order("ticker ASC").
			Find(&holdings).Error
	default:
		err = s.db.
			Order("ticker ASC").
			Scopes(pagination.Scope(params)).
			Find(&holdings).Error
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return s.enrichHoldings(holdings)
}

// GetHoldingByID returns one holding enriched with valuation fields and
// its weight within the fund.
func (s *holdingService) GetHoldingByID(id uint) (*HoldingView, error) {
	var holding models.Holding
	if err := s.db.First(&holding, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrHoldingNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	views, err := s.enrichHoldings([]models.Holding{holding})
	if err != nil {
		return nil, err
	}
	view := views[0]

	fundTotal, err := s.fundCostBasis(holding.FundID)
	if err != nil {
		return nil, err
	}
	if fundTotal.IsPositive() {
		weight := view.CostBasis.Div(fundTotal).Mul(decimal.NewFromInt(100))
		view.WeightInFund = &weight
	}

	return &view, nil
}

// CreateHolding creates a holding. The referenced fund must exist and the
// purchase date must not be in the future.
func (s *holdingService) CreateHolding(input CreateHoldingInput) (*models.Holding, error) {
	if isFutureDate(input.PurchaseDate) {
		return nil, apperrors.ErrFuturePurchase
	}

	var count int64
	if err := s.db.Model(&models.Fund{}).Where("id = ?", input.FundID).Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count == 0 {
		return nil, apperrors.ErrFundNotFound
	}

	holding := &models.Holding{
		FundID:        input.FundID,
		Ticker:        normalizeTicker(input.Ticker),
		CompanyName:   input.CompanyName,
		Shares:        input.Shares,
		PurchasePrice: input.PurchasePrice,
		PurchaseDate:  input.PurchaseDate,
		Sector:        input.Sector,
		MarketCap:     input.MarketCap,
	}
	if err := s.db.Create(holding).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return holding, nil
}

// UpdateHolding mutates only the supplied fields.
func (s *holdingService) UpdateHolding(id uint, input UpdateHoldingInput) (*models.Holding, error) {
	var holding models.Holding
	if err := s.db.First(&holding, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrHoldingNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if input.CompanyName != nil {
		holding.CompanyName = *input.CompanyName
	}
	if input.Shares != nil {
		holding.Shares = *input.Shares
	}
	if input.Sector != nil {
		holding.Sector = input.Sector
	}
	if input.MarketCap != nil {
		holding.MarketCap = input.MarketCap
	}

	if err := s.db.Save(&holding).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &holding, nil
}

// DeleteHolding removes a holding.
func (s *holdingService) DeleteHolding(id uint) error {
	var holding models.Holding
	if err := s.db.First(&holding, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrHoldingNotFound
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if err := s.db.Delete(&holding).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// GetFundHoldingsSummary aggregates one fund's holdings.
func (s *holdingService) GetFundHoldingsSummary(fundID uint) (*FundHoldingsSummary, error) {
	if err := s.requireFund(fundID); err != nil {
		return nil, err
	}

	var row struct {
		TotalHoldings  int64
		TotalCostBasis decimal.NullDecimal
		UniqueTickers  int64
		UniqueSectors  int64
	}
	err := s.db.Model(&models.Holding{}).
		Select("COUNT(id) AS total_holdings, " +
			"SUM(shares * purchase_price) AS total_cost_basis, " +
			"COUNT(DISTINCT ticker) AS unique_tickers, " +
			"COUNT(DISTINCT sector) AS unique_sectors").
		Where("fund_id = ?", fundID).
		Scan(&row).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	costBasis := decimal.Zero
	if row.TotalCostBasis.Valid {
		costBasis = row.TotalCostBasis.Decimal
	}

	return &FundHoldingsSummary{
		FundID:         fundID,
		TotalHoldings:  row.TotalHoldings,
		TotalCostBasis: costBasis,
		UniqueTickers:  row.UniqueTickers,
		UniqueSectors:  row.UniqueSectors,
	}, nil
}

// GetSectorBreakdown groups a fund's holdings by sector, ordered by
// descending summed cost value. Holdings without a sector group under
// "Unknown".
func (s *holdingService) GetSectorBreakdown(fundID uint) ([]SectorSlice, error) {
	if err := s.requireFund(fundID); err != nil {
		return nil, err
	}

	var rows []struct {
		Sector     *string
		Count      int64
		TotalValue decimal.NullDecimal
	}
	err := s.db.Model(&models.Holding{}).
		Select("sector, COUNT(id) AS count, SUM(shares * purchase_price) AS total_value").
		Where("fund_id = ?", fundID).
		Group("sector").
		Order("total_value DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	sectors := make([]SectorSlice, 0, len(rows))
	for _, row := range rows {
		name := "Unknown"
		if row.Sector != nil && *row.Sector != "" {
			name = *row.Sector
		}
		value := decimal.Zero
		if row.TotalValue.Valid {
			value = row.TotalValue.Decimal
		}
		sectors = append(sectors, SectorSlice{Sector: name, Count: row.Count, TotalValue: value})
	}
	return sectors, nil
}

// GetTopHoldings returns a fund's holdings ordered by descending cost
// value.
func (s *holdingService) GetTopHoldings(fundID uint, limit int) ([]HoldingView, error) {
	if err := s.requireFund(fundID); err != nil {
		return nil, err
	}

	var holdings []models.Holding
	err := s.db.
		Where("fund_id = ?", fundID).
		Order("shares * purchase_price DESC").
		Limit(limit).
		Find(&holdings).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return s.enrichHoldings(holdings)
}

// enrichHoldings attaches derived valuation fields to each holding. The
// current price comes from the latest stock price row per ticker, resolved
// in one batch query; tickers without price data fall back to cost basis
// with zero gain/loss.
func (s *holdingService) enrichHoldings(holdings []models.Holding) ([]HoldingView, error) {
	tickers := make([]string, 0, len(holdings))
	seen := make(map[string]bool, len(holdings))
	for i := range holdings {
		if !seen[holdings[i].Ticker] {
			seen[holdings[i].Ticker] = true
			tickers = append(tickers, holdings[i].Ticker)
		}
	}

	closes, err := s.latestCloseByTicker(tickers)
	if err != nil {
		return nil, err
	}

	hundred := decimal.NewFromInt(100)
	views := make([]HoldingView, 0, len(holdings))
	for i := range holdings {
		h := holdings[i]
		costBasis := h.CostBasis()

		view := HoldingView{
			Holding:                   h,
			CostBasis:                 costBasis,
			CurrentValue:              costBasis,
			UnrealizedGainLoss:        decimal.Zero,
			UnrealizedGainLossPercent: decimal.Zero,
		}

		if price, ok := closes[h.Ticker]; ok {
			current := h.Shares.Mul(price)
			gain := current.Sub(costBasis)
			view.CurrentPrice = &price
			view.CurrentValue = current
			view.UnrealizedGainLoss = gain
			if costBasis.IsPositive() {
				view.UnrealizedGainLossPercent = gain.Div(costBasis).Mul(hundred)
			}
		}
		views = append(views, view)
	}
	return views, nil
}

// latestCloseByTicker resolves each ticker's close on its max price date.
func (s *holdingService) latestCloseByTicker(tickers []string) (map[string]decimal.Decimal, error) {
	closes := make(map[string]decimal.Decimal, len(tickers))
	if len(tickers) == 0 {
		return closes, nil
	}

	sub := s.db.Model(&models.StockPrice{}).
		Select("ticker, MAX(date) AS max_date").
		Where("ticker IN ?", tickers).
		Group("ticker")

	var rows []struct {
		Ticker     string
		ClosePrice decimal.Decimal
	}
	err := s.db.Model(&models.StockPrice{}).
		Select("stock_prices.ticker, stock_prices.close_price").
		Joins("JOIN (?) AS latest ON stock_prices.ticker = latest.ticker AND stock_prices.date = latest.max_date", sub).
		Scan(&rows).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	for _, row := range rows {
		closes[row.Ticker] = row.ClosePrice
	}
	return closes, nil
}

// fundCostBasis sums shares * purchase_price across a fund's holdings.
func (s *holdingService) fundCostBasis(fundID uint) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	err := s.db.Model(&models.Holding{}).
		Select("SUM(shares * purchase_price)").
		Where("fund_id = ?", fundID).
		Scan(&total).Error
	if err != nil {
		return decimal.Zero, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}

// requireFund fails with ErrFundNotFound when the fund id is absent.
func (s *holdingService) requireFund(fundID uint) error {
	var count int64
	if err := s.db.Model(&models.Fund{}).Where("id = ?", fundID).Count(&count).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count == 0 {
		return apperrors.ErrFundNotFound
	}
	return nil
}
