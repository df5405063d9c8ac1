package services

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "fundboard/internal/errors"
	"fundboard/internal/models"
	"fundboard/internal/pagination"
)

// stockPriceService handles stock price business logic.
type stockPriceService struct {
	db *gorm.DB
}

// NewStockPriceService creates a new StockPriceServicer.
func NewStockPriceService(db *gorm.DB) StockPriceServicer {
	return &stockPriceService{db: db}
}

// ListPrices returns prices newest first. A ticker filter switches to a
// per-ticker query with an optional inclusive date range.
func (s *stockPriceService) ListPrices(params pagination.ListParams, ticker string, start, end *time.Time) ([]models.StockPrice, error) {
	params.Defaults()

	var prices []models.StockPrice
	if ticker != "" {
		query := s.db.Where("ticker = ?", normalizeTicker(ticker))
		if start != nil {
			query = query.Where("date >= ?", *start)
		}
		if end != nil {
			query = query.Where("date <= ?", *end)
		}
		if err := query.Order("date DESC").Limit(params.Limit).Find(&prices).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return prices, nil
	}

	err := s.db.
		Order("date DESC, ticker ASC").
		Scopes(pagination.Scope(params)).
		Find(&prices).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return prices, nil
}

// GetPriceByID returns one price record.
func (s *stockPriceService) GetPriceByID(id uint) (*models.StockPrice, error) {
	var price models.StockPrice
	if err := s.db.First(&price, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrStockPriceNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &price, nil
}

// CreatePrice creates a price record. The (ticker, date) pair must be
// unique, the date must not be in the future, and the OHLC values must
// satisfy low <= open <= high and low <= close <= high.
func (s *stockPriceService) CreatePrice(input CreateStockPriceInput) (*models.StockPrice, error) {
	if isFutureDate(input.Date) {
		return nil, apperrors.ErrFuturePriceDate
	}
	if err := validatePriceRange(input.OpenPrice, input.HighPrice, input.LowPrice, input.ClosePrice); err != nil {
		return nil, err
	}

	ticker := normalizeTicker(input.Ticker)

	var count int64
	err := s.db.Model(&models.StockPrice{}).
		Where("ticker = ? AND date = ?", ticker, input.Date).
		Count(&count).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return nil, apperrors.WithMessage(apperrors.ErrDuplicateStockPrice,
			"Stock price for "+ticker+" on "+fmtDate(input.Date)+" already exists")
	}

	price := &models.StockPrice{
		Ticker:        ticker,
		Date:          input.Date,
		OpenPrice:     input.OpenPrice,
		HighPrice:     input.HighPrice,
		LowPrice:      input.LowPrice,
		ClosePrice:    input.ClosePrice,
		Volume:        input.Volume,
		AdjustedClose: nullDecimal(input.AdjustedClose),
	}
	if err := s.db.Create(price).Error; err != nil {
		if isUniqueConstraintError(err) {
			return nil, apperrors.ErrDuplicateStockPrice
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return price, nil
}

// UpdatePrice mutates only the supplied fields, re-validating the OHLC
// ordering against the merged result.
func (s *stockPriceService) UpdatePrice(id uint, input UpdateStockPriceInput) (*models.StockPrice, error) {
	var price models.StockPrice
	if err := s.db.First(&price, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrStockPriceNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if input.OpenPrice != nil {
		price.OpenPrice = *input.OpenPrice
	}
	if input.HighPrice != nil {
		price.HighPrice = *input.HighPrice
	}
	if input.LowPrice != nil {
		price.LowPrice = *input.LowPrice
	}
	if input.ClosePrice != nil {
		price.ClosePrice = *input.ClosePrice
	}
	if input.Volume != nil {
		price.Volume = *input.Volume
	}
	if input.AdjustedClose != nil {
		price.AdjustedClose = nullDecimal(input.AdjustedClose)
	}

	if err := validatePriceRange(price.OpenPrice, price.HighPrice, price.LowPrice, price.ClosePrice); err != nil {
		return nil, err
	}

	if err := s.db.Save(&price).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &price, nil
}

// DeletePrice removes a price record.
func (s *stockPriceService) DeletePrice(id uint) error {
	var price models.StockPrice
	if err := s.db.First(&price, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrStockPriceNotFound
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if err := s.db.Delete(&price).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// GetLatestPrice returns the most recent record for a ticker.
func (s *stockPriceService) GetLatestPrice(ticker string) (*models.StockPrice, error) {
	var price models.StockPrice
	err := s.db.
		Where("ticker = ?", normalizeTicker(ticker)).
		Order("date DESC").
		First(&price).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.WithMessage(apperrors.ErrStockPriceNotFound,
			"No stock price data found for ticker "+normalizeTicker(ticker))
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &price, nil
}

// GetLatestPrices returns each requested ticker's max-date row in one
// query. Tickers without any data are simply absent from the result.
func (s *stockPriceService) GetLatestPrices(tickers []string) ([]models.StockPrice, error) {
	if len(tickers) == 0 {
		return []models.StockPrice{}, nil
	}

	upper := make([]string, 0, len(tickers))
	for _, t := range tickers {
		upper = append(upper, normalizeTicker(t))
	}

	sub := s.db.Model(&models.StockPrice{}).
		Select("ticker, MAX(date) AS max_date").
		Where("ticker IN ?", upper).
		Group("ticker")

	var prices []models.StockPrice
	err := s.db.Model(&models.StockPrice{}).
		Joins("JOIN (?) AS latest ON stock_prices.ticker = latest.ticker AND stock_prices.date = latest.max_date", sub).
		Order("stock_prices.ticker ASC").
		Find(&prices).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return prices, nil
}

// GetPriceHistory returns the fixed window [today-days, today] for a
// ticker, newest first. Empty windows are a not-found condition.
func (s *stockPriceService) GetPriceHistory(ticker string, days int) (*PriceHistory, error) {
	endDate := time.Now()
	startDate := endDate.AddDate(0, 0, -days)
	upper := normalizeTicker(ticker)

	var prices []models.StockPrice
	err := s.db.
		Where("ticker = ? AND date >= ? AND date <= ?", upper, startDate, endDate).
		Order("date DESC").
		Find(&prices).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if len(prices) == 0 {
		return nil, apperrors.WithMessage(apperrors.ErrStockPriceNotFound,
			"No stock price history found for ticker "+upper)
	}

	return &PriceHistory{
		Ticker:       upper,
		StartDate:    fmtDate(startDate),
		EndDate:      fmtDate(endDate),
		TotalRecords: len(prices),
		Prices:       prices,
	}, nil
}

// GetPriceSummary aggregates closes and volume over [today-days, today].
// The period return needs at least two observations and a non-zero first
// price; otherwise it is nil.
func (s *stockPriceService) GetPriceSummary(ticker string, days int) (*PriceSummary, error) {
	startDate := time.Now().AddDate(0, 0, -days)
	upper := normalizeTicker(ticker)

	var row struct {
		TotalRecords int64
		MinPrice     decimal.NullDecimal
		MaxPrice     decimal.NullDecimal
		AvgPrice     decimal.NullDecimal
		TotalVolume  int64
	}
	err := s.db.Model(&models.StockPrice{}).
		Select("COUNT(id) AS total_records, "+
			"MIN(close_price) AS min_price, "+
			"MAX(close_price) AS max_price, "+
			"AVG(close_price) AS avg_price, "+
			"COALESCE(SUM(volume), 0) AS total_volume").
		Where("ticker = ? AND date >= ?", upper, startDate).
		Scan(&row).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	summary := &PriceSummary{
		Ticker:       upper,
		PeriodDays:   days,
		TotalRecords: row.TotalRecords,
		MinPrice:     row.MinPrice,
		MaxPrice:     row.MaxPrice,
		AvgPrice:     row.AvgPrice,
		TotalVolume:  row.TotalVolume,
	}
	if row.TotalRecords == 0 {
		return summary, nil
	}

	first, err := s.windowEdgeClose(upper, startDate, "date ASC")
	if err != nil {
		return nil, err
	}
	last, err := s.windowEdgeClose(upper, startDate, "date DESC")
	if err != nil {
		return nil, err
	}
	summary.FirstPrice = first
	summary.LastPrice = last

	if row.TotalRecords > 1 && first.Valid && last.Valid && !first.Decimal.IsZero() {
		ret, _ := last.Decimal.Sub(first.Decimal).
			Div(first.Decimal).
			Mul(decimal.NewFromInt(100)).
			Float64()
		summary.PeriodReturnPercent = &ret
	}
	return summary, nil
}

// ListTickers returns the distinct sorted tickers with any price data.
func (s *stockPriceService) ListTickers() ([]string, error) {
	var tickers []string
	err := s.db.Model(&models.StockPrice{}).
		Distinct("ticker").
		Order("ticker ASC").
		Pluck("ticker", &tickers).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return tickers, nil
}

// windowEdgeClose fetches the close at one edge of the summary window.
func (s *stockPriceService) windowEdgeClose(ticker string, startDate time.Time, order string) (decimal.NullDecimal, error) {
	var price models.StockPrice
	err := s.db.
		Where("ticker = ? AND date >= ?", ticker, startDate).
		Order(order).
		First(&price).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return decimal.NullDecimal{}, nil
	}
	if err != nil {
		return decimal.NullDecimal{}, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return decimal.NullDecimal{Decimal: price.ClosePrice, Valid: true}, nil
}

// validatePriceRange enforces low <= open <= high and low <= close <= high.
func validatePriceRange(open, high, low, closePrice decimal.Decimal) error {
	if low.GreaterThan(open) || open.GreaterThan(high) ||
		low.GreaterThan(closePrice) || closePrice.GreaterThan(high) {
		return apperrors.ErrInvalidPriceRange
	}
	return nil
}
