package services

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "fundboard/internal/errors"
	"fundboard/internal/models"
	"fundboard/internal/pagination"
)

// demoReturns is the fixed cycling series displayed next to peer funds.
// Peer performance is display-only; real return calculations would need
// peer NAV history this system does not ingest.
var demoReturns = []float64{8.5, 12.3, -2.1, 15.7, 6.8, 9.2, 4.3, 11.1, -1.5, 7.9}

// fundService handles fund-related business logic.
type fundService struct {
	db *gorm.DB
}

// NewFundService creates a new FundServicer.
func NewFundService(db *gorm.DB) FundServicer {
	return &fundService{db: db}
}

// ListFunds returns funds ordered by name, each enriched with holdings
// count and latest performance. A search term matches name or manager
// case-insensitively and applies only the limit.
func (s *fundService) ListFunds(params pagination.ListParams, search string) ([]FundSummary, error) {
	params.Defaults()

	query := s.db.Model(&models.Fund{}).Preload("Holdings").Order("name ASC")
	if search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.
			Where("LOWER(name) LIKE ? OR LOWER(manager_name) LIKE ?", pattern, pattern).
			Limit(params.Limit)
	} else {
		query = query.Scopes(pagination.Scope(params))
	}

	var funds []models.Fund
	if err := query.Find(&funds).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	summaries := make([]FundSummary, 0, len(funds))
	for i := range funds {
		latest, err := s.latestPerformance(funds[i].ID)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summarizeFund(&funds[i], latest))
	}
	return summaries, nil
}

// GetFundByID returns a fund enriched with latest performance and the
// unrealized gain/loss computed against its holdings' cost basis.
func (s *fundService) GetFundByID(id uint) (*FundDetail, error) {
	var fund models.Fund
	if err := s.db.Preload("Holdings").First(&fund, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrFundNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	latest, err := s.latestPerformance(fund.ID)
	if err != nil {
		return nil, err
	}

	totalCostBasis := fund.TotalCostBasis()

	// Current market value: latest reported AUM, else the fund's total_aum.
	marketValue := fund.TotalAUM
	if latest != nil && latest.AssetsUnderManagement.Valid {
		marketValue = latest.AssetsUnderManagement.Decimal
	}

	gainLoss := marketValue.Sub(totalCostBasis)
	gainLossPercent := 0.0
	if totalCostBasis.IsPositive() {
		gainLossPercent, _ = gainLoss.Div(totalCostBasis).Mul(decimal.NewFromInt(100)).Float64()
	}

	return &FundDetail{
		FundSummary:               summarizeFund(&fund, latest),
		UnrealizedGainLoss:        gainLoss,
		UnrealizedGainLossPercent: gainLossPercent,
	}, nil
}

// CreateFund creates a fund. The name must not already exist (exact,
// case-sensitive match) and the inception date must not be in the future.
func (s *fundService) CreateFund(input CreateFundInput) (*models.Fund, error) {
	if isFutureDate(input.InceptionDate) {
		return nil, apperrors.ErrFutureInception
	}

	var count int64
	if err := s.db.Model(&models.Fund{}).Where("name = ?", input.Name).Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return nil, apperrors.WithMessage(apperrors.ErrDuplicateFund,
			"Fund with name '"+input.Name+"' already exists")
	}

	fund := &models.Fund{
		Name:          input.Name,
		Strategy:      input.Strategy,
		InceptionDate: input.InceptionDate,
		TotalAUM:      input.TotalAUM,
		ManagerName:   input.ManagerName,
		ExpenseRatio:  input.ExpenseRatio,
		Description:   input.Description,
	}
	if err := s.db.Create(fund).Error; err != nil {
		if isUniqueConstraintError(err) {
			return nil, apperrors.ErrDuplicateFund
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return fund, nil
}

// UpdateFund mutates only the supplied fields.
func (s *fundService) UpdateFund(id uint, input UpdateFundInput) (*models.Fund, error) {
	var fund models.Fund
	if err := s.db.First(&fund, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrFundNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if input.Name != nil {
		fund.Name = *input.Name
	}
	if input.Strategy != nil {
		fund.Strategy = *input.Strategy
	}
	if input.ManagerName != nil {
		fund.ManagerName = *input.ManagerName
	}
	if input.ExpenseRatio != nil {
		fund.ExpenseRatio = *input.ExpenseRatio
	}
	if input.Description != nil {
		fund.Description = *input.Description
	}
	if input.TotalAUM != nil {
		fund.TotalAUM = *input.TotalAUM
	}

	if err := s.db.Save(&fund).Error; err != nil {
		if isUniqueConstraintError(err) {
			return nil, apperrors.ErrDuplicateFund
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &fund, nil
}

// DeleteFund removes a fund with its holdings and performance records in
// one transaction.
func (s *fundService) DeleteFund(id uint) error {
	var fund models.Fund
	if err := s.db.First(&fund, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrFundNotFound
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("fund_id = ?", id).Delete(&models.Holding{}).Error; err != nil {
			return err
		}
		if err := tx.Where("fund_id = ?", id).Delete(&models.FundPerformance{}).Error; err != nil {
			return err
		}
		return tx.Delete(&fund).Error
	})
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// GetFundPerformance returns performance rows with date >= today-days,
// newest first. If the window is empty it falls back to the most recent
// 90 records so sparse demo data still renders; this is intentional.
func (s *fundService) GetFundPerformance(id uint, days int) (*PerformanceReport, error) {
	var fund models.Fund
	if err := s.db.First(&fund, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrFundNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	startDate := time.Now().AddDate(0, 0, -days)

	var records []models.FundPerformance
	err := s.db.
		Where("fund_id = ? AND date >= ?", id, startDate).
		Order("date DESC").
		Find(&records).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if len(records) == 0 {
		err = s.db.
			Where("fund_id = ?", id).
			Order("date DESC").
			Limit(90).
			Find(&records).Error
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	points := make([]PerformancePoint, 0, len(records))
	for i := range records {
		points = append(points, PerformancePoint{
			Date:                  fmtDate(records[i].Date),
			NAVPrice:              records[i].NAVPrice,
			TotalReturn:           records[i].TotalReturn,
			DailyReturn:           records[i].DailyReturn,
			AssetsUnderManagement: records[i].AssetsUnderManagement,
		})
	}

	return &PerformanceReport{
		FundID:          fund.ID,
		FundName:        fund.Name,
		PeriodDays:      days,
		PerformanceData: points,
	}, nil
}

// RecordPerformance creates a NAV observation for a fund. The (fund, date)
// pair must be unique.
func (s *fundService) RecordPerformance(fundID uint, input RecordPerformanceInput) (*models.FundPerformance, error) {
	var fund models.Fund
	if err := s.db.First(&fund, fundID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrFundNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var count int64
	err := s.db.Model(&models.FundPerformance{}).
		Where("fund_id = ? AND date = ?", fundID, input.Date).
		Count(&count).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return nil, apperrors.ErrDuplicateNAVDate
	}

	record := &models.FundPerformance{
		FundID:                fundID,
		Date:                  input.Date,
		NAVPrice:              input.NAVPrice,
		TotalReturn:           nullDecimal(input.TotalReturn),
		DailyReturn:           nullDecimal(input.DailyReturn),
		AssetsUnderManagement: nullDecimal(input.AssetsUnderManagement),
		SharesOutstanding:     input.SharesOutstanding,
	}
	if err := s.db.Create(record).Error; err != nil {
		if isUniqueConstraintError(err) {
			return nil, apperrors.ErrDuplicateNAVDate
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return record, nil
}

// GetPeerComparison returns up to 10 peer funds whose benchmark category
// matches the fund's strategy, falling back to any peers when none match.
// Peer returns are the fixed demo cycle.
func (s *fundService) GetPeerComparison(id uint) (*PeerComparisonReport, error) {
	var fund models.Fund
	if err := s.db.First(&fund, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrFundNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var peers []models.PeerFund
	categories := peerCategoriesFor(fund.Strategy)
	err := s.db.
		Where("benchmark_category IN ?", categories).
		Order("id ASC").
		Limit(10).
		Find(&peers).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if len(peers) == 0 {
		if err := s.db.Order("id ASC").Limit(10).Find(&peers).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	entries := make([]PeerComparisonEntry, 0, len(peers))
	for i := range peers {
		entries = append(entries, PeerComparisonEntry{
			FundID:            peers[i].ID,
			FundName:          peers[i].Name,
			BenchmarkCategory: peers[i].BenchmarkCategory,
			TotalAUM:          peers[i].TotalAUM,
			ExpenseRatio:      peers[i].ExpenseRatio,
			TotalReturn:       demoReturns[i%len(demoReturns)],
		})
	}

	latest, err := s.latestPerformance(fund.ID)
	if err != nil {
		return nil, err
	}
	fundReturn := 0.0
	if latest != nil && latest.TotalReturn.Valid {
		fundReturn, _ = latest.TotalReturn.Decimal.Float64()
	}

	return &PeerComparisonReport{
		FundID:          fund.ID,
		FundName:        fund.Name,
		FundStrategy:    fund.Strategy,
		FundPerformance: fundReturn,
		Peers:           entries,
	}, nil
}

// GetFundStatistics returns the holding count and summed cost basis for a
// fund alongside its profile fields.
func (s *fundService) GetFundStatistics(id uint) (*FundStatistics, error) {
	var fund models.Fund
	if err := s.db.First(&fund, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrFundNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var stats struct {
		TotalHoldings  int64
		TotalCostBasis decimal.NullDecimal
	}
	err := s.db.Model(&models.Holding{}).
		Select("COUNT(id) AS total_holdings, SUM(shares * purchase_price) AS total_cost_basis").
		Where("fund_id = ?", id).
		Scan(&stats).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	costBasis := decimal.Zero
	if stats.TotalCostBasis.Valid {
		costBasis = stats.TotalCostBasis.Decimal
	}

	return &FundStatistics{
		FundID:         fund.ID,
		FundName:       fund.Name,
		TotalAUM:       fund.TotalAUM,
		HoldingsCount:  stats.TotalHoldings,
		TotalCostBasis: costBasis,
		InceptionDate:  fmtDate(fund.InceptionDate),
		Strategy:       fund.Strategy,
		ManagerName:    fund.ManagerName,
		ExpenseRatio:   fund.ExpenseRatio,
	}, nil
}

// latestPerformance returns the newest performance record for a fund, or
// nil when none exists.
func (s *fundService) latestPerformance(fundID uint) (*models.FundPerformance, error) {
	var record models.FundPerformance
	err := s.db.
		Where("fund_id = ?", fundID).
		Order("date DESC").
		First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &record, nil
}

// summarizeFund builds the enriched list/detail representation of a fund.
func summarizeFund(fund *models.Fund, latest *models.FundPerformance) FundSummary {
	summary := FundSummary{
		ID:            fund.ID,
		Name:          fund.Name,
		Strategy:      fund.Strategy,
		InceptionDate: fmtDate(fund.InceptionDate),
		TotalAUM:      fund.TotalAUM,
		ManagerName:   fund.ManagerName,
		ExpenseRatio:  fund.ExpenseRatio,
		Description:   fund.Description,
		CreatedAt:     fund.CreatedAt,
		UpdatedAt:     fund.UpdatedAt,
		HoldingsCount: len(fund.Holdings),
		CurrentValue:  fund.TotalAUM,
	}

	if latest != nil {
		if latest.TotalReturn.Valid {
			summary.TotalReturnPercent, _ = latest.TotalReturn.Decimal.Float64()
		}
		if latest.DailyReturn.Valid {
			summary.DailyReturnPercent, _ = latest.DailyReturn.Decimal.Float64()
		}
		if latest.AssetsUnderManagement.Valid {
			summary.CurrentValue = latest.AssetsUnderManagement.Decimal
		}
	}
	return summary
}

// peerCategoriesFor maps a fund strategy to the benchmark categories its
// peers are drawn from.
func peerCategoriesFor(strategy models.FundStrategy) []models.PeerCategory {
	switch strategy {
	case models.StrategyGrowth:
		return []models.PeerCategory{models.PeerLargeCapGrowth, models.PeerMidCapGrowth, models.PeerSmallCapGrowth}
	case models.StrategyValue:
		return []models.PeerCategory{models.PeerLargeCapValue, models.PeerMidCapValue, models.PeerSmallCapValue}
	case models.StrategyBlend:
		return []models.PeerCategory{models.PeerLargeCapGrowth, models.PeerLargeCapValue}
	case models.StrategyIncome:
		return []models.PeerCategory{models.PeerLargeCapValue}
	case models.StrategySectorSpecific:
		return []models.PeerCategory{models.PeerSectorTechnology, models.PeerSectorHealthcare, models.PeerSectorFinancial}
	case models.StrategyInternational:
		return []models.PeerCategory{models.PeerInternationalDeveloped}
	case models.StrategyEmergingMarkets:
		return []models.PeerCategory{models.PeerEmergingMarkets}
	default:
		return nil
	}
}
