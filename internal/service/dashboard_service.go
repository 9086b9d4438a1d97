package service

import (
	"context"
	"time"

	"spendwatch/internal/analytics"
	"spendwatch/internal/dto"
	"spendwatch/internal/fx"
	"spendwatch/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DashboardService assembles derived spending views: it gathers the
// transaction snapshot and a fresh rate table, then delegates all
// computation to the pure analytics functions.
type DashboardService struct {
	txRepo     *repository.TransactionRepository
	rateClient *fx.Client
	logger     *zap.Logger
}

func NewDashboardService(txRepo *repository.TransactionRepository, rateClient *fx.Client, logger *zap.Logger) *DashboardService {
	return &DashboardService{
		txRepo:     txRepo,
		rateClient: rateClient,
		logger:     logger,
	}
}

func (s *DashboardService) Monthly(ctx context.Context, userID uuid.UUID) (*dto.MonthlyResponse, error) {
	transactions, err := s.txRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	rates := s.rateClient.FetchRates(ctx)

	return &dto.MonthlyResponse{
		MonthlyResult:  analytics.AggregateMonthly(transactions, rates),
		RatesAvailable: len(rates) > 0,
	}, nil
}

func (s *DashboardService) OpportunityCost(ctx context.Context, userID uuid.UUID, householdSize int) (*dto.OpportunityCostResponse, error) {
	since := time.Now().AddDate(-1, 0, 0)
	transactions, err := s.txRepo.ListByUserSince(ctx, userID, since)
	if err != nil {
		return nil, err
	}
	rates := s.rateClient.FetchRates(ctx)

	totals := analytics.CategoryTotals(transactions, rates)
	return &dto.OpportunityCostResponse{
		OpportunityCost: analytics.AnalyzeOpportunityCost(totals, householdSize),
		HouseholdSize:   householdSize,
	}, nil
}

func (s *DashboardService) Advisory(ctx context.Context, userID uuid.UUID) (*dto.AdvisoryResponse, error) {
	since := time.Now().AddDate(0, -3, 0)
	transactions, err := s.txRepo.ListByUserSince(ctx, userID, since)
	if err != nil {
		return nil, err
	}
	rates := s.rateClient.FetchRates(ctx)

	return &dto.AdvisoryResponse{
		Advisory: analytics.CheckAdvisory(transactions, rates, time.Now()),
	}, nil
}

func (s *DashboardService) Report(ctx context.Context, userID uuid.UUID, householdSize int) (analytics.SpendingReport, error) {
	transactions, err := s.txRepo.ListByUser(ctx, userID)
	if err != nil {
		return analytics.SpendingReport{}, err
	}
	rates := s.rateClient.FetchRates(ctx)

	return analytics.BuildReport(transactions, rates, householdSize, time.Now()), nil
}
