package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/alexanderramin/quoteforge/internal/domain"
	"github.com/alexanderramin/quoteforge/internal/repository"
	"github.com/montanaflynn/stats"
)

// ProjectDigest is the one-line view of a quote used in summaries.
type ProjectDigest struct {
	ID           string               `json:"id"`
	Name         string               `json:"name"`
	Status       domain.ProjectStatus `json:"status"`
	TotalPrice   float64              `json:"totalPrice"`
	ProfitMargin float64              `json:"profitMargin"`
	Health       domain.HealthStatus  `json:"health"`
}

// Summary aggregates every stored quote. Price and margin statistics
// exclude archived and rejected quotes.
type Summary struct {
	Projects      int                          `json:"projects"`
	ByStatus      map[domain.ProjectStatus]int `json:"byStatus"`
	ByHealth      map[domain.HealthStatus]int  `json:"byHealth"`
	MeanPrice     float64                      `json:"meanPrice"`
	MedianPrice   float64                      `json:"medianPrice"`
	P90Price      float64                      `json:"p90Price"`
	MeanMargin    float64                      `json:"meanMargin"`
	PipelineValue float64                      `json:"pipelineValue"`
	AtRisk        []ProjectDigest              `json:"atRisk"`
}

type dashboardService struct {
	projects repository.ProjectRepo
}

func NewDashboardService(projects repository.ProjectRepo) DashboardService {
	return &dashboardService{projects: projects}
}

func digest(p *domain.Project) ProjectDigest {
	return ProjectDigest{
		ID:           p.ID,
		Name:         p.Name,
		Status:       p.Status,
		TotalPrice:   p.Estimate.ClientPrice.TotalPrice,
		ProfitMargin: p.Estimate.Profit.ProfitMargin,
		Health:       p.Estimate.Profit.HealthStatus,
	}
}

func (s *dashboardService) Summary(ctx context.Context) (*Summary, error) {
	all, err := s.projects.List(ctx, repository.ProjectFilter{})
	if err != nil {
		return nil, err
	}

	sum := &Summary{
		Projects: len(all),
		ByStatus: make(map[domain.ProjectStatus]int),
		ByHealth: make(map[domain.HealthStatus]int),
		AtRisk:   []ProjectDigest{},
	}
	var prices, margins stats.Float64Data
	for _, p := range all {
		sum.ByStatus[p.Status]++
		if p.Status == domain.ProjectArchived || p.Status == domain.ProjectRejected {
			continue
		}
		health := p.Estimate.Profit.HealthStatus
		sum.ByHealth[health]++
		price := p.Estimate.ClientPrice.TotalPrice
		prices = append(prices, price)
		margins = append(margins, p.Estimate.Profit.ProfitMargin)
		sum.PipelineValue += price
		if health == domain.HealthCritical {
			sum.AtRisk = append(sum.AtRisk, digest(p))
		}
	}
	sort.SliceStable(sum.AtRisk, func(i, j int) bool {
		return sum.AtRisk[i].ProfitMargin < sum.AtRisk[j].ProfitMargin
	})

	if len(prices) == 0 {
		return sum, nil
	}
	if sum.MeanPrice, err = stats.Mean(prices); err != nil {
		return nil, fmt.Errorf("mean price: %w", err)
	}
	if sum.MedianPrice, err = stats.Median(prices); err != nil {
		return nil, fmt.Errorf("median price: %w", err)
	}
	if sum.P90Price, err = stats.Percentile(prices, 90); err != nil {
		return nil, fmt.Errorf("p90 price: %w", err)
	}
	if sum.MeanMargin, err = stats.Mean(margins); err != nil {
		return nil, fmt.Errorf("mean margin: %w", err)
	}
	return sum, nil
}
