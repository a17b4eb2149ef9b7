package stats

import (
	"context"

	"gorm.io/gorm"

	"github.com/gamepoint-mx/storefront/internal/models"
	"github.com/gamepoint-mx/storefront/internal/transport"
)

// Service answers the read-only aggregates behind the admin dashboard
// cards. No side effects.
type Service struct {
	DB *gorm.DB
}

func (s *Service) Totals(ctx context.Context) (*transport.StatsResponse, error) {
	var products int64
	if err := s.DB.WithContext(ctx).Model(&models.Product{}).Count(&products).Error; err != nil {
		return nil, err
	}

	var orders int64
	if err := s.DB.WithContext(ctx).Model(&models.Order{}).Count(&orders).Error; err != nil {
		return nil, err
	}

	// Only completed orders count toward revenue.
	var revenue float64
	err := s.DB.WithContext(ctx).
		Model(&models.Order{}).
		Where("status = ?", models.StatusCompleted).
		Select("COALESCE(SUM(total), 0)").
		Scan(&revenue).Error
	if err != nil {
		return nil, err
	}

	return &transport.StatsResponse{
		TotalProducts: products,
		TotalOrders:   orders,
		TotalRevenue:  revenue,
	}, nil
}
