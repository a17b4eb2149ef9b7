package orders

import (
	"context"

	"gorm.io/gorm"

	"github.com/gamepoint-mx/storefront/internal/models"
)

// recentOrdersLimit caps the admin order listing.
const recentOrdersLimit = 20

type GormRepo struct {
	DB *gorm.DB
}

func (r *GormRepo) CreateOrder(ctx context.Context, order *models.Order) (*models.Order, error) {
	if err := r.DB.WithContext(ctx).Create(order).Error; err != nil {
		return nil, err
	}
	return order, nil
}

func (r *GormRepo) GetOrder(ctx context.Context, id int) (*models.Order, error) {
	order := models.Order{}
	if err := r.DB.WithContext(ctx).First(&order, id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *GormRepo) ListOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	q := r.DB.WithContext(ctx).Model(&models.Order{})
	if err := q.Order("timestamp DESC").Limit(recentOrdersLimit).Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *GormRepo) SaveOrder(ctx context.Context, order *models.Order) error {
	return r.DB.WithContext(ctx).Save(order).Error
}

func (r *GormRepo) OrderCodeExists(ctx context.Context, code string) (bool, error) {
	var count int64
	q := r.DB.WithContext(ctx).Model(&models.Order{}).Where("order_code = ?", code)
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
