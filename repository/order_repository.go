package repository

import (
	"time"

	"github.com/rodriguezalexp/little-lemon-api/entity"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderRepository struct{ DB *gorm.DB }

func NewOrderRepository(db *gorm.DB) *OrderRepository { return &OrderRepository{DB: db} }

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

func (r *OrderRepository) GetOrder(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetOrderForUser(userID, orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Where("id = ? AND user_id = ?", orderID, userID).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetOrderForCrew(crewID, orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Where("id = ? AND delivery_crew_id = ?", orderID, crewID).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetOrderItems(orderID uint) ([]entity.OrderItem, error) {
	items := make([]entity.OrderItem, 0)
	err := r.DB.Where("order_id = ?", orderID).Order("id").Find(&items).Error
	return items, err
}

type OrderSummary struct {
	ID             uint            `json:"id"`
	UserID         uint            `json:"userId"`
	DeliveryCrewID *uint           `json:"deliveryCrewId"`
	Status         string          `json:"status"`
	Total          decimal.Decimal `json:"total"`
	CreatedAt      time.Time       `json:"createdAt"`
}

func (r *OrderRepository) listSummaries(q *gorm.DB, limit int) ([]OrderSummary, error) {
	if limit <= 0 {
		limit = 50
	}
	out := make([]OrderSummary, 0)
	err := q.Model(&entity.Order{}).
		Select("id, user_id, delivery_crew_id, status, total, created_at").
		Order("id DESC").Limit(limit).
		Scan(&out).Error
	return out, err
}

func (r *OrderRepository) ListAll(limit int) ([]OrderSummary, error) {
	return r.listSummaries(r.DB, limit)
}

func (r *OrderRepository) ListForUser(userID uint, limit int) ([]OrderSummary, error) {
	return r.listSummaries(r.DB.Where("user_id = ?", userID), limit)
}

func (r *OrderRepository) ListForCrew(crewID uint, limit int) ([]OrderSummary, error) {
	return r.listSummaries(r.DB.Where("delivery_crew_id = ?", crewID), limit)
}

// UpdateStatusGuard advances an order from one status to another with a
// conditional update. Zero affected rows means the order was not in the
// expected state, typically because another actor moved it first.
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, orderID uint, from, to string) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}

func (r *OrderRepository) UpdateFields(tx *gorm.DB, orderID uint, fields map[string]any) error {
	return tx.Model(&entity.Order{}).Where("id = ?", orderID).Updates(fields).Error
}

func (r *OrderRepository) DeleteOrder(orderID uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", orderID).Delete(&entity.OrderItem{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&entity.Order{}, orderID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
