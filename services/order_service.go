package services

import (
	"time"

	"github.com/rodriguezalexp/little-lemon-api/entity"
	"github.com/rodriguezalexp/little-lemon-api/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	CartRepo *repository.CartRepository
	UserRepo *repository.UserRepository
}

func NewOrderService(db *gorm.DB, or *repository.OrderRepository, cr *repository.CartRepository, ur *repository.UserRepository) *OrderService {
	return &OrderService{DB: db, Repo: or, CartRepo: cr, UserRepo: ur}
}

// PlaceOrder drains the user's cart into a new order. The cart lines are read
// under an exclusive lock inside one transaction; the order total is the sum
// of the line snapshots, never recomputed from live menu prices. Either the
// whole cart becomes an order and empties, or nothing changes.
func (s *OrderService) PlaceOrder(userID uint) (*entity.Order, error) {
	// Cheap pre-check so an empty cart fails without taking locks.
	n, err := s.CartRepo.CountForUser(userID)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, ErrEmptyCart
	}

	var placed entity.Order
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		lines, err := s.CartRepo.ListForUpdate(tx, userID)
		if err != nil {
			return err
		}
		// A concurrent conversion may have drained the cart between the
		// pre-check and the locked read.
		if len(lines) == 0 {
			return ErrEmptyCart
		}

		total := decimal.Zero
		for _, l := range lines {
			total = total.Add(l.Price)
		}

		order := entity.Order{
			UserID: userID,
			Status: entity.StatusPlaced,
			Total:  total,
			Date:   time.Now(),
		}
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}

		ids := make([]uint, 0, len(lines))
		for _, l := range lines {
			oi := entity.OrderItem{
				OrderID:    order.ID,
				MenuItemID: l.MenuItemID,
				Quantity:   l.Quantity,
				UnitPrice:  l.UnitPrice,
				Price:      l.Price,
			}
			if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
				return err
			}
			ids = append(ids, l.ID)
		}

		if err := s.CartRepo.DeleteLines(tx, ids); err != nil {
			return err
		}

		placed = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &placed, nil
}

type UpdateOrderIn struct {
	Status         *string `json:"status"`
	DeliveryCrewID *uint   `json:"deliveryCrewId"`
}

// Update applies a role-gated patch to an order. Delivery crew may only
// advance the status of orders assigned to them; managers may set any valid
// status and reassign the delivery crew.
func (s *OrderService) Update(actorID uint, role string, orderID uint, in *UpdateOrderIn) error {
	switch role {
	case entity.RoleManager:
		return s.updateAsManager(orderID, in)
	case entity.RoleDeliveryCrew:
		return s.updateAsCrew(actorID, orderID, in)
	}
	return ErrForbidden
}

func (s *OrderService) updateAsManager(orderID uint, in *UpdateOrderIn) error {
	if _, err := s.Repo.GetOrder(orderID); err != nil {
		return err
	}

	fields := map[string]any{}
	if in.Status != nil {
		if !entity.ValidStatus(*in.Status) {
			return ErrInvalidStatus
		}
		fields["status"] = *in.Status
	}
	if in.DeliveryCrewID != nil {
		ok, err := s.UserRepo.HasRole(*in.DeliveryCrewID, entity.RoleDeliveryCrew)
		if err != nil {
			return err
		}
		if !ok {
			return ErrNotDeliveryCrew
		}
		fields["delivery_crew_id"] = *in.DeliveryCrewID
	}
	if len(fields) == 0 {
		return nil
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.UpdateFields(tx, orderID, fields)
	})
}

func (s *OrderService) updateAsCrew(crewID, orderID uint, in *UpdateOrderIn) error {
	if in.DeliveryCrewID != nil {
		return ErrForbiddenField
	}

	o, err := s.Repo.GetOrderForCrew(crewID, orderID)
	if err != nil {
		return err
	}
	// An empty patch is a no-op, same as the manager path.
	if in.Status == nil {
		return nil
	}
	if !entity.ValidStatus(*in.Status) {
		return ErrInvalidStatus
	}
	// Crew only move an order forward, one step at a time.
	if entity.NextStatus(o.Status) != *in.Status {
		return ErrInvalidStatus
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.UpdateStatusGuard(tx, o.ID, o.Status, *in.Status)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrConflict
		}
		return nil
	})
}

// ListFor returns order summaries scoped by role: managers see everything,
// crew their assigned orders, customers their own.
func (s *OrderService) ListFor(actorID uint, role string, limit int) ([]repository.OrderSummary, error) {
	switch role {
	case entity.RoleManager:
		return s.Repo.ListAll(limit)
	case entity.RoleDeliveryCrew:
		return s.Repo.ListForCrew(actorID, limit)
	default:
		return s.Repo.ListForUser(actorID, limit)
	}
}

type OrderDetail struct {
	ID             uint               `json:"id"`
	UserID         uint               `json:"userId"`
	DeliveryCrewID *uint              `json:"deliveryCrewId"`
	Status         string             `json:"status"`
	Total          decimal.Decimal    `json:"total"`
	Date           time.Time          `json:"date"`
	Items          []entity.OrderItem `json:"items"`
}

// DetailFor fetches one order with its items under the same role scoping as
// ListFor; orders outside the caller's scope surface as not found.
func (s *OrderService) DetailFor(actorID uint, role string, orderID uint) (*OrderDetail, error) {
	var (
		o   *entity.Order
		err error
	)
	switch role {
	case entity.RoleManager:
		o, err = s.Repo.GetOrder(orderID)
	case entity.RoleDeliveryCrew:
		o, err = s.Repo.GetOrderForCrew(actorID, orderID)
	default:
		o, err = s.Repo.GetOrderForUser(actorID, orderID)
	}
	if err != nil {
		return nil, err
	}

	items, err := s.Repo.GetOrderItems(o.ID)
	if err != nil {
		return nil, err
	}
	return &OrderDetail{
		ID: o.ID, UserID: o.UserID, DeliveryCrewID: o.DeliveryCrewID,
		Status: o.Status, Total: o.Total, Date: o.Date, Items: items,
	}, nil
}

func (s *OrderService) Delete(orderID uint) error {
	return s.Repo.DeleteOrder(orderID)
}
