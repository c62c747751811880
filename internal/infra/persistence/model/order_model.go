package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"storefront/internal/domain/entity"
)

// OrderModel is the document stored in the "orders" collection. Items are
// embedded values owned exclusively by the order; the owning user is
// referenced by ID only.
type OrderModel struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	UserID      string             `bson:"user_id"`
	Items       []OrderItemModel   `bson:"items"`
	TotalAmount float64            `bson:"total_amount"`
	Status      string             `bson:"status"`
	OrderDate   time.Time          `bson:"order_date"`
}

// OrderItemModel is the embedded line-item document.
type OrderItemModel struct {
	ProductID   string  `bson:"product_id"`
	ProductName string  `bson:"product_name"`
	Quantity    int     `bson:"quantity"`
	Price       float64 `bson:"price"`
}

// ToDomain maps the stored document back to a pure domain entity.
func (m *OrderModel) ToDomain() *entity.Order {
	items := make([]entity.OrderItem, len(m.Items))
	for i, item := range m.Items {
		items[i] = entity.OrderItem{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			Price:       item.Price,
		}
	}

	return &entity.Order{
		ID:          m.ID.Hex(),
		UserID:      m.UserID,
		Items:       items,
		TotalAmount: m.TotalAmount,
		Status:      m.Status,
		OrderDate:   m.OrderDate,
	}
}

// OrderFromDomain maps a domain entity to its document representation.
func OrderFromDomain(order *entity.Order) *OrderModel {
	oid, _ := primitive.ObjectIDFromHex(order.ID)

	items := make([]OrderItemModel, len(order.Items))
	for i, item := range order.Items {
		items[i] = OrderItemModel{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			Price:       item.Price,
		}
	}

	return &OrderModel{
		ID:          oid,
		UserID:      order.UserID,
		Items:       items,
		TotalAmount: order.TotalAmount,
		Status:      order.Status,
		OrderDate:   order.OrderDate,
	}
}
