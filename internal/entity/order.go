package entity

type Status string

const (
	StatusPlaced    Status = "PLACED"
	StatusShipped   Status = "SHIPPED"
	StatusDelivered Status = "DELIVERED"
	StatusCancelled Status = "CANCELLED"
)

type OrderItem struct {
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	TotalPrice  float64 `json:"totalPrice"`
}

type Order struct {
	OrderID      string      `json:"orderId"`
	CustomerName string      `json:"customerName"`
	Email        string      `json:"email"`
	OrderDate    string      `json:"orderDate"`
	Status       Status      `json:"status"`
	Items        []OrderItem `json:"items"`
}

// Total sums the per-item totals; the upstream order feed carries the
// authoritative amounts, we only aggregate for display.
func (o Order) Total() float64 {
	var sum float64
	for _, it := range o.Items {
		sum += it.TotalPrice
	}
	return sum
}
