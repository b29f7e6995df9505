package dto

// OrderResponse keys match the admin wire contract consumed by the dashboard.
type OrderResponse struct {
	OrderID             int64   `json:"OrderId"`
	ProductID           int64   `json:"ProductId"`
	CustomerName        string  `json:"CustomerName"`
	CustomerEmail       string  `json:"CustomerEmail"`
	CustomerPhoneNumber string  `json:"CustomerPhoneNumber"`
	CustomerAddress     string  `json:"CustomerAddress"`
	ProductName         *string `json:"ProductName"`
}
