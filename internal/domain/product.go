package domain

type Product struct {
	ID          int64   `db:"id"`
	Name        string  `db:"name"`
	Description string  `db:"description"`
	Price       string  `db:"price"`
	ImageURL    *string `db:"image_url"`
}

type ProductOrder struct {
	ID                  int64  `db:"id"`
	ProductID           int64  `db:"product_id"`
	CustomerName        string `db:"customer_name"`
	CustomerEmail       string `db:"customer_email"`
	CustomerPhoneNumber string `db:"customer_phone_number"`
	CustomerAddress     string `db:"customer_address"`
}

// OrderProductRow is the left-join projection of an order and the name of the
// product it references. ProductName is nil when the product row is gone.
type OrderProductRow struct {
	OrderID             int64   `db:"id"`
	ProductID           int64   `db:"product_id"`
	CustomerName        string  `db:"customer_name"`
	CustomerEmail       string  `db:"customer_email"`
	CustomerPhoneNumber string  `db:"customer_phone_number"`
	CustomerAddress     string  `db:"customer_address"`
	ProductName         *string `db:"product_name"`
}
