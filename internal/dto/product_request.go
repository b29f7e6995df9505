package dto

// ProductRequest carries the multipart form fields of the product create and
// update routes. Price stays a raw string: this layer performs no validation
// and the database's numeric column is the only backstop.
type ProductRequest struct {
	ID          int64
	Name        string `form:"name"`
	Description string `form:"description"`
	Price       string `form:"price"`
}
