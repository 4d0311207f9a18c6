package transport

type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

type CreateProductRequest struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
}

// PatchProductRequest carries the allow-listed updatable product
// fields. Anything else in the body is dropped at bind time, so the
// update statement is never built from client-supplied column names.
type PatchProductRequest struct {
	Name        *string  `json:"name"`
	Price       *float64 `json:"price"`
	Description *string  `json:"description"`
}

func (r PatchProductRequest) Empty() bool {
	return r.Name == nil && r.Price == nil && r.Description == nil
}

type CreateOrderRequest struct {
	Date string `json:"date"`
	Note string `json:"note"`
}

type AddOrderProductRequest struct {
	ProductID uint `json:"productId"`
	Quantity  int  `json:"quantity"`
}
