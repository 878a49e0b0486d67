package dto

type ErrorResponse struct {
	Error string `json:"error"`
}

type LoginRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email" binding:"required"`
}

type SelectQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type PurchaseRequest struct {
	ProductID int `json:"product_id" binding:"required"`
	Quantity  int `json:"quantity" binding:"required"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
