package transport

type CreateProductRequest struct {
	Name        string   `json:"name"`
	Platform    string   `json:"platform"`
	Duration    string   `json:"duration"`
	Price       *float64 `json:"price"`
	PriceBefore *float64 `json:"price_before"`
	Stock       *int     `json:"stock"`
	ImageURL    string   `json:"image_url"`
}

// PatchProductRequest uses pointers so absent fields keep their stored
// value.
type PatchProductRequest struct {
	Name        *string  `json:"name"`
	Platform    *string  `json:"platform"`
	Duration    *string  `json:"duration"`
	Price       *float64 `json:"price"`
	PriceBefore *float64 `json:"price_before"`
	Stock       *int     `json:"stock"`
	ImageURL    *string  `json:"image_url"`
}

type InvoiceItem struct {
	Price    *float64 `json:"price"`
	Quantity *int     `json:"quantity"`
}

type CreateInvoiceRequest struct {
	Email         string        `json:"email"`
	PaymentMethod string        `json:"paymentMethod"`
	Cart          []InvoiceItem `json:"cart"`
}

// InvoiceResponse carries amounts as already-formatted strings so no
// precision is lost on the wire.
type InvoiceResponse struct {
	OrderID        string `json:"orderId"`
	PaymentAddress string `json:"paymentAddress"`
	ExactAmount    string `json:"exactAmount"`
	Currency       string `json:"currency"`
	TotalUSD       string `json:"totalUSD"`
}

type SetStatusRequest struct {
	Status string `json:"status"`
}

type StatsResponse struct {
	TotalProducts int64   `json:"total_products"`
	TotalOrders   int64   `json:"total_orders"`
	TotalRevenue  float64 `json:"total_revenue"`
}
