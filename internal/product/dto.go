// AngelaMos | 2026
// dto.go

package product

import (
	"time"

	"github.com/carterperez-dev/templates/campus-api/internal/core"
)

type CreateProductRequest struct {
	Name        string   `json:"name"        validate:"required,max=255"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"       validate:"required,min=-9999999999.99,max=9999999999.99"`
}

// UpdateProductRequest applies only the keys present in the body. An
// explicit null description clears it.
type UpdateProductRequest struct {
	Name        *string                `json:"name"        validate:"omitnil,min=1,max=255"`
	Description core.Nullable[string]  `json:"description"`
	Price       core.Nullable[float64] `json:"price"       validate:"omitnil,min=-9999999999.99,max=9999999999.99"`
}

// ValidateFields rejects a null price. Only description may be cleared.
func (r UpdateProductRequest) ValidateFields() core.FieldErrors {
	fields := core.FieldErrors{}
	if r.Price.IsNull() {
		fields.Add("price", "The price field must be a number.")
	}
	return fields
}

type ProductResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Price       float64   `json:"price"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func ToProductResponse(p *Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func ToProductResponseList(products []Product) []ProductResponse {
	responses := make([]ProductResponse, 0, len(products))
	for i := range products {
		responses = append(responses, ToProductResponse(&products[i]))
	}
	return responses
}
