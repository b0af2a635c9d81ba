package queries

import (
	"context"

	"drivethrough/internal/core/domain/model/menu"
	"drivethrough/internal/pkg/errs"
)

// GetMenuQueryHandler reads the menu straight from the loaded catalog.
type GetMenuQueryHandler struct {
	catalog *menu.Catalog
}

func NewGetMenuQueryHandler(catalog *menu.Catalog) GetMenuQueryHandler {
	return GetMenuQueryHandler{catalog: catalog}
}

// Handle returns the items in catalog order.
func (h GetMenuQueryHandler) Handle(_ context.Context, query GetMenuQuery) ([]GetMenuQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := h.catalog.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("catalog", err)
	}

	items := h.catalog.AllItems()
	out := make([]GetMenuQueryResponse, 0, len(items))
	for _, item := range items {
		out = append(out, GetMenuQueryResponse{
			Name:     item.Name(),
			Price:    item.Price(),
			Category: item.Category(),
		})
	}
	return out, nil
}
