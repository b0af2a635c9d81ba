// Package queries contains read operations over sessions, the menu and the order archive.
// Queries never change state and return read models shaped for the HTTP surface.
package queries

import (
	"errors"

	"drivethrough/internal/core/domain/model/kernel"
	"drivethrough/internal/pkg/guard"
)

var (
	ErrGetMenuQueryIsNotConstructed = errors.New(
		"GetMenuQuery must be created via NewGetMenuQuery constructor",
	)
)

// GetMenuQuery lists every item the restaurant sells.
//
// Example:
//
//	query := NewGetMenuQuery()
//	handler := NewGetMenuQueryHandler(catalog)
//
//	items, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to read menu: %w", err)
//	}
//
//	for _, item := range items {
//	    fmt.Printf("%s %s\n", item.Name, item.Price)
//	}
type GetMenuQuery struct {
	guard guard.ConstructorGuard
}

// NewGetMenuQuery creates a parameterless menu query.
func NewGetMenuQuery() GetMenuQuery {
	return GetMenuQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetMenuQuery) Validate() error {
	return q.guard.Validate(ErrGetMenuQueryIsNotConstructed)
}

// GetMenuQueryResponse is one menu item in the read model.
type GetMenuQueryResponse struct {
	Name     string
	Price    kernel.Money
	Category string
}
