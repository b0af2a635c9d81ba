package commands

import (
	"errors"
	"fmt"
	"strings"

	"drivethrough/internal/core/domain/model/intent"
	"drivethrough/internal/core/domain/model/menu"
	"drivethrough/internal/core/domain/model/order"
	"drivethrough/internal/core/domain/services"
)

const (
	replyUnchanged  = "Your order is unchanged."
	replyCleared    = "Cleared your order."
	replyParseRetry = "Sorry, I had trouble processing that. Please try again."
	replyErrorRetry = "Sorry, I encountered an error. Please try again."
)

// Confirmation renders the assistant reply for an applied batch, one sentence per
// intent that changed something: "Added 2 Big Mac. Removed 1 Large Fry."
func Confirmation(report services.Report) string {
	var sentences []string
	for _, o := range report.Outcomes {
		switch o.Intent.Kind() {
		case intent.Clear:
			if len(o.Changes) > 0 {
				sentences = append(sentences, replyCleared)
			}
		case intent.Substitute:
			sentences = append(sentences, fmt.Sprintf("Changed %d %s to %s.",
				o.Intent.Quantity(), o.Changes[0].ItemName, o.Changes[1].ItemName))
		default:
			for _, c := range o.Changes {
				if s := describeChange(c); s != "" {
					sentences = append(sentences, s)
				}
			}
		}
	}
	if len(sentences) == 0 {
		return replyUnchanged
	}
	return strings.Join(sentences, " ")
}

func describeChange(c order.LineChange) string {
	switch d := c.Delta(); {
	case d > 0:
		return fmt.Sprintf("Added %d %s.", d, c.ItemName)
	case d < 0:
		return fmt.Sprintf("Removed %d %s.", -d, c.ItemName)
	default:
		return ""
	}
}

// CorrectiveReply renders the assistant reply for a rejected turn. Unknown items are
// answered with the list of what is on the menu.
func CorrectiveReply(err error, catalog *menu.Catalog) string {
	if unknown := unknownItems(err); len(unknown) > 0 {
		return fmt.Sprintf("Item does not exist: %s. Available items are: %s",
			strings.Join(unknown, ", "), strings.Join(catalog.Names(), ", "))
	}

	var (
		notInOrder   *order.ItemNotInOrderError
		insufficient *order.InsufficientQuantityError
		badQuantity  *intent.InvalidQuantityError
	)
	switch {
	case errors.As(err, &notInOrder):
		return fmt.Sprintf("There is no %s in your order.", notInOrder.ItemName)
	case errors.As(err, &insufficient):
		return fmt.Sprintf("You only have %d %s in your order.", insufficient.Available, insufficient.ItemName)
	case errors.As(err, &badQuantity) && badQuantity.TooMany():
		return fmt.Sprintf("You can have at most %d %s in your order.", badQuantity.Max, badQuantity.ItemName)
	case errors.As(err, &badQuantity):
		return fmt.Sprintf("How many %s would you like?", badQuantity.ItemName)
	case errors.Is(err, intent.ErrParseFailure):
		return replyParseRetry
	default:
		return replyErrorRetry
	}
}

// unknownItems collects every unknown item name in the error tree, in order.
func unknownItems(err error) []string {
	var names []string
	var walk func(error)
	walk = func(e error) {
		switch x := e.(type) {
		case nil:
		case *menu.UnknownItemError:
			names = append(names, x.ItemName)
		case interface{ Unwrap() []error }:
			for _, inner := range x.Unwrap() {
				walk(inner)
			}
		case interface{ Unwrap() error }:
			walk(x.Unwrap())
		}
	}
	walk(err)
	return names
}
