package llm

import (
	"encoding/json"
	"fmt"
	"strings"

	"drivethrough/internal/core/domain/model/menu"
	"drivethrough/internal/core/domain/model/order"
)

const systemPromptTemplate = `You are a drive-through cashier. You never change the order yourself.
Translate the customer's latest message into order operations.

MENU:
%s

CURRENT ORDER:
%s

OPERATIONS:
- "add": add "quantity" of "item"
- "remove": remove "quantity" of "item"
- "set_quantity": set "item" to exactly "quantity" (0 removes it)
- "substitute": replace "quantity" of "item" with the same number of "to"
- "clear": empty the order

RULES:
- Use menu names exactly as written. If the customer asks for something that is not on
  the menu, still emit the operation with the name they used; it will be rejected.
- Always give a positive "quantity" for add, remove and substitute. Use 1 when none is said.
- Emit operations in the order the customer said them.
- If the message asks for nothing, return no operations and explain why in "error".

Reply with JSON only:
{"intents":[{"op":"add","item":"Big Mac","quantity":2}],"error":""}`

type promptItem struct {
	Name     string `json:"name"`
	Price    string `json:"price"`
	Category string `json:"category,omitempty"`
}

func systemPrompt(catalog *menu.Catalog, current *order.Order) (string, error) {
	items := make([]promptItem, 0, catalog.Len())
	for _, item := range catalog.AllItems() {
		items = append(items, promptItem{
			Name:     item.Name(),
			Price:    item.Price().String(),
			Category: item.Category(),
		})
	}
	menuJSON, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return "", err
	}

	lines := make(map[string]int, current.Len())
	for _, l := range current.Lines() {
		lines[l.ItemName()] = l.Quantity()
	}
	orderJSON, err := json.MarshalIndent(lines, "", "  ")
	if err != nil {
		return "", err
	}

	return fmt.Sprintf(systemPromptTemplate, menuJSON, orderJSON), nil
}

// stripFences removes markdown code fences some models wrap around JSON.
func stripFences(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")
	return strings.TrimSpace(text)
}
