package usecase

import (
	"fmt"
	"strings"

	"github.com/orderflow/orderflow/internal/domain/model"
)

const unnamedItemPlaceholder = "(unnamed item)"

// Violation points at one order line that needs an explanation before
// the order may be submitted. Index is 1-based, matching the form.
type Violation struct {
	Index int
	Name  string
}

// Message renders the violation for display.
func (v Violation) Message() string {
	name := v.Name
	if name == "" {
		name = unnamedItemPlaceholder
	}
	return fmt.Sprintf("item %d (%s): must state the reason for the discrepancy in the item remarks", v.Index, name)
}

// ValidateItems checks every line that deviates from the catalog for a
// non-blank remark. An empty result means the order may be submitted.
// With no catalog available there is nothing to deviate from and the
// check passes trivially.
func ValidateItems(items []model.OrderItem, catalog []model.Product) []Violation {
	if len(catalog) == 0 {
		return nil
	}

	var violations []Violation
	for i, item := range items {
		if IsModified(item, catalog) && strings.TrimSpace(item.Remarks) == "" {
			violations = append(violations, Violation{Index: i + 1, Name: item.Name})
		}
	}
	return violations
}
