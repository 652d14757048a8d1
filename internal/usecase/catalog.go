package usecase

import "github.com/orderflow/orderflow/internal/domain/model"

// FindByName returns the first catalog entry whose name exactly matches.
// An empty name never matches.
func FindByName(catalog []model.Product, name string) *model.Product {
	if name == "" {
		return nil
	}
	for i := range catalog {
		if catalog[i].Name == name {
			return &catalog[i]
		}
	}
	return nil
}

// Autofill overwrites unit and unit price from a catalog match for the
// item's current name, leaving quantity and remarks untouched, and
// rederives the amount. Without a match the user's values stand.
func Autofill(item model.OrderItem, catalog []model.Product) model.OrderItem {
	if product := FindByName(catalog, item.Name); product != nil {
		item.Unit = product.Unit
		item.Price = product.Price
	}
	return Recalculate(item)
}

// IsModified reports whether the line deviates from the reference catalog:
// either no entry carries its name, or the matching entry's price differs.
// Unnamed lines are never flagged. Catalog availability is judged by the
// validator, not here.
func IsModified(item model.OrderItem, catalog []model.Product) bool {
	if item.Name == "" {
		return false
	}
	product := FindByName(catalog, item.Name)
	if product == nil {
		return true
	}
	return product.Price != item.Price
}
