package persistence

import (
	"strings"
)

// ValidateSortOrder validates and normalizes the sort order to ASC or DESC.
// Returns "DESC" as the default if the input is invalid or empty.
func ValidateSortOrder(orderDir string) string {
	normalized := strings.ToUpper(strings.TrimSpace(orderDir))
	if normalized == "ASC" {
		return "ASC"
	}
	return "DESC"
}

// ValidateSortField validates the sort field against a whitelist of allowed
// fields. Returns the defaultField if the input is empty or not whitelisted.
func ValidateSortField(sortField string, allowedFields map[string]bool, defaultField string) string {
	trimmed := strings.TrimSpace(sortField)
	if trimmed == "" {
		return defaultField
	}
	if allowedFields[trimmed] {
		return trimmed
	}
	return defaultField
}

// customerSortFields contains allowed sort fields for customers
var customerSortFields = map[string]bool{
	"id":           true,
	"created_at":   true,
	"updated_at":   true,
	"name":         true,
	"total_bought": true,
	"total_paid":   true,
}

// productSortFields contains allowed sort fields for products
var productSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"name":       true,
	"category":   true,
	"sale_price": true,
	"stock":      true,
}

// saleSortFields contains allowed sort fields for sales
var saleSortFields = map[string]bool{
	"id":          true,
	"created_at":  true,
	"date":        true,
	"total_value": true,
}

// installmentSortFields contains allowed sort fields for installments
var installmentSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"due_date":   true,
	"value":      true,
	"status":     true,
}

// expenseSortFields contains allowed sort fields for expenses
var expenseSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"date":       true,
	"value":      true,
	"category":   true,
}
