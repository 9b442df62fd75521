package catalog

import "embervale/utils"

// Record is any catalog record the filter engine can match against.
type Record interface {
	FilterFields() (name, description, category string)
}

// FilterOptions narrows a record list. Empty fields are no-op filters.
type FilterOptions struct {
	Query    string
	Category string
}

// Filter returns the records matching opts, preserving input order.
// The query matches case-insensitively as a substring of name or
// description; category must be exactly equal (case-sensitive). No
// pagination, no ranking.
func Filter[T Record](items []T, opts FilterOptions) []T {
	if opts.Query == "" && opts.Category == "" {
		return items
	}

	matched := make([]T, 0, len(items))
	for _, item := range items {
		name, description, category := item.FilterFields()

		if opts.Category != "" && category != opts.Category {
			continue
		}
		if opts.Query != "" &&
			!utils.ContainsIgnoreCase(name, opts.Query) &&
			!utils.ContainsIgnoreCase(description, opts.Query) {
			continue
		}
		matched = append(matched, item)
	}
	return matched
}
