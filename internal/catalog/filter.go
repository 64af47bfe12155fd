package catalog

import (
	"strings"

	"kodevidecamp/internal/models"
)

// Listing is a filtered view of a collection plus the counts shown next to
// the list.
type Listing[T any] struct {
	Items   []T `json:"items"`
	Total   int `json:"total"`
	Visible int `json:"visible"`
}

func newListing[T any](all, visible []T) Listing[T] {
	return Listing[T]{Items: visible, Total: len(all), Visible: len(visible)}
}

func normalizeQuery(q string) string {
	return strings.ToLower(strings.TrimSpace(q))
}

func containsFold(field, query string) bool {
	return strings.Contains(strings.ToLower(field), query)
}

func filter[T any](all []T, keep func(T) bool) []T {
	out := make([]T, 0, len(all))
	for _, rec := range all {
		if keep(rec) {
			out = append(out, rec)
		}
	}
	return out
}

// VisibleFAQs keeps the FAQs in category (all categories for "all" or "")
// whose question, answer or any tag contains query, ignoring case. Order is
// preserved.
func VisibleFAQs(all []models.FAQ, query, category string) []models.FAQ {
	q := normalizeQuery(query)
	anyCategory := category == "" || category == models.CategoryAll

	return filter(all, func(f models.FAQ) bool {
		if !anyCategory && f.Category != category {
			return false
		}
		return q == "" || faqMatches(f, q)
	})
}

func faqMatches(f models.FAQ, q string) bool {
	if containsFold(f.Question, q) || containsFold(f.Answer, q) {
		return true
	}
	for _, tag := range f.Tags {
		if containsFold(tag, q) {
			return true
		}
	}
	return false
}

// VisibleNotices keeps the notices whose title or description contains
// query, ignoring case.
func VisibleNotices(all []models.Notice, query string) []models.Notice {
	q := normalizeQuery(query)

	return filter(all, func(n models.Notice) bool {
		return q == "" || containsFold(n.Title, q) || containsFold(n.Description, q)
	})
}
