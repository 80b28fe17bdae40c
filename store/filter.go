package store

import "strings"

// FilterQuotations returns the quotations whose name, email, company or
// product type contains the search term, case-insensitively. An empty term
// returns the full input. Relative order is preserved.
func FilterQuotations(recs []QuotationRecord, term string) []QuotationRecord {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return recs
	}

	out := []QuotationRecord{}
	for _, r := range recs {
		if containsFold(r.FullName, term) ||
			containsFold(r.Email, term) ||
			containsFold(r.Company, term) ||
			containsFold(r.ProductType, term) {
			out = append(out, r)
		}
	}
	return out
}

// FilterSubscriptions returns the subscriptions whose email contains the
// search term, case-insensitively. An empty term returns the full input.
func FilterSubscriptions(recs []SubscriptionRecord, term string) []SubscriptionRecord {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return recs
	}

	out := []SubscriptionRecord{}
	for _, r := range recs {
		if containsFold(r.Email, term) {
			out = append(out, r)
		}
	}
	return out
}

func containsFold(s, lowerTerm string) bool {
	return strings.Contains(strings.ToLower(s), lowerTerm)
}
