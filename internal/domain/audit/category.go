package audit

import (
	"slices"
	"strings"
)

type Category string

const (
	CategoryCreated    Category = "created"
	CategoryModified   Category = "modified"
	CategoryPayment    Category = "payment"
	CategoryCheckEvent Category = "check_event"
	CategoryDiscount   Category = "discount"
	CategoryOther      Category = "other"
)

func (c Category) String() string {
	return string(c)
}

// Rule maps an action label to a category when the label contains any of Substrings.
type Rule struct {
	Category   Category
	Substrings []string
}

func (r Rule) Matches(label string) bool {
	for _, s := range r.Substrings {
		if strings.Contains(label, s) {
			return true
		}
	}
	return false
}

// Matching is case-sensitive and the first matching rule wins.
var rules = []Rule{
	{Category: CategoryCreated, Substrings: []string{"Created"}},
	{Category: CategoryModified, Substrings: []string{"Modified", "Updated"}},
	{Category: CategoryPayment, Substrings: []string{"Payment"}},
	{Category: CategoryCheckEvent, Substrings: []string{"Check"}},
	{Category: CategoryDiscount, Substrings: []string{"Discount"}},
}

// Rules returns the classification table in evaluation order.
func Rules() []Rule {
	out := make([]Rule, len(rules))
	for i, r := range rules {
		out[i] = Rule{Category: r.Category, Substrings: slices.Clone(r.Substrings)}
	}
	return out
}

func Classify(label string) Category {
	for _, r := range rules {
		if r.Matches(label) {
			return r.Category
		}
	}
	return CategoryOther
}
