package domain

import "strings"

// AccountType is the derived asset/liability classification of an account.
// It is never stored; it is computed from the account's category.
type AccountType string

const (
	Asset     AccountType = "asset"
	Liability AccountType = "liability"
)

// Fixed category vocabulary. Categories outside the liability set classify
// as assets, including unknown free-form tokens.
const (
	CategoryCash           = "cash"
	CategoryInvestment     = "investment"
	CategoryRetirement     = "retirement"
	CategoryProperty       = "property"
	CategoryOther          = "other"
	CategoryMortgage       = "mortgage"
	CategoryLoan           = "loan"
	CategoryCreditCard     = "creditcard"
	CategoryOtherLiability = "other liability"
)

// AssetCategories and LiabilityCategories define the fixed rollup columns,
// in display order.
var (
	AssetCategories     = []string{CategoryCash, CategoryInvestment, CategoryRetirement, CategoryProperty, CategoryOther}
	LiabilityCategories = []string{CategoryMortgage, CategoryLoan, CategoryCreditCard, CategoryOtherLiability}
)

var liabilityCategorySet = map[string]struct{}{
	CategoryMortgage:       {},
	CategoryLoan:           {},
	CategoryCreditCard:     {},
	CategoryOtherLiability: {},
}

// TypeForCategory classifies a category token. Unknown categories are
// assets by default.
func TypeForCategory(category string) AccountType {
	if _, ok := liabilityCategorySet[strings.ToLower(strings.TrimSpace(category))]; ok {
		return Liability
	}
	return Asset
}

// DefaultCategoryForType returns the category used when an import names an
// account type but no category.
func DefaultCategoryForType(t AccountType) string {
	if t == Liability {
		return CategoryOtherLiability
	}
	return CategoryOther
}

// IsLiabilityCategory reports whether a category belongs to the fixed
// liability set.
func IsLiabilityCategory(category string) bool {
	return TypeForCategory(category) == Liability
}

// Account is a named financial holding owned by a single user. Name is
// unique per owner and stored case-sensitively, but import matches names
// case-insensitively.
type Account struct {
	AccountID string `json:"accountID"`
	UserID    string `json:"userID"`
	Name      string `json:"name"`
	Category  string `json:"category"` // lowercase token, defaults to "other"
	AuditFields
}

// Type derives the asset/liability classification from the category.
func (a Account) Type() AccountType {
	return TypeForCategory(a.Category)
}
