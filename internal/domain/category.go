package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Category is a closed set of transaction categories. It is resolved once at
// transaction creation; the class drives both the stored amount sign and the
// fund-movement dispatch.
type Category string

const (
	CategoryRevenue   Category = "Revenue"
	CategoryLiquidity Category = "Liquidity"

	// Expense categories
	CategoryOpEx       Category = "OpEx"
	CategoryOperations Category = "Operations"
	CategorySalary     Category = "Salary"
	CategoryMarketing  Category = "Marketing"
	CategoryLegal      Category = "Legal"
	CategoryTech       Category = "Tech"
	CategoryCOGS       Category = "COGS"
)

// CategoryClass partitions categories by their fund-movement behavior.
type CategoryClass int

const (
	ClassExpense CategoryClass = iota
	ClassRevenue
	ClassLiquidity
)

var categoryClasses = map[Category]CategoryClass{
	CategoryRevenue:    ClassRevenue,
	CategoryLiquidity:  ClassLiquidity,
	CategoryOpEx:       ClassExpense,
	CategoryOperations: ClassExpense,
	CategorySalary:     ClassExpense,
	CategoryMarketing:  ClassExpense,
	CategoryLegal:      ClassExpense,
	CategoryTech:       ClassExpense,
	CategoryCOGS:       ClassExpense,
}

// ParseCategory validates a category string against the closed set.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if _, ok := categoryClasses[c]; !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidCategory, s)
	}

	return c, nil
}

// Class returns the category's fund-movement class.
func (c Category) Class() CategoryClass {
	return categoryClasses[c]
}

// IsExpense reports whether the category counts toward burn.
func (c Category) IsExpense() bool {
	return c.Class() == ClassExpense
}

// SignedAmount applies the category's sign rule to a positive magnitude:
// revenue is stored positive, expenses and liquidity transfers negative.
func (c Category) SignedAmount(magnitude decimal.Decimal) decimal.Decimal {
	if c.Class() == ClassRevenue {
		return magnitude
	}

	return magnitude.Neg()
}
