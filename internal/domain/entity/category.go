// Package entity defines the core business entities for the domain layer.
package entity

// Category is one of the fixed transaction categories.
type Category string

const (
	CategoryFuel          Category = "fuel"
	CategoryFood          Category = "food"
	CategoryMovie         Category = "movie"
	CategoryLoan          Category = "loan"
	CategoryMedical       Category = "medical"
	CategoryShopping      Category = "shopping"
	CategoryTravel        Category = "travel"
	CategorySalary        Category = "salary"
	CategoryInvestment    Category = "investment"
	CategoryEntertainment Category = "entertainment"
	CategoryUtilities     Category = "utilities"
	CategoryRent          Category = "rent"
	CategoryFreelance     Category = "freelance"
	CategoryBonus         Category = "bonus"
	CategoryOther         Category = "other"
)

// AllCategories lists every category in catalog order.
var AllCategories = []Category{
	CategoryFuel,
	CategoryFood,
	CategoryMovie,
	CategoryLoan,
	CategoryMedical,
	CategoryShopping,
	CategoryTravel,
	CategorySalary,
	CategoryInvestment,
	CategoryEntertainment,
	CategoryUtilities,
	CategoryRent,
	CategoryFreelance,
	CategoryBonus,
	CategoryOther,
}

// IncomeCategories are the categories offered for income. Not enforced.
var IncomeCategories = []Category{
	CategorySalary,
	CategoryFreelance,
	CategoryInvestment,
	CategoryBonus,
	CategoryOther,
}

// ExpenseCategories are the categories offered for expenses. Not enforced.
var ExpenseCategories = []Category{
	CategoryFuel,
	CategoryFood,
	CategoryMovie,
	CategoryLoan,
	CategoryMedical,
	CategoryShopping,
	CategoryTravel,
	CategoryEntertainment,
	CategoryUtilities,
	CategoryRent,
	CategoryOther,
}

var categoryLabels = map[Category]string{
	CategoryFuel:          "Fuel",
	CategoryFood:          "Food",
	CategoryMovie:         "Movie",
	CategoryLoan:          "Loan",
	CategoryMedical:       "Medical",
	CategoryShopping:      "Shopping",
	CategoryTravel:        "Travel",
	CategorySalary:        "Salary",
	CategoryInvestment:    "Investment",
	CategoryEntertainment: "Entertainment",
	CategoryUtilities:     "Utilities",
	CategoryRent:          "Rent",
	CategoryFreelance:     "Freelance",
	CategoryBonus:         "Bonus",
	CategoryOther:         "Other",
}

// IsValid reports whether c belongs to the fixed enumeration.
func (c Category) IsValid() bool {
	_, ok := categoryLabels[c]
	return ok
}

// Label returns the human-readable name of the category.
// Unknown categories are returned as-is.
func (c Category) Label() string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return string(c)
}
