package persona

import "strings"

type rule struct {
	category Category
	keywords []string
}

// classificationRules are checked in order; the first match wins.
var classificationRules = []rule{
	{CategoryBudgetShopper, []string{"budget", "cheap", "affordable", "price"}},
	{CategoryLuxuryBuyer, []string{"luxury", "premium", "high-end", "quality"}},
	{CategoryIndecisive, []string{"indecis", "uncertain", "changeable"}},
	{CategoryBeautyEnthusiast, []string{"beauty", "makeup", "trendy", "impulsive"}},
	{CategorySkincareFocused, []string{"skincare", "routine", "organic"}},
	{CategoryGiftShopper, []string{"gift", "birthday", "present"}},
}

// Classify derives a Category from traits by keyword scan over their lower-cased
// concatenation. The decision style does not currently affect the result.
func Classify(traits []string, _ DecisionStyle) Category {
	text := strings.ToLower(strings.Join(traits, " "))
	for _, r := range classificationRules {
		for _, kw := range r.keywords {
			if strings.Contains(text, kw) {
				return r.category
			}
		}
	}
	return CategoryCustom
}
