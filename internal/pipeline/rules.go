package pipeline

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ruleFile is the on-disk shape of a category rule override:
//
//	categories:
//	  - category: food
//	    keywords: [khana, swiggy, canteen]
//	  - category: transport
//	    keywords: [uber, metro]
//
// The file's list order becomes the classification order.
type ruleFile struct {
	Categories []CategoryRule `yaml:"categories"`
}

// LoadCategoryRules reads an ordered category taxonomy from a YAML file.
// Labels must come from the fixed category set; keywords are lowercased
// since all matching happens on lowercased text.
func LoadCategoryRules(path string) ([]CategoryRule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("LoadCategoryRules: reading %s: %w", path, err)
	}

	var file ruleFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("LoadCategoryRules: parsing %s: %w", path, err)
	}
	if len(file.Categories) == 0 {
		return nil, fmt.Errorf("LoadCategoryRules: %s defines no categories", path)
	}

	for i := range file.Categories {
		rule := &file.Categories[i]
		if !knownCategory(rule.Category) {
			return nil, fmt.Errorf("LoadCategoryRules: unknown category %q", rule.Category)
		}
		if len(rule.Keywords) == 0 {
			return nil, fmt.Errorf("LoadCategoryRules: category %q has no keywords", rule.Category)
		}
		for j, kw := range rule.Keywords {
			rule.Keywords[j] = strings.ToLower(strings.TrimSpace(kw))
		}
	}

	return file.Categories, nil
}

func knownCategory(c Category) bool {
	switch c {
	case CategorySalary, CategoryFreelance, CategoryInvestment, CategoryRefund,
		CategoryFood, CategoryTransport, CategoryShopping, CategoryUtilities,
		CategoryEntertainment, CategoryHealth, CategoryEducation, CategoryRent,
		CategoryEMI, CategoryOtherIncome, CategoryOther:
		return true
	}
	return false
}
