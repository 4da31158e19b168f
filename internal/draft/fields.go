package draft

import (
	"regexp"
	"sort"
	"strings"

	"github.com/dxbsouq/souq-backend/internal/apperror"
	"github.com/dxbsouq/souq-backend/pkg/utils"
)

// phonePattern requires the UAE country prefix; local numbers without it are
// rejected.
var phonePattern = regexp.MustCompile(`^\+971\d+$`)

// Rule describes one field of a category form or summary. Pattern, when set,
// is checked against string values after the required check passes.
type Rule struct {
	Name     string
	Required bool
	Pattern  *regexp.Regexp
}

// formRules lists every accepted field per category. The sets mirror the
// original per-category forms: motors is the richest, the others carry their
// own required cores.
var formRules = map[CategoryID][]Rule{
	CategoryMotors: {
		{Name: "motorType", Required: true},
		{Name: "emirate", Required: true},
		{Name: "makeModel", Required: true},
		{Name: "trim"},
		{Name: "regionalSpecs"},
		{Name: "year"},
		{Name: "kilometres"},
		{Name: "bodyType"},
		{Name: "isInsured"},
		{Name: "price", Required: true},
		{Name: "phoneNumber", Required: true, Pattern: phonePattern},
	},
	CategoryJobs: {
		{Name: "jobTitle", Required: true},
		{Name: "industry", Required: true},
		{Name: "experienceLevel", Required: true},
		{Name: "employmentType"},
		{Name: "education"},
		{Name: "salary", Required: true},
		{Name: "phoneNumber", Required: true, Pattern: phonePattern},
	},
	CategoryPropertySale: {
		{Name: "propertyType", Required: true},
		{Name: "emirate", Required: true},
		{Name: "bedrooms", Required: true},
		{Name: "bathrooms"},
		{Name: "area"},
		{Name: "furnished"},
		{Name: "buildingName"},
		{Name: "price", Required: true},
		{Name: "phoneNumber", Required: true, Pattern: phonePattern},
	},
	CategoryPropertyRent: {
		{Name: "propertyType", Required: true},
		{Name: "emirate", Required: true},
		{Name: "bedrooms", Required: true},
		{Name: "rentFrequency", Required: true},
		{Name: "bathrooms"},
		{Name: "area"},
		{Name: "furnished"},
		{Name: "buildingName"},
		{Name: "price", Required: true},
		{Name: "phoneNumber", Required: true, Pattern: phonePattern},
	},
	CategoryClassifieds: {
		{Name: "itemName", Required: true},
		{Name: "condition", Required: true},
		{Name: "brand"},
		{Name: "ageOfItem"},
		{Name: "price", Required: true},
		{Name: "phoneNumber", Required: true, Pattern: phonePattern},
	},
}

// summaryRules covers the review step. Only the post title gates publishing;
// everything else is optional metadata.
var summaryRules = map[CategoryID][]Rule{
	CategoryMotors: {
		{Name: "postTitle", Required: true},
		{Name: "description"},
		{Name: "fuelType"},
		{Name: "exteriorColour"},
		{Name: "interiorColour"},
		{Name: "warranty"},
		{Name: "transmission"},
		{Name: "seatingCapacity"},
		{Name: "horsePower"},
		{Name: "steeringHand"},
		{Name: "technicalFeatures"},
		{Name: "location"},
	},
	CategoryJobs: {
		{Name: "postTitle", Required: true},
		{Name: "description"},
		{Name: "location"},
	},
	CategoryPropertySale: {
		{Name: "postTitle", Required: true},
		{Name: "description"},
		{Name: "amenities"},
		{Name: "location"},
	},
	CategoryPropertyRent: {
		{Name: "postTitle", Required: true},
		{Name: "description"},
		{Name: "amenities"},
		{Name: "location"},
	},
	CategoryClassifieds: {
		{Name: "postTitle", Required: true},
		{Name: "description"},
		{Name: "location"},
	},
}

// HasFormField reports whether a category's form table accepts a field.
func HasFormField(category CategoryID, name string) bool {
	for _, rule := range formRules[category] {
		if rule.Name == name {
			return true
		}
	}

	return false
}

// ValidateForm checks a category form submission against its field table.
// It reports every missing and invalid field at once, never just the first.
func ValidateForm(category CategoryID, fields Fields) error {
	return validateAgainst(formRules[category], fields)
}

// ValidateSummary checks the review step submission the same way.
func ValidateSummary(category CategoryID, fields Fields) error {
	return validateAgainst(summaryRules[category], fields)
}

// NormalizeSummary drops repeated entries from multi-select summary fields
// such as technicalFeatures and amenities. Other values pass through as is.
func NormalizeSummary(fields Fields) Fields {
	out := make(Fields, len(fields))

	for name, value := range fields {
		switch v := value.(type) {
		case []string:
			out[name] = utils.RemoveDuplicates(v)
		case []any:
			if strs, ok := toStrings(v); ok {
				out[name] = utils.RemoveDuplicates(strs)
			} else {
				out[name] = value
			}
		default:
			out[name] = value
		}
	}

	return out
}

func toStrings(in []any) ([]string, bool) {
	out := make([]string, 0, len(in))
	for _, v := range in {
		s, ok := v.(string)
		if !ok {
			return nil, false
		}
		out = append(out, s)
	}

	return out, true
}

func validateAgainst(rules []Rule, fields Fields) error {
	var missing, invalid []string

	known := make(map[string]Rule, len(rules))
	for _, rule := range rules {
		known[rule.Name] = rule

		value := fields[rule.Name]
		if isEmpty(value) {
			if rule.Required {
				missing = append(missing, rule.Name)
			}
			continue
		}

		if rule.Pattern != nil {
			str, isStr := value.(string)
			if !isStr || !rule.Pattern.MatchString(str) {
				invalid = append(invalid, rule.Name)
			}
		}
	}

	for name := range fields {
		if _, ok := known[name]; !ok {
			invalid = append(invalid, name)
		}
	}

	if len(missing) == 0 && len(invalid) == 0 {
		return nil
	}

	sort.Strings(missing)
	sort.Strings(invalid)

	return apperror.NewFieldsValidationErr(missing, invalid)
}

func isEmpty(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(v) == ""
	case []string:
		return len(v) == 0
	case []any:
		return len(v) == 0
	case bool:
		return false
	default:
		return false
	}
}
