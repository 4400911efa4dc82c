package lint

// RuleInfo describes one built-in rule for listing and documentation.
type RuleInfo struct {
	Name        string
	Description string
	OptionKeys  []string
}

// Rules returns the built-in rules in execution order.
func Rules() []RuleInfo {
	return []RuleInfo{
		{
			Name:        "react-in-jsx-scope",
			Description: "the JSX factory identifier must be in scope at every markup site",
			OptionKeys:  []string{"pragma"},
		},
		{
			Name:        "no-literals",
			Description: "forbid literal text in markup content and attribute values",
			OptionKeys:  []string{"noStrings", "allowedStrings", "ignoreProps", "noAttributeStrings"},
		},
		{
			Name:        "no-multi-comp",
			Description: "at most one component definition per file",
			OptionKeys:  nil,
		},
	}
}
