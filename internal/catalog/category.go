package catalog

import "strings"

// Category is the closed set of element classifications.
type Category string

const (
	AlkaliMetal         Category = "alkali-metal"
	AlkalineEarthMetal  Category = "alkaline-earth-metal"
	TransitionMetal     Category = "transition-metal"
	PostTransitionMetal Category = "post-transition-metal"
	Metalloid           Category = "metalloid"
	Nonmetal            Category = "nonmetal"
	Halogen             Category = "halogen"
	NobleGas            Category = "noble-gas"
	Lanthanide          Category = "lanthanide"
	Actinide            Category = "actinide"

	// CategoryAll selects every element. It is a filter value, not a category.
	CategoryAll Category = "all"
)

var categoryOrder = []Category{
	AlkaliMetal,
	AlkalineEarthMetal,
	TransitionMetal,
	PostTransitionMetal,
	Metalloid,
	Nonmetal,
	Halogen,
	NobleGas,
	Lanthanide,
	Actinide,
}

var categoryLabels = map[Category]string{
	CategoryAll:         "All Elements",
	AlkaliMetal:         "Alkali Metal",
	AlkalineEarthMetal:  "Alkaline Earth Metal",
	TransitionMetal:     "Transition Metal",
	PostTransitionMetal: "Post-transition Metal",
	Metalloid:           "Metalloid",
	Nonmetal:            "Nonmetal",
	Halogen:             "Halogen",
	NobleGas:            "Noble Gas",
	Lanthanide:          "Lanthanide",
	Actinide:            "Actinide",
}

// Categories returns the known categories in display order.
func Categories() []Category {
	out := make([]Category, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}

// Label returns the display label for c, or the raw tag when none is defined.
func Label(c Category) string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return string(c)
}

// ParseCategory accepts a tag or a label, case-insensitively. Unknown input is
// returned as-is so filters on unlabelled tags keep working.
func ParseCategory(value string) Category {
	v := strings.TrimSpace(value)
	if v == "" {
		return CategoryAll
	}
	for c, label := range categoryLabels {
		if strings.EqualFold(string(c), v) || strings.EqualFold(label, v) {
			return c
		}
	}
	return Category(strings.ToLower(v))
}

// Phase is the state of matter at standard conditions.
type Phase string

const (
	PhaseSolid   Phase = "solid"
	PhaseLiquid  Phase = "liquid"
	PhaseGas     Phase = "gas"
	PhaseUnknown Phase = "unknown"
)

// ParsePhase maps free text onto a Phase, defaulting to PhaseUnknown.
func ParsePhase(value string) Phase {
	switch Phase(strings.ToLower(strings.TrimSpace(value))) {
	case PhaseSolid:
		return PhaseSolid
	case PhaseLiquid:
		return PhaseLiquid
	case PhaseGas:
		return PhaseGas
	default:
		return PhaseUnknown
	}
}

// Title returns the phase capitalized for display.
func (p Phase) Title() string {
	s := string(p)
	if s == "" {
		return "Unknown"
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
