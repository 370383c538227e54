package rule

// Category classifies what aspect of a document a rule checks. The set is
// closed; configuration refers to categories by these string values.
type Category string

// Rule categories.
const (
	CategoryStructure  Category = "structure"
	CategoryFormatting Category = "formatting"
	CategoryContent    Category = "content"
	CategoryMdBook     Category = "mdbook"
)

// StabilityLevel describes the lifecycle state of a rule.
type StabilityLevel string

// Stability levels.
const (
	StabilityStable     StabilityLevel = "stable"
	StabilityDeprecated StabilityLevel = "deprecated"
	StabilityReserved   StabilityLevel = "reserved"
)

// Stability carries a rule's lifecycle state plus the context users need
// when that state is not stable.
type Stability struct {
	Level StabilityLevel
	// Reason explains a deprecated or reserved status.
	Reason string
	// SupersededBy names the rule that replaces a deprecated rule.
	SupersededBy string
}

// Stable returns the stability of an ordinary rule.
func Stable() Stability {
	return Stability{Level: StabilityStable}
}

// Deprecated marks a rule as deprecated with a reason and an optional
// successor rule id.
func Deprecated(reason, supersededBy string) Stability {
	return Stability{Level: StabilityDeprecated, Reason: reason, SupersededBy: supersededBy}
}

// Reserved marks a rule id as a placeholder kept for numbering continuity
// with an external catalog.
func Reserved(reason string) Stability {
	return Stability{Level: StabilityReserved, Reason: reason}
}

// Metadata describes a rule beyond its check logic. Identity fields
// (id, name, description) live on the Rule interface itself; Metadata
// holds classification and lifecycle state.
type Metadata struct {
	Category  Category
	Stability Stability
	// IntroducedIn is the version tag the rule first shipped in.
	// Informational only.
	IntroducedIn string
	// Overrides names a rule whose concern this rule subsumes. When both
	// rules flag the same line of the same document, the engine keeps
	// this rule's violation and drops the overridden rule's.
	Overrides string
	// DefaultEnabled is the rule's enabled state when configuration says
	// nothing about it.
	DefaultEnabled bool
}
