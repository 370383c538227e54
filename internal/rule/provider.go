package rule

// Provider is a named, versioned bundle of related rules. Providers are
// the unit of extensibility: independent rule families register through
// this interface with no compile-time knowledge of one another.
type Provider interface {
	ProviderID() string
	Description() string
	Version() string
	// RegisterRules registers every rule in the bundle into reg.
	RegisterRules(reg *Registry) error
	// RuleIDs lists the ids RegisterRules will claim, so an aggregator
	// can detect collisions before registration.
	RuleIDs() []string
}
