package x12

// ProviderRegistry suppresses re-emission of provider name blocks that
// share an NPI. Billing, rendering, and service-facility loops share
// one de-duplication space. An instance belongs to exactly one Build
// invocation; sharing one across builds would suppress providers on the
// second pass.
type ProviderRegistry struct {
	seen map[string]LoopContext
}

func NewProviderRegistry() *ProviderRegistry {
	return &ProviderRegistry{seen: make(map[string]LoopContext)}
}

// RegisterIfNew records npi and reports whether the caller may emit the
// provider's name block. Contexts outside the registry's scope always
// pass. An empty or previously registered NPI is suppressed; that is a
// structural outcome, not an error.
func (r *ProviderRegistry) RegisterIfNew(npi string, context LoopContext) bool {
	if !context.RegistryGoverned() {
		return true
	}
	if npi == "" {
		return false
	}
	if _, ok := r.seen[npi]; ok {
		return false
	}
	r.seen[npi] = context
	return true
}
