package parameters

import "github.com/Carmen-Shannon/oxy-glow/engine/driver"

// ParametersBuilderOption is a function that configures a parameters instance during construction.
type ParametersBuilderOption func(*parameters)

// WithValue is an option builder that stores a single value.
//
// Parameters:
//   - name: the uniform name
//   - value: the value to store
//
// Returns:
//   - ParametersBuilderOption: a function that stores the value in the set
func WithValue(name string, value Value) ParametersBuilderOption {
	return func(p *parameters) {
		p.Set(name, value)
	}
}

// WithValues is an option builder that seeds the set from an initial mapping.
//
// Parameters:
//   - values: the name to value mapping to copy into the set
//
// Returns:
//   - ParametersBuilderOption: a function that copies every value into the set
func WithValues(values map[string]Value) ParametersBuilderOption {
	return func(p *parameters) {
		for name, v := range values {
			driver.Require(!driver.IsNil(v), "parameters: WithValues(%q) requires a non-nil Value", name)
			p.values[name] = v
		}
	}
}
