package parameters

import (
	"fmt"
	"maps"
	"slices"

	"github.com/Carmen-Shannon/oxy-glow/engine/driver"
)

// parameters is the implementation of the Parameters interface.
type parameters struct {
	values map[string]Value
	// names caches the sorted keys; nil until rebuilt after an insert.
	names []string
}

// Parameters is a named bag of typed shader inputs: a material, a light, or any
// other rendering context that is bound to a shader before a draw.
//
// A Parameters value is a shared handle. The same set is commonly attached to
// several passes, geometry entries or lights; a change made through one holder
// is visible to all of them on the next frame.
type Parameters interface {
	// Set stores value under name, replacing any previous value.
	//
	// Parameters:
	//   - name: the uniform name
	//   - value: the value to store
	Set(name string, value Value)

	// Has reports whether a value is stored under name.
	//
	// Parameters:
	//   - name: the uniform name
	//
	// Returns:
	//   - bool: true if a value is present
	Has(name string) bool

	// Get returns the value stored under name. Asking for an absent name is a
	// precondition violation and panics; use Lookup when absence is expected.
	//
	// Parameters:
	//   - name: the uniform name
	//
	// Returns:
	//   - Value: the stored value
	Get(name string) Value

	// Lookup returns the value stored under name and whether it was present.
	Lookup(name string) (Value, bool)

	// Names returns the stored names in ascending order.
	Names() []string

	// Len returns the number of stored values.
	Len() int

	// sorted returns the cached ascending names; callers must not modify it.
	sorted() []string
}

var _ Parameters = &parameters{}

// New creates a Parameters set configured with the provided options.
// Without options the set is empty.
//
// Parameters:
//   - opts: variadic list of ParametersBuilderOption functions seeding the set
//
// Returns:
//   - Parameters: a new Parameters instance
func New(opts ...ParametersBuilderOption) Parameters {
	p := &parameters{
		values: make(map[string]Value),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *parameters) Set(name string, value Value) {
	driver.Require(!driver.IsNil(value), "parameters: Set(%q) requires a non-nil Value", name)
	if _, ok := p.values[name]; !ok {
		p.names = nil
	}
	p.values[name] = value
}

func (p *parameters) Has(name string) bool {
	_, ok := p.values[name]
	return ok
}

func (p *parameters) Get(name string) Value {
	v, ok := p.values[name]
	driver.Require(ok, "parameters: no value named %q", name)
	return v
}

func (p *parameters) Lookup(name string) (Value, bool) {
	v, ok := p.values[name]
	return v, ok
}

func (p *parameters) Names() []string {
	return slices.Clone(p.sorted())
}

func (p *parameters) sorted() []string {
	if p.names == nil {
		p.names = slices.Sorted(maps.Keys(p.values))
	}
	return p.names
}

func (p *parameters) Len() int {
	return len(p.values)
}

// Apply binds every value of the set to the currently bound shader. Scalars,
// vectors and matrices become uniforms; textures are bound to the slot the
// shader assigns to their name. Values are applied in ascending name order.
//
// A texture value without a texture reference is a precondition violation and panics.
//
// Parameters:
//   - s: the bound shader
//   - p: the parameter set to apply
//
// Returns:
//   - error: a *driver.DriverError if the shader rejected a value
func Apply(s driver.Shader, p Parameters) error {
	driver.Require(!driver.IsNil(s), "parameters: Apply requires a non-nil Shader")
	driver.Require(!driver.IsNil(p), "parameters: Apply requires non-nil Parameters")

	for _, name := range p.sorted() {
		v := p.Get(name)
		switch v := v.(type) {
		case Texture:
			if driver.IsNil(v.Ref) {
				panic(&driver.PreconditionError{
					Msg: fmt.Sprintf("parameters: texture %q", name),
					Err: driver.ErrNullTexture,
				})
			}
			if err := s.BindTexture(name, v.Ref); err != nil {
				return driver.Wrap("bind texture "+name, err)
			}
		case Bool, Int, Uint, Float,
			IVec2, IVec3, IVec4,
			UVec2, UVec3, UVec4,
			Vec2, Vec3, Vec4,
			Mat2, Mat3, Mat4:
			if err := s.SetUniform(name, uniform(v)); err != nil {
				return driver.Wrap("set uniform "+name, err)
			}
		default:
			panic(&driver.PreconditionError{Msg: fmt.Sprintf("parameters: unhandled value type %T for %q", v, name)})
		}
	}
	return nil
}
