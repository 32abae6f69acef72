package object

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/hashicorp/go-multierror"
)

// MethodFunc is the type-erased signature of every dispatched operation.
type MethodFunc func(ctx context.Context, self Object, args ...Object) (Object, error)

// ConstructorFunc builds a new instance of a class.
type ConstructorFunc func(ctx context.Context, args ...Object) (Object, error)

// Method is a named operation bound into a class table.
type Method struct {
	spec     AttrSpec
	fullName string
	fn       MethodFunc
}

// Spec returns the method's specification.
func (m *Method) Spec() AttrSpec {
	return m.spec
}

// Name returns the fully qualified method name, e.g. "bytes.repr".
func (m *Method) Name() string {
	return m.fullName
}

// Call invokes the method after checking the argument count.
func (m *Method) Call(ctx context.Context, self Object, args ...Object) (Object, error) {
	min := len(m.spec.Args)
	max := min + len(m.spec.OptionalArgs)
	if len(args) < min || len(args) > max {
		return nil, argsError(m.fullName, min, max, len(args))
	}
	return m.fn(ctx, self, args...)
}

// Class describes a runtime type: its name, documentation, class-side
// constructor and the table of named operations its instances support.
//
// A class is populated once during Bootstrap and then sealed. Lookups on a
// class that has not been sealed fail, and registering on a sealed class
// panics, so the table never changes while it is being read.
type Class struct {
	name        Type
	doc         string
	methods     map[string]*Method
	specs       []AttrSpec
	constructor *Method
	required    []string
	sealed      atomic.Bool
}

// NewClass creates an empty, unsealed class.
func NewClass(name Type, doc string) *Class {
	return &Class{
		name:    name,
		doc:     doc,
		methods: make(map[string]*Method),
	}
}

// Name returns the type name of the class.
func (c *Class) Name() Type {
	return c.name
}

// Doc returns the class description.
func (c *Class) Doc() string {
	return c.doc
}

// String implements the Stringer interface.
func (c *Class) String() string {
	return string(c.name)
}

// Sealed reports whether registration has completed.
func (c *Class) Sealed() bool {
	return c.sealed.Load()
}

// Seal ends registration.
func (c *Class) Seal() {
	c.sealed.Store(true)
}

// Lookup finds an operation by name.
func (c *Class) Lookup(name string) (*Method, bool) {
	if !c.sealed.Load() {
		return nil, false
	}
	m, ok := c.methods[name]
	return m, ok
}

// HasMethod returns true if the class defines the named operation.
func (c *Class) HasMethod(name string) bool {
	_, ok := c.Lookup(name)
	return ok
}

// Constructor returns the class-side constructor, if one is registered.
func (c *Class) Constructor() (*Method, bool) {
	if !c.sealed.Load() || c.constructor == nil {
		return nil, false
	}
	return c.constructor, true
}

// Construct calls the class-side constructor.
func (c *Class) Construct(ctx context.Context, args ...Object) (Object, error) {
	m, ok := c.Constructor()
	if !ok {
		return nil, TypeErrorf("cannot create '%s' instances", c.name)
	}
	return m.Call(ctx, nil, args...)
}

// Specs returns a copy of all operation specifications in registration order.
func (c *Class) Specs() []AttrSpec {
	specs := make([]AttrSpec, len(c.specs))
	copy(specs, c.specs)
	return specs
}

// TypeSpec describes the class for documentation and tooling.
func (c *Class) TypeSpec() TypeSpec {
	spec := TypeSpec{
		Name:  string(c.name),
		Doc:   c.doc,
		Attrs: c.Specs(),
	}
	if c.constructor != nil {
		ctor := c.constructor.spec
		spec.Constructor = &ctor
	}
	return spec
}

// SetConstructor registers the class-side constructor.
// Panics if the class is sealed or already has a constructor.
func (c *Class) SetConstructor(spec AttrSpec, fn ConstructorFunc) {
	c.mustBeOpen(spec.Name)
	if c.constructor != nil {
		panic(fmt.Sprintf("%s: constructor already registered", c.name))
	}
	c.constructor = &Method{
		spec:     spec,
		fullName: string(c.name) + "." + spec.Name,
		fn: func(ctx context.Context, _ Object, args ...Object) (Object, error) {
			return fn(ctx, args...)
		},
	}
}

// Require declares operations that Validate insists on. Use the name
// "new" to require a constructor.
func (c *Class) Require(names ...string) {
	c.required = append(c.required, names...)
}

// Validate returns an error listing every required operation the class
// does not define.
func (c *Class) Validate() error {
	var result *multierror.Error
	for _, name := range c.required {
		if name == "new" {
			if c.constructor == nil {
				result = multierror.Append(result, fmt.Errorf("%s: missing constructor", c.name))
			}
			continue
		}
		if _, ok := c.methods[name]; !ok {
			result = multierror.Append(result, fmt.Errorf("%s: missing operation %q", c.name, name))
		}
	}
	return result.ErrorOrNil()
}

func (c *Class) addMethod(m *Method) {
	c.mustBeOpen(m.spec.Name)
	if _, exists := c.methods[m.spec.Name]; exists {
		panic(fmt.Sprintf("%s: method %q already registered", c.name, m.spec.Name))
	}
	c.methods[m.spec.Name] = m
	c.specs = append(c.specs, m.spec)
}

func (c *Class) mustBeOpen(name string) {
	if c.sealed.Load() {
		panic(fmt.Sprintf("%s: cannot register %q on a sealed class", c.name, name))
	}
}

// ClassTable manages registered classes by name.
// It's thread-safe for concurrent access.
type ClassTable struct {
	mu      sync.RWMutex
	classes map[Type]*Class
}

// NewClassTable creates a new empty class table.
func NewClassTable() *ClassTable {
	return &ClassTable{
		classes: make(map[Type]*Class),
	}
}

// Register adds a class to the table.
// Returns the previous class with this name, or nil.
func (ct *ClassTable) Register(c *Class) *Class {
	ct.mu.Lock()
	defer ct.mu.Unlock()

	old := ct.classes[c.name]
	ct.classes[c.name] = c
	return old
}

// Lookup finds a class by name.
func (ct *ClassTable) Lookup(name Type) (*Class, bool) {
	ct.mu.RLock()
	defer ct.mu.RUnlock()
	c, ok := ct.classes[name]
	return c, ok
}

// Has returns true if a class with this name is registered.
func (ct *ClassTable) Has(name Type) bool {
	_, ok := ct.Lookup(name)
	return ok
}

// All returns all registered classes sorted by name.
func (ct *ClassTable) All() []*Class {
	ct.mu.RLock()
	defer ct.mu.RUnlock()

	result := make([]*Class, 0, len(ct.classes))
	for _, c := range ct.classes {
		result = append(result, c)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].name < result[j].name
	})
	return result
}

// Len returns the number of registered classes.
func (ct *ClassTable) Len() int {
	ct.mu.RLock()
	defer ct.mu.RUnlock()
	return len(ct.classes)
}
