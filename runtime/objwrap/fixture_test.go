package objwrap

import "errors"

var errNoEngine = errors.New("no engine")

type Engine struct {
	Power int
}

type TurboEngine struct {
	Engine
	Boost int
}

type Wheel struct {
	Size int
}

type Gauge struct{}

type Radio struct{}

type Car struct {
	engine *Engine
	wheel  Wheel
}

func (c *Car) Engine() *Engine {
	return c.engine
}

type Builder struct {
	engine *Engine
	wheel  Wheel
	radio  *Radio
}

func (b *Builder) Engine(e *Engine) *Builder {
	b.engine = e
	return b
}

func (b *Builder) Wheel(w Wheel) {
	b.wheel = w
}

func (b *Builder) Radio(r *Radio) *Builder {
	panic("radio not supported")
}

func (b *Builder) Build() *Car {
	return &Car{engine: b.engine, wheel: b.wheel}
}

func (b *Builder) Validate() (Wheel, error) {
	if b.engine == nil {
		return Wheel{}, errNoEngine
	}
	return b.wheel, nil
}

// ImmutableBuilder returns a new builder from every setter.
type ImmutableBuilder struct {
	wheel Wheel
}

func (b ImmutableBuilder) Wheel(w Wheel) ImmutableBuilder {
	b.wheel = w
	return b
}

type Provider[T any] interface {
	Get() T
}

type Resolver[T any] interface {
	Resolve() T
}

type staticProvider[T any] struct {
	v       T
	explode bool
}

func (c *staticProvider[T]) Get() T {
	if c.explode {
		panic("provider exploded")
	}
	return c.v
}

func (c *staticProvider[T]) Resolve() T {
	return c.v
}

// Lazy is a producer declared as a named generic func.
type Lazy[T any] func() T

// Ref keeps its value untyped, T tells what it holds.
type Ref[T any] struct {
	v any
}

func (c Ref[T]) Get() any {
	return c.v
}

type lazyHolder struct {
	wheel  Lazy[*Wheel]
	engine Ref[*Engine]
	gauge  Ref[*Gauge]
}

type Component struct {
	engine   *Engine
	wheel    Wheel
	wheels   Provider[*Wheel]
	gauge    func() (*Gauge, error)
	radio    Resolver[*Radio]
	Exported int

	name  string `inject:""`
	Radio *Radio `inject:"radio"`
}

type Catalog struct {
	items []string
}

func (Catalog) Default() *Catalog {
	return &Catalog{items: []string{"default"}}
}

func (Catalog) Broken() (*Catalog, error) {
	return nil, errors.New("broken catalog")
}

func (Catalog) Named(name string) *Catalog {
	return &Catalog{items: []string{name}}
}

func (c *Catalog) Reset() *Catalog {
	c.items = nil
	return c
}

type Unbuildable interface {
	Build() *Car
}
