package lookup

import "errors"

type Engine struct {
	Power int
}

type TurboEngine struct {
	Engine
	Boost int
}

type ElectricEngine struct {
	*Engine
	Cells int
}

type Wheel struct{}

type Car struct {
	engine *Engine
	wheels []Wheel
}

type Provider[T any] interface {
	Get() T
}

type Lazy[T any] struct {
	fn func() (T, error)
}

func (c *Lazy[T]) Get() (T, error) {
	return c.fn()
}

// Thunk is a producer declared as a named generic func.
type Thunk[T any] func() T

// Ref stores its value untyped, T only tags what it holds.
type Ref[T any] struct {
	v any
}

func (c Ref[T]) Get() any {
	return c.v
}

type Holder struct {
	wheel Thunk[*Wheel]
	car   Ref[*Car]
	count Ref[int]
	other Ref[Engine]
}

type Pair[K any, V any] struct {
	k K
	v V
}

func (c Pair[K, V]) Get() V {
	return c.v
}

type Repository struct{}

func (c Repository) Get() *Engine {
	return nil
}

type Component struct {
	name     string
	engine   *Engine
	spare    *Engine
	wheel    Wheel
	engineFn func() *Engine
	provider Provider[*Wheel]
	lazy     *Lazy[string]
	pair     Pair[int, *Car]
	repo     Repository
	failing  func() (int, error)
	multi    func() (int, string)
	withArgs func(n int) *Car

	tagged   string `inject:""`
	untagged string
	alsoTag  int `inject:"named" other:"also"`
	jsonOnly int `other:"j"`
}

type Builder struct {
	engine *Engine
	wheel  Wheel
}

func (b *Builder) Engine(e *Engine) *Builder {
	b.engine = e
	return b
}

func (b *Builder) Wheel(w Wheel) {
	b.wheel = w
}

func (b *Builder) Build() *Car {
	return &Car{engine: b.engine}
}

func (b *Builder) BuildChecked() (*Car, error) {
	if b.engine == nil {
		return nil, errors.New("no engine")
	}
	return b.Build(), nil
}

func (b *Builder) Describe(verbose bool) string {
	return "builder"
}

func (b *Builder) Options(opts ...string) {
}

type ValueBuilder struct {
	wheel Wheel
}

func (b ValueBuilder) Wheel(w Wheel) ValueBuilder {
	b.wheel = w
	return b
}

type Looped struct {
	*Looped
}
