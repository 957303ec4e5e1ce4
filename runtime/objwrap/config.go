package objwrap

import (
	"github.com/rs/zerolog"
	"github.com/xhd2015/mockwire/runtime/lookup"
)

type Config struct {
	Logger zerolog.Logger
	// ResolveMethod is the method a deferred producer type
	// exposes to produce its value, defaults to Get
	ResolveMethod string
	// Registry supplies constructors and factories,
	// defaults to the package registry
	Registry *Registry
}

type Option func(cfg *Config)

func WithLogger(logger zerolog.Logger) Option {
	return func(cfg *Config) {
		cfg.Logger = logger
	}
}

func WithResolveMethod(name string) Option {
	return func(cfg *Config) {
		cfg.ResolveMethod = name
	}
}

func WithRegistry(registry *Registry) Option {
	return func(cfg *Config) {
		cfg.Registry = registry
	}
}

func newConfig(opts []Option) *Config {
	cfg := &Config{
		Logger:        zerolog.Nop(),
		ResolveMethod: lookup.DefaultResolveMethod,
		Registry:      defaultRegistry,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.ResolveMethod == "" {
		cfg.ResolveMethod = lookup.DefaultResolveMethod
	}
	if cfg.Registry == nil {
		cfg.Registry = defaultRegistry
	}
	return cfg
}
