package tube

import (
	"github.com/DoNewsCode/core/config"
	"github.com/DoNewsCode/core/contract"
	"github.com/DoNewsCode/core/di"
	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
	"github.com/go-kit/kit/metrics"
	"github.com/pkg/errors"
)

/*
Providers returns a set of dependencies related to tube resolution. It includes
the Resolver, the Registry and the exported configs.
	Depends On:
		contract.ConfigAccessor
		log.Logger
		FallbackCounter `optional:"true"`
	Provides:
		*Resolver
		*Registry
*/
func Providers(optionFunc ...ProvidersOptionFunc) di.Deps {
	option := &providersOption{}
	for _, f := range optionFunc {
		f(option)
	}
	return []interface{}{
		provideResolver(option),
		provideConfig,
	}
}

// FallbackCounter is an alias used for dependency injection. It counts the
// settings that fell back to their configured default.
type FallbackCounter metrics.Counter

// resolverIn is the injection parameters for provideResolver
type resolverIn struct {
	di.In

	Conf            contract.ConfigAccessor
	Logger          log.Logger
	FallbackCounter FallbackCounter `optional:"true"`
}

// resolverOut is the di output of provideResolver
type resolverOut struct {
	di.Out

	Resolver *Resolver
	Registry *Registry
}

func (r resolverOut) ModuleSentinel() {}

func (r resolverOut) Module() interface{} { return New(r.Resolver, r.Registry) }

// provideResolver is a provider for *Resolver and *Registry.
func provideResolver(option *providersOption) func(p resolverIn) (resolverOut, error) {
	return func(p resolverIn) (resolverOut, error) {
		conf, err := loadConfiguration(p.Conf)
		if err != nil {
			_ = level.Warn(p.Logger).Log("err", err)
		}
		if option.retryDelayFunc != nil {
			conf.RetryDelayFunc = option.retryDelayFunc
		}

		opts := []func(*Resolver){UseLogger(p.Logger)}
		if p.FallbackCounter != nil {
			opts = append(opts, UseFallbackCounter(p.FallbackCounter))
		}
		opts = append(opts, option.resolverOptions...)

		registry := option.registry
		if registry == nil {
			registry = &Registry{}
		}
		return resolverOut{
			Resolver: NewResolver(conf, opts...),
			Registry: registry,
		}, nil
	}
}

// loadConfiguration overlays the "tube" section of the config on top of
// DefaultConfiguration. The defaults are returned along with any error.
func loadConfiguration(accessor contract.ConfigAccessor) (Configuration, error) {
	conf := DefaultConfiguration()
	if err := accessor.Unmarshal("tube", &conf); err != nil {
		return DefaultConfiguration(), errors.Wrap(err, "unable to unmarshal tube configuration, using defaults")
	}
	return conf, nil
}

type configOut struct {
	di.Out

	Config []config.ExportedConfig `group:"config,flatten"`
}

func provideConfig() configOut {
	def := DefaultConfiguration()
	configs := []config.ExportedConfig{{
		Owner: "tube",
		Data: map[string]interface{}{
			"tube": map[string]interface{}{
				"tubeNamespace":      def.TubeNamespace,
				"namespaceSeparator": def.NamespaceSeparator,
				"primaryQueue":       def.PrimaryQueue,
				"priorityLabels":     def.PriorityLabels,
				"defaultPriority":    def.DefaultPriority,
				"respondTimeout":     def.RespondTimeout,
				"maxJobRetries":      def.MaxJobRetries,
				"retryDelay":         def.RetryDelay,
			},
		},
	}}
	return configOut{Config: configs}
}
