package tube

type providersOption struct {
	registry        *Registry
	retryDelayFunc  RetryDelayFunc
	resolverOptions []func(*Resolver)
}

// ProvidersOptionFunc is the type of functional providersOption for Providers. Use this type to change how Providers work.
type ProvidersOptionFunc func(options *providersOption)

// WithRegistry instructs the Providers to serve the given Registry instead of
// an empty one. The registry is what the tube command resolves job types from.
func WithRegistry(registry *Registry) ProvidersOptionFunc {
	return func(options *providersOption) {
		options.registry = registry
	}
}

// WithRetryDelayFunc replaces DefaultRetryDelayFunc in the loaded
// configuration. Functions can't be expressed in config files, so this is the
// only way to change the default.
func WithRetryDelayFunc(f RetryDelayFunc) ProvidersOptionFunc {
	return func(options *providersOption) {
		options.retryDelayFunc = f
	}
}

// WithResolverOptions passes extra options, such as UseMaxDepth, to NewResolver.
func WithResolverOptions(opts ...func(*Resolver)) ProvidersOptionFunc {
	return func(options *providersOption) {
		options.resolverOptions = append(options.resolverOptions, opts...)
	}
}
