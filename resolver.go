package tube

import (
	"time"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
	"github.com/go-kit/kit/metrics"
)

const defaultMaxDepth = 32

// Resolver resolves tube names and per job settings against a Configuration.
// The Configuration is never modified, so a Resolver is safe for concurrent use.
type Resolver struct {
	conf      Configuration
	logger    log.Logger
	fallbacks metrics.Counter
	maxDepth  int
}

// NewResolver creates a Resolver backed by conf. A nil conf.RetryDelayFunc is
// replaced with DefaultRetryDelayFunc.
func NewResolver(conf Configuration, opts ...func(*Resolver)) *Resolver {
	if conf.RetryDelayFunc == nil {
		conf.RetryDelayFunc = DefaultRetryDelayFunc
	}
	labels := make(map[string]int, len(conf.PriorityLabels))
	for k, v := range conf.PriorityLabels {
		labels[k] = v
	}
	conf.PriorityLabels = labels

	r := Resolver{
		conf:     conf,
		logger:   log.NewNopLogger(),
		maxDepth: defaultMaxDepth,
	}
	for _, f := range opts {
		f(&r)
	}
	return &r
}

// UseLogger is an option for NewResolver that feeds the resolver with a Logger of choice.
func UseLogger(logger log.Logger) func(*Resolver) {
	return func(resolver *Resolver) {
		resolver.logger = logger
	}
}

// UseFallbackCounter is an option for NewResolver that counts how often a
// setting falls back to its configured default. The counter receives a
// "setting" label.
func UseFallbackCounter(counter metrics.Counter) func(*Resolver) {
	return func(resolver *Resolver) {
		resolver.fallbacks = counter
	}
}

// UseMaxDepth is an option for NewResolver that limits how many *JobType
// capabilities are followed before giving up and using the default.
func UseMaxDepth(depth int) func(*Resolver) {
	return func(resolver *Resolver) {
		resolver.maxDepth = depth
	}
}

// Configuration returns a copy of the Configuration backing the resolver.
func (r *Resolver) Configuration() Configuration {
	conf := r.conf
	conf.PriorityLabels = make(map[string]int, len(r.conf.PriorityLabels))
	for k, v := range r.conf.PriorityLabels {
		conf.PriorityLabels[k] = v
	}
	return conf
}

// PriorityLabel looks up a named priority. Unlike ResolvePriority, it reports
// a missing label instead of using the default priority.
func (r *Resolver) PriorityLabel(name string) (int, bool) {
	pri, ok := r.conf.PriorityLabels[name]
	return pri, ok
}

// ResolvePriority resolves the job priority of v. It can be an integer, a
// priority label, a *JobType or nothing.
//
//  resolver.ResolvePriority(1000)    // => 1000
//  resolver.ResolvePriority("high")  // => PriorityLabels["high"]
//  resolver.ResolvePriority(FooJob)  // => FooJob's priority
//  resolver.ResolvePriority(nil)     // => DefaultPriority
//
func (r *Resolver) ResolvePriority(v interface{}) int {
	pri := r.cascade(v, setting{
		name:       "priority",
		capability: func(jt *JobType) interface{} { return jt.Priority },
		literal: func(v interface{}) (interface{}, bool) {
			switch label := v.(type) {
			case string:
				return r.PriorityLabel(label)
			case PriorityLabel:
				return r.PriorityLabel(string(label))
			}
			return integer(v)
		},
	})
	if pri == nil {
		return r.conf.DefaultPriority
	}
	return pri.(int)
}

// ResolveRespondTimeout resolves the number of seconds a worker may hold the job.
func (r *Resolver) ResolveRespondTimeout(v interface{}) int {
	ttr := r.cascade(v, setting{
		name:       "respond_timeout",
		capability: func(jt *JobType) interface{} { return jt.RespondTimeout },
		literal:    seconds,
	})
	if ttr == nil {
		return r.conf.RespondTimeout
	}
	return ttr.(int)
}

// ResolveMaxJobRetries resolves how many times the job is retried before it is buried.
func (r *Resolver) ResolveMaxJobRetries(v interface{}) int {
	retries := r.cascade(v, setting{
		name:       "max_job_retries",
		capability: func(jt *JobType) interface{} { return jt.MaxJobRetries },
		literal:    integer,
	})
	if retries == nil {
		return r.conf.MaxJobRetries
	}
	return retries.(int)
}

// ResolveRetryDelay resolves the minimum number of seconds between retries.
func (r *Resolver) ResolveRetryDelay(v interface{}) int {
	delay := r.cascade(v, setting{
		name:       "retry_delay",
		capability: func(jt *JobType) interface{} { return jt.RetryDelay },
		literal:    seconds,
	})
	if delay == nil {
		return r.conf.RetryDelay
	}
	return delay.(int)
}

// ResolveRetryDelayFunc resolves the function computing the delay of each retry.
func (r *Resolver) ResolveRetryDelayFunc(v interface{}) RetryDelayFunc {
	f := r.cascade(v, setting{
		name:       "retry_delay_func",
		capability: func(jt *JobType) interface{} { return jt.RetryDelayFunc },
		literal: func(v interface{}) (interface{}, bool) {
			switch f := v.(type) {
			case RetryDelayFunc:
				return f, f != nil
			case func(int, int) int:
				return RetryDelayFunc(f), f != nil
			}
			return nil, false
		},
	})
	if f == nil {
		return r.conf.RetryDelayFunc
	}
	return f.(RetryDelayFunc)
}

type setting struct {
	name       string
	capability func(jt *JobType) interface{}
	literal    func(v interface{}) (interface{}, bool)
}

// cascade follows the setting's capability through *JobType values until it
// reaches an accepted literal. It returns nil when the default applies.
func (r *Resolver) cascade(v interface{}, s setting) interface{} {
	for depth := 0; ; depth++ {
		if jt, ok := v.(*JobType); ok && jt != nil {
			if c := s.capability(jt); c != nil {
				if depth >= r.maxDepth {
					_ = level.Warn(r.logger).Log("msg", "capability chain too deep, using default", "setting", s.name, "jobType", jt.Name, "depth", depth)
					r.fallback(s.name)
					return nil
				}
				v = c
				continue
			}
		}
		if lit, ok := s.literal(v); ok {
			return lit
		}
		r.fallback(s.name)
		return nil
	}
}

func (r *Resolver) fallback(name string) {
	if r.fallbacks != nil {
		r.fallbacks.With("setting", name).Add(1)
	}
}

const (
	maxInt = int(^uint(0) >> 1)
	minInt = -maxInt - 1
)

// integer accepts any Go integer that fits in an int.
func integer(v interface{}) (interface{}, bool) {
	switch i := v.(type) {
	case int:
		return i, true
	case int8:
		return int(i), true
	case int16:
		return int(i), true
	case int32:
		return int(i), true
	case int64:
		return signed(i)
	case uint:
		return unsigned(uint64(i))
	case uint8:
		return int(i), true
	case uint16:
		return int(i), true
	case uint32:
		return unsigned(uint64(i))
	case uint64:
		return unsigned(i)
	}
	return nil, false
}

func signed(i int64) (interface{}, bool) {
	if i > int64(maxInt) || i < int64(minInt) {
		return nil, false
	}
	return int(i), true
}

func unsigned(i uint64) (interface{}, bool) {
	if i > uint64(maxInt) {
		return nil, false
	}
	return int(i), true
}

func seconds(v interface{}) (interface{}, bool) {
	if d, ok := v.(time.Duration); ok {
		return int(d / time.Second), true
	}
	return integer(v)
}
