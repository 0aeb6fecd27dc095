package tube

import (
	"path"
	"reflect"
)

// JobType describes a kind of job and the settings it overrides.
//
// Every field except Name is an optional capability. A nil field means the
// capability is absent and the Resolver falls back to the Configuration. A
// non-nil field is resolved again, so it may hold a literal, a function or
// another *JobType to inherit from:
//
//  base := tube.NewJobType("Mailer", tube.Priority("high"))
//  welcome := tube.NewJobType("Mailer::Welcome", tube.Priority(base))
//
type JobType struct {
	// Name is the "::" separated name the job type is registered under.
	Name string
	// Queue is a string, a func(*JobType) string, a func() string or a fmt.Stringer.
	Queue interface{}
	// Priority is an integer, a label (string or PriorityLabel) or a *JobType.
	Priority interface{}
	// RespondTimeout is an integer number of seconds, a time.Duration or a *JobType.
	RespondTimeout interface{}
	// MaxJobRetries is an integer or a *JobType.
	MaxJobRetries interface{}
	// RetryDelay is an integer number of seconds, a time.Duration or a *JobType.
	RetryDelay interface{}
	// RetryDelayFunc is a RetryDelayFunc, a func(int, int) int or a *JobType.
	RetryDelayFunc interface{}
}

// PriorityLabel is a named priority looked up in Configuration.PriorityLabels.
type PriorityLabel string

// JobTypeOption defines some options for NewJobType.
type JobTypeOption func(jt *JobType)

// NewJobType creates a JobType with the given name and capabilities.
func NewJobType(name string, opts ...JobTypeOption) *JobType {
	jt := &JobType{Name: name}
	for _, f := range opts {
		f(jt)
	}
	return jt
}

// JobTypeOf creates a JobType named after the Go type of v. The last element
// of the package path becomes the namespace, so a mailer.WelcomeJob value is
// named "Mailer::WelcomeJob". Pointers are dereferenced.
func JobTypeOf(v interface{}, opts ...JobTypeOption) *JobType {
	return NewJobType(typeName(reflect.TypeOf(v)), opts...)
}

func typeName(t reflect.Type) string {
	if t == nil {
		return ""
	}
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Name() == "" {
		return t.String()
	}
	if t.PkgPath() == "" {
		return Classify(t.Name())
	}
	return Classify(path.Base(t.PkgPath())) + "::" + t.Name()
}

// OnQueue is a JobTypeOption that sets the tube the job is enqueued to. The
// queue can be a literal name or a function computing it.
func OnQueue(queue interface{}) JobTypeOption {
	return func(jt *JobType) {
		jt.Queue = queue
	}
}

// Priority is a JobTypeOption that overrides the default priority.
func Priority(priority interface{}) JobTypeOption {
	return func(jt *JobType) {
		jt.Priority = priority
	}
}

// RespondTimeout is a JobTypeOption that overrides the time a worker may hold the job.
func RespondTimeout(timeout interface{}) JobTypeOption {
	return func(jt *JobType) {
		jt.RespondTimeout = timeout
	}
}

// MaxJobRetries is a JobTypeOption that overrides how many times the job is retried.
func MaxJobRetries(retries interface{}) JobTypeOption {
	return func(jt *JobType) {
		jt.MaxJobRetries = retries
	}
}

// RetryDelay is a JobTypeOption that overrides the minimum delay between retries.
func RetryDelay(delay interface{}) JobTypeOption {
	return func(jt *JobType) {
		jt.RetryDelay = delay
	}
}

// RetryDelayFunction is a JobTypeOption that overrides how retry delays grow.
func RetryDelayFunction(f interface{}) JobTypeOption {
	return func(jt *JobType) {
		jt.RetryDelayFunc = f
	}
}

// String implements fmt.Stringer.
func (jt *JobType) String() string {
	if jt == nil {
		return ""
	}
	return jt.Name
}
