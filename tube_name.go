package tube

import (
	"fmt"
	"strings"
)

// ExpandTubeName computes the full tube name for a job descriptor by adding
// the configured namespace prefix. The descriptor can be a literal name, a
// func() string or a *JobType. Anything after the first ":" is dropped.
//
//  resolver.ExpandTubeName("foo_with_settings:3:100:6")  // => <prefix>.foo-with-settings
//  resolver.ExpandTubeName("foo")                        // => <prefix>.foo
//  resolver.ExpandTubeName(FooJob)                       // => <prefix>.<FooJob's queue>
//
// Expanding an already expanded name returns it unchanged.
func (r *Resolver) ExpandTubeName(descriptor interface{}) string {
	prefix := r.conf.TubeNamespace
	separator := r.conf.NamespaceSeparator

	name := Dasherize(r.queueName(descriptor))
	if strings.HasPrefix(name, prefix) {
		name = strings.TrimPrefix(name, prefix)
	} else {
		name = strings.TrimPrefix(name, Dasherize(prefix))
	}
	expanded := strings.TrimSuffix(prefix, ".") + separator + name
	if separator != "" {
		doubled := separator + separator
		for strings.Contains(expanded, doubled) {
			expanded = strings.ReplaceAll(expanded, doubled, separator)
		}
	}
	return strings.SplitN(expanded, ":", 2)[0]
}

func (r *Resolver) queueName(descriptor interface{}) string {
	switch d := descriptor.(type) {
	case nil:
		return ""
	case string:
		return d
	case *JobType:
		if d == nil {
			return ""
		}
		if d.Queue == nil {
			return r.conf.PrimaryQueue
		}
		switch q := d.Queue.(type) {
		case func(*JobType) string:
			if q == nil {
				return r.conf.PrimaryQueue
			}
			return q(d)
		case func() string:
			if q == nil {
				return r.conf.PrimaryQueue
			}
			return q()
		case string:
			return q
		case fmt.Stringer:
			return q.String()
		default:
			return fmt.Sprint(q)
		}
	case func() string:
		if d == nil {
			return ""
		}
		return d()
	case fmt.Stringer:
		return d.String()
	default:
		return fmt.Sprint(d)
	}
}
