package tube

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

// ErrNotFound is matched by every *NotFoundError.
var ErrNotFound = errors.New("job type not found")

// NotFoundError reports the first segment of an identifier that is not
// defined in the Registry.
type NotFoundError struct {
	Identifier string
	Segment    string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: %s is undefined in %s", ErrNotFound, e.Segment, e.Identifier)
}

// Is makes errors.Is(err, ErrNotFound) true.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

type namespace struct {
	jobType  *JobType
	children map[string]*namespace
}

func (n *namespace) child(name string) (*namespace, bool) {
	c, ok := n.children[name]
	return c, ok
}

// Registry is a hierarchy of job types keyed by "::" separated names. It is
// normally populated once at startup. Registry is safe for concurrent use.
type Registry struct {
	rwLock sync.RWMutex
	root   namespace
	size   int
}

// NewRegistry creates an empty Registry, optionally seeded with job types.
func NewRegistry(jobTypes ...*JobType) (*Registry, error) {
	r := &Registry{}
	for _, jt := range jobTypes {
		if err := r.Register(jt); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register places the job type at the path named by jt.Name, creating any
// enclosing namespaces.
func (r *Registry) Register(jt *JobType) error {
	if jt == nil || jt.Name == "" {
		return errors.New("cannot register a job type without name")
	}
	names := splitNamespace(jt.Name)
	for _, name := range names {
		if name == "" {
			return errors.Errorf("invalid job type name %q", jt.Name)
		}
	}

	r.rwLock.Lock()
	defer r.rwLock.Unlock()

	current := &r.root
	for _, name := range names {
		next, ok := current.child(name)
		if !ok {
			if current.children == nil {
				current.children = make(map[string]*namespace)
			}
			next = &namespace{}
			current.children[name] = next
		}
		current = next
	}
	if current.jobType != nil {
		return errors.Errorf("job type %s already registered", jt.Name)
	}
	current.jobType = jt
	r.size++
	return nil
}

// ResolveType finds the job type named by identifier. Dashed identifiers such
// as "welcome-mail" are classified first. A leading "::" is allowed.
//
//  registry.ResolveType("Mailer")           // => Mailer
//  registry.ResolveType("Mailer::Welcome")  // => Mailer::Welcome
//
// A *NotFoundError naming the first undefined segment is returned otherwise.
func (r *Registry) ResolveType(identifier string) (*JobType, error) {
	normalized := identifier
	if strings.Contains(normalized, "-") {
		normalized = Classify(normalized)
	}
	names := splitNamespace(normalized)

	r.rwLock.RLock()
	defer r.rwLock.RUnlock()

	current := &r.root
	for _, name := range names {
		next, ok := current.child(name)
		if !ok {
			return nil, &NotFoundError{Identifier: identifier, Segment: name}
		}
		current = next
	}
	if current.jobType == nil {
		segment := ""
		if len(names) > 0 {
			segment = names[len(names)-1]
		}
		return nil, &NotFoundError{Identifier: identifier, Segment: segment}
	}
	return current.jobType, nil
}

// JobTypes returns all registered job types sorted by name.
func (r *Registry) JobTypes() []*JobType {
	r.rwLock.RLock()
	defer r.rwLock.RUnlock()

	jobTypes := make([]*JobType, 0, r.size)
	var walk func(n *namespace)
	walk = func(n *namespace) {
		if n.jobType != nil {
			jobTypes = append(jobTypes, n.jobType)
		}
		for _, c := range n.children {
			walk(c)
		}
	}
	walk(&r.root)
	sort.Slice(jobTypes, func(i, j int) bool {
		return jobTypes[i].Name < jobTypes[j].Name
	})
	return jobTypes
}

func splitNamespace(name string) []string {
	names := strings.Split(name, "::")
	if len(names) > 0 && names[0] == "" {
		names = names[1:]
	}
	return names
}
