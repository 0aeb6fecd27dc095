package tube

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type stringer string

func (s stringer) String() string { return string(s) }

func TestResolver_ExpandTubeName(t *testing.T) {
	resolver := NewResolver(testConfiguration())

	cases := []struct {
		name     string
		tube     interface{}
		expected string
	}{
		{"literal", "foo", "p.foo"},
		{"settings suffix", "foo_with_settings:3:100:6", "p.foo-with-settings"},
		{"camel case", "FooJob", "p.foo-job"},
		{"already prefixed", "p.foo", "p.foo"},
		{"repeated separators", "..foo", "p.foo"},
		{"name producer", func() string { return "FooBar" }, "p.foo-bar"},
		{"job type without queue", NewJobType("NestedDemo::TestJobA"), "p.backburner-jobs"},
		{"job type with queue", NewJobType("NestedDemo::TestJobB", OnQueue("nested/job")), "p.nested/job"},
		{"job type with queue func", NewJobType("NestedDemo::TestJobB", OnQueue(func(jt *JobType) string { return jt.Name })), "p.nested-demo/test-job-b"},
		{"job type with name producer", NewJobType("Foo", OnQueue(func() string { return "bar" })), "p.bar"},
		{"job type with stringer queue", NewJobType("Foo", OnQueue(stringer("baz"))), "p.baz"},
		{"stringer", stringer("SomeQueue"), "p.some-queue"},
		{"number", 42, "p.42"},
		{"nil", nil, "p."},
		{"nil name producer", (func() string)(nil), "p."},
		{"job type with nil queue func", NewJobType("Foo", OnQueue((func(*JobType) string)(nil))), "p.backburner-jobs"},
		{"job type with nil name producer", NewJobType("Foo", OnQueue((func() string)(nil))), "p.backburner-jobs"},
	}
	for _, cc := range cases {
		c := cc
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.expected, resolver.ExpandTubeName(c.tube))
		})
	}
}

func TestResolver_ExpandTubeName_namespaces(t *testing.T) {
	cases := []struct {
		name      string
		namespace string
		separator string
		tube      string
		expected  string
	}{
		{"default", "backburner.worker.queue", ".", "foo", "backburner.worker.queue.foo"},
		{"trailing dot", "p.", ".", "foo", "p.foo"},
		{"dash separator", "app", "-", "FooJob", "app-foo-job"},
		{"colon separator", "app", ":", "foo", "app"},
		{"empty separator", "app", "", "foo", "appfoo"},
		{"empty namespace", "", ".", "foo", ".foo"},
		{"underscored namespace", "my_app", ".", "foo", "my_app.foo"},
		{"underscored namespace already prefixed", "my_app", ".", "my_app.foo", "my_app.foo"},
	}
	for _, cc := range cases {
		c := cc
		t.Run(c.name, func(t *testing.T) {
			conf := DefaultConfiguration()
			conf.TubeNamespace = c.namespace
			conf.NamespaceSeparator = c.separator
			assert.Equal(t, c.expected, NewResolver(conf).ExpandTubeName(c.tube))
		})
	}
}

func TestResolver_ExpandTubeName_idempotent(t *testing.T) {
	underscored := DefaultConfiguration()
	underscored.TubeNamespace = "my_app"
	for _, conf := range []Configuration{testConfiguration(), DefaultConfiguration(), underscored} {
		resolver := NewResolver(conf)
		for _, tube := range []interface{}{
			"foo",
			"FooJob",
			"foo_with_settings:3:100:6",
			NewJobType("Foo"),
			NewJobType("Foo", OnQueue("mailer/welcome")),
		} {
			once := resolver.ExpandTubeName(tube)
			assert.Equal(t, once, resolver.ExpandTubeName(once), "expanding %v", tube)
		}
	}
}
