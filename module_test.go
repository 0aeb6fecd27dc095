package tube

import (
	"bytes"
	"testing"

	"github.com/go-kit/kit/log"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setUpCommand(t *testing.T, logger log.Logger) (*cobra.Command, *bytes.Buffer) {
	t.Helper()
	registry, err := NewRegistry(
		NewJobType("Mailer::Welcome", OnQueue("mail"), Priority("high"), MaxJobRetries(2)),
		NewJobType("Reports::Daily"),
	)
	require.NoError(t, err)

	root := &cobra.Command{Use: "app", SilenceErrors: true, SilenceUsage: true}
	New(NewResolver(testConfiguration(), UseLogger(logger)), registry).ProvideCommand(root)

	var out bytes.Buffer
	root.SetOut(&out)
	return root, &out
}

func TestModule_expand(t *testing.T) {
	cases := []struct {
		name     string
		args     []string
		expected string
	}{
		{"literal", []string{"tube", "expand", "foo", "BarJob"}, "p.foo\np.bar-job\n"},
		{"job type", []string{"tube", "expand", "-j", "Mailer::Welcome", "Reports::Daily"}, "p.mail\np.backburner-jobs\n"},
	}
	for _, cc := range cases {
		c := cc
		t.Run(c.name, func(t *testing.T) {
			root, out := setUpCommand(t, log.NewNopLogger())
			root.SetArgs(c.args)
			require.NoError(t, root.Execute())
			assert.Equal(t, c.expected, out.String())
		})
	}
}

func TestModule_settings(t *testing.T) {
	root, out := setUpCommand(t, log.NewNopLogger())
	root.SetArgs([]string{"tube", "settings", "Mailer::Welcome", "--retries", "2"})
	require.NoError(t, root.Execute())

	assert.Contains(t, out.String(), "tube:            p.mail\n")
	assert.Contains(t, out.String(), "priority:        10\n")
	assert.Contains(t, out.String(), "respond timeout: 120s\n")
	assert.Contains(t, out.String(), "max job retries: 2\n")
	assert.Contains(t, out.String(), "retry delays:    5s, 6s\n")
}

func TestModule_settings_notFound(t *testing.T) {
	var logs bytes.Buffer
	root, _ := setUpCommand(t, log.NewLogfmtLogger(&logs))
	root.SetArgs([]string{"tube", "settings", "Mailer::Goodbye"})

	err := root.Execute()
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Contains(t, logs.String(), "Exception *tube.NotFoundError")
}

func TestModule_list(t *testing.T) {
	root, out := setUpCommand(t, log.NewNopLogger())
	root.SetArgs([]string{"tube", "list"})
	require.NoError(t, root.Execute())
	assert.Equal(t, "Mailer::Welcome\tp.mail\nReports::Daily\tp.backburner-jobs\n", out.String())
}
