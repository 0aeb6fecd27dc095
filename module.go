package tube

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-kit/kit/log/level"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// Module exposes the "tube" command for inspecting how job types are routed
// and configured.
type Module struct {
	resolver *Resolver
	registry *Registry
}

// New creates a Module. It is usually provided automatically by Providers.
func New(resolver *Resolver, registry *Registry) Module {
	if registry == nil {
		registry = &Registry{}
	}
	return Module{resolver: resolver, registry: registry}
}

// ProvideCommand adds the tube command to the root command.
func (m Module) ProvideCommand(command *cobra.Command) {
	tubeCmd := &cobra.Command{
		Use:   "tube",
		Short: "Inspect tube names and job settings",
	}
	tubeCmd.AddCommand(m.expandCommand(), m.settingsCommand(), m.listCommand())
	command.AddCommand(tubeCmd)
}

func (m Module) expandCommand() *cobra.Command {
	var asJobType bool
	cmd := &cobra.Command{
		Use:   "expand NAME...",
		Short: "Print the fully qualified tube name for each argument",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				var descriptor interface{} = arg
				if asJobType {
					jt, err := m.resolveType(arg)
					if err != nil {
						return err
					}
					descriptor = jt
				}
				fmt.Fprintln(cmd.OutOrStdout(), m.resolver.ExpandTubeName(descriptor))
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&asJobType, "job", "j", false, "treat arguments as registered job type names")
	return cmd
}

func (m Module) settingsCommand() *cobra.Command {
	var retries int
	cmd := &cobra.Command{
		Use:   "settings JOB_TYPE",
		Short: "Print the resolved settings of a registered job type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			jt, err := m.resolveType(args[0])
			if err != nil {
				return err
			}
			printSettings(cmd.OutOrStdout(), jt.Name, m.resolver.Settings(jt), retries)
			return nil
		},
	}
	cmd.Flags().IntVarP(&retries, "retries", "r", 3, "number of retry delays to print")
	return cmd
}

func (m Module) listCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered job types and their tubes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, jt := range m.registry.JobTypes() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", jt.Name, m.resolver.ExpandTubeName(jt))
			}
			return nil
		},
	}
}

func (m Module) resolveType(identifier string) (*JobType, error) {
	jt, err := m.registry.ResolveType(identifier)
	if err != nil {
		err = errors.WithStack(err)
		_ = level.Error(m.resolver.logger).Log("err", ExceptionMessage(err))
		return nil, err
	}
	return jt, nil
}

func printSettings(w io.Writer, name string, s Settings, retries int) {
	fmt.Fprintf(w, "job type:        %s\n", name)
	fmt.Fprintf(w, "tube:            %s\n", s.Tube)
	fmt.Fprintf(w, "priority:        %d\n", s.Priority)
	fmt.Fprintf(w, "respond timeout: %ds\n", s.RespondTimeout)
	fmt.Fprintf(w, "max job retries: %d\n", s.MaxJobRetries)
	fmt.Fprintf(w, "retry delay:     %ds\n", s.RetryDelay)
	if retries <= 0 {
		return
	}
	delays := make([]string, 0, retries)
	for i := 0; i < retries; i++ {
		delays = append(delays, fmt.Sprintf("%ds", s.NextRetryDelay(i)))
	}
	fmt.Fprintf(w, "retry delays:    %s\n", strings.Join(delays, ", "))
}
