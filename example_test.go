package tube_test

import (
	"errors"
	"fmt"
	"time"

	tube "github.com/DoNewsCode/core-tube"
)

func Example() {
	welcome := tube.NewJobType("Mailer::Welcome",
		tube.OnQueue("mail"),
		tube.Priority("high"),
		tube.RespondTimeout(30*time.Second),
		tube.MaxJobRetries(5),
	)
	resolver := tube.NewResolver(tube.DefaultConfiguration())

	fmt.Println(resolver.ExpandTubeName(welcome))
	fmt.Println(resolver.ResolvePriority(welcome))
	fmt.Println(resolver.ResolveRespondTimeout(welcome))
	fmt.Println(resolver.ResolveMaxJobRetries(welcome))
	fmt.Println(resolver.ResolveRetryDelay(welcome))
	// Output:
	// backburner.worker.queue.mail
	// 10
	// 30
	// 5
	// 5
}

func Example_inheritance() {
	mailer := tube.NewJobType("Mailer", tube.Priority("low"), tube.RetryDelay(time.Minute))
	goodbye := tube.NewJobType("Mailer::Goodbye",
		tube.OnQueue(func(jt *tube.JobType) string { return jt.Name }),
		tube.Priority(mailer),
		tube.RetryDelay(mailer),
	)
	settings := tube.NewResolver(tube.DefaultConfiguration()).Settings(goodbye)

	fmt.Println(settings.Tube)
	fmt.Println(settings.Priority)
	fmt.Println(settings.NextRetryDelay(0), settings.NextRetryDelay(2))
	// Output:
	// backburner.worker.queue.mailer/goodbye
	// 200
	// 60 68
}

func ExampleRegistry_ResolveType() {
	registry, _ := tube.NewRegistry(tube.NewJobType("NestedDemo::TestJob"))

	jt, _ := registry.ResolveType("NestedDemo::TestJob")
	fmt.Println(jt.Name)

	_, err := registry.ResolveType("NestedDemo::Missing")
	fmt.Println(errors.Is(err, tube.ErrNotFound))
	// Output:
	// NestedDemo::TestJob
	// true
}

func ExampleDasherize() {
	fmt.Println(tube.Dasherize("HTTPJobName"))
	fmt.Println(tube.Classify("job-name"))
	// Output:
	// http-job-name
	// JobName
}
