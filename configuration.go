package tube

// RetryDelayFunc computes the delay in seconds before the next attempt of a
// failed job, given the resolved minimum retry delay and the number of retries
// made so far.
type RetryDelayFunc func(minRetryDelay, numRetries int) int

// DefaultRetryDelayFunc grows the delay cubically with the retry count.
func DefaultRetryDelayFunc(minRetryDelay, numRetries int) int {
	return minRetryDelay + numRetries*numRetries*numRetries
}

// Configuration is the process-wide default for tube naming and job settings.
// It is read-only once handed to a Resolver.
type Configuration struct {
	// TubeNamespace is prepended to every tube name. A tube name already
	// starting with it, or with its dasherized form, is not prefixed twice.
	TubeNamespace string `yaml:"tubeNamespace" json:"tubeNamespace"`
	// NamespaceSeparator joins TubeNamespace and the job's own tube name.
	NamespaceSeparator string `yaml:"namespaceSeparator" json:"namespaceSeparator"`
	// PrimaryQueue is used by job types that don't name a queue.
	PrimaryQueue string `yaml:"primaryQueue" json:"primaryQueue"`
	// PriorityLabels maps named priorities such as "high" to numbers.
	// Lower numbers are more urgent.
	PriorityLabels  map[string]int `yaml:"priorityLabels" json:"priorityLabels"`
	DefaultPriority int            `yaml:"defaultPriority" json:"defaultPriority"`
	// RespondTimeout is the number of seconds a worker may hold a job.
	RespondTimeout int `yaml:"respondTimeout" json:"respondTimeout"`
	MaxJobRetries  int `yaml:"maxJobRetries" json:"maxJobRetries"`
	// RetryDelay is the minimum number of seconds between retries.
	RetryDelay int `yaml:"retryDelay" json:"retryDelay"`
	// RetryDelayFunc can't be expressed in a config file. See WithRetryDelayFunc.
	RetryDelayFunc RetryDelayFunc `yaml:"-" json:"-"`
}

// DefaultConfiguration returns the Configuration used when nothing is overridden.
func DefaultConfiguration() Configuration {
	return Configuration{
		TubeNamespace:      "backburner.worker.queue",
		NamespaceSeparator: ".",
		PrimaryQueue:       "backburner-jobs",
		PriorityLabels: map[string]int{
			"high":   10,
			"medium": 100,
			"low":    200,
		},
		DefaultPriority: 65536,
		RespondTimeout:  120,
		MaxJobRetries:   0,
		RetryDelay:      5,
		RetryDelayFunc:  DefaultRetryDelayFunc,
	}
}
