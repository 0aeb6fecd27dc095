package tube

// Settings is everything the dispatch and worker side needs to know about a job.
type Settings struct {
	Tube           string
	Priority       int
	RespondTimeout int
	MaxJobRetries  int
	RetryDelay     int
	RetryDelayFunc RetryDelayFunc
}

// Settings resolves the tube name and all settings of the descriptor at once.
func (r *Resolver) Settings(descriptor interface{}) Settings {
	return Settings{
		Tube:           r.ExpandTubeName(descriptor),
		Priority:       r.ResolvePriority(descriptor),
		RespondTimeout: r.ResolveRespondTimeout(descriptor),
		MaxJobRetries:  r.ResolveMaxJobRetries(descriptor),
		RetryDelay:     r.ResolveRetryDelay(descriptor),
		RetryDelayFunc: r.ResolveRetryDelayFunc(descriptor),
	}
}

// NextRetryDelay returns the delay in seconds before retrying a job that has
// already been retried numRetries times.
func (s Settings) NextRetryDelay(numRetries int) int {
	if s.RetryDelayFunc == nil {
		return DefaultRetryDelayFunc(s.RetryDelay, numRetries)
	}
	return s.RetryDelayFunc(s.RetryDelay, numRetries)
}

// Exhausted reports whether a job retried numRetries times may not be retried again.
func (s Settings) Exhausted(numRetries int) bool {
	return numRetries >= s.MaxJobRetries
}
