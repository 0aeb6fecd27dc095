// Package tube resolves where and how background jobs are queued. It turns
// job descriptors into tube (channel) names and resolves per job overrides of
// priority, respond timeout, retry count and retry delay against a process
// wide Configuration.
//
// Introduction
//
// A job queue client needs to agree with its workers on two things before a
// job is put on the wire: the tube it goes to, and the settings it carries.
// Both are derived the same way. A job may say something about itself, and
// whatever it doesn't say comes from the Configuration.
//
// Job Types
//
// A job type is described by a *JobType. Only the name is required, every
// other field is an optional override:
//
//  welcome := tube.NewJobType("Mailer::Welcome",
//    tube.OnQueue("mail"),
//    tube.Priority("high"),
//    tube.RespondTimeout(30 * time.Second),
//    tube.MaxJobRetries(5),
//  )
//
// An override can point at another *JobType, in which case the value is
// inherited from it. Chains are followed until a literal is found, up to the
// limit set with UseMaxDepth.
//
// Resolving
//
// The Resolver holds the Configuration and is safe for concurrent use:
//
//  resolver := tube.NewResolver(tube.DefaultConfiguration())
//  resolver.ExpandTubeName(welcome)  // => "backburner.worker.queue.mail"
//  resolver.ResolvePriority(welcome) // => 10
//  resolver.ResolvePriority(nil)     // => 65536
//
// Tube names go through Dasherize, so a queue called "MailerJobs" ends up as
// "mailer-jobs". Anything after the first ":" is metadata and is dropped.
//
// Registry
//
// Job types can be registered by name and looked up again, for example when a
// worker receives a job body naming its type:
//
//  registry, _ := tube.NewRegistry(welcome)
//  jt, err := registry.ResolveType("Mailer::Welcome")
//
// Unknown names yield a *NotFoundError that matches ErrNotFound.
//
// Integrate
//
// The package exports configuration in this format:
//
//  tube:
//    tubeNamespace: backburner.worker.queue
//    namespaceSeparator: .
//    primaryQueue: backburner-jobs
//    priorityLabels:
//      high: 10
//      medium: 100
//      low: 200
//    defaultPriority: 65536
//    respondTimeout: 120
//    maxJobRetries: 0
//    retryDelay: 5
//
// Using the bundled dependency provider, the Resolver and Registry become
// available in the container, along with the "tube" command:
//
//  var c *core.C
//  c.Provide(tube.Providers(tube.WithRegistry(registry)))
//
// Metrics
//
// To see how often jobs fall back to the defaults, inject a counter and alias
// it to tube.FallbackCounter. It is incremented with a "setting" label.
package tube
