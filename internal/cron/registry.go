package cron

import "context"

// Job is one unit of back-office housekeeping, such as the monthly account snapshot.
// Name labels its log lines and metrics, so it must be stable across restarts.
type Job interface {
	Name() string
	Run(ctx context.Context) error
}

// Registry is the ordered set of jobs a tick runs, at most one per name.
type Registry struct {
	jobs   []Job
	byName map[string]int
}

func NewRegistry(jobs ...Job) *Registry {
	r := &Registry{byName: make(map[string]int, len(jobs))}
	for _, job := range jobs {
		r.Register(job)
	}
	return r
}

// Register adds job at the end of the run order. Registering a name twice swaps in the
// newer job at the original position, so a tick never snapshots the same month twice.
func (r *Registry) Register(job Job) {
	if job == nil {
		return
	}
	if r.byName == nil {
		r.byName = make(map[string]int)
	}
	if i, ok := r.byName[job.Name()]; ok {
		r.jobs[i] = job
		return
	}
	r.byName[job.Name()] = len(r.jobs)
	r.jobs = append(r.jobs, job)
}

// Jobs returns a copy of the run order.
func (r *Registry) Jobs() []Job {
	return append([]Job(nil), r.jobs...)
}
