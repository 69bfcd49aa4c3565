package scheduler

import (
	"errors"
	"sort"
)

const JobCampaignSync = "campaign-sync"

var ErrUnknownJob = errors.New("job desconhecido")

// Job é uma rotina agendada que também pode ser disparada manualmente
type Job interface {
	TriggerManualSync() bool
	GetStatus() map[string]any
}

// Registry indexa os jobs por nome para as rotas de cron
type Registry struct {
	jobs map[string]Job
}

func NewRegistry() *Registry {
	return &Registry{jobs: make(map[string]Job)}
}

func (r *Registry) Register(name string, job Job) {
	r.jobs[name] = job
}

// Run dispara o job pelo nome
func (r *Registry) Run(name string) error {
	job, ok := r.jobs[name]
	if !ok {
		return ErrUnknownJob
	}

	if !job.TriggerManualSync() {
		return ErrSyncInProgress
	}

	return nil
}

func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.jobs))
	for name := range r.jobs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Status agrega o status de todos os jobs registrados
func (r *Registry) Status() map[string]any {
	status := make(map[string]any, len(r.jobs))
	for name, job := range r.jobs {
		status[name] = job.GetStatus()
	}
	return status
}
