package workers

type Workers struct {
	workers []Worker
}

// NewWorkers aggregates workers for a single Run call at startup.
func NewWorkers(ws ...Worker) *Workers {
	return &Workers{workers: ws}
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}
