package core

// ExecutorStats is a point-in-time observability snapshot of an executor.
type ExecutorStats struct {
	Name    string
	Pending int
	Running bool
	Closed  bool
}

// Stats returns a snapshot of the executor's current state. Values are read
// independently, so the snapshot is advisory rather than transactional.
func (e *AffinityExecutor) Stats() ExecutorStats {
	return ExecutorStats{
		Name:    e.name,
		Pending: e.queue.len(),
		Running: e.running.Load(),
		Closed:  e.closed.Load(),
	}
}
