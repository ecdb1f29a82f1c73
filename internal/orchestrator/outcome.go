package orchestrator

// status classifies how a pipeline stage finished.
type status int

const (
	statusOK status = iota
	statusDegraded
	statusFailed
)

func (s status) String() string {
	switch s {
	case statusDegraded:
		return "degraded"
	case statusFailed:
		return "failed"
	default:
		return "success"
	}
}

// outcome pairs a stage's value with its completion status so degraded
// results can flow forward while failures stop the pipeline.
type outcome[T any] struct {
	value  T
	status status
	detail string
	err    error
}

func ok[T any](v T) outcome[T] {
	return outcome[T]{value: v}
}

func okDetail[T any](v T, detail string) outcome[T] {
	return outcome[T]{value: v, detail: detail}
}

func degraded[T any](v T, detail string) outcome[T] {
	return outcome[T]{value: v, status: statusDegraded, detail: detail}
}

func failed[T any](err error, detail string) outcome[T] {
	return outcome[T]{status: statusFailed, detail: detail, err: err}
}
