package vulkango

// Queue.Submit delegates to the linked Backend; Semaphore and Fence are
// declared in backend.go alongside the other opaque handle types.

func (q Queue) Submit(submits []SubmitInfo, fence Fence) error {
	return q.backend.Submit(q, submits, fence)
}
