package syncs

// Semaphore bounds concurrency: at most cap(s) holders at once.
// Acquire blocks until a slot frees up.
type Semaphore chan bool

func NewSemaphore(n int) Semaphore {
	return make(chan bool, n)
}

func (s Semaphore) Acquire() {
	s <- true
}

func (s Semaphore) Release() {
	<-s
}
