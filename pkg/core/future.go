package core

// Result of invoking an asynchronous callable. The scheduler polls it until
// `done`; the core never blocks on a future.
type Future interface {
	Poll(m Machine) (v Value, done bool, err error)
}

type readyFuture struct {
	value Value
	err   error
}

// Future that is already resolved.
func Ready(v Value) Future {
	return readyFuture{value: v}
}

// Future that is already resolved with a failure.
func Failed(err error) Future {
	return readyFuture{err: err}
}

func (f readyFuture) Poll(m Machine) (Value, bool, error) {
	return f.value, true, f.err
}

type spawnResult struct {
	value Value
	err   error
}

type spawnFuture struct {
	ch   chan spawnResult
	done *spawnResult
}

// Runs `fn` on its own goroutine. Polling reports the result once it is
// available and never waits for it. The future must be polled from a single
// goroutine.
func Spawn(fn func() (Value, error)) Future {
	future := &spawnFuture{ch: make(chan spawnResult, 1)}
	go func() {
		value, err := fn()
		future.ch <- spawnResult{value, err}
	}()
	return future
}

func (f *spawnFuture) Poll(m Machine) (Value, bool, error) {
	if f.done == nil {
		select {
		case res := <-f.ch:
			f.done = &res
		default:
			return Value{}, false, nil
		}
	}
	return f.done.value, true, f.done.err
}
