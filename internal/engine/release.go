package engine

// Unwind is a stack of cleanups run in reverse order of registration.
type Unwind []func()

func (u *Unwind) Add(cleanup func()) {
	*u = append(*u, cleanup)
}

// Unwind runs every cleanup once and empties the stack, calling it again is a no-op.
func (u *Unwind) Unwind() {
	for i := len(*u) - 1; i >= 0; i-- {
		cleanup := (*u)[i]
		(*u)[i] = nil
		*u = (*u)[:i]
		cleanup()
	}
}

// Discard forgets the registered cleanups without running them.
func (u *Unwind) Discard() {
	*u = (*u)[:0]
}

func (u Unwind) Len() int {
	return len(u)
}
