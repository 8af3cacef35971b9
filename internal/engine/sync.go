package engine

import "time"

// FrameLimiter paces a loop to a target frame rate by sleeping until the next
// frame slot. A loop that falls more than a frame behind restarts its schedule
// instead of running fast to catch up.
type FrameLimiter struct {
	now   func() time.Time
	sleep func(time.Duration)
	next  time.Time
}

func NewFrameLimiter() *FrameLimiter {
	return &FrameLimiter{now: time.Now, sleep: time.Sleep}
}

func (l *FrameLimiter) Wait(fps int) {
	if fps <= 0 {
		return
	}
	frame := time.Second / time.Duration(fps)
	now := l.now()
	if l.next.IsZero() || now.Sub(l.next) > frame {
		l.next = now
	}
	l.next = l.next.Add(frame)
	if d := l.next.Sub(now); d > 0 {
		l.sleep(d)
	}
}
