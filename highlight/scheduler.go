package highlight

import "time"

// Scheduler runs fn once after d. Implementations decide which goroutine runs it.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func())
}

// TimerScheduler runs callbacks on the runtime timer goroutine.
type TimerScheduler struct{}

func (TimerScheduler) AfterFunc(d time.Duration, fn func()) {
	time.AfterFunc(d, fn)
}
