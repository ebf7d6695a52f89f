package service

import "time"

// Clock abstracts the current time so transition timestamps can be fixed in
// tests.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now().UTC() }

// SystemClock returns a Clock backed by time.Now in UTC.
func SystemClock() Clock { return systemClock{} }
