package cooking

import "time"

// Clock supplies the current time. Sessions measure elapsed time against it
// so that delayed tick callbacks are absorbed.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// SystemClock reads the wall clock.
var SystemClock Clock = systemClock{}
