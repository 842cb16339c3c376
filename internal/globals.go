package internal

import "time"

func defineGlobals(e *env) {
	defineClock(e)
}

// defineClock binds clock(), milliseconds on a monotonic clock
func defineClock(e *env) {
	start := time.Now()

	clock := &nativeFn{
		name:       "clock",
		arityValue: 0,
		callFn: func(arguments []loxValue) (loxValue, error) {
			return loxNumber(time.Since(start).Milliseconds()), nil
		},
	}

	e.define(clock.name, clock)
}
