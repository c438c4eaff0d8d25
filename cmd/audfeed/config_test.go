package main

import (
	"time"

	"github.com/ik5/audfeed/internal/config"
)

func testConfig() config.Config {
	return config.Config{
		Device:       "null",
		SampleRate:   8000,
		SubmitAhead:  50 * time.Millisecond,
		DeviceBuffer: time.Second,
		Tick:         10 * time.Millisecond,
	}
}
