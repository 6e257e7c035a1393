package config

import "time"

const (
	DefaultGymAPIBaseURL   = "http://localhost:8000/api"
	DefaultUpstreamTimeout = 10 * time.Second

	DefaultPort = "8080"

	DefaultRequestTimeout = 30 * time.Second

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second

	DefaultLogLevel = "info"

	// Presentation defaults inherited from the gym backend and its web
	// client; all overridable via config file or env.
	DefaultDefaultCapacity     = 20
	DefaultDayStart            = "08:00"
	DefaultDayEnd              = "22:00"
	DefaultSlotMinutes         = 15
	DefaultMinVisibleSpanMin   = 6 * 60
	DefaultSlotPixelHeight     = 40
	DefaultMinEventPixelHeight = 36
)
