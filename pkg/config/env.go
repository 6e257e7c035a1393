package config

const (
	EnvGymAPIBaseURL   = "GYM_API_BASE_URL"
	EnvUpstreamTimeout = "UPSTREAM_TIMEOUT"

	EnvPort       = "PORT"
	EnvLogLevel   = "LOG_LEVEL"
	EnvConfigFile = "CONFIG_FILE"

	EnvRequestTimeout = "REQUEST_TIMEOUT"

	EnvReadTimeout     = "READ_TIMEOUT"
	EnvWriteTimeout    = "WRITE_TIMEOUT"
	EnvIdleTimeout     = "IDLE_TIMEOUT"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT"

	EnvDefaultCapacity     = "DEFAULT_CAPACITY"
	EnvDayStart            = "DAY_START"
	EnvDayEnd              = "DAY_END"
	EnvSlotMinutes         = "SLOT_MINUTES"
	EnvMinVisibleSpanMin   = "MIN_VISIBLE_SPAN_MIN"
	EnvSlotPixelHeight     = "SLOT_PIXEL_HEIGHT"
	EnvMinEventPixelHeight = "MIN_EVENT_PIXEL_HEIGHT"
)
