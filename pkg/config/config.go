package config

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"time"

	"gymgrid/pkg/clock"
	"gymgrid/pkg/logger"
)

type Config struct {
	GymAPIBaseURL   string
	UpstreamTimeout time.Duration

	Port string

	RequestTimeout time.Duration

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration

	DefaultCapacity     int
	DayStart            string
	DayEnd              string
	SlotMinutes         int
	MinVisibleSpanMin   int
	SlotPixelHeight     int
	MinEventPixelHeight int

	Log *logger.Logger
}

func Load(serviceName string) *Config {
	overlay := loadOverlay(getEnvStr(EnvConfigFile, ""))

	cfg := &Config{
		GymAPIBaseURL:   getEnvStr(EnvGymAPIBaseURL, overlay.str(overlay.GymAPIBaseURL, DefaultGymAPIBaseURL)),
		UpstreamTimeout: getEnvDuration(EnvUpstreamTimeout, DefaultUpstreamTimeout),

		Port: getEnvStr(EnvPort, DefaultPort),

		RequestTimeout: getEnvDuration(EnvRequestTimeout, DefaultRequestTimeout),

		ReadTimeout:     getEnvDuration(EnvReadTimeout, DefaultReadTimeout),
		WriteTimeout:    getEnvDuration(EnvWriteTimeout, DefaultWriteTimeout),
		IdleTimeout:     getEnvDuration(EnvIdleTimeout, DefaultIdleTimeout),
		ShutdownTimeout: getEnvDuration(EnvShutdownTimeout, DefaultShutdownTimeout),

		DefaultCapacity:     getEnvNum(EnvDefaultCapacity, overlay.num(overlay.DefaultCapacity, DefaultDefaultCapacity)),
		DayStart:            getEnvStr(EnvDayStart, overlay.str(overlay.DayStart, DefaultDayStart)),
		DayEnd:              getEnvStr(EnvDayEnd, overlay.str(overlay.DayEnd, DefaultDayEnd)),
		SlotMinutes:         getEnvNum(EnvSlotMinutes, overlay.num(overlay.SlotMinutes, DefaultSlotMinutes)),
		MinVisibleSpanMin:   getEnvNum(EnvMinVisibleSpanMin, overlay.num(overlay.MinVisibleSpanMin, DefaultMinVisibleSpanMin)),
		SlotPixelHeight:     getEnvNum(EnvSlotPixelHeight, overlay.num(overlay.SlotPixelHeight, DefaultSlotPixelHeight)),
		MinEventPixelHeight: getEnvNum(EnvMinEventPixelHeight, overlay.num(overlay.MinEventPixelHeight, DefaultMinEventPixelHeight)),

		Log: logger.New(logger.Config{
			Level:     getEnvStr(EnvLogLevel, DefaultLogLevel),
			Format:    logger.JSON,
			AddSource: true,
			Service:   serviceName,
		}),
	}

	if err := cfg.Validate(); err != nil {
		cfg.Log.Fatal(err.Error())
	}
	cfg.LogConfiguration()
	return cfg
}

func (cfg *Config) Validate() error {
	var errs []string

	if port, err := strconv.Atoi(cfg.Port); err != nil || port < 1 || port > 65535 {
		errs = append(errs, fmt.Sprintf("Port must be between 1 and 65535, got: %s", cfg.Port))
	}

	if !regexp.MustCompile(`^https?://`).MatchString(cfg.GymAPIBaseURL) {
		errs = append(errs, fmt.Sprintf("GymAPIBaseURL must start with 'http://' or 'https://', got: %s", cfg.GymAPIBaseURL))
	}

	timeRegex := regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)
	if !timeRegex.MatchString(cfg.DayStart) {
		errs = append(errs, fmt.Sprintf("DayStart must be in HH:MM format (00:00-23:59), got: %s", cfg.DayStart))
	}
	if !timeRegex.MatchString(cfg.DayEnd) {
		errs = append(errs, fmt.Sprintf("DayEnd must be in HH:MM format (00:00-23:59), got: %s", cfg.DayEnd))
	}
	if timeRegex.MatchString(cfg.DayStart) && timeRegex.MatchString(cfg.DayEnd) && cfg.DayEnd <= cfg.DayStart {
		errs = append(errs, fmt.Sprintf("DayEnd (%s) must be after DayStart (%s)", cfg.DayEnd, cfg.DayStart))
	}

	if cfg.UpstreamTimeout <= 0 {
		errs = append(errs, fmt.Sprintf("UpstreamTimeout must be positive, got: %s", cfg.UpstreamTimeout))
	}
	if cfg.RequestTimeout <= 0 {
		errs = append(errs, fmt.Sprintf("RequestTimeout must be positive, got: %s", cfg.RequestTimeout))
	}
	if cfg.ReadTimeout <= 0 {
		errs = append(errs, fmt.Sprintf("ReadTimeout must be positive, got: %s", cfg.ReadTimeout))
	}
	if cfg.WriteTimeout <= 0 {
		errs = append(errs, fmt.Sprintf("WriteTimeout must be positive, got: %s", cfg.WriteTimeout))
	}
	if cfg.IdleTimeout <= 0 {
		errs = append(errs, fmt.Sprintf("IdleTimeout must be positive, got: %s", cfg.IdleTimeout))
	}
	if cfg.ShutdownTimeout <= 0 {
		errs = append(errs, fmt.Sprintf("ShutdownTimeout must be positive, got: %s", cfg.ShutdownTimeout))
	}

	if cfg.DefaultCapacity <= 0 {
		errs = append(errs, fmt.Sprintf("DefaultCapacity must be positive, got: %d", cfg.DefaultCapacity))
	}
	if cfg.SlotMinutes <= 0 || clock.MinutesPerDay%cfg.SlotMinutes != 0 {
		errs = append(errs, fmt.Sprintf("SlotMinutes must be positive and divide a day evenly, got: %d", cfg.SlotMinutes))
	}
	if cfg.MinVisibleSpanMin <= 0 || cfg.MinVisibleSpanMin > clock.MinutesPerDay {
		errs = append(errs, fmt.Sprintf("MinVisibleSpanMin must be in (0, %d], got: %d", clock.MinutesPerDay, cfg.MinVisibleSpanMin))
	}
	if cfg.SlotPixelHeight <= 0 {
		errs = append(errs, fmt.Sprintf("SlotPixelHeight must be positive, got: %d", cfg.SlotPixelHeight))
	}
	if cfg.MinEventPixelHeight < 0 {
		errs = append(errs, fmt.Sprintf("MinEventPixelHeight cannot be negative, got: %d", cfg.MinEventPixelHeight))
	}

	if len(errs) > 0 {
		errMsg := "Configuration validation failed:\n"
		for i, err := range errs {
			errMsg += fmt.Sprintf("  %d. %s\n", i+1, err)
		}
		return fmt.Errorf("%s", errMsg)
	}

	return nil
}

func (cfg *Config) LogConfiguration() {
	cfg.Log.Info("Configuration loaded successfully",
		"gym_api_base_url", cfg.GymAPIBaseURL,
		"upstream_timeout", cfg.UpstreamTimeout,
		"port", cfg.Port,
		"request_timeout", cfg.RequestTimeout,
		"read_timeout", cfg.ReadTimeout,
		"write_timeout", cfg.WriteTimeout,
		"idle_timeout", cfg.IdleTimeout,
		"shutdown_timeout", cfg.ShutdownTimeout,
		"default_capacity", cfg.DefaultCapacity,
		"day_start", cfg.DayStart,
		"day_end", cfg.DayEnd,
		"slot_minutes", cfg.SlotMinutes,
		"min_visible_span_min", cfg.MinVisibleSpanMin,
		"slot_pixel_height", cfg.SlotPixelHeight,
		"min_event_pixel_height", cfg.MinEventPixelHeight,
	)
}

// DayStartMinute returns the configured default window start as a
// minute-of-day value. Validate() guarantees the field parses.
func (cfg *Config) DayStartMinute() int {
	m, _ := clock.ParseClock(cfg.DayStart)
	return m
}

// DayEndMinute returns the configured default window end as a minute-of-day
// value.
func (cfg *Config) DayEndMinute() int {
	m, _ := clock.ParseClock(cfg.DayEnd)
	return m
}

func getEnvStr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvNum(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
