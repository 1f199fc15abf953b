package main

import "time"

type Config struct {
	LogLevel          string        `env:"LOG_LEVEL,default=INFO"`
	LogFile           string        `env:"LOG_FILE"`
	ReplyDelay        time.Duration `env:"REPLY_DELAY,default=1s"`
	MaxPendingReplies int           `env:"MAX_PENDING_REPLIES,default=16"`
	WeatherRetries    int           `env:"WEATHER_RETRIES,default=3"`
	WeatherTimeout    time.Duration `env:"WEATHER_TIMEOUT,default=2s"`
	BreakerOpenFor    time.Duration `env:"BREAKER_OPEN_FOR,default=30s"`
	BreakerFailures   int           `env:"BREAKER_FAILURES,default=3"`
}
