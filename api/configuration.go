package api

import (
	"time"
)

type Configuration struct {
	Env                 string
	AppName             string
	Port                string
	RequestLoggingLevel string
	ScoreTimeout        time.Duration
	DefaultTimeout      time.Duration
}
