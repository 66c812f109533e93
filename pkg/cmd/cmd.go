package cmd

import (
	"github.com/klwxsrx/random-coffee-bot/pkg/env"
	"github.com/klwxsrx/random-coffee-bot/pkg/log"
)

var logLevelMap = map[string]log.Level{
	"disabled": log.LevelDisabled,
	"debug":    log.LevelDebug,
	"info":     log.LevelInfo,
	"warn":     log.LevelWarn,
	"error":    log.LevelError,
}

func InitLogger() log.Logger {
	logLevelStr, err := env.Parse[string]("LOG_LEVEL")
	if err != nil {
		return log.New(log.LevelInfo)
	}

	logLevel, ok := logLevelMap[logLevelStr]
	if !ok {
		logLevel = log.LevelInfo
	}

	return log.New(logLevel)
}
