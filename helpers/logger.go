package helpers

import (
	"fmt"
	"log/slog"
	"os"

	"code.cloudfoundry.org/lager/v3"
)

type LoggingConfig struct {
	Level         string `yaml:"level" json:"level"`
	PlainTextSink bool   `yaml:"plaintext_sink" json:"plaintext_sink"`
}

func InitLoggerFromConfig(conf *LoggingConfig, name string) lager.Logger {
	logLevel, err := parseLogLevel(conf.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %s\n", err.Error())
		os.Exit(1)
	}

	logger := lager.NewLogger(name)

	if conf.PlainTextSink {
		slogger := slog.New(slog.NewTextHandler(os.Stdout, nil))
		logger.RegisterSink(lager.NewSlogSink(slogger))
	} else {
		logger.RegisterSink(lager.NewWriterSink(os.Stdout, logLevel))
	}

	return logger
}

func parseLogLevel(level string) (lager.LogLevel, error) {
	switch level {
	case "debug":
		return lager.DEBUG, nil
	case "info":
		return lager.INFO, nil
	case "error":
		return lager.ERROR, nil
	case "fatal":
		return lager.FATAL, nil
	default:
		return -1, fmt.Errorf("unsupported log level: %s", level)
	}
}
