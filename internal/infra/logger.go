package infra

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/umalmyha/customer-directory/internal/config"
)

// Logger configures standard logrus logger
func Logger(cfg config.LogCfg, out io.Writer) error {
	lvl, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return fmt.Errorf("failed to parse log level - %w", err)
	}

	var formatter logrus.Formatter
	switch cfg.Format {
	case "json":
		formatter = &logrus.JSONFormatter{}
	case "text":
		formatter = &logrus.TextFormatter{FullTimestamp: true}
	default:
		return fmt.Errorf("unsupported log format %q", cfg.Format)
	}

	logrus.SetOutput(out)
	logrus.SetLevel(lvl)
	logrus.SetFormatter(formatter)
	return nil
}
