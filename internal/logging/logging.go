// Package logging builds the logrus logger used by the command line tool.
package logging

import (
	"io"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/pre-lang/go-pre/internal/config"
)

// New returns a logger writing to w with the level and format from cfg.
func New(cfg config.LogConfig, w io.Writer) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return nil, errors.Wrap(err, "log level")
	}

	log := logrus.New()
	log.SetOutput(w)
	log.SetLevel(level)

	switch cfg.Format {
	case "json":
		log.SetFormatter(&logrus.JSONFormatter{})
	case "text", "":
		log.SetFormatter(&logrus.TextFormatter{
			DisableTimestamp: true,
		})
	default:
		return nil, errors.Errorf("unknown log format %q", cfg.Format)
	}

	return log, nil
}

// Timed runs fn and, when enabled, logs how long it took at debug level
// under the given phase name.
func Timed(log logrus.FieldLogger, enabled bool, phase string, fn func() error) error {
	start := time.Now()
	err := fn()
	if enabled {
		log.WithFields(logrus.Fields{
			"phase": phase,
			"took":  time.Since(start),
		}).Debug("phase finished")
	}

	return err
}
