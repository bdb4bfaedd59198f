package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// logLevelEnv overrides the default log level, e.g. GQLAST_LOG_LEVEL=info.
const logLevelEnv = "GQLAST_LOG_LEVEL"

var log = logrus.New()

func configureLogging(out io.Writer, verbose bool) error {
	log.SetOutput(out)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	level := logrus.WarnLevel
	if env := os.Getenv(logLevelEnv); env != "" {
		parsed, err := logrus.ParseLevel(env)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", logLevelEnv, err)
		}
		level = parsed
	}
	if verbose {
		level = logrus.DebugLevel
	}
	log.SetLevel(level)
	return nil
}
