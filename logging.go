package Byte_View

import (
	"os"

	"github.com/sirupsen/logrus"
)

// LogLevelEnv names the environment variable that overrides the logrus level.
const LogLevelEnv = "BYTEVIEW_LOG_LEVEL"

// init routes logrus output to stdout and applies the level from LogLevelEnv.
func init() {
	logrus.SetOutput(os.Stdout)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	applyEnvLogLevel()
}

// applyEnvLogLevel applies LogLevelEnv when it is set. A bad value is logged and ignored.
func applyEnvLogLevel() {
	lvl := os.Getenv(LogLevelEnv)
	if lvl == "" {
		return
	}
	if err := SetLogLevel(lvl); err != nil {
		logrus.Warnf("ignoring %s=%q: %v", LogLevelEnv, lvl, err)
	}
}

// SetLogLevel parses a logrus level name ("debug", "info", ...) and applies it.
func SetLogLevel(name string) error {
	lvl, err := logrus.ParseLevel(name)
	if err != nil {
		return err
	}
	logrus.SetLevel(lvl)
	return nil
}
