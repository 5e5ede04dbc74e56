package log

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/timofei-iatsenko/keycloakify/utils/coreutils"
)

func GetCliLogLevel() logrus.Level {
	switch os.Getenv(coreutils.LogLevel) {
	case "ERROR":
		return logrus.ErrorLevel
	case "WARN":
		return logrus.WarnLevel
	case "DEBUG":
		return logrus.DebugLevel
	default:
		return logrus.InfoLevel
	}
}

func getCliLogFormatter() logrus.Formatter {
	formatter := &logrus.TextFormatter{
		DisableLevelTruncation: true,
	}
	switch os.Getenv(coreutils.LogTimestamp) {
	case "DATE_AND_TIME":
		formatter.FullTimestamp = true
	case "OFF":
		formatter.DisableTimestamp = true
	default:
		formatter.FullTimestamp = false
	}
	return formatter
}

func SetDefaultLogger() {
	logrus.SetOutput(os.Stderr)
	logrus.SetLevel(GetCliLogLevel())
	logrus.SetFormatter(getCliLogFormatter())
}

func Debug(args ...interface{}) {
	logrus.Debug(args...)
}

func Info(args ...interface{}) {
	logrus.Info(args...)
}

func Warn(args ...interface{}) {
	logrus.Warn(args...)
}

func Error(args ...interface{}) {
	logrus.Error(args...)
}
