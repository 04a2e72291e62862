// Package logger держит глобальный логгер процесса.
package logger

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log - общий логгер приложения. До вызова Init он nil:
// main обязан инициализировать его первым делом.
var Log *logrus.Logger

// Init настраивает логгер из окружения: LOG_LEVEL (по умолчанию info)
// и LOG_FORMAT (json для прода, иначе цветной текст).
func Init() {
	Log = logrus.New()
	Log.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	if strings.EqualFold(os.Getenv("LOG_FORMAT"), "json") {
		Log.SetFormatter(&logrus.JSONFormatter{})
		return
	}
	Log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
		ForceColors:   true,
	})
}
