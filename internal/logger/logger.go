package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// New инициализирует логгер. Некорректный level молча заменяется на info.
func New(output io.Writer, level string) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(output)
	l.SetFormatter(new(logrus.JSONFormatter))

	parsedLevel, err := logrus.ParseLevel(level)
	if err != nil {
		parsedLevel = logrus.InfoLevel
	}
	l.SetLevel(parsedLevel)

	// для окружений отличных от продакшн пишем текстом
	if os.Getenv("GIN_MODE") != "release" {
		l.SetFormatter(new(logrus.TextFormatter))
	}

	return l
}
