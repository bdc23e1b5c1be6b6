package log

import (
	"bytes"
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

var level = INFO

type RealmFormatter struct{}

func (f *RealmFormatter) Format(entry *log.Entry) ([]byte, error) {
	var b *bytes.Buffer
	if entry.Buffer != nil {
		b = entry.Buffer
	} else {
		b = &bytes.Buffer{}
	}

	b.WriteString(entry.Time.Format("2006/01/02 15:04:05"))
	b.WriteString(fmt.Sprintf(" |%.4s| ", entry.Level))

	b.WriteString(entry.Message)

	b.WriteByte('\n')
	return b.Bytes(), nil
}

func init() {
	// stdout carries the relay list, keep logs off it
	log.SetOutput(os.Stderr)
	log.SetLevel(log.DebugLevel)
	log.SetFormatter(&RealmFormatter{})
}

type Event struct {
	LogLevel LogLevel
	Payload  string
}

func (e *Event) Type() string {
	return e.LogLevel.String()
}

func Infoln(format string, v ...any) {
	print(newLog(INFO, format, v...))
}

func Warnln(format string, v ...any) {
	print(newLog(WARNING, format, v...))
}

func Errorln(format string, v ...any) {
	print(newLog(ERROR, format, v...))
}

func Debugln(format string, v ...any) {
	print(newLog(DEBUG, format, v...))
}

func Fatalln(format string, v ...any) {
	log.Fatalf(format, v...)
}

func Level() LogLevel {
	return level
}

func SetLevel(newLevel LogLevel) {
	level = newLevel
}

// SetOutput sends logs to a rotated file; an empty file keeps the current writer.
func SetOutput(file string, maxSize, maxBackups, maxAge int, compress bool) {
	if file != "" {
		log.SetOutput(&lumberjack.Logger{
			Filename:   file,
			MaxSize:    maxSize, // megabytes
			MaxBackups: maxBackups,
			MaxAge:     maxAge,   //days
			Compress:   compress, // disabled by default
		})
	}
}

// SetWriter replaces the log writer, mostly for tests.
func SetWriter(w io.Writer) {
	log.SetOutput(w)
}

func print(data Event) {
	if data.LogLevel < level {
		return
	}

	switch data.LogLevel {
	case INFO:
		log.Infoln(data.Payload)
	case WARNING:
		log.Warnln(data.Payload)
	case ERROR:
		log.Errorln(data.Payload)
	case DEBUG:
		log.Debugln(data.Payload)
	}
}

func newLog(logLevel LogLevel, format string, v ...any) Event {
	return Event{
		LogLevel: logLevel,
		Payload:  fmt.Sprintf(format, v...),
	}
}
