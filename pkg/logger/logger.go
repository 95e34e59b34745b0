package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	defaultMaxSizeMB  = 50
	defaultMaxBackups = 5
	defaultMaxAgeDays = 14
)

// Logger логгер сервиса с printf-style API
// Пишет в stdout и, если указан файл, дублирует записи в файл с ротацией
type Logger struct {
	base *log.Logger
	file *lumberjack.Logger
}

// New создает логгер
// filePath - путь к файлу логов (пустая строка = только stdout)
// level - уровень логирования: debug, info, warn, error
func New(filePath string, level string) (*Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	var (
		out  io.Writer = os.Stdout
		file *lumberjack.Logger
	)

	if filePath != "" {
		file = &lumberjack.Logger{
			Filename:   filePath,
			MaxSize:    defaultMaxSizeMB,
			MaxBackups: defaultMaxBackups,
			MaxAge:     defaultMaxAgeDays,
			Compress:   true,
		}
		out = io.MultiWriter(os.Stdout, file)
	}

	base := log.NewWithOptions(out, log.Options{
		Level:           lvl,
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Formatter:       log.LogfmtFormatter,
	})

	return &Logger{base: base, file: file}, nil
}

// NewWriter создает логгер поверх произвольного io.Writer (используется в тестах)
func NewWriter(w io.Writer, level string) (*Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return &Logger{base: log.NewWithOptions(w, log.Options{Level: lvl})}, nil
}

// Nop возвращает логгер, который ничего не пишет
func Nop() *Logger {
	l, _ := NewWriter(io.Discard, "error")
	return l
}

func (l *Logger) Debug(format string, v ...interface{}) {
	l.base.Debugf(format, v...)
}

func (l *Logger) Info(format string, v ...interface{}) {
	l.base.Infof(format, v...)
}

func (l *Logger) Warn(format string, v ...interface{}) {
	l.base.Warnf(format, v...)
}

func (l *Logger) Error(format string, v ...interface{}) {
	l.base.Errorf(format, v...)
}

// Fatal пишет запись и завершает процесс с кодом 1
func (l *Logger) Fatal(format string, v ...interface{}) {
	l.base.Errorf(format, v...)
	_ = l.Close()
	os.Exit(1)
}

// Close закрывает файл логов
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}
