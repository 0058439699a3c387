package logging

import (
	"io"
	"os"
	"sync"
	"time"
)

// LogLevel 日志级别
type LogLevel int

const (
	LogLevelDebug LogLevel = iota
	LogLevelInfo
	LogLevelWarn
	LogLevelError
)

// String 返回日志级别的字符串表示
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelInfo:
		return "INFO"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Field 日志字段
type Field struct {
	Key   string
	Value any
}

// Logger 日志接口
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	Log(level LogLevel, msg string, fields ...Field)
	WithFields(fields ...Field) Logger
	WithCategory(category string) Logger
}

// ConsoleLoggerOptions 控制台 Logger 选项
type ConsoleLoggerOptions struct {
	Output           io.Writer
	MinimumLevel     LogLevel
	IncludeTimestamp bool
	TimestampFormat  string
}

// NewConsoleLogger 创建同步写入的控制台 Logger
func NewConsoleLogger(options ...ConsoleLoggerOptions) Logger {
	opts := ConsoleLoggerOptions{
		Output:           os.Stdout,
		MinimumLevel:     LogLevelInfo,
		IncludeTimestamp: true,
		TimestampFormat:  "2006-01-02 15:04:05",
	}
	if len(options) > 0 {
		opts = options[0]
		if opts.Output == nil {
			opts.Output = os.Stdout
		}
		if opts.TimestampFormat == "" {
			opts.TimestampFormat = "2006-01-02 15:04:05"
		}
	}
	return &consoleLogger{
		mu:     &sync.Mutex{},
		output: opts.Output,
		formatter: &TextFormatter{
			IncludeTimestamp: opts.IncludeTimestamp,
			TimestampFormat:  opts.TimestampFormat,
		},
		minimum: opts.MinimumLevel,
	}
}

// consoleLogger Logger 的控制台实现
// 多个派生 Logger（WithFields / WithCategory）共享同一把写锁
type consoleLogger struct {
	mu        *sync.Mutex
	output    io.Writer
	formatter *TextFormatter
	minimum   LogLevel
	category  string
	fields    []Field
}

func (l *consoleLogger) Debug(msg string, fields ...Field) { l.Log(LogLevelDebug, msg, fields...) }
func (l *consoleLogger) Info(msg string, fields ...Field)  { l.Log(LogLevelInfo, msg, fields...) }
func (l *consoleLogger) Warn(msg string, fields ...Field)  { l.Log(LogLevelWarn, msg, fields...) }
func (l *consoleLogger) Error(msg string, fields ...Field) { l.Log(LogLevelError, msg, fields...) }

// Log 写出一条日志；低于最小级别的条目被丢弃
func (l *consoleLogger) Log(level LogLevel, msg string, fields ...Field) {
	if level < l.minimum {
		return
	}

	merged := make([]Field, 0, len(l.fields)+len(fields))
	merged = append(merged, l.fields...)
	merged = append(merged, fields...)

	line, err := l.formatter.Format(&LogEntry{
		Time:     time.Now(),
		Level:    level,
		Category: l.category,
		Message:  msg,
		Fields:   merged,
	})
	if err != nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.output.Write(line)
}

// WithFields 返回携带附加字段的派生 Logger
func (l *consoleLogger) WithFields(fields ...Field) Logger {
	derived := *l
	derived.fields = make([]Field, 0, len(l.fields)+len(fields))
	derived.fields = append(derived.fields, l.fields...)
	derived.fields = append(derived.fields, fields...)
	return &derived
}

// WithCategory 返回指定类别的派生 Logger
func (l *consoleLogger) WithCategory(category string) Logger {
	derived := *l
	derived.category = category
	return &derived
}
