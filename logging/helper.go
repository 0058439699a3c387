package logging

import "os"

// NewSessionLogger 创建测试会话的诊断 Logger
// verbose 为 true 时放开到 DEBUG 级别，诊断输出走 stderr，
// 不与被测程序的 stdout 混在一起。
func NewSessionLogger(verbose bool) Logger {
	level := LogLevelInfo
	if verbose {
		level = LogLevelDebug
	}
	logger := NewConsoleLogger(ConsoleLoggerOptions{
		Output:           os.Stderr,
		MinimumLevel:     level,
		IncludeTimestamp: true,
		TimestampFormat:  "2006-01-02 15:04:05",
	})
	return logger.WithCategory("session")
}
