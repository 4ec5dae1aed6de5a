package utils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"github.com/sirupsen/logrus"
	"github.com/topfreegames/pitaya/v3/pkg/logger/interfaces"
	logruswrapper "github.com/topfreegames/pitaya/v3/pkg/logger/logrus"
)

// LogOptions 日志输出位置，Dir 为空时写到标准错误
type LogOptions struct {
	Dir      string
	Name     string
	MaxAge   time.Duration
	Rotation time.Duration
}

func DefaultLogOptions() LogOptions {
	return LogOptions{
		Dir:      "./logs",
		Name:     filepath.Base(os.Args[0]),
		MaxAge:   7 * 24 * time.Hour,
		Rotation: 24 * time.Hour,
	}
}

type Formatter struct{}

func (f *Formatter) Format(entry *logrus.Entry) ([]byte, error) {
	timestamp := entry.Time.Format(time.DateTime)
	level := strings.ToLower(entry.Level.String())

	if entry.Caller == nil {
		return fmt.Appendf(nil, "%s [%s] %s\n", timestamp, level, entry.Message), nil
	}
	fileName := filepath.Base(entry.Caller.File)
	funcName := entry.Caller.Function
	if i := strings.LastIndex(funcName, "."); i >= 0 {
		funcName = funcName[i+1:]
	}
	return fmt.Appendf(nil, "%s [%s] %s:%d %s %s\n", timestamp, level, fileName, entry.Caller.Line, funcName, entry.Message), nil
}

// Logger 创建供 pitaya 使用的 logrus 日志
func Logger(level logrus.Level, opts LogOptions) interfaces.Logger {
	l := logrus.New()
	if writer, err := getWriter(opts); err != nil {
		logrus.Fatalf("Failed to create log writer: %v", err)
	} else {
		l.SetOutput(writer)
	}
	l.SetReportCaller(true)
	l.Formatter = &Formatter{}
	l.SetLevel(level)
	return logruswrapper.NewWithFieldLogger(l)
}

func getWriter(opts LogOptions) (io.Writer, error) {
	if opts.Dir == "" {
		return os.Stderr, nil
	}
	if err := os.MkdirAll(opts.Dir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("create log directory %s: %w", opts.Dir, err)
	}
	s := &SafeRotateLogs{
		logPattern: filepath.Join(opts.Dir, opts.Name+"-%Y%m%d.log"),
		maxAge:     opts.MaxAge,
		rotation:   opts.Rotation,
	}
	if err := s.reopen(); err != nil {
		return nil, err
	}
	return s, nil
}

// SafeRotateLogs 按天轮转，文件被删除后自动重建
type SafeRotateLogs struct {
	*rotatelogs.RotateLogs
	logPattern string
	maxAge     time.Duration
	rotation   time.Duration
}

func (s *SafeRotateLogs) reopen() error {
	writer, err := rotatelogs.New(
		s.logPattern,
		rotatelogs.WithMaxAge(s.maxAge),
		rotatelogs.WithRotationTime(s.rotation),
	)
	if err != nil {
		return fmt.Errorf("failed to create log writer: %w", err)
	}
	s.RotateLogs = writer
	return nil
}

func (s *SafeRotateLogs) Write(p []byte) (n int, err error) {
	if _, err := os.Stat(s.RotateLogs.CurrentFileName()); os.IsNotExist(err) {
		if err := s.reopen(); err != nil {
			return 0, err
		}
	}
	return s.RotateLogs.Write(p)
}
