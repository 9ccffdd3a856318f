package logger

import (
	"context"
	"log/slog"
	"os"
)

type AppLogger interface {
	Info(msg string, args ...slog.Attr)
	Error(msg string, err error, args ...slog.Attr)
	Fatal(msg string, err error, args ...slog.Attr)
	With(args ...slog.Attr) AppLogger
}

type appSLogger struct {
	log *slog.Logger
}

func NewAppSLogger(appHash string, args ...slog.Attr) AppLogger {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	if appHash != "" {
		log = log.With(slog.String("git_hash", appHash))
	}
	return &appSLogger{log: withAttrs(log, args...)}
}

func (a *appSLogger) Info(msg string, args ...slog.Attr) {
	a.log.LogAttrs(context.Background(), slog.LevelInfo, msg, args...)
}

func (a *appSLogger) Error(msg string, err error, args ...slog.Attr) {
	a.log.LogAttrs(context.Background(), slog.LevelError, msg, appendErr(err, args)...)
}

func (a *appSLogger) Fatal(msg string, err error, args ...slog.Attr) {
	a.log.LogAttrs(context.Background(), slog.LevelError, msg, appendErr(err, args)...)
	os.Exit(1)
}

func (a *appSLogger) With(args ...slog.Attr) AppLogger {
	return &appSLogger{log: withAttrs(a.log, args...)}
}

func appendErr(err error, args []slog.Attr) []slog.Attr {
	if err == nil {
		return args
	}
	return append(args, slog.String("error", err.Error()))
}

func withAttrs(log *slog.Logger, args ...slog.Attr) *slog.Logger {
	if len(args) == 0 {
		return log
	}
	anyArgs := make([]any, 0, len(args))
	for _, arg := range args {
		anyArgs = append(anyArgs, arg)
	}
	return log.With(anyArgs...)
}
