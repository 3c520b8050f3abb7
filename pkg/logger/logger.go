package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// LevelBasedMuxHandler пишет в stdout и, если задан, в файл.
// В файл уходят записи от Info и выше с указанием источника.
type LevelBasedMuxHandler struct {
	stdoutHandler slog.Handler
	fileHandler   slog.Handler
}

type LoggerWithFile struct {
	Logger  *slog.Logger
	LogFile *os.File
}

func NewLevelBasedMuxHandler(stdout, file io.Writer, level slog.Level) *LevelBasedMuxHandler {
	h := &LevelBasedMuxHandler{
		stdoutHandler: slog.NewJSONHandler(stdout, &slog.HandlerOptions{
			Level:     level,
			AddSource: false,
		}),
	}
	if file != nil {
		h.fileHandler = slog.NewJSONHandler(file, &slog.HandlerOptions{
			Level:     max(level, slog.LevelInfo),
			AddSource: true,
		})
	}
	return h
}

func (h *LevelBasedMuxHandler) Enabled(ctx context.Context, level slog.Level) bool {
	if h.stdoutHandler.Enabled(ctx, level) {
		return true
	}
	return h.fileHandler != nil && h.fileHandler.Enabled(ctx, level)
}

func (h *LevelBasedMuxHandler) Handle(ctx context.Context, r slog.Record) error {
	if h.fileHandler != nil && h.fileHandler.Enabled(ctx, r.Level) {
		if err := h.fileHandler.Handle(ctx, r.Clone()); err != nil {
			return err
		}
	}

	if !h.stdoutHandler.Enabled(ctx, r.Level) {
		return nil
	}
	return h.stdoutHandler.Handle(ctx, r)
}

func (h *LevelBasedMuxHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := &LevelBasedMuxHandler{stdoutHandler: h.stdoutHandler.WithAttrs(attrs)}
	if h.fileHandler != nil {
		next.fileHandler = h.fileHandler.WithAttrs(attrs)
	}
	return next
}

func (h *LevelBasedMuxHandler) WithGroup(name string) slog.Handler {
	next := &LevelBasedMuxHandler{stdoutHandler: h.stdoutHandler.WithGroup(name)}
	if h.fileHandler != nil {
		next.fileHandler = h.fileHandler.WithGroup(name)
	}
	return next
}

// ParseLevel понимает debug, info, warn, error. Пустая строка даёт info.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if strings.TrimSpace(s) == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("неизвестный уровень логирования %q: %w", s, err)
	}
	return level, nil
}

// NewLoggerWithFile создает логгер. Пустой fileName отключает запись в файл.
func NewLoggerWithFile(fileName string, level slog.Level) (*LoggerWithFile, error) {
	if fileName == "" {
		return &LoggerWithFile{
			Logger: slog.New(NewLevelBasedMuxHandler(os.Stdout, nil, level)),
		}, nil
	}

	logFile, err := os.OpenFile(fileName, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("не удалось открыть файл логов: %w", err)
	}

	handler := NewLevelBasedMuxHandler(os.Stdout, logFile, level)
	return &LoggerWithFile{
		Logger:  slog.New(handler),
		LogFile: logFile,
	}, nil
}
