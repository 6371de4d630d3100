package util

import (
	"context"
	"fmt"
	"io"
	"sync"
)

type Logger struct {
	fs []LogFn
	sync.Mutex
}

type LogFn func(lvl Lvl, msg string)
type Lvl int

type loggerKey struct{}

const (
	DEBUG Lvl = iota
	INFO
	WARN
	ERROR
)

func Debugf(ctx context.Context, tpl string, args ...any) { Printf(ctx, DEBUG, tpl, args...) }
func Infof(ctx context.Context, tpl string, args ...any)  { Printf(ctx, INFO, tpl, args...) }
func Warnf(ctx context.Context, tpl string, args ...any)  { Printf(ctx, WARN, tpl, args...) }
func Errorf(ctx context.Context, tpl string, args ...any) { Printf(ctx, ERROR, tpl, args...) }

// WithLogger returns a context carrying fs. Calling it again on such a
// context adds fs to the existing logger.
func WithLogger(ctx context.Context, fs ...LogFn) context.Context {
	l, ok := GetLogger(ctx)
	if !ok {
		return context.WithValue(ctx, loggerKey{}, &Logger{fs: fs})
	}
	l.Lock()
	l.fs = append(l.fs, fs...)
	l.Unlock()
	return ctx
}

func GetLogger(ctx context.Context) (*Logger, bool) {
	l, ok := ctx.Value(loggerKey{}).(*Logger)
	return l, ok
}

func WithLvl(minLvl Lvl, f LogFn) LogFn {
	return func(lvl Lvl, msg string) {
		if lvl >= minLvl {
			f(lvl, msg)
		}
	}
}

// Writer logs "[LVL] msg" lines to w.
func Writer(w io.Writer) LogFn {
	return func(lvl Lvl, msg string) { fmt.Fprintf(w, "[%s] %s\n", lvl, msg) }
}

func Printf(ctx context.Context, lvl Lvl, tpl string, args ...any) {
	if l, ok := GetLogger(ctx); ok {
		l.Lock()
		defer l.Unlock()
		msg := fmt.Sprintf(tpl, args...)
		for _, f := range l.fs {
			f(lvl, msg)
		}
	}
}

func (l Lvl) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	default:
		return fmt.Sprintf("LVL(%d)", int(l))
	}
}

func ParseLvl(l string) Lvl {
	switch l {
	case "ERROR":
		return ERROR
	case "WARN":
		return WARN
	case "INFO":
		return INFO
	default:
		return DEBUG
	}
}
