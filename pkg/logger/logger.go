package logger

import (
	"io"
	"log"
	"os"
)

type Logger interface {
	Infof(format string, v ...any)
	Warnf(format string, v ...any)
	Errorf(format string, v ...any)
	// With 은 "[component] " 접두어가 붙은 Logger 를 돌려줘요.
	With(component string) Logger
}

type stdLogger struct {
	l      *log.Logger
	prefix string
}

func New() Logger { return NewWriter(os.Stderr) }

// NewWriter 는 테스트에서 출력을 잡을 때 써요.
func NewWriter(w io.Writer) Logger {
	return &stdLogger{l: log.New(w, "", log.LstdFlags)}
}

func (s *stdLogger) Infof(format string, v ...any)  { s.l.Printf("[INFO] "+s.prefix+format, v...) }
func (s *stdLogger) Warnf(format string, v ...any)  { s.l.Printf("[WARN] "+s.prefix+format, v...) }
func (s *stdLogger) Errorf(format string, v ...any) { s.l.Printf("[ERROR] "+s.prefix+format, v...) }

func (s *stdLogger) With(component string) Logger {
	return &stdLogger{l: s.l, prefix: s.prefix + "[" + component + "] "}
}
