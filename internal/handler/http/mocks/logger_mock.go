package mocks

import (
	"fmt"
	"strings"
	"sync"

	usecasecontract "github.com/mikiasgoitom/likeboard/internal/usecase/contract"
)

// MockLogger records formatted log lines per level.
type MockLogger struct {
	mu       sync.Mutex
	Warnings []string
	Errors   []string
	Infos    []string
}

var _ usecasecontract.IAppLogger = (*MockLogger)(nil)

func (l *MockLogger) record(dst *[]string, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	*dst = append(*dst, fmt.Sprintf(format, args...))
}

func (l *MockLogger) Debugf(format string, args ...interface{}) {}

func (l *MockLogger) Infof(format string, args ...interface{}) {
	l.record(&l.Infos, format, args...)
}

func (l *MockLogger) Warnf(format string, args ...interface{}) {
	l.record(&l.Warnings, format, args...)
}

func (l *MockLogger) Errorf(format string, args ...interface{}) {
	l.record(&l.Errors, format, args...)
}

func (l *MockLogger) Fatalf(format string, args ...interface{}) {
	l.record(&l.Errors, format, args...)
}

// WarnedAbout reports whether any warning contains s.
func (l *MockLogger) WarnedAbout(s string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, w := range l.Warnings {
		if strings.Contains(w, s) {
			return true
		}
	}
	return false
}
