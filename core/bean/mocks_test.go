package bean

import (
	"reflect"
	"sync"
)

// sampleBean exposes a read/write, a boolean read-only and a write-only property
type sampleBean struct {
	foo string
	bar bool
	qux int
}

func (s *sampleBean) GetFoo() string   { return s.foo }
func (s *sampleBean) SetFoo(v string)  { s.foo = v }
func (s *sampleBean) IsBar() bool      { return s.bar }
func (s *sampleBean) SetQux(v int)     { s.qux = v }
func (s *sampleBean) Getaway() string  { return "" }
func (s *sampleBean) GetWith(int) bool { return false }
func (s *sampleBean) SetMany(...int)   {}
func (s *sampleBean) Reset()           {}

// named is a pure interface bean
type named interface {
	GetName() string
}

// titled inherits its name property from an embedded interface
type titled interface {
	named
	GetTitle() string
	SetTitle(string)
}

type mismatched struct{}

func (mismatched) GetSize() string { return "" }
func (mismatched) SetSize(int)     {}

type ambiguous struct{}

func (ambiguous) GetActive() bool { return true }
func (ambiguous) IsActive() bool  { return true }

type acronyms struct{}

func (acronyms) GetURL() string { return "" }
func (acronyms) GetID() int     { return 0 }

// countingScan wraps introspect and records how often each type is scanned
type countingScan struct {
	mu    sync.Mutex
	calls map[reflect.Type]int
}

func newCountingScan() *countingScan {
	return &countingScan{calls: make(map[reflect.Type]int)}
}

func (c *countingScan) scan(t reflect.Type) ([]PropertyDescriptor, error) {
	c.mu.Lock()
	c.calls[t]++
	c.mu.Unlock()
	return introspect(t)
}

func (c *countingScan) count(t reflect.Type) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls[t]
}

// recordingLogger captures log messages per level
type recordingLogger struct {
	mu       sync.Mutex
	messages map[string][]string
}

func newRecordingLogger() *recordingLogger {
	return &recordingLogger{messages: make(map[string][]string)}
}

func (l *recordingLogger) record(level, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.messages[level] = append(l.messages[level], msg)
}

func (l *recordingLogger) Debug(msg string, _ map[string]interface{}) { l.record("debug", msg) }
func (l *recordingLogger) Info(msg string, _ map[string]interface{})  { l.record("info", msg) }
func (l *recordingLogger) Warn(msg string, _ map[string]interface{})  { l.record("warn", msg) }
func (l *recordingLogger) Error(msg string, _ map[string]interface{}) { l.record("error", msg) }
