package compose

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Kind classifies composition warnings.
type Kind uint8

// Kinds of warnings. Neither of them is fatal.
const (
	UnresolvedReference Kind = iota + 1 // `$name` does not name a rule of the sheet
	SelfComposition                     // a rule (indirectly) composes itself
	InvalidDirective                    // the directive's value has an unsupported shape
)

func (k Kind) String() string {
	switch k {
	case UnresolvedReference:
		return "UnresolvedReference"
	case SelfComposition:
		return "SelfComposition"
	case InvalidDirective:
		return "InvalidDirective"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Sentinel errors to test warnings with errors.Is.
var (
	ErrUnresolvedReference = errors.New("referenced rule is not defined")
	ErrSelfComposition     = errors.New("cyclic composition")
	ErrInvalidDirective    = errors.New("invalid composes directive")
)

// Message formats of warnings. The verb is replaced by the CSS source of
// the offending rule.
const (
	MsgUnresolvedReference = "[JSS] Referenced rule is not defined. \r\n%s"
	MsgSelfComposition     = "[JSS] Cyclic composition detected. \r\n%s"
	MsgInvalidDirective    = "[JSS] Composition must be a string or a list of strings. \r\n%s"
)

// Warning reports a failed composition token.
type Warning struct {
	Kind   Kind
	Rule   string // name of the composing rule
	Ref    string // offending token, if any
	Source string // CSS source of the composing rule
}

func (w *Warning) Error() string {
	switch w.Kind {
	case UnresolvedReference:
		return fmt.Sprintf(MsgUnresolvedReference, w.Source)
	case SelfComposition:
		return fmt.Sprintf(MsgSelfComposition, w.Source)
	}
	return fmt.Sprintf(MsgInvalidDirective, w.Source)
}

// Unwrap maps a warning to its sentinel error.
func (w *Warning) Unwrap() error {
	switch w.Kind {
	case UnresolvedReference:
		return ErrUnresolvedReference
	case SelfComposition:
		return ErrSelfComposition
	}
	return ErrInvalidDirective
}

// Reporter receives composition warnings.
type Reporter interface {
	Warn(w *Warning)
}

// WarnFunc adapts a message callback to interface Reporter. The callback
// receives the formatted warning message.
type WarnFunc func(message string)

// Warn calls f with the warning's message.
func (f WarnFunc) Warn(w *Warning) {
	f(w.Error())
}

// diagnostics receives the output of the default reporter.
var diagnostics zapcore.WriteSyncer = zapcore.Lock(os.Stderr)

// defaultLogger is a plain console logger for warnings, writing to stderr.
func defaultLogger() *zap.Logger {
	ec := zap.NewDevelopmentEncoderConfig()
	ec.TimeKey = zapcore.OmitKey
	ec.EncodeLevel = zapcore.CapitalLevelEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(ec), diagnostics, zapcore.WarnLevel)
	return zap.New(core).Named("compose")
}

// LogReporter is a Reporter writing warnings to a logger at warn level.
type LogReporter struct {
	log *zap.Logger
}

// NewLogReporter creates a reporter for log. A nil logger discards warnings.
func NewLogReporter(log *zap.Logger) *LogReporter {
	if log == nil {
		log = zap.NewNop()
	}
	return &LogReporter{log: log}
}

// Warn logs w.
func (lr *LogReporter) Warn(w *Warning) {
	lr.log.Warn(w.Error(),
		zap.Stringer("kind", w.Kind),
		zap.String("rule", w.Rule),
		zap.String("ref", w.Ref),
	)
	tracer().Debugf("compose: %s in rule %q", w.Kind, w.Rule)
}

// Collector is a Reporter which accumulates warnings.
// The zero value is ready to use.
type Collector struct {
	warnings []*Warning
	err      error
}

// Warn records w.
func (c *Collector) Warn(w *Warning) {
	c.warnings = append(c.warnings, w)
	c.err = multierr.Append(c.err, w)
}

// Warnings returns the recorded warnings in order of occurence.
func (c *Collector) Warnings() []*Warning {
	return c.warnings
}

// Err returns all recorded warnings combined into a single error, or nil.
// Use multierr.Errors to split it up again.
func (c *Collector) Err() error {
	return c.err
}
