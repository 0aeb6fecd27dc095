package tube

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/pkg/errors"
)

type stackTracer interface {
	StackTrace() errors.StackTrace
}

// ExceptionMessage renders err for a log line: the type and message of the
// root cause, followed by the stack recorded by github.com/pkg/errors with the
// working directory trimmed from file paths.
//
//  Exception *errors.fundamental -> boom
//     worker.go:42 in github.com/acme/app.(*Worker).work
//
func ExceptionMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := []string{fmt.Sprintf("Exception %T -> %s", errors.Cause(err), err.Error())}

	base := ""
	if wd, wdErr := os.Getwd(); wdErr == nil {
		base = filepath.Clean(wd) + string(filepath.Separator)
	}
	for _, f := range innermostStack(err) {
		pc := uintptr(f) - 1
		fn := runtime.FuncForPC(pc)
		if fn == nil {
			continue
		}
		file, line := fn.FileLine(pc)
		msg = append(msg, fmt.Sprintf("   %s:%d in %s", strings.TrimPrefix(file, base), line, fn.Name()))
	}
	return strings.Join(msg, "\n")
}

// innermostStack returns the stack closest to where err originated.
func innermostStack(err error) errors.StackTrace {
	var stack errors.StackTrace
	for err != nil {
		if st, ok := err.(stackTracer); ok {
			stack = st.StackTrace()
		}
		switch e := err.(type) {
		case interface{ Cause() error }:
			err = e.Cause()
		case interface{ Unwrap() error }:
			err = e.Unwrap()
		default:
			err = nil
		}
	}
	return stack
}
