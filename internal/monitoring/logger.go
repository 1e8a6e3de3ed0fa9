// Package monitoring holds the module's diagnostic logging hook.
package monitoring

import "log"

// Logf is the diagnostic logger used by the pipeline and render stages. It
// defaults to log.Printf; replace it with SetLogger to redirect or mute.
var Logf func(format string, v ...interface{}) = log.Printf

// SetLogger replaces the package logger. Passing nil installs a no-op.
func SetLogger(f func(format string, v ...interface{})) {
	if f == nil {
		Logf = func(string, ...interface{}) {}
		return
	}
	Logf = f
}
