package logging

import "errors"

// ErrNoCapturer is returned by Transient when no transient capturer is set.
var ErrNoCapturer = errors.New("logging: no message capturer")

// MessageCapturer receives messages meant for the host application, such as
// a toast or a crash-report breadcrumb.
type MessageCapturer interface {
	Capture(msg string)
}

// CapturerFunc adapts a plain func to MessageCapturer.
type CapturerFunc func(msg string)

func (f CapturerFunc) Capture(msg string) { f(msg) }
