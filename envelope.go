package ray

import (
	"os"
	"runtime"
	"strings"

	"github.com/akave-ai/goray/internal/version"
)

// Request is the body posted to the inspector on every dispatch.
type Request struct {
	UUID     string    `json:"uuid"`
	Payloads []Content `json:"payloads"`
	Meta     Meta      `json:"meta"`
}

// Content is one event: a message wrapped with where it came from.
type Content struct {
	Type    string  `json:"type"`
	Content Message `json:"content"`
	Origin  Origin  `json:"origin"`
}

// Origin is the call site of an event.
type Origin struct {
	FunctionName string `json:"function_name"`
	File         string `json:"file"`
	LineNumber   int    `json:"line_number"`
	Hostname     string `json:"hostname"`
}

// Meta describes the client environment. Set once per session.
type Meta struct {
	GoVersion      string `json:"go_version"`
	PackageVersion string `json:"package_version"`
}

// placeholderOrigin is sent when call-site capture is off or fails.
var placeholderOrigin = Origin{
	FunctionName: "ray",
	File:         "",
	LineNumber:   0,
	Hostname:     "localhost",
}

func newMeta() Meta {
	return Meta{
		GoVersion:      version.Runtime(),
		PackageVersion: version.Client(),
	}
}

// wrap builds a Content whose type always matches the message.
func wrap(msg Message, origin Origin) Content {
	return Content{
		Type:    msg.Kind(),
		Content: msg,
		Origin:  origin,
	}
}

var pkgPrefix = func() string {
	pc, _, _, _ := runtime.Caller(0)
	name := runtime.FuncForPC(pc).Name()
	slash := strings.LastIndex(name, "/")
	dot := strings.Index(name[slash+1:], ".")
	return name[:slash+1+dot+1]
}()

// callerOrigin returns the first stack frame outside this package, falling
// back to the placeholder for anything it cannot determine.
func callerOrigin() Origin {
	o := placeholderOrigin
	if host, err := os.Hostname(); err == nil && host != "" {
		o.Hostname = host
	}

	pcs := make([]uintptr, 16)
	n := runtime.Callers(2, pcs)
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		if frame.Function != "" && !strings.HasPrefix(frame.Function, pkgPrefix) {
			o.FunctionName = shortFuncName(frame.Function)
			o.File = frame.File
			o.LineNumber = frame.Line
			return o
		}
		if !more {
			return o
		}
	}
}

// shortFuncName trims the import path: "a/b/pkg.(*T).M" becomes "pkg.(*T).M".
func shortFuncName(name string) string {
	if i := strings.LastIndex(name, "/"); i >= 0 {
		return name[i+1:]
	}
	return name
}
