// Package transport delivers serialized Ray requests to an endpoint.
// Delivery is one-shot: implementations never retry and the caller is free to
// ignore the returned error.
package transport

import (
	"time"

	"github.com/rs/zerolog"
)

// Transport sends one request body to endpoint.
type Transport interface {
	Send(endpoint string, body []byte) error
}

// Func adapts a function to Transport.
type Func func(endpoint string, body []byte) error

func (f Func) Send(endpoint string, body []byte) error { return f(endpoint, body) }

// Options are handed to a Factory when building a transport.
type Options struct {
	Timeout time.Duration
	Logger  zerolog.Logger
}

// Info describes a registered transport.
type Info struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Factory builds a Transport. Each transport kind implements and registers one.
type Factory interface {
	Name() string
	Info() Info
	Create(opts Options) (Transport, error)
}
