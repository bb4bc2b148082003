package transport

// Discard drops every request.
var Discard Transport = Func(func(string, []byte) error { return nil })

type discardFactory struct{}

func (discardFactory) Name() string { return "discard" }

func (discardFactory) Info() Info {
	return Info{Name: "discard", Description: "Drop every request."}
}

func (discardFactory) Create(Options) (Transport, error) {
	return Discard, nil
}
