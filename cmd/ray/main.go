// ray sends one debug event to the Ray inspector from the shell:
//
//	ray --color red --text "deploy started"
//	ray value1 value2          # logged as one entry
//	ray --die 2 "giving up"    # send, then exit with status 2
//
// Configuration comes from RAY_* environment variables; --endpoint replaces
// RAY_ENDPOINT before the configuration is validated.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	ray "github.com/akave-ai/goray"
	"github.com/akave-ai/goray/internal/transport"
	"github.com/akave-ai/goray/internal/version"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Exit); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	endpoint    string
	screen      string
	newScreen   bool
	text        string
	sendText    bool
	html        string
	sendHTML    bool
	color       string
	clearAll    bool
	confetti    bool
	charles     bool
	die         int
	showVersion bool
	transports  bool
}

func parse(args []string) (*options, []string, error) {
	var o options
	flagSet := pflag.NewFlagSet("ray", pflag.ContinueOnError)
	flagSet.StringVar(&o.endpoint, "endpoint", "", "inspector URL (default $RAY_ENDPOINT or "+ray.DefaultEndpoint+")")
	flagSet.StringVar(&o.screen, "screen", "", "open a new screen with this name before anything else")
	flagSet.BoolVar(&o.newScreen, "new-screen", false, "open a new unnamed screen before anything else")
	flagSet.StringVar(&o.text, "text", "", "send a text entry")
	flagSet.StringVar(&o.html, "html", "", "send an HTML entry")
	flagSet.StringVar(&o.color, "color", "", "color marker: green, orange, red, purple, blue or gray")
	flagSet.BoolVar(&o.clearAll, "clear-all", false, "clear every screen")
	flagSet.BoolVar(&o.confetti, "confetti", false, "celebrate")
	flagSet.BoolVar(&o.charles, "charles", false, "send the Charles marker")
	flagSet.IntVar(&o.die, "die", -1, "exit with this status after sending")
	flagSet.BoolVar(&o.showVersion, "version", false, "print version and exit")
	flagSet.BoolVar(&o.transports, "list-transports", false, "list the transports RAY_TRANSPORT accepts")
	if err := flagSet.Parse(args); err != nil {
		return nil, nil, err
	}
	o.sendText = flagSet.Changed("text")
	o.sendHTML = flagSet.Changed("html")
	return &o, flagSet.Args(), nil
}

// run emits the events named by args. exit is called by --die.
func run(args []string, stdout io.Writer, exit func(int)) error {
	o, values, err := parse(args)
	if errors.Is(err, pflag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}
	if o.showVersion {
		fmt.Fprintf(stdout, "ray %s (%s)\n", version.Client(), version.Runtime())
		return nil
	}
	if o.transports {
		for _, info := range transport.Default.AllInfo() {
			fmt.Fprintf(stdout, "%-8s %s\n", info.Name, info.Description)
		}
		return nil
	}

	overrides := map[string]any{}
	if o.endpoint != "" {
		overrides["endpoint"] = o.endpoint
	}
	s, err := ray.NewFromEnvWith(overrides, ray.WithExit(exit))
	if err != nil {
		return err
	}
	apply(s, o, values)
	if o.die >= 0 {
		s.Die(o.die)
	}
	return nil
}

// apply emits the requested events in a fixed order.
func apply(s *ray.Session, o *options, values []string) {
	switch {
	case o.screen != "":
		s.NewScreen(o.screen)
	case o.newScreen:
		s.ClearScreen()
	}
	if o.clearAll {
		s.ClearAll()
	}
	if len(values) > 0 {
		s.Log(values...)
	}
	if o.sendText {
		s.Text(o.text)
	}
	if o.sendHTML {
		s.HTML(o.html)
	}
	if o.color != "" {
		s.Color(o.color)
	}
	if o.charles {
		s.Charles()
	}
	if o.confetti {
		s.Confetti()
	}
}
