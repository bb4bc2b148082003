package ray

// Wire kinds. Text, HTML and Charles all travel as "custom"; the inspector
// tells them apart by the label inside the content.
const (
	KindLog       = "log"
	KindCustom    = "custom"
	KindColor     = "color"
	KindClearAll  = "clear_all"
	KindConfetti  = "confetti"
	KindNewScreen = "new_screen"
)

// Label is the inner discriminator carried by labelled payloads.
type Label string

const (
	LabelLog      Label = "Log"
	LabelText     Label = "Text"
	LabelHTML     Label = "HTML"
	LabelClearAll Label = "ClearAll"
	LabelConfetti Label = "Confetti"
)

// CharlesContent is the fixed payload of the Charles marker.
const CharlesContent = "🎶 🎹 🎷 🕺"

// Message is a payload variant. The set is closed: only types in this
// package implement it.
type Message interface {
	// Kind is the wire "type" of the content entry carrying the message.
	Kind() string
	message()
}

type LogMessage struct {
	Label  Label    `json:"label"`
	Values []string `json:"values"`
}

func newLogMessage(values []string) LogMessage {
	cp := make([]string, len(values))
	copy(cp, values)
	return LogMessage{Label: LabelLog, Values: cp}
}

type TextMessage struct {
	Label   Label  `json:"label"`
	Content string `json:"content"`
}

type HTMLMessage struct {
	Label   Label  `json:"label"`
	Content string `json:"content"`
}

type ColorMessage struct {
	Color Color `json:"color"`
}

type ClearAllMessage struct {
	Label Label `json:"label"`
}

type ConfettiMessage struct {
	Label Label `json:"label"`
}

type CharlesMessage struct {
	Content string `json:"content"`
}

// NewScreenMessage opens a new screen in the inspector. An empty Name lets
// the inspector pick one.
type NewScreenMessage struct {
	Name string `json:"name"`
}

func (LogMessage) Kind() string       { return KindLog }
func (TextMessage) Kind() string      { return KindCustom }
func (HTMLMessage) Kind() string      { return KindCustom }
func (CharlesMessage) Kind() string   { return KindCustom }
func (ColorMessage) Kind() string     { return KindColor }
func (ClearAllMessage) Kind() string  { return KindClearAll }
func (ConfettiMessage) Kind() string  { return KindConfetti }
func (NewScreenMessage) Kind() string { return KindNewScreen }

func (LogMessage) message()       {}
func (TextMessage) message()      {}
func (HTMLMessage) message()      {}
func (CharlesMessage) message()   {}
func (ColorMessage) message()     {}
func (ClearAllMessage) message()  {}
func (ConfettiMessage) message()  {}
func (NewScreenMessage) message() {}
