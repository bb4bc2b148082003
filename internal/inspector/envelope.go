package inspector

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"

	ray "github.com/akave-ai/goray"
)

// Envelope is a Ray request as received. Payload contents stay raw: the
// inspector renders what it understands and shows the rest verbatim.
type Envelope struct {
	UUID     string            `json:"uuid" validate:"required"`
	Payloads []Payload         `json:"payloads" validate:"dive"`
	Meta     map[string]string `json:"meta"`
}

// Payload is one received content entry.
type Payload struct {
	Type    string          `json:"type" validate:"required"`
	Content json.RawMessage `json:"content"`
	Origin  ray.Origin      `json:"origin"`
}

var validate = validator.New()

// DecodeEnvelope parses and validates a request body.
func DecodeEnvelope(body []byte) (*Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("decode request: %w", err)
	}
	if err := validate.Struct(&env); err != nil {
		return nil, fmt.Errorf("invalid request: %w", err)
	}
	return &env, nil
}
