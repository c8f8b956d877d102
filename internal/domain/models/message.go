package models

import (
	"encoding/json"
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Message is one entry in a chat's transcript. Messages are append-only:
// they are never mutated, only bulk-deleted when trailing history is
// discarded or the chat itself is removed.
type Message struct {
	ID          string       `json:"id"`
	ChatID      string       `json:"chatId"`
	Role        string       `json:"role"`
	Parts       Parts        `json:"parts"`
	Attachments []Attachment `json:"attachments"`
	CreatedAt   time.Time    `json:"createdAt"`
}

// Validate enforces required fields. Role is a free-form string
// ("user", "assistant", ...) by design.
func (m Message) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.ID, validation.Required),
		validation.Field(&m.ChatID, validation.Required),
		validation.Field(&m.Role, validation.Required),
		validation.Field(&m.Parts, validation.Required),
	)
}

// Attachment references an uploaded file associated with a message.
type Attachment struct {
	URL         string `json:"url"`
	Name        string `json:"name,omitempty"`
	ContentType string `json:"contentType,omitempty"`
}

// PartType discriminates the closed set of message part variants.
type PartType string

const (
	PartTypeText       PartType = "text"
	PartTypeReasoning  PartType = "reasoning"
	PartTypeToolCall   PartType = "tool-call"
	PartTypeToolResult PartType = "tool-result"
	PartTypeFile       PartType = "file"
)

// Part is one element of a message's ordered content. The set of
// implementations is closed; unknown part types are rejected at the
// deserialization boundary rather than carried around as untyped data.
type Part interface {
	PartType() PartType
}

// TextPart is plain assistant or user text.
type TextPart struct {
	Text string `json:"text"`
}

// ReasoningPart carries model reasoning surfaced alongside the answer.
type ReasoningPart struct {
	Text string `json:"text"`
}

// ToolCallPart records a tool invocation requested by the model.
type ToolCallPart struct {
	ToolCallID string          `json:"toolCallId"`
	ToolName   string          `json:"toolName"`
	Input      json.RawMessage `json:"input,omitempty"`
}

// ToolResultPart records the outcome of a tool invocation.
type ToolResultPart struct {
	ToolCallID string          `json:"toolCallId"`
	ToolName   string          `json:"toolName,omitempty"`
	Output     json.RawMessage `json:"output,omitempty"`
}

// FilePart references a file embedded in the conversation.
type FilePart struct {
	URL       string `json:"url"`
	Name      string `json:"name,omitempty"`
	MediaType string `json:"mediaType"`
}

func (TextPart) PartType() PartType       { return PartTypeText }
func (ReasoningPart) PartType() PartType  { return PartTypeReasoning }
func (ToolCallPart) PartType() PartType   { return PartTypeToolCall }
func (ToolResultPart) PartType() PartType { return PartTypeToolResult }
func (FilePart) PartType() PartType       { return PartTypeFile }

// Parts is the ordered content of a message. It serializes each part as
// an envelope carrying a "type" tag next to the variant's own fields.
type Parts []Part

func (p Parts) MarshalJSON() ([]byte, error) {
	out := make([]json.RawMessage, 0, len(p))
	for _, part := range p {
		b, err := marshalPart(part)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return json.Marshal(out)
}

func marshalPart(p Part) ([]byte, error) {
	switch v := p.(type) {
	case TextPart:
		return json.Marshal(struct {
			Type PartType `json:"type"`
			TextPart
		}{PartTypeText, v})
	case ReasoningPart:
		return json.Marshal(struct {
			Type PartType `json:"type"`
			ReasoningPart
		}{PartTypeReasoning, v})
	case ToolCallPart:
		return json.Marshal(struct {
			Type PartType `json:"type"`
			ToolCallPart
		}{PartTypeToolCall, v})
	case ToolResultPart:
		return json.Marshal(struct {
			Type PartType `json:"type"`
			ToolResultPart
		}{PartTypeToolResult, v})
	case FilePart:
		return json.Marshal(struct {
			Type PartType `json:"type"`
			FilePart
		}{PartTypeFile, v})
	default:
		return nil, fmt.Errorf("unsupported message part type %T", p)
	}
}

func (p *Parts) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("parts must be a JSON array: %w", err)
	}

	parts := make(Parts, 0, len(raw))
	for i, r := range raw {
		var probe struct {
			Type PartType `json:"type"`
		}
		if err := json.Unmarshal(r, &probe); err != nil {
			return fmt.Errorf("part %d: %w", i, err)
		}

		var (
			part Part
			err  error
		)
		switch probe.Type {
		case PartTypeText:
			var v TextPart
			err = json.Unmarshal(r, &v)
			part = v
		case PartTypeReasoning:
			var v ReasoningPart
			err = json.Unmarshal(r, &v)
			part = v
		case PartTypeToolCall:
			var v ToolCallPart
			err = json.Unmarshal(r, &v)
			part = v
		case PartTypeToolResult:
			var v ToolResultPart
			err = json.Unmarshal(r, &v)
			part = v
		case PartTypeFile:
			var v FilePart
			err = json.Unmarshal(r, &v)
			part = v
		default:
			return fmt.Errorf("part %d: unknown message part type %q", i, probe.Type)
		}
		if err != nil {
			return fmt.Errorf("part %d (%s): %w", i, probe.Type, err)
		}
		parts = append(parts, part)
	}

	*p = parts
	return nil
}
