package domain

import (
	"encoding/json"
	"fmt"
)

// FormFieldKind kind of an intake form answer
type FormFieldKind string

const (
	FieldText    FormFieldKind = "text"
	FieldBoolean FormFieldKind = "boolean"
	FieldFile    FormFieldKind = "file"
	FieldCustom  FormFieldKind = "custom" // Unknown kinds keep their raw payload
)

// FileRef reference to an uploaded file
type FileRef struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Size int64  `json:"size,omitempty"`
}

// FormAnswer one answer of a client intake form.
// Exactly one of Text, Bool, File, Raw is meaningful, selected by Kind.
type FormAnswer struct {
	FieldID string
	Label   string
	Kind    FormFieldKind
	Text    string
	Bool    bool
	File    *FileRef
	Raw     json.RawMessage
}

type formAnswerWire struct {
	FieldID string          `json:"fieldId"`
	Label   string          `json:"label,omitempty"`
	Kind    string          `json:"kind"`
	Value   json.RawMessage `json:"value"`
}

// UnmarshalJSON decodes the wire form {"fieldId","label","kind","value"}
func (a *FormAnswer) UnmarshalJSON(data []byte) error {
	var w formAnswerWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	answer := FormAnswer{FieldID: w.FieldID, Label: w.Label}

	switch FormFieldKind(w.Kind) {
	case FieldText:
		answer.Kind = FieldText
		if len(w.Value) > 0 && string(w.Value) != "null" {
			if err := json.Unmarshal(w.Value, &answer.Text); err != nil {
				return fmt.Errorf("form answer %q: text value: %w", w.FieldID, err)
			}
		}
	case FieldBoolean:
		answer.Kind = FieldBoolean
		if len(w.Value) > 0 && string(w.Value) != "null" {
			if err := json.Unmarshal(w.Value, &answer.Bool); err != nil {
				return fmt.Errorf("form answer %q: boolean value: %w", w.FieldID, err)
			}
		}
	case FieldFile:
		answer.Kind = FieldFile
		if len(w.Value) > 0 && string(w.Value) != "null" {
			var ref FileRef
			if err := json.Unmarshal(w.Value, &ref); err != nil {
				return fmt.Errorf("form answer %q: file value: %w", w.FieldID, err)
			}
			answer.File = &ref
		}
	default:
		answer.Kind = FieldCustom
		answer.Raw = append(json.RawMessage(nil), w.Value...)
	}

	*a = answer
	return nil
}

// MarshalJSON encodes the answer in the same wire form
func (a FormAnswer) MarshalJSON() ([]byte, error) {
	w := formAnswerWire{FieldID: a.FieldID, Label: a.Label, Kind: string(a.Kind)}

	var err error
	switch a.Kind {
	case FieldText:
		w.Value, err = json.Marshal(a.Text)
	case FieldBoolean:
		w.Value, err = json.Marshal(a.Bool)
	case FieldFile:
		w.Value, err = json.Marshal(a.File)
	default:
		w.Kind = string(FieldCustom)
		w.Value = a.Raw
		if len(w.Value) == 0 {
			w.Value = json.RawMessage("null")
		}
	}
	if err != nil {
		return nil, err
	}

	return json.Marshal(w)
}

// DecodeFormAnswers decodes a JSON array of answers; empty input yields no answers
func DecodeFormAnswers(data []byte) ([]FormAnswer, error) {
	if len(data) == 0 || string(data) == "null" {
		return nil, nil
	}
	var answers []FormAnswer
	if err := json.Unmarshal(data, &answers); err != nil {
		return nil, err
	}
	return answers, nil
}
