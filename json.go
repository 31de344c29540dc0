// SPDX-License-Identifier: MIT
package exprtree

import (
	"encoding/json"
)

type (
	// jsonNested is the encoding of Parens, Brackets & Braces.
	jsonNested struct {
		Kind   string         `json:"kind"`
		Groups CommaSeparated `json:"groups"`
	}

	// jsonLeaf is the encoding of literals & Other.
	jsonLeaf struct {
		Kind string `json:"kind"`
		Text string `json:"text"`
	}
)

// MarshalJSON implements json.Marshaler.
func (e Parens) MarshalJSON() ([]byte, error) { return marshalNested(e, e.Groups) }

// MarshalJSON implements json.Marshaler.
func (e Brackets) MarshalJSON() ([]byte, error) { return marshalNested(e, e.Groups) }

// MarshalJSON implements json.Marshaler.
func (e Braces) MarshalJSON() ([]byte, error) { return marshalNested(e, e.Groups) }

// MarshalJSON implements json.Marshaler.
func (e StringLit) MarshalJSON() ([]byte, error) { return marshalLeaf(e, e.Text) }

// MarshalJSON implements json.Marshaler.
func (e CharLit) MarshalJSON() ([]byte, error) { return marshalLeaf(e, e.Text) }

// MarshalJSON implements json.Marshaler.
func (e NumberLit) MarshalJSON() ([]byte, error) { return marshalLeaf(e, e.Text) }

// MarshalJSON implements json.Marshaler.
func (e Other) MarshalJSON() ([]byte, error) { return marshalLeaf(e, e.Text) }

func marshalNested(e Expr, groups CommaSeparated) ([]byte, error) {
	// Encode empty collections as `[]` rather than null.
	if groups == nil {
		groups = CommaSeparated{}
	}

	return json.Marshal(jsonNested{Kind: e.Kind().String(), Groups: groups})
}

func marshalLeaf(e Expr, text string) ([]byte, error) {
	return json.Marshal(jsonLeaf{Kind: e.Kind().String(), Text: text})
}
