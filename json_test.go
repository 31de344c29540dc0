// SPDX-License-Identifier: MIT
package exprtree

import (
	"encoding/json"
	"testing"
)

func TestExpr_MarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{name: "empty", src: "", want: `null`},
		{name: "empty parens", src: "()", want: `[{"kind":"Parens","groups":[]}]`},
		{
			name: "nested",
			src:  `(1, "a")`,
			want: `[{"kind":"Parens","groups":[[{"kind":"NumberLit","text":"1"}],` +
				`[{"kind":"Other","text":" "},{"kind":"StringLit","text":"a"}]]}]`,
		},
		{
			name: "collections",
			src:  `[{'x'}]`,
			want: `[{"kind":"Brackets","groups":[[{"kind":"Braces","groups":[[{"kind":"CharLit","text":"x"}]]}]]}]`,
		},
		{name: "escapes kept", src: `"a\"b"`, want: `[{"kind":"StringLit","text":"a\\\"b"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(Parse(tt.src))
			if err != nil {
				t.Fatalf("json.Marshal() error = %v", err)
			}

			if string(got) != tt.want {
				t.Errorf("json.Marshal() = %s, want %s", got, tt.want)
			}
		})
	}
}
