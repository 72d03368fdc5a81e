package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlexInt_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{name: "number", input: `4`, want: 4},
		{name: "numeric string", input: `"4"`, want: 4},
		{name: "padded numeric string", input: `" 4 "`, want: 4},
		{name: "negative number", input: `-1`, want: -1},
		{name: "word", input: `"four"`, wantErr: true},
		{name: "empty string", input: `""`, wantErr: true},
		{name: "null", input: `null`, wantErr: true},
		{name: "float", input: `4.5`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f FlexInt
			err := json.Unmarshal([]byte(tt.input), &f)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, f.Int())
		})
	}
}

func TestFlexInt_InStruct(t *testing.T) {
	type payload struct {
		Semester *FlexInt `json:"semester"`
	}

	t.Run("absent field stays nil", func(t *testing.T) {
		var p payload
		assert.NoError(t, json.Unmarshal([]byte(`{}`), &p))
		assert.Nil(t, p.Semester)
	})

	t.Run("string value decodes", func(t *testing.T) {
		var p payload
		assert.NoError(t, json.Unmarshal([]byte(`{"semester":"7"}`), &p))
		if assert.NotNil(t, p.Semester) {
			assert.Equal(t, 7, p.Semester.Int())
		}
	})
}
