package httputil

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type patchBody struct {
	Name     *string        `json:"name"`
	Note     OptionalString `json:"description"`
	ParentID OptionalInt64  `json:"parentAccountId"`
}

func TestOptional_TriState(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantPresent bool
		wantValue   *int64
	}{
		{name: "absent", body: `{"name":"x"}`, wantPresent: false},
		{name: "null", body: `{"parentAccountId":null}`, wantPresent: true},
		{name: "value", body: `{"parentAccountId":7}`, wantPresent: true, wantValue: ptr(int64(7))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body patchBody
			require.NoError(t, json.Unmarshal([]byte(tt.body), &body))
			assert.Equal(t, tt.wantPresent, body.ParentID.Present)
			assert.Equal(t, tt.wantValue, body.ParentID.Value)
		})
	}
}

func TestOptional_RejectsWrongType(t *testing.T) {
	var body patchBody
	err := json.Unmarshal([]byte(`{"parentAccountId":"seven"}`), &body)
	assert.Error(t, err)
}

func TestOptional_Or(t *testing.T) {
	current := ptr("old")

	var absent OptionalString
	assert.Equal(t, current, absent.Or(current))
	assert.Nil(t, Null[string]().Or(current))
	assert.Equal(t, "new", *Set("new").Or(current))
}

func TestPathID(t *testing.T) {
	tests := []struct {
		value   string
		want    int64
		wantErr bool
	}{
		{value: "12", want: 12},
		{value: "0", wantErr: true},
		{value: "-3", wantErr: true},
		{value: "abc", wantErr: true},
		{value: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/api/accounts/x", nil)
			r.SetPathValue("id", tt.value)

			got, err := PathID(r, "id")
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func ptr[T any](v T) *T { return &v }
