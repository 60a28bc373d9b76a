package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptional_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantSet   bool
		wantNull  bool
		wantValue string
	}{
		{name: "absent", body: `{}`},
		{name: "null", body: `{"status":null}`, wantSet: true, wantNull: true},
		{name: "value", body: `{"status":"reviewed"}`, wantSet: true, wantValue: "reviewed"},
		{name: "empty string is a value", body: `{"status":""}`, wantSet: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var payload struct {
				Status Optional[string] `json:"status"`
			}
			require.NoError(t, json.Unmarshal([]byte(tt.body), &payload))

			assert.Equal(t, tt.wantSet, payload.Status.IsSet())
			assert.Equal(t, tt.wantNull, payload.Status.IsNull())
			v, ok := payload.Status.Get()
			assert.Equal(t, tt.wantSet && !tt.wantNull, ok)
			assert.Equal(t, tt.wantValue, v)
		})
	}
}

func TestOptional_UnmarshalJSON_TypeMismatch(t *testing.T) {
	var payload struct {
		Rating Optional[float32] `json:"rating"`
	}
	err := json.Unmarshal([]byte(`{"rating":"high"}`), &payload)
	assert.Error(t, err)
}

func TestOptional_Accessors(t *testing.T) {
	some := Some(float32(4.5))
	assert.Equal(t, float32(4.5), some.ValueOr(1))
	require.NotNil(t, some.Ptr())
	assert.Equal(t, float32(4.5), *some.Ptr())

	null := Null[float32]()
	assert.True(t, null.IsNull())
	assert.Equal(t, float32(1), null.ValueOr(1))
	assert.Nil(t, null.Ptr())

	var absent Optional[float32]
	assert.False(t, absent.IsSet())
	assert.Equal(t, float32(1), absent.ValueOr(1))
	assert.Nil(t, absent.Ptr())
}

func TestOptional_MarshalJSON(t *testing.T) {
	out, err := json.Marshal(struct {
		A Optional[string] `json:"a"`
		B Optional[string] `json:"b"`
		C Optional[string] `json:"c"`
	}{A: Some("x"), B: Null[string]()})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":"x","b":null,"c":null}`, string(out))
}
