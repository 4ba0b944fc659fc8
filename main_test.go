package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gslf/stdt/internal/config"
	"github.com/gslf/stdt/json"
)

func TestProcessJSON_Compact(t *testing.T) {
	out, err := processJSON(`{ "a" : 1 , "b" : [ true , null ] }`, &config.Config{})
	require.NoError(t, err)
	assert.Equal(t, `{"a":1,"b":[true,null]}`, out)
}

func TestProcessJSON_Indent(t *testing.T) {
	out, err := processJSON(`{"a":1}`, &config.Config{Indent: "  "})
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": 1\n}", out)
}

func TestProcessJSON_Rekey(t *testing.T) {
	tests := []struct {
		mode     string
		expected string
	}{
		{"snake", `{"user_name":{"home_dir":"/root"}}`},
		{"camel", `{"userName":{"homeDir":"/root"}}`},
		{"kebab", `{"user-name":{"home-dir":"/root"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			out, err := processJSON(`{"UserName":{"HomeDir":"/root"}}`, &config.Config{Rekey: tt.mode})
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestProcessJSON_InvalidInput(t *testing.T) {
	_, err := processJSON(`{"a":}`, &config.Config{})
	require.Error(t, err)
	assert.ErrorIs(t, err, json.ErrSyntax)
}

func TestRekeyValue_PreservesOrderAndLeaves(t *testing.T) {
	v, err := json.Parse(`{"FirstKey":1,"SecondKey":[{"InnerKey":null}],"third":"Text"}`)
	require.NoError(t, err)

	out := rekeyValue(v, rekeyFunc("snake"))
	assert.Equal(t, `{"first_key":1,"second_key":[{"inner_key":null}],"third":"Text"}`, json.Serialize(out))
}

func TestRekeyValue_CollapsedKeysLastWins(t *testing.T) {
	v, err := json.Parse(`{"my_key":1,"MyKey":2}`)
	require.NoError(t, err)

	out := rekeyValue(v, rekeyFunc("snake"))
	obj, ok := out.AsObject()
	require.True(t, ok)
	require.Equal(t, 1, obj.Len())
	got, _ := obj.Get("my_key")
	assert.True(t, got.Equal(json.Number(2)))
}
