package json

import (
	jsoniter "github.com/json-iterator/go"
)

var jiter = jsoniter.ConfigFastest

// Marshal disable html escape
func Marshal(v interface{}) ([]byte, error) {
	return jiter.Marshal(v)
}

// Unmarshal same as sys unmarshal
func Unmarshal(data []byte, v interface{}) error {
	return jiter.Unmarshal(data, v)
}
