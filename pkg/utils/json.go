package utils

import (
	"encoding/json"

	"github.com/hokaccha/go-prettyjson"
)

func ToJsonStr(obj interface{}) (string, error) {
	jsonBytes, err := json.Marshal(obj)
	if err != nil {
		return "", err
	}
	return string(jsonBytes), nil
}

// ToPrettyJson renders obj as indented, coloured JSON for terminals.
func ToPrettyJson(obj interface{}) (string, error) {
	out, err := prettyjson.Marshal(obj)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// ToIndentedJson renders obj as plain indented JSON.
func ToIndentedJson(obj interface{}) (string, error) {
	out, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		return "", err
	}
	return string(out), nil
}
