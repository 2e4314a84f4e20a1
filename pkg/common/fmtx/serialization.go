package fmtx

import (
	"encoding/json"
	"fmt"
	"gopkg.in/yaml.v3"
	"io"
	"os"
)

const (
	// None skips printing output of the commands
	None string = "none"

	// Text prints output of the commands as human-readable text
	Text string = "text"

	// YML prints output of the commands in YML format
	YML string = "yml"

	// JSON prints output of the commands in JSON format
	JSON string = "json"
)

func MarshalDataInFormat(dataFormat string, value any) (string, error) {
	switch dataFormat {
	case YML:
		return MarshalYML(value)
	case JSON:
		return MarshalJSON(value)
	case Text:
		return MarshalText(value), nil
	default:
		return "", fmt.Errorf("cannot encode data; unsupported data format '%s'", dataFormat)
	}
}

func UnmarshalDataInFormat(dataFormat string, reader io.Reader, out any) error {
	switch dataFormat {
	case YML:
		return UnmarshalYML(reader, out)
	case JSON:
		return UnmarshalJSON(reader, out)
	default:
		return fmt.Errorf("cannot decode data to struct; unsupported data format '%s'", dataFormat)
	}
}

func UnmarshalFileInFormat(dataFormat string, path string, out any) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("cannot open file '%s': %w", path, err)
	}
	defer file.Close()
	if err := UnmarshalDataInFormat(dataFormat, file, out); err != nil {
		return fmt.Errorf("cannot parse file '%s': %w", path, err)
	}
	return nil
}

func MarshalJSON(value any) (string, error) {
	bytes, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return "", fmt.Errorf("cannot convert value of type '%T' to JSON: %w", value, err)
	}
	return string(bytes), nil
}

func UnmarshalJSON(reader io.Reader, out any) error {
	if err := json.NewDecoder(reader).Decode(out); err != nil {
		return fmt.Errorf("cannot decode stream as JSON: %w", err)
	}
	return nil
}

func MarshalYML(value any) (string, error) {
	bytes, err := yaml.Marshal(value)
	if err != nil {
		return "", fmt.Errorf("cannot convert value of type '%T' to YML: %w", value, err)
	}
	return string(bytes), nil
}

func UnmarshalYML(reader io.Reader, out any) error {
	if err := yaml.NewDecoder(reader).Decode(out); err != nil {
		return fmt.Errorf("cannot decode stream as YML: %w", err)
	}
	return nil
}

// TextMarshaler is implemented by values having their own human-readable form
type TextMarshaler interface {
	MarshalText() string
}

func MarshalText(value any) string {
	if marshaler, ok := value.(TextMarshaler); ok {
		return marshaler.MarshalText()
	}
	return fmt.Sprintf("%v", value)
}
