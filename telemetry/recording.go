package telemetry

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Recording is a captured sequence of host samples.
type Recording struct {
	SessionID string   `yaml:"session_id" cbor:"1,keyasint,omitempty"`
	Game      string   `yaml:"game" cbor:"2,keyasint,omitempty"`
	Samples   []Sample `yaml:"samples" cbor:"3,keyasint"`
}

// Format identifies a recording encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatCBOR Format = "cbor"
)

// FormatFromPath picks the encoding from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".cbor":
		return FormatCBOR, nil
	}
	return "", fmt.Errorf("unrecognized recording extension %q (want .yaml, .yml or .cbor)", filepath.Ext(path))
}

// LoadRecording reads a recording file, choosing the decoder by extension.
func LoadRecording(path string) (*Recording, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading recording: %w", err)
	}
	return DecodeRecording(data, format)
}

// DecodeRecording parses data in the given format. A recording without a
// session id is assigned a fresh one.
func DecodeRecording(data []byte, format Format) (*Recording, error) {
	var rec Recording
	switch format {
	case FormatYAML:
		decoder := yaml.NewDecoder(bytes.NewReader(data))
		decoder.KnownFields(true)
		if err := decoder.Decode(&rec); err != nil {
			return nil, fmt.Errorf("parsing YAML recording: %w", err)
		}
	case FormatCBOR:
		if err := cbor.Unmarshal(data, &rec); err != nil {
			return nil, fmt.Errorf("parsing CBOR recording: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown recording format %q", format)
	}
	if rec.SessionID == "" {
		rec.SessionID = uuid.NewString()
	}
	return &rec, nil
}

// Encode writes the recording to w in the given format.
func (r *Recording) Encode(w io.Writer, format Format) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("encoding YAML recording: %w", err)
		}
		return enc.Close()
	case FormatCBOR:
		data, err := cbor.Marshal(r)
		if err != nil {
			return fmt.Errorf("encoding CBOR recording: %w", err)
		}
		_, err = w.Write(data)
		return err
	}
	return fmt.Errorf("unknown recording format %q", format)
}

// ActiveSamples counts samples taken while the session was live or replaying.
func (r *Recording) ActiveSamples() int {
	n := 0
	for _, s := range r.Samples {
		if s.Active() {
			n++
		}
	}
	return n
}
