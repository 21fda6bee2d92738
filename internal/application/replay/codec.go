package replay

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
)

// Codec reads and writes replay data in one file format
type Codec interface {
	Encode(w io.Writer, data *ReplayData) error
	Decode(r io.Reader, data *ReplayData) error
	Ext() string
}

// JSONCodec stores replays as indented JSON
type JSONCodec struct{}

// Encode implements Codec
func (JSONCodec) Encode(w io.Writer, data *ReplayData) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// Decode implements Codec
func (JSONCodec) Decode(r io.Reader, data *ReplayData) error {
	return json.NewDecoder(r).Decode(data)
}

// Ext implements Codec
func (JSONCodec) Ext() string { return ".json" }

// MsgpackCodec stores replays as MessagePack, roughly a fifth of the JSON size
type MsgpackCodec struct{}

// Encode implements Codec
func (MsgpackCodec) Encode(w io.Writer, data *ReplayData) error {
	return msgpack.NewEncoder(w).Encode(data)
}

// Decode implements Codec
func (MsgpackCodec) Decode(r io.Reader, data *ReplayData) error {
	return msgpack.NewDecoder(r).Decode(data)
}

// Ext implements Codec
func (MsgpackCodec) Ext() string { return ".msgpack" }

// CodecFor picks a codec from the file extension. Anything that is not
// .msgpack or .mp is treated as JSON.
func CodecFor(filename string) Codec {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".msgpack", ".mp":
		return MsgpackCodec{}
	default:
		return JSONCodec{}
	}
}

// SaveReplay writes replay data to a file in the format its extension names
func SaveReplay(filename string, data *ReplayData) error {
	if len(data.Frames) == 0 {
		return fmt.Errorf("no frames to save")
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	if err := CodecFor(filename).Encode(file, data); err != nil {
		_ = file.Close()
		return fmt.Errorf("failed to encode replay: %w", err)
	}
	return file.Close()
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data ReplayData
	if err := CodecFor(filename).Decode(file, &data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}

	return &data, nil
}
