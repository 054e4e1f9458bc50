package labels

import (
	"bytes"
	"encoding/json"

	"github.com/cockroachdb/errors"

	"github.com/SeamusWaldron/lettercube/internal/facelet"
	"github.com/SeamusWaldron/lettercube/internal/orientation"
	"github.com/SeamusWaldron/lettercube/internal/scheme"
)

// Decode checks that data is a JSON object of strings with valid sticker
// keys and returns it unfiltered, keyed by canonical sticker name. Two keys
// naming the same sticker, such as "F1" and "f1", reject the payload.
func Decode(data []byte) (map[string]string, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(ErrCorruptData, err.Error())
	}
	if raw == nil {
		return nil, errors.Wrap(ErrCorruptData, "not an object")
	}

	out := make(map[string]string, len(raw))
	for k, v := range raw {
		id, err := facelet.ParseID(k)
		if err != nil {
			return nil, errors.Wrapf(ErrCorruptData, "key %q", k)
		}
		if _, dup := out[id.String()]; dup {
			return nil, errors.Wrapf(ErrCorruptData, "sticker %s listed twice", id)
		}
		if bytes.Equal(bytes.TrimSpace(v), []byte("null")) {
			return nil, errors.Wrapf(ErrCorruptData, "value at %s is null", k)
		}
		var text string
		if err := json.Unmarshal(v, &text); err != nil {
			return nil, errors.Wrapf(ErrCorruptData, "value at %s is not a string", k)
		}
		out[id.String()] = text
	}
	return out, nil
}

// Import parses an exported label file. The payload must be a JSON object
// of strings with valid sticker keys; anything else rejects it as a whole.
// Centers, buffers, aliases and empty values are dropped.
func Import(data []byte, s scheme.Scheme) (*Map, error) {
	raw, err := Decode(data)
	if err != nil {
		return nil, err
	}
	l := New(s)
	for k, v := range raw {
		l.adopt(facelet.MustParseID(k), Normalize(v))
	}
	return l, nil
}

// Export encodes the labels as an indented JSON object with sorted keys.
func (l *Map) Export() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(l.Strings()); err != nil {
		return nil, errors.Wrap(err, "encode labels")
	}
	return buf.Bytes(), nil
}

// Migrate converts labels keyed by physical sticker into logical keys
// under the given orientation. Keys that end up on a center or buffer are
// dropped.
func Migrate(old map[string]string, m orientation.Mapping, s scheme.Scheme) (*Map, error) {
	l := New(s)
	for k, v := range old {
		phys, err := facelet.ParseID(k)
		if err != nil {
			return nil, errors.Wrapf(ErrCorruptData, "key %q", k)
		}
		l.adopt(m.ToOriented(phys), Normalize(v))
	}
	return l, nil
}
