package protocol

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/tinylib/msgp/msgp"
)

var (
	ErrUnknownMessageType = errors.New("unknown message type")
	ErrMissingType        = errors.New("message has no type")
)

// Encoding selects the wire format of a frame.
type Encoding int

const (
	JSON    Encoding = iota // text frames
	MsgPack                 // binary frames
)

func (e Encoding) String() string {
	if e == MsgPack {
		return "msgpack"
	}
	return "json"
}

// Pool of buffers to avoid allocation and ensure thread safety
var bufferPool = sync.Pool{
	New: func() any {
		return &bytes.Buffer{}
	},
}

// Marshal serializes a message in the given encoding.
func Marshal(enc Encoding, m Message) ([]byte, error) {
	if enc == JSON {
		return json.Marshal(m)
	}

	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	defer bufferPool.Put(buf)

	w := msgp.NewWriter(buf)
	if err := m.EncodeMsg(w); err != nil {
		return nil, err
	}
	if err := w.Flush(); err != nil {
		return nil, err
	}

	// Copy out of the pooled buffer
	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())
	return out, nil
}

// Unmarshal decodes data into a known message.
func Unmarshal(enc Encoding, data []byte, m Message) error {
	if enc == JSON {
		return json.Unmarshal(data, m)
	}
	return m.DecodeMsg(msgp.NewReader(bytes.NewReader(data)))
}

// PeekType returns the "type" field of an encoded message without decoding
// the rest of it.
func PeekType(enc Encoding, data []byte) (string, error) {
	if enc == JSON {
		var env struct {
			Type string `json:"type"`
		}
		if err := json.Unmarshal(data, &env); err != nil {
			return "", err
		}
		if env.Type == "" {
			return "", ErrMissingType
		}
		return env.Type, nil
	}

	n, rest, err := msgp.ReadMapHeaderBytes(data)
	if err != nil {
		return "", err
	}
	for range n {
		var key []byte
		key, rest, err = msgp.ReadMapKeyZC(rest)
		if err != nil {
			return "", err
		}
		if msgp.UnsafeString(key) != "type" {
			if rest, err = msgp.Skip(rest); err != nil {
				return "", err
			}
			continue
		}
		typ, _, err := msgp.ReadStringBytes(rest)
		if err != nil {
			return "", err
		}
		if typ == "" {
			return "", ErrMissingType
		}
		return typ, nil
	}
	return "", ErrMissingType
}

// New returns an empty message for a type name.
func New(typ string) (Message, error) {
	switch typ {
	case TypeReset:
		return &Reset{}, nil
	case TypeAction:
		return &Action{}, nil
	case TypeMode:
		return &Mode{}, nil
	case TypeGetState:
		return &GetState{}, nil
	case TypeState:
		return &State{}, nil
	case TypeError:
		return &Error{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMessageType, typ)
	}
}

// Decode peeks the type of a frame and decodes it into the matching message.
func Decode(enc Encoding, data []byte) (Message, error) {
	typ, err := PeekType(enc, data)
	if err != nil {
		return nil, err
	}
	m, err := New(typ)
	if err != nil {
		return nil, err
	}
	if err := Unmarshal(enc, data, m); err != nil {
		return nil, fmt.Errorf("decode %s: %w", typ, err)
	}
	return m, nil
}
