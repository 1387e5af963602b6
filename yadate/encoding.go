package yadate

import (
	"github.com/vmihailenco/msgpack/v5"
)

// MarshalText encodes d as YYYY-MM-DD; the zero Date encodes as an empty string.
func (d Date) MarshalText() ([]byte, error) {
	if d.IsZero() {
		return []byte{}, nil
	}

	return []byte(d.String()), nil
}

// UnmarshalText parses YYYY-MM-DD; an empty input yields the zero Date.
func (d *Date) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*d = Date{}

		return nil
	}

	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}

	*d = parsed

	return nil
}

// EncodeMsgpack implements msgpack.CustomEncoder.
func (d Date) EncodeMsgpack(enc *msgpack.Encoder) error {
	text, _ := d.MarshalText()

	return enc.EncodeString(string(text))
}

// DecodeMsgpack implements msgpack.CustomDecoder.
func (d *Date) DecodeMsgpack(dec *msgpack.Decoder) error {
	text, err := dec.DecodeString()
	if err != nil {
		return err
	}

	return d.UnmarshalText([]byte(text))
}
