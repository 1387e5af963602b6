package yadaterange

import (
	"github.com/vmihailenco/msgpack/v5"
)

// MarshalText encodes r in canonical form.
func (r DateRange) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText parses a date range expression. Empty input yields the
// empty DateRange.
func (r *DateRange) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*r = DateRange{}

		return nil
	}

	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}

	*r = parsed

	return nil
}

// EncodeMsgpack implements msgpack.CustomEncoder.
func (r DateRange) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.EncodeString(r.String())
}

// DecodeMsgpack implements msgpack.CustomDecoder.
func (r *DateRange) DecodeMsgpack(dec *msgpack.Decoder) error {
	text, err := dec.DecodeString()
	if err != nil {
		return err
	}

	return r.UnmarshalText([]byte(text))
}
