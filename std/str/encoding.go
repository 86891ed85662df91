package str

import (
	"encoding/binary"

	"github.com/cockroachdb/errors"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
)

// utf16LE is the wide-string encoding used by FromUTF16 and UTF16.
var utf16LE = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// Decode converts src from enc to UTF-8 and returns it as a String.
func Decode(src []byte, enc encoding.Encoding, opts ...Options) (*String, error) {
	decoded, err := enc.NewDecoder().Bytes(src)
	if err != nil {
		return nil, errors.Wrap(err, "str: decode")
	}
	return FromBytes(decoded, opts...)
}

// Encode converts the content of s from UTF-8 to enc.
func (s *String) Encode(enc encoding.Encoding) ([]byte, error) {
	encoded, err := enc.NewEncoder().Bytes(s.Bytes())
	if err != nil {
		return nil, errors.Wrap(err, "str: encode")
	}
	return encoded, nil
}

// FromUTF16 returns a String holding the UTF-8 form of the UTF-16 code units.
// Unpaired surrogates decode to U+FFFD.
func FromUTF16(units []uint16, opts ...Options) (*String, error) {
	raw := make([]byte, 2*len(units))
	for i, u := range units {
		binary.LittleEndian.PutUint16(raw[2*i:], u)
	}
	return Decode(raw, utf16LE, opts...)
}

// UTF16 returns the content of s as UTF-16 code units.
func (s *String) UTF16() ([]uint16, error) {
	raw, err := s.Encode(utf16LE)
	if err != nil {
		return nil, err
	}
	units := make([]uint16, len(raw)/2)
	for i := range units {
		units[i] = binary.LittleEndian.Uint16(raw[2*i:])
	}
	return units, nil
}
