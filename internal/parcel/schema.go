// Package parcel serializes catalog values into flat, positional frames so they
// can cross a process or persistence boundary.
//
// A frame is a msgpack array: the schema version, the field count, then the
// fields of the value in schema order. Readers accept frames carrying more fields than they
// know (trailing fields are skipped) and reject versions newer than their own.
package parcel

import (
	"errors"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// MIMEType is the content type of encoded frames.
const MIMEType = "application/x-msgpack"

// ErrUnsupportedVersion is returned for frames written by a newer schema.
var ErrUnsupportedVersion = errors.New("unsupported parcel schema version")

// ErrMalformed is returned for frames that do not match the schema.
var ErrMalformed = errors.New("malformed parcel")

// Field is one positional entry of a schema.
type Field struct {
	Name  string
	Since uint8 // schema version that introduced the field
}

// Schema is the ordered field list of one value type.
type Schema struct {
	Name    string
	Version uint8
	Fields  []Field
}

// CountrySchema lays out domain.Country.
var CountrySchema = Schema{
	Name:    "country",
	Version: 1,
	Fields: []Field{
		{Name: "code", Since: 1},
		{Name: "name", Since: 1},
		{Name: "flagIcon", Since: 1},
		{Name: "currency", Since: 1},
		{Name: "locale", Since: 1},
	},
}

// CurrencySchema lays out domain.Currency.
var CurrencySchema = Schema{
	Name:    "currency",
	Version: 1,
	Fields: []Field{
		{Name: "code", Since: 1},
		{Name: "name", Since: 1},
		{Name: "symbol", Since: 1},
		{Name: "flagIcon", Since: 1},
		{Name: "countries", Since: 1},
		{Name: "countryNames", Since: 1},
		{Name: "digits", Since: 1},
	},
}

// required is the number of fields a frame of the given version must carry.
func (s Schema) required(version uint8) int {
	n := 0
	for _, f := range s.Fields {
		if f.Since <= version {
			n++
		}
	}
	return n
}

func writeHeader(enc *msgpack.Encoder, s Schema) error {
	if err := enc.EncodeArrayLen(len(s.Fields) + 2); err != nil {
		return err
	}
	if err := enc.EncodeUint8(s.Version); err != nil {
		return err
	}
	return enc.EncodeInt(int64(len(s.Fields)))
}

// readHeader consumes the header of a frame of array length n and returns the
// number of trailing fields the reader does not know about.
func readHeader(dec *msgpack.Decoder, s Schema, n int) (int, error) {
	if n < 2 {
		return 0, fmt.Errorf("%s frame without header: %w", s.Name, ErrMalformed)
	}
	version, err := dec.DecodeUint8()
	if err != nil {
		return 0, fmt.Errorf("%s version: %w", s.Name, err)
	}
	if version == 0 || version > s.Version {
		return 0, fmt.Errorf("%s v%d: %w", s.Name, version, ErrUnsupportedVersion)
	}
	fields, err := dec.DecodeInt()
	if err != nil {
		return 0, fmt.Errorf("%s field count: %w", s.Name, err)
	}
	if fields != n-2 {
		return 0, fmt.Errorf("%s declares %d fields, frame has %d: %w", s.Name, fields, n-2, ErrMalformed)
	}
	if fields < s.required(version) {
		return 0, fmt.Errorf("%s v%d has %d fields, want %d: %w", s.Name, version, fields, s.required(version), ErrMalformed)
	}
	return fields - len(s.Fields), nil
}

func skipFields(dec *msgpack.Decoder, extra int) error {
	for i := 0; i < extra; i++ {
		if err := dec.Skip(); err != nil {
			return err
		}
	}
	return nil
}

// encodeSteps runs encoder steps until the first failure.
func encodeSteps(steps ...func() error) error {
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}
