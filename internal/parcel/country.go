package parcel

import (
	"bytes"
	"fmt"

	"github.com/skogge/CountryCurrencyPicker/internal/core/domain"
	"github.com/vmihailenco/msgpack/v5"
)

// MarshalCountry encodes a country frame. A nil country encodes as msgpack nil.
func MarshalCountry(c *domain.Country) ([]byte, error) {
	var buf bytes.Buffer
	if err := encodeCountry(msgpack.NewEncoder(&buf), c); err != nil {
		return nil, fmt.Errorf("encode country: %w", err)
	}
	return buf.Bytes(), nil
}

// UnmarshalCountry decodes a country frame written by MarshalCountry.
func UnmarshalCountry(data []byte) (*domain.Country, error) {
	c, err := decodeCountry(msgpack.NewDecoder(bytes.NewReader(data)))
	if err != nil {
		return nil, fmt.Errorf("decode country: %w", err)
	}
	return c, nil
}

// MarshalCountries encodes a list of country frames. nil and empty lists stay
// distinguishable.
func MarshalCountries(list []domain.Country) ([]byte, error) {
	var buf bytes.Buffer
	if err := encodeCountryList(msgpack.NewEncoder(&buf), list); err != nil {
		return nil, fmt.Errorf("encode countries: %w", err)
	}
	return buf.Bytes(), nil
}

// UnmarshalCountries decodes a list written by MarshalCountries.
func UnmarshalCountries(data []byte) ([]domain.Country, error) {
	list, err := decodeCountryList(msgpack.NewDecoder(bytes.NewReader(data)))
	if err != nil {
		return nil, fmt.Errorf("decode countries: %w", err)
	}
	return list, nil
}

func encodeCountry(enc *msgpack.Encoder, c *domain.Country) error {
	if c == nil {
		return enc.EncodeNil()
	}
	return encodeSteps(
		func() error { return writeHeader(enc, CountrySchema) },
		func() error { return enc.EncodeString(c.Code) },
		func() error { return enc.EncodeString(c.Name) },
		func() error { return enc.EncodeString(string(c.FlagIcon)) },
		func() error { return encodeCurrency(enc, c.Currency) },
		func() error { return enc.EncodeString(c.LocaleTag) },
	)
}

func decodeCountry(dec *msgpack.Decoder) (*domain.Country, error) {
	n, err := dec.DecodeArrayLen()
	if err != nil {
		return nil, err
	}
	if n == -1 {
		return nil, nil
	}
	extra, err := readHeader(dec, CountrySchema, n)
	if err != nil {
		return nil, err
	}

	c := &domain.Country{}
	if c.Code, err = dec.DecodeString(); err != nil {
		return nil, fmt.Errorf("country code: %w", err)
	}
	if c.Name, err = dec.DecodeString(); err != nil {
		return nil, fmt.Errorf("country %s name: %w", c.Code, err)
	}
	icon, err := dec.DecodeString()
	if err != nil {
		return nil, fmt.Errorf("country %s icon: %w", c.Code, err)
	}
	c.FlagIcon = domain.Icon(icon)
	if c.Currency, err = decodeCurrency(dec); err != nil {
		return nil, fmt.Errorf("country %s currency: %w", c.Code, err)
	}
	if c.LocaleTag, err = dec.DecodeString(); err != nil {
		return nil, fmt.Errorf("country %s locale: %w", c.Code, err)
	}

	if err := skipFields(dec, extra); err != nil {
		return nil, err
	}
	return c, nil
}

func encodeCountryList(enc *msgpack.Encoder, list []domain.Country) error {
	if list == nil {
		return enc.EncodeNil()
	}
	if err := enc.EncodeArrayLen(len(list)); err != nil {
		return err
	}
	for i := range list {
		if err := encodeCountry(enc, &list[i]); err != nil {
			return err
		}
	}
	return nil
}

func decodeCountryList(dec *msgpack.Decoder) ([]domain.Country, error) {
	n, err := dec.DecodeArrayLen()
	if err != nil {
		return nil, err
	}
	if n == -1 {
		return nil, nil
	}
	list := make([]domain.Country, 0, n)
	for i := 0; i < n; i++ {
		c, err := decodeCountry(dec)
		if err != nil {
			return nil, err
		}
		if c == nil {
			return nil, fmt.Errorf("country %d is nil: %w", i, ErrMalformed)
		}
		list = append(list, *c)
	}
	return list, nil
}
