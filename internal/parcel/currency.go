package parcel

import (
	"bytes"
	"fmt"

	"github.com/skogge/CountryCurrencyPicker/internal/core/domain"
	"github.com/vmihailenco/msgpack/v5"
)

// MarshalCurrency encodes a currency frame, including its linked countries.
func MarshalCurrency(c *domain.Currency) ([]byte, error) {
	var buf bytes.Buffer
	if err := encodeCurrency(msgpack.NewEncoder(&buf), c); err != nil {
		return nil, fmt.Errorf("encode currency: %w", err)
	}
	return buf.Bytes(), nil
}

// UnmarshalCurrency decodes a currency frame written by MarshalCurrency.
func UnmarshalCurrency(data []byte) (*domain.Currency, error) {
	c, err := decodeCurrency(msgpack.NewDecoder(bytes.NewReader(data)))
	if err != nil {
		return nil, fmt.Errorf("decode currency: %w", err)
	}
	return c, nil
}

// MarshalCurrencies encodes a list of currency frames.
func MarshalCurrencies(list []domain.Currency) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	err := func() error {
		if list == nil {
			return enc.EncodeNil()
		}
		if err := enc.EncodeArrayLen(len(list)); err != nil {
			return err
		}
		for i := range list {
			if err := encodeCurrency(enc, &list[i]); err != nil {
				return err
			}
		}
		return nil
	}()
	if err != nil {
		return nil, fmt.Errorf("encode currencies: %w", err)
	}
	return buf.Bytes(), nil
}

// UnmarshalCurrencies decodes a list written by MarshalCurrencies.
func UnmarshalCurrencies(data []byte) ([]domain.Currency, error) {
	dec := msgpack.NewDecoder(bytes.NewReader(data))
	n, err := dec.DecodeArrayLen()
	if err != nil {
		return nil, fmt.Errorf("decode currencies: %w", err)
	}
	if n == -1 {
		return nil, nil
	}
	list := make([]domain.Currency, 0, n)
	for i := 0; i < n; i++ {
		c, err := decodeCurrency(dec)
		if err != nil {
			return nil, fmt.Errorf("decode currencies: %w", err)
		}
		if c == nil {
			return nil, fmt.Errorf("decode currencies: currency %d is nil: %w", i, ErrMalformed)
		}
		list = append(list, *c)
	}
	return list, nil
}

func encodeCurrency(enc *msgpack.Encoder, c *domain.Currency) error {
	if c == nil {
		return enc.EncodeNil()
	}
	return encodeSteps(
		func() error { return writeHeader(enc, CurrencySchema) },
		func() error { return enc.EncodeString(c.Code) },
		func() error { return enc.EncodeString(c.Name) },
		func() error { return enc.EncodeString(c.Symbol) },
		func() error { return enc.EncodeString(string(c.FlagIcon)) },
		func() error { return encodeCountryList(enc, c.Countries) },
		func() error { return encodeStrings(enc, c.CountryNames) },
		func() error { return enc.EncodeInt(int64(c.Digits)) },
	)
}

func decodeCurrency(dec *msgpack.Decoder) (*domain.Currency, error) {
	n, err := dec.DecodeArrayLen()
	if err != nil {
		return nil, err
	}
	if n == -1 {
		return nil, nil
	}
	extra, err := readHeader(dec, CurrencySchema, n)
	if err != nil {
		return nil, err
	}

	c := &domain.Currency{}
	if c.Code, err = dec.DecodeString(); err != nil {
		return nil, fmt.Errorf("currency code: %w", err)
	}
	if c.Name, err = dec.DecodeString(); err != nil {
		return nil, fmt.Errorf("currency %s name: %w", c.Code, err)
	}
	if c.Symbol, err = dec.DecodeString(); err != nil {
		return nil, fmt.Errorf("currency %s symbol: %w", c.Code, err)
	}
	icon, err := dec.DecodeString()
	if err != nil {
		return nil, fmt.Errorf("currency %s icon: %w", c.Code, err)
	}
	c.FlagIcon = domain.Icon(icon)
	// assigned directly: SetCountries would rebuild names the frame already carries
	if c.Countries, err = decodeCountryList(dec); err != nil {
		return nil, fmt.Errorf("currency %s countries: %w", c.Code, err)
	}
	if c.CountryNames, err = decodeStrings(dec); err != nil {
		return nil, fmt.Errorf("currency %s country names: %w", c.Code, err)
	}
	if c.Digits, err = dec.DecodeInt(); err != nil {
		return nil, fmt.Errorf("currency %s digits: %w", c.Code, err)
	}

	if err := skipFields(dec, extra); err != nil {
		return nil, err
	}
	return c, nil
}

func encodeStrings(enc *msgpack.Encoder, list []string) error {
	if list == nil {
		return enc.EncodeNil()
	}
	if err := enc.EncodeArrayLen(len(list)); err != nil {
		return err
	}
	for _, s := range list {
		if err := enc.EncodeString(s); err != nil {
			return err
		}
	}
	return nil
}

func decodeStrings(dec *msgpack.Decoder) ([]string, error) {
	n, err := dec.DecodeArrayLen()
	if err != nil {
		return nil, err
	}
	if n == -1 {
		return nil, nil
	}
	list := make([]string, n)
	for i := range list {
		if list[i], err = dec.DecodeString(); err != nil {
			return nil, err
		}
	}
	return list, nil
}
