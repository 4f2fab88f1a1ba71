package main

import (
	"bytes"
	"io"
	"unicode/utf8"

	"github.com/goccy/go-json"
	"github.com/hyp3rd/ewrap"
)

const dataKey = "data"

func decodeInput(r io.Reader) ([]float64, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, ewrap.Wrapf(ErrIO, "reading input: %v", err)
	}
	if !utf8.Valid(buf) {
		return nil, ewrap.Wrap(ErrIO, "input is not valid UTF-8")
	}
	return parseInput(buf)
}

// parseInput decodes {"data": [<number>, ...]}. The "data" key is matched
// exactly and may appear once; other keys are ignored.
func parseInput(buf []byte) ([]float64, error) {
	if len(bytes.TrimSpace(buf)) == 0 {
		return nil, ewrap.Wrap(ErrMalformedInput, "empty input")
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(buf, &fields); err != nil {
		return nil, ewrap.Wrapf(ErrMalformedInput, "decoding input: %v", err)
	}
	raw, ok := fields[dataKey]
	if !ok {
		return nil, ewrap.Wrap(ErrMalformedInput, `missing "data" array`)
	}
	n, err := countKey(buf, dataKey)
	if err != nil {
		return nil, ewrap.Wrapf(ErrMalformedInput, "scanning keys: %v", err)
	}
	if n > 1 {
		return nil, ewrap.Wrap(ErrMalformedInput, `duplicate "data" key`)
	}

	// pointers keep a null element from decoding as 0
	var samples []*float64
	if err := json.Unmarshal(raw, &samples); err != nil {
		return nil, ewrap.Wrapf(ErrMalformedInput, "decoding data: %v", err)
	}
	if samples == nil {
		return nil, ewrap.Wrap(ErrMalformedInput, `"data" is null`)
	}

	values := make([]float64, 0, len(samples))
	for i, v := range samples {
		if v == nil {
			return nil, ewrap.Wrapf(ErrMalformedInput, "null sample at index %d", i)
		}
		values = append(values, *v)
	}
	return values, nil
}

// countKey reports how often key occurs at the top level of buf, which
// must already hold a valid JSON object.
func countKey(buf []byte, key string) (int, error) {
	dec := json.NewDecoder(bytes.NewReader(buf))
	if _, err := dec.Token(); err != nil {
		return 0, err
	}

	n := 0
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return 0, err
		}
		if k, _ := tok.(string); k == key {
			n++
		}
		if err := skipValue(dec); err != nil {
			return 0, err
		}
	}
	return n, nil
}

func skipValue(dec *json.Decoder) error {
	depth := 0
	for {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		switch tok {
		case json.Delim('{'), json.Delim('['):
			depth++
		case json.Delim('}'), json.Delim(']'):
			depth--
		}
		if depth == 0 {
			return nil
		}
	}
}
