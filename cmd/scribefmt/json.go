package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/inkwell-go/scribe"
	"github.com/inkwell-go/scribe/ansi"
)

// decodeJSON reads exactly one JSON value from r using a token-level
// decoder, so arbitrarily large documents are never held as a
// fully-materialized interface{} tree before layout.
func decodeJSON(r io.Reader) (scribe.Document[ansi.Style], error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	d, err := decodeValue(dec)
	if err != nil {
		return scribe.Document[ansi.Style]{}, err
	}
	return d, nil
}

func decodeValue(dec *json.Decoder) (scribe.Document[ansi.Style], error) {
	tok, err := dec.Token()
	if err != nil {
		return scribe.Document[ansi.Style]{}, err
	}
	return valueFromToken(dec, tok)
}

func valueFromToken(dec *json.Decoder, tok json.Token) (scribe.Document[ansi.Style], error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeObject(dec)
		case '[':
			return decodeArray(dec)
		default:
			return scribe.Document[ansi.Style]{}, fmt.Errorf("scribefmt: unexpected delimiter %q", t)
		}
	case string:
		return scribe.Annotated(ansi.String, scribe.Text[ansi.Style](strconv.Quote(t))), nil
	case json.Number:
		return scribe.Annotated(ansi.Number, scribe.Text[ansi.Style](t.String())), nil
	case bool:
		s := "false"
		if t {
			s = "true"
		}
		return scribe.Annotated(ansi.Keyword, scribe.Text[ansi.Style](s)), nil
	case nil:
		return scribe.Annotated(ansi.Keyword, scribe.Text[ansi.Style]("null")), nil
	default:
		return scribe.Document[ansi.Style]{}, fmt.Errorf("scribefmt: unhandled token type %T", tok)
	}
}

func decodeObject(dec *json.Decoder) (scribe.Document[ansi.Style], error) {
	type entry struct {
		key string
		val scribe.Document[ansi.Style]
	}
	var entries []entry
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return scribe.Document[ansi.Style]{}, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return scribe.Document[ansi.Style]{}, fmt.Errorf("scribefmt: object key is not a string: %v", keyTok)
		}
		val, err := decodeValue(dec)
		if err != nil {
			return scribe.Document[ansi.Style]{}, err
		}
		entries = append(entries, entry{key: key, val: val})
	}
	if _, err := dec.Token(); err != nil {
		return scribe.Document[ansi.Style]{}, err
	}
	if len(entries) == 0 {
		return scribe.Text[ansi.Style]("{}"), nil
	}

	items := make([]scribe.Document[ansi.Style], len(entries))
	for i, e := range entries {
		key := scribe.Annotated(ansi.Keyword, scribe.Text[ansi.Style](strconv.Quote(e.key)))
		items[i] = key.Append(scribe.Text[ansi.Style](": ")).Append(e.val)
	}
	return bracket("{", "}", items), nil
}

// itemSep is the separator between object/array entries: a comma immediately
// followed by a line break, so the flat rendering reads ", " and the broken
// rendering reads ",\n".
func itemSep[A any]() scribe.Document[A] {
	return scribe.Text[A](",").Append(scribe.LineBreak[A]())
}

// bracket wraps items between open and close, breaking one item per line and
// indenting by 2 when the flat rendering does not fit.
func bracket(open, close string, items []scribe.Document[ansi.Style]) scribe.Document[ansi.Style] {
	body := scribe.Nested(2, scribe.LineBreak[ansi.Style]().Append(
		scribe.Separated(itemSep[ansi.Style](), items)))
	return scribe.Grouped(scribe.Text[ansi.Style](open).
		Append(body).
		Append(scribe.LineBreak[ansi.Style]()).
		Append(scribe.Text[ansi.Style](close)))
}

func decodeArray(dec *json.Decoder) (scribe.Document[ansi.Style], error) {
	var items []scribe.Document[ansi.Style]
	for dec.More() {
		val, err := decodeValue(dec)
		if err != nil {
			return scribe.Document[ansi.Style]{}, err
		}
		items = append(items, val)
	}
	if _, err := dec.Token(); err != nil {
		return scribe.Document[ansi.Style]{}, err
	}
	if len(items) == 0 {
		return scribe.Text[ansi.Style]("[]"), nil
	}

	return bracket("[", "]", items), nil
}
