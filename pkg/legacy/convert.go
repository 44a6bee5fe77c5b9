package legacy

import (
	"strconv"
	"strings"
	"time"

	"nstravel/pkg/enums"
	"nstravel/pkg/nsdata"
)

// Every value in an XML document is text, so the legacy records convert
// from strings where the JSON records rely on the decoded types.

func asText(_ *nsdata.Decoder, path string, v any) (string, error) {
	switch x := v.(type) {
	case string:
		return x, nil
	case map[string]any:
		if s, ok := x["#text"].(string); ok {
			return s, nil
		}
		return "", nil
	default:
		return "", &nsdata.TypeMismatchError{Path: path, Expected: "text", Got: "list"}
	}
}

func asInt(d *nsdata.Decoder, path string, v any) (int, error) {
	s, err := asText(d, path, v)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, &nsdata.TypeMismatchError{Path: path, Expected: "int", Got: strconv.Quote(s), Err: err}
	}
	return n, nil
}

func asFloat(d *nsdata.Decoder, path string, v any) (float64, error) {
	s, err := asText(d, path, v)
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, &nsdata.TypeMismatchError{Path: path, Expected: "float", Got: strconv.Quote(s), Err: err}
	}
	return f, nil
}

// asFlag is true only for the literal "true".
func asFlag(d *nsdata.Decoder, path string, v any) (bool, error) {
	s, err := asText(d, path, v)
	return s == "true", err
}

func asDateTime(d *nsdata.Decoder, path string, v any) (time.Time, error) {
	s, err := asText(d, path, v)
	if err != nil {
		return time.Time{}, err
	}
	t, err := nsdata.ParseDateTime(s)
	if err != nil {
		return time.Time{}, &nsdata.TypeMismatchError{Path: path, Expected: "date-time", Got: strconv.Quote(s), Err: err}
	}
	return t, nil
}

func asDuration(d *nsdata.Decoder, path string, v any) (time.Duration, error) {
	s, err := asText(d, path, v)
	if err != nil {
		return 0, err
	}
	dur, err := nsdata.ParseDuration(s)
	if err != nil {
		return 0, &nsdata.TypeMismatchError{Path: path, Expected: "duration", Got: strconv.Quote(s), Err: err}
	}
	return dur, nil
}

func asTrain(d *nsdata.Decoder, path string, v any) (enums.Train, error) {
	s, err := asText(d, path, v)
	return enums.ParseTrain(s), err
}

func asCarrier(d *nsdata.Decoder, path string, v any) (enums.Carrier, error) {
	s, err := asText(d, path, v)
	return enums.ParseCarrier(s), err
}

func asStatus(d *nsdata.Decoder, path string, v any) (enums.Status, error) {
	s, err := asText(d, path, v)
	return enums.ParseStatus(s), err
}

func asStationType(d *nsdata.Decoder, path string, v any) (enums.StationType, error) {
	s, err := asText(d, path, v)
	return enums.ParseStationType(s), err
}

func asCountry(d *nsdata.Decoder, path string, v any) (enums.Country, error) {
	s, err := asText(d, path, v)
	return enums.ParseCountry(s), err
}

// asTrack reads <Spoor wijziging="true">4b</Spoor>.
func asTrack(d *nsdata.Decoder, path string, v any) (Track, error) {
	s, err := asText(d, path, v)
	if err != nil {
		return Track{}, err
	}
	t := Track{Text: s}
	if m, ok := v.(map[string]any); ok {
		t.Changed = m["@wijziging"] == "true"
	}
	return t, nil
}

// repeated accepts both a single occurrence and a list, since XMLToRaw only
// produces a list when an element repeats. An empty element is an empty list.
func repeated[T any](conv nsdata.Conv[T]) nsdata.Conv[[]T] {
	list := nsdata.AsList(conv)
	return func(d *nsdata.Decoder, path string, v any) ([]T, error) {
		switch x := v.(type) {
		case []any:
			return list(d, path, x)
		case string:
			if x == "" {
				return nil, nil
			}
		}
		return list(d, path, []any{v})
	}
}

// within reads the repeated child elements of a wrapper such as
// <Synoniemen><Synoniem>..</Synoniem></Synoniemen>.
func within[T any](child string, conv nsdata.Conv[T]) nsdata.Conv[[]T] {
	items := repeated(conv)
	return func(d *nsdata.Decoder, path string, v any) ([]T, error) {
		m, ok := v.(map[string]any)
		if !ok {
			if s, isText := v.(string); isText && s == "" {
				return nil, nil
			}
			return nil, &nsdata.TypeMismatchError{Path: path, Expected: child + " list", Got: "text"}
		}
		inner, ok := m[child]
		if !ok {
			return nil, nil
		}
		return items(d, path+"."+child, inner)
	}
}
