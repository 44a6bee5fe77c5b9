package legacy

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// XMLToRaw converts an XML document into the raw record form used by the
// mapping engine and returns the name of the root element with it.
//
// Child elements become keys; a name that occurs more than once becomes a
// list. Attributes are stored as "@name". An element with neither children
// nor attributes is its trimmed text; otherwise non-empty text is kept
// under "#text".
func XMLToRaw(r io.Reader) (string, map[string]any, error) {
	dec := xml.NewDecoder(r)
	dec.CharsetReader = func(charset string, input io.Reader) (io.Reader, error) {
		switch strings.ToLower(charset) {
		case "utf-8", "us-ascii", "iso-8859-1":
			return input, nil
		}
		return nil, fmt.Errorf("unsupported charset %q", charset)
	}

	for {
		tok, err := dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return "", nil, fmt.Errorf("empty XML document")
			}
			return "", nil, fmt.Errorf("reading XML: %w", err)
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}

		v, err := readElement(dec, start)
		if err != nil {
			return "", nil, err
		}
		m, ok := v.(map[string]any)
		if !ok {
			m = map[string]any{"#text": v}
		}
		return start.Name.Local, m, nil
	}
}

func readElement(dec *xml.Decoder, start xml.StartElement) (any, error) {
	node := make(map[string]any)
	for _, a := range start.Attr {
		node["@"+a.Name.Local] = a.Value
	}

	var text strings.Builder
	children := 0

	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("reading <%s>: %w", start.Name.Local, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			child, err := readElement(dec, t)
			if err != nil {
				return nil, err
			}
			addChild(node, t.Name.Local, child)
			children++
		case xml.CharData:
			text.Write(t)
		case xml.EndElement:
			s := strings.TrimSpace(text.String())
			if children == 0 && len(start.Attr) == 0 {
				return s, nil
			}
			if s != "" {
				node["#text"] = s
			}
			return node, nil
		}
	}
}

func addChild(node map[string]any, name string, child any) {
	prev, ok := node[name]
	if !ok {
		node[name] = child
		return
	}
	if list, ok := prev.([]any); ok {
		node[name] = append(list, child)
		return
	}
	node[name] = []any{prev, child}
}
