// Package loader reads JSON record files into generic value trees.
//
// Decoded values are map[string]any, []any, string, bool, nil, int64 for
// integral number literals that fit in 64 bits, and float64 for every other
// number. Keeping integers distinct from floats lets the schema package reject
// 5.0 where an integer is expected.
package loader

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// Loader reads record files. Diagnostics for unreadable or malformed files
// are printed to Out; the structured logger gets the same event.
type Loader struct {
	Out    io.Writer
	Logger logrus.FieldLogger
}

// New returns a Loader printing diagnostics to out.
func New(out io.Writer, logger logrus.FieldLogger) *Loader {
	return &Loader{Out: out, Logger: logger}
}

// Load returns the JSON value stored at path. Read and parse failures are
// reported and yield an empty mapping, which never passes record validation.
func (l *Loader) Load(path string) any {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(l.Out, "Error reading file `%s`: %v\n", path, err)
		l.Logger.WithError(err).WithField("path", path).Warn("Failed to read record file")
		return map[string]any{}
	}

	value, err := Parse(data)
	if err != nil {
		fmt.Fprintf(l.Out, "Error parsing JSON file `%s`: %v\n", path, err)
		l.Logger.WithError(err).WithField("path", path).Warn("Failed to parse record file")
		return map[string]any{}
	}

	l.Logger.WithField("path", path).Debug("Loaded record file")
	return value
}

// Parse decodes a single JSON document.
func Parse(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("unexpected end of input")
		}
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after top-level value")
	}
	return normalize(raw), nil
}

func normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, item := range t {
			t[k] = normalize(item)
		}
		return t
	case []any:
		for i, item := range t {
			t[i] = normalize(item)
		}
		return t
	case json.Number:
		return number(t)
	default:
		return v
	}
}

func number(n json.Number) any {
	s := n.String()
	if !strings.ContainsAny(s, ".eE") {
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return i
		}
	}
	f, err := n.Float64()
	if err != nil {
		// Out of float64 range; keep the literal so it matches no kind.
		return n
	}
	return f
}
