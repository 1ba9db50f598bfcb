// prefixnum package provides a number wrapper that decodes prefixed numbers ("0x1f", "0o755", "0b101", "42")
// from JSON, YAML, text and database/sql.
package prefixnum

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/aerth/prefixparse"
	"gopkg.in/yaml.v3"
)

var Errorf = fmt.Errorf

// Number is T that unmarshals from a prefixed number, or a plain one.
//
// Use it for config fields, for example:
//
//	type Config struct {
//		Mask prefixnum.Number[uint32] `yaml:"mask" json:"mask"`
//	}
type Number[T prefixparse.Integer] struct {
	V T
}

// New existing value
func New[T prefixparse.Integer](v T) Number[T] {
	return Number[T]{V: v}
}

// Parse a Number with prefix auto-detection
func Parse[T prefixparse.Integer](s string) (Number[T], error) {
	v, err := prefixparse.Parse[T](s)
	return Number[T]{V: v}, err
}

func (n Number[T]) Get() T {
	return n.V
}

// String is plain decimal
func (n Number[T]) String() string {
	return fmt.Sprintf("%d", n.V)
}

// UnmarshalText leaves n unchanged on error
func (n *Number[T]) UnmarshalText(b []byte) error {
	v, err := prefixparse.Parse[T](string(b))
	if err != nil {
		return err
	}
	n.V = v
	return nil
}

// MarshalText is plain decimal, the prefix is not kept
func (n Number[T]) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

// UnmarshalJSON accepts a JSON number (10) or a string ("0x10"). null is ignored.
func (n *Number[T]) UnmarshalJSON(dat []byte) error {
	if string(dat) == "null" {
		return nil
	}
	if len(dat) > 0 && dat[0] == '"' {
		var s string
		if err := json.Unmarshal(dat, &s); err != nil {
			return err
		}
		return n.UnmarshalText([]byte(s))
	}
	return n.UnmarshalText(dat)
}

// MarshalJSON is a JSON number
func (n Number[T]) MarshalJSON() ([]byte, error) {
	return n.MarshalText()
}

// UnmarshalYAML accepts any scalar, quoted or not. null (~) is ignored.
func (n *Number[T]) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return Errorf("prefixnum: line %d: cannot decode non-scalar into %T", node.Line, n.V)
	}
	if node.ShortTag() == "!!null" {
		return nil
	}
	if err := n.UnmarshalText([]byte(node.Value)); err != nil {
		return Errorf("prefixnum: line %d: %w", node.Line, err)
	}
	return nil
}

// Scan from int64, string, or []byte. nil resets to zero.
func (n *Number[T]) Scan(v interface{}) error {
	switch x := v.(type) {
	case nil:
		n.V = 0 // reset in case reused
		return nil
	case int64:
		t := T(x)
		if int64(t) != x || (t < 0) != (x < 0) {
			return Errorf("prefixnum: scan %d into %T: %w", x, n.V, prefixparse.ErrOverflow)
		}
		n.V = t
		return nil
	case string:
		return n.UnmarshalText([]byte(x))
	case []byte:
		return n.UnmarshalText(x)
	default:
		return Errorf("prefixnum: unsupported type : %T", v)
	}
}

// Value is int64, as required by database/sql/driver
func (n Number[T]) Value() (driver.Value, error) {
	if n.V >= 0 && uint64(n.V) > math.MaxInt64 {
		return nil, Errorf("prefixnum: %d does not fit int64: %w", n.V, prefixparse.ErrOverflow)
	}
	return int64(n.V), nil
}

// Decode YAML (or JSON, which is YAML) into out, typically a struct with Number fields.
func Decode(data []byte, out any) error {
	return yaml.Unmarshal(data, out)
}

// Load reads a YAML config file into out.
func Load(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return Errorf("prefixnum: read %s: %w", path, err)
	}
	if err := Decode(data, out); err != nil {
		return Errorf("prefixnum: parse %s: %w", path, err)
	}
	return nil
}
