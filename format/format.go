package format

import (
	"errors"
	"fmt"
	"path/filepath"
)

type Format int

const (
	RMapFormat Format = iota
	JSONFormat
	YAMLFormat
)

var ErrBadFormat = errors.New("bad format")

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"r":    RMapFormat,
		"rmap": RMapFormat,
		"j":    JSONFormat,
		"json": JSONFormat,
		"y":    YAMLFormat,
		"yaml": YAMLFormat,
		"yml":  YAMLFormat,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case RMapFormat:
		return []byte("rmap"), nil
	case JSONFormat:
		return []byte("json"), nil
	case YAMLFormat:
		return []byte("yaml"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsRMap() bool { return f == RMapFormat }
func (f Format) IsJSON() bool { return f == JSONFormat }
func (f Format) IsYAML() bool { return f == YAMLFormat }

// Suffix returns the file extension for this format (including the dot).
func (f Format) Suffix() string {
	switch f {
	case RMapFormat:
		return ".rmap"
	case JSONFormat:
		return ".json"
	case YAMLFormat:
		return ".yaml"
	default:
		return ""
	}
}

// FromPath guesses the format of a file from its extension, defaulting to
// RMapFormat.
func FromPath(p string) Format {
	ext := filepath.Ext(p)
	if ext == "" {
		return RMapFormat
	}
	f, err := ParseFormat(ext[1:])
	if err != nil {
		return RMapFormat
	}
	return f
}

// AllFormats returns all supported formats in preference order.
func AllFormats() []Format {
	return []Format{RMapFormat, JSONFormat, YAMLFormat}
}
