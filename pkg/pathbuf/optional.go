package pathbuf

import "encoding/json"

// Optional is a bounded path that is either present or absent. The zero
// value is absent.
type Optional struct {
	path    string
	present bool
}

// Some returns a present value. Paths that do not fit MaxPathLength are absent.
func Some(path string) Optional {
	if !Fits(path) {
		return Optional{}
	}
	return Optional{path: path, present: true}
}

// None returns the absent value.
func None() Optional {
	return Optional{}
}

// Get returns the path and whether it is present.
func (o Optional) Get() (string, bool) {
	return o.path, o.present
}

// Present reports whether a path is held.
func (o Optional) Present() bool {
	return o.present
}

// OrElse returns the path, or fallback when absent.
func (o Optional) OrElse(fallback string) string {
	if !o.present {
		return fallback
	}
	return o.path
}

// String renders the path, or "<absent>".
func (o Optional) String() string {
	if !o.present {
		return "<absent>"
	}
	return o.path
}

// MarshalJSON encodes an absent value as null.
func (o Optional) MarshalJSON() ([]byte, error) {
	if !o.present {
		return []byte("null"), nil
	}
	return json.Marshal(o.path)
}
