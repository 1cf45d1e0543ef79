package api

import (
	"iter"
	"reflect"
	"sort"

	apierrors "github.com/edalrymple/horizon/internal/errors"
)

// Path locates a value inside a nested JSON body. Each segment is either a
// string key (map lookup) or an int index (slice lookup). Resolving every
// segment in order against the body the path was derived from yields the
// key's value or the matched scalar.
type Path []any

func (p Path) clone() Path {
	out := make(Path, len(p))
	copy(out, p)
	return out
}

// FindInResponse searches a decoded JSON body depth-first and produces every
// access path whose terminal map key or scalar value equals condition. The
// sequence is lazy and restartable; iterating it twice repeats the same
// results. Matches inside a value are produced before the match on the pair
// itself, and a key match suppresses the value check for that pair. Map keys
// are visited in sorted order so traversal is deterministic.
func FindInResponse(obj any, condition any) iter.Seq[Path] {
	return func(yield func(Path) bool) {
		findPaths(obj, condition, nil, yield)
	}
}

func findPaths(obj, condition any, path Path, yield func(Path) bool) bool {
	switch v := obj.(type) {
	case []any:
		for i, elem := range v {
			if !findPaths(elem, condition, append(path.clone(), i), yield) {
				return false
			}
		}
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, key := range keys {
			value := v[key]
			keyPath := append(path.clone(), key)
			if !findPaths(value, condition, keyPath, yield) {
				return false
			}
			if conditionEqual(condition, key) {
				if !yield(keyPath.clone()) {
					return false
				}
			} else if !isContainer(value) && conditionEqual(condition, value) {
				if !yield(append(keyPath.clone(), value)) {
					return false
				}
			}
		}
	}
	return true
}

// ResolvePath walks the path's segments against a decoded JSON body via
// successive lookups. A path whose final segment is the matched scalar
// itself resolves to that scalar. Any segment that no longer fits the body
// fails with a PathResolveError.
func ResolvePath(body any, p Path) (any, error) {
	current := body
	for _, seg := range p {
		switch v := current.(type) {
		case map[string]any:
			key, ok := seg.(string)
			if !ok {
				return nil, apierrors.NewPathResolveError(seg, "non-string key for mapping")
			}
			value, ok := v[key]
			if !ok {
				return nil, apierrors.NewPathResolveError(seg, "key not found")
			}
			current = value
		case []any:
			idx, ok := seg.(int)
			if !ok {
				return nil, apierrors.NewPathResolveError(seg, "non-integer index for sequence")
			}
			if idx < 0 || idx >= len(v) {
				return nil, apierrors.NewPathResolveError(seg, "index out of range")
			}
			current = v[idx]
		default:
			// Value-match paths end with the matched scalar as their own
			// terminal segment.
			if conditionEqual(seg, current) {
				return current, nil
			}
			return nil, apierrors.NewPathResolveError(seg, "cannot descend into scalar")
		}
	}
	return current, nil
}

// conditionEqual compares a search condition to a key or value with natural
// value equality. Integer conditions compare equal to the float64 numbers
// encoding/json produces.
func conditionEqual(condition, v any) bool {
	return reflect.DeepEqual(normalize(condition), normalize(v))
}

func normalize(v any) any {
	switch t := v.(type) {
	case int:
		return float64(t)
	case int32:
		return float64(t)
	case int64:
		return float64(t)
	case float32:
		return float64(t)
	}
	return v
}

func isContainer(v any) bool {
	switch v.(type) {
	case map[string]any, []any:
		return true
	}
	return false
}
