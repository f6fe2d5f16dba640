package i18n

import (
	"context"
	"strings"
)

// Bundle is a nested per-language mapping of translation text, as
// decoded from a JSON bundle or built from dotted database keys.
// Intermediate nodes are map[string]any, leaves are strings.
type Bundle map[string]any

// Loader defines the interface for loading a language bundle.
type Loader interface {
	// Load reads a translation bundle for the given path or key.
	Load(ctx context.Context, path string) (Bundle, error)
}

// Resolve walks the bundle segment by segment along the dotted key and
// returns the leaf text. It returns fallback unchanged when any
// segment is missing, an intermediate node is not a mapping, or the
// leaf is absent or empty. There is no default-language fallback and
// Resolve never fails.
func Resolve(bundle Bundle, key, fallback string) string {
	if bundle == nil || key == "" {
		return fallback
	}

	var current any = map[string]any(bundle)
	for _, segment := range strings.Split(key, ".") {
		node, ok := current.(map[string]any)
		if !ok {
			return fallback
		}
		current, ok = node[segment]
		if !ok {
			return fallback
		}
	}

	text, ok := current.(string)
	if !ok || text == "" {
		return fallback
	}
	return text
}

// FromEntries builds a nested bundle from flat dotted-key entries.
// Later entries win on key collisions; an entry whose path crosses an
// existing leaf is dropped rather than clobbering the subtree.
func FromEntries(entries map[string]string) Bundle {
	bundle := Bundle{}
	for key, value := range entries {
		segments := strings.Split(key, ".")
		node := map[string]any(bundle)
		ok := true
		for _, segment := range segments[:len(segments)-1] {
			next, exists := node[segment]
			if !exists {
				child := map[string]any{}
				node[segment] = child
				node = child
				continue
			}
			child, isMap := next.(map[string]any)
			if !isMap {
				ok = false
				break
			}
			node = child
		}
		if ok {
			node[segments[len(segments)-1]] = value
		}
	}
	return bundle
}

// Merge overlays b on top of a, recursing into shared subtrees. Leaves
// in b win. Neither input is modified.
func Merge(a, b Bundle) Bundle {
	merged := Bundle{}
	for k, v := range a {
		merged[k] = v
	}
	for k, v := range b {
		existing, exists := merged[k]
		if exists {
			existingMap, aOK := existing.(map[string]any)
			incomingMap, bOK := v.(map[string]any)
			if aOK && bOK {
				merged[k] = map[string]any(Merge(Bundle(existingMap), Bundle(incomingMap)))
				continue
			}
		}
		merged[k] = v
	}
	return merged
}

// Flatten converts a nested bundle back to dotted-key entries.
func Flatten(bundle Bundle) map[string]string {
	entries := map[string]string{}
	flattenInto(entries, "", map[string]any(bundle))
	return entries
}

func flattenInto(entries map[string]string, prefix string, node map[string]any) {
	for key, value := range node {
		full := key
		if prefix != "" {
			full = prefix + "." + key
		}
		switch v := value.(type) {
		case string:
			entries[full] = v
		case map[string]any:
			flattenInto(entries, full, v)
		}
	}
}
