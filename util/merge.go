package util

// MergeMappings returns base overlaid by each override in order, later overrides winning.
//
// When the accumulated value and the override value at a key are both mappings they are
// merged recursively; in every other case the override value replaces the existing one.
// Neither base nor the overrides are modified, and every mapping in the result is a fresh
// copy. Nil overrides are skipped.
func MergeMappings(base map[string]any, overrides ...map[string]any) map[string]any {
	result := cloneMapping(base)
	for _, override := range overrides {
		if override == nil {
			continue
		}
		result = mergeInto(result, override)
	}
	return result
}

// mergeInto applies override to dst, which must already be owned by the caller.
func mergeInto(dst, override map[string]any) map[string]any {
	for key, value := range override {
		src, srcIsMap := asMapping(value)
		existing, dstIsMap := asMapping(dst[key])
		switch {
		case srcIsMap && dstIsMap:
			// existing was cloned when it entered dst
			dst[key] = mergeInto(existing, src)
		case srcIsMap:
			dst[key] = cloneMapping(src)
		default:
			dst[key] = value
		}
	}
	return dst
}

// cloneMapping copies m and every mapping nested inside it.
func cloneMapping(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for key, value := range m {
		if nested, ok := asMapping(value); ok {
			out[key] = cloneMapping(nested)
			continue
		}
		out[key] = value
	}
	return out
}

// asMapping reports whether v is a string-keyed mapping.
// map[any]any values whose keys are all strings are converted.
func asMapping(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for key, value := range m {
			s, ok := key.(string)
			if !ok {
				return nil, false
			}
			out[s] = value
		}
		return out, true
	default:
		return nil, false
	}
}
