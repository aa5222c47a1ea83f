package capability

// Option maps arrive from JSON, so numbers decode as float64 and lists
// as []any. These helpers normalize the common shapes without forcing
// callers to care about the wire representation.

// stringOption returns the string value for key, or fallback when the
// key is absent or not a string.
func stringOption(options map[string]any, key, fallback string) string {
	if v, ok := options[key].(string); ok && v != "" {
		return v
	}
	return fallback
}

// intOption returns the integer value for key, accepting both int and
// float64 representations, or fallback when absent.
func intOption(options map[string]any, key string, fallback int) int {
	switch v := options[key].(type) {
	case int:
		return v
	case float64:
		return int(v)
	default:
		return fallback
	}
}

// stringSliceOption returns the value for key as a slice of strings,
// accepting []string directly or []any with string elements.
func stringSliceOption(options map[string]any, key string) []string {
	switch v := options[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

// floatSliceOption returns the value for key as a slice of float64,
// accepting []float64 directly or []any with numeric elements.
func floatSliceOption(options map[string]any, key string) []float64 {
	switch v := options[key].(type) {
	case []float64:
		return v
	case []any:
		out := make([]float64, 0, len(v))
		for _, item := range v {
			switch n := item.(type) {
			case float64:
				out = append(out, n)
			case int:
				out = append(out, float64(n))
			}
		}
		return out
	default:
		return nil
	}
}
