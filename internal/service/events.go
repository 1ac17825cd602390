package service

// NormalizeSlotEvent extracts the canonical slot id from whichever shape
// the host delivers a "button clicked" payload in: a bare string, a map
// keyed by slotId/slot/id, a dataset-style nested map, or a positional
// argument list. Isolates the rest of the code from host API variability.
func NormalizeSlotEvent(payload any) (string, bool) {
	switch v := payload.(type) {
	case string:
		if v != "" {
			return v, true
		}
	case map[string]any:
		for _, key := range []string{"slotId", "slot", "id"} {
			if s, ok := v[key].(string); ok && s != "" {
				return s, true
			}
		}
		if ds, ok := v["dataset"].(map[string]any); ok {
			return NormalizeSlotEvent(ds)
		}
	case []any:
		if len(v) > 0 {
			return NormalizeSlotEvent(v[0])
		}
	}
	return "", false
}
