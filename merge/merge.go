package merge

// Maps deep-merges overlay onto base and returns a new mapping.
// Neither input is mutated. A nil input is treated as an empty mapping.
//
// Keys present in both inputs whose values are both mappings merge
// recursively; any other collision takes the overlay's value whole.
func Maps(base, overlay map[string]any) map[string]any {
	result := make(map[string]any, len(base)+len(overlay))

	for key, value := range base {
		result[key] = value
	}

	for key, value := range overlay {
		baseValue, inBase := result[key]
		if !inBase {
			result[key] = value

			continue
		}

		overlayMap, overlayIsMap := value.(map[string]any)
		baseMap, baseIsMap := baseValue.(map[string]any)

		if overlayIsMap && baseIsMap {
			result[key] = Maps(baseMap, overlayMap)
		} else {
			result[key] = value
		}
	}

	return result
}

// Layers folds a sequence of mappings through Maps from lowest to highest
// precedence: the first argument is the bottom layer, the last one wins.
func Layers(layers ...map[string]any) map[string]any {
	result := map[string]any{}

	for _, layer := range layers {
		result = Maps(result, layer)
	}

	return result
}
