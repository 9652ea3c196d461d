package models

// Merge overlays overlay onto a structural clone of base and returns the
// result.
//
// For every key of overlay: when both sides hold map nodes the merge recurses,
// otherwise the overlay value replaces the base value (type changes included).
// Keys present only in base are kept, keys present only in overlay are added.
// The result never aliases base or overlay.
//
// A nil overlay yields a clone of base. A leaf overlay replaces base entirely.
func Merge(base, overlay *Node) *Node {
	if overlay == nil {
		return base.Clone()
	}
	if base == nil || !base.IsMap() || !overlay.IsMap() {
		return overlay.Clone()
	}

	out := base.Clone()
	for key, overlayChild := range overlay.children {
		baseChild, ok := out.children[key]
		if ok && baseChild.IsMap() && overlayChild.IsMap() {
			out.children[key] = Merge(baseChild, overlayChild)
			continue
		}
		out.children[key] = overlayChild.Clone()
	}
	return out
}
