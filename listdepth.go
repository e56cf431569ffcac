package md2office

// Indentation thresholds for list nesting, in leading spaces.
// Indentation between thresholds rounds down to the shallower level.
const (
	indentLevel1 = 2
	indentLevel2 = 4
)

// ResolveListDepth maps the leading-space count of a list item to a
// nesting depth. Depths are monotonically non-decreasing in indent and
// saturate at maxDepth (itself capped at 2). Never errors.
func ResolveListDepth(indent, maxDepth int) int {
	if maxDepth < 0 {
		maxDepth = 0
	}
	if maxDepth > 2 {
		maxDepth = 2
	}

	depth := 0
	switch {
	case indent >= indentLevel2:
		depth = 2
	case indent >= indentLevel1:
		depth = 1
	}

	if depth > maxDepth {
		depth = maxDepth
	}
	return depth
}
