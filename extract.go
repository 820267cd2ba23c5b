package treeval

// ExtractFrom produces a T from the root of a materialized tree, creating a
// fresh top-level context over the given registry.
func ExtractFrom[T any](from any, formats *Formats, opts ...ExtractOptions) (T, error) {
	return Extract[T](NewContext(formats, lastOpt(opts)), from)
}

// ExtractPath produces a T from the node at p below the tree root.
func ExtractPath[T any](from any, p Path, formats *Formats, opts ...ExtractOptions) (T, error) {
	return ExtractSub[T](NewContext(formats, lastOpt(opts)), from, p)
}

// ExtractBytes parses a JSON document and extracts a T from its root in one
// step. The same options govern both parsing (duplicate keys, depth, size)
// and extraction (failure mode, failure cap).
func ExtractBytes[T any](data []byte, formats *Formats, opts ...ExtractOptions) (T, error) {
	opt := lastOpt(opts)
	doc, err := ParseBytes(data, opt)
	if err != nil {
		var zero T
		return zero, err
	}
	return Extract[T](NewContext(formats, opt), doc)
}
