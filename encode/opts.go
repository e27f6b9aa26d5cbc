package encode

type EncodeOption func(*EncState)

// DefaultMaxDepth bounds the map nesting Encode will write.
const DefaultMaxDepth = 10000

func MaxDepth(n int) EncodeOption {
	return func(es *EncState) { es.maxDepth = n }
}

// EncodePretty puts every entry on its own line, indented by n spaces per
// level. n <= 0 selects the canonical single line form.
func EncodePretty(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
