package kconnect

// SchemaRef references a serialization/deserialization codec registered with
// the runtime. The framework only carries the reference, encoding itself
// happens in the runtime's connector plugins.
type SchemaRef struct {
	codec       string
	elementType string
}

func StringSchema() SchemaRef {
	return SchemaRef{codec: `simple-string`}
}

// JSONSchema references a JSON row codec producing the given row type.
func JSONSchema(rowType string) SchemaRef {
	return SchemaRef{codec: `json`, elementType: rowType}
}

// TextLineFormat is the line delimited stream format for file sources.
func TextLineFormat() SchemaRef {
	return SchemaRef{codec: `text-line`}
}

// RawSchema references a custom codec by name.
func RawSchema(codec string) SchemaRef {
	return SchemaRef{codec: codec}
}

func (s SchemaRef) Codec() string {
	return s.codec
}

func (s SchemaRef) ElementType() string {
	return s.elementType
}
