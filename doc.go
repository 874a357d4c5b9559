/*
Package tinyyaml parses and writes TinyYAML, a small line-oriented
configuration format, and maps it to and from Go structs.

A TinyYAML line is an optional name, an optional ": value" and an optional
"# comment". Nesting is expressed with one leading tab per level; blank lines
are ignored.

	Server: primary # the main server
		Port: 8080
		Tags: web, internal
	Name: example

1. Working with the Tree

Parse returns the top-level nodes of a document. Each node keeps the original
line, so Serialize reproduces the input exactly:

	nodes, err := tinyyaml.Parse(data)
	if err != nil {
		// handle error
	}
	out := tinyyaml.Serialize(nodes) // identical to data for tab-indented CRLF input

Format renders nodes from their fields instead, which reflects edits.

2. Mapping to Structs

A Mapper converts node values with a registry of converters keyed by exact
type. The default converters handle string, int16, int32, int64, float32,
float64 and []string (written as "a, b, c"). Struct members without a
converter are mapped recursively; on decode they are only instantiated when
their type was passed to KnownTypes.

	type Server struct {
		Port int32
		Tags []string
	}

	type Config struct {
		Name   string
		Server *Server
		Cache  string `tinyyaml:"-"`
	}

	var cfg Config
	err := tinyyaml.Unmarshal(data, &cfg, tinyyaml.KnownTypes(Server{}))

Besides exported fields, a struct's members include properties: a method pair
X() T and SetX(T) on the pointer type. Fields promoted from embedded structs
are not members; properties promoted from embedded types are.
*/
package tinyyaml
