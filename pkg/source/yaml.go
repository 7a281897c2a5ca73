package source

import (
	"treemark/pkg/tree"
)

// LoadYAML reads the file at path and parses it as a YAML document into a
// Node tree. Mapping key order follows the document. Parse failures carry
// the decoder's position information.
func LoadYAML(path string) (*tree.Node, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return decodeOrdered(data, path)
}
