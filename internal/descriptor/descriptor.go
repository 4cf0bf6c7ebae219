package descriptor

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// Descriptor is the top-level .zproject document.
type Descriptor struct {
	Project Config `yaml:"Project"`
}

// Config mirrors the engine's project configuration block.
type Config struct {
	Name                    string `yaml:"Name"`
	AssetDirectory          string `yaml:"AssetDirectory,omitempty"`
	ScriptAssemblyDirectory string `yaml:"ScriptAssemblyDirectory,omitempty"`
	DefaultLevelAsset       uint64 `yaml:"DefaultLevelAsset,omitempty"`
}

// Parse reads a descriptor file.
func Parse(path string) (*Descriptor, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	var d Descriptor
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("parsing descriptor %s: %w", path, err)
	}
	return &d, nil
}

// readFile reads the file and wraps errors with the path for context.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}

// RawName returns the literal scalar text of Project.Name, before YAML
// resolves it to a number, boolean or null. ok is false when the document
// does not parse or has no scalar at that position.
func RawName(data []byte) (name string, ok bool) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil || len(doc.Content) == 0 {
		return "", false
	}
	project := mappingValue(doc.Content[0], "Project")
	node := mappingValue(project, "Name")
	if node == nil || node.Kind != yaml.ScalarNode {
		return "", false
	}
	return node.Value, true
}

func mappingValue(node *yaml.Node, key string) *yaml.Node {
	if node == nil || node.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1]
		}
	}
	return nil
}
