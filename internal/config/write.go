package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/autostockvision/autostock/internal/errors"
)

// DefaultFileContent is written by 'autostock init'.
const DefaultFileContent = `version: 1

telemetry:
  interval: 3s          # tick period
  window: 2s            # how long "Detecting..." stays on after a detection
  seed_weight: 2.45     # kg
  max_step: 0.05        # kg, per-tick change is uniform in [-max_step, +max_step)
  detect_threshold: 0.7 # a tick detects when a uniform draw exceeds this
  product: "Cereal Box - Premium Oats"
  scale_capacity: 5     # kg at which the gauge reads 100%
  seed: 0               # 0 = random
  history: 60           # sparkline samples

catalog:
  file: ""              # optional YAML product list

output:
  color: auto           # auto | always | never
`

// WriteDefault creates a config file with default settings.
// It refuses to overwrite an existing file unless force is set.
func WriteDefault(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("%s already exists", path),
				"Pass --force to overwrite it.")
		}
	}

	if err := os.WriteFile(path, []byte(DefaultFileContent), 0644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("Couldn't write %s", path),
			"Check directory permissions")
	}
	return nil
}

// SetValue sets a dotted key (e.g. "telemetry.interval") in the config file.
// It preserves the existing YAML structure and comments and creates missing
// sections. The result is validated before the file is written.
func SetValue(configPath, key, value string) error {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to read config file",
			"Run 'autostock init' to create one")
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to parse config file",
			"Check the YAML syntax in "+configPath)
	}

	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		root = yaml.Node{
			Kind:    yaml.DocumentNode,
			Content: []*yaml.Node{{Kind: yaml.MappingNode, Tag: "!!map"}},
		}
	}

	node := root.Content[0]
	if node.Kind != yaml.MappingNode {
		return errors.New(errors.ErrConfig,
			"Expected a mapping at the top of "+configPath,
			"Check the YAML structure")
	}

	parts := strings.Split(key, ".")
	for _, part := range parts[:len(parts)-1] {
		child := findMapValue(node, part)
		if child == nil {
			child = &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
			node.Content = append(node.Content, scalarNode(part), child)
		}
		if child.Kind != yaml.MappingNode {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("'%s' is not a section", part),
				"Use a key like telemetry.interval")
		}
		node = child
	}

	leaf := parts[len(parts)-1]
	if existing := findMapValue(node, leaf); existing != nil {
		existing.Kind = yaml.ScalarNode
		existing.Tag = ""
		existing.Value = value
		existing.Content = nil
	} else {
		valueNode := scalarNode(value)
		valueNode.Tag = ""
		node.Content = append(node.Content, scalarNode(leaf), valueNode)
	}

	var buf strings.Builder
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(&root); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, "Failed to encode config", "")
	}
	encoder.Close()

	// Reject values the loader would choke on before touching the file.
	tmp, err := os.CreateTemp("", "autostock-*.yaml")
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, "Couldn't stage config update", "Check your temp directory")
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.WriteString(buf.String()); err != nil {
		tmp.Close()
		return errors.WrapWithCode(err, errors.ErrConfig, "Couldn't stage config update", "Check your temp directory")
	}
	tmp.Close()

	cfg, err := Load(tmp.Name())
	if err != nil {
		return err
	}
	if err := Validate(cfg); err != nil {
		return err
	}

	if err := os.WriteFile(configPath, []byte(buf.String()), 0644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to write config file",
			"Check file permissions")
	}
	return nil
}

// findMapValue finds a value in a mapping node by key name.
func findMapValue(node *yaml.Node, key string) *yaml.Node {
	if node.Kind != yaml.MappingNode {
		return nil
	}

	for i := 0; i < len(node.Content)-1; i += 2 {
		keyNode := node.Content[i]
		if keyNode.Kind == yaml.ScalarNode && keyNode.Value == key {
			return node.Content[i+1]
		}
	}
	return nil
}

func scalarNode(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
}
