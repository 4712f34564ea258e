package writer

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"empclean/internal/models"
)

// encodeYAML writes a sequence of mappings; keys keep the column order and
// every value stays a string.
func encodeYAML(out io.Writer, records []models.Employee, indent int) error {
	seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}

	for _, rec := range records {
		m := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}

		for _, f := range rec.Fields {
			m.Content = append(m.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: f.Name},
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: f.Value},
			)
		}

		seq.Content = append(seq.Content, m)
	}

	if len(records) == 0 {
		seq.Style = yaml.FlowStyle
	}

	enc := yaml.NewEncoder(out)
	if indent > 0 {
		enc.SetIndent(indent)
	}

	if err := enc.Encode(seq); err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}

	return nil
}
