package config

import (
	"bytes"
	"path/filepath"
	"strings"

	"go.trai.ch/olymper/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// solutionDTO is one entry of the "solutions" array in problem.json.
type solutionDTO struct {
	Name   string `yaml:"name"`
	Path   string `yaml:"path"`
	IsMain bool   `yaml:"is_main"`
}

// contestDTO is the shape of contest.json.
type contestDTO struct {
	Server     string `yaml:"server"`
	ServerPath string `yaml:"server_path"`
}

// stripComments drops whole-line // and ; comments and expands leading tabs.
// YAML handles # comments on its own.
func stripComments(data []byte) []byte {
	lines := bytes.Split(data, []byte("\n"))
	out := make([][]byte, 0, len(lines))
	for _, line := range lines {
		trimmed := bytes.TrimLeft(line, " \t")
		if bytes.HasPrefix(trimmed, []byte("//")) || bytes.HasPrefix(trimmed, []byte(";")) {
			out = append(out, nil)
			continue
		}
		indent := line[:len(line)-len(trimmed)]
		out = append(out, append(bytes.ReplaceAll(indent, []byte("\t"), []byte("    ")), trimmed...))
	}
	return bytes.Join(out, []byte("\n"))
}

// decodeDocument parses data into its top-level mapping node.
func decodeDocument(data []byte) (*yaml.Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(stripComments(data), &doc); err != nil {
		return nil, zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}
	if len(doc.Content) == 0 || doc.Content[0].Kind != yaml.MappingNode {
		return nil, zerr.Wrap(domain.ErrConfigParseFailed, "descriptor is not an object")
	}
	return doc.Content[0], nil
}

func parseProblemJSON(root string, data []byte) (*domain.ProblemConfig, error) {
	top, err := decodeDocument(data)
	if err != nil {
		return nil, zerr.With(err, "path", filepath.Join(root, domain.ProblemJSONName))
	}

	params := make(map[string]string, len(top.Content)/2)
	var (
		solutions []domain.Solution
		main      string
	)

	for i := 0; i+1 < len(top.Content); i += 2 {
		key, value := top.Content[i].Value, top.Content[i+1]

		if key == "solutions" {
			var dtos []solutionDTO
			if err := value.Decode(&dtos); err != nil {
				return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "key", key)
			}
			for _, s := range dtos {
				name := s.Name
				if name == "" {
					name = filepath.Base(s.Path)
				}
				solutions = append(solutions, domain.Solution{Name: name, Path: s.Path})
				if s.IsMain && main == "" {
					main = s.Path
				}
			}
			continue
		}

		if value.Kind != yaml.ScalarNode {
			continue
		}
		params[key] = scalarText(value)
	}

	return domain.NewProblemConfig(root, domain.FormatJSON, params, solutions, main), nil
}

func parseContestJSON(root string, data []byte) (*domain.ContestConfig, error) {
	top, err := decodeDocument(data)
	if err != nil {
		return nil, zerr.With(err, "path", filepath.Join(root, domain.ContestJSONName))
	}

	var dto contestDTO
	if err := top.Decode(&dto); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", root)
	}

	return &domain.ContestConfig{Root: root, Host: dto.Server, ServerPath: dto.ServerPath}, nil
}

// scalarText renders a scalar the way it was written; null becomes "".
func scalarText(n *yaml.Node) string {
	if n.Tag == "!!null" {
		return ""
	}
	return strings.TrimSpace(n.Value)
}
