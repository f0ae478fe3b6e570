package docgen

import (
	"os"
	"strings"

	"github.com/Alb-O/openmodules/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Frontmatter is the YAML block at the top of a module README,
// following the SKILL.md convention: delimited by "---" lines.
type Frontmatter struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

const frontmatterDelimiter = "---"

// ReadFrontmatter parses the YAML frontmatter of a markdown file.
// A file without frontmatter yields nil, not an error.
func ReadFrontmatter(path string) (*Frontmatter, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrap(err, errors.ErrFileAccess, "cannot read markdown file").
			WithDetail("path", path)
	}

	content := strings.ReplaceAll(string(data), "\r\n", "\n")
	if !strings.HasPrefix(content, frontmatterDelimiter+"\n") {
		return nil, nil
	}

	rest := content[len(frontmatterDelimiter)+1:]
	end := strings.Index(rest, "\n"+frontmatterDelimiter)
	if end < 0 {
		return nil, nil
	}

	var fm Frontmatter
	if err := yaml.Unmarshal([]byte(rest[:end]), &fm); err != nil {
		return nil, errors.Wrap(err, errors.ErrManifestParse, "invalid README frontmatter").
			WithDetail("path", path)
	}

	fm.Name = strings.TrimSpace(fm.Name)
	fm.Description = strings.TrimSpace(fm.Description)
	return &fm, nil
}
