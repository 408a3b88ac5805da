package missed

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// Config names the rule logs consulted for missed spans.
type Config struct {
	// Dir is the directory the Files are read from
	Dir   string   `yaml:"dir"`
	Files []string `yaml:"files"`
}

func DefaultConfig() Config {
	return Config{
		Dir: "./logs",
		Files: []string{
			"all.txt.new",
			"pleonastic.txt.new",
			"quantrule.txt.new",
			"partitiveRule.txt.new",
			"bareNPRule.txt.new",
			"percentsymbol.txt.new",
			"percentandmoney.txt.new",
			"isAdjectival.txt.new",
			"stoplist.txt.new",
			"nested.txt.new",
		},
	}
}

// LoadConfig reads a YAML config. Fields missing in the file keep their
// default value.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("IO error: %w", err)
	}

	return ParseConfig(data)
}

func ParseConfig(data []byte) (Config, error) {
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("YAML decoding error: %w", err)
	}

	def := DefaultConfig()
	if c.Dir == "" {
		c.Dir = def.Dir
	}
	if c.Files == nil {
		c.Files = def.Files
	}

	return c, nil
}
