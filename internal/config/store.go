package config

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cuejson "cuelang.org/go/encoding/json"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

//go:embed schema.cue
var schemaSrc string

// Load reads the config file at path.
//
// A missing file yields an empty Config and no error. JSON files may contain
// comments and trailing commas; .yaml and .yml files are read as YAML.
// Either way the document must satisfy the #Config schema.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Config{}, nil
	}
	if err != nil {
		return Config{}, &ReadError{Path: path, Err: err}
	}

	cfg, err := decode(path, data)
	if err != nil {
		return Config{}, &ParseError{Path: path, Err: err}
	}
	return cfg, nil
}

// Save overwrites path with cfg, as YAML or indented JSON by extension.
func Save(path string, cfg Config) error {
	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(cfg)
	} else {
		data, err = json.MarshalIndent(cfg, "", "  ")
		data = append(data, '\n')
	}
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("save config %s: %w", path, err)
	}
	return nil
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// decode parses data and checks it against the embedded schema.
func decode(path string, data []byte) (Config, error) {
	if strings.TrimSpace(string(data)) == "" {
		return Config{}, nil
	}
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaSrc, cue.Filename("schema.cue")).LookupPath(cue.ParsePath("#Config"))
	if err := schema.Err(); err != nil {
		return Config{}, fmt.Errorf("schema: %w", err)
	}

	var doc cue.Value
	if isYAML(path) {
		var m map[string]any
		if err := yaml.Unmarshal(data, &m); err != nil {
			return Config{}, err
		}
		if m == nil {
			m = map[string]any{}
		}
		doc = ctx.Encode(m)
	} else {
		stripped := jsonc.ToJSON(data)
		if strings.TrimSpace(string(stripped)) == "" {
			return Config{}, nil
		}
		expr, err := cuejson.Extract(path, stripped)
		if err != nil {
			return Config{}, err
		}
		doc = ctx.BuildExpr(expr)
	}
	if err := doc.Err(); err != nil {
		return Config{}, err
	}

	v := schema.Unify(doc)
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := v.Decode(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
