package dictionary

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Layout names the on-disk shape of a language's dictionary data.
type Layout string

const (
	LayoutFlat     Layout = "flat"
	LayoutSharded  Layout = "sharded"
	LayoutPlain    Layout = "plain"
	LayoutBundle   Layout = "bundle"
	LayoutDatabase Layout = "database"
)

// ManifestFileName is looked up in the dictionary directory when no
// manifest path is configured.
const ManifestFileName = "manifest.yaml"

// LanguageSpec describes where and how one language is stored.
type LanguageSpec struct {
	Code         string   `yaml:"code" validate:"required"`
	Layout       Layout   `yaml:"layout" validate:"required,oneof=flat sharded plain bundle database"`
	Path         string   `yaml:"path"`
	MinLength    int      `yaml:"min_length" validate:"min=1"`
	MaxLength    int      `yaml:"max_length" validate:"gtefield=MinLength"`
	UsageAliases []string `yaml:"usage_aliases"`
	FilePrefix   string   `yaml:"file_prefix"`
	File         string   `yaml:"file"`
}

// Manifest lists the languages served from a dictionary directory.
type Manifest struct {
	DefaultLanguage string         `yaml:"default_language" validate:"required"`
	Languages       []LanguageSpec `yaml:"languages" validate:"required,min=1,dive"`
}

// DefaultManifest describes the stock data set: English as flat per-length
// files and Brazilian Portuguese sharded by initial letter.
func DefaultManifest() Manifest {
	return Manifest{
		DefaultLanguage: "en-us",
		Languages: []LanguageSpec{
			{Code: "en-us", Layout: LayoutFlat, Path: "en-us", MinLength: 4, MaxLength: 8},
			{Code: "pt-br", Layout: LayoutSharded, Path: "pt-br", MinLength: 3, MaxLength: 8, UsageAliases: []string{"examples"}},
		},
	}
}

// UsesLayout reports whether any language is stored with layout.
func (m Manifest) UsesLayout(layout Layout) bool {
	for _, spec := range m.Languages {
		if spec.Layout == layout {
			return true
		}
	}
	return false
}

// Language returns the entry for code.
func (m Manifest) Language(code string) (LanguageSpec, bool) {
	code = NormalizeWord(code)
	for _, spec := range m.Languages {
		if spec.Code == code {
			return spec, true
		}
	}
	return LanguageSpec{}, false
}

// LoadManifest reads the manifest at path. With an empty path it looks for
// manifest.yaml in dir and falls back to DefaultManifest when absent.
func LoadManifest(path, dir string) (Manifest, error) {
	explicit := path != ""
	if !explicit {
		path = filepath.Join(dir, ManifestFileName)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return DefaultManifest(), nil
		}
		return Manifest{}, fmt.Errorf("read manifest: %w", err)
	}
	return ParseManifest(data)
}

// ParseManifest decodes and validates a YAML manifest.
func ParseManifest(data []byte) (Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("parse manifest: %w", err)
	}
	m.normalize()
	if err := m.Validate(); err != nil {
		return Manifest{}, err
	}
	return m, nil
}

func (m *Manifest) normalize() {
	m.DefaultLanguage = strings.ToLower(strings.TrimSpace(m.DefaultLanguage))
	for i := range m.Languages {
		m.Languages[i].Code = strings.ToLower(strings.TrimSpace(m.Languages[i].Code))
		if m.Languages[i].Path == "" {
			m.Languages[i].Path = m.Languages[i].Code
		}
	}
}

// Validate checks field constraints, duplicate codes and that the default
// language is declared.
func (m Manifest) Validate() error {
	if err := newManifestValidator().Struct(m); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s failed %q", strings.TrimPrefix(fe.Namespace(), "Manifest."), fe.Tag()))
			}
			return fmt.Errorf("invalid manifest: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("invalid manifest: %w", err)
	}

	seen := make(map[string]bool, len(m.Languages))
	for _, lang := range m.Languages {
		if seen[lang.Code] {
			return fmt.Errorf("invalid manifest: duplicate language %q", lang.Code)
		}
		seen[lang.Code] = true
	}
	if !seen[m.DefaultLanguage] {
		return fmt.Errorf("invalid manifest: default language %q is not declared", m.DefaultLanguage)
	}
	return nil
}

func newManifestValidator() *validator.Validate {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return validate
}
