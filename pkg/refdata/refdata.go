// Package refdata loads the static reference tables used by identity
// normalization and trim comparison: known makes, variant registries,
// stopwords, platform classes and trim ladders.
package refdata

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/caroogle/bob/pkg/ladder"
)

//go:embed tables.yaml
var defaultTables []byte

// ErrInvalidTables is returned when reference data fails validation.
var ErrInvalidTables = errors.New("invalid reference tables")

var numericRe = regexp.MustCompile(`^[0-9]+$`)

// file is the on-disk layout of the reference tables.
type file struct {
	Version         string                    `yaml:"version"`
	Makes           []string                  `yaml:"makes"`
	MakeAliases     map[string]string         `yaml:"make_aliases"`
	Variants        map[string][]string       `yaml:"variants"`
	GenericVariants []string                  `yaml:"generic_variants"`
	Stopwords       []string                  `yaml:"stopwords"`
	Platforms       map[string]string         `yaml:"platforms"`
	Ladders         map[string]map[string]int `yaml:"ladders"`
}

// Tables is the immutable set of reference tables. Accessors return copies
// so callers cannot mutate shared state.
type Tables struct {
	version   string
	makes     []string
	aliases   map[string]string
	variants  map[string][]string
	generic   []string
	stopwords map[string]struct{}
	platforms map[string]string
	ladders   *ladder.Set
}

// Default parses the tables compiled into the binary.
func Default() (*Tables, error) {
	return Parse(defaultTables)
}

// Load reads tables from path, or the embedded defaults when path is empty.
func Load(path string) (*Tables, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading reference tables: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates YAML reference tables.
func Parse(data []byte) (*Tables, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing reference tables: %w", err)
	}
	return build(&f)
}

func build(f *file) (*Tables, error) {
	var errs []error

	t := &Tables{
		version:   f.Version,
		aliases:   make(map[string]string, len(f.MakeAliases)),
		variants:  make(map[string][]string, len(f.Variants)),
		stopwords: make(map[string]struct{}, len(f.Stopwords)),
		platforms: make(map[string]string, len(f.Platforms)),
	}

	if t.version == "" {
		errs = append(errs, fmt.Errorf("%w: version is required", ErrInvalidTables))
	}

	known := make(map[string]struct{}, len(f.Makes))
	for _, m := range f.Makes {
		m = Canon(m)
		if m == "" {
			continue
		}
		if _, dup := known[m]; dup {
			errs = append(errs, fmt.Errorf("%w: make %q listed twice", ErrInvalidTables, m))
			continue
		}
		known[m] = struct{}{}
		t.makes = append(t.makes, m)
	}
	if len(t.makes) == 0 {
		errs = append(errs, fmt.Errorf("%w: no makes", ErrInvalidTables))
	}

	for alias, target := range f.MakeAliases {
		target = Canon(target)
		if _, ok := known[target]; !ok {
			errs = append(errs, fmt.Errorf("%w: alias %q points at unknown make %q",
				ErrInvalidTables, alias, target))
			continue
		}
		t.aliases[Canon(alias)] = target
	}

	for _, w := range f.Stopwords {
		t.stopwords[Canon(w)] = struct{}{}
	}

	for key, tokens := range f.Variants {
		k := Canon(key)
		if !strings.Contains(k, ":") {
			errs = append(errs, fmt.Errorf("%w: variant key %q is not MAKE:MODEL", ErrInvalidTables, key))
			continue
		}
		clean, err := t.tokens(k, tokens)
		if err != nil {
			errs = append(errs, err)
		}
		t.variants[k] = clean
	}

	generic, err := t.tokens("generic", f.GenericVariants)
	if err != nil {
		errs = append(errs, err)
	}
	t.generic = generic

	for from, to := range f.Platforms {
		t.platforms[Canon(from)] = Canon(to)
	}

	ladders, err := ladder.New(f.Ladders)
	if err != nil {
		errs = append(errs, fmt.Errorf("%w: %w", ErrInvalidTables, err))
	}
	t.ladders = ladders

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return t, nil
}

// tokens canonicalizes a trim token list and rejects noise tokens.
func (t *Tables) tokens(owner string, raw []string) ([]string, error) {
	var errs []error
	out := make([]string, 0, len(raw))
	for _, tok := range raw {
		c := Canon(tok)
		switch {
		case c == "":
			continue
		case t.IsStopword(c):
			errs = append(errs, fmt.Errorf("%w: %s token %q is a stopword", ErrInvalidTables, owner, c))
		default:
			out = append(out, c)
		}
	}
	return out, errors.Join(errs...)
}

// Version returns the tables' version string.
func (t *Tables) Version() string { return t.version }

// Makes returns the known makes in file order.
func (t *Tables) Makes() []string {
	return append([]string(nil), t.makes...)
}

// Aliases returns alias -> canonical make.
func (t *Tables) Aliases() map[string]string {
	out := make(map[string]string, len(t.aliases))
	for k, v := range t.aliases {
		out[k] = v
	}
	return out
}

// CanonicalMake maps a make string (or alias) to its canonical form.
func (t *Tables) CanonicalMake(s string) (string, bool) {
	c := Canon(s)
	if c == "" {
		return "", false
	}
	if target, ok := t.aliases[c]; ok {
		return target, true
	}
	for _, m := range t.makes {
		if m == c {
			return m, true
		}
	}
	return "", false
}

// Variants returns the trim tokens registered for mk and model.
func (t *Tables) Variants(mk, model string) ([]string, bool) {
	v, ok := t.variants[Key(mk, model)]
	if !ok {
		return nil, false
	}
	return append([]string(nil), v...), true
}

// VariantKeys returns the MAKE:MODEL keys that have a variant registry,
// sorted.
func (t *Tables) VariantKeys() []string {
	out := make([]string, 0, len(t.variants))
	for k := range t.variants {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Models returns the model names known for mk from the variant registries
// and platform mappings, sorted.
func (t *Tables) Models(mk string) []string {
	prefix := Canon(mk) + ":"
	seen := make(map[string]struct{})
	collect := func(key string) {
		if model, ok := strings.CutPrefix(key, prefix); ok && model != "" {
			seen[model] = struct{}{}
		}
	}
	for k := range t.variants {
		collect(k)
	}
	for k := range t.platforms {
		collect(k)
	}
	out := make([]string, 0, len(seen))
	for m := range seen {
		out = append(out, m)
	}
	sort.Strings(out)
	return out
}

// GenericVariants returns the cross-brand fallback tokens.
func (t *Tables) GenericVariants() []string {
	return append([]string(nil), t.generic...)
}

// IsStopword reports whether tok is a noise token that can never be a trim.
// Pure numerics and four-digit years count as stopwords.
func (t *Tables) IsStopword(tok string) bool {
	c := Canon(tok)
	if numericRe.MatchString(c) {
		return true
	}
	_, ok := t.stopwords[c]
	return ok
}

// Stopwords returns the configured stopword list, sorted.
func (t *Tables) Stopwords() []string {
	out := make([]string, 0, len(t.stopwords))
	for w := range t.stopwords {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// PlatformClass returns the platform class for mk and model. Models
// without a mapping are their own platform, MAKE:MODEL.
func (t *Tables) PlatformClass(mk, model string) string {
	k := Key(mk, model)
	if p, ok := t.platforms[k]; ok {
		return p
	}
	return k
}

// Ladders returns the trim ladders.
func (t *Tables) Ladders() *ladder.Set { return t.ladders }

// Key builds the MAKE:MODEL lookup key.
func Key(mk, model string) string {
	return Canon(mk) + ":" + Canon(model)
}

// Canon uppercases s and collapses internal whitespace.
func Canon(s string) string {
	return strings.ToUpper(strings.Join(strings.Fields(s), " "))
}
