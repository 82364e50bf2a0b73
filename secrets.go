package configtoml

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// SecretsSpecifier decides whether a flattened entry is secret.
// It is called once per entry while the snapshot is built, with the encoded key
// and the canonical rendering of the value.
type SecretsSpecifier interface {
	IsSecret(key, value string) bool
}

// SecretsFunc is a function adapter for SecretsSpecifier interface.
type SecretsFunc func(key, value string) bool

// IsSecret calls f(key, value).
func (f SecretsFunc) IsSecret(key, value string) bool {
	return f(key, value)
}

type constSecrets bool

func (c constSecrets) IsSecret(string, string) bool { return bool(c) }

// SecretsNone treats no entry as secret.
func SecretsNone() SecretsSpecifier { return constSecrets(false) }

// SecretsAll treats every entry as secret.
func SecretsAll() SecretsSpecifier { return constSecrets(true) }

type keySecrets map[string]struct{}

func (k keySecrets) IsSecret(key, _ string) bool {
	_, ok := k[key]
	return ok
}

// SecretsKeys treats the entries with exactly these encoded keys as secret.
func SecretsKeys(keys ...string) SecretsSpecifier {
	set := make(keySecrets, len(keys))
	for _, k := range keys {
		set[k] = struct{}{}
	}
	return set
}

// SecretRules combines key and value matchers. An entry is secret if any rule matches.
//
// YAML form:
//
//	keys:
//	  - database.password
//	key_patterns:
//	  - '(?i)(token|secret)$'
//	value_prefixes:
//	  - 'sk-'
type SecretRules struct {
	Keys          []string `yaml:"keys"`
	KeyPatterns   []string `yaml:"key_patterns"`
	ValuePrefixes []string `yaml:"value_prefixes"`

	once       sync.Once
	keys       map[string]struct{}
	patterns   []*regexp.Regexp
	compileErr error
}

// ParseSecretRules decodes and compiles rules from YAML.
func ParseSecretRules(data []byte) (*SecretRules, error) {
	var rules SecretRules
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("parse secret rules: %w", err)
	}
	if err := rules.Compile(); err != nil {
		return nil, err
	}
	return &rules, nil
}

// LoadSecretRules reads rules from a YAML file.
func LoadSecretRules(path string) (*SecretRules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read secret rules %s: %w", path, err)
	}
	rules, err := ParseSecretRules(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rules, nil
}

// Compile reports the first key pattern that is not a valid regular expression.
// Rules are compiled once, on the first Compile or IsSecret call, so later
// changes to the exported fields have no effect. Invalid patterns never match;
// the remaining rules still apply.
func (r *SecretRules) Compile() error {
	r.once.Do(r.compile)
	return r.compileErr
}

func (r *SecretRules) compile() {
	r.keys = make(map[string]struct{}, len(r.Keys))
	for _, k := range r.Keys {
		r.keys[k] = struct{}{}
	}
	r.patterns = make([]*regexp.Regexp, 0, len(r.KeyPatterns))
	for _, p := range r.KeyPatterns {
		re, err := regexp.Compile(p)
		if err != nil {
			if r.compileErr == nil {
				r.compileErr = fmt.Errorf("compile key pattern %q: %w", p, err)
			}
			continue
		}
		r.patterns = append(r.patterns, re)
	}
}

// IsSecret implements SecretsSpecifier. Safe for concurrent use.
func (r *SecretRules) IsSecret(key, value string) bool {
	r.once.Do(r.compile)

	if _, ok := r.keys[key]; ok {
		return true
	}
	for _, re := range r.patterns {
		if re.MatchString(key) {
			return true
		}
	}
	for _, prefix := range r.ValuePrefixes {
		if prefix != "" && strings.HasPrefix(value, prefix) {
			return true
		}
	}
	return false
}
