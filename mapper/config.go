/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package mapper

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"google.golang.org/grpc/codes"
	"gopkg.in/yaml.v3"

	"dirpx.dev/polarerr/apis"
	"dirpx.dev/polarerr/internal/ident"
	"dirpx.dev/polarerr/kind"
)

// Config is the file form of the mapper options.
//
//	fallback:
//	  http: 500
//	  grpc: INTERNAL
//	http_defaults:
//	  parse_error: 422
//	grpc_overrides:
//	  polar_file_not_found_error: FAILED_PRECONDITION
//	http_prefixes:
//	  - kind: ffi_error_not_found
//	    prefix: runtime.*
//	    status: 500
//
// Kinds may be written in CamelCase ("ParseError"); gRPC codes by name in
// either spelling ("NOT_FOUND", "NotFound") or by number.
type Config struct {
	Fallback      *Fallback           `yaml:"fallback"`
	HTTPDefaults  map[string]int      `yaml:"http_defaults" validate:"dive,keys,kind,endkeys,http_status"`
	GRPCDefaults  map[string]GRPCCode `yaml:"grpc_defaults" validate:"dive,keys,kind,endkeys,grpc_code"`
	HTTPOverrides map[string]int      `yaml:"http_overrides" validate:"dive,keys,kind,endkeys,http_status"`
	GRPCOverrides map[string]GRPCCode `yaml:"grpc_overrides" validate:"dive,keys,kind,endkeys,grpc_code"`
	HTTPPrefixes  []HTTPPrefix        `yaml:"http_prefixes" validate:"dive"`
	GRPCPrefixes  []GRPCPrefix        `yaml:"grpc_prefixes" validate:"dive"`
}

// Fallback replaces the statuses used when no rule applies.
type Fallback struct {
	HTTP int      `yaml:"http" validate:"http_status"`
	GRPC GRPCCode `yaml:"grpc" validate:"grpc_code"`
}

// HTTPPrefix is one tag-prefix rule for HTTP.
type HTTPPrefix struct {
	Kind   string `yaml:"kind" validate:"required,kind"`
	Prefix string `yaml:"prefix" validate:"required,tag_prefix"`
	Status int    `yaml:"status" validate:"http_status"`
}

// GRPCPrefix is one tag-prefix rule for gRPC.
type GRPCPrefix struct {
	Kind   string   `yaml:"kind" validate:"required,kind"`
	Prefix string   `yaml:"prefix" validate:"required,tag_prefix"`
	Code   GRPCCode `yaml:"code" validate:"grpc_code"`
}

// GRPCCode is a gRPC status code that unmarshals from a YAML name or number.
type GRPCCode uint32

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *GRPCCode) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return fmt.Errorf("mapper: line %d: gRPC code must be a scalar", n.Line)
	}
	raw := n.Value
	if n.Tag != "!!int" {
		raw = `"` + strings.ToUpper(ident.Snake(strings.TrimSpace(raw))) + `"`
	}
	var code codes.Code
	if err := code.UnmarshalJSON([]byte(raw)); err != nil {
		return fmt.Errorf("mapper: line %d: %w", n.Line, err)
	}
	*c = GRPCCode(code)
	return nil
}

var configValidator = newConfigValidator()

func newConfigValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	must := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(err)
		}
	}
	must("kind", func(fl validator.FieldLevel) bool {
		k, err := kind.Parse(fl.Field().String())
		return err == nil && kind.Known(k)
	})
	must("tag_prefix", func(fl validator.FieldLevel) bool {
		_, err := normalizeAndValidatePrefix(fl.Field().String())
		return err == nil
	})
	must("http_status", func(fl validator.FieldLevel) bool {
		s := fl.Field().Int()
		return s >= 100 && s <= 599
	})
	must("grpc_code", func(fl validator.FieldLevel) bool {
		return fl.Field().Uint() <= uint64(codes.Unauthenticated)
	})
	return v
}

// Validate checks the configuration without building a mapper.
func (c *Config) Validate() error {
	if err := configValidator.Struct(c); err != nil {
		return fmt.Errorf("mapper: invalid config: %w", err)
	}
	return nil
}

// Options converts a validated configuration into mapper options. Map
// entries are emitted in kind order so the result is deterministic.
func (c *Config) Options() ([]Option, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	var opts []Option
	if c.Fallback != nil {
		opts = append(opts, WithFallback(c.Fallback.HTTP, int(c.Fallback.GRPC)))
	}
	for _, k := range sortedKeys(c.HTTPDefaults) {
		opts = append(opts, WithHTTPDefault(kind.MustParse(k), c.HTTPDefaults[k]))
	}
	for _, k := range sortedKeys(c.GRPCDefaults) {
		opts = append(opts, WithGRPCDefault(kind.MustParse(k), int(c.GRPCDefaults[k])))
	}
	for _, k := range sortedKeys(c.HTTPOverrides) {
		opts = append(opts, WithHTTPOverride(kind.MustParse(k), c.HTTPOverrides[k]))
	}
	for _, k := range sortedKeys(c.GRPCOverrides) {
		opts = append(opts, WithGRPCOverride(kind.MustParse(k), int(c.GRPCOverrides[k])))
	}
	for _, p := range c.HTTPPrefixes {
		opts = append(opts, WithHTTPPrefix(kind.MustParse(p.Kind), p.Prefix, p.Status))
	}
	for _, p := range c.GRPCPrefixes {
		opts = append(opts, WithGRPCPrefix(kind.MustParse(p.Kind), p.Prefix, int(p.Code)))
	}
	return opts, nil
}

// LoadConfig reads a YAML configuration from r, validates it and returns
// the options it describes. Unknown keys are rejected. An empty document
// yields no options.
func LoadConfig(r io.Reader) ([]Option, error) {
	var cfg Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("mapper: decode config: %w", err)
	}
	return cfg.Options()
}

// NewFromConfig builds a mapper from a YAML configuration. opts are applied
// after the configuration and win over it.
func NewFromConfig(r io.Reader, opts ...Option) (apis.Mapper, error) {
	cfgOpts, err := LoadConfig(r)
	if err != nil {
		return nil, err
	}
	return New(append(cfgOpts, opts...)...)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
