// Package config defines the grading suite: which traces run, against which
// executables, and which extra normalization rules each case needs.
package config

import (
	_ "embed"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"
)

//go:embed default/suite.yaml
var defaultSuiteData []byte

// Suite is the full grading configuration. The embedded default reproduces
// the shell lab's fixed 20-trace suite; an external YAML file may override it.
type Suite struct {
	// Driver is the session driver that plays a trace against a shell.
	Driver string `json:"driver" validate:"required"`
	// Student is the shell under test.
	Student string `json:"student_shell" validate:"required"`
	// Reference is the known-good shell.
	Reference string `json:"reference_shell" validate:"required"`
	// ShellArgs is passed to the driver's -a flag.
	ShellArgs string `json:"shell_args"`
	// TimeoutSeconds bounds each driver invocation.
	TimeoutSeconds int `json:"timeout_seconds" validate:"gt=0"`

	Tests []TestCase `json:"tests" validate:"required,unique=Name,dive"`
}

// TestCase names one scripted session and how to normalize its output.
type TestCase struct {
	Name   string `json:"name" validate:"required"`
	Trace  string `json:"trace" validate:"required"`
	Points int    `json:"points" validate:"gte=0"`
	// Rules are extra normalization rules applied after the base ones.
	Rules []string `json:"rules,omitempty" validate:"dive,oneof=ps-listing prompt-ending"`
}

// Validate the suite for basic semantic errors.
func (s *Suite) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		return name
	})

	return validate.Struct(s)
}

// Timeout returns the per-invocation wall clock limit.
func (s *Suite) Timeout() time.Duration {
	return time.Duration(s.TimeoutSeconds) * time.Second
}

// MaxScore is the total available across the suite.
func (s *Suite) MaxScore() int {
	var total int
	for _, tc := range s.Tests {
		total += tc.Points
	}
	return total
}

// MissingTraces reports configured trace files that don't exist on fsys,
// in suite order. Grading proceeds regardless; this is for preflight
// diagnostics only.
func (s *Suite) MissingTraces(fsys afero.Fs) []string {
	var missing []string
	for _, tc := range s.Tests {
		if ok, err := afero.Exists(fsys, tc.Trace); err != nil || !ok {
			missing = append(missing, tc.Trace)
		}
	}
	return missing
}

// Default returns the embedded suite definition.
func Default() (*Suite, error) {
	return parse(defaultSuiteData)
}

func parse(data []byte) (*Suite, error) {
	var out Suite
	if err := yaml.UnmarshalStrict(data, &out); err != nil {
		return nil, err
	}
	if err := out.Validate(); err != nil {
		return nil, err
	}
	return &out, nil
}
