// Package servicedef defines the deployment-specific parameters of a test
// target: how to launch it, which paths are mounted into it, and what the
// mounted project is expected to contain.
package servicedef

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/frontlook-admin/mcp-contract-tests/harness"
)

// Duration wraps time.Duration so waits in a service definition file can be
// written as "30s" or "100ms".
type Duration struct {
	value time.Duration
}

func DurationOf(d time.Duration) Duration { return Duration{value: d} }

func (d Duration) Duration() time.Duration { return d.value }

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	d.value = parsed
	return nil
}

func (d Duration) MarshalYAML() (interface{}, error) {
	return d.value.String(), nil
}

type MountDef struct {
	Host      string `yaml:"host"`
	Container string `yaml:"container"`
}

// ProjectPaths holds the same host project path in the two spellings a
// Windows-based client is likely to send: with single backslashes and with
// doubled (escaped) backslashes. Targets must translate both.
type ProjectPaths struct {
	Plain   string `yaml:"plain"`
	Escaped string `yaml:"escaped"`
}

type WaitTimes struct {
	Default Duration `yaml:"default"`
	Setup   Duration `yaml:"setup"`
	Probe   Duration `yaml:"probe"`
}

type ServiceParams struct {
	Image          string       `yaml:"image"`
	Docker         string       `yaml:"docker,omitempty"`
	Command        []string     `yaml:"command,omitempty"`
	Mounts         []MountDef   `yaml:"mounts"`
	Projects       ProjectPaths `yaml:"projects"`
	ExpectedType   string       `yaml:"expectedType"`
	SkillsDir      string       `yaml:"skillsDir"`
	Skills         []string     `yaml:"skills"`
	DefaultWorkdir string       `yaml:"defaultWorkdir"`
	Waits          WaitTimes    `yaml:"waits"`
	Pacing         Duration     `yaml:"pacing"`
}

// DefaultParams describes the standard local deployment: the skillmcp:local
// image with G:\Repos mounted at /g/Repos.
func DefaultParams() ServiceParams {
	return ServiceParams{
		Image: "skillmcp:local",
		Mounts: []MountDef{
			{Host: `G:\Repos`, Container: "/g/Repos"},
		},
		Projects: ProjectPaths{
			Plain:   `G:\Repos\frontlook-admin\SkillMcp`,
			Escaped: `G:\\Repos\\frontlook-admin\\SkillMcp`,
		},
		ExpectedType: "AspNetCoreApi",
		SkillsDir:    `G:\Repos\frontlook-admin\SkillMcp\skills`,
		Skills: []string{
			"git-commit",
			"conventional-commit",
			"csharp-async",
			"aspnet-minimal-api-openapi",
			"dotnet-best-practices",
		},
		DefaultWorkdir: "/app",
		Waits: WaitTimes{
			Default: DurationOf(10 * time.Second),
			Setup:   DurationOf(30 * time.Second),
			Probe:   DurationOf(10 * time.Second),
		},
		Pacing: DurationOf(100 * time.Millisecond),
	}
}

// Load reads a YAML service definition file. Values not set in the file keep
// their defaults.
func Load(path string) (ServiceParams, error) {
	params := DefaultParams()
	data, err := os.ReadFile(path)
	if err != nil {
		return ServiceParams{}, fmt.Errorf("could not read service definition %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &params); err != nil {
		return ServiceParams{}, fmt.Errorf("could not parse service definition %s: %w", path, err)
	}
	return params, nil
}

func (s ServiceParams) Target() harness.Target {
	t := harness.Target{
		Command: append([]string(nil), s.Command...),
		Docker:  s.Docker,
		Image:   s.Image,
	}
	for _, m := range s.Mounts {
		t.Mounts = append(t.Mounts, harness.Mount{Host: m.Host, Container: m.Container})
	}
	return t
}
