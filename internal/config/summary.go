package config

import (
	"fmt"

	"vmargs/internal/flags"
)

// Summary is the externally observable shape of a resolved configuration,
// suitable for yaml or json marshalling. Internal properties are excluded.
type Summary struct {
	Mode      string     `yaml:"mode" json:"mode"`
	Collector string     `yaml:"collector" json:"collector"`
	Heap      HeapConfig `yaml:"heap" json:"heap"`

	Properties []PropertySummary `yaml:"properties,omitempty" json:"properties,omitempty"`
	Agents     []AgentSummary    `yaml:"agents,omitempty" json:"agents,omitempty"`
	Libraries  []AgentSummary    `yaml:"libraries,omitempty" json:"libraries,omitempty"`
	Patches    []PatchSummary    `yaml:"patched_modules,omitempty" json:"patched_modules,omitempty"`
	Command    []string          `yaml:"command,omitempty" json:"command,omitempty"`

	// Flags holds the final value of every registered flag, keyed by
	// canonical name. Populated only when PrintFlagsFinal is set.
	Flags map[string]string `yaml:"flags,omitempty" json:"flags,omitempty"`
}

// PropertySummary is one externally visible system property.
type PropertySummary struct {
	Key   string `yaml:"key" json:"key"`
	Value string `yaml:"value" json:"value"`
}

// AgentSummary is one agent or init-library registration.
type AgentSummary struct {
	Name         string `yaml:"name" json:"name"`
	Options      string `yaml:"options,omitempty" json:"options,omitempty"`
	AbsolutePath bool   `yaml:"absolute_path,omitempty" json:"absolute_path,omitempty"`
}

// PatchSummary is one module's accumulated patch paths.
type PatchSummary struct {
	Module string   `yaml:"module" json:"module"`
	Paths  []string `yaml:"paths" json:"paths"`
}

// Summarize renders the resolved configuration.
func (c *Context) Summarize() Summary {
	s := Summary{
		Mode:      c.Mode.String(),
		Collector: c.GC.String(),
		Heap:      c.Heap,
		Command:   c.command,
	}
	for _, p := range c.Properties.External() {
		s.Properties = append(s.Properties, PropertySummary{Key: p.Key, Value: p.Value})
	}
	for _, a := range c.Agents.Agents() {
		s.Agents = append(s.Agents, AgentSummary{Name: a.Name, Options: a.Options, AbsolutePath: a.AbsolutePath})
	}
	for _, l := range c.Agents.Libraries() {
		s.Libraries = append(s.Libraries, AgentSummary{Name: l.Name, Options: l.Options})
	}
	for _, e := range c.PatchTable.Entries() {
		s.Patches = append(s.Patches, PatchSummary{Module: e.Module, Paths: e.Paths()})
	}
	if c.Flags.Bool("PrintFlagsFinal") {
		s.Flags = make(map[string]string)
		for _, name := range flags.Names() {
			s.Flags[name] = fmt.Sprintf("%v", c.Flags.Value(name))
		}
	}
	return s
}
