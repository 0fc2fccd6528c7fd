// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"dario.cat/mergo"
)

// source priorities; higher wins when merging
const (
	priorityDefaults = iota
	priorityJSON
	priorityEnv
	priorityFlags
)

type sourceConfig struct {
	priority int
	cfg      *StructuredConfig
}

type configBuilder struct {
	configs []sourceConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]sourceConfig, 0, 4),
	}
}

func (b *configBuilder) add(priority int, cfg *StructuredConfig) {
	b.configs = append(b.configs, sourceConfig{priority: priority, cfg: cfg})
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	sorted := slices.Clone(b.configs)
	slices.SortStableFunc(sorted, func(a, c sourceConfig) int {
		return cmp.Compare(a.priority, c.priority)
	})

	config := new(StructuredConfig)
	for _, src := range sorted {
		if err := mergo.Merge(config, src.cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return config, config.validate()
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.add(priorityDefaults, Defaults())
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.add(priorityEnv, envCfg)
	return b
}

func (b *configBuilder) withFlags(flagCfg *StructuredConfig) *configBuilder {
	if flagCfg == nil {
		return b
	}

	b.add(priorityFlags, flagCfg)
	return b
}

// withJSON loads the file named by the highest-priority source that sets
// JSONFilePath. It must run after the env and flag sources were added.
func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string
	best := -1
	for _, src := range b.configs {
		if src.cfg.JSONFilePath != "" && src.priority > best {
			best = src.priority
			jsonPath = src.cfg.JSONFilePath
		}
	}

	if jsonPath == "" {
		return b
	}

	jsonCfg, err := parseJSON(jsonPath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.add(priorityJSON, jsonCfg)
	return b
}
