package pipeline

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the declarative form of a Pipeline (YAML or JSON).
type Config struct {
	Pipeline struct {
		Name   string        `yaml:"name" json:"name"`
		Stages []StageConfig `yaml:"stages" json:"stages"`
	} `yaml:"pipeline" json:"pipeline"`
}

// StageConfig configures a single Stage.
type StageConfig struct {
	Type   string         `yaml:"type" json:"type"`     // transform.bin / transform.cross / filter.expr ...
	Config map[string]any `yaml:"config" json:"config"` // stage-specific settings
}

// LoadFromYAML loads a pipeline Config from a YAML file.
func LoadFromYAML(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}

	return &cfg, nil
}

// LoadFromJSON loads a pipeline Config from a JSON file.
func LoadFromJSON(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}

	return &cfg, nil
}

// BuildPipeline constructs a Pipeline from the config using the given
// factory. Built-in stage builders live in the config package to avoid an
// import cycle.
func (c *Config) BuildPipeline(factory *StageFactory) (*Pipeline, error) {
	stages := make([]Stage, 0, len(c.Pipeline.Stages))

	for _, sc := range c.Pipeline.Stages {
		stage, err := factory.Build(sc.Type, sc.Config)
		if err != nil {
			return nil, fmt.Errorf("build stage %s: %w", sc.Type, err)
		}
		stages = append(stages, stage)
	}

	return &Pipeline{Stages: stages}, nil
}

// StageFactory builds Stage instances from type names and config maps.
type StageFactory struct {
	builders map[string]StageBuilder
}

func NewStageFactory() *StageFactory {
	return &StageFactory{
		builders: make(map[string]StageBuilder),
	}
}

// Register registers a builder for a stage type.
func (f *StageFactory) Register(stageType string, builder StageBuilder) {
	f.builders[stageType] = builder
}

// Build constructs a Stage of the given type.
func (f *StageFactory) Build(stageType string, config map[string]any) (Stage, error) {
	builder, ok := f.builders[stageType]
	if !ok {
		return nil, fmt.Errorf("unknown stage type: %s", stageType)
	}
	return builder(config)
}
