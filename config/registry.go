package config

import (
	"fmt"
	"sort"
	"sync"

	"github.com/featkit/featkit/pipeline"
)

// Config-driven pipelines need the built-in stage builders registered; import
// _ "github.com/featkit/featkit/config/builders" in main to trigger their
// init registration.

// StageBuilder matches pipeline.StageBuilder: build a Stage from its config.
type StageBuilder = pipeline.StageBuilder

var (
	defaultBuilders   = make(map[string]StageBuilder)
	defaultBuildersMu sync.RWMutex
)

// Register registers a stage builder for config-driven construction.
// Call from an init, e.g.: func init() { config.Register("transform.cross", BuildCrossStage) }
func Register(typeName string, builder StageBuilder) {
	if typeName == "" || builder == nil {
		return
	}
	defaultBuildersMu.Lock()
	defer defaultBuildersMu.Unlock()
	defaultBuilders[typeName] = builder
}

// SupportedTypes returns the registered stage types, sorted, for error
// messages and validation.
func SupportedTypes() []string {
	defaultBuildersMu.RLock()
	defer defaultBuildersMu.RUnlock()
	types := make([]string, 0, len(defaultBuilders))
	for t := range defaultBuilders {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// DefaultFactory returns a StageFactory holding every registered builder.
func DefaultFactory() *pipeline.StageFactory {
	defaultBuildersMu.RLock()
	defer defaultBuildersMu.RUnlock()
	f := pipeline.NewStageFactory()
	for typeName, builder := range defaultBuilders {
		f.Register(typeName, builder)
	}
	return f
}

// ValidatePipelineConfig checks that every stage type in cfg is registered.
func ValidatePipelineConfig(cfg *pipeline.Config) error {
	if cfg == nil {
		return nil
	}
	supported := SupportedTypes()
	for _, sc := range cfg.Pipeline.Stages {
		if sc.Type == "" {
			continue
		}
		defaultBuildersMu.RLock()
		_, ok := defaultBuilders[sc.Type]
		defaultBuildersMu.RUnlock()
		if !ok {
			return fmt.Errorf("unsupported stage type %q (supported: %v)", sc.Type, supported)
		}
	}
	return nil
}
