/*
 * Copyright 2025 The RuleGo Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package crystalsql

import (
	"github.com/rulego/crystalsql/config"
	"github.com/rulego/crystalsql/logger"
	"github.com/rulego/crystalsql/types"
)

type settings struct {
	formulaPrefix   string
	triggerPrefix   string
	parameterPrefix string
	policy          types.UnsupportedPolicy
	workers         int
	log             logger.Logger
}

func defaultSettings() settings {
	return settings{
		formulaPrefix:   "CF_",
		triggerPrefix:   "FT_",
		parameterPrefix: "P_",
		policy:          types.PolicyPlaceholder,
		workers:         1,
		log:             logger.GetDefault(),
	}
}

// Option customizes a Converter.
type Option func(*settings)

// WithFormulaPrefix sets the prefix of generated formula function names.
func WithFormulaPrefix(prefix string) Option {
	return func(s *settings) { s.formulaPrefix = prefix }
}

// WithTriggerPrefix sets the prefix of generated format-trigger names.
func WithTriggerPrefix(prefix string) Option {
	return func(s *settings) { s.triggerPrefix = prefix }
}

// WithParameterPrefix sets the prefix of parameter bind names.
func WithParameterPrefix(prefix string) Option {
	return func(s *settings) { s.parameterPrefix = prefix }
}

// WithUnsupportedPolicy sets how untranslatable constructs are handled.
func WithUnsupportedPolicy(policy types.UnsupportedPolicy) Option {
	return func(s *settings) { s.policy = policy }
}

// WithWorkers sets batch translation parallelism. Values below 2 keep
// batches sequential.
func WithWorkers(n int) Option {
	return func(s *settings) { s.workers = n }
}

// WithLogger sets the logger the Converter components use.
func WithLogger(log logger.Logger) Option {
	return func(s *settings) { s.log = log }
}

// WithDiscardLog disables log output.
func WithDiscardLog() Option {
	return func(s *settings) { s.log = logger.NewDiscardLogger() }
}

// WithConfig applies a loaded configuration file.
func WithConfig(cfg *config.Config) Option {
	return func(s *settings) {
		if cfg.FormulaPrefix != "" {
			s.formulaPrefix = cfg.FormulaPrefix
		}
		if cfg.TriggerPrefix != "" {
			s.triggerPrefix = cfg.TriggerPrefix
		}
		if cfg.ParameterPrefix != "" {
			s.parameterPrefix = cfg.ParameterPrefix
		}
		if cfg.OnUnsupported != "" {
			s.policy = types.ParseUnsupportedPolicy(cfg.OnUnsupported)
		}
		if cfg.Workers > 1 {
			s.workers = cfg.Workers
		}
	}
}
