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
	"context"

	"github.com/rulego/crystalsql/expr"
	"github.com/rulego/crystalsql/formula"
	"github.com/rulego/crystalsql/logger"
	"github.com/rulego/crystalsql/naming"
	"github.com/rulego/crystalsql/report"
	"github.com/rulego/crystalsql/trigger"
	"github.com/rulego/crystalsql/types"
)

// Converter is the main entry point of CrystalSQL. It wires the expression
// translation core, the formula translator and the condition mapper around
// one run's naming state.
//
// A Converter represents one translation run: generated names are unique
// within it and deterministic across runs with the same input order and
// configuration. Create a fresh Converter per report conversion.
//
// Usage example:
//
//	conv := crystalsql.New()
//	res := conv.TranslateExpression("Left({Customer.Name}, 5)")
//	// res.SQL == "SUBSTR(:NAME, 1, 5)"
type Converter struct {
	names    *naming.State
	expr     *expr.Translator
	formulas *formula.Translator
	triggers *trigger.Mapper
	workers  int
	log      logger.Logger
}

// Results bundles the program units generated from one report for the
// document generator.
type Results struct {
	// Formulas in input order, one per source formula
	Formulas []formula.Translated
	// Triggers in document order
	Triggers []trigger.FormatTrigger
}

// New creates a Converter for one translation run. Options customize
// prefixes, the unsupported-function policy, parallelism and logging.
func New(options ...Option) *Converter {
	s := defaultSettings()
	for _, opt := range options {
		opt(&s)
	}

	names := naming.NewState(s.formulaPrefix, s.triggerPrefix, s.parameterPrefix)
	et := expr.NewTranslator(s.formulaPrefix, s.parameterPrefix, s.policy)

	return &Converter{
		names:    names,
		expr:     et,
		formulas: formula.NewTranslator(et, names, s.policy, s.log),
		triggers: trigger.NewMapper(et, names, s.log),
		workers:  s.workers,
		log:      s.log,
	}
}

// TranslateExpression converts one Crystal expression to Oracle text.
func (c *Converter) TranslateExpression(source string) types.TranslatedExpression {
	return c.expr.Translate(source)
}

// TranslateFormula converts one named formula into a PL/SQL program unit.
func (c *Converter) TranslateFormula(f report.Formula) formula.Translated {
	return c.formulas.Translate(f)
}

// TranslateFormulas converts a batch of formulas with partial success: one
// formula's failure never aborts the batch. Cancelling the context returns
// the results translated so far.
func (c *Converter) TranslateFormulas(ctx context.Context, formulas []report.Formula) []formula.Translated {
	return c.formulas.TranslateBatch(ctx, formulas, c.workers)
}

// ConvertSuppressCondition converts an explicit suppress condition into a
// format trigger for the named field.
func (c *Converter) ConvertSuppressCondition(condition, fieldName string) trigger.FormatTrigger {
	return c.triggers.ConvertSuppressCondition(condition, fieldName)
}

// ConvertSuppressIfFlags synthesizes a format trigger from the built-in
// suppress-if-zero/suppress-if-blank flags; nil when neither flag is set.
func (c *Converter) ConvertSuppressIfFlags(zero, blank bool, fieldName string) *trigger.FormatTrigger {
	return c.triggers.ConvertSuppressIfFlags(zero, blank, fieldName)
}

// ConvertReport translates everything the document generator needs from an
// extracted report: all formulas, then all visibility conditions.
func (c *Converter) ConvertReport(ctx context.Context, rep *report.Report) Results {
	c.log.Info("converting report %s: %d formulas, %d sections", rep.Name, len(rep.Formulas), len(rep.Sections))
	return Results{
		Formulas: c.formulas.TranslateBatch(ctx, rep.Formulas, c.workers),
		Triggers: c.triggers.ConvertReport(ctx, rep),
	}
}
