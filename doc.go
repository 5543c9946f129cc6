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

/*
Package crystalsql translates Crystal Reports formula expressions into Oracle
PL/SQL program units.

It is the expression-translation core of an .rpt to Oracle Reports
conversion pipeline: report extraction happens upstream in an external tool,
document generation happens downstream. CrystalSQL sits between the two and
covers the hard middle:

  - Crystal computed formulas become named PL/SQL functions
    ({@Total} -> CF_TOTAL()), with return-type inference and a configurable
    policy for constructs that have no Oracle equivalent.
  - Field and section visibility conditions become boolean format-trigger
    functions guarded by a catch-all exception clause, including synthetic
    conditions for the built-in suppress-if-zero/suppress-if-blank flags.

# Architecture

	crystalsql  - Converter facade, one instance per translation run
	expr        - recursive expression translation core
	funcmap     - static Crystal -> Oracle function mapping table
	naming      - deterministic, collision-free identifier generation
	formula     - formula program-unit generation
	trigger     - format-trigger program-unit generation
	report      - extracted report model and JSON ingestion
	preview     - sample-data evaluation of suppress conditions
	config      - YAML conversion configuration
	logger      - leveled logging

# Usage

	conv := crystalsql.New(
		crystalsql.WithFormulaPrefix("CF_"),
		crystalsql.WithUnsupportedPolicy(types.PolicyPlaceholder),
	)
	res := conv.ConvertReport(ctx, rep)
	for _, f := range res.Formulas {
		fmt.Println(f.Body)
	}

Translation is deterministic: the same input order and configuration
produce byte-identical names and bodies on every run.
*/
package crystalsql
