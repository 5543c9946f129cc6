/*
Package expr is the expression translation core of CrystalSQL.

It converts one Crystal Reports expression string into equivalent Oracle SQL
text in a single recursive pass over the source bytes. The pipeline is:

 1. Line comments are stripped and evaluation-time directives removed.
 2. Function calls are recognized and translated innermost-first through the
    funcmap table; IIF, Switch, Choose, DatePart and RunningTotal dispatch to
    dedicated handlers.
 3. Field, formula and parameter references on leaf spans resolve to bind
    identifiers and generated function calls.
 4. The operator pass rewrites word operators, boolean literals, the
    inequality and concatenation symbols, and null-comparison idioms over the
    remaining plain text only, so nothing inside string literals or resolved
    identifiers is ever altered.

Translation is pure text computation: no I/O, no shared state, warnings
accumulate on the per-call result. Malformed input (unbalanced parentheses,
unterminated literals) surfaces as a failed TranslatedExpression, never a
panic.
*/
package expr
