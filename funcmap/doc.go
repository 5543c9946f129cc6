/*
Package funcmap holds the static mapping from Crystal Reports functions to
Oracle SQL.

Each Entry pairs a case-insensitive function name with either an Oracle text
template carrying numbered argument placeholders, or a HandlerID for the few
functions whose translation needs dedicated logic (IIF, Switch, Choose,
DatePart, RunningTotal). The table is populated once during package init,
split across one registration file per category, and is read-only
afterwards, which makes lookups safe for concurrent use.

The package also carries the bare keyword functions (CurrentDate, Timer,
RecordNumber, ...) that Crystal accepts without parentheses, and the
evaluation-time directive list the translator strips with a warning.
*/
package funcmap
