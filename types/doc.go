/*
Package types defines the shared data model for CrystalSQL.

It carries the Crystal value-type enumeration and its Oracle scalar mapping,
the unsupported-function policy, and the warning and translated-expression
value types produced by the translation core. All types in this package are
plain values with no behavior beyond formatting and parsing, so they are safe
to share across concurrent batch workers.
*/
package types
