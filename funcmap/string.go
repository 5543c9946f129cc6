package funcmap

// registerStringFunctions maps the Crystal string functions.
func registerStringFunctions() {
	mustRegister(Entry{Name: "left", Arity: 2, Template: "SUBSTR({0}, 1, {1})", Category: "string"})
	mustRegister(Entry{Name: "right", Arity: 2, Template: "SUBSTR({0}, -1 * {1})", Category: "string"})
	mustRegister(Entry{Name: "mid", Arity: 3, Template: "SUBSTR({0}, {1}, {2})", Category: "string"})
	mustRegister(Entry{Name: "trim", Arity: 1, Template: "TRIM({0})", Category: "string"})
	mustRegister(Entry{Name: "ltrim", Arity: 1, Template: "LTRIM({0})", Category: "string"})
	mustRegister(Entry{Name: "rtrim", Arity: 1, Template: "RTRIM({0})", Category: "string"})
	mustRegister(Entry{Name: "upper", Arity: 1, Template: "UPPER({0})", Category: "string"})
	mustRegister(Entry{Name: "ucase", Arity: 1, Template: "UPPER({0})", Category: "string"})
	mustRegister(Entry{Name: "lower", Arity: 1, Template: "LOWER({0})", Category: "string"})
	mustRegister(Entry{Name: "lcase", Arity: 1, Template: "LOWER({0})", Category: "string"})
	mustRegister(Entry{Name: "length", Arity: 1, Template: "LENGTH({0})", Category: "string"})
	mustRegister(Entry{Name: "len", Arity: 1, Template: "LENGTH({0})", Category: "string"})
	mustRegister(Entry{Name: "instr", Arity: 2, Template: "INSTR({0}, {1})", Category: "string"})
	mustRegister(Entry{Name: "instrrev", Arity: 2, Template: "INSTR({0}, {1}, -1)", Category: "string"})
	mustRegister(Entry{Name: "replace", Arity: 3, Template: "REPLACE({0}, {1}, {2})", Category: "string"})
	mustRegister(Entry{Name: "space", Arity: 1, Template: "RPAD(' ', {0})", Category: "string"})
	mustRegister(Entry{Name: "replicate", Arity: 2, Template: "RPAD({0}, LENGTH({0}) * {1}, {0})", Category: "string"})
	mustRegister(Entry{Name: "replicatestring", Arity: 2, Template: "RPAD({0}, LENGTH({0}) * {1}, {0})", Category: "string"})
	mustRegister(Entry{Name: "chr", Arity: 1, Template: "CHR({0})", Category: "string"})
	mustRegister(Entry{Name: "asc", Arity: 1, Template: "ASCII({0})", Category: "string"})
	mustRegister(Entry{Name: "strreverse", Arity: 1, Template: "REVERSE({0})", Category: "string"})
	mustRegister(Entry{Name: "strcmp", Arity: 2, Template: "CASE WHEN {0} < {1} THEN -1 WHEN {0} > {1} THEN 1 ELSE 0 END", Category: "string"})
	mustRegister(Entry{Name: "propercase", Arity: 1, Template: "INITCAP({0})", Category: "string"})
}
