package funcmap

// registerNumericFunctions maps the Crystal numeric and trigonometric functions.
func registerNumericFunctions() {
	mustRegister(Entry{Name: "abs", Arity: 1, Template: "ABS({0})", Category: "numeric"})
	mustRegister(Entry{Name: "round", Arity: 2, Template: "ROUND({0}, {1})", Category: "numeric"})
	mustRegister(Entry{Name: "truncate", Arity: 2, Template: "TRUNC({0}, {1})", Category: "numeric"})
	mustRegister(Entry{Name: "int", Arity: 1, Template: "FLOOR({0})", Category: "numeric"})
	mustRegister(Entry{Name: "fix", Arity: 1, Template: "TRUNC({0})", Category: "numeric"})
	mustRegister(Entry{Name: "mod", Arity: 2, Template: "MOD({0}, {1})", Category: "numeric"})
	mustRegister(Entry{Name: "remainder", Arity: 2, Template: "REMAINDER({0}, {1})", Category: "numeric"})
	mustRegister(Entry{Name: "sgn", Arity: 1, Template: "SIGN({0})", Category: "numeric"})
	mustRegister(Entry{Name: "sign", Arity: 1, Template: "SIGN({0})", Category: "numeric"})
	mustRegister(Entry{Name: "sqrt", Arity: 1, Template: "SQRT({0})", Category: "numeric"})
	mustRegister(Entry{Name: "sqr", Arity: 1, Template: "SQRT({0})", Category: "numeric"})
	mustRegister(Entry{Name: "exp", Arity: 1, Template: "EXP({0})", Category: "numeric"})
	mustRegister(Entry{Name: "log", Arity: 1, Template: "LN({0})", Category: "numeric"})
	mustRegister(Entry{Name: "log10", Arity: 1, Template: "LOG(10, {0})", Category: "numeric"})
	mustRegister(Entry{Name: "power", Arity: 2, Template: "POWER({0}, {1})", Category: "numeric"})
	mustRegister(Entry{Name: "ceiling", Arity: 1, Template: "CEIL({0})", Category: "numeric"})
	mustRegister(Entry{Name: "floor", Arity: 1, Template: "FLOOR({0})", Category: "numeric"})

	mustRegister(Entry{Name: "sin", Arity: 1, Template: "SIN({0})", Category: "numeric"})
	mustRegister(Entry{Name: "cos", Arity: 1, Template: "COS({0})", Category: "numeric"})
	mustRegister(Entry{Name: "tan", Arity: 1, Template: "TAN({0})", Category: "numeric"})
	mustRegister(Entry{Name: "asin", Arity: 1, Template: "ASIN({0})", Category: "numeric"})
	mustRegister(Entry{Name: "acos", Arity: 1, Template: "ACOS({0})", Category: "numeric"})
	mustRegister(Entry{Name: "atan", Arity: 1, Template: "ATAN({0})", Category: "numeric"})
	mustRegister(Entry{Name: "atn", Arity: 1, Template: "ATAN({0})", Category: "numeric"})
}
