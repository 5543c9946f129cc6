package funcmap

// registerConversionFunctions maps the Crystal conversion, null-handling and
// conditional functions. IIF, Switch and Choose go through handlers because
// they nest to arbitrary depth.
func registerConversionFunctions() {
	mustRegister(Entry{Name: "totext", Arity: 1, Template: "TO_CHAR({0})", Category: "conversion"})
	mustRegister(Entry{Name: "tonumber", Arity: 1, Template: "TO_NUMBER({0})", Category: "conversion"})
	mustRegister(Entry{Name: "towords", Arity: 1, Template: "TO_CHAR(TO_DATE({0}, 'J'), 'JSP')", Category: "conversion"})
	mustRegister(Entry{Name: "cstr", Arity: 1, Template: "TO_CHAR({0})", Category: "conversion"})
	mustRegister(Entry{Name: "cdbl", Arity: 1, Template: "TO_NUMBER({0})", Category: "conversion"})
	mustRegister(Entry{Name: "cdate", Arity: 1, Template: "TO_DATE({0})", Category: "conversion"})
	mustRegister(Entry{Name: "cbool", Arity: 1, Template: "CASE WHEN {0} THEN 'Y' ELSE 'N' END", Category: "conversion"})
	mustRegister(Entry{Name: "val", Arity: 1, Template: "TO_NUMBER({0})", Category: "conversion"})
	mustRegister(Entry{Name: "str", Arity: 1, Template: "TO_CHAR({0})", Category: "conversion"})

	mustRegister(Entry{Name: "isnull", Arity: 1, Template: "({0} IS NULL)", Category: "null"})
	mustRegister(Entry{Name: "isnothing", Arity: 1, Template: "({0} IS NULL)", Category: "null"})
	mustRegister(Entry{Name: "nv", Arity: 2, Template: "NVL({0}, {1})", Category: "null"})

	mustRegister(Entry{Name: "iif", Arity: 3, Handler: HandlerConditional, Category: "conditional"})
	mustRegister(Entry{Name: "switch", Arity: Variadic, Handler: HandlerSwitch, Category: "conditional"})
	mustRegister(Entry{Name: "choose", Arity: Variadic, Handler: HandlerChoose, Category: "conditional"})
}
