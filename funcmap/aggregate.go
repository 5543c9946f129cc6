package funcmap

// registerAggregateFunctions maps the Crystal summary functions that may
// appear inside formulas. RunningTotal is a handler because the emitted
// analytic needs an ordering the source formula does not carry.
func registerAggregateFunctions() {
	mustRegister(Entry{Name: "sum", Arity: 1, Template: "SUM({0})", Category: "aggregate"})
	mustRegister(Entry{Name: "avg", Arity: 1, Template: "AVG({0})", Category: "aggregate"})
	mustRegister(Entry{Name: "average", Arity: 1, Template: "AVG({0})", Category: "aggregate"})
	mustRegister(Entry{Name: "count", Arity: 1, Template: "COUNT({0})", Category: "aggregate"})
	mustRegister(Entry{Name: "max", Arity: 1, Template: "MAX({0})", Category: "aggregate"})
	mustRegister(Entry{Name: "maximum", Arity: 1, Template: "MAX({0})", Category: "aggregate"})
	mustRegister(Entry{Name: "min", Arity: 1, Template: "MIN({0})", Category: "aggregate"})
	mustRegister(Entry{Name: "minimum", Arity: 1, Template: "MIN({0})", Category: "aggregate"})
	mustRegister(Entry{Name: "distinctcount", Arity: 1, Template: "COUNT(DISTINCT {0})", Category: "aggregate"})

	mustRegister(Entry{Name: "runningtotal", Arity: 1, Handler: HandlerRunningTotal, Category: "aggregate"})
}
