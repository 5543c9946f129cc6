package funcmap

// registerDateTimeFunctions maps the Crystal date and time functions.
// DatePart goes through a handler because the interval code in its first
// argument selects the Oracle idiom; DateAdd keeps the interval code inside
// NUMTODSINTERVAL via placeholder reordering.
func registerDateTimeFunctions() {
	mustRegister(Entry{Name: "currentdate", Arity: 0, Template: "TRUNC(SYSDATE)", Category: "datetime"})
	mustRegister(Entry{Name: "currentdatetime", Arity: 0, Template: "SYSTIMESTAMP", Category: "datetime"})
	mustRegister(Entry{Name: "currenttime", Arity: 0, Template: "TO_CHAR(SYSDATE, 'HH24:MI:SS')", Category: "datetime"})
	mustRegister(Entry{Name: "date", Arity: 1, Template: "TRUNC({0})", Category: "datetime"})
	mustRegister(Entry{Name: "year", Arity: 1, Template: "EXTRACT(YEAR FROM {0})", Category: "datetime"})
	mustRegister(Entry{Name: "month", Arity: 1, Template: "EXTRACT(MONTH FROM {0})", Category: "datetime"})
	mustRegister(Entry{Name: "day", Arity: 1, Template: "EXTRACT(DAY FROM {0})", Category: "datetime"})
	mustRegister(Entry{Name: "hour", Arity: 1, Template: "EXTRACT(HOUR FROM CAST({0} AS TIMESTAMP))", Category: "datetime"})
	mustRegister(Entry{Name: "minute", Arity: 1, Template: "EXTRACT(MINUTE FROM CAST({0} AS TIMESTAMP))", Category: "datetime"})
	mustRegister(Entry{Name: "second", Arity: 1, Template: "EXTRACT(SECOND FROM CAST({0} AS TIMESTAMP))", Category: "datetime"})
	mustRegister(Entry{Name: "dayofweek", Arity: 1, Template: "TO_NUMBER(TO_CHAR({0}, 'D'))", Category: "datetime"})
	mustRegister(Entry{Name: "weekday", Arity: 1, Template: "TO_CHAR({0}, 'D')", Category: "datetime"})
	mustRegister(Entry{Name: "monthname", Arity: 1, Template: "TO_CHAR({0}, 'Month')", Category: "datetime"})
	mustRegister(Entry{Name: "dateserial", Arity: 3, Template: "TO_DATE({0}||'-'||{1}||'-'||{2}, 'YYYY-MM-DD')", Category: "datetime"})
	mustRegister(Entry{Name: "datevalue", Arity: 1, Template: "TO_DATE({0}, 'YYYY-MM-DD')", Category: "datetime"})
	mustRegister(Entry{Name: "timevalue", Arity: 1, Template: "TO_DATE({0}, 'HH24:MI:SS')", Category: "datetime"})
	mustRegister(Entry{Name: "now", Arity: 0, Template: "SYSDATE", Category: "datetime"})
	mustRegister(Entry{Name: "today", Arity: 0, Template: "TRUNC(SYSDATE)", Category: "datetime"})
	mustRegister(Entry{Name: "timer", Arity: 0, Template: "(SYSDATE - TRUNC(SYSDATE)) * 86400", Category: "datetime"})

	mustRegister(Entry{Name: "dateadd", Arity: 3, Template: "({1} + NUMTODSINTERVAL({2}, {0}))", Category: "datetime"})
	mustRegister(Entry{Name: "datediff", Arity: 3, Template: "({2} - {1})", Category: "datetime"})
	mustRegister(Entry{Name: "datepart", Arity: 2, Handler: HandlerDatePart, Category: "datetime"})
}
