package funcmap

// The builtin tables are split by category into string.go, numeric.go,
// datetime.go, conversion.go and aggregate.go within this package.
func init() {
	registerStringFunctions()
	registerNumericFunctions()
	registerDateTimeFunctions()
	registerConversionFunctions()
	registerAggregateFunctions()
}
