// Package collector groups matched lines by the function that encloses them.
//
// A Collector is created for a single search run, fed one Record call per
// match and rendered once into an output pane:
//
//	c := collector.New()
//	c.Record("no function", "var x = 1\n")
//	c.Record("pkg.Run", "\tx++\n")
//	_ = c.Render(pane)
//
// Render output uses region blocks:
//
//	#region no function:
//	var x = 1
//
//	#endregion
//	#region pkg.Run:
//		x++
//
//	#endregion
//
// Lines outside any function (types.NoFunction) are always emitted first;
// every other group follows in the order its name was first recorded.
// Within a group lines keep their recording order. A table with no groups
// renders as NoResults.
package collector
