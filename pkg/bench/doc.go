/*
Package bench is a small timing harness for comparing a fixed set of cases.

A Suite runs its cases one after another. For each case it first calibrates how many
calls make up one sample, then collects samples until both the minimum sample count and
the time budget are reached. The mean throughput and its relative margin of error are
reported through the cycle callback as soon as the case completes; the complete callback
runs once after the last case.

	suite := bench.NewSuite("set property")
	suite.Add("set property (draft)", body)
	suite.OnCycle(func(r bench.Result) { fmt.Println(r) })
	suite.OnComplete(func(s *bench.Suite) { fmt.Println(s.Fastest()) })
	err := suite.Run(ctx)

Callbacks run synchronously on the goroutine that called Run. A case that returns an
error aborts the suite and no further results are reported.
*/
package bench
