// Package clock abstracts time for the timer so that tests can drive it
// deterministically. Production code uses System, which delegates to the
// time package; tests use Mock, which only moves when told to.
//
// Example usage:
//
//	clk := clock.NewMock()
//	t := clk.NewTimer(time.Second)
//
//	clk.Advance(time.Second) // fires t
//	<-t.C()
package clock
