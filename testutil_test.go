package netsim

// fakeRNG feeds a fixed, repeating sequence of uniform draws so packet
// loss rolls are reproducible in tests regardless of rngstream's actual
// internal state.
type fakeRNG struct {
	values []float64
	i      int
}

func (f *fakeRNG) RandU01() float64 {
	v := f.values[f.i%len(f.values)]
	f.i++
	return v
}
