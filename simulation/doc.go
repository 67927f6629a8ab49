// Package simulation builds coupling filters for simulated populations and
// expresses them in a basis.
//
// A typical use generates a difference-of-gammas filter per neuron pair,
// regresses the bank onto a basis, and drives each neuron with the causal
// convolution of its neighbours' counts:
//
//	f, _ := simulation.DifferenceOfGammas(100)
//	b, _ := basis.NewBSpline(8, 4)
//	design, weights, _ := simulation.RegressFilter([][][]float64{{f}}, b)
//	approx, _ := simulation.Reconstruct(design, weights[0][0])
//	drive, _ := simulation.CouplingInput(counts, approx)
package simulation
