// Package pid exposes the logarithmic-decomposition shared-information
// measure as a named partial-information-decomposition (PID) quantity,
// I_LogDec.
//
// I_LogDec asks how much information a collection of source variable
// groups and a target variable redundantly carry, measured over
// order-n upper sets of the redundancy lattice (order 2 by default).
//
// ⚙️ Usage:
//
//	// Redundancy of sources {X} and {Y} about target Z:
//	v, err := pid.ILogDec(d,
//	    [][]string{{"X"}, {"Y"}}, []string{"Z"})
//
//	// Joint information of {X, Y} about Z, natural log:
//	v, err = pid.ILogDec(d,
//	    [][]string{{"X", "Y"}}, []string{"Z"},
//	    pid.WithLogBase(math.E))
//
// Two strategies are recognized:
//
//   - SharedGenerator (default) — reinterpret the sources as variable
//     groups, append the target as the final group, and delegate to
//     shared.WeaklyShared.
//   - Cross — reserved; selecting it returns ErrCrossNotImplemented
//     rather than a silently wrong number.
package pid
