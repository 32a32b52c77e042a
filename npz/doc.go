// Package npz reads and writes NumPy array archives: single-array .npy
// streams (format version 1.0) and .npz zip archives of named arrays.
//
// 🚀 What does npz support?
//
//	Exactly the subset this pipeline exchanges with Boltzmann-solver
//	tooling and chain post-processing:
//	  • float64 ('<f8') arrays written in C order, up to 3 dimensions
//	  • '<f8', '<f4', '<i8' and '<i4' inputs, widened to float64 on read
//	  • named members ("ell", "cltt", "chain", "logprob", …)
//
// Anything else — Fortran order, structured dtypes, pickled objects,
// higher format versions — is rejected with a sentinel error naming the
// offending member. No silent coercion.
//
// ⚙️ Usage:
//
//	arrays, err := npz.ReadFile("planck_baseline_cls.npz")
//	ell := arrays["ell"]            // Array{Shape, Data}
//
//	err = npz.WriteFile("posterior.npz", map[string]npz.Array{
//		"chain":   {Shape: []int{n, ndim}, Data: flat},
//		"logprob": {Shape: []int{n}, Data: logp},
//	})
//
// Members are written in sorted name order so archives are byte-stable
// for identical inputs.
package npz
