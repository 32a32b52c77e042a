// Package plc locates Planck likelihood data on the host machine.
//
// The official likelihood code is a compiled C library that is never
// linked into this module. What this package does instead is resolve
// the environment contract (PLC_ROOT, CLIK_PATH) to a directory of
// published bandpower files that the dataset package can read, and
// fail loudly with the exact variable and path at fault when the
// contract is not met. There is no bundled fallback dataset: a fit
// against real data either finds real data or refuses to run.
package plc
