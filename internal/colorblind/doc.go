// Package colorblind simulates color vision deficiencies.
//
// Simulation is a single pass per color:
//
//  1. Decode sRGB channels to linear light with a plain 2.2 gamma.
//  2. Multiply by a 3x3 cone-response matrix for the deficiency family
//     (protan, deutan, tritan), or collapse to BT.709 luminance for
//     monochromacy.
//  3. Blend original and simulated light by severity/100.
//  4. Re-encode with the inverse 2.2 gamma and round to 8 bits.
//
// The anomalous trichromacies (protanomaly, deuteranomaly, tritanomaly) share
// the matrix of their dichromat family; their weaker effect is expressed
// through severity.
//
// # Batches
//
// SimulateAll validates its options before any work starts, runs each color
// independently (optionally in parallel), and returns results in input order.
package colorblind
