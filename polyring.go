/*
Package polyring is a pure Go implementation of generic arithmetic over the quotient ring T[x]/(X^N - 1).
It provides polynomials, vectors and matrices of polynomials whose coefficients can be any type satisfying
the ring.Element capability: real scalars, complex numbers over any element type and fixed-width modular integers.
*/
package polyring
