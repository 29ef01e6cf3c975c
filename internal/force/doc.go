// Package force provides the pairwise and single-body force laws the
// engine evaluates over interaction graphs.
//
// Each pairwise law implements [Law], returning the force applied to
// the first body; symmetric laws get their Newton's-third-law reaction
// applied by the engine. Single-body laws implement [Unary].
//
//   - [Spring]: Hooke's law with a rest length
//   - [Gravity]: Newtonian attraction, configurable exponent
//   - [Magnet]: Coulomb-style charge interaction
//   - [SoftCollision]: penalty force on overlap
//   - [UniformGravity], [Drag]: single-body field forces
//
// Distance-based laws guard the zero-distance case explicitly: two
// coincident bodies produce a zero force, never NaN, and the event is
// counted (see Degeneracies on each law).
package force
