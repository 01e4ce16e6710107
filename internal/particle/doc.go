// Package particle implements the ambient particle field used behind the
// hero section and the pricing cards.
//
// A field owns a small fixed set of point-mass particles confined to a
// rectangular viewport:
//
//   - [Initialize]: builds the particle set from a [Config] and a random source
//   - [Tick]: advances every particle by its velocity and applies its edge policy
//   - [Render]: draws every particle onto a [Surface]
//   - [Field]: per-instance state (bounds, lifecycle, particle set)
//
// # Edge Policies
//
// Each particle is either a bounce particle or a wrap particle, decided once
// at creation. Bounce particles reflect off the viewport edges, losing a
// little speed ([Damping]) each time. Wrap particles leave one edge and
// re-enter at the opposite one once they are a full radius out of view.
//
// # Thread Safety
//
// Field instances are NOT thread-safe. Each field belongs to exactly one
// frame loop; separate fields share no state.
package particle
