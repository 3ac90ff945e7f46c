// Package multiton provides lazily populated, per-type singleton registries.
//
// # Overview
//
// A multiton type is a type whose values form a fixed, named set of
// instances. Every member is created exactly once, registered under a key,
// and handed out by reference afterwards, so two lookups of the same key
// return the same pointer and == is enough to tell members apart.
//
// # Key Types
//
//   - Registry: the member store for one type. Populated on first access.
//   - Registrar: the handle a population routine uses to add members.
//   - Base: embeddable key holder implementing Member.
//   - PopulateFunc: the type-supplied routine that builds every member.
//
// # Declaring a Type
//
//	type Planet struct {
//	    multiton.Base
//	    mass, radius float64
//	}
//
//	var planets = multiton.Define("Planet", func(r *multiton.Registrar[*Planet]) error {
//	    return errors.Join(
//	        r.Add(&Planet{Base: multiton.NewBase("MERCURY"), mass: 3.303e+23, radius: 2.4397e6}),
//	        r.Add(&Planet{Base: multiton.NewBase("VENUS"), mass: 4.869e+24, radius: 6.0518e6}),
//	    )
//	})
//
//	func MERCURY() *Planet { return planets.MustByKey("MERCURY") }
//
// # Population
//
// A registry moves through Uninitialized, Populating and then Populated
// exactly once. If the routine fails (duplicate key, invalid member, panic,
// re-entrant access) the registry is Failed for good and every later access
// returns the same error.
//
// Concurrent first callers block until population finishes. A population
// routine that calls back into its own registry, directly or through an
// accessor like MERCURY(), gets ErrReentrantAccess instead of deadlocking.
//
// # Extension
//
// A derived type reuses a base type's routine by running it against its own
// Registrar before adding members of its own:
//
//	var extended = multiton.New("Extended", multiton.Chain(populateBase[*Extended], populateExtra))
//
// The base registry is never touched, and duplicate keys are detected across
// inherited and new members alike.
package multiton
