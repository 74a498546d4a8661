//Package geo holds the monomer template model: the declarative
//description of how each monomer kind is built, one atom at a time,
//from named bond lengths, bond angles and dihedral angles.
//
//A Template replaces what would otherwise be one hand-written builder
//function per monomer kind and one more per kind-to-kind transition.
//The template describes three entry atoms (seeded by formula when the
//residue opens a chain, or derived from the previous residue's tail
//when it is appended), an ordered list of body steps, and the names of
//the three tail atoms it exports as the reference frame for whatever
//comes next. All numeric values live in a Params bundle keyed by
//name, so a caller can override any of them without touching the
//template itself.
package geo
