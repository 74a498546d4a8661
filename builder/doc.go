//Package builder grows 3D structures one residue at a time from the
//monomer templates in geo. A chain starts with Initialize, which seeds
//the first residue in a canonical pose at the origin, and grows with
//AddResidue, which reads the geometric reference frame off the tail of
//the last residue and places the new one against it. Build and
//BuildFromTemplates compose the two for whole sequences, and
//AddTerminalOXT closes a finished chain with a terminal carboxylate
//oxygen.
package builder
