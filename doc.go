/*
Package slt builds a bidirectional Burrows-Wheeler index over a byte
sequence and walks the internal nodes of its implicit suffix tree.

A bidirectional BWT index (BD-BWT) keeps two Burrows-Wheeler transforms
in sync: one over the text, one over its reverse. Extending a substring
on the left or the right updates both the lexicographic interval of the
substring and the colexicographic interval of its reverse in lockstep,
in O(sigma) time per step. The suffix-link-tree iterator in bwt builds on
those two extensions alone to enumerate every right-maximal substring of
the text in depth-first order, emitting the tree as parent -> child
edges.

Browse the bwt subpackage for the index and iterator, bio/fasta for the
FASTA record reader used by the cmd/slt_to_dot driver, and cmd/slt_stats
for the companion tool that turns an edge stream into per-node depth and
subtree-size statistics.
*/
package slt
