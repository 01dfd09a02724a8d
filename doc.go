/*
Package subdiv2d implements an incremental planar Delaunay triangulation
and its dual Voronoi diagram, backed by a quad-edge topology arena in the
style of Guibas and Stolfi. Points are inserted one at a time into a
subdivision bounded by a user-supplied rectangle; the triangulation is
repaired after every insertion by Lawson edge flips so that the Delaunay
property holds for all interior edges.

The quad-edge representation packs four directed-edge records (primal
forward/reversed and dual forward/reversed) into one arena slot, addressed
by a rotation-encoded EdgeId. Five primitives — MakeEdge, Splice, Connect,
DeleteEdge and Swap — compose into point location, incremental insertion,
and Voronoi facet construction.
*/
package subdiv2d
