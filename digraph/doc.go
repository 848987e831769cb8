// Package digraph is the generic directed-graph substrate the
// constraint graph and method graph are built on top of. It is a thin,
// thread-safe adjacency-list graph over any comparable key type,
// supporting the operations both bipartite graphs need: add/remove
// vertex, add a (bidirectional) edge, incoming/outgoing neighbors,
// membership, full edge enumeration, reachability (Path), Reverse and
// induced Subgraph.
//
// digraph never inspects the key type beyond equality and hashing; any
// comparable key works, including the prefixed string keys the
// bipartite graphs use to tell variable vertices from constraint or
// method vertices.
package digraph
