// Package spatial implements the chunked coordinate map used to find the
// nodes and edges near a point.
//
// Space is divided into square chunks of a fixed size. A node belongs to the
// chunk containing its position; an edge belongs to the chunk containing its
// source node. Entities are inserted in bulk and bucketed by a single pass of
// [Index.BuildChunks].
//
// # Queries
//
// [Index.Query] takes a point and a radius measured in chunks. It enumerates
// every chunk whose center offset from the query chunk lies strictly inside
// the radius, orders them by Manhattan distance so that nearer chunks come
// first, and concatenates their contents. Chunks that were never populated
// contribute nothing.
//
//	idx, _ := spatial.New(g, 400)
//	idx.InsertNodes(ids...)
//	idx.BuildChunks()
//	res := idx.Query(camera.Center(), 8)
package spatial
