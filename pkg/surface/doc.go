// Package surface is a headless rendering surface for the streaming manager.
//
// [Scene] holds two ordered layers of visuals (nodes above edges) and
// implements stream.Surface. [Factory] builds [NodeSprite] and [EdgeRope]
// visuals that read positions and paths live from the graph, so dragging a
// node is reflected without rebuilding anything. [Culler] tracks visuals and
// toggles their visibility against a viewport rectangle.
//
// Two sinks turn the live set into output: [RenderSVG] writes a vector
// snapshot and [RenderASCII] rasterizes a camera view into terminal cells.
package surface
