// Package pipeloop solves closed pipe mazes: a rectangular grid of pipe
// tiles with one start tile S whose real shape is hidden.
//
// What is pipeloop?
//
//	A small library and CLI organized in three layers:
//		• tile     : shapes, ports and the mutual-connection rule for one cell
//		• pipegrid : parsing, validation and start-override views of a grid
//		• loop     : start resolution, loop traversal and interior counting
//
// Quick ASCII example:
//
//	S-7      F-7      farthest point: 4
//	|.|  ->  |I|      enclosed area:  1
//	L-J      L-J
//
// The start tile above only closes the ring when drawn as F. The loop has
// eight tiles, so the farthest one is four steps away, and one tile lies
// inside.
//
//	go install github.com/katalvlaran/pipeloop/cmd/pipeloop@latest
package pipeloop
