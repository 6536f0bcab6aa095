// Package maze turns a character map into a graph.Graph and answers
// "how far is the goal from the nearest start".
//
// A map is a rectangular block of runes. Rules decide which runes are
// starts, which rune is the goal, which runes are open floor, and how
// moving between two neighbouring cells is priced:
//
//   - CostUnit:  every step costs 1.
//   - CostLevel: digits are levels on a circular dial of Rules.Levels
//     positions; start, goal and open cells sit at level 0. A step costs
//     1 plus the shorter way round the dial between the two levels.
//
// Every cell that is not a start, goal, open rune or (in level mode) a
// digit is a wall. Rules are usually loaded from a TOML file:
//
//	start        = "S"
//	goal         = "E"
//	open         = "."
//	connectivity = 4
//	cost         = "level"
//	levels       = 10
package maze
