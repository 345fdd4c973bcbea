package paths_test

import "github.com/katalvlaran/netsim/paths"

// fixtureEdges builds the ten-vertex reference network in insertion order.
var fixtureEdges = [][2]int{
	{1, 2}, {1, 3}, {2, 6}, {3, 5}, {5, 7}, {6, 10}, {8, 5}, {9, 3}, {10, 4}, {10, 2},
}

// fixtureGolden lists every simple path of the reference network per ordered
// pair, in enumeration order.
var fixtureGolden = map[paths.Pair][][]int{
	{1, 1}: {},
	{1, 2}: {{1, 2}},
	{1, 3}: {{1, 3}},
	{1, 4}: {{1, 2, 6, 10, 4}, {1, 2, 10, 4}},
	{1, 5}: {{1, 3, 5}},
	{1, 6}: {{1, 2, 6}, {1, 2, 10, 6}},
	{1, 7}: {{1, 3, 5, 7}},
	{1, 8}: {{1, 3, 5, 8}},
	{1, 9}: {{1, 3, 9}},
	{1, 10}: {{1, 2, 6, 10}, {1, 2, 10}},
	{2, 1}: {{2, 1}},
	{2, 2}: {},
	{2, 3}: {{2, 1, 3}},
	{2, 4}: {{2, 6, 10, 4}, {2, 10, 4}},
	{2, 5}: {{2, 1, 3, 5}},
	{2, 6}: {{2, 6}, {2, 10, 6}},
	{2, 7}: {{2, 1, 3, 5, 7}},
	{2, 8}: {{2, 1, 3, 5, 8}},
	{2, 9}: {{2, 1, 3, 9}},
	{2, 10}: {{2, 6, 10}, {2, 10}},
	{3, 1}: {{3, 1}},
	{3, 2}: {{3, 1, 2}},
	{3, 3}: {},
	{3, 4}: {{3, 1, 2, 6, 10, 4}, {3, 1, 2, 10, 4}},
	{3, 5}: {{3, 5}},
	{3, 6}: {{3, 1, 2, 6}, {3, 1, 2, 10, 6}},
	{3, 7}: {{3, 5, 7}},
	{3, 8}: {{3, 5, 8}},
	{3, 9}: {{3, 9}},
	{3, 10}: {{3, 1, 2, 6, 10}, {3, 1, 2, 10}},
	{4, 1}: {{4, 10, 6, 2, 1}, {4, 10, 2, 1}},
	{4, 2}: {{4, 10, 6, 2}, {4, 10, 2}},
	{4, 3}: {{4, 10, 6, 2, 1, 3}, {4, 10, 2, 1, 3}},
	{4, 4}: {},
	{4, 5}: {{4, 10, 6, 2, 1, 3, 5}, {4, 10, 2, 1, 3, 5}},
	{4, 6}: {{4, 10, 6}, {4, 10, 2, 6}},
	{4, 7}: {{4, 10, 6, 2, 1, 3, 5, 7}, {4, 10, 2, 1, 3, 5, 7}},
	{4, 8}: {{4, 10, 6, 2, 1, 3, 5, 8}, {4, 10, 2, 1, 3, 5, 8}},
	{4, 9}: {{4, 10, 6, 2, 1, 3, 9}, {4, 10, 2, 1, 3, 9}},
	{4, 10}: {{4, 10}},
	{5, 1}: {{5, 3, 1}},
	{5, 2}: {{5, 3, 1, 2}},
	{5, 3}: {{5, 3}},
	{5, 4}: {{5, 3, 1, 2, 6, 10, 4}, {5, 3, 1, 2, 10, 4}},
	{5, 5}: {},
	{5, 6}: {{5, 3, 1, 2, 6}, {5, 3, 1, 2, 10, 6}},
	{5, 7}: {{5, 7}},
	{5, 8}: {{5, 8}},
	{5, 9}: {{5, 3, 9}},
	{5, 10}: {{5, 3, 1, 2, 6, 10}, {5, 3, 1, 2, 10}},
	{6, 1}: {{6, 2, 1}, {6, 10, 2, 1}},
	{6, 2}: {{6, 2}, {6, 10, 2}},
	{6, 3}: {{6, 2, 1, 3}, {6, 10, 2, 1, 3}},
	{6, 4}: {{6, 2, 10, 4}, {6, 10, 4}},
	{6, 5}: {{6, 2, 1, 3, 5}, {6, 10, 2, 1, 3, 5}},
	{6, 6}: {},
	{6, 7}: {{6, 2, 1, 3, 5, 7}, {6, 10, 2, 1, 3, 5, 7}},
	{6, 8}: {{6, 2, 1, 3, 5, 8}, {6, 10, 2, 1, 3, 5, 8}},
	{6, 9}: {{6, 2, 1, 3, 9}, {6, 10, 2, 1, 3, 9}},
	{6, 10}: {{6, 2, 10}, {6, 10}},
	{7, 1}: {{7, 5, 3, 1}},
	{7, 2}: {{7, 5, 3, 1, 2}},
	{7, 3}: {{7, 5, 3}},
	{7, 4}: {{7, 5, 3, 1, 2, 6, 10, 4}, {7, 5, 3, 1, 2, 10, 4}},
	{7, 5}: {{7, 5}},
	{7, 6}: {{7, 5, 3, 1, 2, 6}, {7, 5, 3, 1, 2, 10, 6}},
	{7, 7}: {},
	{7, 8}: {{7, 5, 8}},
	{7, 9}: {{7, 5, 3, 9}},
	{7, 10}: {{7, 5, 3, 1, 2, 6, 10}, {7, 5, 3, 1, 2, 10}},
	{8, 1}: {{8, 5, 3, 1}},
	{8, 2}: {{8, 5, 3, 1, 2}},
	{8, 3}: {{8, 5, 3}},
	{8, 4}: {{8, 5, 3, 1, 2, 6, 10, 4}, {8, 5, 3, 1, 2, 10, 4}},
	{8, 5}: {{8, 5}},
	{8, 6}: {{8, 5, 3, 1, 2, 6}, {8, 5, 3, 1, 2, 10, 6}},
	{8, 7}: {{8, 5, 7}},
	{8, 8}: {},
	{8, 9}: {{8, 5, 3, 9}},
	{8, 10}: {{8, 5, 3, 1, 2, 6, 10}, {8, 5, 3, 1, 2, 10}},
	{9, 1}: {{9, 3, 1}},
	{9, 2}: {{9, 3, 1, 2}},
	{9, 3}: {{9, 3}},
	{9, 4}: {{9, 3, 1, 2, 6, 10, 4}, {9, 3, 1, 2, 10, 4}},
	{9, 5}: {{9, 3, 5}},
	{9, 6}: {{9, 3, 1, 2, 6}, {9, 3, 1, 2, 10, 6}},
	{9, 7}: {{9, 3, 5, 7}},
	{9, 8}: {{9, 3, 5, 8}},
	{9, 9}: {},
	{9, 10}: {{9, 3, 1, 2, 6, 10}, {9, 3, 1, 2, 10}},
	{10, 1}: {{10, 6, 2, 1}, {10, 2, 1}},
	{10, 2}: {{10, 6, 2}, {10, 2}},
	{10, 3}: {{10, 6, 2, 1, 3}, {10, 2, 1, 3}},
	{10, 4}: {{10, 4}},
	{10, 5}: {{10, 6, 2, 1, 3, 5}, {10, 2, 1, 3, 5}},
	{10, 6}: {{10, 6}, {10, 2, 6}},
	{10, 7}: {{10, 6, 2, 1, 3, 5, 7}, {10, 2, 1, 3, 5, 7}},
	{10, 8}: {{10, 6, 2, 1, 3, 5, 8}, {10, 2, 1, 3, 5, 8}},
	{10, 9}: {{10, 6, 2, 1, 3, 9}, {10, 2, 1, 3, 9}},
	{10, 10}: {},
}
