package patterns

// Catalog names
const (
	Pulsar          = "Pulsar"
	LLWS            = "LLWS"
	GosperGliderGun = "Gosper Glider Gun"
	BenSpecial      = "Ben Special"
	Glider          = "Glider"
	Blinker         = "Blinker"
)

// Classic returns the built-in catalog. Every call returns fresh slices, so
// callers cannot alter what later libraries see.
//
// Ben Special is a composite of several classic structures spread over a
// large area.
func Classic() []Pattern {
	return []Pattern{
		{Name: Pulsar, Offsets: []Offset{
			{2, 4}, {3, 4}, {4, 4}, {8, 4}, {9, 4}, {10, 4}, {2, 6}, {7, 6},
			{12, 6}, {2, 7}, {7, 7}, {12, 7}, {2, 8}, {7, 8}, {12, 8}, {2, 10},
			{3, 10}, {4, 10}, {8, 10}, {9, 10}, {10, 10}, {2, 11}, {7, 11}, {12, 11},
			{2, 12}, {7, 12}, {12, 12}, {2, 13}, {7, 13}, {12, 13}, {2, 15}, {3, 15},
			{4, 15}, {8, 15}, {9, 15}, {10, 15},
		}},
		{Name: LLWS, Offsets: []Offset{
			{1, 0}, {4, 0}, {0, 1}, {0, 2}, {4, 2}, {0, 3}, {1, 3}, {2, 3},
			{3, 3},
		}},
		{Name: GosperGliderGun, Offsets: []Offset{
			{1, 5}, {1, 6}, {2, 5}, {2, 6}, {11, 5}, {11, 6}, {11, 7}, {12, 4},
			{12, 8}, {13, 3}, {13, 9}, {14, 3}, {14, 9}, {15, 6}, {16, 4}, {16, 8},
			{17, 5}, {17, 6}, {17, 7}, {18, 6}, {21, 3}, {21, 4}, {21, 5}, {22, 3},
			{22, 4}, {22, 5}, {23, 2}, {23, 6}, {25, 1}, {25, 2}, {25, 6}, {25, 7},
			{35, 3}, {35, 4}, {36, 3}, {36, 4},
		}},
		{Name: BenSpecial, Offsets: []Offset{
			{24, 22}, {22, 23}, {24, 23}, {12, 24}, {13, 24}, {20, 24}, {21, 24}, {34, 24},
			{35, 24}, {11, 25}, {15, 25}, {20, 25}, {21, 25}, {34, 25}, {35, 25}, {0, 26},
			{1, 26}, {10, 26}, {16, 26}, {20, 26}, {21, 26}, {0, 27}, {1, 27}, {10, 27},
			{14, 27}, {16, 27}, {17, 27}, {22, 27}, {24, 27}, {10, 28}, {16, 28}, {24, 28},
			{11, 29}, {15, 29}, {12, 30}, {13, 30}, {54, 52}, {55, 52}, {56, 52}, {60, 52},
			{61, 52}, {62, 52}, {52, 54}, {57, 54}, {59, 54}, {64, 54}, {52, 55}, {57, 55},
			{59, 55}, {64, 55}, {52, 56}, {57, 56}, {59, 56}, {64, 56}, {54, 57}, {55, 57},
			{56, 57}, {60, 57}, {61, 57}, {62, 57}, {75, 75}, {78, 75}, {74, 76}, {74, 77},
			{74, 78}, {75, 78}, {76, 78}, {77, 78}, {78, 77}, {105, 32}, {103, 33}, {105, 33},
			{93, 34}, {94, 34}, {101, 34}, {102, 34}, {115, 34}, {116, 34}, {92, 35}, {96, 35},
			{101, 35}, {102, 35}, {115, 35}, {116, 35}, {81, 36}, {82, 36}, {91, 36}, {97, 36},
			{101, 36}, {102, 36}, {81, 37}, {82, 37}, {91, 37}, {95, 37}, {97, 37}, {98, 37},
			{103, 37}, {105, 37}, {91, 38}, {97, 38}, {105, 38}, {92, 39}, {96, 39}, {93, 40},
			{94, 40}, {40, 40}, {41, 40}, {39, 41}, {42, 41}, {40, 42}, {41, 42}, {60, 60},
			{61, 60}, {59, 61}, {62, 61}, {60, 62}, {61, 62}, {80, 100}, {81, 100}, {82, 100},
			{85, 100}, {86, 100}, {87, 100}, {90, 100}, {91, 100}, {92, 100},
		}},
		{Name: Glider, Offsets: []Offset{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}}},
		{Name: Blinker, Offsets: []Offset{{0, 0}, {1, 0}, {2, 0}}},
	}
}
