package game

// Evaluate scores a position from the defenders' point of view: positive
// values favour the defenders, negative values favour the attackers.
type Evaluate func(*Board) int
