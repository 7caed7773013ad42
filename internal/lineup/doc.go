// Package lineup holds the rotation model for a mob session.
//
// A Lineup is the ordered list of participants. The first two entries form
// the current Assignment: the first is the navigator, the second the driver.
// Rotation is a cyclic shift by a signed offset:
//
//	next    +1   ["A","B","C"] -> ["B","C","A"]  navigator=B driver=C
//	restart  0   order unchanged, nothing written
//	back    -1   ["A","B","C"] -> ["C","A","B"]  navigator=C driver=A
//
// The package also reads and writes the lineup file, one name per line.
// Nothing here locks the file; concurrent writers race and the last one wins.
package lineup
