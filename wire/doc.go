// Package wire lays out coefficient frames for the filtering engine and
// pushes them through a byte-at-a-time transfer channel.
//
// Frame layout (all multi-byte fields big-endian):
//
//	0xAA 0x55                 sync
//	uint16 × nRaw             raw control samples, acquisition order
//	int16 × 5 × nBands        b0 b1 b2 a1 a2 per band, Q2.14, slot order
//
// There is no length prefix or checksum; both ends agree on nRaw and
// nBands out of band.
package wire
