// Package checksum implements the reflected CRC-32 (IEEE 802.3) checksum
// over a lookup table that is built once on first use.
package checksum

import "sync"

// Polynomial is the reversed IEEE polynomial.
const Polynomial uint32 = 0xEDB88320

// TableSize is the number of entries in the lookup table, one per byte value.
const TableSize = 256

// table is read-only once built.
//
//nolint:gochecknoglobals
var table = sync.OnceValue(buildTable)

func buildTable() *[TableSize]uint32 {
	var t [TableSize]uint32

	for i := range uint32(TableSize) {
		crc := i

		for range 8 {
			if crc&1 == 1 {
				crc = (crc >> 1) ^ Polynomial
			} else {
				crc >>= 1
			}
		}

		t[i] = crc
	}

	return &t
}

// Table returns a copy of the lookup table.
func Table() [TableSize]uint32 {
	return *table()
}

// CRC32 computes the checksum of data. The empty input yields 0.
func CRC32(data []byte) uint32 {
	return Update(0, data)
}

// Update extends a checksum previously returned by CRC32 or Update with more data.
func Update(crc uint32, data []byte) uint32 {
	t := table()

	crc = ^crc

	for _, b := range data {
		crc = (crc >> 8) ^ t[byte(crc)^b]
	}

	return ^crc
}
