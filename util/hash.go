package util

import (
	. "github.com/rryqszq4/go-murmurhash"
)

const defaultHashSeed uint32 = 0xdeadbeef

func Hash(data []byte) uint32 {
	return MurmurHash3_x86_32(data, defaultHashSeed)
}

// SeededHash hashes data with the caller's seed. Distinct seeds give
// independent hash rows for sketch structures.
func SeededHash(data []byte, seed uint32) uint32 {
	return MurmurHash3_x86_32(data, seed)
}

// Next2Power returns the next power of 2 of the given number.
func Next2Power(num int) int {
	if num <= 0 {
		return 1
	}
	num--
	num |= num >> 1
	num |= num >> 2
	num |= num >> 4
	num |= num >> 8
	num |= num >> 16
	num++
	return num
}
