package utils

const xorShift64StarMultiplier = 0x2545F4914F6CDD1D

func xorShift64(x uint64) uint64 {
	x ^= x >> 12
	x ^= x << 25
	x ^= x >> 27
	return x
}
