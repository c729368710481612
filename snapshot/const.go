package snapshot

const (
	EndiannessMask   = 0x0002 // Options bit 1: 0=little-endian, 1=big-endian
	ReservedBitsMask = 0x000D // Options bits 0, 2 and 3, must be zero
	MagicNumberMask  = 0xFFF0 // Options bits 4-15

	// MagicCellsV1Opt identifies version 1 of the cell snapshot format.
	MagicCellsV1Opt = 0xEC10
)

const (
	HeaderSize = 32 // fixed header size in bytes

	offsetOptions     = 0  // uint16, always little-endian
	offsetCompression = 2  // uint8
	offsetReserved    = 3  // uint8, must be zero
	offsetKeyWidth    = 4  // uint16
	offsetValueWidth  = 6  // uint16
	offsetCount       = 8  // uint32
	offsetBuckets     = 12 // uint32
	offsetPayloadLen  = 16 // uint32
	offsetRawLen      = 20 // uint32
	offsetChecksum    = 24 // uint64
)
