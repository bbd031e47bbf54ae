package format

import (
	"fmt"

	"github.com/google/uuid"
)

// GUIDFromBytes converts a 16-byte Windows GUID (Data1/Data2/Data3 stored
// little-endian, Data4 as-is) to an RFC 4122 uuid.UUID.
func GUIDFromBytes(b []byte) (uuid.UUID, error) {
	if len(b) < GUIDSize {
		return uuid.Nil, fmt.Errorf("guid: %w (have %d, need %d)", ErrTruncated, len(b), GUIDSize)
	}
	var u uuid.UUID
	u[0], u[1], u[2], u[3] = b[3], b[2], b[1], b[0]
	u[4], u[5] = b[5], b[4]
	u[6], u[7] = b[7], b[6]
	copy(u[8:], b[8:GUIDSize])
	return u, nil
}

// GUIDBytes is the inverse of GUIDFromBytes.
func GUIDBytes(u uuid.UUID) []byte {
	b := make([]byte, GUIDSize)
	b[0], b[1], b[2], b[3] = u[3], u[2], u[1], u[0]
	b[4], b[5] = u[5], u[4]
	b[6], b[7] = u[7], u[6]
	copy(b[8:], u[8:])
	return b
}
