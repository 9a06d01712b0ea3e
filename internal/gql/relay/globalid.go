package relay

import (
	"encoding/base64"
	"strconv"
	"strings"
)

// ResolvedGlobalID is the decoded form of an opaque node identifier.
type ResolvedGlobalID struct {
	Type string
	ID   string
}

// ToGlobalID encodes a type name and a service-local identifier into an
// opaque node identifier.
func ToGlobalID(typeName, id string) string {
	return base64.StdEncoding.EncodeToString([]byte(typeName + ":" + id))
}

// FromGlobalID decodes an opaque node identifier. It never fails:
// malformed input yields zero-value parts, so authorization checks can
// probe arbitrary strings without guarding against a panic or error.
func FromGlobalID(globalID string) ResolvedGlobalID {
	raw, err := base64.StdEncoding.DecodeString(globalID)
	if err != nil {
		return ResolvedGlobalID{}
	}

	parts := strings.SplitN(string(raw), ":", 2)
	if len(parts) != 2 {
		return ResolvedGlobalID{}
	}

	return ResolvedGlobalID{Type: parts[0], ID: parts[1]}
}

// Cursors are global identifiers of a synthetic "arrayconnection" type
// carrying the absolute offset of the item in the underlying collection.
const cursorType = "arrayconnection"

func OffsetToCursor(offset int) string {
	return ToGlobalID(cursorType, strconv.Itoa(offset))
}

// CursorToOffset returns -1 when the cursor cannot be interpreted.
func CursorToOffset(cursor string) int {
	resolved := FromGlobalID(cursor)
	if resolved.Type != cursorType {
		return -1
	}

	offset, err := strconv.Atoi(resolved.ID)
	if err != nil {
		return -1
	}

	return offset
}
