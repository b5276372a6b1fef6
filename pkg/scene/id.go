package scene

import (
	"encoding/binary"
	"encoding/hex"

	"github.com/cespare/xxhash/v2"
)

// NodeID is a content-addressed identifier: the xxhash of the node's path.
type NodeID [8]byte

// ZeroID is the zero value, used for scene-level findings.
var ZeroID NodeID

// NewNodeID derives a deterministic ID from path.
func NewNodeID(path string) NodeID {
	var id NodeID
	binary.BigEndian.PutUint64(id[:], xxhash.Sum64String(path))
	return id
}

// IsZero reports whether id is the zero ID.
func (id NodeID) IsZero() bool { return id == ZeroID }

// Short returns the first 6 bytes as 12 hex characters.
func (id NodeID) Short() string { return hex.EncodeToString(id[:6]) }

func (id NodeID) String() string { return hex.EncodeToString(id[:]) }

// MarshalText renders the full hex form so IDs read well in JSON reports.
func (id NodeID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}
