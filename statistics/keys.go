package statistics

import (
	"encoding/binary"
	"fmt"
	"math"
)

// appendKey encodes key into buf and returns the extended slice. The encoding
// is deterministic: equal keys always produce equal bytes, which is all the
// sketch needs. Common column types get a fixed-width fast path; anything
// else goes through fmt.
func appendKey[K comparable](buf []byte, key K) []byte {
	switch k := any(key).(type) {
	case string:
		return append(buf, k...)
	case int:
		return binary.LittleEndian.AppendUint64(buf, uint64(k))
	case int8:
		return binary.LittleEndian.AppendUint64(buf, uint64(k))
	case int16:
		return binary.LittleEndian.AppendUint64(buf, uint64(k))
	case int32:
		return binary.LittleEndian.AppendUint64(buf, uint64(k))
	case int64:
		return binary.LittleEndian.AppendUint64(buf, uint64(k))
	case uint:
		return binary.LittleEndian.AppendUint64(buf, uint64(k))
	case uint8:
		return binary.LittleEndian.AppendUint64(buf, uint64(k))
	case uint16:
		return binary.LittleEndian.AppendUint64(buf, uint64(k))
	case uint32:
		return binary.LittleEndian.AppendUint64(buf, uint64(k))
	case uint64:
		return binary.LittleEndian.AppendUint64(buf, k)
	case float32:
		return binary.LittleEndian.AppendUint32(buf, math.Float32bits(k))
	case float64:
		return binary.LittleEndian.AppendUint64(buf, math.Float64bits(k))
	case bool:
		if k {
			return append(buf, 1)
		}
		return append(buf, 0)
	default:
		return fmt.Appendf(buf, "%v", key)
	}
}
