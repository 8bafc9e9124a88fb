package chronos

import (
	"encoding/binary"
	"hash/fnv"
)

// comparerKind selects one of the two comparison strategies. The choice is
// closed: there are exactly two named total orders over OffsetDateTime.
type comparerKind uint8

const (
	compareLocal comparerKind = iota
	compareInstant
)

// Comparer is a comparison strategy over OffsetDateTime values.
//
// CompareByLocal orders by the local fields (date, then time of day),
// ignoring the offset; it fails with an argument Issue when the operands'
// calendars differ. CompareByInstant orders by the absolute instant each
// value denotes, so calendar and offset differences are tolerated.
type Comparer struct {
	kind comparerKind
}

// CompareByLocal orders by calendar date then nanosecond-of-day, offset
// ignored.
var CompareByLocal = Comparer{kind: compareLocal}

// CompareByInstant orders by the denoted instant, offset subtracted out.
var CompareByInstant = Comparer{kind: compareInstant}

// Compare returns -1, 0 or +1 per the strategy's total order.
func (c Comparer) Compare(a, b OffsetDateTime) (int, error) {
	switch c.kind {
	case compareLocal:
		cmp, err := a.date.Compare(b.date)
		if err != nil || cmp != 0 {
			return cmp, err
		}
		return a.TimeOfDay().Compare(b.TimeOfDay()), nil
	default:
		return a.ToInstant().Compare(b.ToInstant()), nil
	}
}

// Equal reports whether the strategy considers a and b equivalent. Note this
// is weaker than OffsetDateTime.Equal: CompareByLocal disregards the offset
// and CompareByInstant disregards everything but the denoted instant.
func (c Comparer) Equal(a, b OffsetDateTime) (bool, error) {
	cmp, err := c.Compare(a, b)
	if err != nil {
		return false, err
	}
	return cmp == 0, nil
}

// Hash returns a hash consistent with the strategy's Equal.
func (c Comparer) Hash(v OffsetDateTime) uint64 {
	h := fnv.New64a()
	var buf [8]byte
	var fields [2]int64
	switch c.kind {
	case compareLocal:
		fields[0] = int64(v.date.DaysSinceEpoch())
		fields[1] = v.NanosecondOfDay()
	default:
		inst := v.ToInstant()
		fields[0] = int64(inst.DaysSinceEpoch())
		fields[1] = inst.NanosecondOfDay()
	}
	for _, f := range fields {
		binary.LittleEndian.PutUint64(buf[:], uint64(f))
		h.Write(buf[:])
	}
	return h.Sum64()
}
