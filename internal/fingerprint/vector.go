package fingerprint

import (
	"fmt"
	"strings"
)

// MissingRSSI is substituted for access points absent from a scan
const MissingRSSI = -100

// Reading is one access point observed in a client scan
type Reading struct {
	BSSID string
	RSSI  int
}

// Vector is a fixed-order list of signal strengths, one per entry of an APOrder
type Vector []float64

// APOrder is the fixed enumeration of access points used as fingerprint dimensions.
// Its order is the contract between scans and stored vectors.
type APOrder struct {
	ids   []string
	index map[string]int
}

// NewAPOrder validates and freezes an access point enumeration
func NewAPOrder(ids []string) (*APOrder, error) {
	if len(ids) == 0 {
		return nil, fmt.Errorf("access point order is empty")
	}

	order := &APOrder{
		ids:   make([]string, len(ids)),
		index: make(map[string]int, len(ids)),
	}
	for i, id := range ids {
		key := canonicalBSSID(id)
		if key == "" {
			return nil, fmt.Errorf("access point %d has an empty identifier", i)
		}
		if _, dup := order.index[key]; dup {
			return nil, fmt.Errorf("access point %q listed twice", id)
		}
		order.ids[i] = key
		order.index[key] = i
	}
	return order, nil
}

// Len returns the vector dimension
func (o *APOrder) Len() int { return len(o.ids) }

// IDs returns a copy of the canonical identifiers in order
func (o *APOrder) IDs() []string {
	out := make([]string, len(o.ids))
	copy(out, o.ids)
	return out
}

// Vectorize converts a sparse scan into a vector aligned with the order.
// Unseen access points map to MissingRSSI; the first reading wins for duplicated BSSIDs
// and readings outside the order are ignored.
func (o *APOrder) Vectorize(scan []Reading) Vector {
	v := make(Vector, len(o.ids))
	seen := make([]bool, len(o.ids))
	for i := range v {
		v[i] = MissingRSSI
	}

	for _, r := range scan {
		i, ok := o.index[canonicalBSSID(r.BSSID)]
		if !ok || seen[i] {
			continue
		}
		v[i] = float64(r.RSSI)
		seen[i] = true
	}
	return v
}

func canonicalBSSID(id string) string {
	return strings.ToUpper(strings.TrimSpace(id))
}
