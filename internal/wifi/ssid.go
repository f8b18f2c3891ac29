package wifi

// Verdict is the outcome of an SSID allow-list check
type Verdict string

const (
	Allowed         Verdict = "allowed"
	Denied          Verdict = "denied"
	FallbackAllowed Verdict = "fallback_allowed"
)

// AllowList holds the approved network names. It is immutable after construction.
type AllowList struct {
	names map[string]struct{}
}

// NewAllowList builds an allow-list from ssids. Names are stored verbatim.
func NewAllowList(ssids []string) *AllowList {
	names := make(map[string]struct{}, len(ssids))
	for _, s := range ssids {
		names[s] = struct{}{}
	}
	return &AllowList{names: names}
}

// Len returns the number of approved names
func (a *AllowList) Len() int { return len(a.names) }

// Evaluate checks a claimed SSID. A nil or empty claim means the device could not
// report one and yields FallbackAllowed. Matching is exact and case-sensitive.
func (a *AllowList) Evaluate(claimed *string) Verdict {
	if claimed == nil || *claimed == "" {
		return FallbackAllowed
	}
	if _, ok := a.names[*claimed]; ok {
		return Allowed
	}
	return Denied
}
