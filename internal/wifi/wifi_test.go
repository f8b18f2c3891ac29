package wifi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestAllowList_Evaluate(t *testing.T) {
	list := NewAllowList([]string{"CampusNet", "Lab-5G"})

	tests := []struct {
		name    string
		claimed *string
		want    Verdict
	}{
		{name: "absent ssid falls back to allow", claimed: nil, want: FallbackAllowed},
		{name: "empty ssid falls back to allow", claimed: strPtr(""), want: FallbackAllowed},
		{name: "listed ssid", claimed: strPtr("CampusNet"), want: Allowed},
		{name: "second listed ssid", claimed: strPtr("Lab-5G"), want: Allowed},
		{name: "unknown ssid", claimed: strPtr("CoffeeShop"), want: Denied},
		{name: "case differs", claimed: strPtr("campusnet"), want: Denied},
		{name: "trailing whitespace is not trimmed", claimed: strPtr("CampusNet "), want: Denied},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, list.Evaluate(tt.claimed))
		})
	}
}

func TestAllowList_EmptyListDeniesClaims(t *testing.T) {
	list := NewAllowList(nil)

	assert.Equal(t, 0, list.Len())
	assert.Equal(t, Denied, list.Evaluate(strPtr("CampusNet")))
	assert.Equal(t, FallbackAllowed, list.Evaluate(nil))
}

func TestCleanIP(t *testing.T) {
	assert.Equal(t, "10.217.193.4", CleanIP("::ffff:10.217.193.4"))
	assert.Equal(t, "10.217.193.4", CleanIP("10.217.193.4:51234"))
	assert.Equal(t, "10.217.193.4", CleanIP("10.217.193.4, 172.16.0.1"))
	assert.Equal(t, "2001:db8::1", CleanIP("[2001:db8::1]:443"))
	assert.Equal(t, "2001:db8::1", CleanIP("2001:db8::1"))
}

func TestHotspotPrefixes_Allows(t *testing.T) {
	h := NewHotspotPrefixes([]string{"10.217.193.", ""})

	assert.True(t, h.Allows("10.217.193.17"))
	assert.True(t, h.Allows("::ffff:10.217.193.17"))
	assert.False(t, h.Allows("10.217.194.17"))
	assert.False(t, h.Allows("192.168.1.2"))

	assert.False(t, NewHotspotPrefixes(nil).Allows("10.217.193.17"))
}
