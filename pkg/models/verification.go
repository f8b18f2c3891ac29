package models

// GeoCheckRequest represents a geofence verification request
type GeoCheckRequest struct {
	SessionID string `header:"X-Session-ID" maxLength:"100" doc:"Optional client session identifier"`
	Body      struct {
		Lat      *float64 `json:"lat,omitempty" doc:"Latitude in decimal degrees"`
		Lon      *float64 `json:"lon,omitempty" doc:"Longitude in decimal degrees"`
		Accuracy *float64 `json:"accuracy,omitempty" doc:"Reported accuracy in meters"`
	} `required:"false"`
}

// GeoCheckResponseBody is the body of the geofence verification response
type GeoCheckResponseBody struct {
	Success   bool   `json:"success" doc:"Whether the position is inside the campus radius"`
	Distance  int    `json:"distance" doc:"Distance from the campus anchor in meters"`
	Message   string `json:"message" doc:"Human-readable verdict"`
	AttemptID string `json:"attemptId" doc:"Recorded attempt ID"`
}

// GeoCheckResponse represents the geofence verification response
type GeoCheckResponse struct {
	Status int
	Body   GeoCheckResponseBody
}

// SSIDCheckRequest represents a network name verification request
type SSIDCheckRequest struct {
	SessionID string `header:"X-Session-ID" maxLength:"100" doc:"Optional client session identifier"`
	Body      struct {
		SSID *string `json:"ssid,omitempty" doc:"Network name reported by the device"`
	} `required:"false"`
}

// SSIDCheckResponseBody is the body of the network name verification response
type SSIDCheckResponseBody struct {
	Success   bool   `json:"success" doc:"Whether the network is approved"`
	Verdict   string `json:"verdict" enum:"allowed,denied,fallback_allowed" doc:"Allow-list verdict"`
	Message   string `json:"message" doc:"Human-readable verdict"`
	AttemptID string `json:"attemptId" doc:"Recorded attempt ID"`
}

// SSIDCheckResponse represents the network name verification response
type SSIDCheckResponse struct {
	Status int
	Body   SSIDCheckResponseBody
}

// ScanEntry is one access point observed by the client
type ScanEntry struct {
	BSSID string `json:"bssid" minLength:"1" doc:"Access point hardware address"`
	RSSI  int    `json:"rssi" doc:"Signal strength in dBm"`
}

// WifiCheckRequest represents a Wi-Fi fingerprint verification request
type WifiCheckRequest struct {
	SessionID string `header:"X-Session-ID" maxLength:"100" doc:"Optional client session identifier"`
	Body      struct {
		WifiScan           []ScanEntry `json:"wifiScan,omitempty" doc:"Access points seen by the device"`
		ScheduledClassroom string      `json:"scheduledClassroom,omitempty" doc:"Classroom the student is scheduled in"`
	} `required:"false"`
}

// Neighbor is a reference sample that took part in the vote
type Neighbor struct {
	Classroom string  `json:"classroom" doc:"Classroom label of the sample"`
	Distance  float64 `json:"distance" doc:"Euclidean distance to the scan"`
}

// WifiCheckResponseBody is the body of the Wi-Fi fingerprint verification response
type WifiCheckResponseBody struct {
	Success            bool       `json:"success" doc:"Whether the predicted classroom matches the scheduled one"`
	PredictedClassroom string     `json:"predictedClassroom,omitempty" doc:"Classroom predicted from the scan"`
	Message            string     `json:"message" doc:"Human-readable verdict"`
	Neighbors          []Neighbor `json:"neighbors,omitempty" doc:"Nearest reference samples"`
	AttemptID          string     `json:"attemptId" doc:"Recorded attempt ID"`
}

// WifiCheckResponse represents the Wi-Fi fingerprint verification response
type WifiCheckResponse struct {
	Body WifiCheckResponseBody
}

// HotspotCheckRequest represents a hotspot subnet verification request
type HotspotCheckRequest struct {
	SessionID string `header:"X-Session-ID" maxLength:"100" doc:"Optional client session identifier"`
}

// HotspotCheckResponseBody is the body of the hotspot verification response
type HotspotCheckResponseBody struct {
	Success   bool   `json:"success" doc:"Whether the client is on the authorized hotspot"`
	IP        string `json:"ip" doc:"Client address seen by the server"`
	Message   string `json:"message" doc:"Human-readable verdict"`
	AttemptID string `json:"attemptId" doc:"Recorded attempt ID"`
}

// HotspotCheckResponse represents the hotspot verification response
type HotspotCheckResponse struct {
	Status int
	Body   HotspotCheckResponseBody
}
