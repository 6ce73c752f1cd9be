package model

import "time"

// Voter is a registered voter record. PVCNumber and NIN are each globally
// unique; the verification flags only change through the registry's explicit
// verification operation.
type Voter struct {
	ID             string    `json:"id"`
	FullName       string    `json:"full_name"`
	State          string    `json:"state"`
	LGA            string    `json:"lga"`
	Ward           string    `json:"ward"`
	SenatorialZone string    `json:"senatorial_zone"`
	PollingUnit    string    `json:"polling_unit"`
	PVCNumber      string    `json:"pvc_number"`
	NIN            string    `json:"nin"`
	PVCVerified    bool      `json:"is_pvc_verified"`
	NINVerified    bool      `json:"is_nin_verified"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
