package donor

import (
	"time"

	"bloodlink/internal/blood"
	"bloodlink/internal/geo"
)

// DateLayout is the wire format for donation dates.
const DateLayout = "2006-01-02"

// Cooldown is the mandatory rest period after a donation. A donor becomes
// eligible again exactly Cooldown after their last donation (boundary
// inclusive).
const Cooldown = 90 * 24 * time.Hour

// Donor is a registered blood donor.
//
// Invariants:
//   - BloodType is one of the eight canonical types after normalization
//   - Site is a known site in the deployment graph
//   - a donor is never deleted; a match mutates it in place via MarkDonated
type Donor struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	BloodType      blood.Type `json:"blood_group"`
	Site           geo.Site   `json:"location"`
	LastDonation   string     `json:"last_donation_date"`
	TotalDonations int        `json:"total_donations"`

	// seq is the registry-wide insertion order, used as the deterministic
	// tie-break when multiple donors are equidistant from a patient.
	seq uint64
}

// Seq returns the registry insertion order of the donor.
func (d *Donor) Seq() uint64 { return d.seq }

// Eligible reports whether the donor's cooldown has elapsed at now. Fails
// closed: a missing or unparsable donation date means not eligible, never an
// error.
func (d *Donor) Eligible(now time.Time) bool {
	last, err := time.Parse(DateLayout, d.LastDonation)
	if err != nil {
		return false
	}
	return now.Sub(last) >= Cooldown
}

// MarkDonated records a completed donation: the cooldown restarts at now and
// the donation count increments. This is the only mutation path for a donor.
func (d *Donor) MarkDonated(now time.Time) {
	d.LastDonation = now.Format(DateLayout)
	d.TotalDonations++
}
