package seed

import (
	"context"
	"fmt"
	"time"

	"bloodlink/internal/donor"
	"bloodlink/internal/engine"
)

// fixture describes one sample donor with its last donation expressed as
// days before startup, so part of the pool is inside the cooldown and part
// is eligible immediately.
type fixture struct {
	name       string
	bloodGroup string
	location   string
	daysAgo    int
}

var fixtures = []fixture{
	{"John Doe", "O-", "Hospital A", 120},
	{"Jane Smith", "O+", "Hospital B", 95},
	{"Bob Johnson", "A+", "Hospital C", 30},
	{"Alice Williams", "B-", "Hospital D", 100},
	{"Charlie Brown", "AB+", "Hospital A", 10},
	{"David Miller", "O-", "Hospital C", 200},
	{"Emma Davis", "A-", "Hospital B", 91},
	{"Frank Wilson", "B+", "Hospital D", 45},
}

// Apply registers the sample donors. Meant for demo deployments; production
// starts with an empty registry.
func Apply(ctx context.Context, eng *engine.Engine, now time.Time) (int, error) {
	for _, f := range fixtures {
		_, err := eng.RegisterDonor(ctx, engine.RegisterInput{
			Name:         f.name,
			BloodGroup:   f.bloodGroup,
			Location:     f.location,
			LastDonation: now.AddDate(0, 0, -f.daysAgo).Format(donor.DateLayout),
		})
		if err != nil {
			return 0, fmt.Errorf("seed donor %s: %w", f.name, err)
		}
	}
	return len(fixtures), nil
}
