package httptransport

import (
	"fmt"

	"github.com/asaskevich/govalidator"

	dErrors "bloodlink/pkg/domain-errors"
)

// RegisterDonorRequest is the wire shape for donor registration. Field names
// follow the public API contract.
type RegisterDonorRequest struct {
	Name             string `json:"name"`
	BloodGroup       string `json:"blood_group"`
	Location         string `json:"location"`
	LastDonationDate string `json:"last_donation_date"`
}

func (r RegisterDonorRequest) validate() error {
	for field, value := range map[string]string{
		"name":               r.Name,
		"blood_group":        r.BloodGroup,
		"location":           r.Location,
		"last_donation_date": r.LastDonationDate,
	} {
		if !govalidator.StringLength(value, "1", "255") {
			return dErrors.New(dErrors.CodeMissingField, fmt.Sprintf("missing required field: %s", field))
		}
	}
	return nil
}

// EmergencyRequest is the wire shape for emergency ticket submission.
// UrgencyLevel is a pointer so an absent field defaults to the most urgent
// level instead of zero.
type EmergencyRequest struct {
	UrgencyLevel *int             `json:"urgency_level"`
	Patient      EmergencyPatient `json:"patient"`
}

type EmergencyPatient struct {
	BloodGroup string `json:"blood_group"`
	Location   string `json:"location"`
}

func (r EmergencyRequest) validate() error {
	if !govalidator.StringLength(r.Patient.BloodGroup, "1", "255") {
		return dErrors.New(dErrors.CodeMissingField, "patient blood_group and location required")
	}
	if !govalidator.StringLength(r.Patient.Location, "1", "255") {
		return dErrors.New(dErrors.CodeMissingField, "patient blood_group and location required")
	}
	return nil
}

func (r EmergencyRequest) urgency() int {
	if r.UrgencyLevel == nil {
		return 1
	}
	return *r.UrgencyLevel
}
