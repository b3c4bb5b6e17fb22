package payload

// UpdateProfilePayload is a partial profile update. Absent fields keep their
// stored value. The KOALM number is not part of it and cannot be changed.
type UpdateProfilePayload struct {
	Name                    *string `json:"name" validate:"omitnil,min=1,max=255"`
	Email                   *string `json:"email" validate:"omitnil,email"`
	Photo                   *string `json:"photo"`
	IoaLmNumber             *string `json:"ioa_lm_number" validate:"omitnil,max=50"`
	WorkingHospitalName     *string `json:"working_hospital_name" validate:"omitnil,max=255"`
	WorkingHospitalDistrict *string `json:"working_hospital_district" validate:"omitnil,max=100"`
	Designation             *string `json:"designation" validate:"omitnil,max=100"`
	MobileNumber            *string `json:"mobile_number" validate:"omitnil,max=20"`
	CommunicationAddress    *string `json:"communication_address"`
	Address                 *string `json:"address"`
	District                *string `json:"district" validate:"omitnil,max=100"`
	Pincode                 *string `json:"pincode" validate:"omitnil,max=10"`
	State                   *string `json:"state" validate:"omitnil,max=100"`
	DistrictClubName        *string `json:"district_club_name" validate:"omitnil,max=255"`
	DateOfBirth             *string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	BloodGroup              *string `json:"blood_group" validate:"omitnil,max=10"`
}

// Changes maps the fields that were sent to their column names.
func (p *UpdateProfilePayload) Changes() map[string]any {
	changes := make(map[string]any)
	set := func(column string, value *string) {
		if value != nil {
			changes[column] = *value
		}
	}

	set("name", p.Name)
	set("email", p.Email)
	set("photo", p.Photo)
	set("ioa_lm_number", p.IoaLmNumber)
	set("working_hospital_name", p.WorkingHospitalName)
	set("working_hospital_district", p.WorkingHospitalDistrict)
	set("designation", p.Designation)
	set("mobile_number", p.MobileNumber)
	set("communication_address", p.CommunicationAddress)
	set("address", p.Address)
	set("district", p.District)
	set("pincode", p.Pincode)
	set("state", p.State)
	set("district_club_name", p.DistrictClubName)
	set("blood_group", p.BloodGroup)

	if p.DateOfBirth != nil {
		if *p.DateOfBirth == "" {
			changes["date_of_birth"] = nil
		} else {
			changes["date_of_birth"] = *p.DateOfBirth
		}
	}

	return changes
}
