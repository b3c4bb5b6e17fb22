package model

import "time"

const TableNameMember = "members"

// Member mirrors one row of the KOA member directory. Photo holds base64
// image data, optionally as a data URL.
type Member struct {
	KoalmNumber             string     `gorm:"column:koalm_number;primaryKey" json:"koalm_number"`
	Name                    string     `gorm:"column:name" json:"name"`
	Email                   string     `gorm:"column:email" json:"email"`
	Photo                   string     `gorm:"column:photo" json:"photo,omitempty"`
	IoaLmNumber             string     `gorm:"column:ioa_lm_number" json:"ioa_lm_number"`
	WorkingHospitalName     string     `gorm:"column:working_hospital_name" json:"working_hospital_name"`
	WorkingHospitalDistrict string     `gorm:"column:working_hospital_district" json:"working_hospital_district"`
	Designation             string     `gorm:"column:designation" json:"designation"`
	MobileNumber            string     `gorm:"column:mobile_number" json:"mobile_number"`
	CommunicationAddress    string     `gorm:"column:communication_address" json:"communication_address"`
	Address                 string     `gorm:"column:address" json:"address"`
	District                string     `gorm:"column:district" json:"district"`
	Pincode                 string     `gorm:"column:pincode" json:"pincode"`
	State                   string     `gorm:"column:state" json:"state"`
	DistrictClubName        string     `gorm:"column:district_club_name" json:"district_club_name"`
	DateOfBirth             *time.Time `gorm:"column:date_of_birth;type:date" json:"date_of_birth"`
	BloodGroup              string     `gorm:"column:blood_group" json:"blood_group"`
	IsActive                bool       `gorm:"column:is_active;not null;default:true" json:"is_active"`
	IsAdmin                 bool       `gorm:"column:is_admin;not null;default:false" json:"is_admin"`
	CreatedAt               time.Time  `gorm:"column:created_at;not null;default:now()" json:"created_at"`
	UpdatedAt               time.Time  `gorm:"column:updated_at;not null;default:now()" json:"updated_at"`
}

func (*Member) TableName() string {
	return TableNameMember
}

// PublicProfile is the subset of a member shown on the public profile page
// the badge scan code points to.
type PublicProfile struct {
	KoalmNumber         string     `json:"koalm_number"`
	Name                string     `json:"name"`
	Photo               string     `json:"photo,omitempty"`
	DateOfBirth         *time.Time `json:"date_of_birth,omitempty"`
	Email               string     `json:"email"`
	MobileNumber        string     `json:"mobile_number"`
	IoaLmNumber         string     `json:"ioa_lm_number"`
	DistrictClubName    string     `json:"district_club_name"`
	WorkingHospitalName string     `json:"working_hospital_name"`
	BloodGroup          string     `json:"blood_group"`
}

func (m *Member) PublicProfile() *PublicProfile {
	return &PublicProfile{
		KoalmNumber:         m.KoalmNumber,
		Name:                m.Name,
		Photo:               m.Photo,
		DateOfBirth:         m.DateOfBirth,
		Email:               m.Email,
		MobileNumber:        m.MobileNumber,
		IoaLmNumber:         m.IoaLmNumber,
		DistrictClubName:    m.DistrictClubName,
		WorkingHospitalName: m.WorkingHospitalName,
		BloodGroup:          m.BloodGroup,
	}
}

// MemberProfile is what a member sees and edits about themselves. The KOALM
// number is shown but never written back.
type MemberProfile struct {
	KoalmNumber             string     `json:"koalm_number"`
	Name                    string     `json:"name"`
	Email                   string     `json:"email"`
	Photo                   string     `json:"photo,omitempty"`
	IoaLmNumber             string     `json:"ioa_lm_number"`
	WorkingHospitalName     string     `json:"working_hospital_name"`
	WorkingHospitalDistrict string     `json:"working_hospital_district"`
	Designation             string     `json:"designation"`
	MobileNumber            string     `json:"mobile_number"`
	CommunicationAddress    string     `json:"communication_address"`
	Address                 string     `json:"address"`
	District                string     `json:"district"`
	Pincode                 string     `json:"pincode"`
	State                   string     `json:"state"`
	DistrictClubName        string     `json:"district_club_name"`
	DateOfBirth             *time.Time `json:"date_of_birth,omitempty"`
	BloodGroup              string     `json:"blood_group"`
}

func (m *Member) Profile() *MemberProfile {
	return &MemberProfile{
		KoalmNumber:             m.KoalmNumber,
		Name:                    m.Name,
		Email:                   m.Email,
		Photo:                   m.Photo,
		IoaLmNumber:             m.IoaLmNumber,
		WorkingHospitalName:     m.WorkingHospitalName,
		WorkingHospitalDistrict: m.WorkingHospitalDistrict,
		Designation:             m.Designation,
		MobileNumber:            m.MobileNumber,
		CommunicationAddress:    m.CommunicationAddress,
		Address:                 m.Address,
		District:                m.District,
		Pincode:                 m.Pincode,
		State:                   m.State,
		DistrictClubName:        m.DistrictClubName,
		DateOfBirth:             m.DateOfBirth,
		BloodGroup:              m.BloodGroup,
	}
}
