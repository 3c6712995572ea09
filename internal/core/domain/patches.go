package domain

// Patch types carry partial updates. A nil field means "leave the stored
// value untouched"; only non-nil fields are merged into the record.

// ProfilePatch is a partial update to a UserProfile
type ProfilePatch struct {
	FirstName     *string `json:"first_name"`
	Surname       *string `json:"surname"`
	DateOfBirth   *string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	BuildingHouse *string `json:"building_house"`
	StreetAddress *string `json:"street_address"`
	CityTown      *string `json:"city_town"`
	CountyState   *string `json:"county_state"`
	PostalZip     *string `json:"postal_zip"`
	Country       *string `json:"country"`
	Telephone     *string `json:"telephone"`
	Nationality   *string `json:"nationality"`
}

// NextOfKinPatch is a partial update to a NextOfKin record
type NextOfKinPatch struct {
	FullName      *string `json:"full_name"`
	Relationship  *string `json:"relationship"`
	BuildingHouse *string `json:"building_house"`
	StreetAddress *string `json:"street_address"`
	CityTown      *string `json:"city_town"`
	CountyState   *string `json:"county_state"`
	PostalZip     *string `json:"postal_zip"`
	Country       *string `json:"country"`
	Telephone     *string `json:"telephone"`
}

// MedicalInfoPatch is a partial update to a MedicalInfo record
type MedicalInfoPatch struct {
	SurgeryName      *string `json:"surgery_name"`
	BuildingHouse    *string `json:"building_house"`
	StreetAddress    *string `json:"street_address"`
	CityTown         *string `json:"city_town"`
	CountyState      *string `json:"county_state"`
	PostalZip        *string `json:"postal_zip"`
	Country          *string `json:"country"`
	DoctorName       *string `json:"doctor_name"`
	DoctorPhone      *string `json:"doctor_phone"`
	ChronicIllnesses *bool   `json:"chronic_illnesses"`
	TakingMedication *bool   `json:"taking_medication"`
	RecentSurgery    *bool   `json:"recent_surgery"`
	Allergies        *bool   `json:"allergies"`
}

// SignaturePatch is a partial update to an ElectronicSignature record
type SignaturePatch struct {
	SignatureData *string `json:"signature_data"`
	SignatureType *string `json:"signature_type"`
	IsActive      *bool   `json:"is_active"`
}

// AssignmentPatch is a partial update to a CrewAssignment record
type AssignmentPatch struct {
	Position  *string `json:"position"`
	StartDate *string `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate   *string `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	IsActive  *bool   `json:"is_active"`
}

// MaintenancePatch is a partial update to a MaintenanceRecord
type MaintenancePatch struct {
	Title           *string  `json:"title"`
	Description     *string  `json:"description"`
	MaintenanceType *string  `json:"maintenance_type"`
	ScheduledDate   *string  `json:"scheduled_date" validate:"omitempty,datetime=2006-01-02"`
	CompletedDate   *string  `json:"completed_date" validate:"omitempty,datetime=2006-01-02"`
	Status          *string  `json:"status"`
	AssignedTo      *uint    `json:"assigned_to"`
	Cost            *float64 `json:"cost"`
}
