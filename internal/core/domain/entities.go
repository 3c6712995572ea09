package domain

import "time"

// Role represents user role in the system
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleCaptain Role = "captain"
	RoleCrew    Role = "crew"
	RoleManager Role = "manager"
)

// IsValid checks that the role is one of the four known values
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleCaptain, RoleCrew, RoleManager:
		return true
	}
	return false
}

// CertificateType represents a seafarer certificate category
type CertificateType string

const (
	CertCoC     CertificateType = "Certificates of Competency (CoC)"
	CertSTCW    CertificateType = "STCW Basic Training"
	CertGMDSS   CertificateType = "GMDSS"
	CertMedical CertificateType = "Seafarers Medical"
	CertOther   CertificateType = "Other"
)

// IsValid checks that the certificate type is a known value
func (t CertificateType) IsValid() bool {
	switch t {
	case CertCoC, CertSTCW, CertGMDSS, CertMedical, CertOther:
		return true
	}
	return false
}

// DateLayout is the wire format for date-only fields
const DateLayout = "2006-01-02"

// User represents a crew member or office user account
type User struct {
	ID             uint      `json:"id"`
	Email          string    `json:"email"`
	HashedPassword string    `json:"-"`
	FirstName      string    `json:"first_name,omitempty"`
	Surname        string    `json:"surname,omitempty"`
	Role           Role      `json:"role"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
}

// UserSummary is the user shape returned by auth endpoints
type UserSummary struct {
	ID        uint   `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name,omitempty"`
	Surname   string `json:"surname,omitempty"`
	Role      Role   `json:"role"`
}

// Summary strips the credential fields from a user
func (u *User) Summary() *UserSummary {
	return &UserSummary{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		Surname:   u.Surname,
		Role:      u.Role,
	}
}

// UserProfile holds the personal details of a user. One per user.
type UserProfile struct {
	ID            uint   `json:"id"`
	UserID        uint   `json:"user_id"`
	FirstName     string `json:"first_name,omitempty"`
	Surname       string `json:"surname,omitempty"`
	DateOfBirth   string `json:"date_of_birth,omitempty"`
	BuildingHouse string `json:"building_house,omitempty"`
	StreetAddress string `json:"street_address,omitempty"`
	CityTown      string `json:"city_town,omitempty"`
	CountyState   string `json:"county_state,omitempty"`
	PostalZip     string `json:"postal_zip,omitempty"`
	Country       string `json:"country,omitempty"`
	Telephone     string `json:"telephone,omitempty"`
	Nationality   string `json:"nationality,omitempty"`
}

// NextOfKin holds emergency contact details. One per user.
type NextOfKin struct {
	ID            uint   `json:"id"`
	UserID        uint   `json:"user_id"`
	FullName      string `json:"full_name,omitempty"`
	Relationship  string `json:"relationship,omitempty"`
	BuildingHouse string `json:"building_house,omitempty"`
	StreetAddress string `json:"street_address,omitempty"`
	CityTown      string `json:"city_town,omitempty"`
	CountyState   string `json:"county_state,omitempty"`
	PostalZip     string `json:"postal_zip,omitempty"`
	Country       string `json:"country,omitempty"`
	Telephone     string `json:"telephone,omitempty"`
}

// MedicalInfo holds GP surgery details and health flags. One per user.
type MedicalInfo struct {
	ID               uint   `json:"id"`
	UserID           uint   `json:"user_id"`
	SurgeryName      string `json:"surgery_name,omitempty"`
	BuildingHouse    string `json:"building_house,omitempty"`
	StreetAddress    string `json:"street_address,omitempty"`
	CityTown         string `json:"city_town,omitempty"`
	CountyState      string `json:"county_state,omitempty"`
	PostalZip        string `json:"postal_zip,omitempty"`
	Country          string `json:"country,omitempty"`
	DoctorName       string `json:"doctor_name,omitempty"`
	DoctorPhone      string `json:"doctor_phone,omitempty"`
	ChronicIllnesses bool   `json:"chronic_illnesses"`
	TakingMedication bool   `json:"taking_medication"`
	RecentSurgery    bool   `json:"recent_surgery"`
	Allergies        bool   `json:"allergies"`
}

// ElectronicSignature holds a user's signature payload. Only the record
// with is_active=true is considered current.
type ElectronicSignature struct {
	ID            uint      `json:"id"`
	UserID        uint      `json:"user_id"`
	SignatureData string    `json:"signature_data"`
	SignatureType string    `json:"signature_type"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
}

// Certificate represents a seafarer certificate with a validity window
type Certificate struct {
	ID              uint            `json:"id"`
	UserID          uint            `json:"user_id"`
	CertificateType CertificateType `json:"certificate_type"`
	ValidFrom       string          `json:"valid_from"`
	ExpiryDate      string          `json:"expiry_date"`
	IssuedBy        string          `json:"issued_by"`
	FilePath        string          `json:"file_path,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}

// Vessel represents a ship in the fleet
type Vessel struct {
	ID           uint      `json:"id"`
	Name         string    `json:"name"`
	IMONumber    string    `json:"imo_number,omitempty"`
	VesselType   string    `json:"vessel_type"`
	FlagState    string    `json:"flag_state"`
	GrossTonnage float64   `json:"gross_tonnage,omitempty"`
	Length       float64   `json:"length,omitempty"`
	Beam         float64   `json:"beam,omitempty"`
	YearBuilt    int       `json:"year_built,omitempty"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

// CrewAssignment links a user to a vessel. At most one assignment per
// user carries is_active=true at a time.
type CrewAssignment struct {
	ID        uint   `json:"id"`
	UserID    uint   `json:"user_id"`
	VesselID  uint   `json:"vessel_id"`
	Position  string `json:"position"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date,omitempty"`
	IsActive  bool   `json:"is_active"`
}

// MaintenanceRecord represents planned or completed vessel maintenance
type MaintenanceRecord struct {
	ID              uint      `json:"id"`
	VesselID        uint      `json:"vessel_id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	MaintenanceType string    `json:"maintenance_type"`
	ScheduledDate   string    `json:"scheduled_date"`
	CompletedDate   string    `json:"completed_date,omitempty"`
	Status          string    `json:"status"`
	AssignedTo      uint      `json:"assigned_to,omitempty"`
	Cost            float64   `json:"cost,omitempty"`
	CreatedBy       uint      `json:"created_by"`
	CreatedAt       time.Time `json:"created_at"`
}

// SafetyRecord represents a reported safety incident
type SafetyRecord struct {
	ID                uint      `json:"id"`
	VesselID          uint      `json:"vessel_id"`
	IncidentType      string    `json:"incident_type"`
	Description       string    `json:"description"`
	IncidentDate      string    `json:"incident_date"`
	Severity          string    `json:"severity"`
	ReportedBy        uint      `json:"reported_by"`
	Status            string    `json:"status"`
	CorrectiveActions string    `json:"corrective_actions,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

// QHSERecord represents a quality/health/safety/environment audit
type QHSERecord struct {
	ID                uint      `json:"id"`
	VesselID          uint      `json:"vessel_id"`
	AuditType         string    `json:"audit_type"`
	AuditDate         string    `json:"audit_date"`
	Auditor           string    `json:"auditor"`
	Findings          string    `json:"findings"`
	ComplianceScore   int       `json:"compliance_score,omitempty"`
	CorrectiveActions string    `json:"corrective_actions,omitempty"`
	Status            string    `json:"status"`
	CreatedBy         uint      `json:"created_by"`
	CreatedAt         time.Time `json:"created_at"`
}
