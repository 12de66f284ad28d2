package entity

// SpecialtyType distinguishes the two department catalogs patients can
// book into.
type SpecialtyType string

const (
	SpecialtyTypeMedical  SpecialtyType = "medical"
	SpecialtyTypeSurgical SpecialtyType = "surgical"
)

// MedicalDepartments is the fixed catalog of medical specialty clinics.
var MedicalDepartments = []string{
	"Rheumatology Clinic",
	"Psychology Clinic",
	"Nutrition Clinic",
	"Pulmonology Clinic",
	"Family Medicine Clinic",
	"Psychiatry Clinic",
	"Physiotherapy Clinic",
	"Paediatrics Neonatology",
	"Neurology Clinic",
	"Nephrology Clinic",
	"Medical Oncology Clinic",
	"Internal Medicine Clinic",
	"Gastroenterology Clinic",
	"Dermatology Clinic",
	"Haematology Clinic",
	"Cardiology Clinic",
	"Anaesthesiology PainMedicine Clinic",
}

// SurgicalDepartments is the fixed catalog of surgical specialties.
var SurgicalDepartments = []string{
	"Orthodontics",
	"Urology",
	"Surgical Oncology",
	"Plastic Reconstructive Surgery",
	"Obstetrics Gynaecology",
	"Oral Maxillofacial Surgery",
	"Paediatric Ophthalmology",
	"Paediatrics Neonatology",
	"Neurology Clinic",
	"General LaparoscopicS Urological Surgery",
	"ENT",
	"Cardiac Surgery",
	"Breast Surgery",
	"Bariatric Surgery",
}

// DepartmentsFor returns the catalog for a specialty type, or nil when
// the specialty type is unknown.
func DepartmentsFor(specialtyType string) []string {
	switch SpecialtyType(specialtyType) {
	case SpecialtyTypeMedical:
		return MedicalDepartments
	case SpecialtyTypeSurgical:
		return SurgicalDepartments
	default:
		return nil
	}
}

// IsKnownDepartment reports whether department belongs to the catalog of
// the given specialty type.
func IsKnownDepartment(specialtyType, department string) bool {
	for _, d := range DepartmentsFor(specialtyType) {
		if d == department {
			return true
		}
	}
	return false
}
