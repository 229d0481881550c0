package directory

import "strings"

// Hospital is an entry of the static Bahrain hospital directory.
type Hospital struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	City string `json:"city"`
}

// Doctor is an entry of the static doctor directory, tied to a hospital.
type Doctor struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	HospitalID     string `json:"hospitalId"`
	Specialization string `json:"specialization"`
}

var Hospitals = []Hospital{
	{ID: "H001", Name: "Salmaniya Medical Complex", City: "Manama"},
	{ID: "H002", Name: "King Hamad University Hospital", City: "Busaiteen"},
	{ID: "H003", Name: "Bahrain Defence Force Hospital", City: "Riffa"},
	{ID: "H004", Name: "Ibn Al-Nafees Hospital", City: "Manama"},
	{ID: "H005", Name: "American Mission Hospital", City: "Manama"},
}

var Doctors = []Doctor{
	{ID: "DIA001", Name: "Dr. Hassan Abdulrahman", HospitalID: "H001", Specialization: "Endocrinology (Diabetes)"},
	{ID: "DIA002", Name: "Dr. Fatima Al-Khalifa", HospitalID: "H001", Specialization: "Internal Medicine & Diabetes"},
	{ID: "DIA003", Name: "Dr. Mohammed Al-Doseri", HospitalID: "H001", Specialization: "Pediatric Diabetes"},
	{ID: "DIA004", Name: "Dr. Noor Al-Sayed", HospitalID: "H002", Specialization: "Diabetes & Metabolism"},
	{ID: "DIA005", Name: "Dr. Ahmed Al-Mannai", HospitalID: "H002", Specialization: "Endocrinology"},
	{ID: "DIA006", Name: "Dr. Sara Al-Zayani", HospitalID: "H002", Specialization: "Diabetic Complications"},
	{ID: "DIA007", Name: "Dr. Abdulaziz Al-Mutawa", HospitalID: "H003", Specialization: "Endocrinology (Diabetes Care)"},
	{ID: "DIA008", Name: "Dr. Khalid Al-Rumaihi", HospitalID: "H003", Specialization: "Diabetes Management"},
	{ID: "DIA009", Name: "Dr. Lulwa Al-Binali", HospitalID: "H004", Specialization: "Adult Diabetes Management"},
	{ID: "DIA010", Name: "Dr. Huda Al-Ansari", HospitalID: "H004", Specialization: "Endocrinology"},
	{ID: "DIA011", Name: "Dr. Yusuf Al-Jassim", HospitalID: "H004", Specialization: "Diabetes & Nutrition"},
	{ID: "DIA012", Name: "Dr. Salman Al-Kooheji", HospitalID: "H005", Specialization: "Endocrinology & Diabetes"},
	{ID: "DIA013", Name: "Dr. Mariam Al-Hashimi", HospitalID: "H005", Specialization: "Gestational Diabetes"},
	{ID: "DIA014", Name: "Dr. Ali Al-Awadhi", HospitalID: "H005", Specialization: "Type 2 Diabetes Care"},
}

// DoctorsByHospital returns directory doctors working at the given hospital.
func DoctorsByHospital(hospitalID string) []Doctor {
	var out []Doctor
	for _, d := range Doctors {
		if d.HospitalID == hospitalID {
			out = append(out, d)
		}
	}
	return out
}

func hospitalName(id string) string {
	for _, h := range Hospitals {
		if h.ID == id {
			return h.Name
		}
	}
	return ""
}

// HospitalByID looks up a hospital directory entry.
func HospitalByID(id string) (Hospital, bool) {
	for _, h := range Hospitals {
		if h.ID == id {
			return h, true
		}
	}
	return Hospital{}, false
}

// DoctorByID looks up a doctor directory entry.
func DoctorByID(id string) (Doctor, bool) {
	for _, d := range Doctors {
		if d.ID == id {
			return d, true
		}
	}
	return Doctor{}, false
}

// MatchDoctorIDs finds directory entries that plausibly correspond to a
// registered physician, matching on name (exact or containment) and, when the
// physician supplied a hospital/clinic, on the hospital name as well. Pending
// care team requests are scoped to these IDs.
func MatchDoctorIDs(fullName, hospitalClinic string) []string {
	normalizedName := strings.ToLower(strings.TrimSpace(fullName))
	normalizedHospital := strings.ToLower(strings.TrimSpace(hospitalClinic))

	var ids []string
	for _, doc := range Doctors {
		docName := strings.ToLower(strings.TrimSpace(doc.Name))
		docHospital := strings.ToLower(strings.TrimSpace(hospitalName(doc.HospitalID)))

		nameMatch := docName == normalizedName ||
			strings.Contains(docName, normalizedName) ||
			strings.Contains(normalizedName, docName)
		hospitalMatch := normalizedHospital == "" ||
			strings.Contains(docHospital, normalizedHospital) ||
			strings.Contains(normalizedHospital, docHospital)

		if nameMatch && hospitalMatch {
			ids = append(ids, doc.ID)
		}
	}
	return ids
}
