// Package forms maps untrusted request fields to typed domain
// commands. Each Validate either returns a command ready for the
// service layer or the full set of field-level failures; nothing is
// written on the error path. Cross-entity reference checks (does the
// selected patient exist?) belong to the services, which hold the
// current row set at submission time.
package forms

import (
	"eyeflow-api/internal/domain/appointment"
	"eyeflow-api/internal/domain/billing"
	"eyeflow-api/internal/domain/doctor"
	"eyeflow-api/internal/domain/eyetest"
	"eyeflow-api/internal/domain/patient"
	"eyeflow-api/internal/domain/prescription"
	"eyeflow-api/internal/domain/report"
)

type PatientForm struct {
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	DateOfBirth    string `json:"date_of_birth"`
	Gender         string `json:"gender"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
	Address        string `json:"address"`
	MedicalHistory string `json:"medical_history"`
}

func (f *PatientForm) Validate() (*patient.Command, Errors) {
	errs := Errors{}

	cmd := &patient.Command{
		FirstName:      requireString(errs, "first_name", f.FirstName, 1, 50),
		LastName:       requireString(errs, "last_name", f.LastName, 1, 50),
		DateOfBirth:    requireDate(errs, "date_of_birth", f.DateOfBirth),
		Gender:         patient.Gender(f.Gender),
		Phone:          requireString(errs, "phone", f.Phone, 10, 20),
		Email:          requireEmail(errs, "email", f.Email, 120),
		Address:        requireString(errs, "address", f.Address, 1, 10000),
		MedicalHistory: f.MedicalHistory,
	}
	if !cmd.Gender.IsValid() {
		errs["gender"] = "must be one of Male, Female, Other"
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return cmd, nil
}

type DoctorForm struct {
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Specialty     string `json:"specialty"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	LicenseNumber string `json:"license_number"`
}

func (f *DoctorForm) Validate() (*doctor.Command, Errors) {
	errs := Errors{}

	cmd := &doctor.Command{
		FirstName:     requireString(errs, "first_name", f.FirstName, 1, 50),
		LastName:      requireString(errs, "last_name", f.LastName, 1, 50),
		Specialty:     requireString(errs, "specialty", f.Specialty, 1, 100),
		Phone:         requireString(errs, "phone", f.Phone, 10, 20),
		Email:         requireEmail(errs, "email", f.Email, 120),
		LicenseNumber: requireString(errs, "license_number", f.LicenseNumber, 1, 50),
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return cmd, nil
}

type AppointmentForm struct {
	PatientID       uint   `json:"patient_id"`
	DoctorID        uint   `json:"doctor_id"`
	AppointmentDate string `json:"appointment_date"`
	AppointmentTime string `json:"appointment_time"`
	Status          string `json:"status"`
	Notes           string `json:"notes"`
}

func (f *AppointmentForm) Validate() (*appointment.Command, Errors) {
	errs := Errors{}

	status := appointment.Status(f.Status)
	if f.Status == "" {
		status = appointment.StatusScheduled
	} else if !status.IsValid() {
		errs["status"] = "must be one of scheduled, completed, cancelled"
	}

	cmd := &appointment.Command{
		PatientID:       requireRef(errs, "patient_id", f.PatientID),
		DoctorID:        requireRef(errs, "doctor_id", f.DoctorID),
		AppointmentDate: requireDate(errs, "appointment_date", f.AppointmentDate),
		AppointmentTime: requireTimeOfDay(errs, "appointment_time", f.AppointmentTime),
		Status:          status,
		Notes:           f.Notes,
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return cmd, nil
}

type EyeTestResultForm struct {
	AppointmentID            uint     `json:"appointment_id"`
	PatientID                uint     `json:"patient_id"`
	TestDate                 string   `json:"test_date"`
	VisualAcuityLeft         string   `json:"visual_acuity_left"`
	VisualAcuityRight        string   `json:"visual_acuity_right"`
	IntraocularPressureLeft  *float64 `json:"intraocular_pressure_left"`
	IntraocularPressureRight *float64 `json:"intraocular_pressure_right"`
	FundusExamination        string   `json:"fundus_examination"`
	OtherFindings            string   `json:"other_findings"`
}

func (f *EyeTestResultForm) Validate() (*eyetest.Command, Errors) {
	errs := Errors{}

	cmd := &eyetest.Command{
		AppointmentID:            requireRef(errs, "appointment_id", f.AppointmentID),
		PatientID:                requireRef(errs, "patient_id", f.PatientID),
		TestDate:                 requireDate(errs, "test_date", f.TestDate),
		VisualAcuityLeft:         optionalString(errs, "visual_acuity_left", f.VisualAcuityLeft, 20),
		VisualAcuityRight:        optionalString(errs, "visual_acuity_right", f.VisualAcuityRight, 20),
		IntraocularPressureLeft:  f.IntraocularPressureLeft,
		IntraocularPressureRight: f.IntraocularPressureRight,
		FundusExamination:        f.FundusExamination,
		OtherFindings:            f.OtherFindings,
	}
	minFloat(errs, "intraocular_pressure_left", f.IntraocularPressureLeft, 0)
	minFloat(errs, "intraocular_pressure_right", f.IntraocularPressureRight, 0)

	if len(errs) > 0 {
		return nil, errs
	}
	return cmd, nil
}

type PrescriptionForm struct {
	PatientID         uint     `json:"patient_id"`
	DoctorID          uint     `json:"doctor_id"`
	PrescriptionDate  string   `json:"prescription_date"`
	SphereLeft        *float64 `json:"sphere_left"`
	CylinderLeft      *float64 `json:"cylinder_left"`
	AxisLeft          *int     `json:"axis_left"`
	SphereRight       *float64 `json:"sphere_right"`
	CylinderRight     *float64 `json:"cylinder_right"`
	AxisRight         *int     `json:"axis_right"`
	PupillaryDistance *float64 `json:"pupillary_distance"`
	DurationMonths    *int     `json:"duration_months"`
	Notes             string   `json:"notes"`
}

func (f *PrescriptionForm) Validate() (*prescription.Command, Errors) {
	errs := Errors{}

	rangeInt(errs, "axis_left", f.AxisLeft, 0, 180)
	rangeInt(errs, "axis_right", f.AxisRight, 0, 180)
	rangeFloat(errs, "pupillary_distance", f.PupillaryDistance, 50, 80)

	if f.DurationMonths == nil {
		errs["duration_months"] = "this field is required"
	} else if *f.DurationMonths < 1 {
		errs["duration_months"] = "must be at least 1"
	}

	cmd := &prescription.Command{
		PatientID:         requireRef(errs, "patient_id", f.PatientID),
		DoctorID:          requireRef(errs, "doctor_id", f.DoctorID),
		PrescriptionDate:  requireDate(errs, "prescription_date", f.PrescriptionDate),
		SphereLeft:        f.SphereLeft,
		CylinderLeft:      f.CylinderLeft,
		AxisLeft:          f.AxisLeft,
		SphereRight:       f.SphereRight,
		CylinderRight:     f.CylinderRight,
		AxisRight:         f.AxisRight,
		PupillaryDistance: f.PupillaryDistance,
		Notes:             f.Notes,
	}
	if f.DurationMonths != nil {
		cmd.DurationMonths = *f.DurationMonths
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return cmd, nil
}

type BillingForm struct {
	PatientID uint `json:"patient_id"`
	// Zero or absent means no appointment: billings are the only
	// records allowed a "none" sentinel here.
	AppointmentID uint     `json:"appointment_id"`
	Amount        *float64 `json:"amount"`
	Status        string   `json:"status"`
	PaymentDate   string   `json:"payment_date"`
	PaymentMethod string   `json:"payment_method"`
	Notes         string   `json:"notes"`
}

func (f *BillingForm) Validate() (*billing.Command, Errors) {
	errs := Errors{}

	status := billing.Status(f.Status)
	if f.Status == "" {
		status = billing.StatusPending
	} else if !status.IsValid() {
		errs["status"] = "must be one of pending, paid, cancelled"
	}

	if f.Amount == nil {
		errs["amount"] = "this field is required"
	} else if *f.Amount < 0 {
		errs["amount"] = "must be at least 0"
	}

	cmd := &billing.Command{
		PatientID:     requireRef(errs, "patient_id", f.PatientID),
		Status:        status,
		PaymentDate:   optionalDate(errs, "payment_date", f.PaymentDate),
		PaymentMethod: optionalString(errs, "payment_method", f.PaymentMethod, 50),
		Notes:         f.Notes,
	}
	if f.AppointmentID != 0 {
		id := f.AppointmentID
		cmd.AppointmentID = &id
	}
	if f.Amount != nil {
		cmd.Amount = *f.Amount
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return cmd, nil
}

type ReportForm struct {
	ReportType string `json:"report_type"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	// Zero means all patients / all doctors.
	PatientID uint `json:"patient_id"`
	DoctorID  uint `json:"doctor_id"`
}

func (f *ReportForm) Validate() (*report.GenerateCommand, Errors) {
	errs := Errors{}

	typ := report.Type(f.ReportType)
	if f.ReportType == "" {
		errs["report_type"] = "this field is required"
	} else if !typ.IsValid() {
		errs["report_type"] = "must be one of patient_history, appointment_summary, billing_summary, doctor_performance"
	}

	cmd := &report.GenerateCommand{
		Type:      typ,
		StartDate: optionalDate(errs, "start_date", f.StartDate),
		EndDate:   optionalDate(errs, "end_date", f.EndDate),
	}
	if f.PatientID != 0 {
		id := f.PatientID
		cmd.PatientID = &id
	}
	if f.DoctorID != 0 {
		id := f.DoctorID
		cmd.DoctorID = &id
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return cmd, nil
}
