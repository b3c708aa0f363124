package v1

import (
	"context"
	"fmt"

	"eyeflow-api/internal/service"
)

// Choice builders for form descriptors. Labels are what the client
// shows in a dropdown; ids are what it submits back.

func patientChoices(ctx context.Context, svc *service.PatientService) ([]ChoiceOption, error) {
	patients, err := svc.List(ctx)
	if err != nil {
		return nil, err
	}
	opts := make([]ChoiceOption, 0, len(patients))
	for _, p := range patients {
		opts = append(opts, ChoiceOption{ID: p.ID, Label: p.FullName()})
	}
	return opts, nil
}

func doctorChoices(ctx context.Context, svc *service.DoctorService) ([]ChoiceOption, error) {
	doctors, err := svc.List(ctx)
	if err != nil {
		return nil, err
	}
	opts := make([]ChoiceOption, 0, len(doctors))
	for _, d := range doctors {
		opts = append(opts, ChoiceOption{ID: d.ID, Label: d.FullName()})
	}
	return opts, nil
}

func appointmentChoices(ctx context.Context, svc *service.AppointmentService) ([]ChoiceOption, error) {
	appts, err := svc.List(ctx)
	if err != nil {
		return nil, err
	}
	opts := make([]ChoiceOption, 0, len(appts))
	for _, a := range appts {
		label := fmt.Sprintf("#%d on %s %s", a.ID, a.AppointmentDate.Format("2006-01-02"), a.AppointmentTime)
		opts = append(opts, ChoiceOption{ID: a.ID, Label: label})
	}
	return opts, nil
}
