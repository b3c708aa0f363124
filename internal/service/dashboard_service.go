package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"eyeflow-api/internal/domain/appointment"
	"eyeflow-api/internal/domain/billing"
	"eyeflow-api/internal/domain/doctor"
	"eyeflow-api/internal/domain/patient"
)

const (
	// recentPerSource is how many rows each feed source contributes
	// before the merge.
	recentPerSource = 3
	// recentActivityLimit caps the merged feed.
	recentActivityLimit = 5
)

const (
	ActivityAppointment = "appointment"
	ActivityBilling     = "billing"
	ActivityPatient     = "patient"
)

// Activity is one entry of the dashboard's recent-activity feed.
type Activity struct {
	Kind        string    `json:"kind"`
	Description string    `json:"description"`
	OccurredAt  time.Time `json:"occurred_at"`
	URL         string    `json:"url"`

	id uint
}

type Overview struct {
	PatientCount     int64      `json:"patient_count"`
	DoctorCount      int64      `json:"doctor_count"`
	AppointmentCount int64      `json:"appointment_count"`
	BillingTotal     float64    `json:"billing_total"`
	RecentActivities []Activity `json:"recent_activities"`
}

type DashboardService struct {
	patientRepo     patient.Repository
	doctorRepo      doctor.Repository
	appointmentRepo appointment.Repository
	billingRepo     billing.Repository
	log             *zap.Logger
}

func NewDashboardService(
	patientRepo patient.Repository,
	doctorRepo doctor.Repository,
	appointmentRepo appointment.Repository,
	billingRepo billing.Repository,
	log *zap.Logger,
) *DashboardService {
	return &DashboardService{
		patientRepo:     patientRepo,
		doctorRepo:      doctorRepo,
		appointmentRepo: appointmentRepo,
		billingRepo:     billingRepo,
		log:             log,
	}
}

func (s *DashboardService) Overview(ctx context.Context) (*Overview, error) {
	patientCount, err := s.patientRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	doctorCount, err := s.doctorRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	appointmentCount, err := s.appointmentRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	billingTotal, err := s.billingRepo.SumPaid(ctx)
	if err != nil {
		return nil, err
	}
	activities, err := s.recentActivities(ctx)
	if err != nil {
		return nil, err
	}

	return &Overview{
		PatientCount:     patientCount,
		DoctorCount:      doctorCount,
		AppointmentCount: appointmentCount,
		BillingTotal:     billingTotal,
		RecentActivities: activities,
	}, nil
}

// recentActivities merges the newest appointments, billings and
// patients into a single feed of at most five entries, newest first.
func (s *DashboardService) recentActivities(ctx context.Context) ([]Activity, error) {
	appts, err := s.appointmentRepo.ListRecent(ctx, recentPerSource)
	if err != nil {
		return nil, err
	}
	bills, err := s.billingRepo.ListRecent(ctx, recentPerSource)
	if err != nil {
		return nil, err
	}
	patients, err := s.patientRepo.ListRecent(ctx, recentPerSource)
	if err != nil {
		return nil, err
	}

	activities := make([]Activity, 0, len(appts)+len(bills)+len(patients))
	for _, a := range appts {
		activities = append(activities, Activity{
			Kind:        ActivityAppointment,
			Description: fmt.Sprintf("Appointment for %s on %s", s.patientName(ctx, a.PatientID), a.AppointmentDate.Format("2006-01-02")),
			OccurredAt:  a.CreatedAt,
			URL:         fmt.Sprintf("/appointments/view/%d", a.ID),
			id:          a.ID,
		})
	}
	for _, b := range bills {
		activities = append(activities, Activity{
			Kind:        ActivityBilling,
			Description: fmt.Sprintf("Billing of %.2f for %s", b.Amount, s.patientName(ctx, b.PatientID)),
			OccurredAt:  b.CreatedAt,
			URL:         fmt.Sprintf("/billings/view/%d", b.ID),
			id:          b.ID,
		})
	}
	for _, p := range patients {
		activities = append(activities, Activity{
			Kind:        ActivityPatient,
			Description: fmt.Sprintf("New patient registered: %s", p.FullName()),
			OccurredAt:  p.CreatedAt,
			URL:         fmt.Sprintf("/patients/view/%d", p.ID),
			id:          p.ID,
		})
	}

	// Newest first; equal timestamps fall back to kind order then id
	// so the feed is stable across refreshes.
	sort.SliceStable(activities, func(i, j int) bool {
		a, b := activities[i], activities[j]
		if !a.OccurredAt.Equal(b.OccurredAt) {
			return a.OccurredAt.After(b.OccurredAt)
		}
		if a.Kind != b.Kind {
			return kindRank(a.Kind) < kindRank(b.Kind)
		}
		return a.id < b.id
	})

	if len(activities) > recentActivityLimit {
		activities = activities[:recentActivityLimit]
	}
	return activities, nil
}

// patientName degrades to a placeholder rather than failing the whole
// dashboard when a lookup misses.
func (s *DashboardService) patientName(ctx context.Context, id uint) string {
	p, err := s.patientRepo.GetByID(ctx, id)
	if err != nil {
		s.log.Warn("dashboard patient lookup failed", zap.Uint("patient_id", id), zap.Error(err))
		return fmt.Sprintf("patient #%d", id)
	}
	return p.FullName()
}

func kindRank(kind string) int {
	switch kind {
	case ActivityAppointment:
		return 0
	case ActivityBilling:
		return 1
	default:
		return 2
	}
}
