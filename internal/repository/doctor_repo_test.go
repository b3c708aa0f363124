package repository

import (
	"context"
	"errors"
	"testing"

	"eyeflow-api/internal/domain/doctor"
)

func TestDoctorRepository_DuplicateLicense(t *testing.T) {
	db := newTestDB(t)
	repo := NewDoctorRepository(db)
	ctx := context.Background()

	seedDoctor(t, db, "d1@example.com", "LIC-1")

	dup := &doctor.Doctor{
		FirstName:     "Jon",
		LastName:      "Park",
		Specialty:     "Optometry",
		Phone:         "5551112222",
		Email:         "d2@example.com",
		LicenseNumber: "LIC-1",
	}
	if err := repo.Create(ctx, dup); !errors.Is(err, doctor.ErrLicenseNumberTaken) {
		t.Fatalf("err = %v, want ErrLicenseNumberTaken", err)
	}

	dup.LicenseNumber = "LIC-2"
	dup.Email = "d1@example.com"
	if err := repo.Create(ctx, dup); !errors.Is(err, doctor.ErrEmailTaken) {
		t.Fatalf("err = %v, want ErrEmailTaken", err)
	}
}

func TestDoctorRepository_ExistsByLicenseNumber(t *testing.T) {
	db := newTestDB(t)
	repo := NewDoctorRepository(db)
	ctx := context.Background()

	d := seedDoctor(t, db, "d1@example.com", "LIC-1")

	taken, err := repo.ExistsByLicenseNumber(ctx, "LIC-1", nil)
	if err != nil || !taken {
		t.Fatalf("ExistsByLicenseNumber = %v, %v; want true, nil", taken, err)
	}
	taken, err = repo.ExistsByLicenseNumber(ctx, "LIC-1", &d.ID)
	if err != nil || taken {
		t.Fatalf("ExistsByLicenseNumber excluding owner = %v, %v; want false, nil", taken, err)
	}
}
