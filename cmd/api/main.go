package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"

	"eyeflow-api/internal/config"
	v1 "eyeflow-api/internal/handler/v1"
	"eyeflow-api/internal/middleware"
	"eyeflow-api/internal/repository"
	"eyeflow-api/internal/service"
	"eyeflow-api/pkg/database"
	"eyeflow-api/pkg/logger"
	"eyeflow-api/pkg/metrics"
	"eyeflow-api/pkg/tracer"
)

func main() {
	// Missing .env is fine; the environment wins either way.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		panic("failed to build logger: " + err.Error())
	}
	defer func() { _ = log.Sync() }()

	if err := run(cfg, log); err != nil {
		log.Fatal("server exited with error", zap.Error(err))
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	tp, err := tracer.Init(cfg.Tracing)
	if err != nil {
		return err
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = tp.Shutdown(ctx)
	}()

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return err
	}
	if err := database.Migrate(db, log); err != nil {
		return err
	}

	collector := metrics.NewCollector("eyeflow", prometheus.DefaultRegisterer)
	if sqlDB, err := db.DB(); err == nil {
		collector.DBConnections.Set(float64(sqlDB.Stats().OpenConnections))
	}

	patientRepo := repository.NewPatientRepository(db)
	doctorRepo := repository.NewDoctorRepository(db)
	appointmentRepo := repository.NewAppointmentRepository(db)
	eyeTestRepo := repository.NewEyeTestRepository(db)
	prescriptionRepo := repository.NewPrescriptionRepository(db)
	billingRepo := repository.NewBillingRepository(db)
	reportRepo := repository.NewReportRepository(db)
	deleter := repository.NewCascadeDeleter(db)

	patientSvc := service.NewPatientService(patientRepo, deleter, collector, log)
	doctorSvc := service.NewDoctorService(doctorRepo, deleter, collector, log)
	appointmentSvc := service.NewAppointmentService(appointmentRepo, patientRepo, doctorRepo, deleter, collector, log)
	eyeTestSvc := service.NewEyeTestService(eyeTestRepo, appointmentRepo, patientRepo, log)
	prescriptionSvc := service.NewPrescriptionService(prescriptionRepo, patientRepo, doctorRepo, log)
	billingSvc := service.NewBillingService(billingRepo, patientRepo, appointmentRepo, log)
	reportSvc := service.NewReportService(
		reportRepo, patientRepo, doctorRepo, appointmentRepo, prescriptionRepo, billingRepo,
		collector, log,
	)
	dashboardSvc := service.NewDashboardService(patientRepo, doctorRepo, appointmentRepo, billingRepo, log)

	if cfg.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.Recovery(log))
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.Metrics(collector))
	router.Use(otelgin.Middleware(cfg.Tracing.ServiceName))
	router.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORS.AllowedOrigins,
		AllowMethods: cfg.CORS.AllowedMethods,
		AllowHeaders: cfg.CORS.AllowedHeaders,
		MaxAge:       cfg.CORS.MaxAge,
	}))

	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	v1.RegisterRoutes(router, v1.Handlers{
		Dashboard:     v1.NewDashboardHandler(dashboardSvc),
		Patients:      v1.NewPatientHandler(patientSvc),
		Doctors:       v1.NewDoctorHandler(doctorSvc),
		Appointments:  v1.NewAppointmentHandler(appointmentSvc, patientSvc, doctorSvc),
		EyeTests:      v1.NewEyeTestHandler(eyeTestSvc, appointmentSvc, patientSvc),
		Prescriptions: v1.NewPrescriptionHandler(prescriptionSvc, patientSvc, doctorSvc),
		Billings:      v1.NewBillingHandler(billingSvc, patientSvc, appointmentSvc),
		Reports:       v1.NewReportHandler(reportSvc, patientSvc, doctorSvc),
	})

	srv := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening",
			zap.String("address", srv.Addr),
			zap.String("environment", cfg.App.Environment),
			zap.String("version", cfg.App.Version),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}

	log.Info("server stopped")
	return nil
}
