package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handlers bundles every route handler the API mounts.
type Handlers struct {
	Dashboard     *DashboardHandler
	Patients      *PatientHandler
	Doctors       *DoctorHandler
	Appointments  *AppointmentHandler
	EyeTests      *EyeTestHandler
	Prescriptions *PrescriptionHandler
	Billings      *BillingHandler
	Reports       *ReportHandler
}

// RegisterRoutes mounts the route tree. Each entity carries the same
// shape: list, add, view, edit, delete.
func RegisterRoutes(r *gin.Engine, h Handlers) {
	r.GET("/", h.Dashboard.Overview)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	registerCRUD(r.Group("/patients"), crudHandlers{
		list: h.Patients.List, addForm: h.Patients.AddForm, create: h.Patients.Create,
		view: h.Patients.View, editForm: h.Patients.EditForm, update: h.Patients.Update,
		delete: h.Patients.Delete,
	})
	registerCRUD(r.Group("/doctors"), crudHandlers{
		list: h.Doctors.List, addForm: h.Doctors.AddForm, create: h.Doctors.Create,
		view: h.Doctors.View, editForm: h.Doctors.EditForm, update: h.Doctors.Update,
		delete: h.Doctors.Delete,
	})
	registerCRUD(r.Group("/appointments"), crudHandlers{
		list: h.Appointments.List, addForm: h.Appointments.AddForm, create: h.Appointments.Create,
		view: h.Appointments.View, editForm: h.Appointments.EditForm, update: h.Appointments.Update,
		delete: h.Appointments.Delete,
	})
	registerCRUD(r.Group("/eye_tests"), crudHandlers{
		list: h.EyeTests.List, addForm: h.EyeTests.AddForm, create: h.EyeTests.Create,
		view: h.EyeTests.View, editForm: h.EyeTests.EditForm, update: h.EyeTests.Update,
		delete: h.EyeTests.Delete,
	})
	registerCRUD(r.Group("/prescriptions"), crudHandlers{
		list: h.Prescriptions.List, addForm: h.Prescriptions.AddForm, create: h.Prescriptions.Create,
		view: h.Prescriptions.View, editForm: h.Prescriptions.EditForm, update: h.Prescriptions.Update,
		delete: h.Prescriptions.Delete,
	})
	registerCRUD(r.Group("/billings"), crudHandlers{
		list: h.Billings.List, addForm: h.Billings.AddForm, create: h.Billings.Create,
		view: h.Billings.View, editForm: h.Billings.EditForm, update: h.Billings.Update,
		delete: h.Billings.Delete,
	})

	// Reports are generate-once snapshots; there is no edit.
	reports := r.Group("/reports")
	reports.GET("/", h.Reports.List)
	reports.GET("/list", h.Reports.List)
	reports.GET("/generate", h.Reports.GenerateForm)
	reports.POST("/generate", h.Reports.Generate)
	reports.GET("/view/:id", h.Reports.View)
	reports.POST("/delete/:id", h.Reports.Delete)
}

type crudHandlers struct {
	list     gin.HandlerFunc
	addForm  gin.HandlerFunc
	create   gin.HandlerFunc
	view     gin.HandlerFunc
	editForm gin.HandlerFunc
	update   gin.HandlerFunc
	delete   gin.HandlerFunc
}

func registerCRUD(g *gin.RouterGroup, h crudHandlers) {
	g.GET("/", h.list)
	g.GET("/add", h.addForm)
	g.POST("/add", h.create)
	g.GET("/view/:id", h.view)
	g.GET("/edit/:id", h.editForm)
	g.POST("/edit/:id", h.update)
	g.POST("/delete/:id", h.delete)
}
