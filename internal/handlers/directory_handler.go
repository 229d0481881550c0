package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/geniesugar/geniesugar/internal/directory"
)

// DirectoryHandler serves the static hospital and doctor directory used
// during patient registration.
type DirectoryHandler struct{}

func NewDirectoryHandler() *DirectoryHandler {
	return &DirectoryHandler{}
}

// Hospitals handles GET /api/hospitals.
func (h *DirectoryHandler) Hospitals(c *gin.Context) {
	c.JSON(http.StatusOK, directory.Hospitals)
}

// HospitalDoctors handles GET /api/hospitals/:id/doctors.
func (h *DirectoryHandler) HospitalDoctors(c *gin.Context) {
	if _, ok := directory.HospitalByID(c.Param("id")); !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "Hospital not found"})
		return
	}
	c.JSON(http.StatusOK, directory.DoctorsByHospital(c.Param("id")))
}
