// File: therabook/handlers/catalog.go
package handlers

import (
	"net/http"

	"therabook/utils"

	"github.com/gin-gonic/gin"
)

// ListServices returns the active service catalog.
func (hb *HandlerBundle) ListServices(c *gin.Context) {
	services, err := hb.Services.ListActive(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load services", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": services})
}

// AvailableTherapists returns the active therapist roster.
func (hb *HandlerBundle) AvailableTherapists(c *gin.Context) {
	therapists, err := hb.Therapists.ListActive(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load therapists", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": therapists})
}
