package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lifesync/internal/models/request_models"
	"lifesync/internal/services"
	"lifesync/pkg/utils"
)

type ContactController struct {
	contactService services.ContactService
}

func NewContactController(contactService services.ContactService) *ContactController {
	return &ContactController{
		contactService: contactService,
	}
}

func (ct *ContactController) Submit(c *gin.Context) {
	var req request_models.CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	contact, err := ct.contactService.SubmitContact(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, contact, "Message received")
}

func (ct *ContactController) List(c *gin.Context) {
	contacts, err := ct.contactService.ListContacts(c.Request.Context(), c.Query("status"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, contacts, "")
}

func (ct *ContactController) UpdateStatus(c *gin.Context) {
	var req request_models.UpdateContactStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := ct.contactService.UpdateStatus(c.Request.Context(), c.Param("id"), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Status updated")
}
