package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"odyssweb/internal/errmsg"
	"odyssweb/internal/services"
)

// MyProfile returns the fresh profile from the backend and keeps the
// session store's copy in sync.
func (h *Handlers) MyProfile(c *gin.Context) {
	profile, err := h.users(c).MyProfile(c.Request.Context())
	if err != nil {
		RespondServiceError(c, errmsg.ContextProfileLoading, err)
		return
	}
	_ = h.Session.SetUser(&profile)
	c.JSON(http.StatusOK, gin.H{"user": profile})
}

func (h *Handlers) UpdateMyProfile(c *gin.Context) {
	var data services.UpdateProfileData
	if !BindJSONOrError(c, &data) {
		return
	}
	profile, err := h.users(c).UpdateMyProfile(c.Request.Context(), data)
	if err != nil {
		RespondServiceError(c, errmsg.ContextProfileLoading, err)
		return
	}
	_ = h.Session.SetUser(&profile)
	c.JSON(http.StatusOK, gin.H{"user": profile})
}

// UploadProfileFile forwards a multipart upload (avatar or intro video)
// to the backend and returns the stored file URL.
func (h *Handlers) UploadProfileFile(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "file is required", err)
		return
	}
	fileType := c.PostForm("type")

	src, err := fileHeader.Open()
	if err != nil {
		RespondError(c, http.StatusBadRequest, "could not read uploaded file", err)
		return
	}
	defer src.Close()

	resp, err := h.users(c).UploadFile(c.Request.Context(), fileHeader.Filename, fileType, src)
	if err != nil {
		RespondServiceError(c, errmsg.ContextFileUpload, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
