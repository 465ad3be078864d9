package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"odyssweb/internal/domain"
	"odyssweb/internal/errmsg"
	"odyssweb/internal/services"
)

// ListCircles serves all circles, or a filtered set when departure or
// destination query params are present.
func (h *Handlers) ListCircles(c *gin.Context) {
	departure := strings.TrimSpace(c.Query("departure"))
	destination := strings.TrimSpace(c.Query("destination"))

	var (
		circles []domain.Circle
		err     error
	)
	if departure != "" || destination != "" {
		circles, err = h.circles(c).SearchCircles(c.Request.Context(), services.CircleSearchParams{
			Departure:   departure,
			Destination: destination,
		})
	} else {
		circles, err = h.circles(c).AllCircles(c.Request.Context())
	}
	if err != nil {
		RespondServiceError(c, errmsg.ContextCircleLoading, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"circles": circles})
}

func (h *Handlers) MyCircles(c *gin.Context) {
	circles, err := h.circles(c).MyCircles(c.Request.Context())
	if err != nil {
		RespondServiceError(c, errmsg.ContextCircleLoading, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"circles": circles})
}

func (h *Handlers) RecommendedCircles(c *gin.Context) {
	circles, err := h.circles(c).RecommendedCircles(c.Request.Context())
	if err != nil {
		RespondServiceError(c, errmsg.ContextCircleLoading, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"circles": circles})
}

// CircleDetail returns the circle with its normalized member ids and
// whether the current user belongs to it.
func (h *Handlers) CircleDetail(c *gin.Context) {
	circle, err := h.circles(c).CircleDetails(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondServiceError(c, errmsg.ContextCircleLoading, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"circle":     circle,
		"member_ids": circle.MemberIDs(),
		"is_member":  circle.HasMember(h.Session.UserID()),
	})
}

func (h *Handlers) CreateCircle(c *gin.Context) {
	var data domain.CreateCircleData
	if !BindJSONOrError(c, &data) {
		return
	}
	circle, err := h.circles(c).CreateCircle(c.Request.Context(), data)
	if err != nil {
		RespondServiceError(c, errmsg.ContextCircleCreation, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"circle": circle})
}

// JoinCircle joins the current user into a circle. Without a signed-in
// user the circle id is stashed and the caller is sent to /login; the
// join resumes after login. No backend call happens in that case.
func (h *Handlers) JoinCircle(c *gin.Context) {
	circleID := c.Param("id")

	if h.Session.User() == nil {
		_ = h.Session.SetRedirectCircle(circleID)
		c.Redirect(http.StatusFound, "/login")
		return
	}

	resp, err := h.circles(c).JoinCircle(c.Request.Context(), circleID)
	if err != nil {
		RespondServiceError(c, errmsg.ContextCircleLoading, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
