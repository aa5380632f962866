package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type HTTPProfileInfo struct {
	ProfileID uuid.UUID
	Phone     string
}

func ExtractProfileInfo(c *gin.Context) (HTTPProfileInfo, bool) {
	profileID := c.GetString("profileID") // From JWT middleware
	if profileID == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Profile not authenticated"})
		return HTTPProfileInfo{}, false
	}
	profileUUID, err := uuid.Parse(profileID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unable to parse profile id"})
		return HTTPProfileInfo{}, false
	}

	return HTTPProfileInfo{
		ProfileID: profileUUID,
		Phone:     c.GetString("phone"),
	}, true
}
