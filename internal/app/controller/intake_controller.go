package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pamatshop4/blacklight-backend/internal/app/model"
	"github.com/pamatshop4/blacklight-backend/internal/app/service"
	"github.com/pamatshop4/blacklight-backend/internal/app/validation"
	apperrors "github.com/pamatshop4/blacklight-backend/internal/errors"
	"github.com/pamatshop4/blacklight-backend/internal/middleware"
	"github.com/pamatshop4/blacklight-backend/pkg/util"
)

type IntakeController struct {
	intakeService service.IntakeService
}

func NewIntakeController(intakeService service.IntakeService) *IntakeController {
	return &IntakeController{intakeService: intakeService}
}

// JoinRequest is the wire shape of a submission: the record fields, except
// that tags arrives as the client-split list, plus the derived Not_USA flag.
// The shallower Tags/NotUSA fields take the "tags" and "Not_USA" JSON keys;
// the embedded record's comma-string Tags field is filled in by re-joining.
type JoinRequest struct {
	model.BusinessIntakeRecord
	Tags   []string `json:"tags"`
	NotUSA *int     `json:"Not_USA"`
}

// Join handles a business-intake submission
// POST /api/join
func (ctrl *IntakeController) Join(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req JoinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Unparseable submission body", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, "invalid request body")
		return
	}

	if fieldErrors := validation.ValidateExtras(req.Tags, req.NotUSA); fieldErrors != nil {
		log.Warn("Submission extras rejected", map[string]interface{}{
			"fields": len(fieldErrors),
		})
		apperrors.ValidationFailed(c, fieldErrors)
		return
	}

	// Re-join the tag list onto the record and run the same schema the form
	// runs client-side.
	record := req.BusinessIntakeRecord
	record.Tags = util.JoinTags(req.Tags)
	record.Normalize()

	if fieldErrors := validation.ValidateRecord(&record); fieldErrors != nil {
		log.Warn("Submission failed validation", map[string]interface{}{
			"business_name": record.BusinessName,
			"fields":        len(fieldErrors),
		})
		apperrors.ValidationFailed(c, fieldErrors)
		return
	}

	if err := ctrl.intakeService.Submit(c.Request.Context(), &record, req.Tags); err != nil {
		log.Error("Failed to record submission", err, map[string]interface{}{
			"business_name": record.BusinessName,
		})
		apperrors.InternalError(c, "failed to record submission")
		return
	}

	log.Info("Submission recorded", map[string]interface{}{
		"business_name": record.BusinessName,
		"category":      record.Category,
	})

	c.JSON(http.StatusOK, gin.H{
		"ok":      true,
		"columns": ctrl.intakeService.Columns(),
	})
}
