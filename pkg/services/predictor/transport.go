package predictor

import (
	"net/http"

	"github.com/fedora-copr/rpmeta/pkg/dataset"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// NewHandler returns a predictor.Handler
func NewHandler(predictorService Service) Handler {
	return Handler{
		predictorService: predictorService,
	}
}

type Handler struct {
	predictorService Service
}

func (h *Handler) Predict(c *gin.Context) {

	var inputRecord dataset.InputRecord
	err := c.ShouldBindJSON(&inputRecord)
	if err != nil {
		log.Warn().Err(err).Msg("Binding prediction input failed")
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": "Request body does not bind to a prediction input"})
		return
	}

	err = inputRecord.Validate()
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
		return
	}

	prediction, err := h.predictorService.Predict(c.Request.Context(), inputRecord)
	if err != nil {
		if errors.Is(err, ErrUnknownPackage) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
			return
		}

		log.Error().Err(err).Msgf("Predicting build duration for package %v failed", inputRecord.PackageName)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Predicting build duration failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"prediction": prediction})
}
