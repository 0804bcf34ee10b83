package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/javi11/uudrive/internal/transcoder"
	"github.com/javi11/uudrive/pkg/uue"
)

type DecodeRequest struct {
	Document string `json:"document"`
}

type DecodeResponse struct {
	FileName string `json:"file_name"`
	Contents []byte `json:"contents"`
}

func BuildDecodeHandler(tr *transcoder.Transcoder) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body DecodeRequest
		err := c.ShouldBind(&body)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		data, err := tr.Decode(c, body.Document)
		if err != nil {
			if errors.Is(err, uue.ErrInvalidHeader) {
				c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}

			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, DecodeResponse{
			FileName: data.FileName,
			Contents: data.Contents,
		})
	}
}
