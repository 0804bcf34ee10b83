package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/javi11/uudrive/internal/transcoder"
	"github.com/javi11/uudrive/pkg/uue"
)

type EncodeRequest struct {
	FileName string `json:"file_name"`
	Contents []byte `json:"contents"`
	Dialect  string `json:"dialect"`
}

type EncodeResponse struct {
	Document string `json:"document"`
}

func BuildEncodeHandler(tr *transcoder.Transcoder) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body EncodeRequest
		err := c.ShouldBind(&body)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		dialect := tr.DefaultDialect()
		if body.Dialect != "" {
			dialect, err = uue.ParseDialect(body.Dialect)
			if err != nil {
				c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
		}

		doc, err := tr.Encode(c, uue.UUData{FileName: body.FileName, Contents: body.Contents}, dialect)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, EncodeResponse{Document: doc})
	}
}
