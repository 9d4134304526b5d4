package handler

import (
	"github.com/gin-gonic/gin"

	"encomendas/internal/postal"
)

// PostalHandler serves postal-code locality autofill.
type PostalHandler struct {
	lookup *postal.Lookup
}

// NewPostalHandler creates a new PostalHandler.
func NewPostalHandler(lookup *postal.Lookup) *PostalHandler {
	return &PostalHandler{lookup: lookup}
}

// Locality handles GET /api/v1/postal-codes/:code/locality. A miss is a
// normal outcome: the response carries found=false, never a 404.
func (h *PostalHandler) Locality(c *gin.Context) {
	code := c.Param("code")
	name, found := h.lookup.Locality(code)
	RespondOK(c, gin.H{
		"code":     code,
		"locality": name,
		"found":    found,
	})
}
