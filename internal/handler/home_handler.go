package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ShowHomePage renderiza a página inicial pública.
func ShowHomePage(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", nil)
}
