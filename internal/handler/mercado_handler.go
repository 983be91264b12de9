package handler

import (
	"net/http"

	"github.com/ericoliveiras/agro-feira/internal/database"
	"github.com/ericoliveiras/agro-feira/internal/model"
	"github.com/gin-gonic/gin"
)

type MercadoHandler struct{}

// ShowCultivos renderiza a feira completa: todos os anúncios com nome,
// telefone e localização do agricultor dono. Acessível a qualquer usuário
// autenticado, agricultor ou comprador. Sem ordenação explícita.
func (h *MercadoHandler) ShowCultivos(c *gin.Context) {
	ident, _ := IdentidadeAtual(c)

	var cultivos []model.Cultivo
	if err := database.DB.Preload("Agricultor").Find(&cultivos).Error; err != nil {
		c.String(http.StatusInternalServerError, "Erro ao buscar os anúncios da feira.")
		return
	}

	c.HTML(http.StatusOK, "view_crops.html", gin.H{
		"User":     ident,
		"Cultivos": cultivos,
	})
}
