package handler

import (
	"net/http"
	"strings"

	"github.com/ericoliveiras/agro-feira/internal/database"
	"github.com/ericoliveiras/agro-feira/internal/model"
	"github.com/ericoliveiras/agro-feira/internal/validation"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
	"golang.org/x/crypto/bcrypt"
)

type AgricultorHandler struct {
	Store *sessions.CookieStore
}

// ShowRegisterPage renderiza o formulário de cadastro do agricultor.
func (h *AgricultorHandler) ShowRegisterPage(c *gin.Context) {
	flashesSuccess, flashesError := consumeFlashes(h.Store, c)

	c.HTML(http.StatusOK, "farmer_register.html", gin.H{
		"FlashesSuccess": flashesSuccess,
		"FlashesError":   flashesError,
	})
}

// ProcessRegisterForm valida os campos, faz o hash da senha e grava o
// agricultor. Nenhuma linha é gravada se a validação falhar.
func (h *AgricultorHandler) ProcessRegisterForm(c *gin.Context) {
	nome := c.PostForm("name")
	email := c.PostForm("email")
	senha := c.PostForm("password")
	telefone := c.PostForm("phone")
	localizacao := c.PostForm("location")

	if err := validation.ValidarCadastroAgricultor(nome, email, senha, telefone); err != nil {
		addFlash(h.Store, c, "error", err.Error())
		c.Redirect(http.StatusFound, "/farmer_register")
		return
	}

	senhaHash, err := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.DefaultCost)
	if err != nil {
		addFlash(h.Store, c, "error", "Erro ao processar a senha. Tente novamente.")
		c.Redirect(http.StatusFound, "/farmer_register")
		return
	}

	novoAgricultor := model.Agricultor{
		Nome:        nome,
		Email:       email,
		SenhaHash:   string(senhaHash),
		Telefone:    telefone,
		Localizacao: localizacao,
	}

	result := database.DB.Create(&novoAgricultor)
	if result.Error != nil {
		if isEmailDuplicado(result.Error) {
			addFlash(h.Store, c, "error", "Este e-mail já está cadastrado!")
		} else {
			addFlash(h.Store, c, "error", "Erro ao criar a conta. Tente novamente.")
		}
		c.Redirect(http.StatusFound, "/farmer_register")
		return
	}

	addFlash(h.Store, c, "success", "Cadastro realizado com sucesso! Faça o login.")
	c.Redirect(http.StatusFound, "/login")
}

// ShowDashboard lista somente os cultivos do agricultor autenticado.
func (h *AgricultorHandler) ShowDashboard(c *gin.Context) {
	ident, _ := IdentidadeAtual(c)
	flashesSuccess, flashesError := consumeFlashes(h.Store, c)

	var cultivos []model.Cultivo
	if err := database.DB.Where("agricultor_id = ?", ident.ID).Find(&cultivos).Error; err != nil {
		c.String(http.StatusInternalServerError, "Erro ao buscar os anúncios.")
		return
	}

	c.HTML(http.StatusOK, "farmer_dashboard.html", gin.H{
		"User":           ident,
		"Cultivos":       cultivos,
		"FlashesSuccess": flashesSuccess,
		"FlashesError":   flashesError,
	})
}

// ShowAddCultivoForm renderiza o formulário de novo anúncio.
func (h *AgricultorHandler) ShowAddCultivoForm(c *gin.Context) {
	ident, _ := IdentidadeAtual(c)
	flashesSuccess, flashesError := consumeFlashes(h.Store, c)

	c.HTML(http.StatusOK, "add_crop.html", gin.H{
		"User":           ident,
		"FlashesSuccess": flashesSuccess,
		"FlashesError":   flashesError,
	})
}

// ProcessAddCultivoForm grava um anúncio ligado ao agricultor da sessão.
// Quantidade e preço são texto livre; nenhuma validação é aplicada aqui.
func (h *AgricultorHandler) ProcessAddCultivoForm(c *gin.Context) {
	ident, _ := IdentidadeAtual(c)

	novoCultivo := model.Cultivo{
		AgricultorID: ident.ID,
		Nome:         c.PostForm("crop_name"),
		Quantidade:   c.PostForm("quantity"),
		Preco:        c.PostForm("price"),
		Descricao:    c.PostForm("description"),
	}

	if err := database.DB.Create(&novoCultivo).Error; err != nil {
		addFlash(h.Store, c, "error", "Erro ao salvar o anúncio. Tente novamente.")
		c.Redirect(http.StatusFound, "/add_crop")
		return
	}

	addFlash(h.Store, c, "success", "Anúncio adicionado com sucesso!")
	c.Redirect(http.StatusFound, "/farmer_dashboard")
}

// isEmailDuplicado identifica a violação do índice único de e-mail. O SQLite
// reporta "UNIQUE constraint failed"; outros bancos usam "duplicate key".
func isEmailDuplicado(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") || strings.Contains(msg, "duplicate key")
}
