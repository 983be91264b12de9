package handler

import (
	"net/http"

	"github.com/ericoliveiras/agro-feira/internal/database"
	"github.com/ericoliveiras/agro-feira/internal/model"
	"github.com/ericoliveiras/agro-feira/internal/validation"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
	"golang.org/x/crypto/bcrypt"
)

type CompradorHandler struct {
	Store *sessions.CookieStore
}

// ShowRegisterPage renderiza o formulário de cadastro do comprador.
func (h *CompradorHandler) ShowRegisterPage(c *gin.Context) {
	flashesSuccess, flashesError := consumeFlashes(h.Store, c)

	c.HTML(http.StatusOK, "buyer_register.html", gin.H{
		"FlashesSuccess": flashesSuccess,
		"FlashesError":   flashesError,
	})
}

// ProcessRegisterForm valida e grava o comprador. A única diferença para o
// cadastro do agricultor é a regra de domínio do e-mail.
func (h *CompradorHandler) ProcessRegisterForm(c *gin.Context) {
	nome := c.PostForm("name")
	email := c.PostForm("email")
	senha := c.PostForm("password")
	telefone := c.PostForm("phone")
	localizacao := c.PostForm("location")

	if err := validation.ValidarCadastroComprador(nome, email, senha, telefone); err != nil {
		addFlash(h.Store, c, "error", err.Error())
		c.Redirect(http.StatusFound, "/buyer_register")
		return
	}

	senhaHash, err := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.DefaultCost)
	if err != nil {
		addFlash(h.Store, c, "error", "Erro ao processar a senha. Tente novamente.")
		c.Redirect(http.StatusFound, "/buyer_register")
		return
	}

	novoComprador := model.Comprador{
		Nome:        nome,
		Email:       email,
		SenhaHash:   string(senhaHash),
		Telefone:    telefone,
		Localizacao: localizacao,
	}

	result := database.DB.Create(&novoComprador)
	if result.Error != nil {
		if isEmailDuplicado(result.Error) {
			addFlash(h.Store, c, "error", "Este e-mail já está cadastrado!")
		} else {
			addFlash(h.Store, c, "error", "Erro ao criar a conta. Tente novamente.")
		}
		c.Redirect(http.StatusFound, "/buyer_register")
		return
	}

	addFlash(h.Store, c, "success", "Cadastro realizado com sucesso! Faça o login.")
	c.Redirect(http.StatusFound, "/login")
}

// ShowDashboard é a página de chegada do comprador. Não lista cultivos; a
// feira fica em /view_crops.
func (h *CompradorHandler) ShowDashboard(c *gin.Context) {
	ident, _ := IdentidadeAtual(c)
	flashesSuccess, flashesError := consumeFlashes(h.Store, c)

	c.HTML(http.StatusOK, "buyer_dashboard.html", gin.H{
		"User":           ident,
		"FlashesSuccess": flashesSuccess,
		"FlashesError":   flashesError,
	})
}
