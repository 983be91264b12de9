package handler

import (
	"fmt"
	"net/http"

	"github.com/ericoliveiras/agro-feira/internal/database"
	"github.com/ericoliveiras/agro-feira/internal/model"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
	"golang.org/x/crypto/bcrypt"
)

type AuthHandler struct {
	Store *sessions.CookieStore
}

// ShowLoginPage renderiza a página de login e exibe flash messages.
func (h *AuthHandler) ShowLoginPage(c *gin.Context) {
	flashesSuccess, flashesError := consumeFlashes(h.Store, c)

	c.HTML(http.StatusOK, "login.html", gin.H{
		"FlashesSuccess": flashesSuccess,
		"FlashesError":   flashesError,
	})
}

// ProcessLoginForm processa o formulário de login. A mensagem de erro é a
// mesma para e-mail desconhecido, senha errada ou tipo inválido, para não
// revelar quais e-mails estão cadastrados.
func (h *AuthHandler) ProcessLoginForm(c *gin.Context) {
	email := c.PostForm("email")
	senha := c.PostForm("password")
	userType := c.PostForm("user_type")

	if userType == model.TipoAgricultor {
		var agricultor model.Agricultor
		result := database.DB.Where("email = ?", email).First(&agricultor)
		if result.Error == nil && bcrypt.CompareHashAndPassword([]byte(agricultor.SenhaHash), []byte(senha)) == nil {
			h.iniciarSessao(c, agricultor.ID, agricultor.Nome, model.TipoAgricultor)
			c.Redirect(http.StatusFound, "/farmer_dashboard")
			return
		}
	} else if userType == model.TipoComprador {
		var comprador model.Comprador
		result := database.DB.Where("email = ?", email).First(&comprador)
		if result.Error == nil && bcrypt.CompareHashAndPassword([]byte(comprador.SenhaHash), []byte(senha)) == nil {
			h.iniciarSessao(c, comprador.ID, comprador.Nome, model.TipoComprador)
			c.Redirect(http.StatusFound, "/buyer_dashboard")
			return
		}
	}

	addFlash(h.Store, c, "error", "Credenciais inválidas!")
	c.Redirect(http.StatusFound, "/login")
}

// iniciarSessao grava id, nome e tipo do usuário na sessão.
func (h *AuthHandler) iniciarSessao(c *gin.Context, userID uint, userName, userType string) {
	session, _ := h.Store.Get(c.Request, sessionName)
	session.Values["userID"] = userID
	session.Values["userName"] = userName
	session.Values["userType"] = userType

	if err := session.Save(c.Request, c.Writer); err != nil {
		fmt.Printf("ERRO ao salvar sessão de login: %v\n", err)
	}
}

// Logout limpa a sessão e volta para a página inicial.
func (h *AuthHandler) Logout(c *gin.Context) {
	session, _ := h.Store.Get(c.Request, sessionName)
	session.Values["userID"] = nil
	session.Values["userName"] = nil
	session.Values["userType"] = nil

	session.Options.MaxAge = -1
	if err := session.Save(c.Request, c.Writer); err != nil {
		fmt.Printf("Erro ao salvar sessão de logout: %v\n", err)
	}
	c.Redirect(http.StatusFound, "/")
}

// RequireRole é o guard de autorização das rotas protegidas. tipo vazio
// aceita qualquer usuário autenticado. Sessão ausente ou papel errado
// redireciona para /login sem mensagem, descartando a ação pedida.
func (h *AuthHandler) RequireRole(tipo string) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, _ := h.Store.Get(c.Request, sessionName)

		userID, okID := session.Values["userID"].(uint)
		userName, okNome := session.Values["userName"].(string)
		userType, okTipo := session.Values["userType"].(string)
		if !okID || !okNome || !okTipo {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		if tipo != "" && userType != tipo {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		c.Set(identidadeKey, Identidade{ID: userID, Nome: userName, Tipo: userType})
		c.Next()
	}
}
