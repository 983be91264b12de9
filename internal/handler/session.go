// /internal/handler/session.go
package handler

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
)

const sessionName = "agro-feira-session"

const identidadeKey = "identidade"

// Identidade é o usuário autenticado do pedido atual, resolvido a partir da
// sessão pelo middleware RequireRole. Handlers leem daqui em vez de mexer na
// sessão diretamente.
type Identidade struct {
	ID   uint
	Nome string
	Tipo string
}

// IdentidadeAtual devolve a identidade colocada no contexto pelo middleware.
func IdentidadeAtual(c *gin.Context) (Identidade, bool) {
	valor, exists := c.Get(identidadeKey)
	if !exists {
		return Identidade{}, false
	}
	ident, ok := valor.(Identidade)
	return ident, ok
}

// addFlash grava uma mensagem flash (categoria "success" ou "error") e salva
// a sessão antes do redirect.
func addFlash(store *sessions.CookieStore, c *gin.Context, categoria, mensagem string) {
	session, _ := store.Get(c.Request, sessionName)
	session.AddFlash(mensagem, categoria)
	if err := session.Save(c.Request, c.Writer); err != nil {
		fmt.Printf("AVISO: Erro ao salvar flash na sessão: %v\n", err)
	}
}

// consumeFlashes lê e descarta as mensagens flash pendentes. Precisa salvar a
// sessão para que as mensagens não reapareçam na próxima página.
func consumeFlashes(store *sessions.CookieStore, c *gin.Context) (sucesso, erro []interface{}) {
	session, _ := store.Get(c.Request, sessionName)
	sucesso = session.Flashes("success")
	erro = session.Flashes("error")
	if err := session.Save(c.Request, c.Writer); err != nil {
		fmt.Printf("AVISO: Erro ao salvar sessão ao consumir flashes: %v\n", err)
	}
	return sucesso, erro
}
