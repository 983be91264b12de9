// /cmd/web/main.go
package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/ericoliveiras/agro-feira/internal/database"
	"github.com/ericoliveiras/agro-feira/internal/handler"
	"github.com/ericoliveiras/agro-feira/internal/model"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Println("Aviso: arquivo .env não encontrado, usando variáveis do ambiente.")
	}

	database.ConnectDB()
	if os.Getenv("SEED_DEMO") == "1" {
		database.SeedDemo()
	}

	sessionKey := os.Getenv("SESSION_KEY")
	if sessionKey == "" {
		sessionKey = "agro-feira-chave-dev"
	}
	store := sessions.NewCookieStore([]byte(sessionKey))

	authHandler := &handler.AuthHandler{Store: store}
	agricultorHandler := &handler.AgricultorHandler{Store: store}
	compradorHandler := &handler.CompradorHandler{Store: store}
	mercadoHandler := &handler.MercadoHandler{}

	router := gin.Default()
	router.LoadHTMLGlob("internal/view/templates/*")

	// Rotas públicas.
	router.GET("/", handler.ShowHomePage)
	router.GET("/farmer_register", agricultorHandler.ShowRegisterPage)
	router.POST("/farmer_register", agricultorHandler.ProcessRegisterForm)
	router.GET("/buyer_register", compradorHandler.ShowRegisterPage)
	router.POST("/buyer_register", compradorHandler.ProcessRegisterForm)
	router.GET("/login", authHandler.ShowLoginPage)
	router.POST("/login", authHandler.ProcessLoginForm)
	router.GET("/logout", authHandler.Logout)

	// Rotas do agricultor.
	router.GET("/farmer_dashboard", authHandler.RequireRole(model.TipoAgricultor), agricultorHandler.ShowDashboard)
	router.GET("/add_crop", authHandler.RequireRole(model.TipoAgricultor), agricultorHandler.ShowAddCultivoForm)
	router.POST("/add_crop", authHandler.RequireRole(model.TipoAgricultor), agricultorHandler.ProcessAddCultivoForm)

	// Rotas do comprador.
	router.GET("/buyer_dashboard", authHandler.RequireRole(model.TipoComprador), compradorHandler.ShowDashboard)

	// Feira: qualquer usuário autenticado.
	router.GET("/view_crops", authHandler.RequireRole(""), mercadoHandler.ShowCultivos)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Servidor rodando na porta %s", port)
	router.Run(":" + port)
}
