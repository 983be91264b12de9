// /internal/database/database.go
package database

import (
	"fmt"
	"log"
	"os"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/ericoliveiras/agro-feira/internal/model"
)

var DB *gorm.DB

// ConnectDB abre (ou cria) o arquivo SQLite e roda as migrações.
// O caminho vem de DATABASE_PATH; se vazio, usa agrofeira.db no diretório atual.
func ConnectDB() {
	var err error

	path := os.Getenv("DATABASE_PATH")
	if path == "" {
		path = "agrofeira.db"
	}

	DB, err = gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatalf("Falha ao abrir o banco de dados em %s: %v", path, err)
	}

	fmt.Printf("Banco de dados aberto em %s.\n", path)

	// --- Auto Migration ---
	err = DB.AutoMigrate(
		&model.Agricultor{}, &model.Comprador{}, &model.Cultivo{},
	)
	if err != nil {
		log.Fatal("Falha ao executar migrações:", err)
	}
}
