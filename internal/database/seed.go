// /internal/database/seed.go
package database

import (
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/ericoliveiras/agro-feira/internal/model"
)

// SeedDemo cria um agricultor de demonstração com dois anúncios, para navegar
// pela feira localmente sem passar pelo cadastro. Só roda quando SEED_DEMO=1;
// em uso normal as linhas nascem apenas via registro.
func SeedDemo() {
	var agricultor model.Agricultor
	result := DB.Where("email = ?", "demo@agrofeira.com").First(&agricultor)

	if result.Error != nil && result.Error == gorm.ErrRecordNotFound {
		log.Println("Agricultor de demonstração não encontrado, criando...")

		senhaHash, err := bcrypt.GenerateFromPassword([]byte("Semente1!"), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("Falha ao criar hash da senha de demonstração: %v", err)
		}

		agricultor = model.Agricultor{
			Nome:        "Agricultor Demo",
			Email:       "demo@agrofeira.com",
			SenhaHash:   string(senhaHash),
			Telefone:    "1199998888",
			Localizacao: "Holambra - SP",
		}

		if err := DB.Create(&agricultor).Error; err != nil {
			log.Fatalf("Falha ao criar o agricultor de demonstração: %v", err)
		}

		cultivos := []model.Cultivo{
			{AgricultorID: agricultor.ID, Nome: "Tomate", Quantidade: "50 kg", Preco: "R$ 4,00/kg", Descricao: "Tomate italiano colhido esta semana."},
			{AgricultorID: agricultor.ID, Nome: "Alface", Quantidade: "30 caixas", Preco: "R$ 25,00/caixa"},
		}
		if err := DB.Create(&cultivos).Error; err != nil {
			log.Fatalf("Falha ao criar os cultivos de demonstração: %v", err)
		}
		log.Println("Dados de demonstração criados com sucesso.")
	} else {
		log.Println("Agricultor de demonstração já existe.")
	}
}
