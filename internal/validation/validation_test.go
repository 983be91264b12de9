// /internal/validation/validation_test.go
package validation

import (
	"errors"
	"testing"
)

func TestValidarNome(t *testing.T) {
	casos := []struct {
		nome  string
		valor string
		erro  error
	}{
		{"Letras e espaços", "Maria da Silva", nil},
		{"Acentos são letras", "João Conceição", nil},
		{"Dígito no nome", "Maria 2", ErrNome},
		{"Pontuação no nome", "Maria-José", ErrNome},
		{"Arroba no nome", "maria@silva", ErrNome},
		{"Vazio passa", "", nil},
	}

	for _, c := range casos {
		t.Run(c.nome, func(t *testing.T) {
			if err := ValidarNome(c.valor); !errors.Is(err, c.erro) {
				t.Errorf("ValidarNome(%q) = %v, esperava %v", c.valor, err, c.erro)
			}
		})
	}
}

func TestValidarEmailAgricultor(t *testing.T) {
	casos := []struct {
		nome  string
		valor string
		erro  error
	}{
		{"Qualquer domínio serve", "joao@sitio.com.br", nil},
		{"Gmail serve para agricultor", "joao@gmail.com", nil},
		{"Sem arroba", "joao.sitio.com", ErrEmailAgricultor},
		{"Sem ponto", "joao@sitio", ErrEmailAgricultor},
	}

	for _, c := range casos {
		t.Run(c.nome, func(t *testing.T) {
			if err := ValidarEmailAgricultor(c.valor); !errors.Is(err, c.erro) {
				t.Errorf("ValidarEmailAgricultor(%q) = %v, esperava %v", c.valor, err, c.erro)
			}
		})
	}
}

func TestValidarEmailComprador(t *testing.T) {
	casos := []struct {
		nome  string
		valor string
		erro  error
	}{
		{"Domínio exigido", "user@example.com", nil},
		{"Gmail recusado", "user@gmail.com", ErrEmailComprador},
		{"Subdomínio recusado", "user@mail.example.com.br", ErrEmailComprador},
	}

	for _, c := range casos {
		t.Run(c.nome, func(t *testing.T) {
			if err := ValidarEmailComprador(c.valor); !errors.Is(err, c.erro) {
				t.Errorf("ValidarEmailComprador(%q) = %v, esperava %v", c.valor, err, c.erro)
			}
		})
	}
}

func TestValidarSenha(t *testing.T) {
	casos := []struct {
		nome  string
		valor string
		erro  error
	}{
		{"Oito caracteres com as quatro classes", "Abcdef1!", nil},
		{"Sete caracteres sempre falha", "Abcde1!", ErrSenha},
		{"Sete caracteres com acento tambem falha", "Abcd1!é", ErrSenha},
		{"Oito caracteres contados em runas", "Abcdé1!x", nil},
		{"Sem maiúscula", "abcdef1!", ErrSenha},
		{"Sem minúscula", "ABCDEF1!", ErrSenha},
		{"Sem dígito", "Abcdefg!", ErrSenha},
		{"Sem especial", "Abcdefg1", ErrSenha},
		{"Underscore conta como especial", "Abcdef1_", nil},
	}

	for _, c := range casos {
		t.Run(c.nome, func(t *testing.T) {
			if err := ValidarSenha(c.valor); !errors.Is(err, c.erro) {
				t.Errorf("ValidarSenha(%q) = %v, esperava %v", c.valor, err, c.erro)
			}
		})
	}
}

func TestValidarTelefone(t *testing.T) {
	casos := []struct {
		nome  string
		valor string
		erro  error
	}{
		{"Dez dígitos", "1234567890", nil},
		{"Nove dígitos", "123456789", ErrTelefone},
		{"Onze dígitos", "12345678901", ErrTelefone},
		{"Com hífen", "12345-6789", ErrTelefone},
		{"Com letra", "12345678a0", ErrTelefone},
		{"Dez dígitos arábicos", "٠١٢٣٤٥٦٧٨٩", nil},
		{"Letra acentuada não é dígito", "12345678é0", ErrTelefone},
	}

	for _, c := range casos {
		t.Run(c.nome, func(t *testing.T) {
			if err := ValidarTelefone(c.valor); !errors.Is(err, c.erro) {
				t.Errorf("ValidarTelefone(%q) = %v, esperava %v", c.valor, err, c.erro)
			}
		})
	}
}

// TestOrdemDasValidacoes garante que o primeiro campo inválido define a
// mensagem: nome, depois e-mail, senha e telefone.
func TestOrdemDasValidacoes(t *testing.T) {
	err := ValidarCadastroAgricultor("Maria 2", "invalido", "curta", "123")
	if !errors.Is(err, ErrNome) {
		t.Errorf("Esperava ErrNome como primeiro erro, obteve %v", err)
	}

	err = ValidarCadastroComprador("Maria", "user@gmail.com", "curta", "123")
	if !errors.Is(err, ErrEmailComprador) {
		t.Errorf("Esperava ErrEmailComprador como primeiro erro, obteve %v", err)
	}

	if err := ValidarCadastroAgricultor("Maria", "maria@sitio.com", "Abcdef1!", "1234567890"); err != nil {
		t.Errorf("Cadastro válido não deveria falhar: %v", err)
	}
}
