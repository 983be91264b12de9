// /internal/validation/validation.go
package validation

import (
	"errors"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Erros de validação do cadastro. O texto é exatamente a mensagem flash
// mostrada ao usuário.
var (
	ErrNome            = errors.New("O nome deve conter apenas letras e espaços!")
	ErrEmailAgricultor = errors.New("Formato de e-mail inválido!")
	ErrEmailComprador  = errors.New("O e-mail deve ser do domínio @example.com!")
	ErrSenha           = errors.New("A senha deve ter pelo menos 8 caracteres e incluir maiúscula, minúscula, número e caractere especial!")
	ErrTelefone        = errors.New("O telefone deve ter exatamente 10 dígitos!")
)

var (
	temMaiuscula = regexp.MustCompile(`[A-Z]`)
	temMinuscula = regexp.MustCompile(`[a-z]`)
	temDigito    = regexp.MustCompile(`[0-9]`)
	temEspecial  = regexp.MustCompile(`[\W_]`)
)

// ValidarNome aceita apenas letras e espaços. Nome vazio passa.
func ValidarNome(nome string) error {
	for _, r := range nome {
		if !unicode.IsLetter(r) && r != ' ' {
			return ErrNome
		}
	}
	return nil
}

// ValidarEmailAgricultor exige apenas a presença de "@" e ".".
func ValidarEmailAgricultor(email string) error {
	if !strings.Contains(email, "@") || !strings.Contains(email, ".") {
		return ErrEmailAgricultor
	}
	return nil
}

// ValidarEmailComprador exige o domínio @example.com. Regra de negócio
// distinta da regra do agricultor; não unificar.
func ValidarEmailComprador(email string) error {
	if !strings.HasSuffix(email, "@example.com") {
		return ErrEmailComprador
	}
	return nil
}

// ValidarSenha exige pelo menos 8 caracteres com maiúscula, minúscula,
// dígito e caractere especial. O tamanho é contado em runas, não em bytes:
// uma senha de 7 caracteres com acento ainda é recusada.
func ValidarSenha(senha string) error {
	if utf8.RuneCountInString(senha) < 8 ||
		!temMaiuscula.MatchString(senha) ||
		!temMinuscula.MatchString(senha) ||
		!temDigito.MatchString(senha) ||
		!temEspecial.MatchString(senha) {
		return ErrSenha
	}
	return nil
}

// ValidarTelefone exige exatamente 10 dígitos decimais. Dígitos decimais de
// qualquer escrita contam; letras, pontuação e espaços não.
func ValidarTelefone(telefone string) error {
	if utf8.RuneCountInString(telefone) != 10 {
		return ErrTelefone
	}
	for _, r := range telefone {
		if !unicode.IsDigit(r) {
			return ErrTelefone
		}
	}
	return nil
}

// ValidarCadastroAgricultor roda as validações na ordem do formulário e
// devolve o primeiro erro encontrado.
func ValidarCadastroAgricultor(nome, email, senha, telefone string) error {
	if err := ValidarNome(nome); err != nil {
		return err
	}
	if err := ValidarEmailAgricultor(email); err != nil {
		return err
	}
	if err := ValidarSenha(senha); err != nil {
		return err
	}
	return ValidarTelefone(telefone)
}

// ValidarCadastroComprador é igual à validação do agricultor, exceto pela
// regra de domínio do e-mail.
func ValidarCadastroComprador(nome, email, senha, telefone string) error {
	if err := ValidarNome(nome); err != nil {
		return err
	}
	if err := ValidarEmailComprador(email); err != nil {
		return err
	}
	if err := ValidarSenha(senha); err != nil {
		return err
	}
	return ValidarTelefone(telefone)
}
