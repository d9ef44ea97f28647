package services

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"

	"github.com/vinculo-social/vinculo/pkg/internal/fault"
	"github.com/vinculo-social/vinculo/pkg/internal/models"
)

// Authenticate resolves a login attempt into an account. A wrong password
// and an unknown user share the same message on purpose.
func Authenticate(usernameOrEmail string, password string) (models.Account, error) {
	account, err := GetAccountByLogin(usernameOrEmail)
	if err != nil {
		return account, fault.Unauthorized("Credenciales inválidas")
	}

	if !account.Active {
		return account, fault.Unauthorized("Su cuenta ha sido deshabilitada. Contacte al administrador.")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(password)); err != nil {
		return account, fault.Unauthorized("Credenciales inválidas")
	}

	return account, nil
}

func IssueToken(account models.Account) (string, error) {
	lifetime := viper.GetDuration("security.token_lifetime")
	if lifetime <= 0 {
		lifetime = 15 * time.Minute
	}

	claims := jwt.MapClaims{
		"sub":  account.ID.String(),
		"role": account.Role,
		"exp":  time.Now().Add(lifetime).Unix(),
		"iat":  time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(viper.GetString("security.jwt_secret")))
}

// Authorize verifies a token and loads the account behind it. Disabled
// accounts are rejected even when their token has not expired yet.
func Authorize(tokenString string) (models.Account, error) {
	var account models.Account

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(viper.GetString("security.jwt_secret")), nil
	})
	if err != nil || !token.Valid {
		return account, fault.Unauthorized("Token inválido o expirado")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return account, fault.Unauthorized("Token inválido o expirado")
	}
	subject, err := claims.GetSubject()
	if err != nil {
		return account, fault.Unauthorized("Token inválido o expirado")
	}

	id, err := ParseID(subject, "ID de usuario inválido")
	if err != nil {
		return account, fault.Unauthorized("Token inválido o expirado")
	}

	account, err = GetAccount(id)
	if err != nil {
		return account, fault.Unauthorized("Usuario no encontrado")
	}
	if !account.Active {
		return account, fault.Unauthorized("Cuenta deshabilitada")
	}

	return account, nil
}
