package contact

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Digits оставляет в строке только цифры
func Digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatPhone приводит номер телефона к отображаемому виду
//
//	"5551234567"   -> "(555) 123-4567"
//	"15551234567"  -> "+1 (555) 123-4567"
//	"447700900123" -> "+447700900123"
//
// Пустая строка и строки без цифр возвращаются как есть
func FormatPhone(raw string) string {
	d := Digits(raw)

	switch {
	case d == "":
		return raw
	case len(d) == 10:
		return "(" + d[:3] + ") " + d[3:6] + "-" + d[6:]
	case len(d) == 11 && d[0] == '1':
		return "+1 (" + d[1:4] + ") " + d[4:7] + "-" + d[7:]
	default:
		return "+" + d
	}
}

// IsValidEmail проверяет адрес электронной почты
func IsValidEmail(email string) bool {
	email = strings.TrimSpace(email)
	if email == "" {
		return false
	}
	return validate.Var(email, "email") == nil
}
